// Package powerset enumerates every subset of a sequence by running
// filterm.FilterM under the list instance with a predicate that always
// answers both true and false.
//
// Nothing here special-cases subsets. Each subset appearing exactly once
// falls out of the filter's fold.
package powerset

import (
	"errors"
	"fmt"
	"math"

	"github.com/on-the-ground/effect_ive_filter/filterm"
	"github.com/on-the-ground/effect_ive_filter/monad"
	"github.com/on-the-ground/effect_ive_filter/monad/list"
	"go.uber.org/zap"
)

// DefaultMaxElements bounds the input to about a million subsets.
const DefaultMaxElements = 20

var ErrTooManyElements = errors.New("too many elements for subset enumeration")

// Options tunes Enumerate.
type Options struct {
	MaxElements int
	Parallelism int
	Logger      *zap.Logger
}

// Option configures Enumerate.
type Option func(*Options)

// WithMaxElements overrides DefaultMaxElements. n <= 0 keeps the default.
func WithMaxElements(n int) Option {
	return func(o *Options) {
		if n > 0 {
			o.MaxElements = n
		}
	}
}

// WithParallelism expands branches with up to n goroutines.
func WithParallelism(n int) Option {
	return func(o *Options) {
		o.Parallelism = n
	}
}

// WithLogger traces the list instance at debug level.
func WithLogger(logger *zap.Logger) Option {
	return func(o *Options) {
		o.Logger = logger
	}
}

func newOptions(opts []Option) Options {
	o := Options{MaxElements: DefaultMaxElements}
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

// Branch is the always-branching predicate: keep, then drop.
func Branch[T any](T) monad.Context {
	return list.From(true, false)
}

// Enumerate returns all 2^len(xs) subsets of xs, each exactly once,
// ordered head-first with inclusion before exclusion:
//
//	[1 2 3] [1 2] [1 3] [1] [2 3] [2] [3] []
//
// It returns ErrTooManyElements rather than start an enumeration longer
// than the configured bound.
func Enumerate[T any](xs []T, opts ...Option) ([][]T, error) {
	o := newOptions(opts)
	if len(xs) > o.MaxElements {
		return nil, fmt.Errorf("%w: %d > %d", ErrTooManyElements, len(xs), o.MaxElements)
	}

	var m monad.Monad = list.New(list.WithParallelism(o.Parallelism))
	if o.Logger != nil {
		m = monad.Traced(m, o.Logger)
		o.Logger.Debug("enumerating subsets",
			zap.Int("elements", len(xs)),
			zap.Float64("subsets", SubsetCount(len(xs))),
			zap.Int("parallelism", o.Parallelism),
		)
	}

	return list.Values[[]T](filterm.FilterM(m, Branch[T], xs)), nil
}

// SubsetCount returns 2^n as a float64, exact for every power of two an
// int can name and never wrapping at 64 elements or more.
func SubsetCount(n int) float64 {
	return math.Ldexp(1, n)
}

// Sums reduces each subset to the sum of its elements.
func Sums(subsets [][]int) []int {
	out := make([]int, len(subsets))
	for i, s := range subsets {
		for _, n := range s {
			out[i] += n
		}
	}
	return out
}
