// Package list is the nondeterministic instance: a context holds every
// possible value, in order.
//
// Combine feeds each value into the continuation independently and
// concatenates the resulting branches in input order. A continuation that
// returns no branches prunes that path; a fully pruned computation is the
// empty list, which is a valid result and never an error.
package list

import (
	"fmt"

	"github.com/on-the-ground/effect_ive_filter/monad"
	"github.com/on-the-ground/effect_ive_filter/shared/helper"
	"golang.org/x/sync/errgroup"
)

// List is the nondeterministic context.
type List struct {
	items []any
}

func (List) Kind() monad.Kind {
	return monad.KindList
}

func (l List) String() string {
	return fmt.Sprintf("list%v", l.items)
}

// Len returns the number of branches.
func (l List) Len() int {
	return len(l.items)
}

// Monad is the nondeterministic instance. The zero value is sequential.
type Monad struct {
	parallelism int
}

// Option configures a list instance.
type Option func(*Monad)

// WithParallelism evaluates up to n continuations of a single Combine
// concurrently. Output order is unchanged. n <= 1 means sequential.
// Continuations must then be safe to call from several goroutines.
func WithParallelism(n int) Option {
	return func(m *Monad) {
		m.parallelism = n
	}
}

// New returns a list instance.
func New(opts ...Option) Monad {
	m := Monad{}
	for _, opt := range opts {
		opt(&m)
	}
	return m
}

func (Monad) Kind() monad.Kind {
	return monad.KindList
}

func (Monad) Wrap(v any) monad.Context {
	return List{items: []any{v}}
}

func (m Monad) Combine(c monad.Context, f func(any) monad.Context) monad.Context {
	l := mustList(c)
	if m.parallelism > 1 && len(l.items) > 1 {
		return m.combineParallel(l, f)
	}

	out := make([]any, 0, len(l.items))
	for _, v := range l.items {
		out = append(out, mustList(f(v)).items...)
	}
	return List{items: out}
}

// combineParallel gives each branch its own slot so the flattened
// output keeps input order. A panic in a continuation is recovered in
// its goroutine and raised again on the caller's, the first in input
// order winning, as it would sequentially.
func (m Monad) combineParallel(l List, f func(any) monad.Context) monad.Context {
	parts := make([][]any, len(l.items))
	panics := make([]any, len(l.items))
	var g errgroup.Group
	g.SetLimit(m.parallelism)
	for i, v := range l.items {
		i, v := i, v
		g.Go(func() error {
			defer func() {
				if r := recover(); r != nil {
					panics[i] = r
				}
			}()
			parts[i] = mustList(f(v)).items
			return nil
		})
	}
	_ = g.Wait()
	for _, r := range panics {
		if r != nil {
			panic(r)
		}
	}

	n := 0
	for _, p := range parts {
		n += len(p)
	}
	out := make([]any, 0, n)
	for _, p := range parts {
		out = append(out, p...)
	}
	return List{items: out}
}

// From lifts typed values as branches, in order.
func From[T any](vs ...T) monad.Context {
	items := make([]any, len(vs))
	for i, v := range vs {
		items[i] = v
	}
	return List{items: items}
}

// Empty returns the context with no branches.
func Empty() monad.Context {
	return List{items: []any{}}
}

// Values unwraps every branch.
// It panics if c is not a list context or a branch is not a T.
func Values[T any](c monad.Context) []T {
	l := mustList(c)
	out := make([]T, len(l.items))
	for i, v := range l.items {
		out[i] = helper.MustCastValue[T](v)
	}
	return out
}

func mustList(c monad.Context) List {
	monad.MustKind(monad.KindList, c)
	return c.(List)
}
