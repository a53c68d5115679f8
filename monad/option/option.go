// Package option is the optional instance: a context is either present
// with one value or absent. Absence short-circuits every later Combine.
package option

import (
	"errors"
	"fmt"

	"github.com/on-the-ground/effect_ive_filter/monad"
	"github.com/on-the-ground/effect_ive_filter/shared/helper"
)

var ErrAbsent = errors.New("absent")

// Option is the optional context.
type Option struct {
	v       any
	present bool
}

func (Option) Kind() monad.Kind {
	return monad.KindOption
}

func (o Option) String() string {
	if !o.present {
		return "none"
	}
	return fmt.Sprintf("some(%v)", o.v)
}

// IsPresent reports whether the context holds a value.
func (o Option) IsPresent() bool {
	return o.present
}

// Monad is the optional instance. The zero value is ready to use.
type Monad struct{}

// New returns the optional instance.
func New() Monad {
	return Monad{}
}

func (Monad) Kind() monad.Kind {
	return monad.KindOption
}

func (Monad) Wrap(v any) monad.Context {
	return Option{v: v, present: true}
}

// Combine applies f when c is present and propagates absence otherwise.
func (Monad) Combine(c monad.Context, f func(any) monad.Context) monad.Context {
	o := mustOption(c)
	if !o.present {
		return o
	}
	return f(o.v)
}

// Some lifts a typed value as present.
func Some[T any](v T) monad.Context {
	return Option{v: v, present: true}
}

// None returns the absent context.
func None() monad.Context {
	return Option{}
}

// FromPair builds a context from the common (value, ok) return shape.
func FromPair[T any](v T, ok bool) monad.Context {
	if !ok {
		return None()
	}
	return Some(v)
}

// Get unwraps an optional context. ok is false when c is absent.
// It panics if c is not an optional context or holds something other than a T.
func Get[T any](c monad.Context) (v T, ok bool) {
	o := mustOption(c)
	if !o.present {
		return v, false
	}
	return helper.MustCastValue[T](o.v), true
}

// Result is Get with absence reported as ErrAbsent.
func Result[T any](c monad.Context) (T, error) {
	v, ok := Get[T](c)
	if !ok {
		return v, ErrAbsent
	}
	return v, nil
}

func mustOption(c monad.Context) Option {
	monad.MustKind(monad.KindOption, c)
	return c.(Option)
}
