// Package identity is the deterministic instance: a single value with no
// branching and no failure. Combine is plain function application.
package identity

import (
	"fmt"

	"github.com/on-the-ground/effect_ive_filter/monad"
	"github.com/on-the-ground/effect_ive_filter/shared/helper"
)

// Value is the identity context.
type Value struct {
	v any
}

func (Value) Kind() monad.Kind {
	return monad.KindIdentity
}

func (v Value) String() string {
	return fmt.Sprintf("identity(%v)", v.v)
}

// Monad is the identity instance. The zero value is ready to use.
type Monad struct{}

// New returns the identity instance.
func New() Monad {
	return Monad{}
}

func (Monad) Kind() monad.Kind {
	return monad.KindIdentity
}

func (Monad) Wrap(v any) monad.Context {
	return Value{v: v}
}

func (Monad) Combine(c monad.Context, f func(any) monad.Context) monad.Context {
	return f(mustValue(c).v)
}

// Of lifts a typed value.
func Of[T any](v T) monad.Context {
	return Value{v: v}
}

// Get unwraps an identity context.
// It panics if c is not an identity context holding a T.
func Get[T any](c monad.Context) T {
	return helper.MustCastValue[T](mustValue(c).v)
}

func mustValue(c monad.Context) Value {
	monad.MustKind(monad.KindIdentity, c)
	return c.(Value)
}
