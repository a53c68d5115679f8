package monad

import (
	"errors"
	"fmt"

	"github.com/on-the-ground/effect_ive_filter/shared/helper"
)

// Kind names the instance a Context belongs to.
type Kind string

const (
	KindIdentity   Kind = "effect_ive_filter_kind_identity"
	KindList       Kind = "effect_ive_filter_kind_list"
	KindOption     Kind = "effect_ive_filter_kind_option"
	KindValidation Kind = "effect_ive_filter_kind_validation"
)

// Context is a value in a computational context.
// String renders it for logs, e.g. "some(2)" or "list[1 2]".
type Context interface {
	Kind() Kind
	fmt.Stringer
}

// Monad is an effect instance: a stateless strategy for lifting values
// into contexts and sequencing context-producing continuations.
type Monad interface {
	// Kind returns the kind of every Context this instance produces.
	Kind() Kind

	// Wrap lifts a plain value with no added effect.
	Wrap(v any) Context

	// Combine feeds the value(s) of c into f and merges the effects.
	// c must have been produced by an instance of the same kind.
	Combine(c Context, f func(any) Context) Context
}

// Accumulator is implemented by instances that can merge independent
// failures instead of stopping at the first one.
//
// Combine alone can never continue past a failure because there is no
// value to feed the continuation. Combinators that walk a sequence check
// for this capability and, when Accumulating reports true for a step,
// evaluate the remaining steps and Merge the results.
type Accumulator interface {
	Monad

	// Accumulating reports whether c is a failure that should be merged
	// with the failures of the remaining computation.
	Accumulating(c Context) bool

	// Merge joins the failure in a with the failure in b, if any.
	// If b succeeded, a is returned unchanged.
	Merge(a, b Context) Context
}

var ErrKindMismatch = errors.New("context kind mismatch")

// MustKind panics with ErrKindMismatch if c was not produced by an
// instance of kind k.
func MustKind(k Kind, c Context) {
	if c == nil {
		panic(fmt.Errorf("%w: want %v, got nil context", ErrKindMismatch, k))
	}
	if c.Kind() != k {
		panic(fmt.Errorf("%w: want %v, got %v", ErrKindMismatch, k, c.Kind()))
	}
}

// Wrap lifts a typed value into m.
func Wrap[T any](m Monad, v T) Context {
	return m.Wrap(v)
}

// Bind sequences c into a typed continuation.
// It panics if a value inside c is not a T.
func Bind[T any](m Monad, c Context, f func(T) Context) Context {
	return m.Combine(c, func(raw any) Context {
		return f(helper.MustCastValue[T](raw))
	})
}

// Map applies a pure function to the value(s) inside c.
// It is Bind followed by Wrap, so it adds no effect of its own.
func Map[T, U any](m Monad, c Context, f func(T) U) Context {
	return m.Combine(c, func(raw any) Context {
		return m.Wrap(f(helper.MustCastValue[T](raw)))
	})
}

// Then sequences c and n, discarding the value(s) of c but keeping its
// effect: under list, n is repeated once per branch of c.
func Then(m Monad, c Context, n Context) Context {
	return m.Combine(c, func(any) Context {
		return n
	})
}
