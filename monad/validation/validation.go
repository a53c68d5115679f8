// Package validation is the accumulating-failure instance: a context is
// either ok with one value or failed with one or more reasons.
//
// Combine always stops at a failure. The Policy chosen at construction
// decides what a sequence combinator does with it: ShortCircuit returns
// the first failure and does no further work, CollectAll keeps walking
// the sequence and merges every failure into one.
package validation

import (
	"errors"
	"fmt"

	"github.com/on-the-ground/effect_ive_filter/monad"
	"github.com/on-the-ground/effect_ive_filter/shared/helper"
	"go.uber.org/multierr"
)

var ErrFailed = errors.New("validation failed")

// Policy selects how failures from independent steps are treated.
type Policy int

const (
	// ShortCircuit stops at the first failure. It is the default.
	ShortCircuit Policy = iota
	// CollectAll merges the failures of every step.
	CollectAll
)

func (p Policy) String() string {
	switch p {
	case ShortCircuit:
		return "short-circuit"
	case CollectAll:
		return "collect-all"
	default:
		return fmt.Sprintf("policy(%d)", int(p))
	}
}

// ParsePolicy maps "short-circuit" or "collect-all" to a Policy.
// The empty string selects ShortCircuit.
func ParsePolicy(s string) (Policy, error) {
	switch s {
	case "", "short-circuit":
		return ShortCircuit, nil
	case "collect-all":
		return CollectAll, nil
	default:
		return ShortCircuit, fmt.Errorf("unknown policy %q", s)
	}
}

// Result is the validation context.
type Result struct {
	v   any
	err error
}

func (Result) Kind() monad.Kind {
	return monad.KindValidation
}

func (r Result) String() string {
	if r.Failed() {
		return fmt.Sprintf("failed(%v)", r.err)
	}
	return fmt.Sprintf("ok(%v)", r.v)
}

// Failed reports whether the context holds a failure.
func (r Result) Failed() bool {
	return r.err != nil
}

var _ monad.Accumulator = Monad{}

// Monad is the validation instance.
type Monad struct {
	policy Policy
}

// New returns a validation instance with the given policy.
func New(policy Policy) Monad {
	return Monad{policy: policy}
}

// Policy returns the configured policy.
func (m Monad) Policy() Policy {
	return m.policy
}

func (Monad) Kind() monad.Kind {
	return monad.KindValidation
}

func (Monad) Wrap(v any) monad.Context {
	return Result{v: v}
}

// Combine applies f when c is ok and propagates the failure otherwise.
func (Monad) Combine(c monad.Context, f func(any) monad.Context) monad.Context {
	r := mustResult(c)
	if r.Failed() {
		return r
	}
	return f(r.v)
}

// Accumulating is true only under CollectAll, and only for failures.
func (m Monad) Accumulating(c monad.Context) bool {
	return m.policy == CollectAll && mustResult(c).Failed()
}

// Merge appends the reasons of b to those of a.
func (Monad) Merge(a, b monad.Context) monad.Context {
	ra, rb := mustResult(a), mustResult(b)
	switch {
	case !rb.Failed():
		return ra
	case !ra.Failed():
		return rb
	default:
		return Result{err: multierr.Append(ra.err, rb.err)}
	}
}

// Ok lifts a typed value as a success.
func Ok[T any](v T) monad.Context {
	return Result{v: v}
}

// Fail builds a failed context with one reason.
// A nil reason is replaced by ErrFailed.
func Fail(reason error) monad.Context {
	if reason == nil {
		reason = ErrFailed
	}
	return Result{err: reason}
}

// Failf is Fail with a formatted reason.
func Failf(format string, args ...any) monad.Context {
	return Fail(fmt.Errorf(format, args...))
}

// Get unwraps a validation context. The error wraps ErrFailed and every
// reason, so errors.Is works against both.
// It panics if c is not a validation context or holds something other than a T.
func Get[T any](c monad.Context) (T, error) {
	r := mustResult(c)
	if r.Failed() {
		var zero T
		return zero, fmt.Errorf("%w: %w", ErrFailed, r.err)
	}
	return helper.MustCastValue[T](r.v), nil
}

// Reasons lists the individual failure reasons, head-first.
// It returns nil for an ok context.
func Reasons(c monad.Context) []error {
	return multierr.Errors(mustResult(c).err)
}

func mustResult(c monad.Context) Result {
	monad.MustKind(monad.KindValidation, c)
	return c.(Result)
}
