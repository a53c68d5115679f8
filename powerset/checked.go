package powerset

import (
	"fmt"

	"github.com/on-the-ground/effect_ive_filter/filterm"
	"github.com/on-the-ground/effect_ive_filter/monad"
	"github.com/on-the-ground/effect_ive_filter/monad/identity"
	"github.com/on-the-ground/effect_ive_filter/monad/list"
	"github.com/on-the-ground/effect_ive_filter/monad/option"
	"github.com/on-the-ground/effect_ive_filter/monad/validation"
)

// EvenPredicate keeps even numbers under the discipline of m.
// Negative numbers are invalid input: absent under option, a failure
// under validation. Identity and list have no way to reject, so they
// simply drop them.
func EvenPredicate(m monad.Monad) filterm.Predicate[int] {
	switch m.Kind() {
	case monad.KindOption:
		return func(n int) monad.Context {
			if n < 0 {
				return option.None()
			}
			return option.Some(n%2 == 0)
		}
	case monad.KindValidation:
		return func(n int) monad.Context {
			if n < 0 {
				return validation.Failf("negative element %d", n)
			}
			return validation.Ok(n%2 == 0)
		}
	default:
		return filterm.Lift(m, func(n int) bool {
			return n >= 0 && n%2 == 0
		})
	}
}

// FilterEven runs EvenPredicate over xs and unwraps the result.
// Absence is reported as option.ErrAbsent and failures wrap
// validation.ErrFailed with every collected reason.
func FilterEven(m monad.Monad, xs []int) ([]int, error) {
	c := filterm.FilterM(m, EvenPredicate(m), xs)
	switch m.Kind() {
	case monad.KindIdentity:
		return identity.Get[[]int](c), nil
	case monad.KindOption:
		return option.Result[[]int](c)
	case monad.KindValidation:
		return validation.Get[[]int](c)
	case monad.KindList:
		return list.Values[[]int](c)[0], nil
	default:
		return nil, fmt.Errorf("%w: %v", monad.ErrKindMismatch, m.Kind())
	}
}
