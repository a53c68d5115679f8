// Package filterm provides sequence combinators written once over
// monad.Monad and reusable with every instance.
//
// FilterM keeps the elements for which an effectful predicate yields
// true; MapM maps each element through an effectful function. Both are a
// right-to-left fold:
//
//	f []     = Wrap([])
//	f (x:xs) = Combine(p(x), b -> if b then Map(rest, prepend x) else rest)
//	  where rest = f xs
//
// rest is evaluated lazily and at most once, after p(x) and only if the
// instance actually continues. Short-circuiting instances therefore do
// no work for elements after the first failure or absence.
//
// Under list, every recursive call fully resolves the suffix before the
// current element branches, so results come out head-first and
// include-then-exclude at every position. That order is guaranteed.
//
// The combinators never fail on their own. Failure, absence and pruning
// are properties of the instance. Under list the result can have 2^n
// branches for n elements; bound n (see the powerset package).
package filterm

import (
	"sync"

	"github.com/on-the-ground/effect_ive_filter/monad"
)

// Predicate decides, under some effect, whether to keep an element.
// Its context must hold a bool.
type Predicate[T any] func(T) monad.Context

// FilterM returns, inside m, the elements of xs for which p yields true.
// The result holds a []T; an empty input yields Wrap of an empty slice.
func FilterM[T any](m monad.Monad, p Predicate[T], xs []T) monad.Context {
	if len(xs) == 0 {
		return monad.Wrap(m, []T{})
	}

	x := xs[0]
	rest := sync.OnceValue(func() monad.Context {
		return FilterM(m, p, xs[1:])
	})

	px := p(x)
	if acc, ok := m.(monad.Accumulator); ok && acc.Accumulating(px) {
		return acc.Merge(px, rest())
	}
	return monad.Bind(m, px, func(keep bool) monad.Context {
		if !keep {
			return rest()
		}
		return monad.Map(m, rest(), func(ys []T) []T {
			return prepend(x, ys)
		})
	})
}

// MapM returns, inside m, the results of applying f to every element
// of xs, in order. It follows the same fold and failure rules as FilterM.
func MapM[T, U any](m monad.Monad, f func(T) monad.Context, xs []T) monad.Context {
	if len(xs) == 0 {
		return monad.Wrap(m, []U{})
	}

	rest := sync.OnceValue(func() monad.Context {
		return MapM[T, U](m, f, xs[1:])
	})

	fx := f(xs[0])
	if acc, ok := m.(monad.Accumulator); ok && acc.Accumulating(fx) {
		return acc.Merge(fx, rest())
	}
	return monad.Bind(m, fx, func(y U) monad.Context {
		return monad.Map(m, rest(), func(ys []U) []U {
			return prepend(y, ys)
		})
	})
}

// Sequence turns a slice of contexts into a context of a slice.
func Sequence[T any](m monad.Monad, cs []monad.Context) monad.Context {
	return MapM[monad.Context, T](m, func(c monad.Context) monad.Context {
		return c
	}, cs)
}

// Lift adapts a plain predicate to any instance.
func Lift[T any](m monad.Monad, p func(T) bool) Predicate[T] {
	return func(x T) monad.Context {
		return m.Wrap(p(x))
	}
}

// prepend never aliases ys, so branches sharing a suffix stay independent.
func prepend[T any](x T, ys []T) []T {
	out := make([]T, 0, len(ys)+1)
	out = append(out, x)
	return append(out, ys...)
}
