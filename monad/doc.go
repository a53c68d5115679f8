// Package monad defines the effect context abstraction shared by every
// filter and mapping combinator in this module.
//
// A Context is a value, or values, produced under some computational
// discipline: plain determinism, nondeterminism, optionality, or failure
// accumulation. It is opaque. Contexts are built with Wrap and consumed
// with Combine, or read back through the typed accessors of the instance
// package that produced them.
//
// # Instances
//
//   - identity: a single value, no branching
//   - list: all possibilities, flattened in order
//   - option: short-circuits on absence
//   - validation: short-circuits on the first failure, or collects every
//     failure when built with the CollectAll policy
//
// # Laws
//
// Every instance satisfies, for all v, f, g and m:
//
//	Combine(Wrap(v), f)             == f(v)
//	Combine(m, Wrap)                == m
//	Combine(Combine(m, f), g)       == Combine(m, x -> Combine(f(x), g))
//
// See the monadtest package for a reusable conformance check.
//
// # Typing
//
// Go has no higher-kinded types, so a Context carries its payload as any.
// The generic helpers Wrap, Bind, Map and Then restore static types at the
// call site; a payload of the wrong type is a programming error and panics.
//
// Example:
//
//	m := option.New()
//	c := monad.Bind(m, option.Some(2), func(n int) monad.Context {
//	    return monad.Wrap(m, n*10)
//	})
//	v, ok := option.Get[int](c) // 20, true
package monad
