package filterm

import (
	"github.com/on-the-ground/effect_ive_filter/monad"
	"github.com/on-the-ground/effect_ive_filter/pure"
)

// Memoize caches the contexts p returns, per element, in a bounded
// sharded table of maxSize entries per shard and generation. p must be
// pure; elements must be comparable or implement fmt.Stringer.
func Memoize[T pure.ComparableOrStringer](p Predicate[T], maxSize uint32) Predicate[T] {
	return pure.Tableize[T, monad.Context](p, maxSize)
}
