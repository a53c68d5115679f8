package pure

const tableShards = 8

// Tableize memoizes a pure single-argument function in a bounded Table
// of tableShards shards, each holding maxTableSize entries per generation.
//
// The function must be referentially transparent: same input, same
// output, no observable side effects. Concurrent callers may both miss
// and compute the same entry; the later Store wins.
func Tableize[I ComparableOrStringer, O any](
	pureFn func(I) O,
	maxTableSize uint32,
) func(I) O {
	memo := NewShardedTable[O](maxTableSize, tableShards)
	return func(i I) O {
		v, ok := memo.Load(i)
		if !ok {
			v = pureFn(i)
			memo.Store(i, v)
		}
		return v
	}
}
