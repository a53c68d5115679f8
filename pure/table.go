package pure

import (
	"fmt"
	"sync"

	"github.com/cespare/xxhash/v2"
)

// ComparableOrStringer is any comparable value, or a fmt.Stringer whose
// String form identifies it.
type ComparableOrStringer any

// Table is a bounded, concurrency-safe memo table split into shards.
//
// Each shard keeps two generations. Stores go to the head generation;
// once it holds maxSize entries the generations rotate and the older one
// is dropped. Loads check both, so a hot entry survives one rotation.
type Table[O any] struct {
	shards []*shard[O]
}

type shard[O any] struct {
	mu      sync.RWMutex
	gens    [2]map[any]O
	headIdx int
	maxSize int
}

// NewTable returns a single-shard table holding at most 2*maxSize entries.
func NewTable[O any](maxSize uint32) *Table[O] {
	return NewShardedTable[O](maxSize, 1)
}

// NewShardedTable returns a table of numShards shards, each holding at
// most 2*maxSize entries. Keys are spread over shards by the xxhash of
// their text form, so concurrent callers on different keys rarely share
// a lock.
func NewShardedTable[O any](maxSize uint32, numShards int) *Table[O] {
	if maxSize == 0 {
		panic("maxSize should be greater than 0")
	}
	if numShards <= 0 {
		numShards = 1
	}
	t := &Table[O]{shards: make([]*shard[O], numShards)}
	for i := range t.shards {
		t.shards[i] = &shard[O]{
			gens:    [2]map[any]O{{}, {}},
			maxSize: int(maxSize),
		}
	}
	return t
}

// Load looks key up in both generations of its shard, head first.
func (t *Table[O]) Load(key ComparableOrStringer) (O, bool) {
	k := tableKey(key)
	s := t.shardFor(k)
	s.mu.RLock()
	defer s.mu.RUnlock()
	if v, ok := s.gens[s.headIdx][k]; ok {
		return v, true
	}
	v, ok := s.gens[1-s.headIdx][k]
	return v, ok
}

// Store records value under key in the head generation of its shard.
// It panics if key is neither comparable nor a fmt.Stringer.
func (t *Table[O]) Store(key ComparableOrStringer, value O) {
	k := tableKey(key)
	s := t.shardFor(k)
	s.mu.Lock()
	defer s.mu.Unlock()
	if len(s.gens[s.headIdx]) >= s.maxSize {
		s.headIdx = 1 - s.headIdx
		s.gens[s.headIdx] = map[any]O{}
	}
	s.gens[s.headIdx][k] = value
}

// Len returns the number of entries across all shards and generations.
func (t *Table[O]) Len() int {
	n := 0
	for _, s := range t.shards {
		s.mu.RLock()
		n += len(s.gens[0]) + len(s.gens[1])
		s.mu.RUnlock()
	}
	return n
}

func (t *Table[O]) shardFor(k any) *shard[O] {
	if len(t.shards) == 1 {
		return t.shards[0]
	}
	var text string
	if sk, ok := k.(stringerKey); ok {
		text = sk.text
	} else {
		text = fmt.Sprint(k)
	}
	return t.shards[xxhash.Sum64String(text)%uint64(len(t.shards))]
}

// stringerKey holds the String form of a key. Its own type keeps it
// apart from plain string keys with the same text.
type stringerKey struct {
	text string
}

// tableKey lets non-comparable values with a canonical text form be
// used as keys. Two Stringers share an entry only if their text matches.
func tableKey(key ComparableOrStringer) any {
	if stringer, ok := key.(fmt.Stringer); ok {
		return stringerKey{text: stringer.String()}
	}
	return key
}
