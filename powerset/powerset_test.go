package powerset_test

import (
	"fmt"
	"testing"

	"github.com/on-the-ground/effect_ive_filter/monad"
	"github.com/on-the-ground/effect_ive_filter/monad/identity"
	"github.com/on-the-ground/effect_ive_filter/monad/list"
	"github.com/on-the-ground/effect_ive_filter/monad/option"
	"github.com/on-the-ground/effect_ive_filter/monad/validation"
	"github.com/on-the-ground/effect_ive_filter/powerset"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestEnumerate_Completeness(t *testing.T) {
	got, err := powerset.Enumerate([]int{1, 2, 3})
	require.NoError(t, err)
	assert.Equal(t, [][]int{
		{1, 2, 3}, {1, 2}, {1, 3}, {1},
		{2, 3}, {2}, {3}, {},
	}, got)
}

func TestEnumerate_Cardinality(t *testing.T) {
	for n := 0; n <= 5; n++ {
		t.Run(fmt.Sprintf("n=%d", n), func(t *testing.T) {
			in := make([]int, n)
			for i := range in {
				in[i] = i + 1
			}
			got, err := powerset.Enumerate(in)
			require.NoError(t, err)
			assert.Len(t, got, 1<<n)

			seen := map[string]bool{}
			for _, s := range got {
				key := fmt.Sprint(s)
				assert.False(t, seen[key], "duplicate subset %v", s)
				seen[key] = true
			}
		})
	}
}

func TestEnumerate_SumsOfFive(t *testing.T) {
	got, err := powerset.Enumerate([]int{1, 2, 3, 4, 5})
	require.NoError(t, err)
	assert.Equal(t, []int{
		15, 10, 11, 6, 12, 7, 8, 3, 13, 8, 9, 4, 10, 5, 6, 1,
		14, 9, 10, 5, 11, 6, 7, 2, 12, 7, 8, 3, 9, 4, 5, 0,
	}, powerset.Sums(got))
}

func TestEnumerate_Empty(t *testing.T) {
	got, err := powerset.Enumerate([]string{})
	require.NoError(t, err)
	assert.Equal(t, [][]string{{}}, got)
}

func TestEnumerate_Guard(t *testing.T) {
	_, err := powerset.Enumerate(make([]int, powerset.DefaultMaxElements+1))
	assert.ErrorIs(t, err, powerset.ErrTooManyElements)

	_, err = powerset.Enumerate([]int{1, 2, 3}, powerset.WithMaxElements(2))
	assert.ErrorIs(t, err, powerset.ErrTooManyElements)

	got, err := powerset.Enumerate([]int{1, 2, 3}, powerset.WithMaxElements(0))
	require.NoError(t, err)
	assert.Len(t, got, 8)
}

func TestEnumerate_ParallelMatchesSequential(t *testing.T) {
	in := []int{3, 1, 4, 1, 5, 9, 2}
	seq, err := powerset.Enumerate(in)
	require.NoError(t, err)
	par, err := powerset.Enumerate(in, powerset.WithParallelism(4))
	require.NoError(t, err)
	assert.Equal(t, seq, par)
}

func TestEnumerate_WithLogger(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	_, err := powerset.Enumerate([]int{1, 2}, powerset.WithLogger(zap.New(core)))
	require.NoError(t, err)

	entries := logs.FilterMessage("enumerating subsets").All()
	require.Len(t, entries, 1)
	assert.EqualValues(t, 4, entries[0].ContextMap()["subsets"])
	assert.NotZero(t, logs.FilterMessage("combine").Len())
}

func TestSubsetCount_DoesNotWrap(t *testing.T) {
	assert.Equal(t, 4.0, powerset.SubsetCount(2))
	assert.Equal(t, 1.0, powerset.SubsetCount(0))
	assert.Equal(t, 9223372036854775808.0, powerset.SubsetCount(63))
	assert.Equal(t, 18446744073709551616.0, powerset.SubsetCount(64))
	assert.Greater(t, powerset.SubsetCount(100), powerset.SubsetCount(64))
}

func TestEnumerate_WithLoggerRejectsOversizedInput(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	_, err := powerset.Enumerate(make([]int, 64),
		powerset.WithMaxElements(63),
		powerset.WithLogger(zap.New(core)),
	)
	assert.ErrorIs(t, err, powerset.ErrTooManyElements)
	assert.Zero(t, logs.Len())
}

func TestFilterEven(t *testing.T) {
	in := []int{4, 7, 6, 1}

	for _, m := range []monad.Monad{
		identity.New(),
		list.New(),
		option.New(),
		validation.New(validation.ShortCircuit),
	} {
		got, err := powerset.FilterEven(m, in)
		require.NoError(t, err, m.Kind())
		assert.Equal(t, []int{4, 6}, got, m.Kind())
	}
}

func TestFilterEven_InvalidInput(t *testing.T) {
	in := []int{-2, 4, -3}

	got, err := powerset.FilterEven(identity.New(), in)
	require.NoError(t, err)
	assert.Equal(t, []int{4}, got)

	_, err = powerset.FilterEven(option.New(), in)
	assert.ErrorIs(t, err, option.ErrAbsent)

	_, err = powerset.FilterEven(validation.New(validation.ShortCircuit), in)
	assert.ErrorIs(t, err, validation.ErrFailed)
	assert.ErrorContains(t, err, "negative element -2")
	assert.NotContains(t, err.Error(), "-3")

	_, err = powerset.FilterEven(validation.New(validation.CollectAll), in)
	assert.ErrorContains(t, err, "negative element -2")
	assert.ErrorContains(t, err, "negative element -3")
}

func TestSums(t *testing.T) {
	assert.Equal(t, []int{6, 0}, powerset.Sums([][]int{{1, 2, 3}, {}}))
	assert.Empty(t, powerset.Sums(nil))
}
