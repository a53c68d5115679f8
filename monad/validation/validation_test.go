package validation_test

import (
	"errors"
	"testing"

	"github.com/on-the-ground/effect_ive_filter/monad"
	"github.com/on-the-ground/effect_ive_filter/monad/monadtest"
	"github.com/on-the-ground/effect_ive_filter/monad/validation"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var errNegative = errors.New("negative")

func TestValidation_Laws(t *testing.T) {
	positive := func(v any) monad.Context {
		if v.(int) < 0 {
			return validation.Fail(errNegative)
		}
		return validation.Ok(v)
	}
	neg := func(v any) monad.Context { return validation.Ok(-v.(int)) }

	for _, policy := range []validation.Policy{validation.ShortCircuit, validation.CollectAll} {
		t.Run(policy.String(), func(t *testing.T) {
			monadtest.Laws(t, validation.New(policy),
				monadtest.Case{Name: "ok", Value: 1, M: validation.Ok(2), F: neg, G: positive},
				monadtest.Case{Name: "failing", Value: -1, M: validation.Ok(-1), F: positive, G: neg},
				monadtest.Case{Name: "failed", Value: 1, M: validation.Fail(errNegative), F: neg, G: positive},
			)
		})
	}
}

func TestValidation_FailurePropagates(t *testing.T) {
	m := validation.New(validation.ShortCircuit)
	called := false
	c := m.Combine(validation.Failf("bad input %d", 7), func(any) monad.Context {
		called = true
		return validation.Ok(1)
	})
	assert.False(t, called)

	_, err := validation.Get[int](c)
	require.Error(t, err)
	assert.ErrorIs(t, err, validation.ErrFailed)
	assert.Contains(t, err.Error(), "bad input 7")
}

func TestValidation_Merge(t *testing.T) {
	m := validation.New(validation.CollectAll)
	e1, e2 := errors.New("first"), errors.New("second")

	merged := m.Merge(validation.Fail(e1), validation.Fail(e2))
	assert.Equal(t, []error{e1, e2}, validation.Reasons(merged))

	_, err := validation.Get[int](merged)
	assert.ErrorIs(t, err, e1)
	assert.ErrorIs(t, err, e2)

	assert.Equal(t, validation.Fail(e1), m.Merge(validation.Fail(e1), validation.Ok(3)))
	assert.Equal(t, validation.Fail(e2), m.Merge(validation.Ok(3), validation.Fail(e2)))
}

func TestValidation_Accumulating(t *testing.T) {
	short := validation.New(validation.ShortCircuit)
	all := validation.New(validation.CollectAll)

	assert.False(t, short.Accumulating(validation.Fail(errNegative)))
	assert.True(t, all.Accumulating(validation.Fail(errNegative)))
	assert.False(t, all.Accumulating(validation.Ok(1)))
}

func TestValidation_NilReason(t *testing.T) {
	assert.Equal(t, []error{validation.ErrFailed}, validation.Reasons(validation.Fail(nil)))
	assert.Nil(t, validation.Reasons(validation.Ok(1)))
}

func TestParsePolicy(t *testing.T) {
	p, err := validation.ParsePolicy("")
	assert.NoError(t, err)
	assert.Equal(t, validation.ShortCircuit, p)

	p, err = validation.ParsePolicy("collect-all")
	assert.NoError(t, err)
	assert.Equal(t, validation.CollectAll, p)

	_, err = validation.ParsePolicy("sometimes")
	assert.Error(t, err)
}
