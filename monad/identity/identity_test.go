package identity_test

import (
	"strconv"
	"testing"

	"github.com/on-the-ground/effect_ive_filter/monad"
	"github.com/on-the-ground/effect_ive_filter/monad/identity"
	"github.com/on-the-ground/effect_ive_filter/monad/monadtest"
	"github.com/on-the-ground/effect_ive_filter/monad/option"
	"github.com/stretchr/testify/assert"
)

func TestIdentity_Laws(t *testing.T) {
	m := identity.New()
	double := func(v any) monad.Context { return identity.Of(v.(int) * 2) }
	inc := func(v any) monad.Context { return identity.Of(v.(int) + 1) }

	monadtest.Laws(t, m,
		monadtest.Case{Name: "int", Value: 3, M: identity.Of(5), F: double, G: inc},
		monadtest.Case{Name: "zero", Value: 0, M: identity.Of(0), F: inc, G: double},
	)
}

func TestIdentity_BindAndMap(t *testing.T) {
	m := identity.New()
	c := monad.Bind(m, identity.Of(4), func(n int) monad.Context {
		return monad.Wrap(m, n*n)
	})
	assert.Equal(t, 16, identity.Get[int](c))

	s := monad.Map(m, c, strconv.Itoa)
	assert.Equal(t, "16", identity.Get[string](s))
}

func TestIdentity_Then(t *testing.T) {
	m := identity.New()
	c := monad.Then(m, identity.Of(1), identity.Of("next"))
	assert.Equal(t, "next", identity.Get[string](c))
}

func TestIdentity_ForeignContextPanics(t *testing.T) {
	m := identity.New()
	assert.PanicsWithError(t,
		"context kind mismatch: want effect_ive_filter_kind_identity, got effect_ive_filter_kind_option",
		func() {
			m.Combine(option.Some(1), func(any) monad.Context { return identity.Of(1) })
		},
	)
}

func TestIdentity_WrongElementTypePanics(t *testing.T) {
	assert.Panics(t, func() {
		identity.Get[string](identity.Of(1))
	})
}
