// Package monadtest checks that an instance obeys the monad laws.
package monadtest

import (
	"testing"

	"github.com/on-the-ground/effect_ive_filter/monad"
	"github.com/stretchr/testify/assert"
)

// Case is one law-check input: a seed value, a sample context and two
// continuations of the instance under test.
type Case struct {
	Name  string
	Value any
	M     monad.Context
	F     func(any) monad.Context
	G     func(any) monad.Context
}

// Laws asserts left identity, right identity and associativity of m for
// every case. Contexts are compared structurally.
func Laws(t *testing.T, m monad.Monad, cases ...Case) {
	t.Helper()
	for _, c := range cases {
		t.Run(c.Name, func(t *testing.T) {
			assert.Equal(t,
				c.F(c.Value),
				m.Combine(m.Wrap(c.Value), c.F),
				"left identity",
			)
			assert.Equal(t,
				c.M,
				m.Combine(c.M, m.Wrap),
				"right identity",
			)
			assert.Equal(t,
				m.Combine(m.Combine(c.M, c.F), c.G),
				m.Combine(c.M, func(x any) monad.Context {
					return m.Combine(c.F(x), c.G)
				}),
				"associativity",
			)
		})
	}
}
