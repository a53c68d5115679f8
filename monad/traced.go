package monad

import (
	"go.uber.org/zap"
)

// Traced decorates m so that every Wrap and Combine is logged at debug
// level. The returned instance produces the same contexts as m, so the
// laws still hold. If m is an Accumulator, so is the result.
func Traced(m Monad, logger *zap.Logger) Monad {
	if logger == nil {
		logger = zap.NewNop()
	}
	t := tracedMonad{
		inner:  m,
		logger: logger.With(zap.String("kind", string(m.Kind()))),
	}
	if acc, ok := m.(Accumulator); ok {
		return tracedAccumulator{tracedMonad: t, acc: acc}
	}
	return t
}

type tracedMonad struct {
	inner  Monad
	logger *zap.Logger
}

func (t tracedMonad) Kind() Kind {
	return t.inner.Kind()
}

func (t tracedMonad) Wrap(v any) Context {
	t.logger.Debug("wrap", zap.Any("value", v))
	return t.inner.Wrap(v)
}

func (t tracedMonad) Combine(c Context, f func(any) Context) Context {
	t.logger.Debug("combine", zap.Stringer("context", c))
	return t.inner.Combine(c, func(v any) Context {
		t.logger.Debug("continue", zap.Any("value", v))
		return f(v)
	})
}

type tracedAccumulator struct {
	tracedMonad
	acc Accumulator
}

func (t tracedAccumulator) Accumulating(c Context) bool {
	return t.acc.Accumulating(c)
}

func (t tracedAccumulator) Merge(a, b Context) Context {
	t.logger.Debug("merge", zap.Stringer("left", a), zap.Stringer("right", b))
	return t.acc.Merge(a, b)
}
