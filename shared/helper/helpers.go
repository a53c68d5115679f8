package helper

import (
	"fmt"
)

// CastValue safely asserts an erased value to the expected type T.
// A nil value yields the zero value of T, so contexts may carry nil
// pointers, slices and interfaces.
// Returns an error if type assertion fails.
func CastValue[T any](raw any) (T, error) {
	var zero T
	if raw == nil {
		return zero, nil
	}

	val, ok := raw.(T)
	if !ok {
		return zero, fmt.Errorf("unexpected type: %T, want %T", raw, zero)
	}

	return val, nil
}

// MustCastValue is the panic-on-failure variant of CastValue.
// Use when a mismatch can only come from a programming error
// (e.g., a continuation fed the wrong element type).
func MustCastValue[T any](raw any) T {
	res, err := CastValue[T](raw)
	if err != nil {
		panic(err)
	}
	return res
}
