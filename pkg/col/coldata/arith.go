// Copyright 2021 Datafuse Labs.
//
// Use of this software is governed by the Apache License, Version 2.0.

package coldata

import (
	"math"

	"github.com/lianghanzhen/databend/pkg/sql/types"
)

// Elementwise arithmetic kernels over same-representation operands.
// Null handling is uniform: a result row is null when either input row
// is null, and a zero divisor makes the result row null rather than
// failing the whole column (the engine-wide division policy).

func arithFixed[T FixedElement](
	t *types.T, a, b []T, an, bn *Nulls, op func(T, T) T, zeroDivisorIsNull bool,
) Column {
	n := len(a)
	out := make([]T, n)
	nulls := OrNulls(an, bn, n)
	for i := 0; i < n; i++ {
		if nulls.NullAt(i) {
			continue
		}
		if zeroDivisorIsNull && b[i] == 0 {
			if nulls == nil {
				nulls = NewNulls(n)
			}
			nulls.SetNull(i)
			continue
		}
		out[i] = op(a[i], b[i])
	}
	return &vec[T]{t: t, col: out, nulls: nulls}
}

func addOp[T FixedElement]() func(T, T) T {
	return func(x, y T) T { return x + y }
}

func subOp[T FixedElement]() func(T, T) T {
	return func(x, y T) T { return x - y }
}

func mulOp[T FixedElement]() func(T, T) T {
	return func(x, y T) T { return x * y }
}

// divOp keeps the operand type: integer division truncates, float
// division is exact. Zero divisors never reach the op.
func divOp[T FixedElement]() func(T, T) T {
	return func(x, y T) T { return x / y }
}

// modOp picks the remainder flavor per concrete representation. The
// int64/uint64 round trips are exact for every integer width; floats
// use math.Mod.
func modOp[T FixedElement]() func(T, T) T {
	var zero T
	switch any(zero).(type) {
	case float32, float64:
		return func(x, y T) T { return T(math.Mod(float64(x), float64(y))) }
	case uint8, uint16, uint32, uint64, uint, uintptr:
		return func(x, y T) T { return T(uint64(x) % uint64(y)) }
	default:
		return func(x, y T) T { return T(int64(x) % int64(y)) }
	}
}
