// Copyright 2021 Datafuse Labs.
//
// Use of this software is governed by the Apache License, Version 2.0.

package coldata

import (
	"github.com/cockroachdb/errors"
	"github.com/lianghanzhen/databend/pkg/col/typeconv"
	"github.com/lianghanzhen/databend/pkg/sql/sqlerrors"
	"github.com/lianghanzhen/databend/pkg/sql/types"
)

// Casting always produces a new Column and never mutates the source.
// Buffer-sharing retags (temporal <-> physical, Utf8 <-> Binary,
// identity) are zero-copy; numeric conversions allocate. Only lossless
// casts are defined: a narrowing numeric cast fails with
// UnsupportedCast.

func castFixed[T FixedElement](v *vec[T], to *types.T) (Column, error) {
	from := v.t
	switch {
	case from.Equal(to):
		return &vec[T]{t: to, col: v.col, nulls: v.nulls}, nil
	case from.IsTemporal() && typeconv.PhysicalOf(from).Equal(to):
		// Reinterpret the temporal column as its backing primitive;
		// representation is unchanged so the buffer is shared.
		return &vec[T]{t: to, col: v.col, nulls: v.nulls}, nil
	case to.IsTemporal() && typeconv.PhysicalOf(to).Equal(from):
		return &vec[T]{t: to, col: v.col, nulls: v.nulls}, nil
	case losslessNumericCast(from, to):
		return widenFixed(v, to), nil
	}
	return nil, sqlerrors.NewUnsupportedCast(from, to)
}

// losslessNumericCast reports whether every value of from converts into
// to without losing information. Signed and unsigned integers widen
// within their own kind, unsigned additionally widens into a strictly
// wider signed integer, and integers of at most half a float's mantissa
// also convert exactly.
func losslessNumericCast(from, to *types.T) bool {
	if !from.IsNumeric() || !to.IsNumeric() {
		return false
	}
	fw, tw := from.Width(), to.Width()
	switch from.Family() {
	case types.IntFamily:
		switch to.Family() {
		case types.IntFamily:
			return tw > fw
		case types.FloatFamily:
			// Float32 holds 24 mantissa bits, Float64 holds 53.
			return (tw == 32 && fw <= 16) || (tw == 64 && fw <= 32)
		}
	case types.UintFamily:
		switch to.Family() {
		case types.UintFamily:
			return tw > fw
		case types.IntFamily:
			return tw > fw
		case types.FloatFamily:
			return (tw == 32 && fw <= 16) || (tw == 64 && fw <= 32)
		}
	case types.FloatFamily:
		return to.Family() == types.FloatFamily && tw > fw
	}
	return false
}

func widenFixed[T FixedElement](v *vec[T], to *types.T) Column {
	switch to.Family() {
	case types.IntFamily:
		switch to.Width() {
		case 16:
			return convertFixed[T, int16](v, to)
		case 32:
			return convertFixed[T, int32](v, to)
		case 64:
			return convertFixed[T, int64](v, to)
		}
	case types.UintFamily:
		switch to.Width() {
		case 16:
			return convertFixed[T, uint16](v, to)
		case 32:
			return convertFixed[T, uint32](v, to)
		case 64:
			return convertFixed[T, uint64](v, to)
		}
	case types.FloatFamily:
		switch to.Width() {
		case 32:
			return convertFixed[T, float32](v, to)
		case 64:
			return convertFixed[T, float64](v, to)
		}
	}
	panic(errors.AssertionFailedf("no widening conversion to %s", to))
}

func convertFixed[T, U FixedElement](v *vec[T], to *types.T) Column {
	out := make([]U, len(v.col))
	for i, x := range v.col {
		out[i] = U(x)
	}
	return &vec[U]{t: to, col: out, nulls: v.nulls}
}
