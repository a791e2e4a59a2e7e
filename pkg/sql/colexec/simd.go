// Copyright 2021 Datafuse Labs.
//
// Use of this software is governed by the Apache License, Version 2.0.

package colexec

import (
	"github.com/cockroachdb/errors"
	"github.com/lianghanzhen/databend/pkg/col/coldata"
	"github.com/lianghanzhen/databend/pkg/sql/types"
)

// The SIMD batch path. Kernels process fixed-width lanes of eight
// elements with the loop body fully unrolled, which the compiler
// auto-vectorizes for the primitive element types. Selection is a
// capability query with a guaranteed fallback: when no kernel exists
// the evaluation takes the scalar promotion path instead of failing.

const simdLanes = 8

// HasSIMDCmpKernel reports whether a comparison between two vectors of
// exactly this physical type runs on the batch path.
func HasSIMDCmpKernel(t *types.T, op CmpOp) bool {
	return t.IsNumeric()
}

// HasSIMDArithKernel reports whether arithmetic between two vectors of
// exactly this physical type runs on the batch path. Division and
// remainder carry the null-on-zero-divisor policy and always take the
// scalar path.
func HasSIMDArithKernel(t *types.T, op ArithOp) bool {
	switch op {
	case ArithAdd, ArithSub, ArithMul:
		return t.IsNumeric()
	}
	return false
}

func cmpPred[T coldata.FixedElement](op CmpOp) func(T, T) bool {
	switch op {
	case CmpEq:
		return func(x, y T) bool { return x == y }
	case CmpNe:
		return func(x, y T) bool { return x != y }
	case CmpLt:
		return func(x, y T) bool { return x < y }
	case CmpLe:
		return func(x, y T) bool { return x <= y }
	case CmpGt:
		return func(x, y T) bool { return x > y }
	case CmpGe:
		return func(x, y T) bool { return x >= y }
	}
	panic(errors.AssertionFailedf("no comparison predicate for %s", op))
}

func cmpSIMD[T coldata.FixedElement](a, b []T, op CmpOp) []bool {
	pred := cmpPred[T](op)
	n := len(a)
	out := make([]bool, n)
	i := 0
	for ; i+simdLanes <= n; i += simdLanes {
		out[i+0] = pred(a[i+0], b[i+0])
		out[i+1] = pred(a[i+1], b[i+1])
		out[i+2] = pred(a[i+2], b[i+2])
		out[i+3] = pred(a[i+3], b[i+3])
		out[i+4] = pred(a[i+4], b[i+4])
		out[i+5] = pred(a[i+5], b[i+5])
		out[i+6] = pred(a[i+6], b[i+6])
		out[i+7] = pred(a[i+7], b[i+7])
	}
	for ; i < n; i++ {
		out[i] = pred(a[i], b[i])
	}
	return out
}

func arithLane[T coldata.FixedElement](op ArithOp) func(T, T) T {
	switch op {
	case ArithAdd:
		return func(x, y T) T { return x + y }
	case ArithSub:
		return func(x, y T) T { return x - y }
	case ArithMul:
		return func(x, y T) T { return x * y }
	}
	panic(errors.AssertionFailedf("no batch lane for %s", op))
}

func arithSIMD[T coldata.FixedElement](a, b []T, op ArithOp) []T {
	lane := arithLane[T](op)
	n := len(a)
	out := make([]T, n)
	i := 0
	for ; i+simdLanes <= n; i += simdLanes {
		out[i+0] = lane(a[i+0], b[i+0])
		out[i+1] = lane(a[i+1], b[i+1])
		out[i+2] = lane(a[i+2], b[i+2])
		out[i+3] = lane(a[i+3], b[i+3])
		out[i+4] = lane(a[i+4], b[i+4])
		out[i+5] = lane(a[i+5], b[i+5])
		out[i+6] = lane(a[i+6], b[i+6])
		out[i+7] = lane(a[i+7], b[i+7])
	}
	for ; i < n; i++ {
		out[i] = lane(a[i], b[i])
	}
	return out
}

// simdCompare runs the batch comparison over two vectors of the same
// physical type. The result's validity is the OR of both operand
// bitmaps.
func simdCompare(op CmpOp, l, r coldata.Column) (coldata.Column, error) {
	t := l.LogicalType()
	var out []bool
	switch {
	case t.Family() == types.IntFamily && t.Width() == 8:
		out = cmpSIMD(coldata.Fixed[int8](l), coldata.Fixed[int8](r), op)
	case t.Family() == types.IntFamily && t.Width() == 16:
		out = cmpSIMD(coldata.Fixed[int16](l), coldata.Fixed[int16](r), op)
	case t.Family() == types.IntFamily && t.Width() == 32:
		out = cmpSIMD(coldata.Fixed[int32](l), coldata.Fixed[int32](r), op)
	case t.Family() == types.IntFamily && t.Width() == 64:
		out = cmpSIMD(coldata.Fixed[int64](l), coldata.Fixed[int64](r), op)
	case t.Family() == types.UintFamily && t.Width() == 8:
		out = cmpSIMD(coldata.Fixed[uint8](l), coldata.Fixed[uint8](r), op)
	case t.Family() == types.UintFamily && t.Width() == 16:
		out = cmpSIMD(coldata.Fixed[uint16](l), coldata.Fixed[uint16](r), op)
	case t.Family() == types.UintFamily && t.Width() == 32:
		out = cmpSIMD(coldata.Fixed[uint32](l), coldata.Fixed[uint32](r), op)
	case t.Family() == types.UintFamily && t.Width() == 64:
		out = cmpSIMD(coldata.Fixed[uint64](l), coldata.Fixed[uint64](r), op)
	case t.Family() == types.FloatFamily && t.Width() == 32:
		out = cmpSIMD(coldata.Fixed[float32](l), coldata.Fixed[float32](r), op)
	case t.Family() == types.FloatFamily && t.Width() == 64:
		out = cmpSIMD(coldata.Fixed[float64](l), coldata.Fixed[float64](r), op)
	default:
		return nil, errors.AssertionFailedf("no batch comparison kernel for %s", t)
	}
	return coldata.NewBools(out, coldata.OrNulls(l.Nulls(), r.Nulls(), l.Len())), nil
}

// simdArith runs the batch arithmetic over two vectors of the same
// physical type, keeping that type.
func simdArith(op ArithOp, l, r coldata.Column) (coldata.Column, error) {
	t := l.LogicalType()
	nulls := coldata.OrNulls(l.Nulls(), r.Nulls(), l.Len())
	switch {
	case t.Family() == types.IntFamily && t.Width() == 8:
		return coldata.NewFixed(t, arithSIMD(coldata.Fixed[int8](l), coldata.Fixed[int8](r), op), nulls), nil
	case t.Family() == types.IntFamily && t.Width() == 16:
		return coldata.NewFixed(t, arithSIMD(coldata.Fixed[int16](l), coldata.Fixed[int16](r), op), nulls), nil
	case t.Family() == types.IntFamily && t.Width() == 32:
		return coldata.NewFixed(t, arithSIMD(coldata.Fixed[int32](l), coldata.Fixed[int32](r), op), nulls), nil
	case t.Family() == types.IntFamily && t.Width() == 64:
		return coldata.NewFixed(t, arithSIMD(coldata.Fixed[int64](l), coldata.Fixed[int64](r), op), nulls), nil
	case t.Family() == types.UintFamily && t.Width() == 8:
		return coldata.NewFixed(t, arithSIMD(coldata.Fixed[uint8](l), coldata.Fixed[uint8](r), op), nulls), nil
	case t.Family() == types.UintFamily && t.Width() == 16:
		return coldata.NewFixed(t, arithSIMD(coldata.Fixed[uint16](l), coldata.Fixed[uint16](r), op), nulls), nil
	case t.Family() == types.UintFamily && t.Width() == 32:
		return coldata.NewFixed(t, arithSIMD(coldata.Fixed[uint32](l), coldata.Fixed[uint32](r), op), nulls), nil
	case t.Family() == types.UintFamily && t.Width() == 64:
		return coldata.NewFixed(t, arithSIMD(coldata.Fixed[uint64](l), coldata.Fixed[uint64](r), op), nulls), nil
	case t.Family() == types.FloatFamily && t.Width() == 32:
		return coldata.NewFixed(t, arithSIMD(coldata.Fixed[float32](l), coldata.Fixed[float32](r), op), nulls), nil
	case t.Family() == types.FloatFamily && t.Width() == 64:
		return coldata.NewFixed(t, arithSIMD(coldata.Fixed[float64](l), coldata.Fixed[float64](r), op), nulls), nil
	}
	return nil, errors.AssertionFailedf("no batch arithmetic kernel for %s", t)
}
