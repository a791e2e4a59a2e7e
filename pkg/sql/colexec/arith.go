// Copyright 2021 Datafuse Labs.
//
// Use of this software is governed by the Apache License, Version 2.0.

package colexec

import (
	"math"

	"github.com/cockroachdb/errors"

	"github.com/lianghanzhen/databend/pkg/col/coldata"
	"github.com/lianghanzhen/databend/pkg/sql/sqlerrors"
	"github.com/lianghanzhen/databend/pkg/sql/types"
)

// EvalArithmetic evaluates a binary arithmetic operator over two columns
// of equal length. Temporal plus-or-minus interval takes the calendar
// route; same-type numeric vectors take the batch kernels; mixed numeric
// types go through promotion and the result carries the promoted type.
// Division and remainder yield NULL in rows whose divisor is zero, and
// each such row with two valid inputs bumps ctx.DivByZero; a nil ctx
// drops the count.
func EvalArithmetic(op ArithOp, left, right coldata.Column, ctx *EvalContext) (coldata.Column, error) {
	if left.Len() != right.Len() {
		return nil, errors.Newf(
			"cannot combine columns of lengths %d and %d", left.Len(), right.Len())
	}
	lt, rt := left.LogicalType(), right.LogicalType()
	if lt.IsTemporal() || rt.IsTemporal() {
		return evalTemporalArith(op, left, right)
	}
	if !lt.IsNumeric() || !rt.IsNumeric() {
		return nil, sqlerrors.NewTypeMismatch(lt, rt)
	}
	_, lc := coldata.IsConst(left)
	_, rc := coldata.IsConst(right)
	if lt.Equal(rt) && !lc && !rc && HasSIMDArithKernel(lt, op) {
		return simdArith(op, left, right)
	}
	return promotedArith(op, left, right, ctx)
}

// promotedArith evaluates arithmetic in the promoted type's domain and
// narrows the result back to the promoted type. Narrowing truncates,
// which matches wraparound arithmetic performed natively at the
// promoted width.
func promotedArith(op ArithOp, l, r coldata.Column, ctx *EvalContext) (coldata.Column, error) {
	m, err := Promote(l.LogicalType(), r.LogicalType())
	if err != nil {
		return nil, err
	}
	n := l.Len()
	dom := domainOf(m)
	a, err := toOperand(l, dom)
	if err != nil {
		return nil, err
	}
	b, err := toOperand(r, dom)
	if err != nil {
		return nil, err
	}
	inNulls := coldata.OrNulls(l.Nulls(), r.Nulls(), n)
	outNulls := inNulls

	divides := op == ArithDiv || op == ArithMod
	markNull := func(i int) {
		if outNulls == inNulls {
			outNulls = coldata.NewNulls(n)
			for j := 0; j < n; j++ {
				if inNulls.NullAt(j) {
					outNulls.SetNull(j)
				}
			}
		}
		outNulls.SetNull(i)
		if ctx != nil && !inNulls.NullAt(i) {
			ctx.DivByZero++
		}
	}

	switch dom {
	case domainInt:
		out := make([]int64, n)
		for i := 0; i < n; i++ {
			x, y := a.intAt(i), b.intAt(i)
			if divides && y == 0 {
				markNull(i)
				continue
			}
			out[i] = intArith(op, x, y)
		}
		return intsColumn(m, out, outNulls), nil
	case domainUint:
		out := make([]uint64, n)
		for i := 0; i < n; i++ {
			x, y := a.uintAt(i), b.uintAt(i)
			if divides && y == 0 {
				markNull(i)
				continue
			}
			out[i] = uintArith(op, x, y)
		}
		return uintsColumn(m, out, outNulls), nil
	case domainFloat:
		out := make([]float64, n)
		for i := 0; i < n; i++ {
			x, y := a.floatAt(i), b.floatAt(i)
			if divides && y == 0 {
				markNull(i)
				continue
			}
			out[i] = floatArith(op, x, y)
		}
		return floatsColumn(m, out, outNulls), nil
	}
	return nil, errors.AssertionFailedf("no evaluation domain for %s", m)
}

func intArith(op ArithOp, x, y int64) int64 {
	switch op {
	case ArithAdd:
		return x + y
	case ArithSub:
		return x - y
	case ArithMul:
		return x * y
	case ArithDiv:
		if y == -1 {
			// MinInt64 / -1 traps natively; negation wraps instead.
			return -x
		}
		return x / y
	case ArithMod:
		if y == -1 {
			return 0
		}
		return x % y
	}
	panic(errors.AssertionFailedf("unknown arithmetic operator %d", op))
}

func uintArith(op ArithOp, x, y uint64) uint64 {
	switch op {
	case ArithAdd:
		return x + y
	case ArithSub:
		return x - y
	case ArithMul:
		return x * y
	case ArithDiv:
		return x / y
	case ArithMod:
		return x % y
	}
	panic(errors.AssertionFailedf("unknown arithmetic operator %d", op))
}

func floatArith(op ArithOp, x, y float64) float64 {
	switch op {
	case ArithAdd:
		return x + y
	case ArithSub:
		return x - y
	case ArithMul:
		return x * y
	case ArithDiv:
		return x / y
	case ArithMod:
		return math.Mod(x, y)
	}
	panic(errors.AssertionFailedf("unknown arithmetic operator %d", op))
}

// intsColumn narrows int64 domain results into a column of the given
// signed integer type.
func intsColumn(t *types.T, vals []int64, nulls *coldata.Nulls) coldata.Column {
	switch t.Width() {
	case 8:
		return coldata.NewFixed(t, convertSlice[int64, int8](vals), nulls)
	case 16:
		return coldata.NewFixed(t, convertSlice[int64, int16](vals), nulls)
	case 32:
		return coldata.NewFixed(t, convertSlice[int64, int32](vals), nulls)
	case 64:
		return coldata.NewFixed(t, vals, nulls)
	}
	panic(errors.AssertionFailedf("bad signed integer width %d", t.Width()))
}

func uintsColumn(t *types.T, vals []uint64, nulls *coldata.Nulls) coldata.Column {
	switch t.Width() {
	case 8:
		return coldata.NewFixed(t, convertSlice[uint64, uint8](vals), nulls)
	case 16:
		return coldata.NewFixed(t, convertSlice[uint64, uint16](vals), nulls)
	case 32:
		return coldata.NewFixed(t, convertSlice[uint64, uint32](vals), nulls)
	case 64:
		return coldata.NewFixed(t, vals, nulls)
	}
	panic(errors.AssertionFailedf("bad unsigned integer width %d", t.Width()))
}

func floatsColumn(t *types.T, vals []float64, nulls *coldata.Nulls) coldata.Column {
	if t.Width() == 32 {
		return coldata.NewFixed(t, convertSlice[float64, float32](vals), nulls)
	}
	return coldata.NewFixed(t, vals, nulls)
}
