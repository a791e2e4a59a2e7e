// Copyright 2021 Datafuse Labs.
//
// Use of this software is governed by the Apache License, Version 2.0.

package colexec

import (
	"bytes"

	"github.com/cockroachdb/errors"

	"github.com/lianghanzhen/databend/pkg/col/coldata"
	"github.com/lianghanzhen/databend/pkg/sql/sqlerrors"
	"github.com/lianghanzhen/databend/pkg/sql/types"
)

// EvalComparison compares two columns of equal length and produces a
// Boolean column. Routing, in order: Boolean operands take the
// xor-based special case, bytes-like operands take the raw-byte path,
// temporal operands are resolved to their physical representation,
// same-type numeric vectors take the batch kernels, and everything
// else goes through numeric promotion. A NULL on either side yields
// NULL in that row.
func EvalComparison(op CmpOp, left, right coldata.Column, ctx *EvalContext) (coldata.Column, error) {
	if left.Len() != right.Len() {
		return nil, errors.Newf(
			"cannot compare columns of lengths %d and %d", left.Len(), right.Len())
	}
	lt, rt := left.LogicalType(), right.LogicalType()

	if lt.Family() == types.BoolFamily && rt.Family() == types.BoolFamily {
		return evalBoolCmp(op, left, right)
	}
	if lt.IsBytesLike() && rt.IsBytesLike() {
		return evalBytesCmp(op, left, right)
	}

	l, r := left, right
	if lt.IsTemporal() {
		var err error
		if l, err = coldata.PhysicalOperand(left); err != nil {
			return nil, err
		}
	}
	if rt.IsTemporal() {
		var err error
		if r, err = coldata.PhysicalOperand(right); err != nil {
			return nil, err
		}
	}
	lt, rt = l.LogicalType(), r.LogicalType()
	if !lt.IsNumeric() || !rt.IsNumeric() {
		return nil, sqlerrors.NewTypeMismatch(left.LogicalType(), right.LogicalType())
	}

	_, lc := coldata.IsConst(l)
	_, rc := coldata.IsConst(r)
	if lt.Equal(rt) && !lc && !rc && HasSIMDCmpKernel(lt, op) {
		return simdCompare(op, l, r)
	}
	return promotedCompare(op, l, r)
}

// promotedCompare evaluates a comparison between numeric columns of
// differing types by widening both sides into the promoted domain.
// Constant operands are read with stride zero instead of being
// materialized.
func promotedCompare(op CmpOp, l, r coldata.Column) (coldata.Column, error) {
	m, err := Promote(l.LogicalType(), r.LogicalType())
	if err != nil {
		return nil, err
	}
	n := l.Len()
	a, err := toOperand(l, domainOf(m))
	if err != nil {
		return nil, err
	}
	b, err := toOperand(r, domainOf(m))
	if err != nil {
		return nil, err
	}
	out := make([]bool, n)
	switch domainOf(m) {
	case domainInt:
		pred := cmpPred[int64](op)
		for i := 0; i < n; i++ {
			out[i] = pred(a.intAt(i), b.intAt(i))
		}
	case domainUint:
		pred := cmpPred[uint64](op)
		for i := 0; i < n; i++ {
			out[i] = pred(a.uintAt(i), b.uintAt(i))
		}
	case domainFloat:
		pred := cmpPred[float64](op)
		for i := 0; i < n; i++ {
			out[i] = pred(a.floatAt(i), b.floatAt(i))
		}
	}
	return coldata.NewBools(out, coldata.OrNulls(l.Nulls(), r.Nulls(), n)), nil
}

// evalBytesCmp compares Utf8 or Binary columns bytewise, with no
// collation or decoding. All six operators are defined; ordering is
// lexicographic on the raw bytes.
func evalBytesCmp(op CmpOp, l, r coldata.Column) (coldata.Column, error) {
	n := l.Len()
	nulls := coldata.OrNulls(l.Nulls(), r.Nulls(), n)
	pred := bytesPred(op)
	out := make([]bool, n)

	ld, lc := coldata.IsConst(l)
	rd, rc := coldata.IsConst(r)
	if (lc && ld.IsNull()) || (rc && rd.IsNull()) {
		return coldata.NewBools(out, allNulls(n)), nil
	}
	switch {
	case lc && rc:
		v := pred(ld.Bytes(), rd.Bytes())
		for i := range out {
			out[i] = v
		}
	case lc:
		lv := ld.Bytes()
		rb := coldata.ByteStrings(r)
		for i := 0; i < n; i++ {
			out[i] = pred(lv, rb.Get(i))
		}
	case rc:
		rv := rd.Bytes()
		lb := coldata.ByteStrings(l)
		for i := 0; i < n; i++ {
			out[i] = pred(lb.Get(i), rv)
		}
	default:
		lb, rb := coldata.ByteStrings(l), coldata.ByteStrings(r)
		for i := 0; i < n; i++ {
			out[i] = pred(lb.Get(i), rb.Get(i))
		}
	}
	return coldata.NewBools(out, nulls), nil
}

func bytesPred(op CmpOp) func(a, b []byte) bool {
	switch op {
	case CmpEq:
		return bytes.Equal
	case CmpNe:
		return func(a, b []byte) bool { return !bytes.Equal(a, b) }
	case CmpLt:
		return func(a, b []byte) bool { return bytes.Compare(a, b) < 0 }
	case CmpLe:
		return func(a, b []byte) bool { return bytes.Compare(a, b) <= 0 }
	case CmpGt:
		return func(a, b []byte) bool { return bytes.Compare(a, b) > 0 }
	case CmpGe:
		return func(a, b []byte) bool { return bytes.Compare(a, b) >= 0 }
	}
	panic(errors.AssertionFailedf("unknown comparison operator %d", op))
}
