// Copyright 2021 Datafuse Labs.
//
// Use of this software is governed by the Apache License, Version 2.0.

package colexec

import (
	"github.com/lianghanzhen/databend/pkg/col/coldata"
	"github.com/lianghanzhen/databend/pkg/sql/sqlerrors"
)

// Boolean equality is a dedicated special case, not routed through
// numeric promotion: eq(a, b) = NOT(a XOR b). Against a constant,
// eq(col, true) is the identity projection of col and eq(col, false)
// is its logical negation; neq mirrors both. Separate vector/vector,
// vector/const and const/vector shapes exist because Boolean storage is
// one semantic bit per row.

func evalBoolCmp(op CmpOp, l, r coldata.Column) (coldata.Column, error) {
	switch op {
	case CmpEq, CmpNe:
	default:
		// Booleans have no defined ordering here.
		return nil, sqlerrors.NewTypeMismatch(l.LogicalType(), r.LogicalType())
	}
	neq := op == CmpNe
	n := l.Len()
	nulls := coldata.OrNulls(l.Nulls(), r.Nulls(), n)

	ld, lc := coldata.IsConst(l)
	rd, rc := coldata.IsConst(r)
	if (lc && ld.IsNull()) || (rc && rd.IsNull()) {
		return coldata.NewBools(make([]bool, n), allNulls(n)), nil
	}
	switch {
	case lc && rc:
		out := make([]bool, n)
		v := (ld.Bool() == rd.Bool()) != neq
		for i := range out {
			out[i] = v
		}
		return coldata.NewBools(out, nulls), nil
	case lc:
		return boolVectorConst(r, ld.Bool(), neq, nulls), nil
	case rc:
		return boolVectorConst(l, rd.Bool(), neq, nulls), nil
	}
	a, b := coldata.Bools(l), coldata.Bools(r)
	out := make([]bool, n)
	for i := 0; i < n; i++ {
		// NOT(a XOR b), or the XOR itself for neq.
		out[i] = (a[i] != b[i]) == neq
	}
	return coldata.NewBools(out, nulls), nil
}

// boolVectorConst compares a Boolean vector against a constant:
// comparing with true is the identity projection, comparing with false
// is the negation; neq swaps the two.
func boolVectorConst(v coldata.Column, c bool, neq bool, nulls *coldata.Nulls) coldata.Column {
	vals := coldata.Bools(v)
	if c != neq {
		// Identity: the result shares the operand's storage.
		return coldata.NewBools(vals, nulls)
	}
	out := make([]bool, len(vals))
	for i, x := range vals {
		out[i] = !x
	}
	return coldata.NewBools(out, nulls)
}

func allNulls(n int) *coldata.Nulls {
	nulls := coldata.NewNulls(n)
	for i := 0; i < n; i++ {
		nulls.SetNull(i)
	}
	return nulls
}
