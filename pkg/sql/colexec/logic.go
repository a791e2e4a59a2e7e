// Copyright 2021 Datafuse Labs.
//
// Use of this software is governed by the Apache License, Version 2.0.

package colexec

import (
	"github.com/cockroachdb/errors"

	"github.com/lianghanzhen/databend/pkg/col/coldata"
	"github.com/lianghanzhen/databend/pkg/sql/sqlerrors"
	"github.com/lianghanzhen/databend/pkg/sql/types"
)

// EvalLogic conjoins or disjoins two Boolean columns of equal length.
// A NULL on either side yields NULL in that row. Conjunction with the
// constant true and disjunction with the constant false are identity
// projections sharing the operand's storage.
func EvalLogic(op LogicOp, left, right coldata.Column) (coldata.Column, error) {
	if left.Len() != right.Len() {
		return nil, errors.Newf(
			"cannot combine columns of lengths %d and %d", left.Len(), right.Len())
	}
	lt, rt := left.LogicalType(), right.LogicalType()
	if lt.Family() != types.BoolFamily || rt.Family() != types.BoolFamily {
		return nil, sqlerrors.NewTypeMismatch(lt, rt)
	}
	n := left.Len()
	nulls := coldata.OrNulls(left.Nulls(), right.Nulls(), n)
	and := op == LogicAnd

	ld, lc := coldata.IsConst(left)
	rd, rc := coldata.IsConst(right)
	if (lc && ld.IsNull()) || (rc && rd.IsNull()) {
		return coldata.NewBools(make([]bool, n), allNulls(n)), nil
	}
	switch {
	case lc && rc:
		v := rd.Bool()
		if and {
			v = ld.Bool() && v
		} else {
			v = ld.Bool() || v
		}
		out := make([]bool, n)
		for i := range out {
			out[i] = v
		}
		return coldata.NewBools(out, nulls), nil
	case lc:
		return boolLogicConst(right, ld.Bool(), and, nulls), nil
	case rc:
		return boolLogicConst(left, rd.Bool(), and, nulls), nil
	}
	a, b := coldata.Bools(left), coldata.Bools(right)
	out := make([]bool, n)
	if and {
		for i := 0; i < n; i++ {
			out[i] = a[i] && b[i]
		}
	} else {
		for i := 0; i < n; i++ {
			out[i] = a[i] || b[i]
		}
	}
	return coldata.NewBools(out, nulls), nil
}

// boolLogicConst combines a Boolean vector with a constant. AND with
// true and OR with false are the identity projection; AND with false
// and OR with true saturate to the constant.
func boolLogicConst(v coldata.Column, c bool, and bool, nulls *coldata.Nulls) coldata.Column {
	vals := coldata.Bools(v)
	if c == and {
		// Identity: the result shares the operand's storage.
		return coldata.NewBools(vals, nulls)
	}
	out := make([]bool, len(vals))
	if !and {
		for i := range out {
			out[i] = true
		}
	}
	return coldata.NewBools(out, nulls)
}
