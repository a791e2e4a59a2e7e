// Copyright 2021 Datafuse Labs.
//
// Use of this software is governed by the Apache License, Version 2.0.

package colexec

import (
	"testing"

	"github.com/cockroachdb/errors"
	"github.com/stretchr/testify/require"

	"github.com/lianghanzhen/databend/pkg/col/coldata"
	"github.com/lianghanzhen/databend/pkg/sql/sqlerrors"
	"github.com/lianghanzhen/databend/pkg/sql/types"
)

func TestCompareSameTypeBatch(t *testing.T) {
	// More than eight elements so both the unrolled body and the tail
	// run.
	a := coldata.NewFixed(types.Int64, []int64{1, 2, 3, 4, 5, 6, 7, 8, 9, 10}, nil)
	b := coldata.NewFixed(types.Int64, []int64{1, 0, 3, 0, 5, 0, 7, 0, 9, 0}, nil)

	var ctx EvalContext
	res, err := EvalComparison(CmpEq, a, b, &ctx)
	require.NoError(t, err)
	require.Equal(t, types.Bool, res.LogicalType())
	require.Equal(t,
		[]bool{true, false, true, false, true, false, true, false, true, false},
		coldata.Bools(res))

	res, err = EvalComparison(CmpGt, a, b, &ctx)
	require.NoError(t, err)
	require.Equal(t,
		[]bool{false, true, false, true, false, true, false, true, false, true},
		coldata.Bools(res))
}

func TestCompareNullPropagation(t *testing.T) {
	nulls := coldata.NewNulls(3)
	nulls.SetNull(1)
	a := coldata.NewFixed(types.Int64, []int64{1, 2, 3}, nulls)
	b := coldata.NewFixed(types.Int64, []int64{1, 2, 3}, nil)

	var ctx EvalContext
	res, err := EvalComparison(CmpEq, a, b, &ctx)
	require.NoError(t, err)
	isNull, err := res.IsNull(1)
	require.NoError(t, err)
	require.True(t, isNull)
	require.Equal(t, 1, res.NullCount())
}

func TestComparePromotion(t *testing.T) {
	a := coldata.NewFixed(types.Int32, []int32{1, 2, 3}, nil)
	b := coldata.NewFixed(types.Int64, []int64{1, 5, 3}, nil)

	var ctx EvalContext
	res, err := EvalComparison(CmpEq, a, b, &ctx)
	require.NoError(t, err)
	require.Equal(t, []bool{true, false, true}, coldata.Bools(res))

	res, err = EvalComparison(CmpLe, a, b, &ctx)
	require.NoError(t, err)
	require.Equal(t, []bool{true, true, true}, coldata.Bools(res))

	// Mixed signedness promotes through the signed domain.
	u := coldata.NewFixed(types.Uint16, []uint16{1, 60000, 3}, nil)
	s := coldata.NewFixed(types.Int8, []int8{1, -5, 4}, nil)
	res, err = EvalComparison(CmpGt, u, s, &ctx)
	require.NoError(t, err)
	require.Equal(t, []bool{false, true, false}, coldata.Bools(res))

	// Int64 against UInt64 promotes to Float64.
	i := coldata.NewFixed(types.Int64, []int64{-1, 10}, nil)
	w := coldata.NewFixed(types.Uint64, []uint64{1, 10}, nil)
	res, err = EvalComparison(CmpLt, i, w, &ctx)
	require.NoError(t, err)
	require.Equal(t, []bool{true, false}, coldata.Bools(res))
}

func TestCompareConstOperand(t *testing.T) {
	a := coldata.NewFixed(types.Int64, []int64{1, 2, 3}, nil)
	c := coldata.NewConst(coldata.NewDatum(types.Int32, int32(2)), 3)

	var ctx EvalContext
	res, err := EvalComparison(CmpGe, a, c, &ctx)
	require.NoError(t, err)
	require.Equal(t, []bool{false, true, true}, coldata.Bools(res))

	res, err = EvalComparison(CmpEq, c, a, &ctx)
	require.NoError(t, err)
	require.Equal(t, []bool{false, true, false}, coldata.Bools(res))
}

func TestCompareBooleans(t *testing.T) {
	a := coldata.NewBools([]bool{true, false, true, false}, nil)
	b := coldata.NewBools([]bool{true, true, false, false}, nil)

	var ctx EvalContext
	res, err := EvalComparison(CmpEq, a, b, &ctx)
	require.NoError(t, err)
	require.Equal(t, []bool{true, false, false, true}, coldata.Bools(res))

	res, err = EvalComparison(CmpNe, a, b, &ctx)
	require.NoError(t, err)
	require.Equal(t, []bool{false, true, true, false}, coldata.Bools(res))

	_, err = EvalComparison(CmpLt, a, b, &ctx)
	require.True(t, errors.Is(err, sqlerrors.ErrTypeMismatch))
}

func TestCompareBooleanConst(t *testing.T) {
	col := coldata.NewBools([]bool{true, false, true}, nil)
	cTrue := coldata.NewConst(coldata.NewDatum(types.Bool, true), 3)
	cFalse := coldata.NewConst(coldata.NewDatum(types.Bool, false), 3)

	var ctx EvalContext
	// eq(col, true) is the identity projection of col.
	res, err := EvalComparison(CmpEq, col, cTrue, &ctx)
	require.NoError(t, err)
	require.Equal(t, []bool{true, false, true}, coldata.Bools(res))

	// eq(col, false) is its negation.
	res, err = EvalComparison(CmpEq, col, cFalse, &ctx)
	require.NoError(t, err)
	require.Equal(t, []bool{false, true, false}, coldata.Bools(res))

	// neq mirrors both, and the const side commutes.
	res, err = EvalComparison(CmpNe, cTrue, col, &ctx)
	require.NoError(t, err)
	require.Equal(t, []bool{false, true, false}, coldata.Bools(res))

	res, err = EvalComparison(CmpNe, col, cFalse, &ctx)
	require.NoError(t, err)
	require.Equal(t, []bool{true, false, true}, coldata.Bools(res))
}

func TestCompareBytes(t *testing.T) {
	a := coldata.NewStrings([]string{"apple", "pear", ""}, nil)
	b := coldata.NewStrings([]string{"apple", "peach", "z"}, nil)

	var ctx EvalContext
	res, err := EvalComparison(CmpEq, a, b, &ctx)
	require.NoError(t, err)
	require.Equal(t, []bool{true, false, false}, coldata.Bools(res))

	res, err = EvalComparison(CmpLt, a, b, &ctx)
	require.NoError(t, err)
	require.Equal(t, []bool{false, false, true}, coldata.Bools(res))

	c := coldata.NewConst(coldata.NewDatum(types.String, "pear"), 3)
	res, err = EvalComparison(CmpEq, a, c, &ctx)
	require.NoError(t, err)
	require.Equal(t, []bool{false, true, false}, coldata.Bools(res))

	res, err = EvalComparison(CmpGe, c, a, &ctx)
	require.NoError(t, err)
	require.Equal(t, []bool{true, true, true}, coldata.Bools(res))
}

func TestCompareTemporal(t *testing.T) {
	a := coldata.NewFixed(types.Date32, []int32{100, 200}, nil)
	b := coldata.NewFixed(types.Date32, []int32{100, 300}, nil)

	var ctx EvalContext
	res, err := EvalComparison(CmpEq, a, b, &ctx)
	require.NoError(t, err)
	require.Equal(t, []bool{true, false}, coldata.Bools(res))

	res, err = EvalComparison(CmpLt, a, b, &ctx)
	require.NoError(t, err)
	require.Equal(t, []bool{false, true}, coldata.Bools(res))

	// A Date64 column is equal to itself in every row, and the result is
	// Boolean, not the physical integer type.
	d := coldata.NewFixed(types.Date64, []int64{1580464800000, 1582970400000}, nil)
	res, err = EvalComparison(CmpEq, d, d, &ctx)
	require.NoError(t, err)
	require.Equal(t, types.Bool, res.LogicalType())
	require.Equal(t, []bool{true, true}, coldata.Bools(res))
}

func TestCompareErrors(t *testing.T) {
	var ctx EvalContext

	bools := coldata.NewBools([]bool{true}, nil)
	ints := coldata.NewFixed(types.Int64, []int64{1}, nil)
	_, err := EvalComparison(CmpEq, bools, ints, &ctx)
	require.True(t, errors.Is(err, sqlerrors.ErrTypeMismatch))

	strs := coldata.NewStrings([]string{"a"}, nil)
	_, err = EvalComparison(CmpEq, strs, ints, &ctx)
	require.True(t, errors.Is(err, sqlerrors.ErrTypeMismatch))

	short := coldata.NewFixed(types.Int64, []int64{1, 2}, nil)
	_, err = EvalComparison(CmpEq, ints, short, &ctx)
	require.Error(t, err)
}
