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

func TestRegistryAliases(t *testing.T) {
	for _, name := range []string{
		"=", "!=", "<>", "<", "<=", ">", ">=", "+", "-", "*", "/", "%",
		"and", "or",
	} {
		f, err := TryCreate(name)
		require.NoError(t, err, "%s", name)
		require.Equal(t, name, f.Name())
	}

	// "!=" and "<>" are the same function.
	a := coldata.NewFixed(types.Int64, []int64{1, 2}, nil)
	b := coldata.NewFixed(types.Int64, []int64{1, 3}, nil)
	var ctx EvalContext
	for _, name := range []string{"!=", "<>"} {
		f, err := TryCreate(name)
		require.NoError(t, err)
		res, err := f.Eval(&ctx, a, b)
		require.NoError(t, err)
		require.Equal(t, []bool{false, true}, coldata.Bools(res))
	}
}

func TestRegistryUnknownName(t *testing.T) {
	_, err := TryCreate("concat")
	require.True(t, errors.Is(err, sqlerrors.ErrUnknownFunction))
}

func TestFunctionEval(t *testing.T) {
	var ctx EvalContext
	a := coldata.NewFixed(types.Int64, []int64{6, 9}, nil)
	b := coldata.NewFixed(types.Int64, []int64{3, 0}, nil)

	add, err := TryCreate("+")
	require.NoError(t, err)
	res, err := add.Eval(&ctx, a, b)
	require.NoError(t, err)
	require.Equal(t, []int64{9, 9}, coldata.Fixed[int64](res))

	div, err := TryCreate("/")
	require.NoError(t, err)
	res, err = div.Eval(&ctx, a, b)
	require.NoError(t, err)
	require.Equal(t, 1, ctx.DivByZero)
	isNull, err := res.IsNull(1)
	require.NoError(t, err)
	require.True(t, isNull)

	_, err = add.Eval(&ctx, a)
	require.Error(t, err)
}

func TestFunctionVectorConstShape(t *testing.T) {
	var ctx EvalContext
	col := coldata.NewFixed(types.Int64, []int64{1, 5, 3}, nil)
	three := coldata.NewConst(coldata.NewDatum(types.Int64, int64(3)), 3)

	ge, err := TryCreate(">=")
	require.NoError(t, err)
	res, err := ge.Eval(&ctx, col, three)
	require.NoError(t, err)
	require.Equal(t, []bool{false, true, true}, coldata.Bools(res))

	res, err = ge.Eval(&ctx, three, col)
	require.NoError(t, err)
	require.Equal(t, []bool{true, false, true}, coldata.Bools(res))
}
