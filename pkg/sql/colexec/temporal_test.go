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

func TestDateAddDayTimeInterval(t *testing.T) {
	// 2022-01-01 is day 18993.
	date := coldata.NewFixed(types.Date32, []int32{18993, 19000}, nil)
	day := coldata.NewConst(coldata.NewDatum(types.IntervalDayTime, int64(millisPerDay)), 2)

	var ctx EvalContext
	res, err := EvalArithmetic(ArithAdd, date, day, &ctx)
	require.NoError(t, err)
	require.Equal(t, types.Date32, res.LogicalType())
	require.Equal(t, []int32{18994, 19001}, coldata.Fixed[int32](res))

	res, err = EvalArithmetic(ArithSub, date, day, &ctx)
	require.NoError(t, err)
	require.Equal(t, []int32{18992, 18999}, coldata.Fixed[int32](res))

	// A day-time interval shorter than a whole day does not move a
	// Date32.
	hour := coldata.NewConst(coldata.NewDatum(types.IntervalDayTime, int64(3600*1000)), 2)
	res, err = EvalArithmetic(ArithAdd, date, hour, &ctx)
	require.NoError(t, err)
	require.Equal(t, []int32{18993, 19000}, coldata.Fixed[int32](res))
}

func TestDateAddYearMonthClamps(t *testing.T) {
	// 2021-01-31 is day 18658; one month later clamps to 2021-02-28,
	// day 18686.
	date := coldata.NewFixed(types.Date32, []int32{18658}, nil)
	month := coldata.NewConst(coldata.NewDatum(types.IntervalYearMonth, int32(1)), 1)

	var ctx EvalContext
	res, err := EvalArithmetic(ArithAdd, date, month, &ctx)
	require.NoError(t, err)
	require.Equal(t, types.Date32, res.LogicalType())
	require.Equal(t, []int32{18686}, coldata.Fixed[int32](res))

	// 2021-03-31 is day 18717; one month earlier clamps to 2021-02-28.
	mar := coldata.NewFixed(types.Date32, []int32{18717}, nil)
	res, err = EvalArithmetic(ArithSub, mar, month, &ctx)
	require.NoError(t, err)
	require.Equal(t, []int32{18686}, coldata.Fixed[int32](res))

	// 2020-01-31 is day 18292; 2020 is a leap year, so one month later
	// is 2020-02-29, day 18321.
	leap := coldata.NewFixed(types.Date32, []int32{18292}, nil)
	res, err = EvalArithmetic(ArithAdd, leap, month, &ctx)
	require.NoError(t, err)
	require.Equal(t, []int32{18321}, coldata.Fixed[int32](res))
}

func TestDate64Arithmetic(t *testing.T) {
	// 2022-01-01T00:00:00Z in milliseconds.
	const jan1 = int64(18993) * millisPerDay
	date := coldata.NewFixed(types.Date64, []int64{jan1}, nil)
	day := coldata.NewConst(coldata.NewDatum(types.IntervalDayTime, int64(millisPerDay)), 1)

	var ctx EvalContext
	res, err := EvalArithmetic(ArithAdd, date, day, &ctx)
	require.NoError(t, err)
	require.Equal(t, types.Date64, res.LogicalType())
	require.Equal(t, []int64{jan1 + millisPerDay}, coldata.Fixed[int64](res))

	year := coldata.NewConst(coldata.NewDatum(types.IntervalYearMonth, int32(12)), 1)
	res, err = EvalArithmetic(ArithAdd, date, year, &ctx)
	require.NoError(t, err)
	require.Equal(t, types.Date64, res.LogicalType())
	// 2023-01-01 is day 19358.
	require.Equal(t, []int64{int64(19358) * millisPerDay}, coldata.Fixed[int64](res))
}

func TestTimestampUnitScaling(t *testing.T) {
	var ctx EvalContext

	secs := types.MakeTimestamp(types.Second, "")
	ts := coldata.NewFixed(secs, []int64{1_000_000}, nil)
	iv := coldata.NewConst(coldata.NewDatum(types.IntervalDayTime, int64(1500)), 1)
	res, err := EvalArithmetic(ArithAdd, ts, iv, &ctx)
	require.NoError(t, err)
	require.Equal(t, secs, res.LogicalType())
	// 1500ms truncates to one second.
	require.Equal(t, []int64{1_000_001}, coldata.Fixed[int64](res))

	micros := types.MakeTimestamp(types.Microsecond, "")
	tu := coldata.NewFixed(micros, []int64{1_000_000}, nil)
	one := coldata.NewConst(coldata.NewDatum(types.IntervalDayTime, int64(1)), 1)
	res, err = EvalArithmetic(ArithAdd, tu, one, &ctx)
	require.NoError(t, err)
	require.Equal(t, []int64{1_001_000}, coldata.Fixed[int64](res))
}

func TestTimestampYearMonth(t *testing.T) {
	secs := types.MakeTimestamp(types.Second, "")
	// 2020-01-31T10:00:00Z.
	ts := coldata.NewFixed(secs, []int64{1580464800}, nil)
	month := coldata.NewConst(coldata.NewDatum(types.IntervalYearMonth, int32(1)), 1)

	var ctx EvalContext
	res, err := EvalArithmetic(ArithAdd, ts, month, &ctx)
	require.NoError(t, err)
	require.Equal(t, secs, res.LogicalType())
	// 2020-02-29T10:00:00Z, clock preserved.
	require.Equal(t, []int64{1582970400}, coldata.Fixed[int64](res))
}

func TestIntervalCommutes(t *testing.T) {
	date := coldata.NewFixed(types.Date32, []int32{100}, nil)
	day := coldata.NewConst(coldata.NewDatum(types.IntervalDayTime, int64(millisPerDay)), 1)

	var ctx EvalContext
	res, err := EvalArithmetic(ArithAdd, day, date, &ctx)
	require.NoError(t, err)
	require.Equal(t, types.Date32, res.LogicalType())
	require.Equal(t, []int32{101}, coldata.Fixed[int32](res))

	// interval - date is not defined.
	_, err = EvalArithmetic(ArithSub, day, date, &ctx)
	require.True(t, errors.Is(err, sqlerrors.ErrTypeMismatch))
}

func TestIntervalPlusInterval(t *testing.T) {
	a := coldata.NewFixed(types.IntervalYearMonth, []int32{3, -1}, nil)
	b := coldata.NewFixed(types.IntervalYearMonth, []int32{4, 1}, nil)

	var ctx EvalContext
	res, err := EvalArithmetic(ArithAdd, a, b, &ctx)
	require.NoError(t, err)
	require.Equal(t, types.IntervalYearMonth, res.LogicalType())
	require.Equal(t, []int32{7, 0}, coldata.Fixed[int32](res))

	c := coldata.NewFixed(types.IntervalDayTime, []int64{1000, 2000}, nil)
	_, err = EvalArithmetic(ArithAdd, a, c, &ctx)
	require.True(t, errors.Is(err, sqlerrors.ErrTypeMismatch))
}

func TestTemporalDifference(t *testing.T) {
	a := coldata.NewFixed(types.Date32, []int32{110}, nil)
	b := coldata.NewFixed(types.Date32, []int32{100}, nil)

	var ctx EvalContext
	res, err := EvalArithmetic(ArithSub, a, b, &ctx)
	require.NoError(t, err)
	require.Equal(t, types.Int32, res.LogicalType())
	require.Equal(t, []int32{10}, coldata.Fixed[int32](res))
}

func TestTemporalInvalidOps(t *testing.T) {
	date := coldata.NewFixed(types.Date32, []int32{100}, nil)
	day := coldata.NewConst(coldata.NewDatum(types.IntervalDayTime, int64(1)), 1)

	var ctx EvalContext
	_, err := EvalArithmetic(ArithMul, date, day, &ctx)
	require.True(t, errors.Is(err, sqlerrors.ErrTypeMismatch))
	_, err = EvalArithmetic(ArithDiv, date, date, &ctx)
	require.True(t, errors.Is(err, sqlerrors.ErrTypeMismatch))
}
