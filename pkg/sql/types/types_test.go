// Copyright 2021 Datafuse Labs.
//
// Use of this software is governed by the Apache License, Version 2.0.

package types

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestStringForms(t *testing.T) {
	for _, tc := range []struct {
		typ  *T
		want string
	}{
		{Bool, "Boolean"},
		{Int8, "Int8"},
		{Int64, "Int64"},
		{Uint32, "UInt32"},
		{Float64, "Float64"},
		{String, "Utf8"},
		{Bytes, "Binary"},
		{Date32, "Date32"},
		{Date64, "Date64"},
		{MakeTimestamp(Millisecond, ""), "Timestamp(ms)"},
		{MakeTimestamp(Nanosecond, "UTC"), "Timestamp(ns, UTC)"},
		{IntervalYearMonth, "Interval(YearMonth)"},
		{IntervalDayTime, "Interval(DayTime)"},
	} {
		require.Equal(t, tc.want, tc.typ.String())
	}
}

func TestEqual(t *testing.T) {
	require.True(t, Int32.Equal(Int32))
	require.False(t, Int32.Equal(Int64))
	require.False(t, Int32.Equal(Uint32))
	require.False(t, Date32.Equal(Int32))

	require.True(t, MakeTimestamp(Second, "").Equal(MakeTimestamp(Second, "")))
	require.False(t, MakeTimestamp(Second, "").Equal(MakeTimestamp(Millisecond, "")))
	require.False(t, MakeTimestamp(Second, "UTC").Equal(MakeTimestamp(Second, "")))
	require.False(t, IntervalYearMonth.Equal(IntervalDayTime))
}

func TestPredicates(t *testing.T) {
	require.True(t, Int16.IsNumeric())
	require.True(t, Uint64.IsNumeric())
	require.True(t, Float32.IsNumeric())
	require.False(t, Bool.IsNumeric())
	require.False(t, Date32.IsNumeric())

	require.True(t, Int8.IsInteger())
	require.True(t, Uint8.IsInteger())
	require.False(t, Float64.IsInteger())

	require.True(t, Date64.IsTemporal())
	require.True(t, MakeTimestamp(Microsecond, "").IsTemporal())
	require.True(t, IntervalDayTime.IsTemporal())
	require.False(t, Int64.IsTemporal())

	require.True(t, String.IsBytesLike())
	require.True(t, Bytes.IsBytesLike())
	require.False(t, Bool.IsBytesLike())
}
