// Copyright 2021 Datafuse Labs.
//
// Use of this software is governed by the Apache License, Version 2.0.

package typeconv

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/lianghanzhen/databend/pkg/sql/types"
)

func TestPhysicalOf(t *testing.T) {
	for _, tc := range []struct {
		in   *types.T
		want *types.T
	}{
		{types.Date32, types.Int32},
		{types.Date64, types.Int64},
		{types.MakeTimestamp(types.Second, ""), types.Int64},
		{types.MakeTimestamp(types.Nanosecond, "UTC"), types.Int64},
		{types.IntervalYearMonth, types.Int32},
		{types.IntervalDayTime, types.Int64},
	} {
		require.Equal(t, tc.want, PhysicalOf(tc.in), "%s", tc.in)
		require.False(t, IsPhysical(tc.in))
		require.True(t, IsPhysical(tc.want))
	}
}

func TestPhysicalOfPanicsOnPhysical(t *testing.T) {
	require.Panics(t, func() { PhysicalOf(types.Int32) })
	require.Panics(t, func() { PhysicalOf(types.String) })
}
