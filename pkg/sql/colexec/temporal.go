// Copyright 2021 Datafuse Labs.
//
// Use of this software is governed by the Apache License, Version 2.0.

package colexec

import (
	"time"

	"github.com/cockroachdb/errors"

	"github.com/lianghanzhen/databend/pkg/col/coldata"
	"github.com/lianghanzhen/databend/pkg/sql/sqlerrors"
	"github.com/lianghanzhen/databend/pkg/sql/types"
)

// Temporal arithmetic works on the physical representation and restores
// the temporal logical type on the result. DayTime intervals shift the
// stored value directly (whole days for Date32, scaled milliseconds
// otherwise); YearMonth intervals go through the calendar so that
// month-end and leap-day behavior follows civil time.

func evalTemporalArith(op ArithOp, left, right coldata.Column) (coldata.Column, error) {
	lt, rt := left.LogicalType(), right.LogicalType()
	if op != ArithAdd && op != ArithSub {
		return nil, sqlerrors.NewTypeMismatch(lt, rt)
	}
	// interval + datetime commutes; interval - datetime does not exist.
	if lt.Family() == types.IntervalFamily && rt.Family() != types.IntervalFamily {
		if op == ArithAdd {
			return evalTemporalArith(op, right, left)
		}
		return nil, sqlerrors.NewTypeMismatch(lt, rt)
	}

	n := left.Len()
	nulls := coldata.OrNulls(left.Nulls(), right.Nulls(), n)

	switch lt.Family() {
	case types.IntervalFamily:
		if !lt.Equal(rt) {
			return nil, sqlerrors.NewTypeMismatch(lt, rt)
		}
		return shiftedTemporal(op, lt, left, right, nulls)
	case types.DateFamily, types.TimestampFamily:
		switch {
		case rt.Family() == types.IntervalFamily:
			if rt.IntervalUnit() == types.YearMonth {
				return calendarShift(op, lt, left, right, nulls)
			}
			return shiftedTemporal(op, lt, left, right, nulls)
		case lt.Equal(rt) && op == ArithSub:
			return temporalDiff(lt, left, right, nulls)
		}
	}
	return nil, sqlerrors.NewTypeMismatch(lt, rt)
}

// shiftedTemporal adds or subtracts a value-shifting operand: a DayTime
// interval against a date or timestamp, or an interval against an
// interval of the same unit. The result carries the left logical type.
func shiftedTemporal(
	op ArithOp, resType *types.T, l, r coldata.Column, nulls *coldata.Nulls,
) (coldata.Column, error) {
	lv, err := physicalInt64s(l)
	if err != nil {
		return nil, err
	}
	rv, err := physicalInt64s(r)
	if err != nil {
		return nil, err
	}
	out := make([]int64, len(lv))
	for i, x := range lv {
		d := shiftAmount(resType, r.LogicalType(), rv[i])
		if op == ArithSub {
			d = -d
		}
		out[i] = x + d
	}
	return restoreTemporal(resType, out, nulls)
}

// shiftAmount converts a right-operand physical value into the left
// type's stored unit.
func shiftAmount(lt, rt *types.T, v int64) int64 {
	if rt.Family() != types.IntervalFamily || rt.IntervalUnit() != types.DayTime {
		// Same-unit interval arithmetic shifts by the raw value.
		return v
	}
	switch lt.Family() {
	case types.DateFamily:
		if lt.Width() == 32 {
			return v / millisPerDay
		}
		return v
	case types.TimestampFamily:
		return millisToUnit(v, lt.TimeUnit())
	case types.IntervalFamily:
		return v
	}
	panic(errors.AssertionFailedf("cannot shift %s by %s", lt, rt))
}

// calendarShift adds or subtracts a YearMonth interval by converting the
// stored value to civil time, moving whole months, and converting back.
func calendarShift(
	op ArithOp, resType *types.T, l, r coldata.Column, nulls *coldata.Nulls,
) (coldata.Column, error) {
	lv, err := physicalInt64s(l)
	if err != nil {
		return nil, err
	}
	months, err := physicalInt64s(r)
	if err != nil {
		return nil, err
	}
	out := make([]int64, len(lv))
	for i, x := range lv {
		m := int(months[i])
		if op == ArithSub {
			m = -m
		}
		out[i] = timeToStored(addMonths(storedToTime(resType, x), m), resType)
	}
	return restoreTemporal(resType, out, nulls)
}

// addMonths moves a civil time by whole months, clamping the day of
// month to the target month's last day: Jan 31 + 1 month is Feb 28 (or
// 29), not Mar 3.
func addMonths(tm time.Time, months int) time.Time {
	y, m, d := tm.Date()
	total := y*12 + int(m) - 1 + months
	ny, nm := total/12, total%12
	if nm < 0 {
		nm += 12
		ny--
	}
	month := time.Month(nm + 1)
	if last := lastDayOf(ny, month); d > last {
		d = last
	}
	h, min, s := tm.Clock()
	return time.Date(ny, month, d, h, min, s, tm.Nanosecond(), time.UTC)
}

func lastDayOf(y int, m time.Month) int {
	return time.Date(y, m+1, 0, 0, 0, 0, 0, time.UTC).Day()
}

// temporalDiff subtracts two columns of the same temporal type. The
// result stays physical: Int32 days for Date32, Int64 stored units
// otherwise.
func temporalDiff(t *types.T, l, r coldata.Column, nulls *coldata.Nulls) (coldata.Column, error) {
	lv, err := physicalInt64s(l)
	if err != nil {
		return nil, err
	}
	rv, err := physicalInt64s(r)
	if err != nil {
		return nil, err
	}
	out := make([]int64, len(lv))
	for i := range out {
		out[i] = lv[i] - rv[i]
	}
	if t.Width() == 32 {
		return coldata.NewFixed(types.Int32, convertSlice[int64, int32](out), nulls), nil
	}
	return coldata.NewFixed(types.Int64, out, nulls), nil
}

const millisPerDay = 24 * 60 * 60 * 1000

func millisToUnit(ms int64, u types.TimeUnit) int64 {
	switch u {
	case types.Second:
		return ms / 1000
	case types.Millisecond:
		return ms
	case types.Microsecond:
		return ms * 1000
	case types.Nanosecond:
		return ms * 1000 * 1000
	}
	panic(errors.AssertionFailedf("unknown time unit %d", u))
}

func storedToTime(t *types.T, v int64) time.Time {
	switch t.Family() {
	case types.DateFamily:
		if t.Width() == 32 {
			return time.Unix(v*24*60*60, 0).UTC()
		}
		return time.UnixMilli(v).UTC()
	case types.TimestampFamily:
		switch t.TimeUnit() {
		case types.Second:
			return time.Unix(v, 0).UTC()
		case types.Millisecond:
			return time.UnixMilli(v).UTC()
		case types.Microsecond:
			return time.UnixMicro(v).UTC()
		case types.Nanosecond:
			return time.Unix(0, v).UTC()
		}
	}
	panic(errors.AssertionFailedf("no civil time mapping for %s", t))
}

func timeToStored(tm time.Time, t *types.T) int64 {
	switch t.Family() {
	case types.DateFamily:
		if t.Width() == 32 {
			return tm.Unix() / (24 * 60 * 60)
		}
		return tm.UnixMilli()
	case types.TimestampFamily:
		switch t.TimeUnit() {
		case types.Second:
			return tm.Unix()
		case types.Millisecond:
			return tm.UnixMilli()
		case types.Microsecond:
			return tm.UnixMicro()
		case types.Nanosecond:
			return tm.UnixNano()
		}
	}
	panic(errors.AssertionFailedf("no stored mapping for %s", t))
}

// physicalInt64s reads a temporal column's stored values as int64,
// materializing constants and widening 32-bit storage.
func physicalInt64s(c coldata.Column) ([]int64, error) {
	p, err := coldata.PhysicalOperand(c)
	if err != nil {
		return nil, err
	}
	return columnInt64s(p)
}

// restoreTemporal builds a physical column at the type's storage width
// and retags it with the temporal logical type.
func restoreTemporal(t *types.T, vals []int64, nulls *coldata.Nulls) (coldata.Column, error) {
	if t.Width() == 32 {
		return coldata.NewFixed(types.Int32, convertSlice[int64, int32](vals), nulls).CastTo(t)
	}
	return coldata.NewFixed(types.Int64, vals, nulls).CastTo(t)
}
