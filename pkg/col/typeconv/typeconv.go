// Copyright 2021 Datafuse Labs.
//
// Use of this software is governed by the Apache License, Version 2.0.

// Package typeconv maps logical types that lack a native primitive
// representation (dates, timestamps, intervals) onto the primitive type
// that backs them. Operations written against primitives serve those
// logical types through a cast-apply-restore protocol implemented in
// coldata.
package typeconv

import (
	"github.com/cockroachdb/errors"
	"github.com/lianghanzhen/databend/pkg/sql/types"
)

// IsPhysical reports whether t is its own storage representation, i.e.
// arithmetic and comparison kernels can run on it directly.
func IsPhysical(t *types.T) bool {
	return !t.IsTemporal()
}

// PhysicalOf returns the primitive type backing a temporal logical
// type:
//
//	Date32, Interval(YearMonth)             -> Int32
//	Date64, Timestamp(*), Interval(DayTime) -> Int64
//
// Calling it on a type that is already physical is a programming error
// and panics; it never silently returns the input.
func PhysicalOf(t *types.T) *types.T {
	switch t.Family() {
	case types.DateFamily:
		if t.Width() == 32 {
			return types.Int32
		}
		return types.Int64
	case types.TimestampFamily:
		return types.Int64
	case types.IntervalFamily:
		if t.IntervalUnit() == types.YearMonth {
			return types.Int32
		}
		return types.Int64
	}
	panic(errors.AssertionFailedf("already a physical type: %s", t))
}
