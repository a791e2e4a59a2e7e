// Copyright 2021 Datafuse Labs.
//
// Use of this software is governed by the Apache License, Version 2.0.

package coldata

import (
	"github.com/cockroachdb/errors"
	"github.com/lianghanzhen/databend/pkg/col/typeconv"
)

// Physical dispatch lets operations written against primitive types
// transparently serve temporal logical types. The protocol: cast the
// column to its physical type, apply the operation, and cast the result
// back to the original logical type only when the operation preserved
// the physical representation. A changed result type (e.g. a comparison
// yielding Boolean) is the operation's intended output and passes
// through unchanged.
//
// Four variants exist because failure signaling differs at the call
// sites. Cast failures are never swallowed: the fallible variants
// propagate them, and the infallible one treats them as assertion
// failures since a temporal-to-physical retag cannot legitimately fail.

// Dispatch wraps an operation that cannot fail.
func Dispatch(c Column, apply func(Column) Column) Column {
	logical := c.LogicalType()
	phys := typeconv.PhysicalOf(logical)
	pc, err := c.CastTo(phys)
	if err != nil {
		panic(errors.NewAssertionErrorWithWrappedErrf(err, "cast to physical type"))
	}
	res := apply(pc)
	if res.LogicalType().Equal(phys) {
		restored, err := res.CastTo(logical)
		if err != nil {
			panic(errors.NewAssertionErrorWithWrappedErrf(err, "restore cast to %s", logical))
		}
		return restored
	}
	return res
}

// TryDispatch wraps a fallible operation; the restore cast also
// propagates failure.
func TryDispatch(c Column, apply func(Column) (Column, error)) (Column, error) {
	logical := c.LogicalType()
	phys := typeconv.PhysicalOf(logical)
	pc, err := c.CastTo(phys)
	if err != nil {
		return nil, err
	}
	res, err := apply(pc)
	if err != nil {
		return nil, err
	}
	if res.LogicalType().Equal(phys) {
		return res.CastTo(logical)
	}
	return res, nil
}

// OptDispatch wraps an operation that may produce no result.
func OptDispatch(c Column, apply func(Column) (Column, bool)) (Column, bool, error) {
	logical := c.LogicalType()
	phys := typeconv.PhysicalOf(logical)
	pc, err := c.CastTo(phys)
	if err != nil {
		return nil, false, err
	}
	res, ok := apply(pc)
	if !ok {
		return nil, false, nil
	}
	if res.LogicalType().Equal(phys) {
		restored, err := res.CastTo(logical)
		if err != nil {
			return nil, false, err
		}
		return restored, true, nil
	}
	return res, true, nil
}

// CastAndApply performs the physical cast for effect only and skips the
// restore entirely, for operations like hashing where the result never
// carries the logical type.
func CastAndApply(c Column, apply func(Column) (Column, error)) (Column, error) {
	pc, err := c.CastTo(typeconv.PhysicalOf(c.LogicalType()))
	if err != nil {
		return nil, err
	}
	return apply(pc)
}

// PhysicalOperand returns the column cast to its physical type when it
// is temporal, and the column itself otherwise. Constant columns are
// materialized first.
func PhysicalOperand(c Column) (Column, error) {
	if cc, ok := c.(*constColumn); ok {
		m, err := cc.Materialize()
		if err != nil {
			return nil, err
		}
		c = m
	}
	if typeconv.IsPhysical(c.LogicalType()) {
		return c, nil
	}
	return c.CastTo(typeconv.PhysicalOf(c.LogicalType()))
}
