// Copyright 2021 Datafuse Labs.
//
// Use of this software is governed by the Apache License, Version 2.0.

package coldata

import (
	"unsafe"

	"github.com/cockroachdb/errors"
	"github.com/lianghanzhen/databend/pkg/sql/sqlerrors"
	"github.com/lianghanzhen/databend/pkg/sql/types"
	"golang.org/x/exp/constraints"
)

// FixedElement is the type set of fixed-width physical representations.
// One vec instantiation per member of this set replaces the per-type
// boilerplate a closed variant hierarchy would need.
type FixedElement interface {
	constraints.Integer | constraints.Float
}

// vec is the concrete owner of a contiguous fixed-width element buffer
// plus an optional validity bitmap. Temporal columns are vecs over the
// backing primitive (int32 or int64) tagged with the temporal logical
// type.
type vec[T FixedElement] struct {
	t     *types.T
	col   []T
	nulls *Nulls
}

// NewFixed returns a column of logical type t over the given elements.
// The element type must be the storage type of t (e.g. int32 for Int32
// and Date32). nulls may be nil when every row is valid; ownership of
// both slices passes to the column.
func NewFixed[T FixedElement](t *types.T, vals []T, nulls *Nulls) Column {
	return &vec[T]{t: t, col: vals, nulls: nulls}
}

// Fixed returns the element buffer of a fixed-width column. It panics
// when c is not backed by []T; it is the evaluation engine's internal
// accessor, not part of the public contract.
func Fixed[T FixedElement](c Column) []T {
	v, ok := c.(*vec[T])
	if !ok {
		panic(errors.AssertionFailedf("column of type %s is not backed by the requested element type", c.LogicalType()))
	}
	return v.col
}

func (v *vec[T]) LogicalType() *types.T { return v.t }

func (v *vec[T]) Len() int { return len(v.col) }

func (v *vec[T]) IsEmpty() bool { return len(v.col) == 0 }

func (v *vec[T]) NullCount() int { return v.nulls.NullCount() }

func (v *vec[T]) Nulls() *Nulls { return v.nulls }

func (v *vec[T]) MemoryFootprint() int64 {
	var zero T
	return int64(len(v.col))*int64(unsafe.Sizeof(zero)) + v.nulls.memoryFootprint()
}

func (v *vec[T]) IsNull(row int) (bool, error) {
	if err := checkRow(row, len(v.col)); err != nil {
		return false, err
	}
	return v.nulls.NullAt(row), nil
}

func (v *vec[T]) Slice(offset, length int) (Column, error) {
	if err := checkRange(offset, length, len(v.col)); err != nil {
		return nil, err
	}
	var nulls *Nulls
	if v.nulls.MaybeHasNulls() {
		nulls = v.nulls.Slice(offset, offset+length)
	}
	return &vec[T]{t: v.t, col: v.col[offset : offset+length], nulls: nulls}, nil
}

func (v *vec[T]) EqualElement(i, j int, other Column) (bool, error) {
	if err := checkRow(i, len(v.col)); err != nil {
		return false, err
	}
	if err := checkRow(j, other.Len()); err != nil {
		return false, err
	}
	o, ok := other.(*vec[T])
	if !ok {
		return false, sqlerrors.NewTypeMismatch(v.t, other.LogicalType())
	}
	if v.nulls.NullAt(i) || o.nulls.NullAt(j) {
		return false, nil
	}
	return v.col[i] == o.col[j], nil
}

func (v *vec[T]) EqualElementUnchecked(i, j int, other Column) bool {
	return v.col[i] == other.(*vec[T]).col[j]
}

func (v *vec[T]) TryGet(row int) (Datum, error) {
	if err := checkRow(row, len(v.col)); err != nil {
		return Datum{}, err
	}
	if v.nulls.NullAt(row) {
		return NewNullDatum(v.t), nil
	}
	return NewDatum(v.t, v.col[row]), nil
}

func (v *vec[T]) CastTo(to *types.T) (Column, error) {
	return castFixed(v, to)
}

func (v *vec[T]) ContentHash(seed uint64) (Column, error) {
	if v.t.IsTemporal() {
		// Cast for effect only: hash the physical representation, no
		// restore.
		return CastAndApply(v, func(phys Column) (Column, error) {
			return phys.ContentHash(seed)
		})
	}
	return hashFixed(v, seed), nil
}

func (v *vec[T]) AddTo(other Column) (Column, error) {
	return v.arith(other, addOp[T](), false)
}

func (v *vec[T]) Subtract(other Column) (Column, error) {
	return v.arith(other, subOp[T](), false)
}

func (v *vec[T]) Multiply(other Column) (Column, error) {
	return v.arith(other, mulOp[T](), false)
}

func (v *vec[T]) Divide(other Column) (Column, error) {
	return v.arith(other, divOp[T](), true)
}

func (v *vec[T]) Remainder(other Column) (Column, error) {
	return v.arith(other, modOp[T](), true)
}

// arith applies a same-representation elementwise operator. Temporal
// operands are routed through the physical dispatch protocol first.
func (v *vec[T]) arith(other Column, op func(T, T) T, zeroDivisorIsNull bool) (Column, error) {
	if v.t.IsTemporal() {
		res, err := TryDispatch(v, func(phys Column) (Column, error) {
			rhs, err := PhysicalOperand(other)
			if err != nil {
				return nil, err
			}
			return phys.(*vec[T]).arith(rhs, op, zeroDivisorIsNull)
		})
		if errors.Is(err, sqlerrors.ErrTypeMismatch) {
			// The dispatched error names the physical representations;
			// report the types the caller actually combined.
			return nil, sqlerrors.NewTypeMismatch(v.t, other.LogicalType())
		}
		return res, err
	}
	if c, ok := other.(*constColumn); ok {
		m, err := c.Materialize()
		if err != nil {
			return nil, err
		}
		other = m
	}
	o, ok := other.(*vec[T])
	if !ok || !v.t.Equal(o.t) {
		return nil, sqlerrors.NewTypeMismatch(v.t, other.LogicalType())
	}
	if len(v.col) != len(o.col) {
		return nil, errors.Newf("length mismatch: %d vs %d", len(v.col), len(o.col))
	}
	return arithFixed(v.t, v.col, o.col, v.nulls, o.nulls, op, zeroDivisorIsNull), nil
}

func (v *vec[T]) String() string { return formatColumn(v) }
