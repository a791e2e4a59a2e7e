// Copyright 2021 Datafuse Labs.
//
// Use of this software is governed by the Apache License, Version 2.0.

package coldata

import (
	"github.com/lianghanzhen/databend/pkg/sql/sqlerrors"
	"github.com/lianghanzhen/databend/pkg/sql/types"
)

// boolVec is the TypedColumn for Boolean. Storage is one bool per row;
// the semantic width is one bit.
type boolVec struct {
	col   []bool
	nulls *Nulls
}

// NewBools returns a Boolean column over the given values.
func NewBools(vals []bool, nulls *Nulls) Column {
	return &boolVec{col: vals, nulls: nulls}
}

// Bools returns the element buffer of a Boolean column. Internal
// accessor, like Fixed.
func Bools(c Column) []bool {
	return c.(*boolVec).col
}

func (v *boolVec) LogicalType() *types.T { return types.Bool }

func (v *boolVec) Len() int { return len(v.col) }

func (v *boolVec) IsEmpty() bool { return len(v.col) == 0 }

func (v *boolVec) NullCount() int { return v.nulls.NullCount() }

func (v *boolVec) Nulls() *Nulls { return v.nulls }

func (v *boolVec) MemoryFootprint() int64 {
	return int64(len(v.col)) + v.nulls.memoryFootprint()
}

func (v *boolVec) IsNull(row int) (bool, error) {
	if err := checkRow(row, len(v.col)); err != nil {
		return false, err
	}
	return v.nulls.NullAt(row), nil
}

func (v *boolVec) Slice(offset, length int) (Column, error) {
	if err := checkRange(offset, length, len(v.col)); err != nil {
		return nil, err
	}
	var nulls *Nulls
	if v.nulls.MaybeHasNulls() {
		nulls = v.nulls.Slice(offset, offset+length)
	}
	return &boolVec{col: v.col[offset : offset+length], nulls: nulls}, nil
}

func (v *boolVec) EqualElement(i, j int, other Column) (bool, error) {
	if err := checkRow(i, len(v.col)); err != nil {
		return false, err
	}
	if err := checkRow(j, other.Len()); err != nil {
		return false, err
	}
	o, ok := other.(*boolVec)
	if !ok {
		return false, sqlerrors.NewTypeMismatch(types.Bool, other.LogicalType())
	}
	if v.nulls.NullAt(i) || o.nulls.NullAt(j) {
		return false, nil
	}
	return v.col[i] == o.col[j], nil
}

func (v *boolVec) EqualElementUnchecked(i, j int, other Column) bool {
	return v.col[i] == other.(*boolVec).col[j]
}

func (v *boolVec) TryGet(row int) (Datum, error) {
	if err := checkRow(row, len(v.col)); err != nil {
		return Datum{}, err
	}
	if v.nulls.NullAt(row) {
		return NewNullDatum(types.Bool), nil
	}
	return NewDatum(types.Bool, v.col[row]), nil
}

func (v *boolVec) CastTo(to *types.T) (Column, error) {
	if to.Family() == types.BoolFamily {
		return &boolVec{col: v.col, nulls: v.nulls}, nil
	}
	return nil, sqlerrors.NewUnsupportedCast(types.Bool, to)
}

func (v *boolVec) ContentHash(seed uint64) (Column, error) {
	return hashBools(v.col, v.nulls, seed), nil
}

func (v *boolVec) AddTo(other Column) (Column, error) {
	return nil, sqlerrors.NewTypeMismatch(types.Bool, other.LogicalType())
}

func (v *boolVec) Subtract(other Column) (Column, error) {
	return nil, sqlerrors.NewTypeMismatch(types.Bool, other.LogicalType())
}

func (v *boolVec) Multiply(other Column) (Column, error) {
	return nil, sqlerrors.NewTypeMismatch(types.Bool, other.LogicalType())
}

func (v *boolVec) Divide(other Column) (Column, error) {
	return nil, sqlerrors.NewTypeMismatch(types.Bool, other.LogicalType())
}

func (v *boolVec) Remainder(other Column) (Column, error) {
	return nil, sqlerrors.NewTypeMismatch(types.Bool, other.LogicalType())
}

func (v *boolVec) String() string { return formatColumn(v) }
