// Copyright 2021 Datafuse Labs.
//
// Use of this software is governed by the Apache License, Version 2.0.

package coldata

import (
	"github.com/cockroachdb/errors"
	"github.com/lianghanzhen/databend/pkg/sql/types"
)

// constColumn broadcasts a single scalar across n rows. It is how a
// vector/scalar operand shape flows through Function.Eval: the scalar
// side is a constColumn whose length matches the vector operand.
type constColumn struct {
	d Datum
	n int
}

// NewConst returns a column of n rows all equal to d.
func NewConst(d Datum, n int) Column {
	return &constColumn{d: d, n: n}
}

// IsConst reports whether c is a broadcast constant and returns its
// scalar.
func IsConst(c Column) (Datum, bool) {
	if cc, ok := c.(*constColumn); ok {
		return cc.d, true
	}
	return Datum{}, false
}

// Materialize expands the constant into a concrete vector of its
// logical type.
func (c *constColumn) Materialize() (Column, error) {
	t := c.d.Type()
	if c.d.IsNull() {
		nulls := NewNulls(c.n)
		for i := 0; i < c.n; i++ {
			nulls.SetNull(i)
		}
		return newZeroColumn(t, c.n, nulls)
	}
	switch t.Family() {
	case types.BoolFamily:
		return repeatFixedBool(c.d.Bool(), c.n), nil
	case types.IntFamily, types.DateFamily, types.TimestampFamily, types.IntervalFamily:
		switch storageWidth(t) {
		case 8:
			return NewFixed(t, repeatVal(int8(c.d.Int64()), c.n), nil), nil
		case 16:
			return NewFixed(t, repeatVal(int16(c.d.Int64()), c.n), nil), nil
		case 32:
			return NewFixed(t, repeatVal(int32(c.d.Int64()), c.n), nil), nil
		default:
			return NewFixed(t, repeatVal(c.d.Int64(), c.n), nil), nil
		}
	case types.UintFamily:
		switch t.Width() {
		case 8:
			return NewFixed(t, repeatVal(uint8(c.d.Uint64()), c.n), nil), nil
		case 16:
			return NewFixed(t, repeatVal(uint16(c.d.Uint64()), c.n), nil), nil
		case 32:
			return NewFixed(t, repeatVal(uint32(c.d.Uint64()), c.n), nil), nil
		default:
			return NewFixed(t, repeatVal(c.d.Uint64(), c.n), nil), nil
		}
	case types.FloatFamily:
		if t.Width() == 32 {
			return NewFixed(t, repeatVal(float32(c.d.Float64()), c.n), nil), nil
		}
		return NewFixed(t, repeatVal(c.d.Float64(), c.n), nil), nil
	case types.StringFamily, types.BytesFamily:
		vals := make([][]byte, c.n)
		for i := range vals {
			vals[i] = c.d.Bytes()
		}
		return &bytesVec{t: t, b: NewBytesFromSlices(vals), nulls: nil}, nil
	}
	return nil, errors.AssertionFailedf("cannot materialize constant of type %s", t)
}

func repeatVal[T FixedElement](x T, n int) []T {
	out := make([]T, n)
	for i := range out {
		out[i] = x
	}
	return out
}

func repeatFixedBool(x bool, n int) Column {
	out := make([]bool, n)
	for i := range out {
		out[i] = x
	}
	return &boolVec{col: out}
}

// storageWidth returns the bit width of a type's storage, resolving
// temporal types to their physical width.
func storageWidth(t *types.T) int32 {
	if t.Width() != 0 {
		return t.Width()
	}
	return 64
}

// newZeroColumn builds an all-null column of the given type.
func newZeroColumn(t *types.T, n int, nulls *Nulls) (Column, error) {
	switch t.Family() {
	case types.BoolFamily:
		return &boolVec{col: make([]bool, n), nulls: nulls}, nil
	case types.StringFamily, types.BytesFamily:
		return &bytesVec{t: t, b: NewBytesFromSlices(make([][]byte, n)), nulls: nulls}, nil
	case types.UintFamily:
		switch t.Width() {
		case 8:
			return NewFixed(t, make([]uint8, n), nulls), nil
		case 16:
			return NewFixed(t, make([]uint16, n), nulls), nil
		case 32:
			return NewFixed(t, make([]uint32, n), nulls), nil
		default:
			return NewFixed(t, make([]uint64, n), nulls), nil
		}
	case types.FloatFamily:
		if t.Width() == 32 {
			return NewFixed(t, make([]float32, n), nulls), nil
		}
		return NewFixed(t, make([]float64, n), nulls), nil
	default:
		switch storageWidth(t) {
		case 8:
			return NewFixed(t, make([]int8, n), nulls), nil
		case 16:
			return NewFixed(t, make([]int16, n), nulls), nil
		case 32:
			return NewFixed(t, make([]int32, n), nulls), nil
		default:
			return NewFixed(t, make([]int64, n), nulls), nil
		}
	}
}

func (c *constColumn) LogicalType() *types.T { return c.d.Type() }

func (c *constColumn) Len() int { return c.n }

func (c *constColumn) IsEmpty() bool { return c.n == 0 }

func (c *constColumn) NullCount() int {
	if c.d.IsNull() {
		return c.n
	}
	return 0
}

func (c *constColumn) Nulls() *Nulls {
	if !c.d.IsNull() || c.n == 0 {
		return nil
	}
	nulls := NewNulls(c.n)
	for i := 0; i < c.n; i++ {
		nulls.SetNull(i)
	}
	return nulls
}

func (c *constColumn) MemoryFootprint() int64 { return int64(8) }

func (c *constColumn) IsNull(row int) (bool, error) {
	if err := checkRow(row, c.n); err != nil {
		return false, err
	}
	return c.d.IsNull(), nil
}

func (c *constColumn) Slice(offset, length int) (Column, error) {
	if err := checkRange(offset, length, c.n); err != nil {
		return nil, err
	}
	return &constColumn{d: c.d, n: length}, nil
}

func (c *constColumn) EqualElement(i, j int, other Column) (bool, error) {
	m, err := c.Materialize()
	if err != nil {
		return false, err
	}
	return m.EqualElement(i, j, other)
}

func (c *constColumn) EqualElementUnchecked(i, j int, other Column) bool {
	eq, err := c.EqualElement(i, j, other)
	if err != nil {
		panic(err)
	}
	return eq
}

func (c *constColumn) TryGet(row int) (Datum, error) {
	if err := checkRow(row, c.n); err != nil {
		return Datum{}, err
	}
	return c.d, nil
}

func (c *constColumn) CastTo(to *types.T) (Column, error) {
	m, err := c.Materialize()
	if err != nil {
		return nil, err
	}
	return m.CastTo(to)
}

func (c *constColumn) ContentHash(seed uint64) (Column, error) {
	m, err := c.Materialize()
	if err != nil {
		return nil, err
	}
	return m.ContentHash(seed)
}

func (c *constColumn) AddTo(other Column) (Column, error) {
	return c.delegate(other, Column.AddTo)
}

func (c *constColumn) Subtract(other Column) (Column, error) {
	return c.delegate(other, Column.Subtract)
}

func (c *constColumn) Multiply(other Column) (Column, error) {
	return c.delegate(other, Column.Multiply)
}

func (c *constColumn) Divide(other Column) (Column, error) {
	return c.delegate(other, Column.Divide)
}

func (c *constColumn) Remainder(other Column) (Column, error) {
	return c.delegate(other, Column.Remainder)
}

func (c *constColumn) delegate(
	other Column, op func(Column, Column) (Column, error),
) (Column, error) {
	m, err := c.Materialize()
	if err != nil {
		return nil, err
	}
	return op(m, other)
}

func (c *constColumn) String() string { return formatColumn(c) }
