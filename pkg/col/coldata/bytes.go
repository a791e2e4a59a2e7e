// Copyright 2021 Datafuse Labs.
//
// Use of this software is governed by the Apache License, Version 2.0.

package coldata

import (
	"bytes"

	"github.com/lianghanzhen/databend/pkg/sql/sqlerrors"
	"github.com/lianghanzhen/databend/pkg/sql/types"
)

// Bytes stores variable length byte strings in one flat buffer plus an
// offsets slice, so a column of n strings costs two allocations and a
// sub-range view shares both. offsets has n+1 entries; element i lives
// at data[offsets[i]:offsets[i+1]].
type Bytes struct {
	data    []byte
	offsets []int32
}

// NewBytesFromSlices builds a Bytes from individual byte slices.
func NewBytesFromSlices(vals [][]byte) *Bytes {
	offsets := make([]int32, 1, len(vals)+1)
	size := 0
	for _, v := range vals {
		size += len(v)
	}
	data := make([]byte, 0, size)
	for _, v := range vals {
		data = append(data, v...)
		offsets = append(offsets, int32(len(data)))
	}
	return &Bytes{data: data, offsets: offsets}
}

// NewBytesFromStrings builds a Bytes from strings.
func NewBytesFromStrings(vals []string) *Bytes {
	bs := make([][]byte, len(vals))
	for i, s := range vals {
		bs[i] = []byte(s)
	}
	return NewBytesFromSlices(bs)
}

// Len returns the number of elements.
func (b *Bytes) Len() int {
	return len(b.offsets) - 1
}

// Get returns element i without copying. Callers must not mutate the
// result.
func (b *Bytes) Get(i int) []byte {
	return b.data[b.offsets[i]:b.offsets[i+1]]
}

// Window returns a view over elements [start, end) sharing the
// underlying buffer.
func (b *Bytes) Window(start, end int) *Bytes {
	return &Bytes{data: b.data, offsets: b.offsets[start : end+1]}
}

// Size returns the memory footprint in bytes.
func (b *Bytes) Size() int64 {
	return int64(len(b.data)) + 4*int64(len(b.offsets))
}

// bytesVec is the TypedColumn for Utf8 and Binary.
type bytesVec struct {
	t     *types.T
	b     *Bytes
	nulls *Nulls
}

// NewBytesColumn returns a Binary column over the given values.
func NewBytesColumn(vals [][]byte, nulls *Nulls) Column {
	return &bytesVec{t: types.Bytes, b: NewBytesFromSlices(vals), nulls: nulls}
}

// NewStrings returns a Utf8 column over the given values.
func NewStrings(vals []string, nulls *Nulls) Column {
	return &bytesVec{t: types.String, b: NewBytesFromStrings(vals), nulls: nulls}
}

// ByteStrings returns the Bytes storage of a Utf8 or Binary column.
// Like Fixed, it is the engine's internal accessor.
func ByteStrings(c Column) *Bytes {
	return c.(*bytesVec).b
}

func (v *bytesVec) LogicalType() *types.T { return v.t }

func (v *bytesVec) Len() int { return v.b.Len() }

func (v *bytesVec) IsEmpty() bool { return v.b.Len() == 0 }

func (v *bytesVec) NullCount() int { return v.nulls.NullCount() }

func (v *bytesVec) Nulls() *Nulls { return v.nulls }

func (v *bytesVec) MemoryFootprint() int64 {
	return v.b.Size() + v.nulls.memoryFootprint()
}

func (v *bytesVec) IsNull(row int) (bool, error) {
	if err := checkRow(row, v.b.Len()); err != nil {
		return false, err
	}
	return v.nulls.NullAt(row), nil
}

func (v *bytesVec) Slice(offset, length int) (Column, error) {
	if err := checkRange(offset, length, v.b.Len()); err != nil {
		return nil, err
	}
	var nulls *Nulls
	if v.nulls.MaybeHasNulls() {
		nulls = v.nulls.Slice(offset, offset+length)
	}
	return &bytesVec{t: v.t, b: v.b.Window(offset, offset+length), nulls: nulls}, nil
}

func (v *bytesVec) EqualElement(i, j int, other Column) (bool, error) {
	if err := checkRow(i, v.Len()); err != nil {
		return false, err
	}
	if err := checkRow(j, other.Len()); err != nil {
		return false, err
	}
	o, ok := other.(*bytesVec)
	if !ok {
		return false, sqlerrors.NewTypeMismatch(v.t, other.LogicalType())
	}
	if v.nulls.NullAt(i) || o.nulls.NullAt(j) {
		return false, nil
	}
	return bytes.Equal(v.b.Get(i), o.b.Get(j)), nil
}

func (v *bytesVec) EqualElementUnchecked(i, j int, other Column) bool {
	return bytes.Equal(v.b.Get(i), other.(*bytesVec).b.Get(j))
}

func (v *bytesVec) TryGet(row int) (Datum, error) {
	if err := checkRow(row, v.Len()); err != nil {
		return Datum{}, err
	}
	if v.nulls.NullAt(row) {
		return NewNullDatum(v.t), nil
	}
	return NewDatum(v.t, v.b.Get(row)), nil
}

func (v *bytesVec) CastTo(to *types.T) (Column, error) {
	// Utf8 and Binary share a representation; both directions retag
	// without copying.
	if to.IsBytesLike() {
		return &bytesVec{t: to, b: v.b, nulls: v.nulls}, nil
	}
	return nil, sqlerrors.NewUnsupportedCast(v.t, to)
}

func (v *bytesVec) ContentHash(seed uint64) (Column, error) {
	return hashBytes(v.b, v.nulls, seed), nil
}

func (v *bytesVec) AddTo(other Column) (Column, error) {
	return nil, sqlerrors.NewTypeMismatch(v.t, other.LogicalType())
}

func (v *bytesVec) Subtract(other Column) (Column, error) {
	return nil, sqlerrors.NewTypeMismatch(v.t, other.LogicalType())
}

func (v *bytesVec) Multiply(other Column) (Column, error) {
	return nil, sqlerrors.NewTypeMismatch(v.t, other.LogicalType())
}

func (v *bytesVec) Divide(other Column) (Column, error) {
	return nil, sqlerrors.NewTypeMismatch(v.t, other.LogicalType())
}

func (v *bytesVec) Remainder(other Column) (Column, error) {
	return nil, sqlerrors.NewTypeMismatch(v.t, other.LogicalType())
}

func (v *bytesVec) String() string { return formatColumn(v) }
