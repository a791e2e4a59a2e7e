// Copyright 2021 Datafuse Labs.
//
// Use of this software is governed by the Apache License, Version 2.0.

// Package coldata implements the in-memory columnar values the
// vectorized engine evaluates over: immutable typed columns behind a
// uniform type-erased interface, with validity bitmaps, zero-copy
// slicing, lossless casting, keyed hashing and elementwise arithmetic.
//
// Columns are shared by default and never mutated in place. Any number
// of goroutines may read the same column concurrently without
// synchronization; type-changing operations always produce a new
// column.
package coldata

import (
	"github.com/lianghanzhen/databend/pkg/sql/sqlerrors"
	"github.com/lianghanzhen/databend/pkg/sql/types"
)

// Column is the uniform handle over one typed, immutable sequence of
// values. Every column has exactly one logical type for its entire
// lifetime.
type Column interface {
	// LogicalType returns the column's semantic type.
	LogicalType() *types.T
	// Len returns the number of rows.
	Len() int
	// IsEmpty reports whether the column has no rows.
	IsEmpty() bool
	// NullCount returns the number of null rows.
	NullCount() int
	// Nulls returns the validity bitmap, or nil when every row is
	// valid. Callers must not mutate it.
	Nulls() *Nulls
	// MemoryFootprint returns the column's total memory use in bytes,
	// including the validity bitmap.
	MemoryFootprint() int64
	// IsNull reports whether the given row is null. It fails with
	// IndexOutOfRange when row >= Len().
	IsNull(row int) (bool, error)
	// Slice returns a view over rows [offset, offset+length) sharing
	// the underlying element buffer. It fails with IndexOutOfRange when
	// offset+length > Len().
	Slice(offset, length int) (Column, error)
	// EqualElement compares row i of this column to row j of other with
	// full bounds, type and validity checking. Two null rows do not
	// compare equal.
	EqualElement(i, j int, other Column) (bool, error)
	// EqualElementUnchecked compares row i of this column to row j of
	// other without bounds or validity checks.
	//
	// Precondition: i < Len(), j < other.Len(), both rows are valid,
	// and other has the same physical representation as this column.
	// Violations panic or return garbage; never expose this across a
	// trust boundary.
	EqualElementUnchecked(i, j int, other Column) bool
	// CastTo returns a new column of the target logical type, or fails
	// with UnsupportedCast when no lossless mapping exists. The source
	// is never mutated.
	CastTo(to *types.T) (Column, error)
	// TryGet returns the row's value as a tagged scalar, or fails with
	// IndexOutOfRange.
	TryGet(row int) (Datum, error)
	// ContentHash returns a UInt64 column holding one keyed hash per
	// row. The seed randomizes the hash for hash-join and group-by use;
	// null rows stay null in the result.
	ContentHash(seed uint64) (Column, error)

	// Elementwise binary arithmetic over two same-length columns. The
	// operand must have the same physical representation; otherwise the
	// operation fails with TypeMismatch. Division and remainder by zero
	// produce a NULL result row.
	AddTo(other Column) (Column, error)
	Subtract(other Column) (Column, error)
	Multiply(other Column) (Column, error)
	Divide(other Column) (Column, error)
	Remainder(other Column) (Column, error)
}

// checkRow validates a row index against a column length.
func checkRow(row, length int) error {
	if row < 0 || row >= length {
		return sqlerrors.NewIndexOutOfRange(row, length)
	}
	return nil
}

// checkRange validates a slice request against a column length.
func checkRange(offset, length, n int) error {
	if offset < 0 || length < 0 || offset+length > n {
		return sqlerrors.NewIndexOutOfRange(offset+length, n)
	}
	return nil
}
