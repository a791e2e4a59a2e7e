// Copyright 2021 Datafuse Labs.
//
// Use of this software is governed by the Apache License, Version 2.0.

package coldata

// Nulls is a validity bitmap: bit i is set when row i is NULL. A nil
// *Nulls means every row is valid; columns only allocate a bitmap once
// a null row exists. Once a Nulls is attached to a Column it must not
// be mutated.
type Nulls struct {
	nulls []byte
	n     int
	// maybeHasNulls is an optimization: when false, the bitmap is known
	// to be all zero and NullAt returns false without touching it.
	maybeHasNulls bool
}

// NewNulls returns a bitmap for n rows with every row valid.
func NewNulls(n int) *Nulls {
	return &Nulls{nulls: make([]byte, (n+7)/8), n: n}
}

// Len returns the number of rows covered by the bitmap.
func (n *Nulls) Len() int {
	return n.n
}

// MaybeHasNulls reports whether the bitmap might contain a set bit. It
// can return true even after every null has been unset again.
func (n *Nulls) MaybeHasNulls() bool {
	return n != nil && n.maybeHasNulls
}

// NullAt reports whether row i is null.
func (n *Nulls) NullAt(i int) bool {
	if n == nil || !n.maybeHasNulls {
		return false
	}
	return n.nulls[i>>3]&(1<<(i&7)) != 0
}

// SetNull marks row i as null.
func (n *Nulls) SetNull(i int) {
	n.nulls[i>>3] |= 1 << (i & 7)
	n.maybeHasNulls = true
}

// UnsetNull marks row i as valid.
func (n *Nulls) UnsetNull(i int) {
	n.nulls[i>>3] &^= 1 << (i & 7)
}

// NullCount returns the number of null rows.
func (n *Nulls) NullCount() int {
	if n == nil || !n.maybeHasNulls {
		return 0
	}
	count := 0
	for i := 0; i < n.n; i++ {
		if n.NullAt(i) {
			count++
		}
	}
	return count
}

// Slice returns a new bitmap covering rows [start, end). The result is
// a fresh allocation; only element buffers are shared between a column
// and its slices, the bitmap is rebased to bit zero.
func (n *Nulls) Slice(start, end int) *Nulls {
	out := NewNulls(end - start)
	if n == nil || !n.maybeHasNulls {
		return out
	}
	for i := start; i < end; i++ {
		if n.NullAt(i) {
			out.SetNull(i - start)
		}
	}
	return out
}

// OrNulls returns the union of two bitmaps over n rows: a row is null
// in the result if it is null in either input. Either input may be nil.
// Returns nil when the union contains no nulls.
func OrNulls(a, b *Nulls, n int) *Nulls {
	if !a.MaybeHasNulls() && !b.MaybeHasNulls() {
		return nil
	}
	out := NewNulls(n)
	for i := 0; i < n; i++ {
		if a.NullAt(i) || b.NullAt(i) {
			out.SetNull(i)
		}
	}
	return out
}

// memoryFootprint returns the bitmap's size in bytes.
func (n *Nulls) memoryFootprint() int64 {
	if n == nil {
		return 0
	}
	return int64(len(n.nulls))
}
