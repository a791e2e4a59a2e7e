// Copyright 2021 Datafuse Labs.
//
// Use of this software is governed by the Apache License, Version 2.0.

package coldata

import (
	"encoding/binary"
	"math"

	"github.com/cespare/xxhash/v2"
	"github.com/lianghanzhen/databend/pkg/sql/types"
)

// Keyed per-row hashing for hash-join and group-by. The seed is a
// randomization key chosen by the caller per query, so hash values are
// not attacker-predictable across processes. Null rows stay null in the
// result column.

func hashFixed[T FixedElement](v *vec[T], seed uint64) Column {
	out := make([]uint64, len(v.col))
	var buf [8]byte
	d := xxhash.NewWithSeed(seed)
	for i, x := range v.col {
		if v.nulls.NullAt(i) {
			continue
		}
		binary.LittleEndian.PutUint64(buf[:], fixedBits(x))
		d.ResetWithSeed(seed)
		_, _ = d.Write(buf[:])
		out[i] = d.Sum64()
	}
	return &vec[uint64]{t: types.Uint64, col: out, nulls: v.nulls}
}

// fixedBits widens a fixed-width value to a canonical 64-bit pattern.
func fixedBits[T FixedElement](x T) uint64 {
	switch v := any(x).(type) {
	case float32:
		return math.Float64bits(float64(v))
	case float64:
		return math.Float64bits(v)
	case uint8:
		return uint64(v)
	case uint16:
		return uint64(v)
	case uint32:
		return uint64(v)
	case uint64:
		return v
	default:
		return uint64(int64(x))
	}
}

func hashBytes(b *Bytes, nulls *Nulls, seed uint64) Column {
	n := b.Len()
	out := make([]uint64, n)
	d := xxhash.NewWithSeed(seed)
	for i := 0; i < n; i++ {
		if nulls.NullAt(i) {
			continue
		}
		d.ResetWithSeed(seed)
		_, _ = d.Write(b.Get(i))
		out[i] = d.Sum64()
	}
	return &vec[uint64]{t: types.Uint64, col: out, nulls: nulls}
}

func hashBools(vals []bool, nulls *Nulls, seed uint64) Column {
	out := make([]uint64, len(vals))
	d := xxhash.NewWithSeed(seed)
	var buf [1]byte
	for i, x := range vals {
		if nulls.NullAt(i) {
			continue
		}
		buf[0] = 0
		if x {
			buf[0] = 1
		}
		d.ResetWithSeed(seed)
		_, _ = d.Write(buf[:])
		out[i] = d.Sum64()
	}
	return &vec[uint64]{t: types.Uint64, col: out, nulls: nulls}
}
