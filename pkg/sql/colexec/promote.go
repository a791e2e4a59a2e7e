// Copyright 2021 Datafuse Labs.
//
// Use of this software is governed by the Apache License, Version 2.0.

package colexec

import (
	"github.com/cockroachdb/errors"
	"github.com/lianghanzhen/databend/pkg/col/coldata"
	"github.com/lianghanzhen/databend/pkg/sql/sqlerrors"
	"github.com/lianghanzhen/databend/pkg/sql/types"
)

// Promote returns the narrowest numeric type both operand types convert
// into without losing information: Int32 x Int64 -> Int64, Int32 x
// Float32 -> Float64, UInt16 x Int8 -> Int32. The Int64 x UInt64 pair
// has no lossless integer home and promotes to Float64 so that every
// numeric operand pair has a defined result. Non-numeric operands fail
// with TypeMismatch.
func Promote(l, r *types.T) (*types.T, error) {
	if !l.IsNumeric() || !r.IsNumeric() {
		return nil, sqlerrors.NewTypeMismatch(l, r)
	}
	if l.Equal(r) {
		return l, nil
	}
	lf, rf := l.Family(), r.Family()
	// Any float operand pulls the pair into the float families.
	if lf == types.FloatFamily || rf == types.FloatFamily {
		return promoteFloat(l, r), nil
	}
	if lf == rf {
		// Same signedness: the wider width wins.
		if l.Width() >= r.Width() {
			return l, nil
		}
		return r, nil
	}
	// Mixed signedness: the result is signed and strictly wider than
	// the unsigned operand.
	signed, unsigned := l, r
	if lf == types.UintFamily {
		signed, unsigned = r, l
	}
	need := unsigned.Width() * 2
	if signed.Width() > need {
		need = signed.Width()
	}
	switch {
	case need <= 16:
		return types.Int16, nil
	case need <= 32:
		return types.Int32, nil
	case need <= 64:
		return types.Int64, nil
	}
	// UInt64 against a signed integer.
	return types.Float64, nil
}

func promoteFloat(l, r *types.T) *types.T {
	width := func(t *types.T) int32 {
		if t.Family() == types.FloatFamily {
			return t.Width()
		}
		// Integers up to 16 bits fit Float32's mantissa; anything wider
		// needs Float64.
		if t.Width() <= 16 {
			return 32
		}
		return 64
	}
	if width(l) <= 32 && width(r) <= 32 {
		return types.Float32
	}
	return types.Float64
}

// promotionDomain is the Go computation domain for a promotion type:
// all signed promotion results evaluate exactly in int64, unsigned in
// uint64, floats in float64.
type promotionDomain int

const (
	domainInt promotionDomain = iota
	domainUint
	domainFloat
)

func domainOf(t *types.T) promotionDomain {
	switch t.Family() {
	case types.IntFamily:
		return domainInt
	case types.UintFamily:
		return domainUint
	case types.FloatFamily:
		return domainFloat
	}
	panic(errors.AssertionFailedf("no promotion domain for %s", t))
}

// operand is one side of a promotion-path evaluation: either a whole
// vector converted into the domain, or a broadcast scalar (stride 0).
type operand struct {
	ints   []int64
	uints  []uint64
	floats []float64
	stride int
}

func (o operand) intAt(i int) int64     { return o.ints[i*o.stride] }
func (o operand) uintAt(i int) uint64   { return o.uints[i*o.stride] }
func (o operand) floatAt(i int) float64 { return o.floats[i*o.stride] }

// toOperand converts a physical numeric column into the given domain.
// Constant columns become stride-0 broadcasts; null handling stays with
// the caller through the column's validity bitmap.
func toOperand(c coldata.Column, dom promotionDomain) (operand, error) {
	if d, ok := coldata.IsConst(c); ok {
		o := operand{stride: 0}
		if d.IsNull() {
			// A null constant contributes no values; the all-null
			// bitmap already nulls every result row. Use a zero.
			o.ints, o.uints, o.floats = []int64{0}, []uint64{0}, []float64{0}
			return o, nil
		}
		switch dom {
		case domainInt:
			o.ints = []int64{datumToInt64(d)}
		case domainUint:
			o.uints = []uint64{datumToUint64(d)}
		case domainFloat:
			o.floats = []float64{datumToFloat64(d)}
		}
		return o, nil
	}
	o := operand{stride: 1}
	switch dom {
	case domainInt:
		vals, err := columnInt64s(c)
		if err != nil {
			return operand{}, err
		}
		o.ints = vals
	case domainUint:
		vals, err := columnUint64s(c)
		if err != nil {
			return operand{}, err
		}
		o.uints = vals
	case domainFloat:
		vals, err := columnFloat64s(c)
		if err != nil {
			return operand{}, err
		}
		o.floats = vals
	}
	return o, nil
}

func datumToInt64(d coldata.Datum) int64 {
	switch d.Type().Family() {
	case types.UintFamily:
		return int64(d.Uint64())
	case types.FloatFamily:
		return int64(d.Float64())
	default:
		return d.Int64()
	}
}

func datumToUint64(d coldata.Datum) uint64 {
	switch d.Type().Family() {
	case types.IntFamily:
		return uint64(d.Int64())
	case types.FloatFamily:
		return uint64(d.Float64())
	default:
		return d.Uint64()
	}
}

func datumToFloat64(d coldata.Datum) float64 {
	switch d.Type().Family() {
	case types.IntFamily:
		return float64(d.Int64())
	case types.UintFamily:
		return float64(d.Uint64())
	default:
		return d.Float64()
	}
}

// columnInt64s widens signed integer columns, and unsigned ones narrow
// enough to fit, into int64 values.
func columnInt64s(c coldata.Column) ([]int64, error) {
	t := c.LogicalType()
	switch {
	case t.Family() == types.IntFamily && t.Width() == 8:
		return convertSlice[int8, int64](coldata.Fixed[int8](c)), nil
	case t.Family() == types.IntFamily && t.Width() == 16:
		return convertSlice[int16, int64](coldata.Fixed[int16](c)), nil
	case t.Family() == types.IntFamily && t.Width() == 32:
		return convertSlice[int32, int64](coldata.Fixed[int32](c)), nil
	case t.Family() == types.IntFamily && t.Width() == 64:
		return coldata.Fixed[int64](c), nil
	case t.Family() == types.UintFamily && t.Width() == 8:
		return convertSlice[uint8, int64](coldata.Fixed[uint8](c)), nil
	case t.Family() == types.UintFamily && t.Width() == 16:
		return convertSlice[uint16, int64](coldata.Fixed[uint16](c)), nil
	case t.Family() == types.UintFamily && t.Width() == 32:
		return convertSlice[uint32, int64](coldata.Fixed[uint32](c)), nil
	}
	return nil, errors.AssertionFailedf("cannot evaluate %s in the signed domain", t)
}

// columnUint64s widens any unsigned integer column into uint64 values.
func columnUint64s(c coldata.Column) ([]uint64, error) {
	t := c.LogicalType()
	if t.Family() == types.UintFamily {
		switch t.Width() {
		case 8:
			return convertSlice[uint8, uint64](coldata.Fixed[uint8](c)), nil
		case 16:
			return convertSlice[uint16, uint64](coldata.Fixed[uint16](c)), nil
		case 32:
			return convertSlice[uint32, uint64](coldata.Fixed[uint32](c)), nil
		case 64:
			return coldata.Fixed[uint64](c), nil
		}
	}
	return nil, errors.AssertionFailedf("cannot evaluate %s in the unsigned domain", t)
}

// columnFloat64s widens any numeric column into float64 values.
func columnFloat64s(c coldata.Column) ([]float64, error) {
	t := c.LogicalType()
	switch t.Family() {
	case types.IntFamily:
		switch t.Width() {
		case 8:
			return convertSlice[int8, float64](coldata.Fixed[int8](c)), nil
		case 16:
			return convertSlice[int16, float64](coldata.Fixed[int16](c)), nil
		case 32:
			return convertSlice[int32, float64](coldata.Fixed[int32](c)), nil
		case 64:
			return convertSlice[int64, float64](coldata.Fixed[int64](c)), nil
		}
	case types.UintFamily:
		switch t.Width() {
		case 8:
			return convertSlice[uint8, float64](coldata.Fixed[uint8](c)), nil
		case 16:
			return convertSlice[uint16, float64](coldata.Fixed[uint16](c)), nil
		case 32:
			return convertSlice[uint32, float64](coldata.Fixed[uint32](c)), nil
		case 64:
			return convertSlice[uint64, float64](coldata.Fixed[uint64](c)), nil
		}
	case types.FloatFamily:
		if t.Width() == 32 {
			return convertSlice[float32, float64](coldata.Fixed[float32](c)), nil
		}
		return coldata.Fixed[float64](c), nil
	}
	return nil, errors.AssertionFailedf("cannot evaluate %s in the float domain", t)
}

func convertSlice[F, T coldata.FixedElement](src []F) []T {
	out := make([]T, len(src))
	for i, x := range src {
		out[i] = T(x)
	}
	return out
}
