// Copyright 2021 Datafuse Labs.
//
// Use of this software is governed by the Apache License, Version 2.0.

package coldata

import (
	"fmt"

	"github.com/cockroachdb/errors"
	"github.com/lianghanzhen/databend/pkg/sql/types"
)

// Datum is a single row value tagged with its logical type, as returned
// by Column.TryGet. A null Datum carries its type but no value.
type Datum struct {
	t    *types.T
	null bool
	v    interface{}
}

// NewDatum returns a non-null Datum of logical type t. The dynamic type
// of v must match t's storage: bool, int8..int64, uint8..uint64,
// float32/float64, []byte, or string.
func NewDatum(t *types.T, v interface{}) Datum {
	return Datum{t: t, v: v}
}

// NewNullDatum returns a null Datum of logical type t.
func NewNullDatum(t *types.T) Datum {
	return Datum{t: t, null: true}
}

// Type returns the Datum's logical type.
func (d Datum) Type() *types.T { return d.t }

// IsNull reports whether the Datum is NULL.
func (d Datum) IsNull() bool { return d.null }

// Value returns the raw stored value, or nil for a null Datum.
func (d Datum) Value() interface{} {
	if d.null {
		return nil
	}
	return d.v
}

// Bool returns the value of a Boolean Datum.
func (d Datum) Bool() bool { return d.v.(bool) }

// Int64 returns the value of any signed integer or temporal Datum
// widened to 64 bits.
func (d Datum) Int64() int64 {
	switch v := d.v.(type) {
	case int8:
		return int64(v)
	case int16:
		return int64(v)
	case int32:
		return int64(v)
	case int64:
		return v
	}
	panic(errors.AssertionFailedf("datum of type %s is not integer backed", d.t))
}

// Uint64 returns the value of any unsigned integer Datum widened to 64
// bits.
func (d Datum) Uint64() uint64 {
	switch v := d.v.(type) {
	case uint8:
		return uint64(v)
	case uint16:
		return uint64(v)
	case uint32:
		return uint64(v)
	case uint64:
		return v
	}
	panic(errors.AssertionFailedf("datum of type %s is not unsigned integer backed", d.t))
}

// Float64 returns the value of a floating point Datum widened to 64
// bits.
func (d Datum) Float64() float64 {
	switch v := d.v.(type) {
	case float32:
		return float64(v)
	case float64:
		return v
	}
	panic(errors.AssertionFailedf("datum of type %s is not float backed", d.t))
}

// Bytes returns the byte contents of a Utf8 or Binary Datum.
func (d Datum) Bytes() []byte {
	switch v := d.v.(type) {
	case []byte:
		return v
	case string:
		return []byte(v)
	}
	panic(errors.AssertionFailedf("datum of type %s is not bytes backed", d.t))
}

func (d Datum) String() string {
	if d.null {
		return "NULL"
	}
	if d.t.Family() == types.StringFamily {
		return fmt.Sprintf("%q", string(d.Bytes()))
	}
	return fmt.Sprintf("%v", d.v)
}
