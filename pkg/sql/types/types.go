// Copyright 2021 Datafuse Labs.
//
// Use of this software is governed by the Apache License, Version 2.0.

// Package types defines the logical column types understood by the
// vectorized evaluation engine. A *T describes the semantic type of a
// column as seen by query semantics; it is fixed when the column is
// created and never mutated.
package types

import "fmt"

// Family groups logical types that share semantics. The set is closed:
// the evaluation engine switches exhaustively over it.
type Family int

const (
	// BoolFamily is the family of the Boolean type.
	BoolFamily Family = iota
	// IntFamily is the family of signed integer types of any width.
	IntFamily
	// UintFamily is the family of unsigned integer types of any width.
	UintFamily
	// FloatFamily is the family of floating point types.
	FloatFamily
	// StringFamily is the family of the Utf8 type.
	StringFamily
	// BytesFamily is the family of the Binary type.
	BytesFamily
	// DateFamily is the family of the Date32 and Date64 types.
	DateFamily
	// TimestampFamily is the family of Timestamp types of any unit.
	TimestampFamily
	// IntervalFamily is the family of Interval types of either unit.
	IntervalFamily
)

// TimeUnit is the resolution of a Timestamp type.
type TimeUnit int

const (
	// Second resolution.
	Second TimeUnit = iota
	// Millisecond resolution.
	Millisecond
	// Microsecond resolution.
	Microsecond
	// Nanosecond resolution.
	Nanosecond
)

func (u TimeUnit) String() string {
	switch u {
	case Second:
		return "s"
	case Millisecond:
		return "ms"
	case Microsecond:
		return "us"
	case Nanosecond:
		return "ns"
	}
	return fmt.Sprintf("TimeUnit(%d)", int(u))
}

// IntervalUnit is the representation of an Interval type. YearMonth
// intervals count whole months; DayTime intervals count milliseconds.
type IntervalUnit int

const (
	// YearMonth intervals are stored as an int32 number of months.
	YearMonth IntervalUnit = iota
	// DayTime intervals are stored as an int64 number of milliseconds.
	DayTime
)

func (u IntervalUnit) String() string {
	switch u {
	case YearMonth:
		return "YearMonth"
	case DayTime:
		return "DayTime"
	}
	return fmt.Sprintf("IntervalUnit(%d)", int(u))
}

// T is a logical column type. Values of T are immutable; the predefined
// singletons below cover every type without parameters, and MakeTimestamp
// constructs the parameterized timestamp types.
type T struct {
	family       Family
	width        int32
	timeUnit     TimeUnit
	timezone     string
	intervalUnit IntervalUnit
}

var (
	// Bool is the Boolean type.
	Bool = &T{family: BoolFamily}
	// Int8 is the 8-bit signed integer type.
	Int8 = &T{family: IntFamily, width: 8}
	// Int16 is the 16-bit signed integer type.
	Int16 = &T{family: IntFamily, width: 16}
	// Int32 is the 32-bit signed integer type.
	Int32 = &T{family: IntFamily, width: 32}
	// Int64 is the 64-bit signed integer type.
	Int64 = &T{family: IntFamily, width: 64}
	// Uint8 is the 8-bit unsigned integer type.
	Uint8 = &T{family: UintFamily, width: 8}
	// Uint16 is the 16-bit unsigned integer type.
	Uint16 = &T{family: UintFamily, width: 16}
	// Uint32 is the 32-bit unsigned integer type.
	Uint32 = &T{family: UintFamily, width: 32}
	// Uint64 is the 64-bit unsigned integer type.
	Uint64 = &T{family: UintFamily, width: 64}
	// Float32 is the 32-bit floating point type.
	Float32 = &T{family: FloatFamily, width: 32}
	// Float64 is the 64-bit floating point type.
	Float64 = &T{family: FloatFamily, width: 64}
	// String is the Utf8 string type.
	String = &T{family: StringFamily}
	// Bytes is the Binary type.
	Bytes = &T{family: BytesFamily}
	// Date32 is a date stored as an int32 number of days since the Unix
	// epoch.
	Date32 = &T{family: DateFamily, width: 32}
	// Date64 is a date stored as an int64 number of milliseconds since
	// the Unix epoch.
	Date64 = &T{family: DateFamily, width: 64}
	// IntervalYearMonth is an interval of whole months.
	IntervalYearMonth = &T{family: IntervalFamily, width: 32, intervalUnit: YearMonth}
	// IntervalDayTime is an interval of milliseconds.
	IntervalDayTime = &T{family: IntervalFamily, width: 64, intervalUnit: DayTime}
)

// MakeTimestamp returns a Timestamp type of the given resolution and
// timezone. An empty timezone means a zone-less timestamp.
func MakeTimestamp(unit TimeUnit, timezone string) *T {
	return &T{family: TimestampFamily, width: 64, timeUnit: unit, timezone: timezone}
}

// Family returns the type's family.
func (t *T) Family() Family { return t.family }

// Width returns the bit width of the type's storage. It is zero for
// families without a meaningful width (Boolean, Utf8, Binary).
func (t *T) Width() int32 { return t.width }

// TimeUnit returns the resolution of a Timestamp type. It is only
// meaningful when Family() == TimestampFamily.
func (t *T) TimeUnit() TimeUnit { return t.timeUnit }

// Timezone returns the timezone of a Timestamp type, or "" if none.
func (t *T) Timezone() string { return t.timezone }

// IntervalUnit returns the unit of an Interval type. It is only
// meaningful when Family() == IntervalFamily.
func (t *T) IntervalUnit() IntervalUnit { return t.intervalUnit }

// Equal reports whether two logical types are identical, including all
// parameters.
func (t *T) Equal(other *T) bool {
	if t == other {
		return true
	}
	return t.family == other.family &&
		t.width == other.width &&
		t.timeUnit == other.timeUnit &&
		t.timezone == other.timezone &&
		t.intervalUnit == other.intervalUnit
}

// IsNumeric reports whether the type participates in numeric promotion.
func (t *T) IsNumeric() bool {
	switch t.family {
	case IntFamily, UintFamily, FloatFamily:
		return true
	}
	return false
}

// IsInteger reports whether the type is a signed or unsigned integer.
func (t *T) IsInteger() bool {
	return t.family == IntFamily || t.family == UintFamily
}

// IsTemporal reports whether the type has no native primitive
// representation and must be mapped through typeconv.PhysicalOf before
// arithmetic.
func (t *T) IsTemporal() bool {
	switch t.family {
	case DateFamily, TimestampFamily, IntervalFamily:
		return true
	}
	return false
}

// IsBytesLike reports whether the type stores variable length byte
// sequences (Utf8 or Binary).
func (t *T) IsBytesLike() bool {
	return t.family == StringFamily || t.family == BytesFamily
}

func (t *T) String() string {
	switch t.family {
	case BoolFamily:
		return "Boolean"
	case IntFamily:
		return fmt.Sprintf("Int%d", t.width)
	case UintFamily:
		return fmt.Sprintf("UInt%d", t.width)
	case FloatFamily:
		return fmt.Sprintf("Float%d", t.width)
	case StringFamily:
		return "Utf8"
	case BytesFamily:
		return "Binary"
	case DateFamily:
		return fmt.Sprintf("Date%d", t.width)
	case TimestampFamily:
		if t.timezone == "" {
			return fmt.Sprintf("Timestamp(%s)", t.timeUnit)
		}
		return fmt.Sprintf("Timestamp(%s, %s)", t.timeUnit, t.timezone)
	case IntervalFamily:
		return fmt.Sprintf("Interval(%s)", t.intervalUnit)
	}
	return fmt.Sprintf("unknown type family %d", int(t.family))
}
