// Copyright 2021 Datafuse Labs.
//
// Use of this software is governed by the Apache License, Version 2.0.

// Package colexec implements the vectorized scalar function framework:
// the six comparison operators, five arithmetic operators and the two
// logical connectives evaluated over whole columns, with uniform null
// propagation.
//
// Each evaluation dispatches to one of three paths. The SIMD batch path
// runs when both operands are vectors of one primitive type with a
// native kernel for the operator. The scalar promotion path converts
// mixed numeric operands into their narrowest common lossless type and
// applies the operator per element. The raw-byte path compares Utf8 and
// Binary operands byte-wise, bypassing numeric promotion. Boolean
// equality is a dedicated special case built on XOR. Temporal operands
// are resolved to their physical representation before any path runs,
// so kernels only ever see primitives.
package colexec

// CmpOp identifies a comparison operator.
type CmpOp int

const (
	// CmpEq is =.
	CmpEq CmpOp = iota
	// CmpNe is != (also spelled <>).
	CmpNe
	// CmpLt is <.
	CmpLt
	// CmpLe is <=.
	CmpLe
	// CmpGt is >.
	CmpGt
	// CmpGe is >=.
	CmpGe
)

func (op CmpOp) String() string {
	switch op {
	case CmpEq:
		return "="
	case CmpNe:
		return "!="
	case CmpLt:
		return "<"
	case CmpLe:
		return "<="
	case CmpGt:
		return ">"
	case CmpGe:
		return ">="
	}
	return "?"
}

// ArithOp identifies an arithmetic operator.
type ArithOp int

const (
	// ArithAdd is +.
	ArithAdd ArithOp = iota
	// ArithSub is -.
	ArithSub
	// ArithMul is *.
	ArithMul
	// ArithDiv is /.
	ArithDiv
	// ArithMod is %.
	ArithMod
)

func (op ArithOp) String() string {
	switch op {
	case ArithAdd:
		return "+"
	case ArithSub:
		return "-"
	case ArithMul:
		return "*"
	case ArithDiv:
		return "/"
	case ArithMod:
		return "%"
	}
	return "?"
}

// LogicOp identifies a binary logical connective.
type LogicOp int

const (
	// LogicAnd is AND.
	LogicAnd LogicOp = iota
	// LogicOr is OR.
	LogicOr
)

func (op LogicOp) String() string {
	switch op {
	case LogicAnd:
		return "and"
	case LogicOr:
		return "or"
	}
	return "?"
}

// EvalContext is a call-scoped accumulator threaded through one
// evaluation. It is not persisted past the call and must not be shared
// between concurrent evaluations.
type EvalContext struct {
	// DivByZero counts rows whose result became NULL because the
	// divisor was zero.
	DivByZero int
}
