// Copyright 2021 Datafuse Labs.
//
// Use of this software is governed by the Apache License, Version 2.0.

package colexec

import (
	"github.com/cockroachdb/errors"

	"github.com/lianghanzhen/databend/pkg/col/coldata"
	"github.com/lianghanzhen/databend/pkg/sql/sqlerrors"
)

// Function is a vectorized scalar function. Eval consumes whole columns
// and produces a column of the same length.
type Function interface {
	Name() string
	Eval(ctx *EvalContext, args ...coldata.Column) (coldata.Column, error)
}

// TryCreate looks up a scalar function by name. Lookup is by exact
// operator spelling; "!=" and "<>" resolve to the same function.
func TryCreate(name string) (Function, error) {
	if op, ok := cmpOps[name]; ok {
		return &cmpFunction{name: name, op: op}, nil
	}
	if op, ok := arithOps[name]; ok {
		return &arithFunction{name: name, op: op}, nil
	}
	if op, ok := logicOps[name]; ok {
		return &logicFunction{name: name, op: op}, nil
	}
	return nil, sqlerrors.NewUnknownFunction(name)
}

var cmpOps = map[string]CmpOp{
	"=":  CmpEq,
	"!=": CmpNe,
	"<>": CmpNe,
	"<":  CmpLt,
	"<=": CmpLe,
	">":  CmpGt,
	">=": CmpGe,
}

var arithOps = map[string]ArithOp{
	"+": ArithAdd,
	"-": ArithSub,
	"*": ArithMul,
	"/": ArithDiv,
	"%": ArithMod,
}

var logicOps = map[string]LogicOp{
	"and": LogicAnd,
	"or":  LogicOr,
}

type cmpFunction struct {
	name string
	op   CmpOp
}

func (f *cmpFunction) Name() string { return f.name }

func (f *cmpFunction) Eval(ctx *EvalContext, args ...coldata.Column) (coldata.Column, error) {
	if len(args) != 2 {
		return nil, errors.Newf("%s expects 2 arguments, got %d", f.name, len(args))
	}
	return EvalComparison(f.op, args[0], args[1], ctx)
}

type arithFunction struct {
	name string
	op   ArithOp
}

func (f *arithFunction) Name() string { return f.name }

func (f *arithFunction) Eval(ctx *EvalContext, args ...coldata.Column) (coldata.Column, error) {
	if len(args) != 2 {
		return nil, errors.Newf("%s expects 2 arguments, got %d", f.name, len(args))
	}
	return EvalArithmetic(f.op, args[0], args[1], ctx)
}

type logicFunction struct {
	name string
	op   LogicOp
}

func (f *logicFunction) Name() string { return f.name }

func (f *logicFunction) Eval(_ *EvalContext, args ...coldata.Column) (coldata.Column, error) {
	if len(args) != 2 {
		return nil, errors.Newf("%s expects 2 arguments, got %d", f.name, len(args))
	}
	return EvalLogic(f.op, args[0], args[1])
}
