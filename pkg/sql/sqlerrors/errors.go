// Copyright 2021 Datafuse Labs.
//
// Use of this software is governed by the Apache License, Version 2.0.

// Package sqlerrors exports the error taxonomy of the evaluation core.
// Every fallible operation returns one of these typed errors; callers
// classify them with errors.Is against the exported sentinels.
package sqlerrors

import (
	"github.com/cockroachdb/errors"
	"github.com/lianghanzhen/databend/pkg/sql/types"
)

// Sentinels for errors.Is classification. Constructors below attach the
// offending detail and mark the result with the matching sentinel.
var (
	// ErrUnsupportedCast is returned when no defined or lossless mapping
	// exists between two logical types.
	ErrUnsupportedCast = errors.New("unsupported cast")
	// ErrTypeMismatch is returned when two operand types are not
	// comparable or arithmetic-compatible and no promotion exists.
	ErrTypeMismatch = errors.New("type mismatch")
	// ErrIndexOutOfRange is returned when a row index is >= the column
	// length.
	ErrIndexOutOfRange = errors.New("index out of range")
	// ErrUnknownDatabase is returned on a catalog miss for a database.
	ErrUnknownDatabase = errors.New("unknown database")
	// ErrUnknownTable is returned on a catalog miss for a table.
	ErrUnknownTable = errors.New("unknown table")
	// ErrUnknownTableFunction is returned on a catalog miss for a table
	// function.
	ErrUnknownTableFunction = errors.New("unknown table function")
	// ErrUnknownFunction is returned when no scalar function is
	// registered under a requested name.
	ErrUnknownFunction = errors.New("unknown function")
	// ErrDatabaseExists is returned by CreateDatabase without
	// if-not-exists when the database is already registered.
	ErrDatabaseExists = errors.New("database already exists")
)

// NewUnsupportedCast returns the error for a cast from one logical type
// to another that is undefined or would lose information.
func NewUnsupportedCast(from, to *types.T) error {
	return errors.Mark(
		errors.Newf("unsupported cast from %s to %s", from, to),
		ErrUnsupportedCast)
}

// NewTypeMismatch returns the error for two operand types with no
// common evaluation scheme. Both logical types are named so the failure
// is actionable.
func NewTypeMismatch(left, right *types.T) error {
	return errors.Mark(
		errors.Newf("incompatible types %s and %s", left, right),
		ErrTypeMismatch)
}

// NewIndexOutOfRange returns the error for a row access past the end of
// a column.
func NewIndexOutOfRange(idx, length int) error {
	return errors.Mark(
		errors.Newf("index %d out of range for column of length %d", idx, length),
		ErrIndexOutOfRange)
}

// NewUnknownDatabase returns the catalog-miss error for a database name.
func NewUnknownDatabase(name string) error {
	return errors.Mark(
		errors.Newf("unknown database %q", name),
		ErrUnknownDatabase)
}

// NewUnknownTable returns the catalog-miss error for a table name.
func NewUnknownTable(db, name string) error {
	return errors.Mark(
		errors.Newf("unknown table %q in database %q", name, db),
		ErrUnknownTable)
}

// NewUnknownTableFunction returns the catalog-miss error for a table
// function name.
func NewUnknownTableFunction(name string) error {
	return errors.Mark(
		errors.Newf("unknown table function %q", name),
		ErrUnknownTableFunction)
}

// NewUnknownFunction returns the lookup-miss error for a scalar
// function name.
func NewUnknownFunction(name string) error {
	return errors.Mark(
		errors.Newf("unknown function %q", name),
		ErrUnknownFunction)
}

// NewDatabaseExists returns the duplicate-create error for a database
// name.
func NewDatabaseExists(name string) error {
	return errors.Mark(
		errors.Newf("database %q already exists", name),
		ErrDatabaseExists)
}
