// Copyright 2021 Datafuse Labs.
//
// Use of this software is governed by the Apache License, Version 2.0.

// Package plan models query plans as trees of nodes and provides the
// visitor protocol and printers the rest of the system uses to inspect
// them. Plan nodes are immutable once built.
package plan

import (
	"fmt"
	"strings"

	"github.com/dustin/go-humanize"

	"github.com/lianghanzhen/databend/pkg/sql/types"
)

// Column describes one column of a node's output schema.
type Column struct {
	Name string
	Type *types.T
}

// Schema is the ordered output schema of a plan node.
type Schema []Column

func (s Schema) String() string {
	var b strings.Builder
	b.WriteString("[")
	for i, c := range s {
		if i > 0 {
			b.WriteString(", ")
		}
		fmt.Fprintf(&b, "%s %s", c.Name, c.Type)
	}
	b.WriteString("]")
	return b.String()
}

// Node is a query plan tree node.
type Node interface {
	// Name is the node's kind, stable across plans.
	Name() string
	// Schema is the node's output schema.
	Schema() Schema
	// Children are the node's inputs, outermost first.
	Children() []Node
	// Display is a one-line description for plan printers.
	Display() string
}

// Scan reads a table.
type Scan struct {
	Database     string
	Table        string
	Out          Schema
	EstimateRows uint64
}

func (s *Scan) Name() string     { return "Scan" }
func (s *Scan) Schema() Schema   { return s.Out }
func (s *Scan) Children() []Node { return nil }

func (s *Scan) Display() string {
	return fmt.Sprintf("Scan: %s.%s, read rows: %s",
		s.Database, s.Table, humanize.Comma(int64(s.EstimateRows)))
}

// Filter keeps the input rows matching a predicate.
type Filter struct {
	Predicate string
	Input     Node
}

func (f *Filter) Name() string     { return "Filter" }
func (f *Filter) Schema() Schema   { return f.Input.Schema() }
func (f *Filter) Children() []Node { return []Node{f.Input} }
func (f *Filter) Display() string  { return fmt.Sprintf("Filter: %s", f.Predicate) }

// Projection evaluates expressions over the input.
type Projection struct {
	Exprs []string
	Out   Schema
	Input Node
}

func (p *Projection) Name() string     { return "Projection" }
func (p *Projection) Schema() Schema   { return p.Out }
func (p *Projection) Children() []Node { return []Node{p.Input} }

func (p *Projection) Display() string {
	return fmt.Sprintf("Projection: %s", strings.Join(p.Exprs, ", "))
}

// Limit truncates the input to at most N rows.
type Limit struct {
	N     uint64
	Input Node
}

func (l *Limit) Name() string     { return "Limit" }
func (l *Limit) Schema() Schema   { return l.Input.Schema() }
func (l *Limit) Children() []Node { return []Node{l.Input} }
func (l *Limit) Display() string  { return fmt.Sprintf("Limit: %d", l.N) }

// CreateDatabase registers a database in the catalog.
type CreateDatabase struct {
	Database    string
	IfNotExists bool
	Engine      string
}

func (c *CreateDatabase) Name() string     { return "CreateDatabase" }
func (c *CreateDatabase) Schema() Schema   { return nil }
func (c *CreateDatabase) Children() []Node { return nil }

func (c *CreateDatabase) Display() string {
	return fmt.Sprintf("Create database %s, engine: %s", c.Database, c.Engine)
}

// DropDatabase removes a database from the catalog.
type DropDatabase struct {
	Database string
	IfExists bool
}

func (d *DropDatabase) Name() string     { return "DropDatabase" }
func (d *DropDatabase) Schema() Schema   { return nil }
func (d *DropDatabase) Children() []Node { return nil }
func (d *DropDatabase) Display() string  { return fmt.Sprintf("Drop database %s", d.Database) }
