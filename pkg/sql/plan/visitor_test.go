// Copyright 2021 Datafuse Labs.
//
// Use of this software is governed by the Apache License, Version 2.0.

package plan

import (
	"testing"

	"github.com/cockroachdb/errors"
	"github.com/stretchr/testify/require"

	"github.com/lianghanzhen/databend/pkg/sql/types"
)

func testTree() Node {
	scan := &Scan{
		Database: "default",
		Table:    "hits",
		Out: Schema{
			{Name: "id", Type: types.Uint64},
			{Name: "title", Type: types.String},
		},
		EstimateRows: 1000000,
	}
	filter := &Filter{Predicate: "id > 10", Input: scan}
	proj := &Projection{
		Exprs: []string{"id", "title"},
		Out:   filter.Schema(),
		Input: filter,
	}
	return &Limit{N: 10, Input: proj}
}

type traceVisitor struct {
	events []string
	prune  string
	fail   string
}

func (v *traceVisitor) PreVisit(n Node) (bool, error) {
	if n.Name() == v.fail {
		return false, errors.Newf("boom at %s", n.Name())
	}
	v.events = append(v.events, "pre:"+n.Name())
	return n.Name() != v.prune, nil
}

func (v *traceVisitor) PostVisit(n Node) error {
	v.events = append(v.events, "post:"+n.Name())
	return nil
}

func TestWalkOrder(t *testing.T) {
	v := &traceVisitor{}
	require.NoError(t, Walk(v, testTree()))
	require.Equal(t, []string{
		"pre:Limit",
		"pre:Projection",
		"pre:Filter",
		"pre:Scan",
		"post:Scan",
		"post:Filter",
		"post:Projection",
		"post:Limit",
	}, v.events)
}

func TestWalkPrunes(t *testing.T) {
	v := &traceVisitor{prune: "Filter"}
	require.NoError(t, Walk(v, testTree()))
	// A false PreVisit skips the subtree and the node's own PostVisit.
	require.Equal(t, []string{
		"pre:Limit",
		"pre:Projection",
		"pre:Filter",
		"post:Projection",
		"post:Limit",
	}, v.events)
}

func TestWalkAbortsOnError(t *testing.T) {
	v := &traceVisitor{fail: "Filter"}
	err := Walk(v, testTree())
	require.Error(t, err)
	require.Equal(t, []string{"pre:Limit", "pre:Projection"}, v.events)
}

func TestSchemaString(t *testing.T) {
	s := Schema{
		{Name: "id", Type: types.Uint64},
		{Name: "title", Type: types.String},
	}
	require.Equal(t, "[id UInt64, title Utf8]", s.String())
}
