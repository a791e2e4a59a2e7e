// Copyright 2021 Datafuse Labs.
//
// Use of this software is governed by the Apache License, Version 2.0.

package plan

import (
	"fmt"
	"strings"
)

// Indent renders the tree with two-space indentation per level, one
// node per line. With withSchema set, each line carries the node's
// output schema.
func Indent(node Node, withSchema bool) string {
	var b strings.Builder
	v := &indentVisitor{b: &b, withSchema: withSchema}
	// The visitor hooks cannot fail.
	_ = Walk(v, node)
	return b.String()
}

type indentVisitor struct {
	b          *strings.Builder
	withSchema bool
	depth      int
}

func (v *indentVisitor) PreVisit(node Node) (bool, error) {
	for i := 0; i < v.depth; i++ {
		v.b.WriteString("  ")
	}
	v.b.WriteString(node.Display())
	if v.withSchema && node.Schema() != nil {
		fmt.Fprintf(v.b, " %s", node.Schema())
	}
	v.b.WriteString("\n")
	v.depth++
	return true, nil
}

func (v *indentVisitor) PostVisit(Node) error {
	v.depth--
	return nil
}

// Graphviz renders the tree as a dot digraph, one vertex per node and
// an edge from each node to its children.
func Graphviz(node Node) string {
	var b strings.Builder
	b.WriteString("digraph plan {\n")
	b.WriteString("  node [shape=box]\n")
	v := &graphvizVisitor{b: &b, ids: map[Node]int{}}
	_ = Walk(v, node)
	b.WriteString("}\n")
	return b.String()
}

type graphvizVisitor struct {
	b     *strings.Builder
	ids   map[Node]int
	next  int
	stack []int
}

func (v *graphvizVisitor) PreVisit(node Node) (bool, error) {
	id := v.next
	v.next++
	v.ids[node] = id
	fmt.Fprintf(v.b, "  n%d [label=%q]\n", id, node.Display())
	if len(v.stack) > 0 {
		fmt.Fprintf(v.b, "  n%d -> n%d\n", v.stack[len(v.stack)-1], id)
	}
	v.stack = append(v.stack, id)
	return true, nil
}

func (v *graphvizVisitor) PostVisit(Node) error {
	v.stack = v.stack[:len(v.stack)-1]
	return nil
}
