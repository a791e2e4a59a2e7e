// Copyright 2021 Datafuse Labs.
//
// Use of this software is governed by the Apache License, Version 2.0.

package plan

// Visitor observes a plan tree in depth-first order. PreVisit runs
// before a node's children and may prune: returning false skips the
// subtree, including the node's own PostVisit. An error from either
// hook aborts the walk.
type Visitor interface {
	PreVisit(Node) (bool, error)
	PostVisit(Node) error
}

// Walk traverses the tree rooted at node, calling v's hooks around each
// subtree.
func Walk(v Visitor, node Node) error {
	recurse, err := v.PreVisit(node)
	if err != nil {
		return err
	}
	if !recurse {
		return nil
	}
	for _, child := range node.Children() {
		if err := Walk(v, child); err != nil {
			return err
		}
	}
	return v.PostVisit(node)
}
