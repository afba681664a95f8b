// Package extract converts raw CST fragments into flat attribute values:
// comments, docstrings, decorators, parameters, annotations, imports, and
// class headers. Extractors are pure functions over a node and the source
// bytes; best-effort extractors degrade to omission instead of failing.
package extract

import (
	sitter "github.com/tree-sitter/go-tree-sitter"
)

// Text returns the raw source text spanned by node.
func Text(node *sitter.Node, source []byte) string {
	if node == nil {
		return ""
	}
	return string(source[node.StartByte():node.EndByte()])
}

// Lines returns node's 1-based inclusive line span.
func Lines(node *sitter.Node) (start, end int) {
	start = int(node.StartPosition().Row) + 1
	end = int(node.EndPosition().Row) + 1
	return start, end
}

// ChildOfKind returns the first direct child with the given kind, or nil.
func ChildOfKind(node *sitter.Node, kind string) *sitter.Node {
	if node == nil {
		return nil
	}
	for i := uint(0); i < node.ChildCount(); i++ {
		child := node.Child(i)
		if child.Kind() == kind {
			return child
		}
	}
	return nil
}

// HasChildOfKind reports whether node has a direct child of the given kind,
// including anonymous children such as the `async` keyword.
func HasChildOfKind(node *sitter.Node, kind string) bool {
	return ChildOfKind(node, kind) != nil
}
