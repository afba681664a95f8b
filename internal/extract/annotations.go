package extract

import (
	"strings"

	sitter "github.com/tree-sitter/go-tree-sitter"
)

// RenderAnnotation reconstructs a type annotation expression as source text.
// Subscripted generics and unions are rendered recursively; expression shapes
// outside the closed set below degrade to "" rather than failing the parse.
func RenderAnnotation(node *sitter.Node, source []byte) string {
	if node == nil {
		return ""
	}

	switch node.Kind() {
	case "type":
		return RenderAnnotation(node.NamedChild(0), source)

	case "identifier", "attribute", "string", "none":
		return Text(node, source)

	case "generic_type":
		// identifier plus a bracketed type_parameter list.
		base := node.NamedChild(0)
		params := ChildOfKind(node, "type_parameter")
		if base == nil || params == nil {
			return ""
		}
		var args []string
		for i := uint(0); i < params.NamedChildCount(); i++ {
			rendered := RenderAnnotation(params.NamedChild(i), source)
			if rendered == "" {
				return ""
			}
			args = append(args, rendered)
		}
		return RenderAnnotation(base, source) + "[" + strings.Join(args, ", ") + "]"

	case "subscript":
		value := node.ChildByFieldName("value")
		if value == nil {
			return ""
		}
		var args []string
		for i := uint(0); i < node.NamedChildCount(); i++ {
			child := node.NamedChild(i)
			if child.Id() == value.Id() {
				continue
			}
			rendered := RenderAnnotation(child, source)
			if rendered == "" {
				return ""
			}
			args = append(args, rendered)
		}
		return RenderAnnotation(value, source) + "[" + strings.Join(args, ", ") + "]"

	case "union_type":
		left := RenderAnnotation(node.ChildByFieldName("left"), source)
		right := RenderAnnotation(node.ChildByFieldName("right"), source)
		if left == "" || right == "" {
			return ""
		}
		return left + " | " + right

	case "binary_operator":
		op := node.ChildByFieldName("operator")
		if op == nil || Text(op, source) != "|" {
			return ""
		}
		left := RenderAnnotation(node.ChildByFieldName("left"), source)
		right := RenderAnnotation(node.ChildByFieldName("right"), source)
		if left == "" || right == "" {
			return ""
		}
		return left + " | " + right
	}

	return ""
}
