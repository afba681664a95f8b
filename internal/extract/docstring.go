package extract

import (
	"strings"

	sitter "github.com/tree-sitter/go-tree-sitter"
)

// Docstring returns the docstring of a module or block body node: the string
// literal of the first expression statement, with quotes stripped. Returns
// nil when the first statement is not a bare string.
func Docstring(body *sitter.Node, source []byte) *string {
	if body == nil {
		return nil
	}

	var first *sitter.Node
	for i := uint(0); i < body.NamedChildCount(); i++ {
		child := body.NamedChild(i)
		if child.Kind() == "comment" {
			continue
		}
		first = child
		break
	}
	if first == nil || first.Kind() != "expression_statement" {
		return nil
	}
	str := first.NamedChild(0)
	if str == nil || str.Kind() != "string" {
		return nil
	}

	text := stringLiteralValue(str, source)
	return &text
}

// stringLiteralValue extracts the content of a string node without its
// quote/prefix tokens, preserving interior whitespace.
func stringLiteralValue(str *sitter.Node, source []byte) string {
	var parts []string
	for i := uint(0); i < str.ChildCount(); i++ {
		child := str.Child(i)
		if child.Kind() == "string_content" {
			parts = append(parts, Text(child, source))
		}
	}
	if len(parts) == 0 {
		// Fall back to the raw literal with common quote styles trimmed.
		raw := Text(str, source)
		raw = strings.TrimPrefix(raw, `"""`)
		raw = strings.TrimSuffix(raw, `"""`)
		raw = strings.Trim(raw, `"'`)
		return raw
	}
	return strings.Join(parts, "")
}
