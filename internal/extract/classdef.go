package extract

import (
	sitter "github.com/tree-sitter/go-tree-sitter"

	"outline/internal/core/errors"
	"outline/internal/model"
)

// Bases returns the base-class names from a class header's superclass list.
// Only plain and dotted names are recorded; other expressions are skipped.
func Bases(superclasses *sitter.Node, source []byte) []string {
	if superclasses == nil {
		return nil
	}

	var bases []string
	for i := uint(0); i < superclasses.NamedChildCount(); i++ {
		child := superclasses.NamedChild(i)
		switch child.Kind() {
		case "identifier", "attribute":
			bases = append(bases, Text(child, source))
		}
	}
	return bases
}

// Keywords extracts metaclass-style keyword arguments from a class header.
// Unlike the best-effort extractors, a keyword argument missing its name or
// value indicates corrupt input and fails the parse.
func Keywords(superclasses *sitter.Node, source []byte) ([]model.ClassKeyword, error) {
	if superclasses == nil {
		return nil, nil
	}

	var keywords []model.ClassKeyword
	for i := uint(0); i < superclasses.NamedChildCount(); i++ {
		child := superclasses.NamedChild(i)
		if child.Kind() != "keyword_argument" {
			continue
		}

		name := Text(child.ChildByFieldName("name"), source)
		value := Text(child.ChildByFieldName("value"), source)
		if name == "" || value == "" {
			return nil, errors.New(errors.CodeValidationError,
				"class keyword argument requires both a name and a value")
		}
		keywords = append(keywords, model.ClassKeyword{Name: name, ArgValue: value})
	}
	return keywords, nil
}
