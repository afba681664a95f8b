package extract

import (
	sitter "github.com/tree-sitter/go-tree-sitter"

	"outline/internal/model"
)

// Decorators extracts the decorator models of a decorated definition. A bare
// name yields a decorator with no arguments; a call yields the called
// name plus each argument's literal source text. Unrecognized decorator
// expressions are skipped.
func Decorators(decorated *sitter.Node, source []byte) []model.Decorator {
	if decorated == nil || decorated.Kind() != "decorated_definition" {
		return nil
	}

	var decorators []model.Decorator
	for i := uint(0); i < decorated.NamedChildCount(); i++ {
		child := decorated.NamedChild(i)
		if child.Kind() != "decorator" {
			continue
		}
		if d := decoratorModel(child, source); d != nil {
			decorators = append(decorators, *d)
		}
	}
	return decorators
}

func decoratorModel(decorator *sitter.Node, source []byte) *model.Decorator {
	expr := decorator.NamedChild(0)
	if expr == nil {
		return nil
	}

	switch expr.Kind() {
	case "identifier", "attribute":
		return &model.Decorator{Name: Text(expr, source)}

	case "call":
		fn := expr.ChildByFieldName("function")
		args := expr.ChildByFieldName("arguments")
		if fn == nil {
			return nil
		}
		d := &model.Decorator{Name: Text(fn, source)}
		if args != nil {
			for i := uint(0); i < args.NamedChildCount(); i++ {
				// Nested calls and complex expressions are kept as
				// literal source text, not parsed further.
				d.Args = append(d.Args, Text(args.NamedChild(i), source))
			}
		}
		return d
	}
	return nil
}
