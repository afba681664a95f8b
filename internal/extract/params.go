package extract

import (
	sitter "github.com/tree-sitter/go-tree-sitter"

	"outline/internal/model"
)

// Parameters reconstructs a function's parameter list into the five Python
// slots: positional-or-keyword, position-only (before `/`), keyword-only
// (after bare `*` or `*args`), the single `*args`, and the single `**kwargs`.
// Returns nil for an empty parameter list.
func Parameters(params *sitter.Node, source []byte) *model.ParameterList {
	if params == nil {
		return nil
	}

	list := &model.ParameterList{}
	afterStar := false

	appendParam := func(p model.Parameter) {
		if afterStar {
			list.KwonlyParams = append(list.KwonlyParams, p)
		} else {
			list.Params = append(list.Params, p)
		}
	}

	for i := uint(0); i < params.ChildCount(); i++ {
		child := params.Child(i)

		switch child.Kind() {
		case "(", ")", ",", "comment":
			continue

		case "positional_separator":
			// Everything accumulated so far was position-only.
			list.PosonlyParams = list.Params
			list.Params = nil

		case "keyword_separator":
			afterStar = true

		case "list_splat_pattern":
			p := model.Parameter{Content: Text(child, source)}
			list.StarArg = &p
			afterStar = true

		case "dictionary_splat_pattern":
			p := model.Parameter{Content: Text(child, source)}
			list.StarKwarg = &p

		case "typed_parameter":
			inner := child.NamedChild(0)
			p := model.Parameter{Content: renderTypedParameter(child, source)}
			switch {
			case inner != nil && inner.Kind() == "list_splat_pattern":
				list.StarArg = &p
				afterStar = true
			case inner != nil && inner.Kind() == "dictionary_splat_pattern":
				list.StarKwarg = &p
			default:
				appendParam(p)
			}

		case "identifier":
			appendParam(model.Parameter{Content: Text(child, source)})

		case "default_parameter":
			appendParam(model.Parameter{Content: renderDefaultParameter(child, source)})

		case "typed_default_parameter":
			appendParam(model.Parameter{Content: renderTypedDefaultParameter(child, source)})

		default:
			// Tuple patterns and other exotic shapes keep their raw text.
			appendParam(model.Parameter{Content: Text(child, source)})
		}
	}

	if list.Params == nil && list.PosonlyParams == nil && list.KwonlyParams == nil &&
		list.StarArg == nil && list.StarKwarg == nil {
		return nil
	}
	return list
}

func renderTypedParameter(node *sitter.Node, source []byte) string {
	pattern := node.NamedChild(0)
	content := Text(pattern, source)
	if annotation := RenderAnnotation(node.ChildByFieldName("type"), source); annotation != "" {
		content += ": " + annotation
	}
	return content
}

func renderDefaultParameter(node *sitter.Node, source []byte) string {
	content := Text(node.ChildByFieldName("name"), source)
	if value := node.ChildByFieldName("value"); value != nil {
		content += " = " + Text(value, source)
	}
	return content
}

func renderTypedDefaultParameter(node *sitter.Node, source []byte) string {
	content := Text(node.ChildByFieldName("name"), source)
	if annotation := RenderAnnotation(node.ChildByFieldName("type"), source); annotation != "" {
		content += ": " + annotation
	}
	if value := node.ChildByFieldName("value"); value != nil {
		content += " = " + Text(value, source)
	}
	return content
}
