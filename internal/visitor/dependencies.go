package visitor

import (
	"strings"

	"outline/internal/builder"
	"outline/internal/model"
)

// InferDependencies runs over a walked module's direct children before the
// module is built. Each child's source text is scanned for uses of the
// module's imports and of its sibling blocks; matches become the child's
// dependency list. Matching is textual on purpose: name-shadowing and
// string-literal mentions produce false positives, which downstream
// consumers treat as hints, not proof.
func InferDependencies(mb *builder.ModuleBuilder) {
	children := mb.ChildBuilders()
	imports := mb.Imports()

	for _, child := range children {
		content := child.CodeContent()
		var deps []model.Dependency

		for _, imp := range imports {
			if importUsed(content, imp) {
				deps = append(deps, imp)
			}
		}
		for _, sibling := range children {
			if sibling == child {
				continue
			}
			if ref, ok := siblingRef(content, sibling); ok {
				deps = append(deps, ref)
			}
		}

		if len(deps) > 0 {
			child.SetDependencies(deps)
		}
	}
}

// importUsed reports whether any of the import's bound names (the alias when
// one exists) occurs in the content. Wildcard imports bind no scannable name.
func importUsed(content string, imp model.Import) bool {
	for _, name := range imp.ImportNames {
		bound := name.Name
		if name.AsName != nil {
			bound = *name.AsName
		}
		if bound == "*" || bound == "" {
			continue
		}
		if strings.Contains(content, bound) {
			return true
		}
	}
	return false
}

// siblingRef reports whether content mentions the sibling block: its class or
// function name, or for a standalone run any variable it assigns.
func siblingRef(content string, sibling builder.BlockBuilder) (model.BlockRef, bool) {
	switch b := sibling.(type) {
	case *builder.ClassBuilder:
		if b.ClassName() != "" && strings.Contains(content, b.ClassName()) {
			return model.BlockRef(b.ID()), true
		}
	case *builder.FunctionBuilder:
		if b.FunctionName() != "" && strings.Contains(content, b.FunctionName()) {
			return model.BlockRef(b.ID()), true
		}
	case *builder.StandaloneBuilder:
		for _, name := range b.Assignments() {
			if name != "" && strings.Contains(content, name) {
				return model.BlockRef(b.ID()), true
			}
		}
	}
	return "", false
}
