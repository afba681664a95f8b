package extract

import (
	"strings"

	sitter "github.com/tree-sitter/go-tree-sitter"

	"outline/internal/model"
)

// ImportStatement extracts a plain `import x`/`import x as y` statement.
func ImportStatement(node *sitter.Node, source []byte, classifier *ImportClassifier) model.Import {
	imp := model.Import{ImportType: model.ImportStandardLibrary}

	for i := uint(0); i < node.NamedChildCount(); i++ {
		child := node.NamedChild(i)
		switch child.Kind() {
		case "dotted_name":
			imp.ImportNames = append(imp.ImportNames, model.ImportName{Name: Text(child, source)})
		case "aliased_import":
			name := Text(child.ChildByFieldName("name"), source)
			alias := Text(child.ChildByFieldName("alias"), source)
			imp.ImportNames = append(imp.ImportNames, model.ImportName{Name: name, AsName: &alias})
		}
	}

	if len(imp.ImportNames) > 0 {
		imp.ImportType = classifier.Classify(imp.ImportNames[0].Name, false)
	}
	return imp
}

// ImportFromStatement extracts a `from x import a, b as c` statement.
// ImportedFrom carries the source module; a wildcard import yields the
// single name "*".
func ImportFromStatement(node *sitter.Node, source []byte, classifier *ImportClassifier) model.Import {
	imp := model.Import{ImportType: model.ImportStandardLibrary}

	moduleNode := node.ChildByFieldName("module_name")
	relative := false
	switch {
	case moduleNode != nil:
		moduleName := Text(moduleNode, source)
		relative = moduleNode.Kind() == "relative_import"
		imp.ImportedFrom = &moduleName
	case node.Kind() == "future_import_statement":
		// `__future__` is a bare keyword token in the grammar, not a
		// module_name field.
		future := "__future__"
		imp.ImportedFrom = &future
	}

	for i := uint(0); i < node.NamedChildCount(); i++ {
		child := node.NamedChild(i)
		if moduleNode != nil && child.Id() == moduleNode.Id() {
			continue
		}
		switch child.Kind() {
		case "wildcard_import":
			imp.ImportNames = append(imp.ImportNames, model.ImportName{Name: "*"})
		case "dotted_name":
			imp.ImportNames = append(imp.ImportNames, model.ImportName{Name: Text(child, source)})
		case "aliased_import":
			name := Text(child.ChildByFieldName("name"), source)
			alias := Text(child.ChildByFieldName("alias"), source)
			imp.ImportNames = append(imp.ImportNames, model.ImportName{Name: name, AsName: &alias})
		}
	}

	if imp.ImportedFrom != nil {
		imp.ImportType = classifier.Classify(*imp.ImportedFrom, relative)
	}
	return imp
}

// ImportClassifier decides an import's provenance: standard library, local
// to the project, or third party.
type ImportClassifier struct {
	localPrefixes []string
}

func NewImportClassifier(localPrefixes []string) *ImportClassifier {
	return &ImportClassifier{localPrefixes: localPrefixes}
}

func (c *ImportClassifier) Classify(module string, relative bool) model.ImportType {
	if relative || strings.HasPrefix(module, ".") {
		return model.ImportLocal
	}

	root := module
	if idx := strings.IndexByte(root, '.'); idx >= 0 {
		root = root[:idx]
	}

	if stdlibModules[root] {
		return model.ImportStandardLibrary
	}
	if c != nil {
		for _, prefix := range c.localPrefixes {
			if root == prefix {
				return model.ImportLocal
			}
		}
	}
	return model.ImportThirdParty
}
