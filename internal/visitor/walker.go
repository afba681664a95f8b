package visitor

import (
	sitter "github.com/tree-sitter/go-tree-sitter"

	"outline/internal/builder"
	"outline/internal/core/errors"
	"outline/internal/extract"
	"outline/internal/ident"
	"outline/internal/model"
)

// attachTarget is the slice of builder behavior the walker needs from a
// parent block.
type attachTarget interface {
	ID() string
	AddChildBuilder(child builder.BlockBuilder)
}

// Walker traverses one file's CST and assembles its builder hierarchy.
// A Walker is single-file and not safe for concurrent use; concurrent
// pipelines run one Walker per file.
type Walker struct {
	source     []byte
	manager    *Manager
	classifier *extract.ImportClassifier
	moduleID   string
}

func NewWalker(source []byte, manager *Manager, classifier *extract.ImportClassifier) *Walker {
	return &Walker{source: source, manager: manager, classifier: classifier}
}

// WalkModule traverses the module root, returning the fully populated module
// builder with the dependency inference pass already applied. Walking the
// same module twice against one Manager without a ResetScope is refused.
func (w *Walker) WalkModule(root *sitter.Node, filePath string) (*builder.ModuleBuilder, error) {
	mb := builder.NewModule(filePath)
	w.moduleID = mb.ID()
	if w.manager.HasBeenProcessed(w.moduleID, mb.ID()) {
		err := errors.Newf(errors.CodeConflict, "module %s was already processed", filePath)
		return nil, errors.AddContext(err, errors.CtxPath, filePath)
	}

	start, end := extract.Lines(root)
	mb.SetLines(start, end)
	mb.SetCodeContent(string(w.source))
	if ds := extract.Docstring(root, w.source); ds != nil {
		mb.SetDocstring(*ds)
	}
	mb.SetHeader(extract.HeaderComments(root, w.source))
	mb.SetFooter(extract.FooterComments(root, w.source))
	mb.SetComments(extract.OwnedComments(root, w.source))

	if err := w.walkBody(root, mb, false); err != nil {
		return nil, err
	}
	InferDependencies(mb)
	return mb, nil
}

// walkBody partitions a body's statements: imports are recorded on the
// module, class and function definitions become child blocks, and maximal
// runs of remaining statements become standalone blocks. Comments extend an
// open run but never open one, and docstrings belong to the parent.
func (w *Walker) walkBody(body *sitter.Node, parent attachTarget, inClass bool) error {
	docstring := docstringStatement(body)
	mb, isModule := parent.(*builder.ModuleBuilder)

	var run []*sitter.Node
	ordinal := 0

	flush := func() error {
		if len(run) == 0 {
			return nil
		}
		stmts := trimTrailingComments(run)
		run = nil
		if len(stmts) == 0 {
			return nil
		}

		ordinal++
		if w.manager.HasBeenProcessed(w.moduleID, ident.ForStandalone(parent.ID(), ordinal)) {
			return nil
		}
		sb, err := builder.NewStandalone(parent.ID(), ordinal)
		if err != nil {
			return err
		}

		first, last := stmts[0], stmts[len(stmts)-1]
		startLine, _ := extract.Lines(first)
		_, endLine := extract.Lines(last)
		sb.SetLines(startLine, endLine)
		sb.SetCodeContent(string(w.source[first.StartByte():last.EndByte()]))
		sb.SetComments(runComments(stmts, w.source))
		sb.SetVariableAssignments(assignedNames(stmts, w.source))
		parent.AddChildBuilder(sb)
		return nil
	}

	for i := uint(0); i < body.NamedChildCount(); i++ {
		node := body.NamedChild(i)
		if docstring != nil && node.Id() == docstring.Id() {
			continue
		}

		switch node.Kind() {
		case "import_statement":
			if err := flush(); err != nil {
				return err
			}
			if isModule {
				mb.AddImport(extract.ImportStatement(node, w.source, w.classifier))
			}

		case "import_from_statement", "future_import_statement":
			if err := flush(); err != nil {
				return err
			}
			if isModule {
				mb.AddImport(extract.ImportFromStatement(node, w.source, w.classifier))
			}

		case "class_definition":
			if err := flush(); err != nil {
				return err
			}
			if err := w.visitClass(node, nil, parent); err != nil {
				return err
			}

		case "function_definition":
			if err := flush(); err != nil {
				return err
			}
			if err := w.visitFunction(node, nil, parent, inClass); err != nil {
				return err
			}

		case "decorated_definition":
			if err := flush(); err != nil {
				return err
			}
			def := node.ChildByFieldName("definition")
			if def == nil {
				continue
			}
			switch def.Kind() {
			case "class_definition":
				if err := w.visitClass(def, node, parent); err != nil {
					return err
				}
			case "function_definition":
				if err := w.visitFunction(def, node, parent, inClass); err != nil {
					return err
				}
			}

		case "comment":
			if len(run) > 0 {
				run = append(run, node)
			}

		default:
			run = append(run, node)
		}
	}
	return flush()
}

func (w *Walker) visitClass(def, decorated *sitter.Node, parent attachTarget) error {
	name := extract.Text(def.ChildByFieldName("name"), w.source)
	if name != "" && w.manager.HasBeenProcessed(w.moduleID, ident.ForClass(parent.ID(), name)) {
		return nil
	}

	cb, err := builder.NewClass(parent.ID(), name)
	if err != nil {
		return err
	}

	span := def
	if decorated != nil {
		span = decorated
	}
	startLine, endLine := extract.Lines(span)
	cb.SetLines(startLine, endLine)
	cb.SetCodeContent(extract.Text(span, w.source))
	cb.SetDecorators(extract.Decorators(decorated, w.source))

	superclasses := def.ChildByFieldName("superclasses")
	cb.SetBaseClasses(extract.Bases(superclasses, w.source))
	keywords, err := extract.Keywords(superclasses, w.source)
	if err != nil {
		return errors.AddContext(err, errors.CtxBlock, cb.ID())
	}
	cb.SetKeywords(keywords)

	body := def.ChildByFieldName("body")
	if ds := extract.Docstring(body, w.source); ds != nil {
		cb.SetDocstring(*ds)
	}
	cb.SetComments(extract.OwnedComments(body, w.source))

	if body != nil {
		if err := w.walkBody(body, cb, true); err != nil {
			return err
		}
	}
	parent.AddChildBuilder(cb)
	return nil
}

func (w *Walker) visitFunction(def, decorated *sitter.Node, parent attachTarget, inClass bool) error {
	name := extract.Text(def.ChildByFieldName("name"), w.source)
	if name != "" && w.manager.HasBeenProcessed(w.moduleID, ident.ForFunction(parent.ID(), name)) {
		return nil
	}

	fb, err := builder.NewFunction(parent.ID(), name)
	if err != nil {
		return err
	}

	span := def
	if decorated != nil {
		span = decorated
	}
	startLine, endLine := extract.Lines(span)
	fb.SetLines(startLine, endLine)
	fb.SetCodeContent(extract.Text(span, w.source))
	fb.SetDecorators(extract.Decorators(decorated, w.source))
	fb.SetParameters(extract.Parameters(def.ChildByFieldName("parameters"), w.source))
	if rendered := extract.RenderAnnotation(def.ChildByFieldName("return_type"), w.source); rendered != "" {
		fb.SetReturns(rendered)
	}
	fb.SetAsync(extract.HasChildOfKind(def, "async"))
	fb.SetIsMethod(inClass)

	body := def.ChildByFieldName("body")
	if ds := extract.Docstring(body, w.source); ds != nil {
		fb.SetDocstring(*ds)
	}
	fb.SetComments(extract.OwnedComments(body, w.source))

	if body != nil {
		// A function nested under a method still has a class ancestor.
		if err := w.walkBody(body, fb, inClass); err != nil {
			return err
		}
	}
	parent.AddChildBuilder(fb)
	return nil
}

// docstringStatement returns the expression statement holding the body's
// docstring, or nil.
func docstringStatement(body *sitter.Node) *sitter.Node {
	if body == nil {
		return nil
	}
	for i := uint(0); i < body.NamedChildCount(); i++ {
		child := body.NamedChild(i)
		if child.Kind() == "comment" {
			continue
		}
		if child.Kind() == "expression_statement" {
			if str := child.NamedChild(0); str != nil && str.Kind() == "string" {
				return child
			}
		}
		return nil
	}
	return nil
}

// trimTrailingComments drops comments that trail a run's last statement,
// except inline comments on the statement's own line, which stay with it.
func trimTrailingComments(run []*sitter.Node) []*sitter.Node {
	last := -1
	for i, stmt := range run {
		if stmt.Kind() != "comment" {
			last = i
		}
	}
	if last < 0 {
		return nil
	}

	lastRow := run[last].EndPosition().Row
	keep := last
	for i := last + 1; i < len(run); i++ {
		if run[i].StartPosition().Row != lastRow {
			break
		}
		keep = i
	}
	return run[:keep+1]
}

// runComments classifies the comment lines captured inside a standalone run.
func runComments(stmts []*sitter.Node, source []byte) []model.Comment {
	var comments []model.Comment
	for _, stmt := range stmts {
		if stmt.Kind() != "comment" {
			continue
		}
		if c := extract.ImportantComment(extract.Text(stmt, source)); c != nil {
			comments = append(comments, *c)
		}
	}
	return comments
}

// assignedNames collects the simple variable names assigned by a run's
// statements, in source order without duplicates. Attribute and subscript
// targets are not variables and are skipped.
func assignedNames(stmts []*sitter.Node, source []byte) []string {
	var names []string
	seen := map[string]bool{}

	record := func(target *sitter.Node) {
		if target == nil {
			return
		}
		switch target.Kind() {
		case "identifier":
			name := extract.Text(target, source)
			if !seen[name] {
				seen[name] = true
				names = append(names, name)
			}
		case "pattern_list", "tuple_pattern":
			for i := uint(0); i < target.NamedChildCount(); i++ {
				inner := target.NamedChild(i)
				if inner.Kind() == "identifier" {
					name := extract.Text(inner, source)
					if !seen[name] {
						seen[name] = true
						names = append(names, name)
					}
				}
			}
		}
	}

	for _, stmt := range stmts {
		if stmt.Kind() != "expression_statement" {
			continue
		}
		for i := uint(0); i < stmt.NamedChildCount(); i++ {
			expr := stmt.NamedChild(i)
			switch expr.Kind() {
			case "assignment", "augmented_assignment":
				record(expr.ChildByFieldName("left"))
			}
		}
	}
	return names
}
