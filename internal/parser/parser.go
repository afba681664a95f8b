package parser

import (
	"time"

	sitter "github.com/tree-sitter/go-tree-sitter"

	"outline/internal/core/errors"
	"outline/internal/extract"
	"outline/internal/ident"
	"outline/internal/model"
	"outline/internal/shared/observability"
	"outline/internal/visitor"
)

// Parser parses source files of one language into module models. It owns a
// tree-sitter parser and a visitor Manager, so it is not safe for concurrent
// use; run one Parser per worker.
type Parser struct {
	grammar Grammar
	inner   *sitter.Parser
	manager *visitor.Manager

	classifier *extract.ImportClassifier
}

// New builds a Parser for the given grammar. localPrefixes are the import
// roots classified as project-local.
func New(grammar Grammar, localPrefixes []string) (*Parser, error) {
	inner := sitter.NewParser()
	if err := inner.SetLanguage(grammar.Language); err != nil {
		return nil, errors.Wrap(err, errors.CodeInternal,
			"grammar rejected by tree-sitter runtime")
	}
	return &Parser{
		grammar:    grammar,
		inner:      inner,
		manager:    visitor.NewManager(),
		classifier: extract.NewImportClassifier(localPrefixes),
	}, nil
}

// NewPython builds a Parser for Python sources.
func NewPython(localPrefixes []string) (*Parser, error) {
	return New(grammars[0], localPrefixes)
}

// Parse turns one file's content into its module model. A file that does not
// parse cleanly is rejected whole with a SYNTAX_ERROR; there are no partial
// hierarchies.
func (p *Parser) Parse(path string, content []byte) (*model.Module, error) {
	started := time.Now()

	tree := p.inner.Parse(content, nil)
	if tree == nil {
		return nil, errors.AddContext(
			errors.New(errors.CodeInternal, "tree-sitter returned no tree"),
			errors.CtxPath, path)
	}
	defer tree.Close()

	root := tree.RootNode()
	if root.HasError() {
		observability.ParseErrors.Inc()
		err := errors.Newf(errors.CodeSyntaxError, "syntax error in %s", path)
		err = errors.AddContext(err, errors.CtxPath, path)
		if line := firstErrorLine(root); line > 0 {
			err = errors.AddContext(err, errors.CtxLine, line)
		}
		return nil, err
	}

	// A re-parse of a changed file starts from a clean scope.
	p.manager.ResetScope(ident.ForModule(path))

	walker := visitor.NewWalker(content, p.manager, p.classifier)
	mb, err := walker.WalkModule(root, path)
	if err != nil {
		return nil, errors.AddContext(err, errors.CtxPath, path)
	}
	block, err := mb.Build()
	if err != nil {
		return nil, errors.AddContext(err, errors.CtxPath, path)
	}
	module := block.(*model.Module)

	countBlocks(module)
	observability.ParsingDuration.WithLabelValues(p.grammar.Name).
		Observe(time.Since(started).Seconds())
	observability.FilesProcessed.Inc()
	return module, nil
}

// firstErrorLine locates the first error or missing node, descending only
// into subtrees that carry an error.
func firstErrorLine(node *sitter.Node) int {
	if node.IsError() || node.IsMissing() {
		return int(node.StartPosition().Row) + 1
	}
	for i := uint(0); i < node.ChildCount(); i++ {
		child := node.Child(i)
		if !child.HasError() {
			continue
		}
		if line := firstErrorLine(child); line > 0 {
			return line
		}
	}
	return 0
}

func countBlocks(block model.Block) {
	observability.BlocksExtracted.WithLabelValues(block.Kind().String()).Inc()
	for _, child := range block.Common().Children {
		countBlocks(child)
	}
}
