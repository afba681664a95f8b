package builder

import (
	"outline/internal/ident"
	"outline/internal/model"
)

// ModuleBuilder accumulates a file's root block. Imports are recorded both
// for the module's own dependency list and for the post-pass that infers
// child-block dependencies.
type ModuleBuilder struct {
	base

	filePath  string
	docstring *string
	header    []string
	footer    []string
	imports   []model.Import
}

func NewModule(filePath string) *ModuleBuilder {
	return &ModuleBuilder{
		base:     newBase(ident.ForModule(filePath), "", model.BlockTypeModule),
		filePath: filePath,
	}
}

func (b *ModuleBuilder) FilePath() string { return b.filePath }

func (b *ModuleBuilder) SetDocstring(docstring string) {
	b.docstring = &docstring
}

func (b *ModuleBuilder) SetHeader(lines []string) { b.header = lines }
func (b *ModuleBuilder) SetFooter(lines []string) { b.footer = lines }

func (b *ModuleBuilder) AddImport(imp model.Import) {
	b.imports = append(b.imports, imp)
}

// Imports returns the imports recorded so far, in source order.
func (b *ModuleBuilder) Imports() []model.Import { return b.imports }

// ChildBuilders exposes the pending direct children for the dependency
// inference pass that runs before Build.
func (b *ModuleBuilder) ChildBuilders() []BlockBuilder { return b.pendingChildren }

func (b *ModuleBuilder) Build() (model.Block, error) {
	deps := b.deps
	for _, imp := range b.imports {
		deps = append(deps, imp)
	}
	b.deps = deps

	common, err := b.buildCommon()
	if err != nil {
		return nil, err
	}
	return &model.Module{
		BaseBlock: common,
		FilePath:  b.filePath,
		Docstring: b.docstring,
		Header:    b.header,
		Footer:    b.footer,
	}, nil
}
