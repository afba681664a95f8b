package builder

import (
	"outline/internal/core/errors"
	"outline/internal/ident"
	"outline/internal/model"
)

// ClassBuilder accumulates a class block.
type ClassBuilder struct {
	base

	className  string
	classType  model.ClassType
	docstring  *string
	decorators []model.Decorator
	bases      []string
	keywords   []model.ClassKeyword
	attributes []map[string]any
}

func NewClass(parentID, className string) (*ClassBuilder, error) {
	if className == "" {
		return nil, errors.New(errors.CodeValidationError, "class name must not be empty")
	}
	if parentID == "" {
		return nil, errors.Newf(errors.CodeValidationError,
			"parent id is required for class %s", className)
	}
	return &ClassBuilder{
		base:      newBase(ident.ForClass(parentID, className), parentID, model.BlockTypeClass),
		className: className,
		classType: model.ClassStandard,
	}, nil
}

func (b *ClassBuilder) ClassName() string { return b.className }

func (b *ClassBuilder) SetClassType(t model.ClassType) { b.classType = t }

func (b *ClassBuilder) SetDocstring(docstring string) {
	b.docstring = &docstring
}

func (b *ClassBuilder) SetDecorators(decorators []model.Decorator) {
	b.decorators = decorators
}

func (b *ClassBuilder) SetBaseClasses(bases []string) { b.bases = bases }

func (b *ClassBuilder) SetKeywords(keywords []model.ClassKeyword) {
	b.keywords = keywords
}

func (b *ClassBuilder) SetAttributes(attributes []map[string]any) {
	b.attributes = attributes
}

func (b *ClassBuilder) Build() (model.Block, error) {
	common, err := b.buildCommon()
	if err != nil {
		return nil, err
	}
	return &model.Class{
		BaseBlock:   common,
		ClassName:   b.className,
		ClassType:   b.classType,
		Docstring:   b.docstring,
		Decorators:  b.decorators,
		BaseClasses: b.bases,
		Keywords:    b.keywords,
		Attributes:  b.attributes,
	}, nil
}
