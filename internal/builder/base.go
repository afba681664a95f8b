// Package builder provides mutable accumulators that collect a block's
// attributes and finalize into immutable models. Builders are single-use:
// Build may be called once, and children are finalized recursively in
// source order before their parent.
package builder

import (
	"outline/internal/core/errors"
	"outline/internal/model"
)

// BlockBuilder is the common protocol of all block builders.
type BlockBuilder interface {
	ID() string
	Kind() model.BlockType
	CodeContent() string
	SetDependencies(deps []model.Dependency)
	AddChildBuilder(child BlockBuilder)
	Build() (model.Block, error)
}

type base struct {
	id       string
	parentID string
	kind     model.BlockType

	startLine   int
	endLine     int
	codeContent string
	comments    []model.Comment
	deps        []model.Dependency
	summary     *string

	pendingChildren []BlockBuilder
	builtChildren   []model.Block
	built           bool
}

func newBase(id, parentID string, kind model.BlockType) base {
	return base{id: id, parentID: parentID, kind: kind, startLine: 1}
}

func (b *base) ID() string            { return b.id }
func (b *base) Kind() model.BlockType { return b.kind }
func (b *base) CodeContent() string   { return b.codeContent }

func (b *base) SetLines(start, end int) {
	b.startLine = start
	b.endLine = end
}

func (b *base) SetCodeContent(content string) {
	b.codeContent = content
}

func (b *base) AddComment(comment model.Comment) {
	b.comments = append(b.comments, comment)
}

func (b *base) SetComments(comments []model.Comment) {
	b.comments = comments
}

func (b *base) SetDependencies(deps []model.Dependency) {
	b.deps = deps
}

func (b *base) SetSummary(summary string) {
	b.summary = &summary
}

// AddChildBuilder registers a still-pending child; Build finalizes pending
// children in registration (source) order.
func (b *base) AddChildBuilder(child BlockBuilder) {
	b.pendingChildren = append(b.pendingChildren, child)
}

// AddChild registers an already-finalized child model.
func (b *base) AddChild(child model.Block) {
	b.builtChildren = append(b.builtChildren, child)
}

// buildCommon validates shared invariants, finalizes pending children, and
// snapshots the base attributes. A non-module block without a parent ID is a
// hierarchy corruption and fails the build.
func (b *base) buildCommon() (model.BaseBlock, error) {
	if b.built {
		return model.BaseBlock{}, errors.Newf(errors.CodeConflict,
			"builder for %s already built", b.id)
	}
	if b.kind != model.BlockTypeModule && b.parentID == "" {
		return model.BaseBlock{}, errors.Newf(errors.CodeValidationError,
			"parent id is required for %s block %s", b.kind, b.id)
	}
	b.built = true

	children := b.builtChildren
	for _, pending := range b.pendingChildren {
		child, err := pending.Build()
		if err != nil {
			return model.BaseBlock{}, err
		}
		children = append(children, child)
	}

	common := model.BaseBlock{
		ID:                b.id,
		BlockType:         b.kind,
		StartLine:         b.startLine,
		EndLine:           b.endLine,
		CodeContent:       b.codeContent,
		ImportantComments: b.comments,
		Dependencies:      b.deps,
		Summary:           b.summary,
		Children:          children,
	}
	if b.kind != model.BlockTypeModule {
		parentID := b.parentID
		common.ParentID = &parentID
	}
	return common, nil
}
