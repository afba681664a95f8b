package builder

import (
	"outline/internal/core/errors"
	"outline/internal/ident"
	"outline/internal/model"
)

// StandaloneBuilder accumulates a run of top-level statements that belong to
// no class or function. Ordinals number the runs within their parent.
type StandaloneBuilder struct {
	base

	assignments []string
}

func NewStandalone(parentID string, ordinal int) (*StandaloneBuilder, error) {
	if parentID == "" {
		return nil, errors.New(errors.CodeValidationError,
			"parent id is required for a standalone block")
	}
	return &StandaloneBuilder{
		base: newBase(ident.ForStandalone(parentID, ordinal), parentID, model.BlockTypeStandalone),
	}, nil
}

func (b *StandaloneBuilder) SetVariableAssignments(names []string) {
	b.assignments = names
}

// Assignments returns the variable names assigned in this run, used by the
// dependency inference pass.
func (b *StandaloneBuilder) Assignments() []string { return b.assignments }

func (b *StandaloneBuilder) Build() (model.Block, error) {
	common, err := b.buildCommon()
	if err != nil {
		return nil, err
	}
	return &model.Standalone{
		BaseBlock:           common,
		VariableAssignments: b.assignments,
	}, nil
}
