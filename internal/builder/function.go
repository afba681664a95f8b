package builder

import (
	"outline/internal/core/errors"
	"outline/internal/ident"
	"outline/internal/model"
)

// FunctionBuilder accumulates a function or method block.
type FunctionBuilder struct {
	base

	functionName string
	docstring    *string
	decorators   []model.Decorator
	parameters   *model.ParameterList
	returns      *string
	isMethod     bool
	methodType   *model.MethodType
	isAsync      bool
}

func NewFunction(parentID, functionName string) (*FunctionBuilder, error) {
	if functionName == "" {
		return nil, errors.New(errors.CodeValidationError, "function name must not be empty")
	}
	if parentID == "" {
		return nil, errors.Newf(errors.CodeValidationError,
			"parent id is required for function %s", functionName)
	}
	return &FunctionBuilder{
		base:         newBase(ident.ForFunction(parentID, functionName), parentID, model.BlockTypeFunction),
		functionName: functionName,
	}, nil
}

func (b *FunctionBuilder) FunctionName() string { return b.functionName }

func (b *FunctionBuilder) SetDocstring(docstring string) {
	b.docstring = &docstring
}

func (b *FunctionBuilder) SetDecorators(decorators []model.Decorator) {
	b.decorators = decorators
}

func (b *FunctionBuilder) SetParameters(params *model.ParameterList) {
	b.parameters = params
}

func (b *FunctionBuilder) SetReturns(returns string) {
	b.returns = &returns
}

func (b *FunctionBuilder) SetIsMethod(isMethod bool) { b.isMethod = isMethod }

// SetMethodType records an explicit role classification. Roles are carried
// through, never inferred.
func (b *FunctionBuilder) SetMethodType(methodType model.MethodType) {
	b.methodType = &methodType
}

func (b *FunctionBuilder) SetAsync(isAsync bool) { b.isAsync = isAsync }

func (b *FunctionBuilder) Build() (model.Block, error) {
	common, err := b.buildCommon()
	if err != nil {
		return nil, err
	}
	return &model.Function{
		BaseBlock:    common,
		FunctionName: b.functionName,
		Docstring:    b.docstring,
		Decorators:   b.decorators,
		Parameters:   b.parameters,
		Returns:      b.returns,
		IsMethod:     b.isMethod,
		MethodType:   b.methodType,
		IsAsync:      b.isAsync,
	}, nil
}
