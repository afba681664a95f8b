// Package model defines the serializable hierarchy produced by a parse run.
// Every model is produced exactly once by its builder and never mutated
// afterwards; parents own their children, and parent_id is a lookup key, not
// an object reference.
package model

// ImportName is one imported name with its optional alias.
type ImportName struct {
	Name   string  `json:"name"`
	AsName *string `json:"as_name"`
}

// Import models one import statement. ImportedFrom is nil for plain
// `import x` forms.
type Import struct {
	ImportNames  []ImportName `json:"import_names"`
	ImportedFrom *string      `json:"imported_from"`
	ImportType   ImportType   `json:"import_module_type"`
}

// Comment is a single important comment and its classification.
type Comment struct {
	Content     string      `json:"content"`
	CommentType CommentType `json:"comment_type"`
}

// Decorator models a class or function decorator. Args is nil for bare-name
// decorators; for call decorators it holds each argument's source text.
type Decorator struct {
	Name string   `json:"decorator_name"`
	Args []string `json:"decorator_args"`
}

// ClassKeyword is a metaclass-style keyword argument in a class header.
type ClassKeyword struct {
	Name     string `json:"keyword_name"`
	ArgValue string `json:"arg_value"`
}

// Parameter is a single function parameter rendered back to source text.
type Parameter struct {
	Content string `json:"content"`
}

// ParameterList groups a function's parameters into the five Python slots.
type ParameterList struct {
	Params        []Parameter `json:"params"`
	StarArg       *Parameter  `json:"star_arg"`
	KwonlyParams  []Parameter `json:"kwonly_params"`
	StarKwarg     *Parameter  `json:"star_kwarg"`
	PosonlyParams []Parameter `json:"posonly_params"`
}

// Dependency is either an Import the block relies on or a BlockRef naming a
// sibling block. The wire form is a mixed array of import objects and ID
// strings.
type Dependency interface {
	dependency()
}

// BlockRef is a dependency on another block, by identity string.
type BlockRef string

func (BlockRef) dependency() {}
func (Import) dependency()   {}

// Block is implemented by every finalized block model.
type Block interface {
	BlockID() string
	Kind() BlockType
	Common() *BaseBlock
}

// BaseBlock carries the attributes shared by every block model. Line numbers
// are 1-based and inclusive. Children are in source order.
type BaseBlock struct {
	ID                string       `json:"id"`
	ParentID          *string      `json:"parent_id"`
	BlockType         BlockType    `json:"block_type"`
	StartLine         int          `json:"block_start_line_number"`
	EndLine           int          `json:"block_end_line_number"`
	CodeContent       string       `json:"code_content"`
	ImportantComments []Comment    `json:"important_comments"`
	Dependencies      []Dependency `json:"dependencies"`
	Summary           *string      `json:"summary"`
	Children          []Block      `json:"children"`
}

func (b *BaseBlock) BlockID() string    { return b.ID }
func (b *BaseBlock) Kind() BlockType    { return b.BlockType }
func (b *BaseBlock) Common() *BaseBlock { return b }

// Module is the root block of a parsed file.
type Module struct {
	BaseBlock
	FilePath  string   `json:"file_path"`
	Docstring *string  `json:"docstring"`
	Header    []string `json:"header"`
	Footer    []string `json:"footer"`
}

// Class models a class definition.
type Class struct {
	BaseBlock
	ClassName   string           `json:"class_name"`
	Decorators  []Decorator      `json:"decorators"`
	BaseClasses []string         `json:"base_classes"`
	ClassType   ClassType        `json:"class_type"`
	Docstring   *string          `json:"docstring"`
	Attributes  []map[string]any `json:"attributes"`
	Keywords    []ClassKeyword   `json:"keywords"`
}

// Function models a function or method definition. IsMethod is true iff any
// ancestor block up to the module root is a class.
type Function struct {
	BaseBlock
	FunctionName string         `json:"function_name"`
	Docstring    *string        `json:"docstring"`
	Decorators   []Decorator    `json:"decorators"`
	Parameters   *ParameterList `json:"parameters"`
	Returns      *string        `json:"returns"`
	IsMethod     bool           `json:"is_method"`
	MethodType   *MethodType    `json:"method_type"`
	IsAsync      bool           `json:"is_async"`
}

// Standalone models a maximal contiguous run of body statements that are
// neither imports nor class/function definitions.
type Standalone struct {
	BaseBlock
	VariableAssignments []string `json:"variable_assignments"`
}
