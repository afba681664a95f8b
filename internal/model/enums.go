package model

// BlockType identifies the structural kind of a code block.
type BlockType string

const (
	BlockTypeModule     BlockType = "MODULE"
	BlockTypeClass      BlockType = "CLASS"
	BlockTypeFunction   BlockType = "FUNCTION"
	BlockTypeStandalone BlockType = "STANDALONE_BLOCK"
	BlockTypeImport     BlockType = "IMPORT_BLOCK"
	BlockTypeParseError BlockType = "PARSE_ERROR"
)

func (b BlockType) String() string { return string(b) }

// CommentType tags a review-relevant comment. A comment matching none of
// these tags is not recorded.
type CommentType string

const (
	CommentTODO       CommentType = "TODO"
	CommentFIXME      CommentType = "FIXME"
	CommentNOTE       CommentType = "NOTE"
	CommentHACK       CommentType = "HACK"
	CommentXXX        CommentType = "XXX"
	CommentREVIEW     CommentType = "REVIEW"
	CommentOPTIMIZE   CommentType = "OPTIMIZE"
	CommentCHANGED    CommentType = "CHANGED"
	CommentQUESTION   CommentType = "QUESTION"
	CommentQ          CommentType = "Q"
	CommentDeprecated CommentType = "@deprecated"
	CommentNOSONAR    CommentType = "NOSONAR"
	CommentTODOFIXME  CommentType = "TODO-FIXME"
)

func (c CommentType) String() string { return string(c) }

// ImportType classifies where an imported module comes from.
type ImportType string

const (
	ImportStandardLibrary ImportType = "STANDARD_LIBRARY"
	ImportLocal           ImportType = "LOCAL"
	ImportThirdParty      ImportType = "THIRD_PARTY"
)

func (i ImportType) String() string { return string(i) }

// MethodType is an optional role classification for functions. It is carried
// on the wire but never inferred automatically.
type MethodType string

const (
	MethodInstance           MethodType = "INSTANCE"
	MethodClass              MethodType = "CLASS"
	MethodStatic             MethodType = "STATIC"
	MethodAsyncInstance      MethodType = "ASYNC_INSTANCE"
	MethodAsyncClass         MethodType = "ASYNC_CLASS"
	MethodAsyncStatic        MethodType = "ASYNC_STATIC"
	MethodAbstract           MethodType = "ABSTRACT"
	MethodMagic              MethodType = "MAGIC"
	MethodStandaloneFunction MethodType = "STANDALONE_FUNCTION"
)

// ClassType is an optional role classification for classes. Defaults to
// STANDARD; the richer roles exist for documentation tooling and are never
// inferred automatically.
type ClassType string

const (
	ClassStandard  ClassType = "STANDARD"
	ClassAbstract  ClassType = "ABSTRACT"
	ClassInterface ClassType = "INTERFACE"
	ClassMixin     ClassType = "MIXIN"
	ClassSingleton ClassType = "SINGLETON"
	ClassFactory   ClassType = "FACTORY"
	ClassBuilder   ClassType = "BUILDER"
	ClassPrototype ClassType = "PROTOTYPE"
	ClassAdapter   ClassType = "ADAPTER"
	ClassDecorator ClassType = "DECORATOR"
	ClassFacade    ClassType = "FACADE"
	ClassProxy     ClassType = "PROXY"
	ClassComposite ClassType = "COMPOSITE"
	ClassCommand   ClassType = "COMMAND"
	ClassObserver  ClassType = "OBSERVER"
	ClassStrategy  ClassType = "STRATEGY"
	ClassState     ClassType = "STATE"
	ClassTemplate  ClassType = "TEMPLATE"
	ClassVisitor   ClassType = "VISITOR"
)

// CommentTypes is the closed vocabulary scanned by the comment extractor.
// The first substring match in this order wins, so a "TODO-FIXME" comment
// classifies as TODO.
var CommentTypes = []CommentType{
	CommentTODO,
	CommentFIXME,
	CommentNOTE,
	CommentHACK,
	CommentXXX,
	CommentREVIEW,
	CommentOPTIMIZE,
	CommentCHANGED,
	CommentQUESTION,
	CommentQ,
	CommentDeprecated,
	CommentNOSONAR,
	CommentTODOFIXME,
}
