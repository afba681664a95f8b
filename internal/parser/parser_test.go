package parser

import (
	"strings"
	"testing"

	"outline/internal/core/errors"
	"outline/internal/ident"
	"outline/internal/model"
)

func parsePython(t *testing.T, path, source string) *model.Module {
	t.Helper()
	p, err := NewPython(nil)
	if err != nil {
		t.Fatalf("NewPython: %v", err)
	}
	module, err := p.Parse(path, []byte(source))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	return module
}

func TestParseModuleRoot(t *testing.T) {
	source := `"""Order tools."""
import os


class Order:
    def total(self):
        return 0


def checkout():
    return Order()
`
	module := parsePython(t, "shop/order.py", source)

	if module.BlockType != model.BlockTypeModule {
		t.Errorf("block type = %s", module.BlockType)
	}
	if module.ParentID != nil {
		t.Errorf("module ParentID = %q, want nil", *module.ParentID)
	}
	if module.ID != ident.ForModule("shop/order.py") {
		t.Errorf("module ID = %q", module.ID)
	}
	if module.FilePath != "shop/order.py" {
		t.Errorf("FilePath = %q", module.FilePath)
	}
	if module.Docstring == nil || *module.Docstring != "Order tools." {
		t.Errorf("Docstring = %v", module.Docstring)
	}
	if module.CodeContent != source {
		t.Error("module CodeContent is not the full source")
	}
}

func TestChildrenInSourceOrderWithMethodFlag(t *testing.T) {
	source := `class A:
    def m(self):
        pass


def f():
    pass
`
	module := parsePython(t, "m.py", source)

	if len(module.Children) != 2 {
		t.Fatalf("children = %d, want 2", len(module.Children))
	}

	class, ok := module.Children[0].(*model.Class)
	if !ok || class.ClassName != "A" {
		t.Fatalf("children[0] = %T %v", module.Children[0], module.Children[0])
	}
	fn, ok := module.Children[1].(*model.Function)
	if !ok || fn.FunctionName != "f" {
		t.Fatalf("children[1] = %T %v", module.Children[1], module.Children[1])
	}
	if fn.IsMethod {
		t.Error("module-level f flagged as method")
	}

	if len(class.Children) != 1 {
		t.Fatalf("class children = %d, want 1", len(class.Children))
	}
	m, ok := class.Children[0].(*model.Function)
	if !ok || m.FunctionName != "m" {
		t.Fatalf("class child = %T %v", class.Children[0], class.Children[0])
	}
	if !m.IsMethod {
		t.Error("m not flagged as method")
	}
	if m.MethodType != nil {
		t.Errorf("MethodType = %v, want nil (roles are never inferred)", *m.MethodType)
	}
	if m.ParentID == nil || *m.ParentID != class.ID {
		t.Errorf("m ParentID = %v, want %q", m.ParentID, class.ID)
	}
}

func TestEmptyModule(t *testing.T) {
	module := parsePython(t, "empty.py", "")

	if len(module.Children) != 0 {
		t.Errorf("children = %v, want none", module.Children)
	}
	if module.Header != nil || module.Footer != nil {
		t.Errorf("header/footer = %v/%v, want nil", module.Header, module.Footer)
	}
}

func TestLineNumbersAreOneBasedInclusive(t *testing.T) {
	source := "x = 1\n\n\ndef f():\n    pass\n"
	module := parsePython(t, "m.py", source)

	if module.StartLine != 1 {
		t.Errorf("module StartLine = %d, want 1", module.StartLine)
	}
	if len(module.Children) != 2 {
		t.Fatalf("children = %d, want 2", len(module.Children))
	}

	run := module.Children[0]
	if run.Common().StartLine != 1 || run.Common().EndLine != 1 {
		t.Errorf("run span = %d-%d, want 1-1",
			run.Common().StartLine, run.Common().EndLine)
	}
	fn := module.Children[1]
	if fn.Common().StartLine != 4 || fn.Common().EndLine != 5 {
		t.Errorf("function span = %d-%d, want 4-5",
			fn.Common().StartLine, fn.Common().EndLine)
	}
}

func TestSyntaxErrorRejectsWholeFile(t *testing.T) {
	p, err := NewPython(nil)
	if err != nil {
		t.Fatalf("NewPython: %v", err)
	}
	_, err = p.Parse("broken.py", []byte("def f(:\n    pass\n"))
	if !errors.IsCode(err, errors.CodeSyntaxError) {
		t.Fatalf("err = %v, want SYNTAX_ERROR", err)
	}
}

func TestDuplicateSiblingDefinitionSkipped(t *testing.T) {
	source := `def f():
    return 1


def f():
    return 2
`
	module := parsePython(t, "dup.py", source)

	if len(module.Children) != 1 {
		t.Fatalf("children = %d, want the first definition only", len(module.Children))
	}
	fn := module.Children[0].(*model.Function)
	if !strings.Contains(fn.CodeContent, "return 1") {
		t.Errorf("kept the wrong definition: %q", fn.CodeContent)
	}
}

func TestImportsRecordedAndClassified(t *testing.T) {
	source := `import os
import numpy as np
from .util import helper
from collections import OrderedDict
`
	module := parsePython(t, "imports.py", source)

	var imports []model.Import
	for _, dep := range module.Dependencies {
		if imp, ok := dep.(model.Import); ok {
			imports = append(imports, imp)
		}
	}
	if len(imports) != 4 {
		t.Fatalf("imports = %d, want 4", len(imports))
	}

	if imports[0].ImportType != model.ImportStandardLibrary {
		t.Errorf("os classified as %s", imports[0].ImportType)
	}
	if imports[1].ImportType != model.ImportThirdParty {
		t.Errorf("numpy classified as %s", imports[1].ImportType)
	}
	if imports[1].ImportNames[0].AsName == nil || *imports[1].ImportNames[0].AsName != "np" {
		t.Errorf("numpy alias = %v", imports[1].ImportNames[0].AsName)
	}
	if imports[2].ImportType != model.ImportLocal {
		t.Errorf("relative import classified as %s", imports[2].ImportType)
	}
	if imports[3].ImportedFrom == nil || *imports[3].ImportedFrom != "collections" {
		t.Errorf("ImportedFrom = %v", imports[3].ImportedFrom)
	}

	if len(module.Children) != 0 {
		t.Errorf("imports produced children: %v", module.Children)
	}
}

func TestStandaloneRunsAndAssignments(t *testing.T) {
	source := `x = 1
y, z = 2, 3


def f():
    pass


total = x + y
`
	module := parsePython(t, "m.py", source)

	if len(module.Children) != 3 {
		t.Fatalf("children = %d, want run, f, run", len(module.Children))
	}

	first, ok := module.Children[0].(*model.Standalone)
	if !ok {
		t.Fatalf("children[0] = %T", module.Children[0])
	}
	wantVars := []string{"x", "y", "z"}
	if len(first.VariableAssignments) != len(wantVars) {
		t.Fatalf("assignments = %v, want %v", first.VariableAssignments, wantVars)
	}
	for i, name := range wantVars {
		if first.VariableAssignments[i] != name {
			t.Errorf("assignments[%d] = %q, want %q", i, first.VariableAssignments[i], name)
		}
	}

	second, ok := module.Children[2].(*model.Standalone)
	if !ok {
		t.Fatalf("children[2] = %T", module.Children[2])
	}
	if second.ID != ident.ForStandalone(module.ID, 2) {
		t.Errorf("second run ID = %q", second.ID)
	}

	// The second run references x and y, assigned by the first run.
	found := false
	for _, dep := range second.Dependencies {
		if ref, ok := dep.(model.BlockRef); ok && string(ref) == first.ID {
			found = true
		}
	}
	if !found {
		t.Errorf("second run deps = %v, want ref to first run", second.Dependencies)
	}
}

func TestDecoratedAsyncMethod(t *testing.T) {
	source := `class Service:
    @staticmethod
    async def ping(host: str) -> bool:
        """Check a host."""
        return True
`
	module := parsePython(t, "svc.py", source)

	class := module.Children[0].(*model.Class)
	fn := class.Children[0].(*model.Function)

	if !fn.IsAsync {
		t.Error("IsAsync = false")
	}
	if len(fn.Decorators) != 1 || fn.Decorators[0].Name != "staticmethod" {
		t.Errorf("Decorators = %v", fn.Decorators)
	}
	if fn.Returns == nil || *fn.Returns != "bool" {
		t.Errorf("Returns = %v", fn.Returns)
	}
	if fn.Docstring == nil || *fn.Docstring != "Check a host." {
		t.Errorf("Docstring = %v", fn.Docstring)
	}
	if fn.Parameters == nil || len(fn.Parameters.Params) != 1 ||
		fn.Parameters.Params[0].Content != "host: str" {
		t.Errorf("Parameters = %v", fn.Parameters)
	}
	if !strings.HasPrefix(strings.TrimSpace(fn.CodeContent), "@staticmethod") {
		t.Errorf("decorator missing from content: %q", fn.CodeContent)
	}
	if fn.StartLine != 2 {
		t.Errorf("StartLine = %d, want the decorator line", fn.StartLine)
	}
}

func TestClassHeaderExtraction(t *testing.T) {
	source := `import abc


class Repo(abc.ABC, Base, metaclass=Meta):
    """Storage port."""
`
	module := parsePython(t, "repo.py", source)

	class := module.Children[0].(*model.Class)
	if len(class.BaseClasses) != 2 || class.BaseClasses[0] != "abc.ABC" || class.BaseClasses[1] != "Base" {
		t.Errorf("BaseClasses = %v", class.BaseClasses)
	}
	if len(class.Keywords) != 1 || class.Keywords[0].Name != "metaclass" || class.Keywords[0].ArgValue != "Meta" {
		t.Errorf("Keywords = %v", class.Keywords)
	}
	if class.ClassType != model.ClassStandard {
		t.Errorf("ClassType = %s, want STANDARD (roles are never inferred)", class.ClassType)
	}
	if class.Docstring == nil || *class.Docstring != "Storage port." {
		t.Errorf("Docstring = %v", class.Docstring)
	}
}

func TestHeaderFooterAndImportantComments(t *testing.T) {
	source := `# build artifact, do not edit
# second header line
x = 1  # TODO: make configurable
# trailing note
`
	module := parsePython(t, "gen.py", source)

	if len(module.Header) != 2 || module.Header[0] != "# build artifact, do not edit" {
		t.Errorf("Header = %v", module.Header)
	}
	if len(module.Footer) != 1 || module.Footer[0] != "# trailing note" {
		t.Errorf("Footer = %v", module.Footer)
	}

	if len(module.Children) != 1 {
		t.Fatalf("children = %d, want 1", len(module.Children))
	}
	run := module.Children[0].(*model.Standalone)
	if len(run.ImportantComments) != 1 {
		t.Fatalf("ImportantComments = %v", run.ImportantComments)
	}
	if run.ImportantComments[0].CommentType != model.CommentTODO {
		t.Errorf("comment type = %s", run.ImportantComments[0].CommentType)
	}
}

func TestParameterSlots(t *testing.T) {
	source := `def f(pos, /, a, b=1, *args, x=1, **kwargs):
    pass
`
	module := parsePython(t, "params.py", source)
	fn := module.Children[0].(*model.Function)
	params := fn.Parameters
	if params == nil {
		t.Fatal("Parameters = nil")
	}

	if len(params.PosonlyParams) != 1 || params.PosonlyParams[0].Content != "pos" {
		t.Errorf("PosonlyParams = %v", params.PosonlyParams)
	}
	if len(params.Params) != 2 || params.Params[0].Content != "a" || params.Params[1].Content != "b = 1" {
		t.Errorf("Params = %v", params.Params)
	}
	if params.StarArg == nil || params.StarArg.Content != "*args" {
		t.Errorf("StarArg = %v", params.StarArg)
	}
	if len(params.KwonlyParams) != 1 || params.KwonlyParams[0].Content != "x = 1" {
		t.Errorf("KwonlyParams = %v", params.KwonlyParams)
	}
	if params.StarKwarg == nil || params.StarKwarg.Content != "**kwargs" {
		t.Errorf("StarKwarg = %v", params.StarKwarg)
	}
}

func TestMethodFlagFollowsClassAncestry(t *testing.T) {
	source := `class C:
    def m(self):
        def inner():
            pass


def outer():
    def nested():
        pass
`
	module := parsePython(t, "m.py", source)

	class := module.Children[0].(*model.Class)
	m := class.Children[0].(*model.Function)
	inner := m.Children[0].(*model.Function)
	if !m.IsMethod || !inner.IsMethod {
		t.Errorf("class-nested flags = %v/%v, want both true", m.IsMethod, inner.IsMethod)
	}

	outer := module.Children[1].(*model.Function)
	nested := outer.Children[0].(*model.Function)
	if outer.IsMethod || nested.IsMethod {
		t.Errorf("module-nested flags = %v/%v, want both false", outer.IsMethod, nested.IsMethod)
	}
}

func TestReparseAfterChange(t *testing.T) {
	p, err := NewPython(nil)
	if err != nil {
		t.Fatalf("NewPython: %v", err)
	}

	first, err := p.Parse("m.py", []byte("def f():\n    pass\n"))
	if err != nil {
		t.Fatalf("first parse: %v", err)
	}
	second, err := p.Parse("m.py", []byte("def f():\n    pass\n\n\ndef g():\n    pass\n"))
	if err != nil {
		t.Fatalf("second parse: %v", err)
	}

	if len(first.Children) != 1 || len(second.Children) != 2 {
		t.Errorf("children = %d then %d, want 1 then 2",
			len(first.Children), len(second.Children))
	}
}
