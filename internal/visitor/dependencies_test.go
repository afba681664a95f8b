package visitor

import (
	"testing"

	"outline/internal/builder"
	"outline/internal/ident"
	"outline/internal/model"
)

func TestInferDependencies(t *testing.T) {
	mb := builder.NewModule("svc.py")
	alias := "sh"
	mb.AddImport(model.Import{
		ImportNames: []model.ImportName{{Name: "shutil", AsName: &alias}},
		ImportType:  model.ImportStandardLibrary,
	})
	mb.AddImport(model.Import{
		ImportNames: []model.ImportName{{Name: "json"}},
		ImportType:  model.ImportStandardLibrary,
	})

	helper, _ := builder.NewFunction(mb.ID(), "load")
	helper.SetCodeContent("def load(path):\n    return json.loads(open(path).read())\n")

	consumer, _ := builder.NewClass(mb.ID(), "Store")
	consumer.SetCodeContent("class Store:\n    def refresh(self):\n        self.data = load(self.path)\n        sh.rmtree(self.tmp)\n")

	settings, _ := builder.NewStandalone(mb.ID(), 1)
	settings.SetCodeContent("cache_dir = '/tmp/store'\n")
	settings.SetVariableAssignments([]string{"cache_dir"})

	user, _ := builder.NewFunction(mb.ID(), "purge")
	user.SetCodeContent("def purge():\n    sh.rmtree(cache_dir)\n")

	mb.AddChildBuilder(helper)
	mb.AddChildBuilder(consumer)
	mb.AddChildBuilder(settings)
	mb.AddChildBuilder(user)

	InferDependencies(mb)

	block, err := mb.Build()
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	children := block.Common().Children

	t.Run("class depends on alias and sibling function", func(t *testing.T) {
		deps := children[1].Common().Dependencies
		if !hasImport(deps, "shutil") {
			t.Errorf("missing aliased import, deps = %v", deps)
		}
		if hasImport(deps, "json") {
			t.Errorf("json not used by Store, deps = %v", deps)
		}
		if !hasRef(deps, ident.ForFunction(mb.ID(), "load")) {
			t.Errorf("missing sibling ref to load, deps = %v", deps)
		}
	})

	t.Run("function depends on import only", func(t *testing.T) {
		deps := children[0].Common().Dependencies
		if !hasImport(deps, "json") {
			t.Errorf("missing json import, deps = %v", deps)
		}
		if hasImport(deps, "shutil") {
			t.Errorf("shutil not used by load, deps = %v", deps)
		}
	})

	t.Run("standalone variables create refs", func(t *testing.T) {
		deps := children[3].Common().Dependencies
		if !hasRef(deps, ident.ForStandalone(mb.ID(), 1)) {
			t.Errorf("missing ref to assigning run, deps = %v", deps)
		}
	})

	t.Run("unreferenced block has no dependencies", func(t *testing.T) {
		if deps := children[2].Common().Dependencies; deps != nil {
			t.Errorf("standalone deps = %v, want nil", deps)
		}
	})
}

func hasImport(deps []model.Dependency, name string) bool {
	for _, d := range deps {
		imp, ok := d.(model.Import)
		if !ok {
			continue
		}
		for _, n := range imp.ImportNames {
			if n.Name == name {
				return true
			}
		}
	}
	return false
}

func hasRef(deps []model.Dependency, id string) bool {
	for _, d := range deps {
		if ref, ok := d.(model.BlockRef); ok && string(ref) == id {
			return true
		}
	}
	return false
}
