package check

import (
	"fmt"
	"os"

	"github.com/alexiusacademia/gobox/internal/as5100"
	"github.com/alexiusacademia/gobox/internal/section"
	"github.com/alexiusacademia/gobox/internal/solver"
	"gopkg.in/yaml.v3"
)

// Input is one design check: geometry, material and load cases
type Input struct {
	Section section.Params `yaml:"section"`

	Fy     float64 `yaml:"fy"`      // yield strength (Pa)
	APanel float64 `yaml:"a_panel"` // transverse stiffener spacing (m)

	Loads []solver.LoadCase `yaml:"loads"`

	// Actions, when given, add one load case per combination
	Actions      *as5100.Actions `yaml:"actions,omitempty"`
	Combinations []string        `yaml:"combinations,omitempty"` // combination ids, all when empty

	Edition string  `yaml:"edition,omitempty"` // AS5100.6 edition, default 2017
	Mesh    string  `yaml:"mesh,omitempty"`    // fine or coarse
	Window  float64 `yaml:"window,omitempty"`  // sampling half-width (m), 0 = derived from the mesh
}

// Validate checks the material, panel and load inputs. Geometry is
// checked when the section is built.
func (in *Input) Validate() error {
	if !(in.Fy > 0) {
		return fmt.Errorf("fy must be positive (got %g)", in.Fy)
	}
	if !(in.APanel > 0) {
		return fmt.Errorf("a_panel must be positive (got %g)", in.APanel)
	}
	if in.Window < 0 {
		return fmt.Errorf("window must not be negative (got %g)", in.Window)
	}
	loads, err := in.LoadCases()
	if err != nil {
		return err
	}
	return solver.CheckLoads(loads)
}

// LoadCases returns the explicit load cases followed by the factored
// combinations of the actions
func (in *Input) LoadCases() ([]solver.LoadCase, error) {
	loads := append([]solver.LoadCase(nil), in.Loads...)
	if in.Actions == nil {
		return loads, nil
	}

	combos, err := selectCombinations(in.Combinations)
	if err != nil {
		return nil, err
	}
	for _, c := range combos {
		e := c.Apply(*in.Actions)
		loads = append(loads, solver.LoadCase{Name: c.ID, Mx: e.Mx, Vy: e.Vy, Mzz: e.Mzz})
	}
	return loads, nil
}

func selectCombinations(ids []string) ([]as5100.Combination, error) {
	if len(ids) == 0 {
		return as5100.Combinations, nil
	}

	var out []as5100.Combination
	for _, id := range ids {
		found := false
		for _, c := range as5100.Combinations {
			if c.ID == id {
				out = append(out, c)
				found = true
				break
			}
		}
		if !found {
			return nil, fmt.Errorf("unknown load combination %q", id)
		}
	}
	return out, nil
}

// LoadInput loads a design check from a YAML (or JSON) file
func LoadInput(filepath string) (*Input, error) {
	data, err := os.ReadFile(filepath)
	if err != nil {
		return nil, err
	}

	var in Input
	if err := yaml.Unmarshal(data, &in); err != nil {
		return nil, err
	}

	if err := in.Validate(); err != nil {
		return nil, err
	}

	return &in, nil
}
