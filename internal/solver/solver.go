// Package solver defines the boundary between the section geometry and the
// stress analysis that turns it into a stress field.
package solver

import (
	"fmt"

	"github.com/alexiusacademia/gobox/internal/section"
	"github.com/alexiusacademia/gobox/internal/stress"
)

// Solver meshes a cross-section and returns the stress field for each load
// case. Node ordering must be the same for every component array.
type Solver interface {
	Solve(cs *section.CrossSection, hints []section.MeshHint, loads []LoadCase) (*stress.StressField, error)
}

// LoadCase holds the section actions of one load case (SI units)
type LoadCase struct {
	Name string  `yaml:"name"`
	Mx   float64 `yaml:"mx"`  // bending moment about the horizontal axis (N·m)
	Vy   float64 `yaml:"vy"`  // vertical shear force (N)
	Mzz  float64 `yaml:"mzz"` // torque (N·m)
}

// CheckLoads verifies that there is at least one load case and that names
// are present and unique
func CheckLoads(loads []LoadCase) error {
	if len(loads) == 0 {
		return fmt.Errorf("at least one load case is required")
	}
	seen := make(map[string]bool, len(loads))
	for i, lc := range loads {
		if lc.Name == "" {
			return fmt.Errorf("load case %d has no name", i+1)
		}
		if seen[lc.Name] {
			return fmt.Errorf("duplicate load case %q", lc.Name)
		}
		seen[lc.Name] = true
	}
	return nil
}

// Failure wraps an error raised inside a solver
type Failure struct {
	Err error
}

func (f *Failure) Error() string {
	return "solver failure: " + f.Err.Error()
}

func (f *Failure) Unwrap() error {
	return f.Err
}
