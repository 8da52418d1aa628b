package stress

import (
	"fmt"
	"sort"
)

// Component names a stress component reported per node
type Component string

// Stress components of a thin-walled section under Mx, Vy and Mzz
const (
	SigZZ         Component = "sig_zz"      // normal stress along the member axis
	SigZXY        Component = "sig_zxy"     // resultant transverse shear
	SigZXYTorsion Component = "sig_zxy_mzz" // shear due to torsion
	SigZXYShear   Component = "sig_zxy_vy"  // shear due to vertical shear force
)

// Node is a mesh node position
type Node struct {
	X float64
	Y float64
}

// Components maps a component to per-node values, indexed like the nodes
type Components map[Component][]float64

// StressField is a solved stress field: node positions and, for each load
// case, the component arrays
type StressField struct {
	Nodes []Node
	Cases map[string]Components
}

// Field is one load case of a StressField
type Field struct {
	Nodes      []Node
	Components Components
}

// Validate checks that every component array has one value per node
func (f *StressField) Validate() error {
	if len(f.Nodes) == 0 {
		return &FieldError{"stress field has no nodes"}
	}
	for _, name := range f.CaseNames() {
		for comp, values := range f.Cases[name] {
			if len(values) != len(f.Nodes) {
				return &FieldError{fmt.Sprintf("load case %q: %s has %d values for %d nodes", name, comp, len(values), len(f.Nodes))}
			}
		}
	}
	return nil
}

// CaseNames returns the load case names in sorted order
func (f *StressField) CaseNames() []string {
	names := make([]string, 0, len(f.Cases))
	for name := range f.Cases {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Case returns the field of a single load case
func (f *StressField) Case(name string) (Field, error) {
	comps, ok := f.Cases[name]
	if !ok {
		return Field{}, &FieldError{fmt.Sprintf("unknown load case %q", name)}
	}
	return Field{Nodes: f.Nodes, Components: comps}, nil
}

// FieldError reports a malformed stress field or a missing case/component
type FieldError struct {
	msg string
}

func (e *FieldError) Error() string {
	return e.msg
}
