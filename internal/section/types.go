package section

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Params defines a stiffened box girder cross-section.
// The section is defined in a local coordinate system where:
// - origin at the bottom-left outer corner of the box
// - X-axis points to the right, Y-axis points upward
// All lengths are in metres.
type Params struct {
	Name string `yaml:"name,omitempty"`

	Width           float64 `yaml:"b"`   // overall box width
	Depth           float64 `yaml:"d"`   // overall box depth
	WebThickness    float64 `yaml:"t_w"` // web plate thickness
	FlangeThickness float64 `yaml:"t_f"` // flange plate thickness

	// Longitudinal stiffeners (flat plates)
	StiffenerDepth     float64 `yaml:"d_stif"` // outstand from the plate face
	StiffenerThickness float64 `yaml:"t_stif"`
	Stiffeners         int     `yaml:"n_stif"` // per stiffened face, 2 or 3
}

// Point represents a 2D coordinate
type Point struct {
	X float64 `yaml:"x"`
	Y float64 `yaml:"y"`
}

// Role identifies which part of the box a plate belongs to
type Role int

const (
	TopFlange Role = iota
	BottomFlange
	LeftWeb
	RightWeb
	TopStiffener
	LeftStiffener
	RightStiffener
)

var roleNames = [...]string{
	TopFlange:      "top flange",
	BottomFlange:   "bottom flange",
	LeftWeb:        "left web",
	RightWeb:       "right web",
	TopStiffener:   "top stiffener",
	LeftStiffener:  "left web stiffener",
	RightStiffener: "right web stiffener",
}

func (r Role) String() string {
	if r < 0 || int(r) >= len(roleNames) {
		return fmt.Sprintf("Role(%d)", int(r))
	}
	return roleNames[r]
}

// IsStiffener reports whether the role is one of the stiffener roles
func (r Role) IsStiffener() bool {
	return r == TopStiffener || r == LeftStiffener || r == RightStiffener
}

// RectPlate is an axis-aligned rectangular plate. (X, Y) is its bottom-left
// corner.
type RectPlate struct {
	Name   string
	Role   Role
	Width  float64
	Height float64
	X      float64
	Y      float64
}

// Area of the plate
func (p RectPlate) Area() float64 { return p.Width * p.Height }

// MaxX is the right edge
func (p RectPlate) MaxX() float64 { return p.X + p.Width }

// MaxY is the top edge
func (p RectPlate) MaxY() float64 { return p.Y + p.Height }

// Centroid of the plate
func (p RectPlate) Centroid() Point {
	return Point{X: p.X + p.Width/2, Y: p.Y + p.Height/2}
}

// Contains reports whether pt lies strictly inside the plate
func (p RectPlate) Contains(pt Point) bool {
	return pt.X > p.X && pt.X < p.MaxX() && pt.Y > p.Y && pt.Y < p.MaxY()
}

// Overlaps reports whether the two plates share a region of positive area.
// Plates that only touch along an edge do not overlap.
func (p RectPlate) Overlaps(o RectPlate) bool {
	dx := min(p.MaxX(), o.MaxX()) - max(p.X, o.X)
	dy := min(p.MaxY(), o.MaxY()) - max(p.Y, o.Y)
	return dx > overlapTol && dy > overlapTol
}

// overlapTol absorbs round-off on shared edges
const overlapTol = 1e-12

// MeshHint is the target element size for one plate
type MeshHint struct {
	Plate string
	Size  float64 // m
}

// Properties holds calculated geometric properties
type Properties struct {
	// Overall dimensions
	Width  float64 // m
	Height float64 // m
	Area   float64 // m²

	// Centroid location
	CentroidX float64 // m
	CentroidY float64 // m

	// Second moments about centroidal axes (m⁴)
	Ixx float64 // about the horizontal axis
	Iyy float64 // about the vertical axis
	Ixy float64 // product of area

	// Closed-cell torsion
	EnclosedArea    float64 // A0 enclosed by the wall mid-lines (m²)
	TorsionConstant float64 // Bredt J = 4·A0²/Σ(s/t) (m⁴)
}

// Validate checks the positivity and containment constraints of the
// parameters. It does not check the stiffener count; see as5100.
func (p Params) Validate() error {
	dims := []struct {
		name  string
		value float64
	}{
		{"b", p.Width},
		{"d", p.Depth},
		{"t_w", p.WebThickness},
		{"t_f", p.FlangeThickness},
		{"d_stif", p.StiffenerDepth},
		{"t_stif", p.StiffenerThickness},
	}
	for _, dim := range dims {
		if !(dim.value > 0) {
			return &GeometryError{fmt.Sprintf("%s must be positive (got %g)", dim.name, dim.value)}
		}
	}
	if p.Depth <= 2*p.FlangeThickness {
		return &GeometryError{fmt.Sprintf("d = %g must exceed 2·t_f = %g", p.Depth, 2*p.FlangeThickness)}
	}
	if p.Width <= 2*p.WebThickness+p.StiffenerDepth {
		return &GeometryError{fmt.Sprintf("b = %g must exceed 2·t_w + d_stif = %g", p.Width, 2*p.WebThickness+p.StiffenerDepth)}
	}
	if p.StiffenerDepth >= p.Depth {
		return &GeometryError{fmt.Sprintf("d_stif = %g must be less than d = %g", p.StiffenerDepth, p.Depth)}
	}
	return nil
}

// GeometryError represents a violated dimension constraint
type GeometryError struct {
	msg string
}

func (e *GeometryError) Error() string {
	return "invalid geometry: " + e.msg
}

// LoadFromFile loads section parameters from a YAML (or JSON) file
func LoadFromFile(filepath string) (*Params, error) {
	data, err := os.ReadFile(filepath)
	if err != nil {
		return nil, err
	}

	var p Params
	if err := yaml.Unmarshal(data, &p); err != nil {
		return nil, err
	}

	if err := p.Validate(); err != nil {
		return nil, err
	}

	return &p, nil
}
