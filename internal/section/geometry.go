package section

import (
	"fmt"
	"math"

	"github.com/alexiusacademia/gobox/internal/as5100"
)

// CrossSection is a stiffened box section made of non-overlapping
// rectangular plates with one interior void. It is read-only once built.
type CrossSection struct {
	name   string
	params Params
	plates []RectPlate
	holes  []Point
	props  Properties
}

// Name of the section
func (cs *CrossSection) Name() string { return cs.name }

// Params returns the parameters the section was built from
func (cs *CrossSection) Params() Params { return cs.params }

// Plates returns a copy of the plates in placement order
func (cs *CrossSection) Plates() []RectPlate {
	out := make([]RectPlate, len(cs.plates))
	copy(out, cs.plates)
	return out
}

// Holes returns a copy of the hole seed points
func (cs *CrossSection) Holes() []Point {
	out := make([]Point, len(cs.holes))
	copy(out, cs.holes)
	return out
}

// NumPlates returns the plate count
func (cs *CrossSection) NumPlates() int { return len(cs.plates) }

// Properties returns the geometric properties of the section
func (cs *CrossSection) Properties() Properties { return cs.props }

// PlatesByRole returns the plates with the given role in placement order
func (cs *CrossSection) PlatesByRole(role Role) []RectPlate {
	var out []RectPlate
	for _, p := range cs.plates {
		if p.Role == role {
			out = append(out, p)
		}
	}
	return out
}

// MeshOptions controls the mesh-size hints handed to the solver
type MeshOptions struct {
	// Boundary plates get d / BoundaryDivisor
	BoundaryDivisor float64
	// Stiffener plates get t_stif · StiffenerFactor
	StiffenerFactor float64
}

// Mesh presets
var (
	MeshFine   = MeshOptions{BoundaryDivisor: 15, StiffenerFactor: 0.5}
	MeshCoarse = MeshOptions{BoundaryDivisor: 6, StiffenerFactor: 1}
)

// ParseMesh returns the preset with the given name ("fine" or "coarse")
func ParseMesh(name string) (MeshOptions, error) {
	switch name {
	case "", "fine":
		return MeshFine, nil
	case "coarse":
		return MeshCoarse, nil
	}
	return MeshOptions{}, fmt.Errorf("unknown mesh preset %q (use fine or coarse)", name)
}

// BoundaryHint is the element size for flanges and webs
func (m MeshOptions) BoundaryHint(p Params) float64 {
	return p.Depth / m.BoundaryDivisor
}

// StiffenerHint is the element size for stiffeners
func (m MeshOptions) StiffenerHint(p Params) float64 {
	return p.StiffenerThickness * m.StiffenerFactor
}

// Build generates the stiffened box section and one mesh hint per plate.
//
// The top flange and both webs carry n_stif longitudinal stiffeners on
// their inner faces; the bottom flange is unstiffened. Right-web stiffeners
// mirror the left-web pattern at the same elevations.
func Build(p Params, mesh MeshOptions) (*CrossSection, []MeshHint, error) {
	if err := as5100.CheckStiffenerCount(p.Stiffeners); err != nil {
		return nil, nil, err
	}
	if err := p.Validate(); err != nil {
		return nil, nil, err
	}
	if !(mesh.BoundaryDivisor > 0) || !(mesh.StiffenerFactor > 0) {
		return nil, nil, fmt.Errorf("mesh options must be positive (divisor=%g, factor=%g)", mesh.BoundaryDivisor, mesh.StiffenerFactor)
	}

	b, d := p.Width, p.Depth
	tw, tf := p.WebThickness, p.FlangeThickness
	ds, ts := p.StiffenerDepth, p.StiffenerThickness

	plates := []RectPlate{
		{Name: "top flange", Role: TopFlange, Width: b, Height: tf, X: 0, Y: d - tf},
		{Name: "bottom flange", Role: BottomFlange, Width: b, Height: tf, X: 0, Y: 0},
		{Name: "left web", Role: LeftWeb, Width: tw, Height: d - 2*tf, X: 0, Y: tf},
		{Name: "right web", Role: RightWeb, Width: tw, Height: d - 2*tf, X: b - tw, Y: tf},
	}

	flangeX, webY := stiffenerOffsets(p)

	for i, x := range flangeX {
		plates = append(plates, RectPlate{
			Name:   fmt.Sprintf("top stiffener %d", i+1),
			Role:   TopStiffener,
			Width:  ts,
			Height: ds,
			X:      x,
			Y:      d - tf - ds,
		})
	}
	for i, y := range webY {
		plates = append(plates, RectPlate{
			Name:   fmt.Sprintf("left web stiffener %d", i+1),
			Role:   LeftStiffener,
			Width:  ds,
			Height: ts,
			X:      tw,
			Y:      y,
		})
	}
	mirror := MirrorOffset(p)
	for i, y := range webY {
		plates = append(plates, RectPlate{
			Name:   fmt.Sprintf("right web stiffener %d", i+1),
			Role:   RightStiffener,
			Width:  ds,
			Height: ts,
			X:      tw + mirror,
			Y:      y,
		})
	}

	hole := Point{X: b / 2, Y: d / 2}
	if err := checkLayout(p, plates, hole); err != nil {
		return nil, nil, err
	}

	name := p.Name
	if name == "" {
		name = fmt.Sprintf("box %gx%g, %d stiffeners", b, d, p.Stiffeners)
	}

	cs := &CrossSection{
		name:   name,
		params: p,
		plates: plates,
		holes:  []Point{hole},
	}
	cs.props = calculateProperties(cs)

	boundary := mesh.BoundaryHint(p)
	stiffener := mesh.StiffenerHint(p)
	hints := make([]MeshHint, len(plates))
	for i, pl := range plates {
		size := boundary
		if pl.Role.IsStiffener() {
			size = stiffener
		}
		hints[i] = MeshHint{Plate: pl.Name, Size: size}
	}

	return cs, hints, nil
}

// MirrorOffset is the horizontal translation from a left-web stiffener to
// its right-web counterpart
func MirrorOffset(p Params) float64 {
	return p.Width - 2*p.WebThickness - p.StiffenerDepth
}

// stiffenerOffsets returns the left edges of the flange stiffeners and the
// bottom edges of the web stiffeners. Three stiffeners: one centred and two
// at ±b/4 (±d/4). Two stiffeners: from the one-third point, then +b/3 (+d/3).
func stiffenerOffsets(p Params) (flangeX, webY []float64) {
	b, d, ts := p.Width, p.Depth, p.StiffenerThickness

	switch p.Stiffeners {
	case 3:
		x0, y0 := (b-ts)/2, (d-ts)/2
		flangeX = []float64{x0, x0 - b/4, x0 + b/4}
		webY = []float64{y0, y0 - d/4, y0 + d/4}
	case 2:
		x0, y0 := (b-ts)/3, (d-ts)/3
		flangeX = []float64{x0, x0 + b/3}
		webY = []float64{y0, y0 + d/3}
	}
	return flangeX, webY
}

// checkLayout verifies that stiffeners sit on their parent plates, that no
// two plates overlap and that the hole seed lies in the void.
func checkLayout(p Params, plates []RectPlate, hole Point) error {
	const tol = 1e-12
	b, d := p.Width, p.Depth
	tw, tf := p.WebThickness, p.FlangeThickness

	for _, pl := range plates {
		switch pl.Role {
		case TopStiffener:
			if pl.X < tw-tol || pl.MaxX() > b-tw+tol {
				return &GeometryError{fmt.Sprintf("%s lies outside the flange between the webs", pl.Name)}
			}
			if pl.Y < tf-tol {
				return &GeometryError{fmt.Sprintf("%s reaches the bottom flange", pl.Name)}
			}
		case LeftStiffener, RightStiffener:
			if pl.Y < tf-tol || pl.MaxY() > d-tf+tol {
				return &GeometryError{fmt.Sprintf("%s lies outside the clear web depth", pl.Name)}
			}
		}
	}

	for i := range plates {
		for j := i + 1; j < len(plates); j++ {
			if plates[i].Overlaps(plates[j]) {
				return &GeometryError{fmt.Sprintf("%s overlaps %s", plates[i].Name, plates[j].Name)}
			}
		}
	}

	for _, pl := range plates {
		if pl.Contains(hole) || onBoundary(pl, hole) {
			return &GeometryError{fmt.Sprintf("interior void at (%g, %g) is covered by %s", hole.X, hole.Y, pl.Name)}
		}
	}
	return nil
}

func onBoundary(pl RectPlate, pt Point) bool {
	const tol = 1e-12
	inX := pt.X >= pl.X-tol && pt.X <= pl.MaxX()+tol
	inY := pt.Y >= pl.Y-tol && pt.Y <= pl.MaxY()+tol
	return inX && inY && (math.Abs(pt.X-pl.X) < tol || math.Abs(pt.X-pl.MaxX()) < tol ||
		math.Abs(pt.Y-pl.Y) < tol || math.Abs(pt.Y-pl.MaxY()) < tol)
}
