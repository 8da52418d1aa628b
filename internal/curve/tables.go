package curve

// Set holds the three design curves used for stiffened panel buckling
type Set struct {
	Curve1 Curve // longitudinal direction, three stiffeners
	Curve2 Curve // longitudinal direction, lower bound for two stiffeners
	Curve3 Curve // transverse direction
}

// Validate checks every curve in the set
func (s Set) Validate() error {
	for _, c := range []Curve{s.Curve1, s.Curve2, s.Curve3} {
		if err := c.Validate(); err != nil {
			return err
		}
	}
	return nil
}

// Get returns the curve with the given id
func (s Set) Get(id ID) (Curve, bool) {
	switch id {
	case Curve1:
		return s.Curve1, true
	case Curve2:
		return s.Curve2, true
	case Curve3:
		return s.Curve3, true
	}
	return Curve{}, false
}

// All returns the curves in id order
func (s Set) All() []Curve {
	return []Curve{s.Curve1, s.Curve2, s.Curve3}
}

// Default returns the tabulated design curves. The returned set does not
// share backing arrays with the package tables.
func Default() Set {
	return Set{
		Curve1: Curve{ID: Curve1, Name: "Curve 1", Points: clone(curve1Points)},
		Curve2: Curve{ID: Curve2, Name: "Curve 2", Points: clone(curve2Points)},
		Curve3: Curve{ID: Curve3, Name: "Curve 3", Points: clone(curve3Points)},
	}
}

func clone(pts []Point) []Point {
	out := make([]Point, len(pts))
	copy(out, pts)
	return out
}

// Digitised from the stiffened-panel strength curves, slenderness
// λ = (b/t)·√(fy/355)
var curve1Points = []Point{
	{X: 0, Y: 1.00},
	{X: 20, Y: 1.00},
	{X: 30, Y: 0.97},
	{X: 40, Y: 0.90},
	{X: 50, Y: 0.82},
	{X: 60, Y: 0.74},
	{X: 70, Y: 0.66},
	{X: 80, Y: 0.58},
	{X: 90, Y: 0.52},
	{X: 100, Y: 0.47},
	{X: 120, Y: 0.39},
	{X: 140, Y: 0.33},
	{X: 160, Y: 0.29},
	{X: 180, Y: 0.26},
	{X: 200, Y: 0.23},
	{X: 250, Y: 0.18},
}

var curve2Points = []Point{
	{X: 0, Y: 1.00},
	{X: 15, Y: 1.00},
	{X: 25, Y: 0.95},
	{X: 35, Y: 0.86},
	{X: 45, Y: 0.76},
	{X: 55, Y: 0.67},
	{X: 65, Y: 0.59},
	{X: 75, Y: 0.52},
	{X: 85, Y: 0.46},
	{X: 100, Y: 0.40},
	{X: 120, Y: 0.33},
	{X: 140, Y: 0.28},
	{X: 160, Y: 0.24},
	{X: 180, Y: 0.21},
	{X: 200, Y: 0.19},
	{X: 250, Y: 0.15},
}

var curve3Points = []Point{
	{X: 0, Y: 1.00},
	{X: 40, Y: 1.00},
	{X: 60, Y: 0.96},
	{X: 80, Y: 0.90},
	{X: 100, Y: 0.83},
	{X: 120, Y: 0.76},
	{X: 140, Y: 0.69},
	{X: 160, Y: 0.63},
	{X: 180, Y: 0.57},
	{X: 200, Y: 0.52},
	{X: 225, Y: 0.47},
	{X: 250, Y: 0.42},
}
