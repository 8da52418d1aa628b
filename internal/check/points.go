package check

import (
	"github.com/alexiusacademia/gobox/internal/section"
	"github.com/alexiusacademia/gobox/internal/stress"
)

// Location names one of the canonical critical points
type Location int

const (
	FlangeStiffenerRoot Location = iota + 1
	WebStiffenerRoot
	FlangeMidPanel
	WebMidPanel
)

func (l Location) String() string {
	switch l {
	case FlangeStiffenerRoot:
		return "flange-stiffener root"
	case WebStiffenerRoot:
		return "web-stiffener root"
	case FlangeMidPanel:
		return "flange mid-panel"
	case WebMidPanel:
		return "web mid-panel"
	}
	return "unknown location"
}

// Target is a critical point together with the reducer used there
type Target struct {
	Location Location
	Point    stress.CriticalPoint
	Reducer  stress.Reducer
}

// DefaultWindow returns a square window with the half-size of the
// boundary mesh hint
func DefaultWindow(p section.Params, mesh section.MeshOptions) stress.Window {
	h := mesh.BoundaryHint(p)
	return stress.Window{DX: h, DY: h}
}

// CriticalPoints derives the four critical points from the section
// parameters. y is measured from the bottom fibre; the stiffened top flange
// is the compression flange.
//
//	flange-stiffener root  (b/(n+1),      d − t_f)     max
//	flange mid-panel       (1.5·b/(n+1),  d − t_f/2)   mean
//	web-stiffener root     (t_w,          d − d/(n+1)) max
//	web mid-panel          (t_w/2,        d − 1.5·d/(n+1)) mean
func CriticalPoints(p section.Params, w stress.Window) []Target {
	n := float64(p.Stiffeners + 1)
	flangeSpacing := p.Width / n
	webSpacing := p.Depth / n

	point := func(l Location, x, y float64) stress.CriticalPoint {
		return stress.CriticalPoint{Name: l.String(), X: x, Y: y, Window: w}
	}

	return []Target{
		{
			Location: FlangeStiffenerRoot,
			Point:    point(FlangeStiffenerRoot, flangeSpacing, p.Depth-p.FlangeThickness),
			Reducer:  stress.Max,
		},
		{
			Location: WebStiffenerRoot,
			Point:    point(WebStiffenerRoot, p.WebThickness, p.Depth-webSpacing),
			Reducer:  stress.Max,
		},
		{
			Location: FlangeMidPanel,
			Point:    point(FlangeMidPanel, 1.5*flangeSpacing, p.Depth-p.FlangeThickness/2),
			Reducer:  stress.Mean,
		},
		{
			Location: WebMidPanel,
			Point:    point(WebMidPanel, p.WebThickness/2, p.Depth-1.5*webSpacing),
			Reducer:  stress.Mean,
		},
	}
}
