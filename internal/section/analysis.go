package section

import (
	"math"

	"gonum.org/v1/gonum/floats"
)

// calculateProperties computes geometric properties of the merged plates
func calculateProperties(cs *CrossSection) Properties {
	props := Properties{}
	n := len(cs.plates)
	if n == 0 {
		return props
	}

	areas := make([]float64, n)
	cxs := make([]float64, n)
	cys := make([]float64, n)

	minX, maxX := cs.plates[0].X, cs.plates[0].MaxX()
	minY, maxY := cs.plates[0].Y, cs.plates[0].MaxY()

	for i, pl := range cs.plates {
		c := pl.Centroid()
		areas[i] = pl.Area()
		cxs[i] = c.X
		cys[i] = c.Y

		minX = math.Min(minX, pl.X)
		maxX = math.Max(maxX, pl.MaxX())
		minY = math.Min(minY, pl.Y)
		maxY = math.Max(maxY, pl.MaxY())
	}

	props.Width = maxX - minX
	props.Height = maxY - minY
	props.Area = floats.Sum(areas)
	props.CentroidX = floats.Dot(areas, cxs) / props.Area
	props.CentroidY = floats.Dot(areas, cys) / props.Area

	// Parallel axis theorem per plate
	for i, pl := range cs.plates {
		dx := cxs[i] - props.CentroidX
		dy := cys[i] - props.CentroidY
		props.Ixx += pl.Width*math.Pow(pl.Height, 3)/12 + areas[i]*dy*dy
		props.Iyy += pl.Height*math.Pow(pl.Width, 3)/12 + areas[i]*dx*dx
		props.Ixy += areas[i] * dx * dy
	}

	// Single closed cell bounded by the flange and web mid-lines
	p := cs.params
	sx := p.Width - p.WebThickness
	sy := p.Depth - p.FlangeThickness
	props.EnclosedArea = sx * sy
	props.TorsionConstant = 4 * props.EnclosedArea * props.EnclosedArea /
		(2*sx/p.FlangeThickness + 2*sy/p.WebThickness)

	return props
}

// FirstMomentAbove returns the first moment of area, about the centroidal
// horizontal axis, of all plate area above height y
func (cs *CrossSection) FirstMomentAbove(y float64) float64 {
	var q float64
	for _, pl := range cs.plates {
		top := pl.MaxY()
		if top <= y {
			continue
		}
		bottom := math.Max(pl.Y, y)
		area := pl.Width * (top - bottom)
		q += area * ((top+bottom)/2 - cs.props.CentroidY)
	}
	return q
}

// WallThickness returns the thickness of the closed-cell wall a plate
// belongs to; stiffeners are not part of the cell and return 0
func (cs *CrossSection) WallThickness(role Role) float64 {
	switch role {
	case TopFlange, BottomFlange:
		return cs.params.FlangeThickness
	case LeftWeb, RightWeb:
		return cs.params.WebThickness
	}
	return 0
}
