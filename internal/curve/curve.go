package curve

import (
	"fmt"
	"sort"
)

// Domain limits of the tabulated slenderness values
const (
	DomainMin = 0.0
	DomainMax = 250.0

	// MaxCoefficient is the ceiling applied to every interpolated value
	MaxCoefficient = 1.0
)

// Point is one (slenderness, coefficient) sample of a design curve
type Point struct {
	X float64 `yaml:"x"` // slenderness λ
	Y float64 `yaml:"y"` // coefficient K
}

// Curve is an ordered sequence of samples with ascending slenderness
type Curve struct {
	ID     ID
	Name   string
	Points []Point
}

// ID identifies one of the three design curves
type ID int

const (
	Curve1 ID = iota + 1
	Curve2
	Curve3
)

func (id ID) String() string {
	switch id {
	case Curve1:
		return "Curve 1"
	case Curve2:
		return "Curve 2"
	case Curve3:
		return "Curve 3"
	}
	return fmt.Sprintf("Curve(%d)", int(id))
}

// At interpolates the curve linearly at x. Outside the tabulated range the
// nearest endpoint value is returned. The result never exceeds
// MaxCoefficient.
func (c Curve) At(x float64) float64 {
	pts := c.Points
	n := len(pts)
	if n == 0 {
		return 0
	}

	var y float64
	switch {
	case x <= pts[0].X:
		y = pts[0].Y
	case x >= pts[n-1].X:
		y = pts[n-1].Y
	default:
		// first sample strictly to the right of x
		j := sort.Search(n, func(i int) bool { return pts[i].X > x })
		p0, p1 := pts[j-1], pts[j]
		y = Interpolate(x, p0.X, p0.Y, p1.X, p1.Y)
	}

	if y > MaxCoefficient {
		y = MaxCoefficient
	}
	return y
}

// Interpolate returns the value at x on the line through (x0,y0) and (x1,y1)
func Interpolate(x, x0, y0, x1, y1 float64) float64 {
	if x1 == x0 {
		return y0
	}
	return y0 + (y1-y0)*(x-x0)/(x1-x0)
}

// Validate checks that the curve is ascending in slenderness, non-increasing
// in coefficient, inside the tabulated domain and capped at MaxCoefficient.
func (c Curve) Validate() error {
	if len(c.Points) < 2 {
		return &TableError{Curve: c.ID, msg: "needs at least 2 points"}
	}
	for i, p := range c.Points {
		if p.X < DomainMin || p.X > DomainMax {
			return &TableError{Curve: c.ID, msg: fmt.Sprintf("point %d: slenderness %.2f outside [%.0f, %.0f]", i+1, p.X, DomainMin, DomainMax)}
		}
		if p.Y < 0 || p.Y > MaxCoefficient {
			return &TableError{Curve: c.ID, msg: fmt.Sprintf("point %d: coefficient %.3f outside [0, %.1f]", i+1, p.Y, MaxCoefficient)}
		}
		if i == 0 {
			continue
		}
		prev := c.Points[i-1]
		if p.X <= prev.X {
			return &TableError{Curve: c.ID, msg: fmt.Sprintf("point %d: slenderness not ascending", i+1)}
		}
		if p.Y > prev.Y {
			return &TableError{Curve: c.ID, msg: fmt.Sprintf("point %d: coefficient increases", i+1)}
		}
	}
	return nil
}

// TableError reports an invalid design-curve table
type TableError struct {
	Curve ID
	msg   string
}

func (e *TableError) Error() string {
	return fmt.Sprintf("%s: %s", e.Curve, e.msg)
}
