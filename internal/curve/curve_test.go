package curve

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultTablesAreValid(t *testing.T) {
	require.NoError(t, Default().Validate())
}

func TestCurveAt_TabulatedPointsAndMidpoints(t *testing.T) {
	c := Default().Curve1

	assert.Equal(t, 1.0, c.At(0))
	assert.InDelta(t, 0.90, c.At(40), 1e-12)
	assert.InDelta(t, 0.86, c.At(45), 1e-12)
	assert.InDelta(t, 0.18, c.At(250), 1e-12)
}

func TestCurveAt_ClampsOutsideTable(t *testing.T) {
	c := Curve{ID: Curve1, Points: []Point{{X: 10, Y: 0.9}, {X: 100, Y: 0.4}}}

	assert.Equal(t, 0.9, c.At(-5))
	assert.Equal(t, 0.9, c.At(0))
	assert.Equal(t, 0.4, c.At(400))
}

func TestCurveAt_CapsAtOne(t *testing.T) {
	c := Curve{ID: Curve1, Points: []Point{{X: 0, Y: 1.2}, {X: 50, Y: 1.1}, {X: 100, Y: 0.5}}}

	assert.Equal(t, MaxCoefficient, c.At(0))
	assert.Equal(t, MaxCoefficient, c.At(25))
	assert.LessOrEqual(t, c.At(60), MaxCoefficient)
}

func TestCurve3_NonIncreasingAcrossDomain(t *testing.T) {
	c := Default().Curve3

	prev := c.At(DomainMin)
	for x := DomainMin; x <= DomainMax; x += 0.25 {
		y := c.At(x)
		require.LessOrEqual(t, y, prev, "coefficient increased at λ=%.2f", x)
		prev = y
	}
}

func TestCurveValidate_Rejects(t *testing.T) {
	tests := []struct {
		name string
		pts  []Point
	}{
		{"single point", []Point{{X: 0, Y: 1}}},
		{"increasing coefficient", []Point{{X: 0, Y: 0.8}, {X: 10, Y: 0.9}}},
		{"descending slenderness", []Point{{X: 10, Y: 1}, {X: 5, Y: 0.9}}},
		{"above ceiling", []Point{{X: 0, Y: 1.5}, {X: 10, Y: 0.9}}},
		{"outside domain", []Point{{X: 0, Y: 1}, {X: 300, Y: 0.1}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := Curve{ID: Curve2, Points: tt.pts}.Validate()
			var te *TableError
			require.ErrorAs(t, err, &te)
			assert.Equal(t, Curve2, te.Curve)
		})
	}
}

func TestDefault_ReturnsIndependentCopies(t *testing.T) {
	a := Default()
	a.Curve1.Points[0].Y = 0.1

	assert.Equal(t, 1.0, Default().Curve1.Points[0].Y)
}

func TestInterpolate(t *testing.T) {
	assert.Equal(t, 5.0, Interpolate(5, 0, 0, 10, 10))
	assert.Equal(t, 3.0, Interpolate(5, 5, 3, 5, 7))
}
