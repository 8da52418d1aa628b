package section

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/alexiusacademia/gobox/internal/as5100"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testParams(n int) Params {
	return Params{
		Width:              1.0,
		Depth:              1.0,
		WebThickness:       0.012,
		FlangeThickness:    0.012,
		StiffenerDepth:     0.15,
		StiffenerThickness: 0.012,
		Stiffeners:         n,
	}
}

func TestBuild_PlateCountAndHole(t *testing.T) {
	tests := []struct {
		n      int
		plates int
	}{
		{3, 13},
		{2, 10},
	}

	for _, tt := range tests {
		cs, hints, err := Build(testParams(tt.n), MeshFine)
		require.NoError(t, err)

		assert.Equal(t, tt.plates, cs.NumPlates(), "n_stif=%d", tt.n)
		assert.Len(t, hints, tt.plates)
		require.Len(t, cs.Holes(), 1)
		assert.Equal(t, Point{X: 0.5, Y: 0.5}, cs.Holes()[0])

		assert.Len(t, cs.PlatesByRole(TopStiffener), tt.n)
		assert.Len(t, cs.PlatesByRole(LeftStiffener), tt.n)
		assert.Len(t, cs.PlatesByRole(RightStiffener), tt.n)
		assert.Len(t, cs.PlatesByRole(BottomFlange), 1)
	}
}

func TestBuild_BoundaryPlates(t *testing.T) {
	p := testParams(3)
	cs, _, err := Build(p, MeshFine)
	require.NoError(t, err)

	plates := cs.Plates()
	assert.Equal(t, RectPlate{Name: "top flange", Role: TopFlange, Width: 1, Height: 0.012, X: 0, Y: 1 - 0.012}, plates[0])
	assert.Equal(t, RectPlate{Name: "bottom flange", Role: BottomFlange, Width: 1, Height: 0.012}, plates[1])
	assert.Equal(t, LeftWeb, plates[2].Role)
	assert.InDelta(t, 1-2*0.012, plates[2].Height, 1e-15)
	assert.InDelta(t, 0.012, plates[2].Y, 1e-15)
	assert.InDelta(t, 1-0.012, plates[3].X, 1e-15)
}

func TestBuild_StiffenerPlacement(t *testing.T) {
	p := testParams(3)
	cs, _, err := Build(p, MeshFine)
	require.NoError(t, err)

	top := cs.PlatesByRole(TopStiffener)
	centres := []float64{0.5, 0.25, 0.75}
	for i, pl := range top {
		assert.InDelta(t, centres[i], pl.Centroid().X, 1e-12, pl.Name)
		assert.InDelta(t, p.Depth-p.FlangeThickness, pl.MaxY(), 1e-12, "%s hangs from the flange", pl.Name)
		assert.Equal(t, p.StiffenerThickness, pl.Width)
		assert.Equal(t, p.StiffenerDepth, pl.Height)
	}

	left := cs.PlatesByRole(LeftStiffener)
	for i, pl := range left {
		assert.InDelta(t, centres[i], pl.Centroid().Y, 1e-12, pl.Name)
		assert.Equal(t, p.WebThickness, pl.X)
	}

	p2 := testParams(2)
	cs2, _, err := Build(p2, MeshFine)
	require.NoError(t, err)
	top2 := cs2.PlatesByRole(TopStiffener)
	assert.InDelta(t, (1-0.012)/3, top2[0].X, 1e-12)
	assert.InDelta(t, (1-0.012)/3+1.0/3, top2[1].X, 1e-12)
}

func TestBuild_RightStiffenersMirrorLeft(t *testing.T) {
	for _, n := range []int{2, 3} {
		p := testParams(n)
		cs, _, err := Build(p, MeshFine)
		require.NoError(t, err)

		left := cs.PlatesByRole(LeftStiffener)
		right := cs.PlatesByRole(RightStiffener)
		require.Len(t, right, len(left))

		shift := p.Width - 2*p.WebThickness - p.StiffenerDepth
		assert.Equal(t, shift, MirrorOffset(p))
		for i := range left {
			assert.InDelta(t, left[i].X+shift, right[i].X, 1e-12)
			assert.Equal(t, left[i].Y, right[i].Y)
			assert.InDelta(t, p.Width-p.WebThickness, right[i].MaxX(), 1e-12, "%s touches the right web", right[i].Name)
		}
	}
}

func TestBuild_NoOverlaps(t *testing.T) {
	for _, n := range []int{2, 3} {
		cs, _, err := Build(testParams(n), MeshFine)
		require.NoError(t, err)

		plates := cs.Plates()
		for i := range plates {
			for j := i + 1; j < len(plates); j++ {
				assert.False(t, plates[i].Overlaps(plates[j]), "%s overlaps %s", plates[i].Name, plates[j].Name)
			}
		}
	}
}

func TestBuild_MeshHints(t *testing.T) {
	p := testParams(3)

	_, hints, err := Build(p, MeshFine)
	require.NoError(t, err)
	for i, h := range hints {
		if i < 4 {
			assert.InDelta(t, p.Depth/15, h.Size, 1e-15, h.Plate)
		} else {
			assert.InDelta(t, p.StiffenerThickness/2, h.Size, 1e-15, h.Plate)
		}
	}

	cs, hints, err := Build(p, MeshCoarse)
	require.NoError(t, err)
	plates := cs.Plates()
	for i, h := range hints {
		assert.Equal(t, plates[i].Name, h.Plate)
	}
	assert.InDelta(t, p.Depth/6, hints[0].Size, 1e-15)
	assert.InDelta(t, p.StiffenerThickness, hints[12].Size, 1e-15)
}

func TestBuild_Idempotent(t *testing.T) {
	a, ha, err := Build(testParams(3), MeshFine)
	require.NoError(t, err)
	b, hb, err := Build(testParams(3), MeshFine)
	require.NoError(t, err)

	assert.Equal(t, a.Plates(), b.Plates())
	assert.Equal(t, a.Holes(), b.Holes())
	assert.Equal(t, ha, hb)
	assert.Equal(t, a.Properties(), b.Properties())
}

func TestBuild_PlatesAreCopies(t *testing.T) {
	cs, _, err := Build(testParams(3), MeshFine)
	require.NoError(t, err)

	plates := cs.Plates()
	plates[0].Width = 42
	assert.Equal(t, 1.0, cs.Plates()[0].Width)
}

func TestBuild_UnsupportedStiffenerCount(t *testing.T) {
	for _, n := range []int{0, 1, 4, -3} {
		cs, hints, err := Build(testParams(n), MeshFine)

		var ce *as5100.ConfigurationError
		require.ErrorAs(t, err, &ce, "n_stif=%d", n)
		assert.Equal(t, n, ce.Value)
		assert.Nil(t, cs)
		assert.Nil(t, hints)
	}
}

func TestBuild_GeometryConstraints(t *testing.T) {
	tests := []struct {
		name   string
		modify func(p *Params)
	}{
		{"zero width", func(p *Params) { p.Width = 0 }},
		{"negative web", func(p *Params) { p.WebThickness = -0.01 }},
		{"flanges fill depth", func(p *Params) { p.FlangeThickness = 0.5 }},
		{"stiffener wider than box", func(p *Params) { p.StiffenerDepth = 0.99 }},
		{"stiffener deeper than section", func(p *Params) { p.Width = 5; p.StiffenerDepth = 1.2 }},
		{"top stiffener covers void", func(p *Params) { p.StiffenerDepth = 0.6 }},
		{"stiffeners collide at corner", func(p *Params) { p.StiffenerDepth = 0.3; p.Width = 0.6 }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := testParams(3)
			tt.modify(&p)

			cs, hints, err := Build(p, MeshFine)
			var ge *GeometryError
			require.ErrorAs(t, err, &ge)
			assert.Nil(t, cs)
			assert.Nil(t, hints)
		})
	}
}

func TestBuild_RejectsBadMeshOptions(t *testing.T) {
	_, _, err := Build(testParams(3), MeshOptions{BoundaryDivisor: 0, StiffenerFactor: 1})
	assert.Error(t, err)
}

func TestProperties_SymmetricSection(t *testing.T) {
	p := testParams(3)
	cs, _, err := Build(p, MeshFine)
	require.NoError(t, err)

	props := cs.Properties()
	wantArea := 2*p.Width*p.FlangeThickness +
		2*p.WebThickness*(p.Depth-2*p.FlangeThickness) +
		3*float64(p.Stiffeners)*p.StiffenerDepth*p.StiffenerThickness

	assert.InDelta(t, wantArea, props.Area, 1e-12)
	assert.InDelta(t, 0.5, props.CentroidX, 1e-12)
	assert.Greater(t, props.CentroidY, 0.5, "top stiffeners raise the centroid")
	assert.InDelta(t, 0, props.Ixy, 1e-12)
	assert.Greater(t, props.Ixx, 0.0)
	assert.Greater(t, props.Iyy, 0.0)
	assert.InDelta(t, 1.0, props.Width, 1e-12)
	assert.InDelta(t, 1.0, props.Height, 1e-12)

	a0 := (1 - 0.012) * (1 - 0.012)
	assert.InDelta(t, a0, props.EnclosedArea, 1e-12)
	assert.InDelta(t, 4*a0*a0/(4*(1-0.012)/0.012), props.TorsionConstant, 1e-12)
}

func TestFirstMomentAbove(t *testing.T) {
	cs, _, err := Build(testParams(2), MeshFine)
	require.NoError(t, err)

	assert.InDelta(t, 0, cs.FirstMomentAbove(-1), 1e-12, "whole section about its own centroid")
	assert.Equal(t, 0.0, cs.FirstMomentAbove(2))
	assert.Greater(t, cs.FirstMomentAbove(cs.Properties().CentroidY), 0.0)
}

func TestWallThickness(t *testing.T) {
	p := testParams(3)
	p.WebThickness = 0.010
	cs, _, err := Build(p, MeshFine)
	require.NoError(t, err)

	assert.Equal(t, 0.012, cs.WallThickness(TopFlange))
	assert.Equal(t, 0.010, cs.WallThickness(RightWeb))
	assert.Equal(t, 0.0, cs.WallThickness(TopStiffener))
}

func TestParseMesh(t *testing.T) {
	m, err := ParseMesh("coarse")
	require.NoError(t, err)
	assert.Equal(t, MeshCoarse, m)

	m, err = ParseMesh("")
	require.NoError(t, err)
	assert.Equal(t, MeshFine, m)

	_, err = ParseMesh("medium")
	assert.Error(t, err)
}

func TestLoadFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "box.yaml")
	content := `name: Girder G1
b: 1.2
d: 1.5
t_w: 0.012
t_f: 0.016
d_stif: 0.15
t_stif: 0.012
n_stif: 2
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	p, err := LoadFromFile(path)
	require.NoError(t, err)
	assert.Equal(t, "Girder G1", p.Name)
	assert.Equal(t, 1.2, p.Width)
	assert.Equal(t, 0.016, p.FlangeThickness)
	assert.Equal(t, 2, p.Stiffeners)

	bad := filepath.Join(t.TempDir(), "bad.yaml")
	require.NoError(t, os.WriteFile(bad, []byte("b: 1\nd: 0.01\nt_w: 0.01\nt_f: 0.01\nd_stif: 0.1\nt_stif: 0.01\n"), 0o644))
	_, err = LoadFromFile(bad)
	var ge *GeometryError
	assert.ErrorAs(t, err, &ge)
}
