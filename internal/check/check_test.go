package check

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/alexiusacademia/gobox/internal/as5100"
	"github.com/alexiusacademia/gobox/internal/curve"
	"github.com/alexiusacademia/gobox/internal/section"
	"github.com/alexiusacademia/gobox/internal/solver"
	"github.com/alexiusacademia/gobox/internal/stress"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func boxParams(n int) section.Params {
	return section.Params{
		Name:               "B1",
		Width:              1.0,
		Depth:              1.2,
		WebThickness:       0.012,
		FlangeThickness:    0.016,
		StiffenerDepth:     0.15,
		StiffenerThickness: 0.012,
		Stiffeners:         n,
	}
}

func input(n int, loads ...solver.LoadCase) Input {
	return Input{
		Section: boxParams(n),
		Fy:      350e6,
		APanel:  2.0,
		Loads:   loads,
	}
}

type fakeSolver struct {
	calls int
	err   error
}

func (f *fakeSolver) Solve(cs *section.CrossSection, hints []section.MeshHint, loads []solver.LoadCase) (*stress.StressField, error) {
	f.calls++
	if f.err != nil {
		return nil, f.err
	}
	return solver.ThinWalled{}.Solve(cs, hints, loads)
}

func TestCriticalPoints(t *testing.T) {
	w := stress.Window{DX: 0.01, DY: 0.02}

	t.Run("three stiffeners", func(t *testing.T) {
		pts := CriticalPoints(boxParams(3), w)
		require.Len(t, pts, 4)

		wantXY := map[Location][2]float64{
			FlangeStiffenerRoot: {0.25, 1.184},
			WebStiffenerRoot:    {0.012, 0.9},
			FlangeMidPanel:      {0.375, 1.192},
			WebMidPanel:         {0.006, 0.75},
		}
		for _, p := range pts {
			want := wantXY[p.Location]
			assert.InDelta(t, want[0], p.Point.X, 1e-12, p.Location.String())
			assert.InDelta(t, want[1], p.Point.Y, 1e-12, p.Location.String())
			assert.Equal(t, w, p.Point.Window)
		}
	})

	t.Run("two stiffeners", func(t *testing.T) {
		pts := CriticalPoints(boxParams(2), w)
		assert.InDelta(t, 1.0/3, pts[0].Point.X, 1e-12)
		assert.InDelta(t, 1.2-0.4, pts[1].Point.Y, 1e-12)
		assert.InDelta(t, 0.5, pts[2].Point.X, 1e-12)
		assert.InDelta(t, 1.2-0.6, pts[3].Point.Y, 1e-12)
	})

	t.Run("reducers", func(t *testing.T) {
		for _, p := range CriticalPoints(boxParams(3), w) {
			switch p.Location {
			case FlangeStiffenerRoot, WebStiffenerRoot:
				assert.Equal(t, stress.Max, p.Reducer)
			default:
				assert.Equal(t, stress.Mean, p.Reducer)
			}
		}
	})
}

func TestDefaultWindow(t *testing.T) {
	w := DefaultWindow(boxParams(3), section.MeshFine)
	assert.InDelta(t, 0.08, w.DX, 1e-12)
	assert.Equal(t, w.DX, w.DY)
}

func TestRun_Passes(t *testing.T) {
	in := input(3, solver.LoadCase{Name: "SLS", Mx: 1e6, Vy: 1e5, Mzz: 5e4})

	res, err := Run(in, solver.ThinWalled{}, Options{})
	require.NoError(t, err)

	assert.True(t, res.Passed, res.Message)
	assert.Equal(t, "SLS", res.Governing)
	assert.InDelta(t, 0.9*350e6, res.Capacity, 1e-3)
	assert.Equal(t, "2017", res.Edition.Name)
	assert.Positive(t, res.Nodes)

	require.Len(t, res.Cases, 1)
	cr := res.Cases[0]
	require.Len(t, cr.Points, 4)
	for _, p := range cr.Points {
		assert.Positive(t, p.Normal, p.Location.String())
		assert.InDelta(t, Combined(p.Normal, p.Torsion+p.Shear), p.Combined, 1e-6)
		assert.LessOrEqual(t, p.Combined, cr.MaxCombined)
	}
	assert.InDelta(t, cr.MaxCombined/res.Capacity, cr.YieldUtilisation, 1e-12)

	assert.Equal(t, 1.0, res.FlangePanel.K, "stocky flange panel")
	assert.InDelta(t, 0.25, res.FlangePanel.BPanel, 1e-12)
	assert.InDelta(t, 0.3, res.WebPanel.BPanel, 1e-12)
	assert.Equal(t, 0.012, res.WebPanel.Thickness)

	for _, p := range cr.Points {
		if p.Location == FlangeMidPanel {
			assert.InDelta(t, p.Normal/(res.FlangePanel.K*res.Capacity), cr.FlangeBucklingUtilisation, 1e-12)
		}
		if p.Location == WebMidPanel {
			assert.InDelta(t, p.Normal/(res.WebPanel.K*res.Capacity), cr.WebBucklingUtilisation, 1e-12)
		}
	}
}

func TestRun_FailsAndPicksGoverningCase(t *testing.T) {
	in := input(2,
		solver.LoadCase{Name: "SLS", Mx: 1e6},
		solver.LoadCase{Name: "ULS", Mx: 1e8},
	)

	res, err := Run(in, solver.ThinWalled{}, Options{})
	require.NoError(t, err)

	assert.False(t, res.Passed)
	assert.Equal(t, "ULS", res.Governing)
	require.Len(t, res.Cases, 2)
	assert.True(t, res.Cases[0].Passed)
	assert.False(t, res.Cases[1].Passed)
	assert.Greater(t, res.Cases[1].YieldUtilisation, 1.0)
	assert.Contains(t, res.Message, "NOT adequate")
}

func TestRun_PropagatesSolverError(t *testing.T) {
	boom := &solver.Failure{Err: errors.New("mesh generation failed")}
	fake := &fakeSolver{err: boom}

	res, err := Run(input(3, solver.LoadCase{Name: "ULS", Mx: 1}), fake, Options{})
	assert.Nil(t, res)
	assert.Same(t, boom, err)
	assert.Equal(t, 1, fake.calls)
}

func TestRun_ConfigurationErrorBeforeSolve(t *testing.T) {
	for _, n := range []int{1, 4} {
		fake := &fakeSolver{}
		_, err := Run(input(n, solver.LoadCase{Name: "ULS"}), fake, Options{})

		var cfg *as5100.ConfigurationError
		require.ErrorAs(t, err, &cfg)
		assert.Equal(t, n, cfg.Value)
		assert.Zero(t, fake.calls)
	}
}

func TestRun_InvalidInputBeforeSolve(t *testing.T) {
	tests := []struct {
		name   string
		modify func(*Input)
	}{
		{"geometry", func(in *Input) { in.Section.Depth = 0.01 }},
		{"fy", func(in *Input) { in.Fy = 0 }},
		{"a panel", func(in *Input) { in.APanel = -1 }},
		{"window", func(in *Input) { in.Window = -0.1 }},
		{"no loads", func(in *Input) { in.Loads = nil }},
		{"edition", func(in *Input) { in.Edition = "1992" }},
		{"mesh", func(in *Input) { in.Mesh = "medium" }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			in := input(3, solver.LoadCase{Name: "ULS", Mx: 1})
			tt.modify(&in)
			fake := &fakeSolver{}

			_, err := Run(in, fake, Options{})
			assert.Error(t, err)
			assert.Zero(t, fake.calls)
		})
	}
}

func TestRun_EmptyWindow(t *testing.T) {
	in := input(3, solver.LoadCase{Name: "ULS", Mx: 1e6})
	in.Window = 1e-6

	_, err := Run(in, solver.ThinWalled{}, Options{})
	var empty *stress.EmptySampleError
	assert.ErrorAs(t, err, &empty)
}

func TestRun_WindowOverride(t *testing.T) {
	in := input(3, solver.LoadCase{Name: "ULS", Mx: 1e6})
	in.Window = 0.1

	res, err := Run(in, solver.ThinWalled{}, Options{})
	require.NoError(t, err)
	assert.Equal(t, stress.Window{DX: 0.1, DY: 0.1}, res.Window)
}

func TestRun_BadCurves(t *testing.T) {
	set := curve.Default()
	set.Curve3.Points = set.Curve3.Points[:1]

	fake := &fakeSolver{}
	_, err := Run(input(3, solver.LoadCase{Name: "ULS"}), fake, Options{Curves: &set})
	var te *curve.TableError
	assert.ErrorAs(t, err, &te)
	assert.Zero(t, fake.calls)
}

func TestCombined(t *testing.T) {
	assert.Equal(t, 100.0, Combined(100, 0))
	assert.InDelta(t, 173.2050807568877, Combined(0, 100), 1e-9)
	assert.InDelta(t, 200.0, Combined(100, 100), 1e-9)
}

func TestLoadInput(t *testing.T) {
	path := filepath.Join(t.TempDir(), "check.yaml")
	doc := `section:
  name: G1
  b: 1.0
  d: 1.2
  t_w: 0.012
  t_f: 0.016
  d_stif: 0.15
  t_stif: 0.012
  n_stif: 3
fy: 350e6
a_panel: 2.0
mesh: coarse
loads:
  - {name: ULS, mx: 5.0e6, vy: 1.0e6, mzz: 2.0e5}
  - {name: SLS, mx: 3.0e6}
`
	require.NoError(t, os.WriteFile(path, []byte(doc), 0o644))

	in, err := LoadInput(path)
	require.NoError(t, err)
	assert.Equal(t, "G1", in.Section.Name)
	assert.Equal(t, 3, in.Section.Stiffeners)
	assert.Equal(t, 350e6, in.Fy)
	assert.Equal(t, "coarse", in.Mesh)
	require.Len(t, in.Loads, 2)
	assert.Equal(t, solver.LoadCase{Name: "ULS", Mx: 5e6, Vy: 1e6, Mzz: 2e5}, in.Loads[0])

	bad := filepath.Join(t.TempDir(), "bad.yaml")
	require.NoError(t, os.WriteFile(bad, []byte("fy: 0\na_panel: 1\n"), 0o644))
	_, err = LoadInput(bad)
	assert.Error(t, err)

	_, err = LoadInput(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}

func TestInput_LoadCasesFromActions(t *testing.T) {
	in := input(3, solver.LoadCase{Name: "EXTRA", Mx: 1})
	in.Actions = &as5100.Actions{
		Permanent: as5100.Effects{Mx: 1e6},
		Traffic:   as5100.Effects{Mx: 2e6, Vy: 5e5},
	}

	loads, err := in.LoadCases()
	require.NoError(t, err)
	require.Len(t, loads, 1+len(as5100.Combinations))
	assert.Equal(t, "EXTRA", loads[0].Name)
	assert.Equal(t, "ULS1", loads[1].Name)
	assert.InDelta(t, 1.1e6+1.8*2e6, loads[1].Mx, 1e-6)

	in.Combinations = []string{"SLS1"}
	loads, err = in.LoadCases()
	require.NoError(t, err)
	require.Len(t, loads, 2)
	assert.Equal(t, solver.LoadCase{Name: "SLS1", Mx: 3e6, Vy: 5e5}, loads[1])

	res, err := Run(in, solver.ThinWalled{}, Options{})
	require.NoError(t, err)
	require.Len(t, res.Cases, 2)
	assert.Equal(t, "SLS1", res.Governing)

	in.Combinations = []string{"ULS9"}
	_, err = in.LoadCases()
	assert.ErrorContains(t, err, "ULS9")
}
