// Package check runs the full design check of a stiffened box section:
// build the geometry, solve the stress field, sample the critical points
// and compare the demand with the yield and panel buckling capacities.
package check

import (
	"fmt"
	"math"

	"github.com/alexiusacademia/gobox/internal/as5100"
	"github.com/alexiusacademia/gobox/internal/buckling"
	"github.com/alexiusacademia/gobox/internal/curve"
	"github.com/alexiusacademia/gobox/internal/section"
	"github.com/alexiusacademia/gobox/internal/solver"
	"github.com/alexiusacademia/gobox/internal/stress"
)

// PointStress holds the stresses sampled at one critical point
type PointStress struct {
	Target
	Normal   float64 // |sig_zz|
	Torsion  float64 // |sig_zxy_mzz|
	Shear    float64 // |sig_zxy_vy|
	Combined float64 // sqrt(σ² + 3τ²), τ = torsion + shear
}

// CaseResult is the outcome of one load case
type CaseResult struct {
	Name   string
	Points []PointStress

	MaxCombined      float64
	Governing        Location // point with the largest combined stress
	YieldUtilisation float64  // MaxCombined / (φ·fy)

	FlangeBucklingUtilisation float64 // flange mid-panel σ / (K·φ·fy)
	WebBucklingUtilisation    float64 // web mid-panel σ / (K·φ·fy)

	Passed bool
}

// Utilisation returns the largest of the yield and buckling utilisations
func (c CaseResult) Utilisation() float64 {
	return math.Max(c.YieldUtilisation, math.Max(c.FlangeBucklingUtilisation, c.WebBucklingUtilisation))
}

// Result is the outcome of a design check
type Result struct {
	Section    section.Params
	Properties section.Properties
	Edition    as5100.Edition
	Window     stress.Window
	Nodes      int

	Fy       float64
	Capacity float64 // φ·fy

	FlangePanel *buckling.Result
	WebPanel    *buckling.Result

	Cases     []CaseResult
	Governing string // load case with the largest utilisation

	Passed  bool
	Message string
}

// Options controls the pieces of a check that do not come from the input
// file. Zero values select the defaults.
type Options struct {
	Curves *curve.Set // design curves, curve.Default() when nil
}

// Run performs the design check with the given solver. Configuration and
// geometry errors are reported before the solver is called; solver errors
// are returned unchanged.
func Run(in Input, s solver.Solver, opts Options) (*Result, error) {
	ed, err := as5100.Lookup(in.Edition)
	if err != nil {
		return nil, err
	}
	mesh, err := section.ParseMesh(in.Mesh)
	if err != nil {
		return nil, err
	}

	cs, hints, err := section.Build(in.Section, mesh)
	if err != nil {
		return nil, err
	}
	if err := in.Validate(); err != nil {
		return nil, err
	}

	curves := curve.Default()
	if opts.Curves != nil {
		curves = *opts.Curves
	}
	ev, err := buckling.NewEvaluator(ed, curves)
	if err != nil {
		return nil, err
	}

	p := cs.Params()
	panels := float64(p.Stiffeners + 1)
	flange, err := ev.Evaluate(p.Stiffeners, in.APanel, p.Width/panels, p.FlangeThickness, in.Fy)
	if err != nil {
		return nil, fmt.Errorf("flange panel: %w", err)
	}
	web, err := ev.Evaluate(p.Stiffeners, in.APanel, p.Depth/panels, p.WebThickness, in.Fy)
	if err != nil {
		return nil, fmt.Errorf("web panel: %w", err)
	}

	loads, err := in.LoadCases()
	if err != nil {
		return nil, err
	}

	field, err := s.Solve(cs, hints, loads)
	if err != nil {
		return nil, err
	}
	if err := field.Validate(); err != nil {
		return nil, err
	}

	window := DefaultWindow(p, mesh)
	if in.Window > 0 {
		window = stress.Window{DX: in.Window, DY: in.Window}
	}
	targets := CriticalPoints(p, window)

	res := &Result{
		Section:     p,
		Properties:  cs.Properties(),
		Edition:     ed,
		Window:      window,
		Nodes:       len(field.Nodes),
		Fy:          in.Fy,
		Capacity:    ed.YieldCapacity(in.Fy),
		FlangePanel: flange,
		WebPanel:    web,
		Passed:      true,
	}

	worst := -1.0
	for _, lc := range loads {
		f, err := field.Case(lc.Name)
		if err != nil {
			return nil, err
		}
		cr, err := evaluateCase(lc.Name, f, targets, res)
		if err != nil {
			return nil, fmt.Errorf("load case %s: %w", lc.Name, err)
		}
		if u := cr.Utilisation(); u > worst {
			worst = u
			res.Governing = cr.Name
		}
		res.Passed = res.Passed && cr.Passed
		res.Cases = append(res.Cases, *cr)
	}

	if res.Passed {
		res.Message = fmt.Sprintf("Section is adequate (max utilisation %.3f under %s)", worst, res.Governing)
	} else {
		res.Message = fmt.Sprintf("Section is NOT adequate (utilisation %.3f under %s)", worst, res.Governing)
	}

	return res, nil
}

func evaluateCase(name string, f stress.Field, targets []Target, res *Result) (*CaseResult, error) {
	cr := &CaseResult{Name: name}

	for _, tg := range targets {
		ps := PointStress{Target: tg}
		var err error
		if ps.Normal, err = stress.Sample(tg.Point, f, stress.SigZZ, tg.Reducer); err != nil {
			return nil, err
		}
		if ps.Torsion, err = stress.Sample(tg.Point, f, stress.SigZXYTorsion, tg.Reducer); err != nil {
			return nil, err
		}
		if ps.Shear, err = stress.Sample(tg.Point, f, stress.SigZXYShear, tg.Reducer); err != nil {
			return nil, err
		}
		ps.Combined = Combined(ps.Normal, ps.Torsion+ps.Shear)

		if ps.Combined > cr.MaxCombined || cr.Governing == 0 {
			cr.MaxCombined = ps.Combined
			cr.Governing = tg.Location
		}

		switch tg.Location {
		case FlangeMidPanel:
			cr.FlangeBucklingUtilisation = ps.Normal / (res.FlangePanel.K * res.Capacity)
		case WebMidPanel:
			cr.WebBucklingUtilisation = ps.Normal / (res.WebPanel.K * res.Capacity)
		}

		cr.Points = append(cr.Points, ps)
	}

	cr.YieldUtilisation = cr.MaxCombined / res.Capacity
	cr.Passed = cr.YieldUtilisation <= 1 &&
		cr.FlangeBucklingUtilisation <= 1 &&
		cr.WebBucklingUtilisation <= 1

	return cr, nil
}

// Combined returns the von Mises equivalent of a normal and a shear stress
func Combined(sigma, tau float64) float64 {
	return math.Sqrt(sigma*sigma + 3*tau*tau)
}
