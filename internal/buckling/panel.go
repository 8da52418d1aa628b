package buckling

import (
	"fmt"

	"github.com/alexiusacademia/gobox/internal/as5100"
	"github.com/alexiusacademia/gobox/internal/curve"
)

// Evaluator computes the governing buckling coefficient of a stiffened
// panel from the design curves
type Evaluator struct {
	// ReferenceYield non-dimensionalises slenderness (Pa)
	ReferenceYield float64
	Curves         curve.Set
}

// NewEvaluator creates an evaluator for an edition and a curve set
func NewEvaluator(ed as5100.Edition, curves curve.Set) (*Evaluator, error) {
	if !(ed.ReferenceYield > 0) {
		return nil, fmt.Errorf("edition %s: reference yield must be positive", ed.Name)
	}
	if err := curves.Validate(); err != nil {
		return nil, err
	}
	return &Evaluator{ReferenceYield: ed.ReferenceYield, Curves: curves}, nil
}

// Default returns an evaluator with the 355 MPa reference yield and the
// tabulated curves
func Default() *Evaluator {
	return &Evaluator{ReferenceYield: as5100.ReferenceYield, Curves: curve.Default()}
}

// Governing identifies which curve(s) supplied the coefficient
type Governing int

const (
	ByCurve1      Governing = iota + 1 // longitudinal, Curve 1
	ByCurve1And2                       // longitudinal, mean of Curves 1 and 2
	ByCurve3                           // transverse, Curve 3
)

func (g Governing) String() string {
	switch g {
	case ByCurve1:
		return "Curve 1 (λb)"
	case ByCurve1And2:
		return "mean of Curves 1 and 2 (λb)"
	case ByCurve3:
		return "Curve 3 (λa)"
	}
	return fmt.Sprintf("Governing(%d)", int(g))
}

// Curves returns the ids of the curves behind the governing value
func (g Governing) Curves() []curve.ID {
	switch g {
	case ByCurve1:
		return []curve.ID{curve.Curve1}
	case ByCurve1And2:
		return []curve.ID{curve.Curve1, curve.Curve2}
	case ByCurve3:
		return []curve.ID{curve.Curve3}
	}
	return nil
}

// Result holds the buckling evaluation of one panel
type Result struct {
	Stiffeners int

	// Panel input
	APanel    float64 // transverse stiffener spacing (m)
	BPanel    float64 // longitudinal stiffener spacing (m)
	Thickness float64 // plate thickness (m)
	Fy        float64 // Pa

	// Slenderness
	LambdaA float64 // a/t·√(fy/fref), transverse direction
	LambdaB float64 // b/t·√(fy/fref), longitudinal direction

	// Curve values (each capped at 1.0)
	K1 float64 // Curve 1 at λb
	K2 float64 // Curve 2 at λb
	K3 float64 // Curve 3 at λa

	// Governing coefficient
	K         float64
	Governing Governing
}

// Evaluate computes both slenderness ratios, reads the curves and applies
// the stiffener-count rule:
//
//	n = 3: K = max(K1(λb), K3(λa))
//	n = 2: K = max((K1(λb)+K2(λb))/2, K3(λa))
//
// Other stiffener counts return *as5100.ConfigurationError.
func (e *Evaluator) Evaluate(n int, aPanel, bPanel, t, fy float64) (*Result, error) {
	if err := as5100.CheckStiffenerCount(n); err != nil {
		return nil, err
	}
	if !(aPanel > 0) || !(bPanel > 0) || !(t > 0) || !(fy > 0) {
		return nil, fmt.Errorf("invalid panel: a=%g, b=%g, t=%g, fy=%g (all must be positive)", aPanel, bPanel, t, fy)
	}

	scale := as5100.SlendernessFactor(fy, e.ReferenceYield)
	result := &Result{
		Stiffeners: n,
		APanel:     aPanel,
		BPanel:     bPanel,
		Thickness:  t,
		Fy:         fy,
		LambdaA:    aPanel / t * scale,
		LambdaB:    bPanel / t * scale,
	}

	result.K1 = e.Curves.Curve1.At(result.LambdaB)
	result.K2 = e.Curves.Curve2.At(result.LambdaB)
	result.K3 = e.Curves.Curve3.At(result.LambdaA)

	longitudinal, tag := result.K1, ByCurve1
	if n == 2 {
		longitudinal, tag = (result.K1+result.K2)/2, ByCurve1And2
	}

	if longitudinal >= result.K3 {
		result.K, result.Governing = longitudinal, tag
	} else {
		result.K, result.Governing = result.K3, ByCurve3
	}

	return result, nil
}
