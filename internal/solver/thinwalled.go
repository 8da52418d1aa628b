package solver

import (
	"fmt"
	"math"

	"github.com/alexiusacademia/gobox/internal/section"
	"github.com/alexiusacademia/gobox/internal/stress"
)

// DefaultMaxNodes bounds the size of a ThinWalled mesh
const DefaultMaxNodes = 500000

// ThinWalled is a reference solver based on elastic thin-walled beam
// theory. Each plate is meshed as a structured node grid with spacing no
// larger than its mesh hint, edges included.
//
//	sig_zz      = Mx·(y−ȳ)/Ixx
//	sig_zxy_mzz = Mzz/(2·A0·t)              flanges and webs (Bredt)
//	sig_zxy_vy  = Vy·Q(y)/(2·Ixx·t_w)       webs
//	            = Vy·|x−x̄|·|y_f−ȳ|/Ixx      flanges
//	sig_zxy     = |sig_zxy_mzz| + |sig_zxy_vy|
//
// Stiffeners are open outstands and carry no shear in this model.
type ThinWalled struct {
	// MaxNodes limits the total node count (DefaultMaxNodes when zero)
	MaxNodes int
}

// Solve implements Solver
func (s ThinWalled) Solve(cs *section.CrossSection, hints []section.MeshHint, loads []LoadCase) (*stress.StressField, error) {
	if cs == nil {
		return nil, &Failure{fmt.Errorf("no cross-section")}
	}
	if err := CheckLoads(loads); err != nil {
		return nil, &Failure{err}
	}
	plates := cs.Plates()
	if len(hints) != len(plates) {
		return nil, &Failure{fmt.Errorf("%d mesh hints for %d plates", len(hints), len(plates))}
	}

	props := cs.Properties()
	if !(props.Ixx > 0) || !(props.EnclosedArea > 0) {
		return nil, &Failure{fmt.Errorf("degenerate section properties (Ixx=%g, A0=%g)", props.Ixx, props.EnclosedArea)}
	}

	limit := s.MaxNodes
	if limit <= 0 {
		limit = DefaultMaxNodes
	}

	var nodes []stress.Node
	var owner []int
	for i, pl := range plates {
		if !(hints[i].Size > 0) {
			return nil, &Failure{fmt.Errorf("mesh hint for %s must be positive", pl.Name)}
		}
		nx := divisions(pl.Width, hints[i].Size)
		ny := divisions(pl.Height, hints[i].Size)
		if len(nodes)+(nx+1)*(ny+1) > limit {
			return nil, &Failure{fmt.Errorf("mesh exceeds %d nodes at %s", limit, pl.Name)}
		}
		for iy := 0; iy <= ny; iy++ {
			y := pl.Y + pl.Height*float64(iy)/float64(ny)
			for ix := 0; ix <= nx; ix++ {
				x := pl.X + pl.Width*float64(ix)/float64(nx)
				nodes = append(nodes, stress.Node{X: x, Y: y})
				owner = append(owner, i)
			}
		}
	}

	field := &stress.StressField{
		Nodes: nodes,
		Cases: make(map[string]stress.Components, len(loads)),
	}

	for _, lc := range loads {
		zz := make([]float64, len(nodes))
		tor := make([]float64, len(nodes))
		shr := make([]float64, len(nodes))
		res := make([]float64, len(nodes))

		for k, n := range nodes {
			pl := plates[owner[k]]
			zz[k] = lc.Mx * (n.Y - props.CentroidY) / props.Ixx

			if t := cs.WallThickness(pl.Role); t > 0 {
				tor[k] = lc.Mzz / (2 * props.EnclosedArea * t)
			}

			switch pl.Role {
			case section.LeftWeb, section.RightWeb:
				shr[k] = lc.Vy * cs.FirstMomentAbove(n.Y) / (2 * props.Ixx * pl.Width)
			case section.TopFlange, section.BottomFlange:
				yf := pl.Centroid().Y
				shr[k] = lc.Vy * math.Abs(n.X-props.CentroidX) * math.Abs(yf-props.CentroidY) / props.Ixx
			}

			res[k] = math.Abs(tor[k]) + math.Abs(shr[k])
		}

		field.Cases[lc.Name] = stress.Components{
			stress.SigZZ:         zz,
			stress.SigZXYTorsion: tor,
			stress.SigZXYShear:   shr,
			stress.SigZXY:        res,
		}
	}

	return field, nil
}

// divisions returns the number of grid intervals along a length so that
// the spacing does not exceed size
func divisions(length, size float64) int {
	n := int(math.Ceil(length/size - 1e-9))
	if n < 1 {
		n = 1
	}
	return n
}
