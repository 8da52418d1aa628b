package as5100

import (
	"fmt"
	"math"
	"sort"
	"strings"
)

// AS5100.6 steel constants (SI units)

const (
	// ReferenceYield is the yield strength used to non-dimensionalise panel
	// slenderness in Section 7.3 (Pa)
	ReferenceYield = 355e6

	// PhiSteel is the capacity factor for yielding of stiffened plate
	// panels (Section 3.2)
	PhiSteel = 0.90

	// Es is the modulus of elasticity for structural steel (Pa)
	Es = 200e9

	// Longitudinal stiffeners per flange or web face the design curves
	// are calibrated for
	MinStiffeners = 2
	MaxStiffeners = 3
)

// Edition describes one edition of AS5100.6 and the constants that differ
// between editions.
type Edition struct {
	Name           string
	Description    string
	ReferenceYield float64 // Pa
	Phi            float64
}

// Editions available for design checks
var Editions = []Edition{
	{
		Name:           "2004",
		Description:    "AS5100.6-2004 Bridge design - Steel and composite construction",
		ReferenceYield: ReferenceYield,
		Phi:            PhiSteel,
	},
	{
		Name:           "2017",
		Description:    "AS5100.6-2017 Bridge design - Steel and composite construction",
		ReferenceYield: ReferenceYield,
		Phi:            PhiSteel,
	},
}

// DefaultEdition is used when no edition is selected
const DefaultEdition = "2017"

// Lookup finds an edition by name ("2004", "AS5100.6-2017", ...)
func Lookup(name string) (Edition, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		name = DefaultEdition
	}
	for _, e := range Editions {
		if name == e.Name || strings.HasSuffix(name, "-"+e.Name) {
			return e, nil
		}
	}

	names := make([]string, 0, len(Editions))
	for _, e := range Editions {
		names = append(names, e.Name)
	}
	sort.Strings(names)
	return Edition{}, fmt.Errorf("unknown AS5100.6 edition %q (available: %s)", name, strings.Join(names, ", "))
}

// SlendernessFactor returns √(fy / fref), the yield scaling applied to b/t
func SlendernessFactor(fy, fref float64) float64 {
	return math.Sqrt(fy / fref)
}

// YieldCapacity returns φ·fy
func (e Edition) YieldCapacity(fy float64) float64 {
	return e.Phi * fy
}
