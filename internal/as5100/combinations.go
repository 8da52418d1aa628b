package as5100

import "math"

// Effects are the action effects at the checked section
type Effects struct {
	Mx  float64 `yaml:"mx"`  // bending moment (N·m)
	Vy  float64 `yaml:"vy"`  // vertical shear (N)
	Mzz float64 `yaml:"mzz"` // torque (N·m)
}

// Add returns e + f·o
func (e Effects) Add(f float64, o Effects) Effects {
	return Effects{Mx: e.Mx + f*o.Mx, Vy: e.Vy + f*o.Vy, Mzz: e.Mzz + f*o.Mzz}
}

// Actions holds unfactored action effects by action type
type Actions struct {
	Permanent    Effects `yaml:"g"`  // steel self weight
	Superimposed Effects `yaml:"gs"` // superimposed dead load
	Traffic      Effects `yaml:"q"`  // road traffic
	Wind         Effects `yaml:"w"`
}

// Combination represents a load combination of the bridge actions
type Combination struct {
	ID          string
	Description string
	Ultimate    bool

	// Load factors for each action type
	Permanent    float64 // G
	Superimposed float64 // Gs
	Traffic      float64 // Q
	Wind         float64 // W
}

// Combinations used for box girder checks. The relieving permanent
// factors are used where dead load reduces the traffic effect.
var Combinations = []Combination{
	{
		ID:           "ULS1",
		Description:  "1.1G + 2.0Gs + 1.8Q",
		Ultimate:     true,
		Permanent:    1.1,
		Superimposed: 2.0,
		Traffic:      1.8,
	},
	{
		ID:           "ULS2",
		Description:  "0.9G + 0.7Gs + 1.8Q",
		Ultimate:     true,
		Permanent:    0.9,
		Superimposed: 0.7,
		Traffic:      1.8,
	},
	{
		ID:           "ULS3",
		Description:  "1.1G + 2.0Gs + 1.0W",
		Ultimate:     true,
		Permanent:    1.1,
		Superimposed: 2.0,
		Wind:         1.0,
	},
	{
		ID:           "SLS1",
		Description:  "1.0G + 1.0Gs + 1.0Q",
		Permanent:    1.0,
		Superimposed: 1.0,
		Traffic:      1.0,
	},
}

// Apply returns the factored effects of the combination
func (c Combination) Apply(a Actions) Effects {
	return Effects{}.
		Add(c.Permanent, a.Permanent).
		Add(c.Superimposed, a.Superimposed).
		Add(c.Traffic, a.Traffic).
		Add(c.Wind, a.Wind)
}

// Governing finds the ultimate combination with the largest |Mx|
func Governing(a Actions, combinations []Combination) (Effects, Combination) {
	var maxEffects Effects
	var governing Combination

	for _, c := range combinations {
		if !c.Ultimate {
			continue
		}
		e := c.Apply(a)
		if governing.ID == "" || math.Abs(e.Mx) > math.Abs(maxEffects.Mx) {
			maxEffects = e
			governing = c
		}
	}

	return maxEffects, governing
}
