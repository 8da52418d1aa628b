package cmd

import (
	"github.com/alexiusacademia/gobox/internal/section"
	"github.com/spf13/cobra"
)

// geometryFlags holds box section inputs given on the command line (mm)
type geometryFlags struct {
	name       string
	width      float64
	depth      float64
	web        float64
	flange     float64
	stiffDepth float64
	stiffThick float64
	stiffeners int
}

func (g *geometryFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVar(&g.name, "name", "", "Section name")
	cmd.Flags().Float64VarP(&g.width, "width", "b", 0, "Overall box width b (mm)")
	cmd.Flags().Float64VarP(&g.depth, "depth", "d", 0, "Overall box depth d (mm)")
	cmd.Flags().Float64Var(&g.web, "tw", 0, "Web thickness t_w (mm)")
	cmd.Flags().Float64Var(&g.flange, "tf", 0, "Flange thickness t_f (mm)")
	cmd.Flags().Float64Var(&g.stiffDepth, "dstif", 0, "Stiffener outstand d_stif (mm)")
	cmd.Flags().Float64Var(&g.stiffThick, "tstif", 0, "Stiffener thickness t_stif (mm)")
	cmd.Flags().IntVarP(&g.stiffeners, "stiffeners", "n", 3, "Stiffeners per stiffened face n_stif (2 or 3)")
}

// params converts the flag values to SI units
func (g *geometryFlags) params() section.Params {
	return section.Params{
		Name:               g.name,
		Width:              g.width / 1000,
		Depth:              g.depth / 1000,
		WebThickness:       g.web / 1000,
		FlangeThickness:    g.flange / 1000,
		StiffenerDepth:     g.stiffDepth / 1000,
		StiffenerThickness: g.stiffThick / 1000,
		Stiffeners:         g.stiffeners,
	}
}

// meshName returns the flag value, falling back to GOBOX_MESH
func meshName(flag string) string {
	if flag != "" {
		return flag
	}
	return cfg.Mesh()
}
