package cmd

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/alexiusacademia/gobox/internal/curve"
	"github.com/alexiusacademia/gobox/internal/diagram"
	"github.com/spf13/cobra"
)

var (
	curvesShowTable  bool
	curvesWidth      int
	curvesHeight     int
	curvesExportFile string
)

var curvesCmd = &cobra.Command{
	Use:   "curves",
	Short: "Show the stiffened panel buckling design curves",
	Long: `Plot the three AS5100.6 stiffened panel design curves.

  Curve 1  longitudinal direction, three stiffeners
  Curve 2  longitudinal direction, lower bound for two stiffeners
  Curve 3  transverse direction

The curves are piecewise linear over slenderness 0 to 250 and are
clamped at both ends.

Examples:
  gobox curves
  gobox curves --table
  gobox curves -o curves.png`,
	Run: runCurves,
}

func init() {
	rootCmd.AddCommand(curvesCmd)

	curvesCmd.Flags().BoolVar(&curvesShowTable, "table", false, "Print the tabulated points")
	curvesCmd.Flags().IntVar(&curvesWidth, "width", 70, "Chart width (characters)")
	curvesCmd.Flags().IntVar(&curvesHeight, "height", 15, "Chart height (lines)")
	curvesCmd.Flags().StringVarP(&curvesExportFile, "output", "o", "", "Export curves to file (png, svg, pdf)")
}

func runCurves(cmd *cobra.Command, args []string) {
	set := curve.Default()
	if err := set.Validate(); err != nil {
		fmt.Printf("Error: %v\n", err)
		return
	}

	fmt.Println()
	fmt.Println("═══════════════════════════════════════════════════════════════")
	fmt.Println("     STIFFENED PANEL DESIGN CURVES - AS5100.6")
	fmt.Println("═══════════════════════════════════════════════════════════════")
	fmt.Print(diagram.DrawCurvesASCII(set, curvesWidth, curvesHeight))
	fmt.Println()

	if curvesShowTable {
		for _, c := range set.All() {
			fmt.Printf("%s:\n", c.Name)
			fmt.Println("───────────────────────────────────────────────────────────────")
			w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
			fmt.Fprintf(w, "  λ\tK\n")
			for _, p := range c.Points {
				fmt.Fprintf(w, "  %.0f\t%.3f\n", p.X, p.Y)
			}
			w.Flush()
			fmt.Println()
		}
	}

	if curvesExportFile != "" {
		if err := diagram.ExportCurves(set, nil, curvesExportFile); err != nil {
			fmt.Printf("Error exporting diagram: %v\n", err)
		} else {
			fmt.Printf("  Curves exported to: %s\n", curvesExportFile)
			fmt.Println()
		}
	}
}
