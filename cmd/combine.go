package cmd

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/alexiusacademia/gobox/internal/as5100"
	"github.com/spf13/cobra"
)

var (
	// Unfactored effects: moment (kN·m), shear (kN), torque (kN·m)
	combinePermanent    [3]float64
	combineSuperimposed [3]float64
	combineTraffic      [3]float64
	combineWind         [3]float64

	combineShowAll bool
)

var combineCmd = &cobra.Command{
	Use:   "combine",
	Short: "Factor action effects using the bridge load combinations",
	Long: `Calculate the factored section effects (Mx, Vy, Mzz) for the
load combinations used in the box girder check.

Action Types:
  G   - Steel self weight
  Gs  - Superimposed dead load
  Q   - Road traffic
  W   - Wind

Combinations:
  ULS1  1.1G + 2.0Gs + 1.8Q
  ULS2  0.9G + 0.7Gs + 1.8Q
  ULS3  1.1G + 2.0Gs + 1.0W
  SLS1  1.0G + 1.0Gs + 1.0Q

The same combinations are applied to the 'actions' block of a
'gobox check' input file.

Examples:
  # Permanent and traffic moments
  gobox combine --g-mx 3000 --q-mx 2500

  # With shear and torque, show all combinations
  gobox combine --g-mx 3000 --g-vy 800 --q-mx 2500 --q-vy 900 --q-mzz 400 --all`,
	Run: runCombine,
}

func init() {
	rootCmd.AddCommand(combineCmd)

	for _, a := range []struct {
		prefix, name string
		values       *[3]float64
	}{
		{"g", "steel self weight", &combinePermanent},
		{"gs", "superimposed dead load", &combineSuperimposed},
		{"q", "traffic", &combineTraffic},
		{"w", "wind", &combineWind},
	} {
		combineCmd.Flags().Float64Var(&a.values[0], a.prefix+"-mx", 0, "Moment due to "+a.name+" (kN·m)")
		combineCmd.Flags().Float64Var(&a.values[1], a.prefix+"-vy", 0, "Shear due to "+a.name+" (kN)")
		combineCmd.Flags().Float64Var(&a.values[2], a.prefix+"-mzz", 0, "Torque due to "+a.name+" (kN·m)")
	}

	combineCmd.Flags().BoolVarP(&combineShowAll, "all", "a", false, "Show all load combination results")
}

func combineEffects(v [3]float64) as5100.Effects {
	return as5100.Effects{Mx: v[0] * 1e3, Vy: v[1] * 1e3, Mzz: v[2] * 1e3}
}

func runCombine(cmd *cobra.Command, args []string) {
	actions := as5100.Actions{
		Permanent:    combineEffects(combinePermanent),
		Superimposed: combineEffects(combineSuperimposed),
		Traffic:      combineEffects(combineTraffic),
		Wind:         combineEffects(combineWind),
	}

	if actions == (as5100.Actions{}) {
		fmt.Println("Error: Please provide at least one unfactored action effect.")
		fmt.Println("Use 'gobox combine --help' for usage information.")
		return
	}

	fmt.Println()
	fmt.Println("═══════════════════════════════════════════════════════════════")
	fmt.Println("          FACTORED SECTION EFFECTS")
	fmt.Println("═══════════════════════════════════════════════════════════════")
	fmt.Println()

	fmt.Println("UNFACTORED EFFECTS:")
	fmt.Println("───────────────────────────────────────────────────────────────")
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "  Action\tMx (kN·m)\tVy (kN)\tMzz (kN·m)\n")
	fmt.Fprintf(w, "  ──────\t─────────\t───────\t──────────\n")
	for _, row := range []struct {
		name string
		e    as5100.Effects
	}{
		{"Self weight (G)", actions.Permanent},
		{"Superimposed (Gs)", actions.Superimposed},
		{"Traffic (Q)", actions.Traffic},
		{"Wind (W)", actions.Wind},
	} {
		if row.e != (as5100.Effects{}) {
			fmt.Fprintf(w, "  %s\t%.2f\t%.2f\t%.2f\n", row.name, row.e.Mx/1e3, row.e.Vy/1e3, row.e.Mzz/1e3)
		}
	}
	w.Flush()
	fmt.Println()

	governing, combo := as5100.Governing(actions, as5100.Combinations)

	if combineShowAll {
		fmt.Println("LOAD COMBINATIONS:")
		fmt.Println("───────────────────────────────────────────────────────────────")
		w = tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
		fmt.Fprintf(w, "  #\tCombination\tMx (kN·m)\tVy (kN)\tMzz (kN·m)\n")
		fmt.Fprintf(w, "  ─\t───────────\t─────────\t───────\t──────────\n")
		for _, c := range as5100.Combinations {
			e := c.Apply(actions)
			marker := ""
			if c.ID == combo.ID {
				marker = " ← GOVERNS"
			}
			fmt.Fprintf(w, "  %s\t%s\t%.2f\t%.2f\t%.2f%s\n", c.ID, c.Description, e.Mx/1e3, e.Vy/1e3, e.Mzz/1e3, marker)
		}
		w.Flush()
		fmt.Println()
	}

	fmt.Println("RESULT:")
	fmt.Println("───────────────────────────────────────────────────────────────")
	fmt.Printf("  Governing Combination: %s (%s)\n", combo.ID, combo.Description)
	fmt.Println()
	w = tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "  Mx*:\t%.2f kN·m\n", governing.Mx/1e3)
	fmt.Fprintf(w, "  Vy*:\t%.2f kN\n", governing.Vy/1e3)
	fmt.Fprintf(w, "  Mzz*:\t%.2f kN·m\n", governing.Mzz/1e3)
	w.Flush()
	fmt.Println()
}
