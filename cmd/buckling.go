package cmd

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/alexiusacademia/gobox/internal/as5100"
	"github.com/alexiusacademia/gobox/internal/buckling"
	"github.com/alexiusacademia/gobox/internal/curve"
	"github.com/alexiusacademia/gobox/internal/diagram"
	"github.com/alexiusacademia/gobox/internal/report"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	bucklingStiffeners int
	bucklingA          float64
	bucklingB          float64
	bucklingT          float64
	bucklingFy         float64
	bucklingEdition    string
	bucklingBatch      string
	bucklingResults    string
	bucklingExportFile string
)

var bucklingCmd = &cobra.Command{
	Use:   "buckling",
	Short: "Stiffened panel buckling coefficient",
	Long: `Calculate the buckling coefficient K of a longitudinally stiffened
panel from the AS5100.6 design curves.

  λa = (a/t)·√(fy/355)      transverse slenderness
  λb = (b/t)·√(fy/355)      longitudinal slenderness

  n = 3:  K = max(K1(λb), K3(λa))
  n = 2:  K = max((K1(λb) + K2(λb))/2, K3(λa))

A batch of panels can be read from the first sheet of an xlsx workbook
with the columns: name, n_stif, a_mm, b_mm, t_mm, fy_mpa

Examples:
  # Three stiffeners, a = 1000 mm, b = 500 mm, t = 12 mm, fy = 350 MPa
  gobox buckling -n 3 -a 1000 -b 500 -t 12 --fy 350

  # Batch evaluation with results written to a workbook
  gobox buckling --batch panels.xlsx --results panels-out.xlsx`,
	Run: runBuckling,
}

func init() {
	rootCmd.AddCommand(bucklingCmd)

	bucklingCmd.Flags().IntVarP(&bucklingStiffeners, "stiffeners", "n", 3, "Longitudinal stiffeners n_stif (2 or 3)")
	bucklingCmd.Flags().Float64VarP(&bucklingA, "length", "a", 0, "Panel length between transverse stiffeners a (mm)")
	bucklingCmd.Flags().Float64VarP(&bucklingB, "width", "b", 0, "Panel width between longitudinal stiffeners b (mm)")
	bucklingCmd.Flags().Float64VarP(&bucklingT, "thickness", "t", 0, "Plate thickness t (mm)")
	bucklingCmd.Flags().Float64Var(&bucklingFy, "fy", 350, "Steel yield strength fy (MPa)")
	bucklingCmd.Flags().StringVar(&bucklingEdition, "edition", "", "AS5100.6 edition: 2004 or 2017 (env GOBOX_EDITION)")

	bucklingCmd.Flags().StringVar(&bucklingBatch, "batch", "", "Read panels from an xlsx workbook")
	bucklingCmd.Flags().StringVar(&bucklingResults, "results", "", "Write batch results to an xlsx workbook")
	bucklingCmd.Flags().StringVarP(&bucklingExportFile, "output", "o", "", "Export curves with the evaluated points (png, svg, pdf)")
}

func newEvaluator(edition string) (*buckling.Evaluator, as5100.Edition, error) {
	if edition == "" {
		edition = cfg.Edition()
	}
	ed, err := as5100.Lookup(edition)
	if err != nil {
		return nil, ed, err
	}
	ev, err := buckling.NewEvaluator(ed, curve.Default())
	return ev, ed, err
}

func runBuckling(cmd *cobra.Command, args []string) {
	ev, ed, err := newEvaluator(bucklingEdition)
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		return
	}

	if bucklingBatch != "" {
		runBucklingBatch(ev)
		return
	}

	r, err := ev.Evaluate(bucklingStiffeners, bucklingA/1000, bucklingB/1000, bucklingT/1000, bucklingFy*1e6)
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		return
	}
	logger.Debug("panel evaluated", zap.Float64("K", r.K), zap.Stringer("governing", r.Governing))

	fmt.Println()
	fmt.Println("═══════════════════════════════════════════════════════════════")
	fmt.Println("     STIFFENED PANEL BUCKLING - AS5100.6-" + ed.Name)
	fmt.Println("═══════════════════════════════════════════════════════════════")
	fmt.Println()

	fmt.Println("INPUT DATA:")
	fmt.Println("───────────────────────────────────────────────────────────────")
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "  Stiffeners (n_stif):\t%d\n", r.Stiffeners)
	fmt.Fprintf(w, "  Panel length (a):\t%.1f mm\n", r.APanel*1000)
	fmt.Fprintf(w, "  Panel width (b):\t%.1f mm\n", r.BPanel*1000)
	fmt.Fprintf(w, "  Thickness (t):\t%.1f mm\n", r.Thickness*1000)
	fmt.Fprintf(w, "  fy:\t%.1f MPa\n", r.Fy/1e6)
	w.Flush()
	fmt.Println()

	printPanel(r)

	fmt.Print(diagram.DrawSummaryBox("BUCKLING COEFFICIENT", []string{
		fmt.Sprintf("K = %.4f", r.K),
		fmt.Sprintf("Governed by %s", r.Governing),
		fmt.Sprintf("Buckling stress K·φ·fy = %.1f MPa", r.K*ed.YieldCapacity(r.Fy)/1e6),
	}))
	fmt.Println()

	if bucklingExportFile != "" {
		if err := diagram.ExportCurves(ev.Curves, diagram.PanelMarkers("", r), bucklingExportFile); err != nil {
			fmt.Printf("Error exporting diagram: %v\n", err)
		} else {
			fmt.Printf("  Curves exported to: %s\n", bucklingExportFile)
			fmt.Println()
		}
	}
}

func printPanel(r *buckling.Result) {
	fmt.Println("SLENDERNESS AND COEFFICIENTS:")
	fmt.Println("───────────────────────────────────────────────────────────────")
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "  λa (transverse):\t%.2f\n", r.LambdaA)
	fmt.Fprintf(w, "  λb (longitudinal):\t%.2f\n", r.LambdaB)
	fmt.Fprintf(w, "  K1(λb):\t%.4f\n", r.K1)
	fmt.Fprintf(w, "  K2(λb):\t%.4f\n", r.K2)
	fmt.Fprintf(w, "  K3(λa):\t%.4f\n", r.K3)
	w.Flush()
	fmt.Println()
}

func runBucklingBatch(ev *buckling.Evaluator) {
	f, err := os.Open(bucklingBatch)
	if err != nil {
		fmt.Printf("Error opening batch: %v\n", err)
		return
	}
	defer f.Close()

	panels, err := report.ReadPanels(f)
	if err != nil {
		fmt.Printf("Error reading batch: %v\n", err)
		return
	}
	logger.Info("batch loaded", zap.String("file", bucklingBatch), zap.Int("panels", len(panels)))

	results := make([]report.PanelResult, len(panels))
	for i, p := range panels {
		r, err := ev.Evaluate(p.Stiffeners, p.APanel, p.BPanel, p.Thickness, p.Fy)
		results[i] = report.PanelResult{Panel: p, Result: r, Err: err}
		if err != nil {
			logger.Warn("panel rejected", zap.String("panel", p.Name), zap.Int("row", p.Row), zap.Error(err))
		}
	}

	fmt.Println()
	fmt.Println("BATCH RESULTS:")
	fmt.Println("───────────────────────────────────────────────────────────────")
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "  Panel\tn\tλa\tλb\tK\tGoverning\n")
	fmt.Fprintf(w, "  ─────\t─\t──\t──\t─\t─────────\n")
	for _, pr := range results {
		if pr.Err != nil {
			fmt.Fprintf(w, "  %s\t%d\t-\t-\t-\t%v\n", pr.Name, pr.Stiffeners, pr.Err)
			continue
		}
		r := pr.Result
		fmt.Fprintf(w, "  %s\t%d\t%.2f\t%.2f\t%.4f\t%s\n", pr.Name, r.Stiffeners, r.LambdaA, r.LambdaB, r.K, r.Governing)
	}
	w.Flush()
	fmt.Println()

	if bucklingResults != "" {
		if err := report.WritePanelResults(results, bucklingResults); err != nil {
			fmt.Printf("Error writing results: %v\n", err)
			return
		}
		fmt.Printf("  Results written to: %s\n", bucklingResults)
		fmt.Println()
	}
}
