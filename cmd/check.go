package cmd

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"text/tabwriter"
	"time"

	"github.com/alexiusacademia/gobox/internal/as5100"
	"github.com/alexiusacademia/gobox/internal/check"
	"github.com/alexiusacademia/gobox/internal/diagram"
	"github.com/alexiusacademia/gobox/internal/report"
	"github.com/alexiusacademia/gobox/internal/section"
	"github.com/alexiusacademia/gobox/internal/solver"
	"github.com/alexiusacademia/gobox/internal/stress"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	checkFile     string
	checkGeometry geometryFlags
	checkFy       float64
	checkA        float64
	checkMx       float64
	checkVy       float64
	checkMzz      float64
	checkEdition  string
	checkMesh     string
	checkWindow   float64

	checkShowDiagram bool
	checkExportFile  string
	checkXLSX        string
	checkPDF         string
	checkProject     string
)

var checkCmd = &cobra.Command{
	Use:   "check",
	Short: "Design check of a stiffened box section",
	Long: `Run the full design check of a stiffened box section:

  1. Generate the plate layout and mesh size hints
  2. Solve the stress field for every load case
  3. Sample sig_zz, sig_zxy_mzz and sig_zxy_vy at the critical points
       flange-stiffener root (max)   flange mid-panel (mean)
       web-stiffener root (max)      web mid-panel (mean)
  4. Check f_comb = √(σ² + 3τ²) against φ·fy
  5. Check the flange and web panels for buckling (σ ≤ K·φ·fy)

Input is a YAML/JSON file (SI units):

  section: {name: G1, b: 1.0, d: 1.2, t_w: 0.012, t_f: 0.016,
            d_stif: 0.15, t_stif: 0.012, n_stif: 3}
  fy: 350e6
  a_panel: 2.0
  loads:
    - {name: ULS, mx: 5.0e6, vy: 1.0e6, mzz: 2.0e5}

Unfactored actions expand into one load case per combination
(see 'gobox combine'):

  actions:
    g: {mx: 3.0e6, vy: 8.0e5}
    q: {mx: 2.5e6, vy: 9.0e5, mzz: 4.0e5}
  combinations: [ULS1, SLS1]

or a single load case given with flags (mm, MPa, kN, kN·m).

Examples:
  gobox check --file g1.yaml --xlsx g1.xlsx --pdf g1.pdf
  gobox check -b 1000 -d 1200 --tw 12 --tf 16 --dstif 150 --tstif 12 -n 3 \
      --fy 350 -a 2000 --mx 5000 --vy 1000 --mzz 200`,
	Run: runCheck,
}

func init() {
	rootCmd.AddCommand(checkCmd)

	checkCmd.Flags().StringVarP(&checkFile, "file", "f", "", "Path to check input YAML/JSON file")
	checkGeometry.register(checkCmd)

	// Material and panel flags
	checkCmd.Flags().Float64Var(&checkFy, "fy", 350, "Steel yield strength fy (MPa)")
	checkCmd.Flags().Float64VarP(&checkA, "spacing", "a", 0, "Transverse stiffener spacing a (mm)")

	// Load flags
	checkCmd.Flags().Float64Var(&checkMx, "mx", 0, "Bending moment Mx (kN·m)")
	checkCmd.Flags().Float64Var(&checkVy, "vy", 0, "Vertical shear Vy (kN)")
	checkCmd.Flags().Float64Var(&checkMzz, "mzz", 0, "Torque Mzz (kN·m)")

	checkCmd.Flags().StringVar(&checkEdition, "edition", "", "AS5100.6 edition: 2004 or 2017 (env GOBOX_EDITION)")
	checkCmd.Flags().StringVar(&checkMesh, "mesh", "", "Mesh preset: fine or coarse (env GOBOX_MESH)")
	checkCmd.Flags().Float64Var(&checkWindow, "window", 0, "Sampling window half-width (mm), 0 = mesh size (env GOBOX_WINDOW, m)")

	// Output options
	checkCmd.Flags().BoolVar(&checkShowDiagram, "diagram", false, "Show utilisation bars")
	checkCmd.Flags().StringVarP(&checkExportFile, "output", "o", "", "Export section drawing with critical points (png, svg, pdf)")
	checkCmd.Flags().StringVar(&checkXLSX, "xlsx", "", "Write results to an xlsx workbook")
	checkCmd.Flags().StringVar(&checkPDF, "pdf", "", "Write a PDF calculation summary")
	checkCmd.Flags().StringVar(&checkProject, "project", "", "Project name for the PDF summary")
}

func checkInput() (*check.Input, error) {
	var in *check.Input
	if checkFile != "" {
		loaded, err := check.LoadInput(checkFile)
		if err != nil {
			return nil, err
		}
		in = loaded
	} else {
		in = &check.Input{
			Section: checkGeometry.params(),
			Fy:      checkFy * 1e6,
			APanel:  checkA / 1000,
			Loads: []solver.LoadCase{{
				Name: "LC1",
				Mx:   checkMx * 1e3,
				Vy:   checkVy * 1e3,
				Mzz:  checkMzz * 1e3,
			}},
		}
	}

	if checkEdition != "" {
		in.Edition = checkEdition
	} else if in.Edition == "" {
		in.Edition = cfg.Edition()
	}
	if checkMesh != "" || in.Mesh == "" {
		in.Mesh = meshName(checkMesh)
	}
	if checkWindow > 0 {
		in.Window = checkWindow / 1000
	} else if in.Window == 0 {
		in.Window = cfg.Window()
	}

	return in, nil
}

func runCheck(cmd *cobra.Command, args []string) {
	in, err := checkInput()
	if err != nil {
		fmt.Printf("Error loading input: %v\n", err)
		return
	}

	var s solver.Solver = solver.ThinWalled{}
	var cached *solver.Cached
	if cfg.Cache() {
		cached = solver.NewCached(s)
		s = cached
	}

	start := time.Now()
	res, err := check.Run(*in, s, check.Options{})
	if err != nil {
		logCheckError(err)
		fmt.Printf("Error running check: %v\n", err)
		return
	}
	logger.Info("check finished",
		zap.String("section", res.Section.Name),
		zap.Int("nodes", res.Nodes),
		zap.Int("load_cases", len(res.Cases)),
		zap.Bool("passed", res.Passed),
		zap.Duration("elapsed", time.Since(start)),
	)
	if cached != nil {
		hits, misses := cached.Stats()
		logger.Debug("solver cache", zap.Int("hits", hits), zap.Int("misses", misses))
	}

	printCheck(res)

	if checkShowDiagram {
		fmt.Println("UTILISATION:")
		fmt.Println("───────────────────────────────────────────────────────────────")
		for _, cr := range res.Cases {
			fmt.Printf("  %-8s yield    %s\n", cr.Name, diagram.DrawUtilisationBar(cr.YieldUtilisation, 30))
			fmt.Printf("  %-8s flange   %s\n", "", diagram.DrawUtilisationBar(cr.FlangeBucklingUtilisation, 30))
			fmt.Printf("  %-8s web      %s\n", "", diagram.DrawUtilisationBar(cr.WebBucklingUtilisation, 30))
		}
		fmt.Println()
	}

	exportCheck(res, in.Mesh)
}

// logCheckError logs the error class of a failed check
func logCheckError(err error) {
	var (
		cfgErr   *as5100.ConfigurationError
		geomErr  *section.GeometryError
		emptyErr *stress.EmptySampleError
		solveErr *solver.Failure
	)
	class := "input"
	switch {
	case errors.As(err, &cfgErr):
		class = "configuration"
	case errors.As(err, &geomErr):
		class = "geometry"
	case errors.As(err, &emptyErr):
		class = "empty_sample"
	case errors.As(err, &solveErr):
		class = "solver"
	}
	logger.Error("check failed", zap.String("class", class), zap.Error(err))
}

func printCheck(res *check.Result) {
	p := res.Section

	fmt.Println()
	fmt.Println("═══════════════════════════════════════════════════════════════")
	fmt.Println("     STIFFENED BOX SECTION DESIGN CHECK - AS5100.6-" + res.Edition.Name)
	fmt.Println("═══════════════════════════════════════════════════════════════")
	fmt.Println()
	if p.Name != "" {
		fmt.Printf("  Section: %s\n", p.Name)
		fmt.Println()
	}

	fmt.Println("INPUT DATA:")
	fmt.Println("───────────────────────────────────────────────────────────────")
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "  Box (b x d):\t%.0f x %.0f mm\n", p.Width*1000, p.Depth*1000)
	fmt.Fprintf(w, "  Plates (t_w / t_f):\t%.1f / %.1f mm\n", p.WebThickness*1000, p.FlangeThickness*1000)
	fmt.Fprintf(w, "  Stiffeners:\t%d @ %.0f x %.1f mm\n", p.Stiffeners, p.StiffenerDepth*1000, p.StiffenerThickness*1000)
	fmt.Fprintf(w, "  fy:\t%.1f MPa\n", res.Fy/1e6)
	fmt.Fprintf(w, "  φ·fy:\t%.1f MPa\n", res.Capacity/1e6)
	fmt.Fprintf(w, "  Sampling window:\t±%.1f x ±%.1f mm\n", res.Window.DX*1000, res.Window.DY*1000)
	fmt.Fprintf(w, "  Mesh nodes:\t%d\n", res.Nodes)
	w.Flush()
	fmt.Println()

	fmt.Println("PANEL BUCKLING:")
	fmt.Println("───────────────────────────────────────────────────────────────")
	w = tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "  Panel\tb (mm)\tt (mm)\tλa\tλb\tK\tGoverning\n")
	fmt.Fprintf(w, "  ─────\t──────\t──────\t──\t──\t─\t─────────\n")
	fl, wb := res.FlangePanel, res.WebPanel
	fmt.Fprintf(w, "  Flange\t%.0f\t%.1f\t%.2f\t%.2f\t%.4f\t%s\n", fl.BPanel*1000, fl.Thickness*1000, fl.LambdaA, fl.LambdaB, fl.K, fl.Governing)
	fmt.Fprintf(w, "  Web\t%.0f\t%.1f\t%.2f\t%.2f\t%.4f\t%s\n", wb.BPanel*1000, wb.Thickness*1000, wb.LambdaA, wb.LambdaB, wb.K, wb.Governing)
	w.Flush()
	fmt.Println()

	for _, cr := range res.Cases {
		fmt.Printf("LOAD CASE %s:\n", cr.Name)
		fmt.Println("───────────────────────────────────────────────────────────────")
		w = tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
		fmt.Fprintf(w, "  Point\tσ (MPa)\tτ_T (MPa)\tτ_V (MPa)\tf_comb (MPa)\n")
		fmt.Fprintf(w, "  ─────\t───────\t─────────\t─────────\t────────────\n")
		for _, ps := range cr.Points {
			fmt.Fprintf(w, "  %s (%s)\t%.2f\t%.2f\t%.2f\t%.2f\n",
				ps.Location, ps.Reducer, ps.Normal/1e6, ps.Torsion/1e6, ps.Shear/1e6, ps.Combined/1e6)
		}
		w.Flush()
		fmt.Println()

		w = tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
		fmt.Fprintf(w, "  Yield (f_comb / φ·fy):\t%.3f\t%s\n", cr.YieldUtilisation, mark(cr.YieldUtilisation))
		fmt.Fprintf(w, "  Flange buckling (σ / K·φ·fy):\t%.3f\t%s\n", cr.FlangeBucklingUtilisation, mark(cr.FlangeBucklingUtilisation))
		fmt.Fprintf(w, "  Web buckling (σ / K·φ·fy):\t%.3f\t%s\n", cr.WebBucklingUtilisation, mark(cr.WebBucklingUtilisation))
		w.Flush()
		fmt.Println()
	}

	status := "PASS"
	if !res.Passed {
		status = "FAIL"
	}
	fmt.Print(diagram.DrawSummaryBox("DESIGN CHECK: "+status, []string{
		res.Message,
		fmt.Sprintf("Governing load case: %s", res.Governing),
	}))
	fmt.Println()
}

func mark(u float64) string {
	if u <= 1 {
		return "✓"
	}
	return "✗"
}

func exportCheck(res *check.Result, meshPreset string) {
	if checkExportFile != "" {
		p := res.Section
		mesh, err := section.ParseMesh(meshPreset)
		var cs *section.CrossSection
		if err == nil {
			cs, _, err = section.Build(p, mesh)
		}
		if err == nil {
			var points []stress.CriticalPoint
			for _, tg := range check.CriticalPoints(p, res.Window) {
				points = append(points, tg.Point)
			}
			err = diagram.ExportSection(cs, points, checkExportFile)
		}
		if err != nil {
			fmt.Printf("Error exporting diagram: %v\n", err)
		} else {
			fmt.Printf("  Section drawing exported to: %s\n", checkExportFile)
		}
	}

	if checkXLSX != "" {
		if err := report.WriteWorkbook(res, checkXLSX); err != nil {
			fmt.Printf("Error writing workbook: %v\n", err)
		} else {
			fmt.Printf("  Workbook written to: %s\n", checkXLSX)
		}
	}

	if checkPDF != "" {
		opts := report.PDFOptions{Project: checkProject}
		if ext := filepath.Ext(checkExportFile); ext == ".png" || ext == ".jpg" {
			opts.Image = checkExportFile
		}
		if err := writePDF(res, checkPDF, opts); err != nil {
			fmt.Printf("Error writing PDF: %v\n", err)
		} else {
			fmt.Printf("  PDF summary written to: %s\n", checkPDF)
		}
	}
	fmt.Println()
}

func writePDF(res *check.Result, path string, opts report.PDFOptions) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := report.WritePDF(res, f, opts); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
