package cmd

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/alexiusacademia/gobox/internal/check"
	"github.com/alexiusacademia/gobox/internal/diagram"
	"github.com/alexiusacademia/gobox/internal/section"
	"github.com/alexiusacademia/gobox/internal/stress"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	sectionFile        string
	sectionMesh        string
	sectionShowDiagram bool
	sectionExportFile  string
	sectionGeometry    geometryFlags
)

var sectionCmd = &cobra.Command{
	Use:   "section",
	Short: "Generate a stiffened box section and its properties",
	Long: `Generate the plate layout of a longitudinally stiffened box
section and report its plates, mesh size hints and section properties.

The top flange and both webs carry 2 or 3 flat stiffeners. The bottom
flange is unstiffened. The origin is the bottom-left outer corner.

The section can be given with flags (mm) or in a YAML/JSON file (m):

  name: G1
  b: 1.0
  d: 1.2
  t_w: 0.012
  t_f: 0.016
  d_stif: 0.15
  t_stif: 0.012
  n_stif: 3

Examples:
  gobox section -b 1000 -d 1200 --tw 12 --tf 16 --dstif 150 --tstif 12 -n 3
  gobox section --file g1.yaml --diagram -o g1.png`,
	Run: runSection,
}

func init() {
	rootCmd.AddCommand(sectionCmd)

	sectionCmd.Flags().StringVarP(&sectionFile, "file", "f", "", "Path to section YAML/JSON file")
	sectionGeometry.register(sectionCmd)
	sectionCmd.Flags().StringVar(&sectionMesh, "mesh", "", "Mesh preset: fine or coarse (env GOBOX_MESH)")

	// Diagram options
	sectionCmd.Flags().BoolVar(&sectionShowDiagram, "diagram", false, "Show ASCII section diagram")
	sectionCmd.Flags().StringVarP(&sectionExportFile, "output", "o", "", "Export section drawing to file (png, svg, pdf)")
}

func runSection(cmd *cobra.Command, args []string) {
	p := sectionGeometry.params()
	if sectionFile != "" {
		loaded, err := section.LoadFromFile(sectionFile)
		if err != nil {
			fmt.Printf("Error loading section: %v\n", err)
			return
		}
		p = *loaded
	}

	mesh, err := section.ParseMesh(meshName(sectionMesh))
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		return
	}

	cs, hints, err := section.Build(p, mesh)
	if err != nil {
		fmt.Printf("Error building section: %v\n", err)
		return
	}
	logger.Debug("section built", zap.String("section", cs.Name()), zap.Int("plates", cs.NumPlates()))

	fmt.Println()
	fmt.Println("═══════════════════════════════════════════════════════════════")
	fmt.Println("     STIFFENED BOX SECTION - AS5100.6")
	fmt.Println("═══════════════════════════════════════════════════════════════")
	fmt.Println()
	if cs.Name() != "" {
		fmt.Printf("  Section: %s\n", cs.Name())
		fmt.Println()
	}

	fmt.Println("INPUT DATA:")
	fmt.Println("───────────────────────────────────────────────────────────────")
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "  Width (b):\t%.1f mm\n", p.Width*1000)
	fmt.Fprintf(w, "  Depth (d):\t%.1f mm\n", p.Depth*1000)
	fmt.Fprintf(w, "  Web thickness (t_w):\t%.1f mm\n", p.WebThickness*1000)
	fmt.Fprintf(w, "  Flange thickness (t_f):\t%.1f mm\n", p.FlangeThickness*1000)
	fmt.Fprintf(w, "  Stiffener (d_stif x t_stif):\t%.1f x %.1f mm\n", p.StiffenerDepth*1000, p.StiffenerThickness*1000)
	fmt.Fprintf(w, "  Stiffeners per face (n_stif):\t%d\n", p.Stiffeners)
	w.Flush()
	fmt.Println()

	fmt.Println("PLATES:")
	fmt.Println("───────────────────────────────────────────────────────────────")
	w = tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "  Plate\tRole\tx (mm)\ty (mm)\tWidth (mm)\tHeight (mm)\tMesh (mm)\n")
	fmt.Fprintf(w, "  ─────\t────\t──────\t──────\t──────────\t───────────\t─────────\n")
	for i, pl := range cs.Plates() {
		fmt.Fprintf(w, "  %s\t%s\t%.1f\t%.1f\t%.1f\t%.1f\t%.2f\n",
			pl.Name, pl.Role, pl.X*1000, pl.Y*1000, pl.Width*1000, pl.Height*1000, hints[i].Size*1000)
	}
	w.Flush()
	fmt.Println()
	for _, h := range cs.Holes() {
		fmt.Printf("  Hole seed: (%.1f, %.1f) mm\n", h.X*1000, h.Y*1000)
	}
	fmt.Println()

	props := cs.Properties()
	fmt.Println("SECTION PROPERTIES:")
	fmt.Println("───────────────────────────────────────────────────────────────")
	w = tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "  Area (A):\t%.0f mm²\n", props.Area*1e6)
	fmt.Fprintf(w, "  Centroid (x̄, ȳ):\t(%.1f, %.1f) mm\n", props.CentroidX*1000, props.CentroidY*1000)
	fmt.Fprintf(w, "  Ixx:\t%.4e mm⁴\n", props.Ixx*1e12)
	fmt.Fprintf(w, "  Iyy:\t%.4e mm⁴\n", props.Iyy*1e12)
	fmt.Fprintf(w, "  Ixy:\t%.4e mm⁴\n", props.Ixy*1e12)
	fmt.Fprintf(w, "  Enclosed area (A0):\t%.0f mm²\n", props.EnclosedArea*1e6)
	fmt.Fprintf(w, "  Torsion constant (J):\t%.4e mm⁴\n", props.TorsionConstant*1e12)
	w.Flush()
	fmt.Println()

	if sectionShowDiagram {
		fmt.Print(diagram.DrawSectionASCII(cs, 50, 24))
		fmt.Println()
	}

	if sectionExportFile != "" {
		var points []stress.CriticalPoint
		for _, tg := range check.CriticalPoints(p, check.DefaultWindow(p, mesh)) {
			points = append(points, tg.Point)
		}
		if err := diagram.ExportSection(cs, points, sectionExportFile); err != nil {
			fmt.Printf("Error exporting diagram: %v\n", err)
		} else {
			fmt.Printf("  Section drawing exported to: %s\n", sectionExportFile)
			fmt.Println()
		}
	}
}
