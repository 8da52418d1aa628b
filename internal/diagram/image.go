package diagram

import (
	"fmt"
	"image/color"
	"os"
	"path/filepath"

	"github.com/alexiusacademia/gobox/internal/buckling"
	"github.com/alexiusacademia/gobox/internal/curve"
	"github.com/alexiusacademia/gobox/internal/section"
	"github.com/alexiusacademia/gobox/internal/stress"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
)

var (
	plateFill     = color.RGBA{R: 160, G: 160, B: 160, A: 255}
	stiffenerFill = color.RGBA{R: 100, G: 149, B: 237, A: 255}
	pointColor    = color.RGBA{R: 255, G: 0, B: 0, A: 255}
	curveColors   = []color.Color{
		color.RGBA{R: 0, G: 0, B: 139, A: 255},
		color.RGBA{R: 0, G: 100, B: 0, A: 255},
		color.RGBA{R: 139, G: 69, B: 19, A: 255},
	}
)

// ExportSection exports a drawing of the cross-section plates, the centroid
// and the sampling windows of the given critical points to an image file.
// Lengths are drawn in millimetres.
func ExportSection(cs *section.CrossSection, points []stress.CriticalPoint, filename string) error {
	const mm = 1000.0

	p := plot.New()
	p.Title.Text = fmt.Sprintf("Box Section %s", cs.Name())
	p.X.Label.Text = "Width (mm)"
	p.Y.Label.Text = "Height (mm)"

	for _, pl := range cs.Plates() {
		poly, err := plotter.NewPolygon(plotter.XYs{
			{X: pl.X * mm, Y: pl.Y * mm},
			{X: pl.MaxX() * mm, Y: pl.Y * mm},
			{X: pl.MaxX() * mm, Y: pl.MaxY() * mm},
			{X: pl.X * mm, Y: pl.MaxY() * mm},
		})
		if err != nil {
			return err
		}
		poly.Color = plateFill
		if pl.Role.IsStiffener() {
			poly.Color = stiffenerFill
		}
		poly.LineStyle.Width = vg.Points(0.5)
		poly.LineStyle.Color = color.Black
		p.Add(poly)
	}

	props := cs.Properties()
	centroid, err := plotter.NewScatter(plotter.XYs{{X: props.CentroidX * mm, Y: props.CentroidY * mm}})
	if err != nil {
		return err
	}
	centroid.GlyphStyle.Shape = draw.CrossGlyph{}
	centroid.GlyphStyle.Radius = vg.Points(5)
	p.Add(centroid)
	p.Legend.Add("Centroid", centroid)

	for i, cp := range points {
		w := cp.Window
		window, err := plotter.NewLine(plotter.XYs{
			{X: (cp.X - w.DX) * mm, Y: (cp.Y - w.DY) * mm},
			{X: (cp.X + w.DX) * mm, Y: (cp.Y - w.DY) * mm},
			{X: (cp.X + w.DX) * mm, Y: (cp.Y + w.DY) * mm},
			{X: (cp.X - w.DX) * mm, Y: (cp.Y + w.DY) * mm},
			{X: (cp.X - w.DX) * mm, Y: (cp.Y - w.DY) * mm},
		})
		if err != nil {
			return err
		}
		window.LineStyle.Width = vg.Points(1)
		window.LineStyle.Color = pointColor
		window.LineStyle.Dashes = []vg.Length{vg.Points(3), vg.Points(2)}
		p.Add(window)

		lbl, err := plotter.NewLabels(plotter.XYLabels{
			XYs:    []plotter.XY{{X: (cp.X + w.DX) * mm, Y: (cp.Y + w.DY) * mm}},
			Labels: []string{fmt.Sprintf("P%d", i+1)},
		})
		if err != nil {
			return err
		}
		p.Add(lbl)
	}

	return save(p, 8*vg.Inch, 8*vg.Inch, filename)
}

// Marker is an evaluated slenderness/coefficient pair plotted over the curves
type Marker struct {
	Label string
	X, Y  float64
}

// PanelMarkers returns the markers of a buckling evaluation: the
// longitudinal coefficients at λb and the transverse coefficient at λa
func PanelMarkers(prefix string, r *buckling.Result) []Marker {
	if r == nil {
		return nil
	}
	return []Marker{
		{Label: prefix + "K1", X: r.LambdaB, Y: r.K1},
		{Label: prefix + "K2", X: r.LambdaB, Y: r.K2},
		{Label: prefix + "K3", X: r.LambdaA, Y: r.K3},
	}
}

// ExportCurves exports the three design curves with optional markers to an
// image file
func ExportCurves(set curve.Set, markers []Marker, filename string) error {
	p := plot.New()
	p.Title.Text = "Stiffened Panel Buckling Curves"
	p.X.Label.Text = "Slenderness λ"
	p.Y.Label.Text = "Buckling coefficient K"
	p.X.Min, p.X.Max = curve.DomainMin, curve.DomainMax
	p.Y.Min, p.Y.Max = 0, curve.MaxCoefficient*1.05
	p.Add(plotter.NewGrid())

	for i, c := range set.All() {
		pts := make(plotter.XYs, len(c.Points))
		for j, pt := range c.Points {
			pts[j] = plotter.XY{X: pt.X, Y: pt.Y}
		}
		line, err := plotter.NewLine(pts)
		if err != nil {
			return err
		}
		line.LineStyle.Width = vg.Points(2)
		line.LineStyle.Color = curveColors[i%len(curveColors)]
		p.Add(line)
		p.Legend.Add(c.Name, line)
	}

	if len(markers) > 0 {
		xys := make(plotter.XYs, len(markers))
		labels := make([]string, len(markers))
		for i, m := range markers {
			xys[i] = plotter.XY{X: m.X, Y: m.Y}
			labels[i] = m.Label
		}
		sc, err := plotter.NewScatter(xys)
		if err != nil {
			return err
		}
		sc.GlyphStyle.Color = pointColor
		sc.GlyphStyle.Radius = vg.Points(4)
		sc.GlyphStyle.Shape = draw.CircleGlyph{}
		p.Add(sc)

		lbl, err := plotter.NewLabels(plotter.XYLabels{XYs: xys, Labels: labels})
		if err != nil {
			return err
		}
		p.Add(lbl)
	}

	p.Legend.Top = true
	return save(p, 8*vg.Inch, 6*vg.Inch, filename)
}

// save writes the plot in the format given by the file extension. Files
// without a known extension get ".png" appended.
func save(p *plot.Plot, width, height vg.Length, filename string) error {
	dir := filepath.Dir(filename)
	if dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return err
		}
	}

	switch filepath.Ext(filename) {
	case ".png", ".svg", ".pdf", ".jpg", ".jpeg":
		return p.Save(width, height, filename)
	default:
		return p.Save(width, height, filename+".png")
	}
}
