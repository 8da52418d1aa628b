package report

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/alexiusacademia/gobox/internal/buckling"
	"github.com/alexiusacademia/gobox/internal/check"
	"github.com/phpdave11/gofpdf"
)

// PDFOptions controls the calculation summary layout
type PDFOptions struct {
	Title   string
	Project string
	Author  string
	Image   string // optional section drawing (png or jpg)
}

// WritePDF writes a one-page calculation summary of a check result
func WritePDF(res *check.Result, w io.Writer, opts PDFOptions) error {
	if opts.Title == "" {
		opts.Title = "Stiffened Box Section Design Check"
	}

	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.AddPage()
	pdf.SetFont("Helvetica", "B", 16)
	pdf.Cell(0, 10, opts.Title)
	pdf.Ln(12)
	pdf.SetFont("Helvetica", "", 11)
	if opts.Project != "" {
		pdf.Cell(0, 6, fmt.Sprintf("Project: %s", opts.Project))
		pdf.Ln(6)
	}
	if opts.Author != "" {
		pdf.Cell(0, 6, fmt.Sprintf("Author: %s", opts.Author))
		pdf.Ln(6)
	}
	pdf.Cell(0, 6, fmt.Sprintf("Date: %s", time.Now().Format("2006-01-02")))
	pdf.Ln(6)
	pdf.Cell(0, 6, fmt.Sprintf("Code: %s", res.Edition.Description))
	pdf.Ln(10)

	heading(pdf, "Section")
	p := res.Section
	table(pdf, []float64{60, 40}, [][]string{
		{"b x d", fmt.Sprintf("%.0f x %.0f mm", p.Width*1000, p.Depth*1000)},
		{"t_w / t_f", fmt.Sprintf("%.1f / %.1f mm", p.WebThickness*1000, p.FlangeThickness*1000)},
		{"Stiffeners", fmt.Sprintf("%d @ %.0f x %.1f mm", p.Stiffeners, p.StiffenerDepth*1000, p.StiffenerThickness*1000)},
		{"Area", fmt.Sprintf("%.0f mm2", res.Properties.Area*1e6)},
		{"Ixx", fmt.Sprintf("%.4g mm4", res.Properties.Ixx*1e12)},
		{"fy / phi*fy", fmt.Sprintf("%.0f / %.0f MPa", res.Fy/1e6, res.Capacity/1e6)},
	}, false)

	if opts.Image != "" {
		pdf.ImageOptions(opts.Image, 120, 50, 75, 0, false, gofpdf.ImageOptions{ReadDpi: true}, 0, "")
	}

	heading(pdf, "Panel buckling")
	table(pdf, []float64{25, 25, 25, 25, 20, 20, 20, 30}, append([][]string{
		{"Panel", "b (mm)", "lambda_a", "lambda_b", "K1", "K3", "K", "Governing"},
	}, panelCells("Flange", res.FlangePanel), panelCells("Web", res.WebPanel)), true)

	heading(pdf, "Load cases")
	rows := [][]string{{"Case", "f_comb (MPa)", "At", "Yield", "Flange buckl.", "Web buckl.", "Result"}}
	for _, cr := range res.Cases {
		status := "OK"
		if !cr.Passed {
			status = "FAIL"
		}
		rows = append(rows, []string{
			cr.Name,
			fmt.Sprintf("%.1f", cr.MaxCombined/1e6),
			cr.Governing.String(),
			fmt.Sprintf("%.3f", cr.YieldUtilisation),
			fmt.Sprintf("%.3f", cr.FlangeBucklingUtilisation),
			fmt.Sprintf("%.3f", cr.WebBucklingUtilisation),
			status,
		})
	}
	table(pdf, []float64{25, 25, 40, 20, 25, 25, 20}, rows, true)

	pdf.Ln(4)
	pdf.SetFont("Helvetica", "B", 12)
	pdf.MultiCell(0, 6, res.Message, "", "L", false)

	return pdf.Output(w)
}

func heading(pdf *gofpdf.Fpdf, text string) {
	pdf.SetFont("Helvetica", "B", 12)
	pdf.Cell(0, 8, text)
	pdf.Ln(8)
	pdf.SetFont("Helvetica", "", 10)
}

func table(pdf *gofpdf.Fpdf, widths []float64, rows [][]string, header bool) {
	for i, row := range rows {
		if header && i == 0 {
			pdf.SetFont("Helvetica", "B", 10)
			pdf.SetFillColor(220, 220, 220)
		}
		for j, cell := range row {
			pdf.CellFormat(widths[j%len(widths)], 6, cell, "1", 0, "L", header && i == 0, 0, "")
		}
		pdf.Ln(6)
		if header && i == 0 {
			pdf.SetFont("Helvetica", "", 10)
		}
	}
	pdf.Ln(4)
}

func panelCells(name string, r *buckling.Result) []string {
	if r == nil {
		return []string{name, "-", "-", "-", "-", "-", "-", "-"}
	}
	return []string{
		name,
		fmt.Sprintf("%.0f", r.BPanel*1000),
		fmt.Sprintf("%.1f", r.LambdaA),
		fmt.Sprintf("%.1f", r.LambdaB),
		fmt.Sprintf("%.3f", r.K1),
		fmt.Sprintf("%.3f", r.K3),
		fmt.Sprintf("%.3f", r.K),
		curveNames(r.Governing),
	}
}

func curveNames(g buckling.Governing) string {
	var names []string
	for _, id := range g.Curves() {
		names = append(names, id.String())
	}
	return strings.Join(names, " + ")
}
