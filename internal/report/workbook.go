// Package report exports design check results to spreadsheets and PDF
// calculation summaries, and imports panel batches from spreadsheets.
package report

import (
	"github.com/alexiusacademia/gobox/internal/buckling"
	"github.com/alexiusacademia/gobox/internal/check"
	"github.com/xuri/excelize/v2"
)

// Sheet names used by WriteWorkbook
const (
	SummarySheet = "Summary"
	PointsSheet  = "Points"
	PanelsSheet  = "Panels"
)

// WriteWorkbook writes a check result to an xlsx workbook with a summary
// sheet, one row per load case and critical point, and the panel
// buckling results. Stresses are in MPa and lengths in mm.
func WriteWorkbook(res *check.Result, path string) error {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", SummarySheet); err != nil {
		return err
	}
	for _, name := range []string{PointsSheet, PanelsSheet} {
		if _, err := f.NewSheet(name); err != nil {
			return err
		}
	}

	p := res.Section
	summary := [][]interface{}{
		{"Section", p.Name},
		{"b (mm)", p.Width * 1000},
		{"d (mm)", p.Depth * 1000},
		{"t_w (mm)", p.WebThickness * 1000},
		{"t_f (mm)", p.FlangeThickness * 1000},
		{"d_stif (mm)", p.StiffenerDepth * 1000},
		{"t_stif (mm)", p.StiffenerThickness * 1000},
		{"n_stif", p.Stiffeners},
		{"Edition", res.Edition.Description},
		{"fy (MPa)", res.Fy / 1e6},
		{"phi*fy (MPa)", res.Capacity / 1e6},
		{"Nodes", res.Nodes},
		{"Governing case", res.Governing},
		{"Passed", res.Passed},
		{"Result", res.Message},
	}
	if err := writeRows(f, SummarySheet, 1, summary); err != nil {
		return err
	}

	points := [][]interface{}{{
		"case", "location", "x (mm)", "y (mm)", "reducer",
		"sig_zz (MPa)", "tau_mzz (MPa)", "tau_vy (MPa)", "f_comb (MPa)", "utilisation",
	}}
	for _, cr := range res.Cases {
		for _, ps := range cr.Points {
			points = append(points, []interface{}{
				cr.Name, ps.Location.String(), ps.Point.X * 1000, ps.Point.Y * 1000, ps.Reducer.String(),
				ps.Normal / 1e6, ps.Torsion / 1e6, ps.Shear / 1e6, ps.Combined / 1e6, ps.Combined / res.Capacity,
			})
		}
	}
	if err := writeRows(f, PointsSheet, 1, points); err != nil {
		return err
	}

	panels := [][]interface{}{
		{"panel", "a (mm)", "b (mm)", "t (mm)", "lambda_a", "lambda_b", "K1", "K2", "K3", "K", "governing"},
		panelRow("flange", res.FlangePanel),
		panelRow("web", res.WebPanel),
		{},
		{"case", "yield utilisation", "flange buckling", "web buckling", "passed"},
	}
	for _, cr := range res.Cases {
		panels = append(panels, []interface{}{
			cr.Name, cr.YieldUtilisation, cr.FlangeBucklingUtilisation, cr.WebBucklingUtilisation, cr.Passed,
		})
	}
	if err := writeRows(f, PanelsSheet, 1, panels); err != nil {
		return err
	}

	return f.SaveAs(path)
}

func panelRow(name string, r *buckling.Result) []interface{} {
	if r == nil {
		return []interface{}{name}
	}
	return []interface{}{
		name, r.APanel * 1000, r.BPanel * 1000, r.Thickness * 1000,
		r.LambdaA, r.LambdaB, r.K1, r.K2, r.K3, r.K, r.Governing.String(),
	}
}

func writeRows(f *excelize.File, sheet string, first int, rows [][]interface{}) error {
	for i, row := range rows {
		if len(row) == 0 {
			continue
		}
		cell, err := excelize.CoordinatesToCellName(1, first+i)
		if err != nil {
			return err
		}
		if err := f.SetSheetRow(sheet, cell, &row); err != nil {
			return err
		}
	}
	return nil
}
