package report

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/alexiusacademia/gobox/internal/buckling"
	"github.com/xuri/excelize/v2"
)

// PanelHeader is the first row of a panel batch sheet. Lengths are in mm
// and the yield strength in MPa.
var PanelHeader = []string{"name", "n_stif", "a_mm", "b_mm", "t_mm", "fy_mpa"}

// Panel is one row of a panel batch sheet, converted to SI units
type Panel struct {
	Row        int
	Name       string
	Stiffeners int
	APanel     float64 // m
	BPanel     float64 // m
	Thickness  float64 // m
	Fy         float64 // Pa
}

// ReadPanels reads panels from the first sheet of a workbook. The first row
// is a header; rows with an empty name cell are skipped.
func ReadPanels(r io.Reader) ([]Panel, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	sheet := f.GetSheetName(0)
	rows, err := f.GetRows(sheet)
	if err != nil {
		return nil, err
	}
	if len(rows) < 2 {
		return nil, fmt.Errorf("sheet %q has no panel rows", sheet)
	}

	var panels []Panel
	for i := 1; i < len(rows); i++ {
		row := rows[i]
		if len(row) == 0 || strings.TrimSpace(row[0]) == "" {
			continue
		}
		p, err := parsePanelRow(row)
		if err != nil {
			return nil, fmt.Errorf("row %d: %w", i+1, err)
		}
		p.Row = i + 1
		panels = append(panels, p)
	}

	return panels, nil
}

func parsePanelRow(row []string) (Panel, error) {
	if len(row) < len(PanelHeader) {
		return Panel{}, fmt.Errorf("expected %d columns, got %d", len(PanelHeader), len(row))
	}

	n, err := strconv.Atoi(strings.TrimSpace(row[1]))
	if err != nil {
		return Panel{}, fmt.Errorf("n_stif: %w", err)
	}

	values := make([]float64, 4)
	for j := range values {
		v, err := strconv.ParseFloat(strings.TrimSpace(row[j+2]), 64)
		if err != nil {
			return Panel{}, fmt.Errorf("%s: %w", PanelHeader[j+2], err)
		}
		values[j] = v
	}

	return Panel{
		Name:       strings.TrimSpace(row[0]),
		Stiffeners: n,
		APanel:     values[0] / 1000,
		BPanel:     values[1] / 1000,
		Thickness:  values[2] / 1000,
		Fy:         values[3] * 1e6,
	}, nil
}

// PanelResult pairs a batch panel with its evaluation. Err is set when the
// panel could not be evaluated.
type PanelResult struct {
	Panel
	Result *buckling.Result
	Err    error
}

// WritePanelResults writes batch buckling results to a new workbook
func WritePanelResults(results []PanelResult, path string) error {
	f := excelize.NewFile()
	defer f.Close()

	const sheet = "Panels"
	if err := f.SetSheetName("Sheet1", sheet); err != nil {
		return err
	}

	header := []interface{}{"name", "n_stif", "a_mm", "b_mm", "t_mm", "fy_mpa",
		"lambda_a", "lambda_b", "K1", "K2", "K3", "K", "governing", "error"}
	if err := f.SetSheetRow(sheet, "A1", &header); err != nil {
		return err
	}

	for i, pr := range results {
		row := []interface{}{
			pr.Name, pr.Stiffeners,
			pr.APanel * 1000, pr.BPanel * 1000, pr.Thickness * 1000, pr.Fy / 1e6,
		}
		if pr.Result != nil {
			r := pr.Result
			row = append(row, r.LambdaA, r.LambdaB, r.K1, r.K2, r.K3, r.K, r.Governing.String(), "")
		} else {
			row = append(row, "", "", "", "", "", "", "", errString(pr.Err))
		}

		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return err
		}
		if err := f.SetSheetRow(sheet, cell, &row); err != nil {
			return err
		}
	}

	return f.SaveAs(path)
}

func errString(err error) string {
	if err == nil {
		return ""
	}
	return err.Error()
}
