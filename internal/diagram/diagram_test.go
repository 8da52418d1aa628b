package diagram

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/alexiusacademia/gobox/internal/buckling"
	"github.com/alexiusacademia/gobox/internal/curve"
	"github.com/alexiusacademia/gobox/internal/section"
	"github.com/alexiusacademia/gobox/internal/stress"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testSection(t *testing.T) *section.CrossSection {
	t.Helper()
	cs, _, err := section.Build(section.Params{
		Name:               "G1",
		Width:              1.0,
		Depth:              1.2,
		WebThickness:       0.012,
		FlangeThickness:    0.016,
		StiffenerDepth:     0.15,
		StiffenerThickness: 0.012,
		Stiffeners:         3,
	}, section.MeshFine)
	require.NoError(t, err)
	return cs
}

func TestDrawSummaryBox_Aligned(t *testing.T) {
	box := DrawSummaryBox("RESULT", []string{"K = 0.912", "Governing: Curve 3 (λa)"})
	lines := strings.Split(strings.TrimRight(box, "\n"), "\n")
	require.Len(t, lines, 6)

	width := len([]rune(lines[0]))
	for _, l := range lines {
		assert.Equal(t, width, len([]rune(l)), l)
	}
	assert.Contains(t, box, "Governing: Curve 3 (λa)")
}

func TestDrawUtilisationBar(t *testing.T) {
	assert.Equal(t, "│█████░░░░░│ 0.500", DrawUtilisationBar(0.5, 10))
	assert.Equal(t, "│████│▶ 1.500", DrawUtilisationBar(1.5, 4))
	assert.Equal(t, "│░░░░│ 0.000", DrawUtilisationBar(0, 4))
}

func TestDrawSectionASCII(t *testing.T) {
	cs := testSection(t)
	out := DrawSectionASCII(cs, 40, 20)

	assert.Contains(t, out, "BOX SECTION G1")
	assert.Contains(t, out, "n_stif = 3")

	var rows []string
	for _, l := range strings.Split(out, "\n") {
		if strings.HasPrefix(l, "  ") && len([]rune(l)) == 42 && !strings.Contains(l, "─") {
			rows = append(rows, strings.TrimPrefix(l, "  "))
		}
	}
	require.Len(t, rows, 20)

	assert.NotContains(t, rows[0], " ", "top flange spans the width")
	assert.NotContains(t, rows[19], " ", "bottom flange spans the width")
	for _, r := range rows {
		runes := []rune(r)
		assert.NotEqual(t, ' ', runes[0], "left web")
		assert.NotEqual(t, ' ', runes[39], "right web")
	}
	assert.Contains(t, strings.Join(rows, ""), "▓")
	assert.Contains(t, rows[10], " ", "the cell is hollow")
}

func TestDrawCurvesASCII(t *testing.T) {
	out := DrawCurvesASCII(curve.Default(), 60, 12)
	assert.Contains(t, out, "K vs slenderness")
	for _, name := range []string{"Curve 1", "Curve 2", "Curve 3"} {
		assert.Contains(t, out, name)
	}
}

func TestExportSection(t *testing.T) {
	cs := testSection(t)
	path := filepath.Join(t.TempDir(), "out", "section.png")
	points := []stress.CriticalPoint{
		{Name: "root", X: 0.25, Y: 1.184, Window: stress.Window{DX: 0.08, DY: 0.08}},
	}

	require.NoError(t, ExportSection(cs, points, path))
	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Positive(t, info.Size())
}

func TestExportCurves(t *testing.T) {
	r, err := buckling.Default().Evaluate(3, 1.0, 0.5, 0.012, 350e6)
	require.NoError(t, err)
	markers := PanelMarkers("flange ", r)
	require.Len(t, markers, 3)
	assert.Equal(t, r.LambdaA, markers[2].X)

	dir := t.TempDir()
	require.NoError(t, ExportCurves(curve.Default(), markers, filepath.Join(dir, "curves.svg")))
	_, err = os.Stat(filepath.Join(dir, "curves.svg"))
	assert.NoError(t, err)

	require.NoError(t, ExportCurves(curve.Default(), nil, filepath.Join(dir, "plain")))
	_, err = os.Stat(filepath.Join(dir, "plain.png"))
	assert.NoError(t, err, "unknown extension falls back to png")

	assert.Nil(t, PanelMarkers("x", nil))
}
