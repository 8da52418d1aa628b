package diagram

import (
	"fmt"
	"math"
	"strings"

	"github.com/alexiusacademia/gobox/internal/curve"
	"github.com/alexiusacademia/gobox/internal/section"
	"github.com/guptarohit/asciigraph"
)

// DrawSectionASCII draws the plates of a cross-section on a character
// grid. Boundary plates are shaded with █ and stiffeners with ▓.
func DrawSectionASCII(cs *section.CrossSection, widthChars, heightChars int) string {
	if widthChars < 4 {
		widthChars = 4
	}
	if heightChars < 4 {
		heightChars = 4
	}

	p := cs.Params()
	grid := make([][]rune, heightChars)
	for i := range grid {
		grid[i] = []rune(strings.Repeat(" ", widthChars))
	}

	col := func(x float64) int {
		return clamp(int(math.Floor(x/p.Width*float64(widthChars))), 0, widthChars-1)
	}
	row := func(y float64) int {
		// row 0 is the top of the section
		return clamp(heightChars-1-int(math.Floor(y/p.Depth*float64(heightChars))), 0, heightChars-1)
	}

	for _, pl := range cs.Plates() {
		fill := '█'
		if pl.Role.IsStiffener() {
			fill = '▓'
		}
		x0, x1 := col(pl.X), col(pl.MaxX()-1e-12)
		y0, y1 := row(pl.MaxY()-1e-12), row(pl.Y)
		for r := y0; r <= y1; r++ {
			for c := x0; c <= x1; c++ {
				if grid[r][c] != '▓' {
					grid[r][c] = fill
				}
			}
		}
	}

	var sb strings.Builder
	sb.WriteString("\n")
	sb.WriteString(fmt.Sprintf("  BOX SECTION %s  (b = %.0f mm, d = %.0f mm, n_stif = %d)\n",
		cs.Name(), p.Width*1000, p.Depth*1000, p.Stiffeners))
	sb.WriteString("  " + strings.Repeat("─", widthChars) + "\n")
	for _, r := range grid {
		sb.WriteString("  " + string(r) + "\n")
	}
	sb.WriteString("\n")
	sb.WriteString("  Legend:\n")
	sb.WriteString("  ███ = Flange / web plate\n")
	sb.WriteString("  ▓▓▓ = Longitudinal stiffener\n")

	return sb.String()
}

// DrawCurvesASCII plots the three design curves over the slenderness domain
func DrawCurvesASCII(set curve.Set, width, height int) string {
	const samples = 101

	series := make([][]float64, 0, 3)
	for _, c := range set.All() {
		ys := make([]float64, samples)
		for i := range ys {
			x := curve.DomainMin + (curve.DomainMax-curve.DomainMin)*float64(i)/float64(samples-1)
			ys[i] = c.At(x)
		}
		series = append(series, ys)
	}

	graph := asciigraph.PlotMany(series,
		asciigraph.Width(width),
		asciigraph.Height(height),
		asciigraph.LowerBound(0),
		asciigraph.UpperBound(curve.MaxCoefficient),
		asciigraph.Precision(2),
		asciigraph.SeriesColors(asciigraph.Blue, asciigraph.Green, asciigraph.Red),
		asciigraph.Caption(fmt.Sprintf("K vs slenderness λ (%.0f to %.0f)", curve.DomainMin, curve.DomainMax)),
	)

	var sb strings.Builder
	sb.WriteString("\n")
	sb.WriteString(graph)
	sb.WriteString("\n\n")
	sb.WriteString("  Legend:\n")
	for i, c := range set.All() {
		sb.WriteString(fmt.Sprintf("  %s = %s\n", []string{"blue ", "green", "red  "}[i], c.Name))
	}

	return sb.String()
}

// DrawUtilisationBar draws a fixed-width bar for a utilisation ratio.
// Ratios above 1 are marked with an overflow arrow.
func DrawUtilisationBar(u float64, width int) string {
	if width < 1 {
		width = 1
	}
	filled := int(math.Round(math.Min(math.Max(u, 0), 1) * float64(width)))
	bar := strings.Repeat("█", filled) + strings.Repeat("░", width-filled)
	if u > 1 {
		return fmt.Sprintf("│%s│▶ %.3f", bar, u)
	}
	return fmt.Sprintf("│%s│ %.3f", bar, u)
}

// DrawSummaryBox creates a summary box for results
func DrawSummaryBox(title string, lines []string) string {
	var sb strings.Builder

	maxLen := len([]rune(title))
	for _, line := range lines {
		if n := len([]rune(line)); n > maxLen {
			maxLen = n
		}
	}
	maxLen += 4

	border := strings.Repeat("═", maxLen)
	sb.WriteString(fmt.Sprintf("  ╔%s╗\n", border))
	sb.WriteString(fmt.Sprintf("  ║  %-*s  ║\n", maxLen-4, title))
	sb.WriteString(fmt.Sprintf("  ╠%s╣\n", border))
	for _, line := range lines {
		sb.WriteString(fmt.Sprintf("  ║  %-*s  ║\n", maxLen-4, line))
	}
	sb.WriteString(fmt.Sprintf("  ╚%s╝\n", border))

	return sb.String()
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
