package sink

import (
	"strings"
	"unicode/utf8"

	"github.com/charmbracelet/lipgloss"

	"github.com/matzehuels/gatexray/pkg/circuit"
	"github.com/matzehuels/gatexray/pkg/grid"
	"github.com/matzehuels/gatexray/pkg/view"
)

const (
	termCellWidth   = 5
	termEmptyFill   = "#f0f4ff"
	termUnknownFill = "#9ca3af"
	termConflict    = "#e11d48"
)

var termEmptyStyle = lipgloss.NewStyle().
	Width(termCellWidth).
	Align(lipgloss.Center).
	Foreground(lipgloss.Color("#94a3b8")).
	Background(lipgloss.Color(termEmptyFill))

// RenderTerminal draws the occupancy map of comps as a colored character
// grid: one box per cell, the gate id at each component's top-left, and
// conflicting cells marked with the overlap glyph.
func RenderTerminal(comps []circuit.Component, plan grid.Plan) string {
	if plan.Empty() {
		return ""
	}
	occ := grid.Occupy(comps)

	fills := make(map[int]string, len(comps))
	for _, e := range plan.Entries {
		fills[e.Index] = e.Gate.Fill
	}

	var rows []string
	for dy := range plan.Box.Rows() {
		cells := make([]string, 0, plan.Box.Cols())
		for dx := range plan.Box.Cols() {
			cell := grid.Cell{X: plan.Box.MinX + dx, Y: plan.Box.MinY + dy}
			cells = append(cells, termCell(comps, occ, fills, cell))
		}
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, cells...))
	}
	return lipgloss.JoinVertical(lipgloss.Left, rows...)
}

func termCell(comps []circuit.Component, occ grid.Occupancy, fills map[int]string, cell grid.Cell) string {
	owner, ok := occ.Owner(cell)
	if !ok {
		return termEmptyStyle.Render("·")
	}

	fill, known := fills[owner]
	if !known {
		fill = termUnknownFill
	}

	style := lipgloss.NewStyle().Width(termCellWidth).Align(lipgloss.Center)
	if occ.Claims(cell) > 1 {
		return style.Bold(true).
			Foreground(lipgloss.Color(termConflict)).
			Background(lipgloss.Color(circuit.Blend(fill, termConflict, 0.35))).
			Render(grid.OverlapMarker)
	}

	label := ""
	if c := comps[owner]; c.Anchored(cell.X, cell.Y) {
		label = truncate(c.GateID, termCellWidth-1)
		if !known {
			label = "?"
		}
	}
	return style.
		Foreground(lipgloss.Color(circuit.ContrastText(fill))).
		Background(lipgloss.Color(fill)).
		Render(label)
}

func truncate(s string, n int) string {
	if utf8.RuneCountInString(s) <= n {
		return s
	}
	return string([]rune(s)[:n])
}

// TerminalFrame previews f in whichever mode it carries. Compact frames
// show a single column spanning the operator's rows.
func TerminalFrame(f view.Frame) string {
	if f.Mode == view.Exploded {
		if f.Plan == nil {
			return ""
		}
		return RenderTerminal(f.Operator.Components, *f.Plan)
	}

	fill := f.Operator.Fill
	if fill == "" {
		fill = circuit.DefaultFill
	}
	style := lipgloss.NewStyle().
		Width(termCellWidth).
		Align(lipgloss.Center).
		Foreground(lipgloss.Color(circuit.ContrastText(fill))).
		Background(lipgloss.Color(fill))

	symbol := f.Operator.Symbol
	if strings.HasPrefix(symbol, "<") {
		symbol = "◆"
	}
	rows := make([]string, f.Operator.Rows())
	rows[0] = style.Render(truncate(symbol, termCellWidth-1))
	for i := 1; i < len(rows); i++ {
		rows[i] = style.Render("")
	}
	return lipgloss.JoinVertical(lipgloss.Left, rows...)
}
