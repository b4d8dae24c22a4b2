package console

import (
	"strings"

	"github.com/mattn/go-runewidth"
)

// Style selects how a table cell is painted.
type Style int

const (
	StylePlain Style = iota
	StyleBold
	StyleGood
	StyleBad
	StyleCaution
)

// Cell is one table cell; width is computed on Text before painting.
type Cell struct {
	Text  string
	Style Style
}

// Plain builds an unstyled cell.
func Plain(s string) Cell { return Cell{Text: s} }

// Table prints rows with columns aligned by display width. The last column
// is never padded.
func (p *Printer) Table(rows [][]Cell) {
	widths := columnWidths(rows)
	var sb strings.Builder
	for _, row := range rows {
		for i, cell := range row {
			text := cell.Text
			if i < len(row)-1 {
				text = runewidth.FillRight(text, widths[i])
			}
			sb.WriteString(p.paint(cell.Style, text))
			if i < len(row)-1 {
				sb.WriteString("  ")
			}
		}
		sb.WriteString("\n")
	}
	_, _ = p.out.Write([]byte(sb.String()))
}

func (p *Printer) paint(style Style, s string) string {
	switch style {
	case StyleBold:
		return p.bold.Sprint(s)
	case StyleGood:
		return p.ok.Sprint(s)
	case StyleBad:
		return p.fail.Sprint(s)
	case StyleCaution:
		return p.warn.Sprint(s)
	default:
		return s
	}
}

func columnWidths(rows [][]Cell) []int {
	var widths []int
	for _, row := range rows {
		for i, cell := range row {
			if i >= len(widths) {
				widths = append(widths, 0)
			}
			if w := runewidth.StringWidth(cell.Text); w > widths[i] {
				widths[i] = w
			}
		}
	}
	return widths
}

// Box builds a box containing the provided lines and returns it as a string.
// Multi-width runes are accounted for so the borders stay aligned.
func Box(lines []string) string {
	if len(lines) == 0 {
		return ""
	}

	trimmed := make([]string, len(lines))
	maxWidth := 0
	for i, line := range lines {
		trimmed[i] = strings.TrimRight(line, " ")
		if w := runewidth.StringWidth(trimmed[i]); w > maxWidth {
			maxWidth = w
		}
	}

	innerWidth := maxWidth + 2
	border := strings.Repeat("─", innerWidth)

	var sb strings.Builder
	sb.WriteString("┌" + border + "┐\n")
	for _, line := range trimmed {
		sb.WriteString("│ " + runewidth.FillRight(line, maxWidth) + " │\n")
	}
	sb.WriteString("└" + border + "┘\n")
	return sb.String()
}

// Truncate shortens value to at most width display columns, ending in "..."
// when there is room for it.
func Truncate(value string, width int) string {
	if width <= 0 {
		return ""
	}
	if runewidth.StringWidth(value) <= width {
		return value
	}
	if width <= 3 {
		return runewidth.Truncate(value, width, "")
	}
	return runewidth.Truncate(value, width, "...")
}
