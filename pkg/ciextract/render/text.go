package render

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/ukaji3/ciextract-go/pkg/ciextract/models"
)

// Dot is the glyph drawn for a matched stage.
const Dot = "●"

var (
	headerStyle = lipgloss.NewStyle().Bold(true).Padding(0, 1)
	cellStyle   = lipgloss.NewStyle().Padding(0, 1)
	borderStyle = lipgloss.NewStyle().Faint(true)
)

// Text renders the table for a terminal with colored indicator dots.
func Text(t models.Table) string {
	rows := make([][]string, len(t.Records))
	for i, rec := range t.Records {
		row := make([]string, 0, rec.Width())
		for _, v := range rec.Values {
			row = append(row, singleLine(v))
		}
		for _, ind := range rec.Indicators {
			if ind.IsBlank() {
				row = append(row, "")
				continue
			}
			row = append(row, lipgloss.NewStyle().Foreground(lipgloss.Color(ind.Color.Hex)).Render(Dot))
		}
		rows[i] = row
	}

	// Calculate column widths
	headers := make([]string, len(t.Columns))
	colWidths := make([]int, len(t.Columns))
	for i, h := range t.Columns {
		headers[i] = singleLine(h)
		colWidths[i] = lipgloss.Width(headers[i])
	}
	for _, row := range rows {
		for i, cell := range row {
			if i < len(colWidths) {
				if w := lipgloss.Width(cell); w > colWidths[i] {
					colWidths[i] = w
				}
			}
		}
	}
	for i := range colWidths {
		colWidths[i] += 2
	}

	var sb strings.Builder
	sep := borderStyle.Render("|")
	rule := borderStyle.Render(divider(colWidths))

	sb.WriteString(rule + "\n")
	writeRow(&sb, headers, colWidths, headerStyle, sep)
	sb.WriteString(rule + "\n")
	for _, row := range rows {
		writeRow(&sb, row, colWidths, cellStyle, sep)
	}
	sb.WriteString(rule + "\n")

	return sb.String()
}

func writeRow(sb *strings.Builder, cells []string, widths []int, style lipgloss.Style, sep string) {
	sb.WriteString(sep)
	for i, w := range widths {
		cell := ""
		if i < len(cells) {
			cell = cells[i]
		}
		sb.WriteString(style.Width(w).Render(cell))
		sb.WriteString(sep)
	}
	sb.WriteString("\n")
}

func divider(widths []int) string {
	var sb strings.Builder
	sb.WriteString("+")
	for _, w := range widths {
		sb.WriteString(strings.Repeat("-", w))
		sb.WriteString("+")
	}
	return sb.String()
}

// singleLine folds embedded line breaks so each row stays on one line.
func singleLine(s string) string {
	if !strings.ContainsAny(s, "\r\n") {
		return s
	}
	return strings.Join(strings.Fields(strings.NewReplacer("\r\n", " ", "\r", " ", "\n", " ").Replace(s)), " ")
}
