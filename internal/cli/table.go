package cli

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	runewidth "github.com/mattn/go-runewidth"

	"github.com/justelson/devscope/internal/cache"
)

var (
	headerStyle    = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#4d9375"))
	missingStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("243"))
	installedGlyph = "✓"
	missingGlyph   = "✗"
)

// renderTable pads cells by display width so wide runes in tool names or
// paths do not shear the columns.
func renderTable(headers []string, rows [][]string) string {
	widths := make([]int, len(headers))
	for i, h := range headers {
		widths[i] = runewidth.StringWidth(h)
	}
	for _, row := range rows {
		for i, cell := range row {
			if i < len(widths) && runewidth.StringWidth(cell) > widths[i] {
				widths[i] = runewidth.StringWidth(cell)
			}
		}
	}

	var b strings.Builder
	for i, h := range headers {
		b.WriteString(headerStyle.Render(pad(h, widths[i])))
		if i < len(headers)-1 {
			b.WriteString("  ")
		}
	}
	b.WriteString("\n")
	for _, row := range rows {
		for i, cell := range row {
			b.WriteString(pad(cell, widths[i]))
			if i < len(row)-1 {
				b.WriteString("  ")
			}
		}
		b.WriteString("\n")
	}
	return b.String()
}

func pad(s string, w int) string {
	if gap := w - runewidth.StringWidth(s); gap > 0 {
		return s + strings.Repeat(" ", gap)
	}
	return s
}

// toolRows formats cache entries for table output.
func toolRows(entries []cache.Entry) [][]string {
	rows := make([][]string, 0, len(entries))
	for _, e := range entries {
		status := installedGlyph + " installed"
		version := e.Version
		command := e.Command
		if !e.Installed {
			status = missingStyle.Render(missingGlyph + " not installed")
			version = "-"
			command = missingStyle.Render(command)
		}
		if version == "" {
			version = "?"
		}
		rows = append(rows, []string{e.DisplayName, e.Category, status, version, command})
	}
	return rows
}

var toolHeaders = []string{"TOOL", "CATEGORY", "STATUS", "VERSION", "COMMAND"}
