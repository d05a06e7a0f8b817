package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	xansi "github.com/charmbracelet/x/ansi"
	zone "github.com/lrstanley/bubblezone"
)

// renderBanner creates a welcome banner and can include additional lines inside the box.
func renderBanner(cwd string, extra []string) string {
	lines := []string{
		"✻ Welcome to devscope!",
		"",
		"press 'r' to rescan, '/' to filter, tab to switch categories",
		"",
	}
	if len(extra) > 0 {
		lines = append(lines, extra...)
		lines = append(lines, "")
	}
	lines = append(lines, fmt.Sprintf("cwd: %s", cwd))

	// compute max display width (ignore ANSI codes)
	max := 0
	for _, ln := range lines {
		if w := xansi.StringWidth(ln); w > max {
			max = w
		}
	}
	top := "╭" + strings.Repeat("─", max+2) + "╮\n"
	bot := "╰" + strings.Repeat("─", max+2) + "╯\n"
	var sb strings.Builder
	sb.WriteString(top)
	for _, ln := range lines {
		pad := max - xansi.StringWidth(ln)
		sb.WriteString("│ ")
		sb.WriteString(ln)
		if pad > 0 {
			sb.WriteString(strings.Repeat(" ", pad))
		}
		sb.WriteString(" │\n")
	}
	sb.WriteString(bot)
	return sb.String()
}

// renderTabs draws the category tab row. Each tab is wrapped in a zone so
// clicks can activate it.
func renderTabs(width, active int) string {
	activeStyle := lipgloss.NewStyle().
		Foreground(Vitesse.OnAccent).
		Background(Vitesse.Primary).
		Padding(0, 1)
	idleStyle := lipgloss.NewStyle().
		Foreground(Vitesse.Secondary).
		Padding(0, 1)

	parts := make([]string, 0, len(tabs()))
	for i, name := range tabs() {
		st := idleStyle
		if i == active {
			st = activeStyle
		}
		parts = append(parts, zone.Mark("tab."+name, st.Render(name)))
	}
	line := "  " + strings.Join(parts, " ")
	if width > 0 {
		line = lipgloss.NewStyle().MaxWidth(width).Render(line)
	}
	return line + "\n"
}

// renderInputUI draws a single-line bordered input box at the given width.
func renderInputUI(width int, content string) string {
	w := width
	if w <= 0 {
		w = 100
	}
	if w < 10 {
		w = 10
	}
	inner := w - 2
	cw := xansi.StringWidth(content)
	if cw > inner {
		cw = inner
	}
	pad := inner - cw
	top := "╭" + strings.Repeat("─", inner) + "╮\n"
	bot := "╰" + strings.Repeat("─", inner) + "╯\n"
	var sb strings.Builder
	sb.WriteString(top)
	sb.WriteString("│")
	sb.WriteString(zone.Mark("filter.input", content))
	if pad > 0 {
		sb.WriteString(strings.Repeat(" ", pad))
	}
	sb.WriteString("│\n")
	sb.WriteString(bot)
	return sb.String()
}

// renderStatusBarStyled draws a single-line status bar with chip-styled
// segments, left and right aligned.
func renderStatusBarStyled(width int, left, right []string) string {
	w := width
	if w <= 0 {
		w = 100
	}
	var lparts []string
	for i, s := range left {
		if i == 0 {
			lparts = append(lparts, ChipStyle(Vitesse.Blue).Render(s))
			continue
		}
		lparts = append(lparts, StatusBarBase().Padding(0, 1).Render(s))
	}
	var rparts []string
	for _, s := range right {
		rparts = append(rparts, ChipStyle(Vitesse.Primary).Render(s))
	}
	l := strings.Join(lparts, "")
	r := strings.Join(rparts, " ")

	lw := xansi.StringWidth(l)
	rw := xansi.StringWidth(r)
	pad := w - lw - rw
	if pad < 0 {
		pad = 0
	}
	gap := StatusBarBase().Render(strings.Repeat(" ", pad))
	return l + gap + r
}
