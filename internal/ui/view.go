package ui

import (
	"fmt"
	"strings"
	"time"

	"github.com/sahilm/fuzzy"

	"github.com/justelson/devscope/internal/cache"
	appver "github.com/justelson/devscope/internal/version"
)

func (m model) View() string {
	if m.quitting {
		return "Goodbye!\n"
	}

	b := &strings.Builder{}

	var status []string
	status = append(status, "devscope — developer tool presence")
	status = append(status, "")
	if m.scanning {
		status = append(status, fmt.Sprintf("  %s scanning… %d/%d categories", m.spin.View(), m.doneCats, m.totalCats))
		status = append(status, "")
	}
	status = append(status, m.toolLines()...)

	b.WriteString(renderBanner(m.cwd, status))
	b.WriteString("\n")
	b.WriteString(renderTabs(m.width, m.activeTab))
	b.WriteString("\n")
	if m.notice != "" {
		fmt.Fprintf(b, "  %s\n\n", m.notice)
	}
	b.WriteString(renderInputUI(m.width, m.filter.View()))
	b.WriteString(m.renderStatusBarLine())
	return b.String()
}

// toolLines renders the rows for the active tab, narrowed by the fuzzy
// filter when one is typed.
func (m model) toolLines() []string {
	entries := m.entriesForTab()
	if q := strings.TrimSpace(m.filter.Value()); q != "" {
		names := make([]string, len(entries))
		for i, e := range entries {
			names[i] = e.ID + " " + e.DisplayName
		}
		matches := fuzzy.Find(q, names)
		picked := make([]cache.Entry, 0, len(matches))
		for _, mt := range matches {
			picked = append(picked, entries[mt.Index])
		}
		entries = picked
	}
	if len(entries) == 0 {
		if m.scanning {
			return nil
		}
		return []string{"  (no tools match)"}
	}

	lines := make([]string, 0, len(entries))
	for _, e := range entries {
		if !e.Installed {
			lines = append(lines, MutedStyle().Render(fmt.Sprintf("  • %-14s: not installed", e.ID)))
			continue
		}
		ver := e.Version
		if ver == "" {
			ver = "(unknown version)"
		}
		line := fmt.Sprintf("  • %-14s: %s", e.ID, AccentBold().Render(ver))
		if e.Path != "" {
			line += MutedStyle().Render("  " + e.Path)
		}
		lines = append(lines, line)
	}
	return lines
}

// renderStatusBarLine builds the status bar string (one line plus a newline)
// placed directly under the filter input.
func (m model) renderStatusBarLine() string {
	now := m.now
	if now.IsZero() {
		now = time.Now()
	}
	leftParts := []string{now.Format("2006-01-02 15:04:05")}
	if !m.updatedAt.IsZero() {
		leftParts = append(leftParts, "scanned "+m.updatedAt.Format("15:04:05"))
	}
	rightParts := []string{"v" + appver.AppVersion}
	if m.inRepo {
		rightParts = append(rightParts, "git")
		if m.git.Branch != "" {
			rightParts = append(rightParts, m.git.Branch)
		}
		if m.git.ShortSHA != "" {
			rightParts = append(rightParts, m.git.ShortSHA)
		}
		if m.git.Dirty {
			rightParts = append(rightParts, "*")
		}
	}
	return renderStatusBarStyled(m.width, leftParts, rightParts) + "\n"
}
