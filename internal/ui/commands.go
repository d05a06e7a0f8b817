package ui

import (
	"context"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/justelson/devscope/internal/gitscan"
	"github.com/justelson/devscope/internal/registry"
	"github.com/justelson/devscope/internal/scan"
)

// scanAllCmd kicks off one command per category so results stream into the
// dashboard as each category settles.
func scanAllCmd(sc *scan.Scanner) tea.Cmd {
	cmds := make([]tea.Cmd, 0, len(registry.Categories()))
	for _, cat := range registry.Categories() {
		if len(sc.Defs(cat)) == 0 {
			continue
		}
		cmds = append(cmds, scanCategoryCmd(sc, cat))
	}
	return tea.Batch(cmds...)
}

func scanCategoryCmd(sc *scan.Scanner, cat registry.Category) tea.Cmd {
	return func() tea.Msg {
		entries := sc.ScanCategory(context.Background(), cat, nil)
		return categoryScannedMsg{category: cat, entries: entries}
	}
}

// finalizeScanCmd marks the cycle complete and persists the cache once,
// after the last category lands.
func finalizeScanCmd(sc *scan.Scanner) tea.Cmd {
	return func() tea.Msg {
		sc.Store().MarkScanned()
		return scanFinishedMsg{saveErr: sc.Store().Save()}
	}
}

func gitInfoCmd(dir string) tea.Cmd {
	return func() tea.Msg {
		info, err := gitscan.Inspect(dir)
		return gitInfoMsg{info: info, ok: err == nil}
	}
}

func tickCmd() tea.Cmd {
	return tea.Tick(time.Second, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}
