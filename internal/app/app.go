package app

import (
	tea "github.com/charmbracelet/bubbletea"
	zone "github.com/lrstanley/bubblezone"

	"github.com/justelson/devscope/internal/scan"
	"github.com/justelson/devscope/internal/ui"
)

// Start runs the TUI program over the given scanner and returns any error.
func Start(sc *scan.Scanner) error {
	// Initialize global bubblezone manager for mouse-aware zones.
	zone.NewGlobal()
	if _, err := tea.NewProgram(ui.InitialModel(sc), tea.WithAltScreen(), tea.WithMouseCellMotion()).Run(); err != nil {
		return err
	}
	return nil
}
