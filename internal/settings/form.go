package settings

import (
	"fmt"

	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"

	"github.com/justelson/devscope/internal/registry"
)

// RunForm launches an interactive form to configure settings.json: which
// categories a default scan covers and the probe concurrency.
func RunForm() error {
	cur, _ := Load()

	selected := make([]string, len(cur.Categories))
	copy(selected, cur.Categories)
	if len(selected) == 0 {
		for _, c := range registry.Categories() {
			selected = append(selected, string(c))
		}
	}
	concurrency := fmt.Sprintf("%d", cur.Concurrency)

	green := lipgloss.Color("#03BF87")
	theme := huh.ThemeCharm()
	theme.FieldSeparator = lipgloss.NewStyle()
	theme.Blurred.Title = theme.Blurred.Title.Width(18).Foreground(lipgloss.Color("7"))
	theme.Focused.Title = theme.Focused.Title.Width(18).Foreground(green).Bold(true)
	theme.Blurred.SelectedOption = theme.Blurred.SelectedOption.Foreground(lipgloss.Color("243"))
	theme.Focused.SelectedOption = lipgloss.NewStyle().Foreground(green)
	theme.Focused.Base.BorderForeground(green)

	opts := make([]huh.Option[string], 0, len(registry.Categories()))
	for _, c := range registry.Categories() {
		label := fmt.Sprintf("%s (%d tools)", c, len(registry.ByCategory(c)))
		opts = append(opts, huh.NewOption(label, string(c)))
	}

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewNote().Title("Settings").Description("Choose which categories a default scan covers."),
			huh.NewMultiSelect[string]().
				Title("Categories").
				Options(opts...).
				Height(len(opts)+2).
				Value(&selected),
			huh.NewInput().
				Title("Concurrency").
				Description("Max probes in flight per batch.").
				Validate(validateConcurrency).
				Value(&concurrency),
		),
	).WithTheme(theme).WithWidth(64)

	if err := form.Run(); err != nil {
		return err // form canceled or failed
	}

	next := cur
	next.Categories = selected
	if n, err := parsePositive(concurrency); err == nil {
		next.Concurrency = n
	}
	// Selecting every category means "all", stored as empty.
	if len(next.Categories) == len(registry.Categories()) {
		next.Categories = nil
	}
	if err := Save(next); err != nil {
		return err
	}
	fmt.Printf("\n✓ saved settings.json\n\n")
	return nil
}

func validateConcurrency(s string) error {
	_, err := parsePositive(s)
	return err
}

func parsePositive(s string) (int, error) {
	var n int
	if _, err := fmt.Sscanf(s, "%d", &n); err != nil || n <= 0 {
		return 0, fmt.Errorf("enter a positive number")
	}
	return n, nil
}
