package ui

import (
	"os"
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/justelson/devscope/internal/cache"
	"github.com/justelson/devscope/internal/gitscan"
	"github.com/justelson/devscope/internal/registry"
	"github.com/justelson/devscope/internal/scan"
)

// Model for TUI
type model struct {
	sc *scan.Scanner

	results   map[registry.Category][]cache.Entry
	scanning  bool
	doneCats  int
	totalCats int
	updatedAt time.Time
	quitting  bool

	cwd    string
	width  int
	height int

	// fuzzy filter input
	filter textinput.Model

	// tabs: index 0 is the all-categories view, the rest follow
	// registry.Categories() order
	activeTab int

	spin spinner.Model

	// status bar state
	now          time.Time
	git          gitscan.RepoInfo
	inRepo       bool
	lastGitCheck time.Time
	notice       string
}

func initialModel(sc *scan.Scanner) model {
	wd, _ := os.Getwd()
	m := model{
		sc:      sc,
		results: make(map[registry.Category][]cache.Entry, len(registry.Categories())),
		cwd:     wd,
	}
	for _, cat := range registry.Categories() {
		if len(sc.Defs(cat)) > 0 {
			m.totalCats++
		}
	}
	m.scanning = m.totalCats > 0

	ti := textinput.New()
	ti.Prompt = " / "
	ti.Placeholder = "filter tools"
	ti.CharLimit = 128
	ti.Blur() // start blurred; press '/' to focus
	m.filter = ti

	sp := spinner.New()
	sp.Spinner = spinner.MiniDot
	sp.Style = lipgloss.NewStyle().Foreground(Vitesse.Primary)
	m.spin = sp
	return m
}

// public constructor for app
func InitialModel(sc *scan.Scanner) tea.Model { return initialModel(sc) }

func (m model) Init() tea.Cmd {
	return tea.Batch(scanAllCmd(m.sc), m.spin.Tick, tickCmd(), gitInfoCmd(m.cwd))
}

// tabs returns the tab labels in render order.
func tabs() []string {
	out := []string{"all"}
	for _, cat := range registry.Categories() {
		out = append(out, string(cat))
	}
	return out
}

// entriesForTab returns the rows for the active tab in catalog order.
func (m model) entriesForTab() []cache.Entry {
	if m.activeTab == 0 {
		var all []cache.Entry
		for _, cat := range registry.Categories() {
			all = append(all, m.results[cat]...)
		}
		return all
	}
	cats := registry.Categories()
	if m.activeTab-1 < len(cats) {
		return m.results[cats[m.activeTab-1]]
	}
	return nil
}
