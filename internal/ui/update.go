package ui

import (
	"fmt"
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	zone "github.com/lrstanley/bubblezone"

	"github.com/justelson/devscope/internal/cache"
	"github.com/justelson/devscope/internal/registry"
)

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.MouseMsg:
		// Clickable tabs and the filter zone
		if msg.Action == tea.MouseActionRelease && msg.Button == tea.MouseButtonLeft {
			for i, name := range tabs() {
				if zone.Get("tab." + name).InBounds(msg) {
					m.activeTab = i
					return m, nil
				}
			}
			if zone.Get("filter.input").InBounds(msg) {
				if !m.filter.Focused() {
					m.filter.Focus()
				}
				return m, nil
			}
		}
		return m, nil
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		inner := msg.Width - 2
		if inner < 10 {
			inner = 10
		}
		tiw := inner - 3 // account for " / " prompt
		if tiw < 5 {
			tiw = 5
		}
		m.filter.Width = tiw
		return m, nil
	case tea.KeyMsg:
		// Always allow Ctrl+C to quit, even when the filter is focused
		if msg.String() == "ctrl+c" {
			m.quitting = true
			return m, tea.Quit
		}
		if m.filter.Focused() {
			switch msg.String() {
			case "esc":
				m.filter.Blur()
				m.filter.SetValue("")
				return m, nil
			case "enter":
				m.filter.Blur()
				return m, nil
			}
			var cmd tea.Cmd
			m.filter, cmd = m.filter.Update(msg)
			return m, cmd
		}
		switch msg.String() {
		case "q":
			m.quitting = true
			return m, tea.Quit
		case "/":
			m.filter.Focus()
			return m, nil
		case "left", "h", "shift+tab":
			if m.activeTab > 0 {
				m.activeTab--
			} else {
				m.activeTab = len(tabs()) - 1
			}
			return m, nil
		case "right", "l", "tab":
			m.activeTab++
			if m.activeTab >= len(tabs()) {
				m.activeTab = 0
			}
			return m, nil
		case "r":
			if m.scanning {
				return m, nil
			}
			m.scanning = true
			m.doneCats = 0
			m.results = make(map[registry.Category][]cache.Entry, m.totalCats)
			m.notice = ""
			return m, tea.Batch(scanAllCmd(m.sc), m.spin.Tick)
		}
		return m, nil
	case categoryScannedMsg:
		m.results[msg.category] = msg.entries
		m.doneCats++
		if m.doneCats >= m.totalCats {
			m.scanning = false
			m.updatedAt = time.Now()
			return m, finalizeScanCmd(m.sc)
		}
		return m, nil
	case scanFinishedMsg:
		if msg.saveErr != nil {
			m.notice = fmt.Sprintf("cache save failed: %v", msg.saveErr)
		}
		return m, nil
	case tickMsg:
		m.now = time.Time(msg)
		// Throttle git checks to every 10 seconds
		var cmd tea.Cmd
		if m.lastGitCheck.IsZero() || time.Since(m.lastGitCheck) >= 10*time.Second {
			m.lastGitCheck = time.Now()
			cmd = gitInfoCmd(m.cwd)
		}
		if cmd != nil {
			return m, tea.Batch(tickCmd(), cmd)
		}
		return m, tickCmd()
	case gitInfoMsg:
		m.git = msg.info
		m.inRepo = msg.ok
		return m, nil
	case noticeMsg:
		m.notice = string(msg)
		return m, nil
	case spinner.TickMsg:
		if m.scanning {
			var cmd tea.Cmd
			m.spin, cmd = m.spin.Update(msg)
			return m, cmd
		}
		return m, nil
	}
	return m, nil
}
