package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/mmcdole/shelf/internal/tui/components"
)

// handleKeyMsg handles keyboard input
func (m *Model) handleKeyMsg(msg tea.KeyMsg) tea.Cmd {
	if key.Matches(msg, Keys.ForceQuit) {
		return tea.Quit
	}

	// A focused search input takes every key except tab switching
	if m.inputFocused() {
		switch {
		case key.Matches(msg, Keys.NextTab):
			m.selectTab(m.activeTab.Cycle(1))
		case key.Matches(msg, Keys.PrevTab):
			m.selectTab(m.activeTab.Cycle(-1))
		default:
			return m.activePane().Update(msg)
		}
		return nil
	}

	// Global keys
	switch {
	case key.Matches(msg, Keys.Quit):
		return tea.Quit

	case key.Matches(msg, Keys.Help):
		m.help.ShowAll = !m.help.ShowAll
		m.updateLayout()
		return nil

	case key.Matches(msg, Keys.Home):
		m.selectTab(TabHome)
	case key.Matches(msg, Keys.Library):
		m.selectTab(TabLibrary)
	case key.Matches(msg, Keys.Discover):
		m.selectTab(TabDiscover)
	case key.Matches(msg, Keys.Reading):
		m.selectTab(TabReading)
	case key.Matches(msg, Keys.Profile):
		m.selectTab(TabProfile)
	case key.Matches(msg, Keys.NextTab):
		m.selectTab(m.activeTab.Cycle(1))
	case key.Matches(msg, Keys.PrevTab):
		m.selectTab(m.activeTab.Cycle(-1))

	case m.activeTab == TabLibrary && key.Matches(msg, Keys.MyBooks):
		m.setLibraryView(ViewMyBooks)
	case m.activeTab == TabLibrary && key.Matches(msg, Keys.Browse):
		m.setLibraryView(ViewBrowse)
	case m.activeTab == TabLibrary && m.libraryView == ViewMyBooks && key.Matches(msg, Keys.Add):
		m.setLibraryView(ViewBrowse)

	case key.Matches(msg, Keys.Up, Keys.Down, Keys.HalfUp, Keys.HalfDown, Keys.PageUp, Keys.PageDown):
		var cmd tea.Cmd
		m.viewport, cmd = m.viewport.Update(msg)
		return cmd

	default:
		// Pane keys: "/" to search, genre cycling
		if p := m.activePane(); p != nil {
			return p.Update(msg)
		}
	}
	return nil
}

// handleMouseMsg scrolls the content with the wheel and selects tabs on click
func (m *Model) handleMouseMsg(msg tea.MouseMsg) tea.Cmd {
	if msg.Action == tea.MouseActionPress && msg.Button == tea.MouseButtonLeft && msg.Y == m.navRow() {
		if idx := components.NavEntryAt(msg.X, m.Width, len(navEntries)); idx >= 0 {
			m.selectTab(Tab(idx))
		}
		return nil
	}

	var cmd tea.Cmd
	m.viewport, cmd = m.viewport.Update(msg)
	return cmd
}
