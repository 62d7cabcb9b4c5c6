package tui

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/mmcdole/shelf/internal/tui/components"
)

// Layout constants
const (
	NavHeight      = 1
	ContentPadding = 1 // Left and right
	GridColumns    = 2
)

func (m Model) headerHeight() int {
	return lipgloss.Height(m.renderHeader())
}

func (m Model) footerHeight() int {
	return lipgloss.Height(m.renderFooter())
}

// contentHeight is the viewport height left between the chrome rows
func (m Model) contentHeight() int {
	return max(m.Height-m.headerHeight()-NavHeight-m.footerHeight(), 1)
}

func (m Model) contentWidth() int {
	return max(m.Width-2*ContentPadding, components.MinCardWidth)
}

// navRow is the screen row of the bottom navigation
func (m Model) navRow() int {
	return m.headerHeight() + m.viewport.Height
}

// updateLayout updates component sizes based on window size
func (m *Model) updateLayout() {
	if m.Width == 0 || m.Height == 0 {
		return
	}

	m.help.Width = m.Width
	m.viewport.Width = m.Width
	m.viewport.Height = m.contentHeight()

	width := m.contentWidth()
	if m.browse != nil {
		m.browse.SetWidth(width)
	}
	if m.discover != nil {
		m.discover.SetWidth(width)
	}
}
