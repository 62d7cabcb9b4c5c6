package tui

import (
	"log/slog"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/mmcdole/shelf/internal/domain"
	"github.com/mmcdole/shelf/internal/feed"
	"github.com/mmcdole/shelf/internal/log"
	"github.com/mmcdole/shelf/internal/tui/components"
	"github.com/mmcdole/shelf/internal/tui/styles"
)

// Model is the main Bubble Tea model for the application
type Model struct {
	Ready bool

	// Data
	catalog *domain.Catalog

	// Navigation state; the two variables never change each other
	activeTab   Tab
	libraryView LibraryView

	// Mounted panes, nil while not visible
	browse   *components.Browse
	discover *components.Discover

	// UI Components
	viewport viewport.Model
	help     help.Model

	// Dimensions
	Width  int
	Height int

	logger *slog.Logger
}

// NewModel creates a new application model over catalog
func NewModel(catalog *domain.Catalog, logger *slog.Logger) Model {
	if logger == nil {
		logger = log.NullLogger()
	}

	vp := viewport.New(0, 0)
	vp.KeyMap = viewport.KeyMap{
		Up:           Keys.Up,
		Down:         Keys.Down,
		HalfPageUp:   Keys.HalfUp,
		HalfPageDown: Keys.HalfDown,
		PageUp:       Keys.PageUp,
		PageDown:     Keys.PageDown,
	}

	h := help.New()
	h.Styles.ShortKey = styles.HelpKeyStyle
	h.Styles.ShortDesc = styles.HelpDescStyle
	h.Styles.FullKey = styles.HelpKeyStyle
	h.Styles.FullDesc = styles.HelpDescStyle

	return Model{
		catalog:     catalog,
		activeTab:   TabHome,
		libraryView: ViewMyBooks,
		viewport:    vp,
		help:        h,
		logger:      logger,
	}
}

// ActiveTab returns the selected top-level tab
func (m Model) ActiveTab() Tab { return m.activeTab }

// LibraryView returns the library sub-view selection
func (m Model) LibraryView() LibraryView { return m.libraryView }

// BrowsePane returns the mounted browse pane, or nil
func (m Model) BrowsePane() *components.Browse { return m.browse }

// DiscoverPane returns the mounted discover pane, or nil
func (m Model) DiscoverPane() *components.Discover { return m.discover }

// Init initializes the application
func (m Model) Init() tea.Cmd {
	return nil
}

// Update handles all messages
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	prevTab, prevView := m.activeTab, m.libraryView

	var cmd tea.Cmd
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.Width = msg.Width
		m.Height = msg.Height
		m.Ready = true
		m.updateLayout()

	case tea.KeyMsg:
		cmd = m.handleKeyMsg(msg)

	case tea.MouseMsg:
		cmd = m.handleMouseMsg(msg)

	default:
		// Cursor blink and other input messages
		if pane := m.activePane(); pane != nil {
			cmd = pane.Update(msg)
		}
	}

	if m.activeTab != prevTab {
		m.logger.Debug("tab changed", "from", prevTab.String(), "to", m.activeTab.String())
	}
	if m.libraryView != prevView {
		m.logger.Debug("library view changed", "from", prevView.String(), "to", m.libraryView.String())
	}

	m.syncMounts()
	m.syncViewport()
	if m.activeTab != prevTab || m.libraryView != prevView {
		m.viewport.GotoTop()
	}
	return m, cmd
}

// pane is the interface shared by the browse and discover panes
type pane interface {
	Update(tea.Msg) tea.Cmd
	Focused() bool
}

// activePane returns the pane visible on the current screen, if any
func (m Model) activePane() pane {
	switch {
	case m.activeTab == TabDiscover && m.discover != nil:
		return m.discover
	case m.activeTab == TabLibrary && m.libraryView == ViewBrowse && m.browse != nil:
		return m.browse
	}
	return nil
}

// inputFocused reports whether a pane's text input owns the keyboard
func (m Model) inputFocused() bool {
	p := m.activePane()
	return p != nil && p.Focused()
}

// selectTab sets the active tab without touching the library view
func (m *Model) selectTab(t Tab) {
	m.activeTab = t
}

// setLibraryView sets the library sub-view without touching the active tab
func (m *Model) setLibraryView(v LibraryView) {
	m.libraryView = v
}

// syncMounts creates panes that became visible and drops the ones that
// left the screen, so their query and genre start fresh next time
func (m *Model) syncMounts() {
	width := m.contentWidth()

	showBrowse := m.activeTab == TabLibrary && m.libraryView == ViewBrowse
	switch {
	case showBrowse && m.browse == nil:
		m.browse = components.NewBrowse(m.catalog.Books())
		m.browse.SetWidth(width)
		m.logger.Debug("mounted browse pane", "books", m.catalog.Len())
	case !showBrowse && m.browse != nil:
		m.browse = nil
	}

	showDiscover := m.activeTab == TabDiscover
	switch {
	case showDiscover && m.discover == nil:
		m.discover = components.NewDiscover(m.catalog.Books(), feed.Trending(m.catalog))
		m.discover.SetWidth(width)
		m.logger.Debug("mounted discover pane", "books", m.catalog.Len())
	case !showDiscover && m.discover != nil:
		m.discover = nil
	}
}

// syncViewport re-renders the active screen into the scrolling viewport
func (m *Model) syncViewport() {
	if !m.Ready {
		return
	}
	m.viewport.SetContent(m.renderContent())
}

// View renders the application
func (m Model) View() string {
	if !m.Ready {
		return "Loading..."
	}

	return lipgloss.JoinVertical(lipgloss.Left,
		m.renderHeader(),
		m.viewport.View(),
		m.renderNav(),
		m.renderFooter(),
	)
}

func (m Model) renderHeader() string {
	return components.RenderHeader(m.activeTab.Title(), m.activeTab != TabDiscover, m.Width)
}

func (m Model) renderNav() string {
	return components.RenderBottomNav(navEntries, int(m.activeTab), m.Width)
}

func (m Model) renderFooter() string {
	return m.help.View(Keys)
}
