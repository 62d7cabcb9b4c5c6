package tui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/mmcdole/shelf/internal/browse"
	"github.com/mmcdole/shelf/internal/catalog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestModel(t *testing.T) Model {
	t.Helper()
	c, err := catalog.Default()
	require.NoError(t, err)

	m := NewModel(c, nil)
	return send(t, m, tea.WindowSizeMsg{Width: 80, Height: 200})
}

func send(t *testing.T, m Model, msgs ...tea.Msg) Model {
	t.Helper()
	for _, msg := range msgs {
		updated, _ := m.Update(msg)
		var ok bool
		m, ok = updated.(Model)
		require.True(t, ok)
	}
	return m
}

func keys(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func headerLine(m Model) string {
	return strings.Split(m.View(), "\n")[0]
}

func TestModel_NotReadyBeforeSize(t *testing.T) {
	c, err := catalog.Default()
	require.NoError(t, err)
	m := NewModel(c, nil)
	assert.Equal(t, "Loading...", m.View())
}

func TestModel_InitialState(t *testing.T) {
	m := newTestModel(t)

	assert.Equal(t, TabHome, m.ActiveTab())
	assert.Equal(t, ViewMyBooks, m.LibraryView())
	assert.Nil(t, m.BrowsePane())
	assert.Nil(t, m.DiscoverPane())

	view := m.View()
	assert.Contains(t, headerLine(m), "BookTracker")
	assert.Contains(t, view, "Welcome back!")
	assert.Contains(t, view, "You've read 284 pages this week")
	assert.Contains(t, view, "Continue Reading")
	assert.Contains(t, view, "Project Hail Mary")
	assert.Contains(t, view, "Educated")
	assert.Contains(t, view, "Recommended for You")
	assert.Contains(t, view, "Atomic Habits")
}

func TestModel_TabTitles(t *testing.T) {
	m := newTestModel(t)

	tests := []struct {
		key   string
		tab   Tab
		title string
	}{
		{"2", TabLibrary, "My Library"},
		{"3", TabDiscover, "Discover"},
		{"4", TabReading, "Reading"},
		{"5", TabProfile, "Profile"},
		{"1", TabHome, "BookTracker"},
	}

	for _, tt := range tests {
		t.Run(tt.title, func(t *testing.T) {
			m = send(t, m, keys(tt.key))
			assert.Equal(t, tt.tab, m.ActiveTab())
			assert.Contains(t, headerLine(m), tt.title)
		})
	}
}

func TestModel_SearchGlyphHiddenOnDiscover(t *testing.T) {
	m := newTestModel(t)
	assert.Contains(t, headerLine(m), "🔍")

	m = send(t, m, keys("3"))
	assert.NotContains(t, headerLine(m), "🔍")
	assert.Contains(t, headerLine(m), "🔔")
}

func TestModel_TabCycling(t *testing.T) {
	m := newTestModel(t)

	m = send(t, m, tea.KeyMsg{Type: tea.KeyShiftTab})
	assert.Equal(t, TabProfile, m.ActiveTab())

	m = send(t, m, tea.KeyMsg{Type: tea.KeyTab})
	assert.Equal(t, TabHome, m.ActiveTab())

	m = send(t, m, tea.KeyMsg{Type: tea.KeyTab}, tea.KeyMsg{Type: tea.KeyTab})
	assert.Equal(t, TabDiscover, m.ActiveTab())
}

func TestModel_LibraryViews(t *testing.T) {
	m := newTestModel(t)
	m = send(t, m, keys("2"))

	view := m.View()
	assert.Contains(t, view, "My Books")
	assert.Contains(t, view, "The Midnight Library")
	assert.Contains(t, view, "Dune")
	assert.NotContains(t, view, "Sapiens", "my books shows the first six only")
	assert.Nil(t, m.BrowsePane())

	m = send(t, m, keys("b"))
	assert.Equal(t, ViewBrowse, m.LibraryView())
	require.NotNil(t, m.BrowsePane())
	assert.Contains(t, m.View(), "Browse Library")
	assert.Contains(t, m.View(), "10 books found")

	m = send(t, m, keys("m"))
	assert.Equal(t, ViewMyBooks, m.LibraryView())
	assert.Nil(t, m.BrowsePane())
}

func TestModel_AddAffordanceOpensBrowse(t *testing.T) {
	m := newTestModel(t)

	m = send(t, m, keys("a"))
	assert.Equal(t, ViewMyBooks, m.LibraryView(), "add only applies on the library tab")

	m = send(t, m, keys("2"), keys("+"))
	assert.Equal(t, ViewBrowse, m.LibraryView())
	assert.Equal(t, TabLibrary, m.ActiveTab())
}

func TestModel_VariablesAreIndependent(t *testing.T) {
	m := newTestModel(t)

	m = send(t, m, keys("2"), keys("b"), keys("4"))
	assert.Equal(t, TabReading, m.ActiveTab())
	assert.Equal(t, ViewBrowse, m.LibraryView(), "changing tab keeps the library view")

	m = send(t, m, keys("2"))
	assert.Equal(t, ViewBrowse, m.LibraryView())
	require.NotNil(t, m.BrowsePane())
}

func TestModel_BrowseFiltering(t *testing.T) {
	m := newTestModel(t)
	m = send(t, m, keys("2"), keys("b"), keys("/"), keys("dune"))

	require.NotNil(t, m.BrowsePane())
	assert.True(t, m.BrowsePane().Focused())
	assert.Equal(t, "dune", m.BrowsePane().Query())
	assert.Contains(t, m.View(), "1 book found")

	m = send(t, m, keys("zz"))
	assert.Contains(t, m.View(), browse.NoResultsMessage)
}

func TestModel_FocusedInputSwallowsTabKeys(t *testing.T) {
	m := newTestModel(t)
	m = send(t, m, keys("2"), keys("b"), keys("/"), keys("1q"))

	assert.Equal(t, TabLibrary, m.ActiveTab())
	assert.Equal(t, "1q", m.BrowsePane().Query())

	// Tab still switches
	m = send(t, m, tea.KeyMsg{Type: tea.KeyTab})
	assert.Equal(t, TabDiscover, m.ActiveTab())
}

func TestModel_BrowseResetsOnRemount(t *testing.T) {
	m := newTestModel(t)
	m = send(t, m, keys("2"), keys("b"), keys("l"), keys("/"), keys("dune"), tea.KeyMsg{Type: tea.KeyEsc})

	require.NotNil(t, m.BrowsePane())
	assert.NotEqual(t, browse.AllGenres, m.BrowsePane().Genre())

	m = send(t, m, keys("1"), keys("2"))
	require.NotNil(t, m.BrowsePane())
	assert.Equal(t, "", m.BrowsePane().Query())
	assert.Equal(t, browse.AllGenres, m.BrowsePane().Genre())
}

func TestModel_Discover(t *testing.T) {
	m := newTestModel(t)
	m = send(t, m, keys("3"))

	require.NotNil(t, m.DiscoverPane())
	view := m.View()
	assert.Contains(t, view, "Trending Now")
	assert.Contains(t, view, "The Seven Husbands of Evelyn Hugo")
	assert.Contains(t, view, "Where the Crawdads Sing")
	assert.NotContains(t, view, "The Silent Patient")

	m = send(t, m, keys("/"), keys("sapiens"))
	assert.NotContains(t, m.View(), "Trending Now")
	assert.Contains(t, m.View(), "Sapiens")

	m = send(t, m, tea.KeyMsg{Type: tea.KeyEsc}, keys("1"))
	assert.Equal(t, TabHome, m.ActiveTab())
	assert.Nil(t, m.DiscoverPane())
}

func TestModel_ReadingAndProfile(t *testing.T) {
	m := newTestModel(t)

	m = send(t, m, keys("4"))
	view := m.View()
	assert.Contains(t, view, "Currently Reading")
	assert.Contains(t, view, "Project Hail Mary")
	assert.Contains(t, view, "Educated")
	assert.Contains(t, view, "Dune")
	assert.Contains(t, view, "page 150 of 688")

	m = send(t, m, keys("5"))
	view = m.View()
	assert.Contains(t, view, "Book Lover")
	assert.Contains(t, view, "Reading enthusiast since 2020")
	assert.Contains(t, view, "47")
	assert.Contains(t, view, "Day Streak")
}

func TestModel_Quit(t *testing.T) {
	m := newTestModel(t)

	_, cmd := m.Update(keys("q"))
	require.NotNil(t, cmd)
	assert.IsType(t, tea.QuitMsg{}, cmd())

	// ctrl+c quits even while typing
	m = send(t, m, keys("2"), keys("b"), keys("/"))
	_, cmd = m.Update(tea.KeyMsg{Type: tea.KeyCtrlC})
	require.NotNil(t, cmd)
	assert.IsType(t, tea.QuitMsg{}, cmd())
}

func TestModel_MouseSelectsTab(t *testing.T) {
	m := newTestModel(t)

	m = send(t, m, tea.MouseMsg{
		X:      75,
		Y:      m.navRow(),
		Action: tea.MouseActionPress,
		Button: tea.MouseButtonLeft,
	})
	assert.Equal(t, TabProfile, m.ActiveTab())

	// Clicks outside the nav row do nothing
	m = send(t, m, tea.MouseMsg{
		X:      0,
		Y:      0,
		Action: tea.MouseActionPress,
		Button: tea.MouseButtonLeft,
	})
	assert.Equal(t, TabProfile, m.ActiveTab())
}

func TestModel_HelpToggle(t *testing.T) {
	m := newTestModel(t)
	short := m.contentHeight()

	m = send(t, m, keys("?"))
	assert.True(t, m.help.ShowAll)
	assert.Less(t, m.contentHeight(), short)
	assert.Contains(t, m.View(), "half page up")
}

func TestTab_Cycle(t *testing.T) {
	assert.Equal(t, TabLibrary, TabHome.Cycle(1))
	assert.Equal(t, TabProfile, TabHome.Cycle(-1))
	assert.Equal(t, TabHome, TabProfile.Cycle(1))
	assert.Equal(t, TabReading, TabHome.Cycle(8))
}
