package tui

import "github.com/mmcdole/shelf/internal/tui/components"

// Tab is the top-level screen selected from the bottom navigation
type Tab int

const (
	TabHome Tab = iota
	TabLibrary
	TabDiscover
	TabReading
	TabProfile

	tabCount = 5
)

func (t Tab) String() string {
	switch t {
	case TabHome:
		return "home"
	case TabLibrary:
		return "library"
	case TabDiscover:
		return "discover"
	case TabReading:
		return "reading"
	case TabProfile:
		return "profile"
	default:
		return "unknown"
	}
}

// Title is the header text shown while the tab is active
func (t Tab) Title() string {
	switch t {
	case TabLibrary:
		return "My Library"
	case TabDiscover:
		return "Discover"
	case TabReading:
		return "Reading"
	case TabProfile:
		return "Profile"
	default:
		return "BookTracker"
	}
}

// Cycle returns the tab delta positions away, wrapping
func (t Tab) Cycle(delta int) Tab {
	return Tab(((int(t)+delta)%tabCount + tabCount) % tabCount)
}

// LibraryView is the sub-view of the library tab
type LibraryView int

const (
	ViewMyBooks LibraryView = iota
	ViewBrowse
)

func (v LibraryView) String() string {
	if v == ViewBrowse {
		return "browse"
	}
	return "my-books"
}

// navEntries are the bottom navigation items, indexed by Tab
var navEntries = []components.NavEntry{
	{Key: "1", Label: "Home"},
	{Key: "2", Label: "Library"},
	{Key: "3", Label: "Discover"},
	{Key: "4", Label: "Reading"},
	{Key: "5", Label: "Profile"},
}

var librarySubTabs = []string{"My Books", "Browse"}
