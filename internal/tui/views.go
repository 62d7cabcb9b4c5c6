package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mmcdole/shelf/internal/domain"
	"github.com/mmcdole/shelf/internal/feed"
	"github.com/mmcdole/shelf/internal/tui/components"
	"github.com/mmcdole/shelf/internal/tui/styles"
)

// renderContent renders the scrollable body for the active tab
func (m Model) renderContent() string {
	width := m.contentWidth()

	var body string
	switch m.activeTab {
	case TabHome:
		body = m.renderHome(width)
	case TabLibrary:
		body = m.renderLibrary(width)
	case TabDiscover:
		if m.discover != nil {
			body = m.discover.View()
		}
	case TabReading:
		body = m.renderReading(width)
	case TabProfile:
		body = components.RenderProfile(m.catalog.Stats(), width)
	}

	return lipgloss.NewStyle().Padding(0, ContentPadding).Render(body)
}

func (m Model) renderHome(width int) string {
	sections := []string{
		components.RenderWelcome(m.catalog.Stats(), width),
		"",
		styles.SectionStyle.Render("Continue Reading"),
		renderProgressList(feed.ContinueReading(m.catalog), width, "Nothing in progress"),
		"",
		styles.SectionStyle.Render("Recommended for You"),
		renderCardGrid(feed.Recommended(m.catalog), components.CardCompact, width),
	}
	return strings.Join(sections, "\n")
}

func (m Model) renderLibrary(width int) string {
	tabs := components.RenderSubTabs(librarySubTabs, int(m.libraryView))

	if m.libraryView == ViewBrowse {
		var pane string
		if m.browse != nil {
			pane = m.browse.View()
		}
		return tabs + "\n\n" + pane
	}

	heading := styles.TitleStyle.Render("My Library")
	hint := styles.HelpKeyStyle.Render("a/+") + styles.DimStyle.Render(" add books")
	header := heading + strings.Repeat(" ", max(width-lipgloss.Width(heading)-lipgloss.Width(hint), 1)) + hint

	return strings.Join([]string{
		tabs,
		"",
		header,
		"",
		renderCardGrid(feed.OwnedShelf(m.catalog), components.CardLibrary, width),
	}, "\n")
}

func (m Model) renderReading(width int) string {
	return strings.Join([]string{
		styles.SectionStyle.Render("Currently Reading"),
		renderProgressList(feed.Reading(m.catalog), width, "No books in progress"),
	}, "\n")
}

func renderProgressList(books []domain.Book, width int, empty string) string {
	if len(books) == 0 {
		return styles.DimStyle.Render(empty)
	}
	cards := make([]string, len(books))
	for i, b := range books {
		cards[i] = components.RenderProgressCard(b, width)
	}
	return components.RenderList(cards)
}

func renderCardGrid(books []domain.Book, variant components.CardVariant, width int) string {
	cardWidth := width / GridColumns
	cards := make([]string, len(books))
	for i, b := range books {
		cards[i] = components.RenderBookCard(b, variant, cardWidth)
	}
	return components.RenderGrid(cards, GridColumns)
}
