package components

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/mmcdole/shelf/internal/domain"
	"github.com/mmcdole/shelf/internal/search"
	"github.com/mmcdole/shelf/internal/tui/styles"
)

// NoMatchesMessage is shown when a discover search matches nothing
const NoMatchesMessage = "No matches found"

// Discover is the discover tab: trending books, or fuzzy matches while a query is typed
type Discover struct {
	index    *search.Index
	trending []domain.Book
	input    textinput.Model
	width    int
}

// NewDiscover creates a discover pane searching books and showing trending when idle
func NewDiscover(books, trending []domain.Book) *Discover {
	ti := textinput.New()
	ti.Placeholder = "Search by title or author..."
	ti.CharLimit = 100
	ti.Prompt = "🔍 "
	ti.PromptStyle = styles.AccentStyle
	ti.TextStyle = lipgloss.NewStyle().Foreground(styles.White)
	ti.PlaceholderStyle = styles.DimStyle

	return &Discover{
		index:    search.NewIndex(books),
		trending: trending,
		input:    ti,
	}
}

func (d *Discover) Focus() tea.Cmd { return d.input.Focus() }
func (d *Discover) Blur()          { d.input.Blur() }
func (d *Discover) Focused() bool  { return d.input.Focused() }
func (d *Discover) Query() string  { return d.input.Value() }

// SetQuery replaces the query text
func (d *Discover) SetQuery(q string) {
	d.input.SetValue(q)
}

// Matches runs the current query. Nil when the query is blank.
func (d *Discover) Matches() []search.Result {
	return d.index.Search(d.Query())
}

// SetWidth updates the render width
func (d *Discover) SetWidth(width int) {
	d.width = width
	d.input.Width = max(width-lipgloss.Width(d.input.Prompt)-2, 1)
}

// Update handles key input
func (d *Discover) Update(msg tea.Msg) tea.Cmd {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		var cmd tea.Cmd
		d.input, cmd = d.input.Update(msg)
		return cmd
	}

	if !d.Focused() {
		if key.Matches(keyMsg, SearchPaneKeys.Search) {
			return d.Focus()
		}
		return nil
	}

	switch {
	case key.Matches(keyMsg, SearchPaneKeys.Done):
		d.Blur()
		return nil
	case key.Matches(keyMsg, SearchPaneKeys.Clear):
		d.SetQuery("")
		return nil
	}
	var cmd tea.Cmd
	d.input, cmd = d.input.Update(msg)
	return cmd
}

// View renders the pane
func (d *Discover) View() string {
	width := max(d.width, MinCardWidth)

	sections := []string{
		styles.SectionStyle.Render("Discover"),
		d.input.View(),
		"",
	}

	if strings.TrimSpace(d.Query()) == "" {
		cards := make([]string, len(d.trending))
		for i, b := range d.trending {
			cards[i] = RenderBookCard(b, CardDiscover, width)
		}
		sections = append(sections, styles.SectionStyle.Render("Trending Now"), RenderList(cards))
		return strings.Join(sections, "\n")
	}

	matches := d.Matches()
	if len(matches) == 0 {
		sections = append(sections, styles.SubtitleStyle.Render(NoMatchesMessage))
		return strings.Join(sections, "\n")
	}

	cards := make([]string, len(matches))
	for i, r := range matches {
		cards[i] = RenderMatchCard(r, width)
	}
	sections = append(sections, RenderList(cards))
	return strings.Join(sections, "\n")
}
