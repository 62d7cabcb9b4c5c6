package components

import (
	"slices"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/mmcdole/shelf/internal/browse"
	"github.com/mmcdole/shelf/internal/domain"
	"github.com/mmcdole/shelf/internal/tui/styles"
)

// Browse is the library's search-and-filter pane.
// Its state lives only as long as the pane is mounted.
type Browse struct {
	books []domain.Book
	input textinput.Model
	genre string
	width int
}

// NewBrowse creates a browse pane over books with an empty query and all genres selected
func NewBrowse(books []domain.Book) *Browse {
	ti := textinput.New()
	ti.Placeholder = "Search books or authors..."
	ti.CharLimit = 100
	ti.Prompt = "🔍 "
	ti.PromptStyle = styles.AccentStyle
	ti.TextStyle = lipgloss.NewStyle().Foreground(styles.White)
	ti.PlaceholderStyle = styles.DimStyle

	return &Browse{
		books: books,
		input: ti,
		genre: browse.AllGenres,
	}
}

// Focus focuses the query input
func (b *Browse) Focus() tea.Cmd {
	return b.input.Focus()
}

// Blur releases the query input
func (b *Browse) Blur() {
	b.input.Blur()
}

// Focused reports whether the query input has focus
func (b *Browse) Focused() bool {
	return b.input.Focused()
}

// Query returns the current query text
func (b *Browse) Query() string {
	return b.input.Value()
}

// SetQuery replaces the query text
func (b *Browse) SetQuery(q string) {
	b.input.SetValue(q)
}

// Genre returns the selected genre option
func (b *Browse) Genre() string {
	return b.genre
}

// Genres returns the genre options for the current collection
func (b *Browse) Genres() []string {
	return browse.Genres(b.books)
}

// CycleGenre moves the selection by delta, wrapping at both ends
func (b *Browse) CycleGenre(delta int) {
	genres := b.Genres()
	n := len(genres)
	idx := max(slices.Index(genres, b.genre), 0)
	b.genre = genres[((idx+delta)%n+n)%n]
}

// Criteria returns the current filter state
func (b *Browse) Criteria() browse.Criteria {
	return browse.Criteria{Query: b.Query(), Genre: b.genre}
}

// Results recomputes the filtered books
func (b *Browse) Results() []domain.Book {
	return browse.Filter(b.books, b.Criteria())
}

// SetWidth updates the render width
func (b *Browse) SetWidth(width int) {
	b.width = width
	b.input.Width = max(width-lipgloss.Width(b.input.Prompt)-2, 1)
}

// Update handles key input. While the input is focused every key goes to it
// except the ones that end editing.
func (b *Browse) Update(msg tea.Msg) tea.Cmd {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		var cmd tea.Cmd
		b.input, cmd = b.input.Update(msg)
		return cmd
	}

	if b.Focused() {
		switch {
		case key.Matches(keyMsg, SearchPaneKeys.Done):
			b.Blur()
			return nil
		case key.Matches(keyMsg, SearchPaneKeys.Clear):
			b.SetQuery("")
			return nil
		}
		var cmd tea.Cmd
		b.input, cmd = b.input.Update(msg)
		return cmd
	}

	switch {
	case key.Matches(keyMsg, SearchPaneKeys.Search):
		return b.Focus()
	case key.Matches(keyMsg, SearchPaneKeys.PrevGenre):
		b.CycleGenre(-1)
	case key.Matches(keyMsg, SearchPaneKeys.NextGenre):
		b.CycleGenre(1)
	}
	return nil
}

// View renders the pane
func (b *Browse) View() string {
	width := max(b.width, MinCardWidth)

	genres := b.Genres()
	labels := make([]string, len(genres))
	for i, g := range genres {
		labels[i] = browse.GenreLabel(g)
	}

	sections := []string{
		styles.SectionStyle.Render("Browse Library"),
		b.input.View(),
		"",
		RenderChips(labels, slices.Index(genres, b.genre), width),
		"",
	}

	results := b.Results()
	if len(results) == 0 {
		sections = append(sections, styles.SubtitleStyle.Render(browse.NoResultsMessage))
		if title, ok := browse.Suggest(b.books, b.Query()); ok {
			sections = append(sections, styles.DimStyle.Render("Did you mean \""+title+"\"?"))
		}
		return strings.Join(sections, "\n")
	}

	cards := make([]string, len(results))
	for i, book := range results {
		cards[i] = RenderBookCard(book, CardDiscover, width)
	}
	sections = append(sections,
		styles.DimStyle.Render(browse.CountLabel(len(results))),
		RenderList(cards),
	)
	return strings.Join(sections, "\n")
}
