package components

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/mmcdole/shelf/internal/browse"
	"github.com/mmcdole/shelf/internal/catalog"
	"github.com/mmcdole/shelf/internal/domain"
	"github.com/mmcdole/shelf/internal/feed"
	"github.com/mmcdole/shelf/internal/search"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func defaultCatalog(t *testing.T) *domain.Catalog {
	t.Helper()
	c, err := catalog.Default()
	require.NoError(t, err)
	return c
}

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func sampleBook() domain.Book {
	return domain.Book{
		ID:     1,
		Title:  "Project Hail Mary",
		Author: "Andy Weir",
		Genre:  "Sci Fi",
		Rating: 4.2,
		Pages:  496,
		Status: domain.StatusReading,
		Progress: &domain.Progress{
			CurrentPage: 312,
			TotalPages:  496,
		},
	}
}

func TestRenderBookCard_Variants(t *testing.T) {
	b := sampleBook()

	compact := RenderBookCard(b, CardCompact, 40)
	assert.Contains(t, compact, "Project Hail Mary")
	assert.Contains(t, compact, "Andy Weir")
	assert.NotContains(t, compact, "★")

	library := RenderBookCard(b, CardLibrary, 40)
	assert.Contains(t, library, "★★★★☆")

	discover := RenderBookCard(b, CardDiscover, 40)
	assert.Contains(t, discover, "Sci Fi")
	assert.Contains(t, discover, "★ 4.2")
	assert.Contains(t, discover, "496 pages")
}

func TestRenderBookCard_OmitsMissingFields(t *testing.T) {
	b := domain.Book{ID: 1, Title: "Untitled Draft"}

	discover := RenderBookCard(b, CardDiscover, 40)
	assert.Contains(t, discover, "Untitled Draft")
	assert.NotContains(t, discover, "★")
	assert.NotContains(t, discover, "pages")

	library := RenderBookCard(b, CardLibrary, 40)
	assert.NotContains(t, library, "☆")
}

func TestRenderBookCard_TruncatesLongTitles(t *testing.T) {
	b := domain.Book{ID: 1, Title: strings.Repeat("Long ", 20), Author: "Someone"}
	card := RenderBookCard(b, CardCompact, 20)
	assert.Contains(t, card, "...")
}

func TestCardVariant_String(t *testing.T) {
	assert.Equal(t, "compact", CardCompact.String())
	assert.Equal(t, "library", CardLibrary.String())
	assert.Equal(t, "discover", CardDiscover.String())
	assert.Equal(t, "unknown", CardVariant(9).String())
}

func TestRenderProgressCard(t *testing.T) {
	card := RenderProgressCard(sampleBook(), 50)
	assert.Contains(t, card, "Project Hail Mary")
	assert.Contains(t, card, "62%")
	assert.Contains(t, card, "page 312 of 496")
	assert.Contains(t, card, "184 pages left")

	finished := sampleBook()
	finished.Status = domain.StatusRead
	card = RenderProgressCard(finished, 50)
	assert.NotContains(t, card, "%")
	assert.NotContains(t, card, "pages left")

	b := sampleBook()
	b.Progress = nil
	card = RenderProgressCard(b, 50)
	assert.Contains(t, card, "Project Hail Mary")
	assert.NotContains(t, card, "%")
	assert.NotContains(t, card, "page ")
}

func TestRenderGrid(t *testing.T) {
	assert.Empty(t, RenderGrid(nil, 2))

	grid := RenderGrid([]string{"a", "b", "c"}, 2)
	lines := strings.Split(grid, "\n")
	assert.Len(t, lines, 2)
	assert.Contains(t, lines[0], "a")
	assert.Contains(t, lines[0], "b")
	assert.Contains(t, lines[1], "c")
}

func TestRenderStatsAndWelcome(t *testing.T) {
	stats := domain.ReadingStats{TotalBooks: 47, CurrentStreak: 12, AvgRating: 4.3, PagesThisWeek: 284}

	panel := RenderStats(stats, 60)
	for _, want := range []string{"47", "12", "4.3", "Books Read", "Day Streak", "Avg Rating"} {
		assert.Contains(t, panel, want)
	}

	welcome := RenderWelcome(stats, 60)
	assert.Contains(t, welcome, "Welcome back!")
	assert.Contains(t, welcome, "You've read 284 pages this week")

	profile := RenderProfile(stats, 60)
	assert.Contains(t, profile, "Book Lover")
	assert.Contains(t, profile, "Reading enthusiast since 2020")
	assert.Contains(t, profile, "Avg Rating")
}

func TestRenderHeader(t *testing.T) {
	withSearch := RenderHeader("BookTracker", true, 40)
	assert.Contains(t, withSearch, "BookTracker")
	assert.Contains(t, withSearch, searchGlyph)
	assert.Contains(t, withSearch, bellGlyph)

	noSearch := RenderHeader("Discover", false, 40)
	assert.NotContains(t, noSearch, searchGlyph)
	assert.Contains(t, noSearch, bellGlyph)
}

func TestBottomNav(t *testing.T) {
	entries := []NavEntry{{"1", "Home"}, {"2", "Library"}, {"3", "Discover"}, {"4", "Reading"}, {"5", "Profile"}}
	nav := RenderBottomNav(entries, 1, 100)
	for _, e := range entries {
		assert.Contains(t, nav, e.Label)
	}
	assert.Contains(t, nav, "▸2")
	assert.Empty(t, RenderBottomNav(nil, 0, 100))

	assert.Equal(t, 0, NavEntryAt(0, 50, 5))
	assert.Equal(t, 1, NavEntryAt(10, 50, 5))
	assert.Equal(t, 4, NavEntryAt(49, 50, 5))
	assert.Equal(t, -1, NavEntryAt(50, 50, 5))
	assert.Equal(t, -1, NavEntryAt(-1, 50, 5))
	assert.Equal(t, -1, NavEntryAt(3, 50, 0))
}

func TestRenderChips_Wraps(t *testing.T) {
	labels := []string{"All Genres", "Fiction", "Self-Help", "Sci Fi"}
	assert.Len(t, strings.Split(RenderChips(labels, 0, 200), "\n"), 1)
	assert.Greater(t, len(strings.Split(RenderChips(labels, 0, 20), "\n")), 1)
}

func TestBrowse_InitialState(t *testing.T) {
	c := defaultCatalog(t)
	b := NewBrowse(c.Books())
	b.SetWidth(60)

	assert.Equal(t, "", b.Query())
	assert.Equal(t, browse.AllGenres, b.Genre())
	assert.False(t, b.Focused())
	assert.Len(t, b.Results(), c.Len())

	view := b.View()
	assert.Contains(t, view, "Browse Library")
	assert.Contains(t, view, "All Genres")
	assert.Contains(t, view, "10 books found")
}

func TestBrowse_TypingFilters(t *testing.T) {
	c := defaultCatalog(t)
	b := NewBrowse(c.Books())
	b.SetWidth(60)

	b.Update(runes("/"))
	require.True(t, b.Focused())

	b.Update(runes("dune"))
	assert.Equal(t, "dune", b.Query())

	results := b.Results()
	require.Len(t, results, 1)
	assert.Equal(t, "Dune", results[0].Title)

	view := b.View()
	assert.Contains(t, view, "1 book found")
	assert.Contains(t, view, "Frank Herbert")
}

func TestBrowse_NoResults(t *testing.T) {
	c := defaultCatalog(t)
	b := NewBrowse(c.Books())
	b.SetWidth(60)

	b.SetQuery("Nonexistent")
	assert.Empty(t, b.Results())
	assert.NotNil(t, b.Results())

	view := b.View()
	assert.Contains(t, view, browse.NoResultsMessage)
	assert.NotContains(t, view, "books found")
}

func TestBrowse_DidYouMean(t *testing.T) {
	c := defaultCatalog(t)
	b := NewBrowse(c.Books())
	b.SetWidth(60)

	b.SetQuery("dnue")
	view := b.View()
	assert.Contains(t, view, browse.NoResultsMessage)
	assert.Contains(t, view, `Did you mean "Dune"?`)
}

func TestBrowse_GenreCycling(t *testing.T) {
	c := defaultCatalog(t)
	b := NewBrowse(c.Books())
	genres := b.Genres()

	b.Update(runes("l"))
	assert.Equal(t, genres[1], b.Genre())
	for _, book := range b.Results() {
		assert.Equal(t, genres[1], book.Genre)
	}

	b.Update(runes("h"))
	b.Update(runes("h"))
	assert.Equal(t, genres[len(genres)-1], b.Genre(), "cycling wraps")

	b.Update(tea.KeyMsg{Type: tea.KeyRight})
	assert.Equal(t, browse.AllGenres, b.Genre())
}

func TestBrowse_FocusedKeysGoToInput(t *testing.T) {
	c := defaultCatalog(t)
	b := NewBrowse(c.Books())

	b.Focus()
	b.Update(runes("l"))
	assert.Equal(t, "l", b.Query())
	assert.Equal(t, browse.AllGenres, b.Genre())

	b.Update(tea.KeyMsg{Type: tea.KeyCtrlU})
	assert.Equal(t, "", b.Query())

	b.Update(tea.KeyMsg{Type: tea.KeyEsc})
	assert.False(t, b.Focused())
}

func TestBrowse_GenreAndQueryCombine(t *testing.T) {
	c := defaultCatalog(t)
	b := NewBrowse(c.Books())

	b.CycleGenre(5)
	require.Equal(t, "Mystery", b.Genre())

	b.SetQuery("silent")
	results := b.Results()
	require.Len(t, results, 1)
	assert.Equal(t, "The Silent Patient", results[0].Title)

	b.CycleGenre(-5)
	assert.Equal(t, browse.AllGenres, b.Genre())
	assert.Equal(t, browse.Filter(c.Books(), browse.Criteria{Query: "silent"}), b.Results())
}

func TestDiscover_TrendingWhenIdle(t *testing.T) {
	c := defaultCatalog(t)
	trending := feed.Trending(c)
	d := NewDiscover(c.Books(), trending)
	d.SetWidth(60)

	assert.Nil(t, d.Matches())
	view := d.View()
	assert.Contains(t, view, "Trending Now")
	for _, b := range trending {
		assert.Contains(t, view, b.Title)
	}
}

func TestDiscover_Search(t *testing.T) {
	c := defaultCatalog(t)
	d := NewDiscover(c.Books(), feed.Trending(c))
	d.SetWidth(60)

	d.Update(runes("/"))
	require.True(t, d.Focused())
	d.Update(runes("dune"))

	matches := d.Matches()
	require.NotEmpty(t, matches)
	assert.Equal(t, "Dune", matches[0].Book.Title)

	view := d.View()
	assert.NotContains(t, view, "Trending Now")
	assert.Contains(t, view, "Dune")

	d.Update(tea.KeyMsg{Type: tea.KeyEnter})
	assert.False(t, d.Focused())
	assert.Equal(t, "dune", d.Query())
}

func TestDiscover_NoMatches(t *testing.T) {
	c := defaultCatalog(t)
	d := NewDiscover(c.Books(), feed.Trending(c))
	d.SetWidth(60)

	d.SetQuery("zzzzqqqq")
	assert.Contains(t, d.View(), NoMatchesMessage)
}

func TestVisibleMatches(t *testing.T) {
	title := "The Seven Husbands of Evelyn Hugo"

	// Fits: every position kept
	assert.Equal(t, []int{0, 30}, visibleMatches(title, []int{0, 30}, len(title)))

	// Truncated to 20: runes 17.. become "..."
	assert.Equal(t, []int{0, 4, 16}, visibleMatches(title, []int{0, 4, 16, 17, 19, 25}, 20))

	assert.Nil(t, visibleMatches(title, nil, 20))
}

func TestRenderMatchCard(t *testing.T) {
	r := search.Result{Book: sampleBook(), TitleMatches: []int{0, 1}}
	card := RenderMatchCard(r, 40)
	assert.Contains(t, card, "Pr")
	assert.Contains(t, card, "oject Hail Mary")
	assert.Contains(t, card, "Sci Fi")
}
