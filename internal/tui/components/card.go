package components

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/charmbracelet/lipgloss"
	"github.com/mmcdole/shelf/internal/domain"
	"github.com/mmcdole/shelf/internal/search"
	"github.com/mmcdole/shelf/internal/tui/styles"
)

// CardVariant selects a book card layout
type CardVariant int

const (
	CardCompact  CardVariant = iota // Title and author
	CardLibrary                     // Adds star rating
	CardDiscover                    // Adds genre badge, rating and page count
)

func (v CardVariant) String() string {
	switch v {
	case CardCompact:
		return "compact"
	case CardLibrary:
		return "library"
	case CardDiscover:
		return "discover"
	default:
		return "unknown"
	}
}

// cardChrome is the horizontal space taken by card border and padding
const cardChrome = 4

// MinCardWidth keeps cards readable on narrow terminals
const MinCardWidth = 16

// RenderBookCard renders one book in the given variant
func RenderBookCard(b domain.Book, variant CardVariant, width int) string {
	return renderCard(b, variant, nil, width)
}

// RenderMatchCard renders a discover card with the matched title characters highlighted
func RenderMatchCard(r search.Result, width int) string {
	return renderCard(r.Book, CardDiscover, r.TitleMatches, width)
}

func renderCard(b domain.Book, variant CardVariant, matches []int, width int) string {
	width = max(width, MinCardWidth)
	inner := width - cardChrome

	lines := []string{
		styles.Highlight(styles.Truncate(b.Title, inner), visibleMatches(b.Title, matches, inner), styles.TitleStyle),
	}
	if b.Author != "" {
		lines = append(lines, styles.SubtitleStyle.Render(styles.Truncate(b.Author, inner)))
	}

	switch variant {
	case CardLibrary:
		if stars := b.Stars(); stars != "" {
			lines = append(lines, styles.StarStyle.Render(stars))
		}
	case CardDiscover:
		var meta []string
		if b.Genre != "" {
			meta = append(meta, styles.BadgeStyle.Render(b.Genre))
		}
		if rating := b.FormattedRating(); rating != "" {
			meta = append(meta, styles.StarStyle.Render("★ "+rating))
		}
		if b.Pages > 0 {
			meta = append(meta, styles.DimStyle.Render(fmt.Sprintf("%d pages", b.Pages)))
		}
		if len(meta) > 0 {
			lines = append(lines, strings.Join(meta, " "))
		}
	}

	// Width excludes the border
	return styles.CardStyle.Width(width - 2).Render(strings.Join(lines, "\n"))
}

// visibleMatches drops match positions that Truncate replaces with the ellipsis
func visibleMatches(title string, positions []int, width int) []int {
	if utf8.RuneCountInString(title) <= width {
		return positions
	}
	limit := width
	if width > 3 {
		limit = width - 3
	}

	var out []int
	for _, p := range positions {
		if p < limit {
			out = append(out, p)
		}
	}
	return out
}

// RenderGrid lays cards out in rows of the given column count
func RenderGrid(cards []string, columns int) string {
	if len(cards) == 0 {
		return ""
	}
	columns = max(columns, 1)

	var rows []string
	for start := 0; start < len(cards); start += columns {
		end := min(start+columns, len(cards))
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, cards[start:end]...))
	}
	return lipgloss.JoinVertical(lipgloss.Left, rows...)
}

// RenderList stacks cards vertically
func RenderList(cards []string) string {
	return lipgloss.JoinVertical(lipgloss.Left, cards...)
}
