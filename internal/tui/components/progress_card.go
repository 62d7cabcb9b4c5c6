package components

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/progress"
	"github.com/mmcdole/shelf/internal/domain"
	"github.com/mmcdole/shelf/internal/tui/styles"
)

// newBar builds a solid accent progress bar without the built-in percentage
func newBar(width int) progress.Model {
	return progress.New(
		progress.WithSolidFill(string(styles.Accent)),
		progress.WithoutPercentage(),
		progress.WithWidth(max(width, 1)),
	)
}

// RenderProgressCard renders an in-progress book with its reading position.
// Books that are not being read, or have no progress measure, render without the bar.
func RenderProgressCard(b domain.Book, width int) string {
	width = max(width, MinCardWidth)
	inner := width - cardChrome

	lines := []string{styles.TitleStyle.Render(styles.Truncate(b.Title, inner))}
	if b.Author != "" {
		lines = append(lines, styles.SubtitleStyle.Render(styles.Truncate(b.Author, inner)))
	}

	if b.InProgress() {
		p := b.Progress
		pct := fmt.Sprintf("%3d%%", p.Percent())
		bar := newBar(inner - len(pct) - 1)
		lines = append(lines,
			bar.ViewAs(p.Ratio())+" "+styles.AccentStyle.Render(pct),
			styles.DimStyle.Render(fmt.Sprintf("page %d of %d · %d pages left", p.CurrentPage, p.TotalPages, p.PagesLeft())),
		)
	}

	return styles.CardStyle.Width(width - 2).Render(strings.Join(lines, "\n"))
}
