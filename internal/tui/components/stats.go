package components

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"github.com/mmcdole/shelf/internal/domain"
	"github.com/mmcdole/shelf/internal/tui/styles"
)

// welcomeBarFill is the fixed fill of the home banner's bar
const welcomeBarFill = 0.75

// RenderWelcome renders the home tab banner
func RenderWelcome(stats domain.ReadingStats, width int) string {
	inner := max(width-4, 1) // Banner padding

	bar := newBar(inner)
	bar.FullColor = string(styles.White)
	bar.EmptyColor = string(styles.SlateLight)

	content := lipgloss.JoinVertical(lipgloss.Left,
		lipgloss.NewStyle().Bold(true).Render("Welcome back!"),
		fmt.Sprintf("You've read %d pages this week", stats.PagesThisWeek),
		"",
		bar.ViewAs(welcomeBarFill),
	)
	return styles.BannerStyle.Width(width).Render(content)
}

// RenderStats renders the three profile counters side by side
func RenderStats(stats domain.ReadingStats, width int) string {
	boxWidth := max(width/3, 12) - 2 // Border

	box := func(value, label string) string {
		return styles.StatBoxStyle.Width(boxWidth).Render(
			lipgloss.JoinVertical(lipgloss.Center,
				styles.AccentStyle.Bold(true).Render(value),
				styles.DimStyle.Render(label),
			),
		)
	}

	return lipgloss.JoinHorizontal(lipgloss.Top,
		box(fmt.Sprintf("%d", stats.TotalBooks), "Books Read"),
		box(fmt.Sprintf("%d", stats.CurrentStreak), "Day Streak"),
		box(fmt.Sprintf("%.1f", stats.AvgRating), "Avg Rating"),
	)
}

// RenderProfile renders the profile card above the stats
func RenderProfile(stats domain.ReadingStats, width int) string {
	avatar := lipgloss.NewStyle().
		Foreground(styles.White).
		Background(styles.Purple).
		Padding(1, 3).
		Render("☺")

	center := lipgloss.NewStyle().Width(width).Align(lipgloss.Center)
	return lipgloss.JoinVertical(lipgloss.Left,
		center.Render(avatar),
		center.Render(styles.TitleStyle.Render("Book Lover")),
		center.Render(styles.SubtitleStyle.Render("Reading enthusiast since 2020")),
		"",
		RenderStats(stats, width),
	)
}
