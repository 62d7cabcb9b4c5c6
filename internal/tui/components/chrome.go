package components

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mmcdole/shelf/internal/tui/styles"
)

// Header glyphs
const (
	searchGlyph = "🔍"
	bellGlyph   = "🔔"
	notifyDot   = "●"
)

// RenderHeader renders the top bar: title on the left, search and
// notification glyphs on the right
func RenderHeader(title string, showSearch bool, width int) string {
	inner := max(width-2, 1) // Header padding

	var right []string
	if showSearch {
		right = append(right, styles.SubtitleStyle.Render(searchGlyph))
	}
	right = append(right, styles.SubtitleStyle.Render(bellGlyph)+styles.NotifyStyle.Render(notifyDot))
	rightStr := strings.Join(right, "  ")

	left := styles.Truncate(title, max(inner-lipgloss.Width(rightStr)-1, 1))
	gap := max(inner-lipgloss.Width(left)-lipgloss.Width(rightStr), 1)

	return styles.HeaderStyle.Width(width).Render(left + strings.Repeat(" ", gap) + rightStr)
}

// NavEntry is one bottom navigation item
type NavEntry struct {
	Key   string
	Label string
}

// RenderBottomNav renders the tab bar with the active entry highlighted
func RenderBottomNav(entries []NavEntry, active, width int) string {
	if len(entries) == 0 {
		return ""
	}
	cellWidth := max(width/len(entries), 1)

	cells := make([]string, len(entries))
	for i, e := range entries {
		style := styles.NavInactiveStyle
		marker := " "
		if i == active {
			style = styles.NavActiveStyle
			marker = "▸"
		}
		label := styles.Truncate(marker+e.Key+" "+e.Label, cellWidth)
		cells[i] = lipgloss.NewStyle().Width(cellWidth).Align(lipgloss.Center).Render(style.Render(label))
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, cells...)
}

// NavEntryAt returns the entry index under column x, or -1
func NavEntryAt(x, width, count int) int {
	if count == 0 || width <= 0 || x < 0 {
		return -1
	}
	cellWidth := max(width/count, 1)
	idx := x / cellWidth
	if idx >= count {
		return -1
	}
	return idx
}

// RenderSubTabs renders a segmented control, e.g. the library's My Books / Browse switch
func RenderSubTabs(labels []string, active int) string {
	parts := make([]string, len(labels))
	for i, l := range labels {
		if i == active {
			parts[i] = styles.SubTabActiveStyle.Render(l)
		} else {
			parts[i] = styles.SubTabInactiveStyle.Render(l)
		}
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, parts...)
}

// RenderChips renders option chips, wrapping to width
func RenderChips(labels []string, active, width int) string {
	var lines []string
	var line string
	lineWidth := 0

	for i, l := range labels {
		style := styles.ChipInactiveStyle
		if i == active {
			style = styles.ChipActiveStyle
		}
		chip := style.Render(l)
		w := lipgloss.Width(chip) + 1

		if lineWidth > 0 && lineWidth+w > width {
			lines = append(lines, line)
			line, lineWidth = "", 0
		}
		line += chip + " "
		lineWidth += w
	}
	if line != "" {
		lines = append(lines, line)
	}
	return strings.Join(lines, "\n")
}
