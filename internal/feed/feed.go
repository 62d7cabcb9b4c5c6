// Package feed selects the fixed slices of the catalog each tab shows.
// The boundaries are layout literals, not a ranking.
package feed

import "github.com/mmcdole/shelf/internal/domain"

// Slice boundaries per section, as [start, end) indexes
const (
	continueReadingEnd = 2

	recommendedEnd = 4

	ownedShelfEnd = 6

	trendingStart = 3
	trendingEnd   = 8
)

// window returns books[start:end] clamped to the slice length
func window(books []domain.Book, start, end int) []domain.Book {
	start = min(max(start, 0), len(books))
	end = min(max(end, start), len(books))
	return books[start:end]
}

// ContinueReading is the home tab's in-progress list
func ContinueReading(c *domain.Catalog) []domain.Book {
	return window(c.CurrentlyReading(), 0, continueReadingEnd)
}

// Recommended is the home tab's compact grid
func Recommended(c *domain.Catalog) []domain.Book {
	return window(c.Books(), 0, recommendedEnd)
}

// OwnedShelf is the library tab's "My Books" grid
func OwnedShelf(c *domain.Catalog) []domain.Book {
	return window(c.Books(), 0, ownedShelfEnd)
}

// Trending is the discover tab's list when no search is active
func Trending(c *domain.Catalog) []domain.Book {
	return window(c.Books(), trendingStart, trendingEnd)
}

// Reading is the reading tab's full in-progress list
func Reading(c *domain.Catalog) []domain.Book {
	return c.CurrentlyReading()
}
