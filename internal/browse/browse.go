// Package browse implements the library filter: a case-insensitive substring
// match on title or author combined with a single-genre selection.
package browse

import (
	"fmt"
	"sort"
	"strings"

	"github.com/lithammer/fuzzysearch/fuzzy"
	"github.com/mmcdole/shelf/internal/domain"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// AllGenres is the sentinel genre that disables category filtering
const AllGenres = "all"

// NoResultsMessage is shown when a filter matches nothing
const NoResultsMessage = "No books found matching your criteria"

// maxSuggestDistance bounds how far a suggested title may be from the query
const maxSuggestDistance = 3

// Criteria is the filter state: free-text query plus selected genre
type Criteria struct {
	Query string
	Genre string // AllGenres or one book genre; empty behaves as AllGenres
}

// AllGenresSelected reports whether the genre predicate is disabled
func (c Criteria) AllGenresSelected() bool {
	return c.Genre == "" || c.Genre == AllGenres
}

// lower maps s to lower case for comparison. ß stays one letter, so "ss"
// does not match it.
func lower(s string) string {
	return cases.Lower(language.Und).String(s)
}

// Matches reports whether book satisfies both predicates of c
func Matches(book domain.Book, c Criteria) bool {
	if !c.AllGenresSelected() && book.Genre != c.Genre {
		return false
	}
	if c.Query == "" {
		return true
	}
	q := lower(c.Query)
	return strings.Contains(lower(book.Title), q) || strings.Contains(lower(book.Author), q)
}

// Filter returns the books matching c in their original order.
// The result is never nil.
func Filter(books []domain.Book, c Criteria) []domain.Book {
	out := make([]domain.Book, 0, len(books))
	for _, b := range books {
		if Matches(b, c) {
			out = append(out, b)
		}
	}
	return out
}

// Genres returns AllGenres followed by each distinct genre in order of first appearance
func Genres(books []domain.Book) []string {
	genres := []string{AllGenres}
	seen := make(map[string]bool)
	for _, b := range books {
		if seen[b.Genre] {
			continue
		}
		seen[b.Genre] = true
		genres = append(genres, b.Genre)
	}
	return genres
}

// GenreLabel returns the chip label for a genre option
func GenreLabel(genre string) string {
	if genre == AllGenres {
		return "All Genres"
	}
	return genre
}

// CountLabel returns the results count line, e.g. "1 book found"
func CountLabel(n int) string {
	if n == 1 {
		return "1 book found"
	}
	return fmt.Sprintf("%d books found", n)
}

// Suggest returns the title closest to query by edit distance, for a
// "did you mean" hint when a filter comes back empty
func Suggest(books []domain.Book, query string) (string, bool) {
	query = strings.TrimSpace(query)
	if query == "" || len(books) == 0 {
		return "", false
	}

	type candidate struct {
		title    string
		distance int
	}

	q := lower(query)
	var candidates []candidate
	for _, b := range books {
		// Compare against the title and each word of it so "dnue" finds "Dune"
		// and "sapeins" finds "Sapiens"
		best := fuzzy.LevenshteinDistance(q, lower(b.Title))
		for _, word := range strings.Fields(b.Title) {
			best = min(best, fuzzy.LevenshteinDistance(q, lower(word)))
		}
		if best <= maxSuggestDistance {
			candidates = append(candidates, candidate{title: b.Title, distance: best})
		}
	}

	if len(candidates) == 0 {
		return "", false
	}

	sort.SliceStable(candidates, func(i, j int) bool {
		return candidates[i].distance < candidates[j].distance
	})
	return candidates[0].title, true
}
