// Package search provides fuzzy matching over the catalog for the discover tab.
package search

import (
	"strings"
	"unicode/utf8"

	"github.com/mmcdole/shelf/internal/domain"
	"github.com/sahilm/fuzzy"
)

// Result is a book matched by a fuzzy query
type Result struct {
	Book domain.Book

	// TitleMatches are rune positions in Book.Title that matched (for highlighting)
	TitleMatches []int

	Score int // Higher is better
}

// Index implements sahilm/fuzzy.Source over "title author" strings
type Index struct {
	books []domain.Book
	keys  []string // Pre-computed lowercase "title author"
}

// NewIndex builds a search index over books
func NewIndex(books []domain.Book) *Index {
	idx := &Index{
		books: books,
		keys:  make([]string, len(books)),
	}
	for i, b := range books {
		idx.keys[i] = strings.ToLower(b.Title + " " + b.Author)
	}
	return idx
}

// String returns the lowercase key at index i (implements fuzzy.Source)
func (idx *Index) String(i int) string { return idx.keys[i] }

// Len returns the number of books (implements fuzzy.Source)
func (idx *Index) Len() int { return len(idx.books) }

// Search returns books matching query, best match first.
// An empty query returns nil.
func (idx *Index) Search(query string) []Result {
	query = strings.TrimSpace(query)
	if query == "" {
		return nil
	}

	matches := fuzzy.FindFrom(strings.ToLower(query), idx)

	results := make([]Result, 0, len(matches))
	for _, m := range matches {
		book := idx.books[m.Index]
		results = append(results, Result{
			Book:         book,
			TitleMatches: titleRunePositions(idx.keys[m.Index], book.Title, m.MatchedIndexes),
			Score:        m.Score,
		})
	}
	return results
}

// titleRunePositions converts byte offsets into key to rune positions,
// keeping only those that fall inside the title portion
func titleRunePositions(key, title string, byteOffsets []int) []int {
	titleBytes := len(strings.ToLower(title))
	var positions []int
	for _, off := range byteOffsets {
		if off >= titleBytes {
			break
		}
		positions = append(positions, utf8.RuneCountInString(key[:off]))
	}
	return positions
}
