package domain

import (
	"fmt"
	"strings"
)

// ReadingStatus tracks where a book sits on the reader's shelf
type ReadingStatus string

const (
	StatusWantToRead ReadingStatus = "want-to-read"
	StatusReading    ReadingStatus = "reading"
	StatusRead       ReadingStatus = "read"
)

// Valid reports whether s is one of the known statuses
func (s ReadingStatus) Valid() bool {
	switch s {
	case StatusWantToRead, StatusReading, StatusRead:
		return true
	default:
		return false
	}
}

// Book is a single title in the catalog
type Book struct {
	ID       int           `json:"id" yaml:"id"`
	Title    string        `json:"title" yaml:"title"`
	Author   string        `json:"author" yaml:"author"`
	Genre    string        `json:"genre" yaml:"genre"`   // One category per book
	Rating   float64       `json:"rating" yaml:"rating"` // 0-5 scale
	Pages    int           `json:"pages" yaml:"pages"`
	Cover    string        `json:"cover,omitempty" yaml:"cover,omitempty"` // Cover image URL
	Status   ReadingStatus `json:"status" yaml:"status"`
	Progress *Progress     `json:"progress,omitempty" yaml:"progress,omitempty"`
}

// FormattedRating returns the rating with one decimal, or "" when unrated
func (b Book) FormattedRating() string {
	if b.Rating <= 0 {
		return ""
	}
	return fmt.Sprintf("%.1f", b.Rating)
}

// Stars renders the rating as five filled/empty stars, rounded to the nearest star
func (b Book) Stars() string {
	if b.Rating <= 0 {
		return ""
	}
	filled := int(b.Rating + 0.5)
	filled = min(max(filled, 0), 5)
	return strings.Repeat("★", filled) + strings.Repeat("☆", 5-filled)
}

// InProgress returns true if the book is being read and has a progress measure
func (b Book) InProgress() bool {
	return b.Status == StatusReading && b.Progress != nil
}

// Progress is the reading position within a book
type Progress struct {
	CurrentPage int `json:"current_page" yaml:"current_page"`
	TotalPages  int `json:"total_pages" yaml:"total_pages"`
}

// Percent returns completion as 0-100
func (p Progress) Percent() int {
	if p.TotalPages <= 0 {
		return 0
	}
	pct := p.CurrentPage * 100 / p.TotalPages
	return min(max(pct, 0), 100)
}

// Ratio returns completion as 0.0-1.0 for progress bars
func (p Progress) Ratio() float64 {
	return float64(p.Percent()) / 100
}

// PagesLeft returns the number of unread pages
func (p Progress) PagesLeft() int {
	return max(p.TotalPages-p.CurrentPage, 0)
}

// ReadingStats are aggregate counters shown on the home and profile tabs.
// They are display values and are never derived from the book collection.
type ReadingStats struct {
	TotalBooks    int     `json:"total_books" yaml:"total_books"`
	CurrentStreak int     `json:"current_streak" yaml:"current_streak"`
	AvgRating     float64 `json:"avg_rating" yaml:"avg_rating"`
	PagesThisWeek int     `json:"pages_this_week" yaml:"pages_this_week"`
}

// CatalogData is the serialisable form of a catalog, shared by the file
// loader and the cache
type CatalogData struct {
	Books []Book       `json:"books" yaml:"books"`
	Stats ReadingStats `json:"stats" yaml:"stats"`
}

// Catalog is the immutable dataset the application renders.
// Accessors hand out copies so no caller can mutate the shared data.
type Catalog struct {
	books []Book
	stats ReadingStats
}

// NewCatalog builds a catalog from books and stats. The slice is copied.
func NewCatalog(books []Book, stats ReadingStats) *Catalog {
	return &Catalog{books: cloneBooks(books), stats: stats}
}

// Books returns every book in catalog order
func (c *Catalog) Books() []Book {
	return cloneBooks(c.books)
}

// CurrentlyReading returns the books with reading status, in catalog order
func (c *Catalog) CurrentlyReading() []Book {
	var reading []Book
	for _, b := range c.books {
		if b.Status == StatusReading {
			reading = append(reading, cloneBook(b))
		}
	}
	return reading
}

// Stats returns the reading statistics
func (c *Catalog) Stats() ReadingStats {
	return c.stats
}

// Len returns the number of books
func (c *Catalog) Len() int {
	return len(c.books)
}

func cloneBooks(books []Book) []Book {
	out := make([]Book, len(books))
	for i, b := range books {
		out[i] = cloneBook(b)
	}
	return out
}

func cloneBook(b Book) Book {
	if b.Progress != nil {
		p := *b.Progress
		b.Progress = &p
	}
	return b
}
