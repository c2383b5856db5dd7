package naver

import (
	"strings"
	"time"
)

// Sort options accepted by the search API
const (
	SortSim  = "sim"  // 정확도순
	SortDate = "date" // 출간일순
)

const (
	defaultDisplay = 10
	defaultStart   = 1
)

// BookItem is a single search result, normalized for local use
type BookItem struct {
	Title       string    `json:"title"`
	Link        string    `json:"link"`
	Image       string    `json:"image"`
	Author      string    `json:"author"`
	Publisher   string    `json:"publisher"`
	PubDate     time.Time `json:"pub_date"`
	ISBN        string    `json:"isbn"`
	Description string    `json:"description"`
	Discount    string    `json:"discount"`
}

// SearchResult is a page of normalized search results
type SearchResult struct {
	Total   int        `json:"total"`
	Start   int        `json:"start"`
	Display int        `json:"display"`
	Items   []BookItem `json:"items"`
}

// searchResponse mirrors the raw API response shape
type searchResponse struct {
	Total   int          `json:"total"`
	Start   int          `json:"start"`
	Display int          `json:"display"`
	Items   []searchItem `json:"items"`
}

type searchItem struct {
	Title       string `json:"title"`
	Link        string `json:"link"`
	Image       string `json:"image"`
	Author      string `json:"author"`
	Publisher   string `json:"publisher"`
	Pubdate     string `json:"pubdate"`
	ISBN        string `json:"isbn"`
	Description string `json:"description"`
	Discount    string `json:"discount"`
}

// normalize maps a raw API item into the local book shape.
// The API wraps matched terms in HTML tags and may return several
// space-separated ISBNs; only the first is authoritative.
func (i searchItem) normalize() BookItem {
	return BookItem{
		Title:       stripHTML(i.Title),
		Link:        i.Link,
		Image:       i.Image,
		Author:      i.Author,
		Publisher:   i.Publisher,
		PubDate:     parsePubDate(i.Pubdate),
		ISBN:        firstISBN(i.ISBN),
		Description: stripHTML(i.Description),
		Discount:    i.Discount,
	}
}

func firstISBN(isbn string) string {
	fields := strings.Fields(isbn)
	if len(fields) == 0 {
		return ""
	}
	return fields[0]
}

// parsePubDate parses the API pubdate field, either "20240115" or
// "2024-01-15". Unparseable values yield the zero time.
func parsePubDate(s string) time.Time {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}
	}
	if strings.Contains(s, "-") {
		t, err := time.Parse("2006-01-02", s)
		if err != nil {
			return time.Time{}
		}
		return t
	}
	t, err := time.Parse("20060102", s)
	if err != nil {
		return time.Time{}
	}
	return t
}
