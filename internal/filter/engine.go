// Package filter narrows an article list by the user's criteria. Filtering
// is pure: it never mutates its input, preserves input order, and the same
// inputs always yield the same output, so callers simply re-run it whenever
// articles or criteria change.
package filter

import (
	"strings"
	"time"

	"newsdash/internal/model"
)

// Criteria holds the user-entered constraints. All five are combined with
// logical AND; a zero-valued field imposes no constraint.
type Criteria struct {
	// AuthorQuery matches case-insensitively as a substring of any creator
	// name.
	AuthorQuery string
	// StartDate and EndDate bound the publication instant, inclusive.
	StartDate *time.Time
	EndDate   *time.Time
	// Category must equal one of the article's tags exactly.
	Category string
	// SearchTerm matches case-insensitively against title, description and
	// creator names.
	SearchTerm string
}

// IsZero reports whether the criteria impose no constraint at all.
func (c Criteria) IsZero() bool {
	return c.AuthorQuery == "" && c.StartDate == nil && c.EndDate == nil &&
		c.Category == "" && c.SearchTerm == ""
}

// Filter returns the articles matching all criteria, in input order.
func Filter(articles []model.Article, c Criteria) []model.Article {
	if c.IsZero() {
		out := make([]model.Article, len(articles))
		copy(out, articles)
		return out
	}
	out := make([]model.Article, 0, len(articles))
	for _, a := range articles {
		if matches(a, c) {
			out = append(out, a)
		}
	}
	return out
}

func matches(a model.Article, c Criteria) bool {
	return matchesAuthor(a, c.AuthorQuery) &&
		matchesDates(a, c.StartDate, c.EndDate) &&
		matchesCategory(a, c.Category) &&
		matchesSearch(a, c.SearchTerm)
}

func matchesAuthor(a model.Article, query string) bool {
	if query == "" {
		return true
	}
	q := strings.ToLower(query)
	for _, name := range a.Creators {
		if strings.Contains(strings.ToLower(name), q) {
			return true
		}
	}
	return false
}

// matchesDates checks both bounds at once so an unparseable publication date
// is resolved a single way: such an article fails any bound that is set, but
// passes when no date filter is active.
func matchesDates(a model.Article, start, end *time.Time) bool {
	if start == nil && end == nil {
		return true
	}
	t, ok := a.PublishedAt()
	if !ok {
		return false
	}
	if start != nil && t.Before(start.UTC()) {
		return false
	}
	if end != nil && t.After(end.UTC()) {
		return false
	}
	return true
}

func matchesCategory(a model.Article, category string) bool {
	if category == "" {
		return true
	}
	for _, tag := range a.Categories {
		if tag == category {
			return true
		}
	}
	return false
}

func matchesSearch(a model.Article, term string) bool {
	if term == "" {
		return true
	}
	q := strings.ToLower(term)
	if strings.Contains(strings.ToLower(a.Title), q) {
		return true
	}
	if strings.Contains(strings.ToLower(a.Description), q) {
		return true
	}
	for _, name := range a.Creators {
		if strings.Contains(strings.ToLower(name), q) {
			return true
		}
	}
	return false
}

// Categories returns the distinct category tags across the articles in
// first-seen order. The dashboard uses it to populate the category dropdown.
func Categories(articles []model.Article) []string {
	seen := map[string]struct{}{}
	var out []string
	for _, a := range articles {
		for _, tag := range a.Categories {
			if _, ok := seen[tag]; ok {
				continue
			}
			seen[tag] = struct{}{}
			out = append(out, tag)
		}
	}
	return out
}
