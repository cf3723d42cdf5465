package model

import (
	"time"

	"github.com/araddon/dateparse"
)

// Article is a single news item as delivered by the upstream source.
// Field names follow the NewsData.io wire format so a fetched result set
// round-trips through the cache unchanged.
type Article struct {
	Title       string   `json:"title"`
	Description string   `json:"description,omitempty"`
	Link        string   `json:"link"`
	ImageURL    string   `json:"image_url,omitempty"`
	SourceID    string   `json:"source_id"`
	Categories  []string `json:"category"`
	PubDate     string   `json:"pubDate"`
	Creators    []string `json:"creator,omitempty"`
}

// PublishedAt parses the article's publication date into a UTC instant.
// Upstream emits whatever textual format it likes, so parsing is lenient.
// ok is false when the value cannot be interpreted as a date at all.
func (a Article) PublishedAt() (t time.Time, ok bool) {
	if a.PubDate == "" {
		return time.Time{}, false
	}
	parsed, err := dateparse.ParseAny(a.PubDate)
	if err != nil {
		return time.Time{}, false
	}
	return parsed.UTC(), true
}

// UnknownAuthor is the sentinel used when an article lists no creators.
const UnknownAuthor = "Unknown"

// Authors returns the article's creators, or the Unknown sentinel when the
// creator list is absent or empty.
func (a Article) Authors() []string {
	if len(a.Creators) == 0 {
		return []string{UnknownAuthor}
	}
	return a.Creators
}
