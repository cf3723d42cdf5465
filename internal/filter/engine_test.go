package filter

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"newsdash/internal/model"
)

func date(s string) *time.Time {
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		panic(err)
	}
	t = t.UTC()
	return &t
}

func sampleArticles() []model.Article {
	return []model.Article{
		{
			Title:      "A",
			Link:       "https://example.com/a",
			SourceID:   "espn",
			Categories: []string{"sports"},
			PubDate:    "2024-01-01",
			Creators:   []string{"Al"},
		},
		{
			Title:      "B",
			Link:       "https://example.com/b",
			SourceID:   "cnn",
			Categories: []string{"top"},
			PubDate:    "2024-02-01",
		},
		{
			Title:       "C goes deep",
			Description: "An analysis of football transfers",
			Link:        "https://example.com/c",
			SourceID:    "espn",
			Categories:  []string{"sports", "top"},
			PubDate:     "2024-01-20 15:04:05",
			Creators:    []string{"Bo Carter", "Al"},
		},
	}
}

func TestFilterVacuousCriteriaReturnsAll(t *testing.T) {
	articles := sampleArticles()
	got := Filter(articles, Criteria{})
	assert.Equal(t, articles, got)
}

func TestFilterDoesNotMutateInput(t *testing.T) {
	articles := sampleArticles()
	want := sampleArticles()
	Filter(articles, Criteria{Category: "sports"})
	assert.Equal(t, want, articles)
}

func TestFilterByCategory(t *testing.T) {
	got := Filter(sampleArticles(), Criteria{Category: "sports"})
	require.Len(t, got, 2)
	assert.Equal(t, "A", got[0].Title)
	assert.Equal(t, "C goes deep", got[1].Title)
}

func TestFilterByAuthorCaseInsensitiveSubstring(t *testing.T) {
	got := Filter(sampleArticles(), Criteria{AuthorQuery: "carter"})
	require.Len(t, got, 1)
	assert.Equal(t, "C goes deep", got[0].Title)

	// Missing creators never match an author query but never error.
	got = Filter(sampleArticles(), Criteria{AuthorQuery: "al"})
	require.Len(t, got, 2)
}

func TestFilterByDateRangeInclusive(t *testing.T) {
	c := Criteria{StartDate: date("2024-01-15"), EndDate: date("2024-01-31")}
	got := Filter(sampleArticles(), c)
	require.Len(t, got, 1)
	assert.Equal(t, "C goes deep", got[0].Title)

	// Exact boundary is included.
	c = Criteria{StartDate: date("2024-01-01"), EndDate: date("2024-01-01")}
	got = Filter(sampleArticles(), c)
	require.Len(t, got, 1)
	assert.Equal(t, "A", got[0].Title)

	// An article dated before the start is excluded.
	c = Criteria{StartDate: date("2024-01-15")}
	got = Filter([]model.Article{{Title: "early", PubDate: "2024-01-10"}}, c)
	assert.Empty(t, got)
}

func TestFilterBySearchTerm(t *testing.T) {
	// Matches description.
	got := Filter(sampleArticles(), Criteria{SearchTerm: "FOOTBALL"})
	require.Len(t, got, 1)
	assert.Equal(t, "C goes deep", got[0].Title)

	// Matches creator name.
	got = Filter(sampleArticles(), Criteria{SearchTerm: "bo c"})
	require.Len(t, got, 1)

	// Matches title.
	got = Filter(sampleArticles(), Criteria{SearchTerm: "b"})
	assert.NotEmpty(t, got)
}

func TestFilterUnparseableDatePolicy(t *testing.T) {
	articles := []model.Article{
		{Title: "bad-date", PubDate: "not a date", Categories: []string{"sports"}},
	}
	// Included when no date bound is active.
	got := Filter(articles, Criteria{Category: "sports"})
	require.Len(t, got, 1)

	// Excluded whenever any date bound is set.
	got = Filter(articles, Criteria{StartDate: date("2000-01-01")})
	assert.Empty(t, got)
	got = Filter(articles, Criteria{EndDate: date("2100-01-01")})
	assert.Empty(t, got)
}

func TestFilterCombinesWithAnd(t *testing.T) {
	c := Criteria{Category: "sports", AuthorQuery: "al"}
	got := Filter(sampleArticles(), c)
	require.Len(t, got, 2)

	c.SearchTerm = "transfers"
	got = Filter(sampleArticles(), c)
	require.Len(t, got, 1)
	assert.Equal(t, "C goes deep", got[0].Title)
}

func TestFilterComposition(t *testing.T) {
	articles := sampleArticles()
	c1 := Criteria{Category: "top"}
	c2 := Criteria{SearchTerm: "deep"}
	combined := Criteria{Category: "top", SearchTerm: "deep"}

	assert.Equal(t, Filter(articles, combined), Filter(Filter(articles, c1), c2))
}

func TestFilterIdempotent(t *testing.T) {
	articles := sampleArticles()
	c := Criteria{Category: "sports", StartDate: date("2024-01-01")}
	once := Filter(articles, c)
	twice := Filter(once, c)
	assert.Equal(t, once, twice)
}

func TestFilterPreservesOrder(t *testing.T) {
	articles := sampleArticles()
	got := Filter(articles, Criteria{SearchTerm: ""})
	for i := 1; i < len(got); i++ {
		assert.True(t, indexOf(articles, got[i-1].Link) < indexOf(articles, got[i].Link))
	}
}

func indexOf(articles []model.Article, link string) int {
	for i, a := range articles {
		if a.Link == link {
			return i
		}
	}
	return -1
}

func TestCategories(t *testing.T) {
	got := Categories(sampleArticles())
	assert.Equal(t, []string{"sports", "top"}, got)
}
