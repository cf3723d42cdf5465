package aggregate

import (
	"newsdash/internal/model"
)

// increment is the combine step shared by all chart buckets.
func increment(v int, _ model.Article) int { return v + 1 }

// CountBySource buckets articles by source id, for the pie chart.
func CountBySource(articles []model.Article) *Grouped[string, int] {
	return Aggregate(articles, func(a model.Article) []string {
		return []string{a.SourceID}
	}, 0, increment)
}

// CountByCategory buckets articles by category tag, for the bar chart.
// An article tagged with N categories counts once in each of the N buckets.
func CountByCategory(articles []model.Article) *Grouped[string, int] {
	return Aggregate(articles, func(a model.Article) []string {
		return a.Categories
	}, 0, increment)
}

// CountByDate buckets articles by publication day, for the time-series
// chart. Days are truncated in UTC so bucket boundaries do not move with the
// host time zone. Articles whose date cannot be parsed land in no bucket.
func CountByDate(articles []model.Article) *Grouped[string, int] {
	return Aggregate(articles, func(a model.Article) []string {
		t, ok := a.PublishedAt()
		if !ok {
			return nil
		}
		return []string{t.Format("2006-01-02")}
	}, 0, increment)
}
