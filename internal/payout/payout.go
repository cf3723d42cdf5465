// Package payout builds and summarizes the per-article payout table. Entries
// are created from the currently filtered articles when the editing surface
// opens, edited in place, and rolled up per author on every change.
package payout

import (
	"fmt"
	"math"

	"newsdash/internal/aggregate"
	"newsdash/internal/model"
)

// NewEntries builds one entry per article with the payout amount unset.
// Edits on a previous filtered view do not carry over; the caller builds a
// fresh list whenever the filtered set changes.
func NewEntries(articles []model.Article) []model.PayoutEntry {
	entries := make([]model.PayoutEntry, len(articles))
	for i, a := range articles {
		entries[i] = model.PayoutEntry{Article: a}
	}
	return entries
}

// SetAmount records an edited payout amount. Negative and NaN amounts are
// rejected here, before they can reach aggregation or persistence.
func SetAmount(entries []model.PayoutEntry, i int, amount float64) error {
	if i < 0 || i >= len(entries) {
		return fmt.Errorf("payout: entry index %d out of range", i)
	}
	if math.IsNaN(amount) || amount < 0 {
		return fmt.Errorf("payout: amount must be a non-negative number, got %v", amount)
	}
	entries[i].Payout = &amount
	return nil
}

// ClearAmount puts an entry back into the unset state, matching an emptied
// input box.
func ClearAmount(entries []model.PayoutEntry, i int) error {
	if i < 0 || i >= len(entries) {
		return fmt.Errorf("payout: entry index %d out of range", i)
	}
	entries[i].Payout = nil
	return nil
}

// Summarize rolls the entries up per author: every title the author appears
// on, plus the payout total with unset amounts counted as zero. An entry
// with several creators contributes its full amount to each of them; an
// entry with none contributes under the Unknown sentinel. Authors appear in
// first-seen order.
func Summarize(entries []model.PayoutEntry) *aggregate.Grouped[string, model.AuthorSummary] {
	return aggregate.Aggregate(entries,
		func(e model.PayoutEntry) []string { return e.Authors() },
		model.AuthorSummary{},
		func(s model.AuthorSummary, e model.PayoutEntry) model.AuthorSummary {
			s.ArticleTitles = append(s.ArticleTitles, e.Title)
			s.TotalPayout += e.Amount()
			return s
		})
}
