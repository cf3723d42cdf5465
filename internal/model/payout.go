package model

import "math"

// PayoutEntry pairs an article with an editable payout amount. A nil Payout
// means the amount has not been entered yet; aggregation treats it as zero
// but the editing surface keeps the distinction so an empty input box does
// not silently become 0.
type PayoutEntry struct {
	Article
	Payout *float64 `json:"payout"`
}

// Amount returns the payout amount, with unset or NaN counted as zero.
func (e PayoutEntry) Amount() float64 {
	if e.Payout == nil || math.IsNaN(*e.Payout) {
		return 0
	}
	return *e.Payout
}

// AuthorSummary is the per-author rollup shown in the payout summary table:
// every title the author appears on, and the running payout total. A
// multi-author article contributes its full amount to each author.
type AuthorSummary struct {
	ArticleTitles []string `json:"article_titles"`
	TotalPayout   float64  `json:"total_payout"`
}
