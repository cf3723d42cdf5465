// Package export turns the payout table into the downloadable formats the
// dashboard offers. Export is one row per payout entry (not one per author,
// which is what the on-screen summary shows) — that mirrors the product's
// observed behavior and is deliberate.
package export

import (
	"encoding/csv"
	"fmt"
	"io"
	"strings"

	"newsdash/internal/model"
)

// Header is the fixed column header of both export formats.
var Header = []string{"Author", "Article", "Payout"}

// Row is the flat per-entry view consumed by the export writers.
type Row struct {
	AuthorsJoined string
	Title         string
	Payout        float64
}

// RowFor projects a single entry. Missing titles and authors become literal
// placeholders rather than empty cells.
func RowFor(e model.PayoutEntry) Row {
	title := e.Title
	if strings.TrimSpace(title) == "" {
		title = "Untitled Article"
	}
	authors := "Unknown Author"
	if len(e.Creators) > 0 {
		authors = strings.Join(e.Creators, ", ")
	}
	return Row{AuthorsJoined: authors, Title: title, Payout: e.Amount()}
}

// Rows projects every entry in order.
func Rows(entries []model.PayoutEntry) []Row {
	rows := make([]Row, len(entries))
	for i, e := range entries {
		rows[i] = RowFor(e)
	}
	return rows
}

// WriteCSV serializes the payout table as comma-separated text. encoding/csv
// handles quoting of fields containing delimiters or quotes.
func WriteCSV(w io.Writer, entries []model.PayoutEntry) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(Header); err != nil {
		return err
	}
	for _, r := range Rows(entries) {
		rec := []string{r.AuthorsJoined, r.Title, formatAmount(r.Payout)}
		if err := cw.Write(rec); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

func formatAmount(v float64) string {
	return fmt.Sprintf("%.2f", v)
}
