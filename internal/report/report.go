// Package report renders the periodic markdown analytics digest: article
// counts per source, category and day, plus the current payout summary, with
// a YAML frontmatter header.
package report

import (
	"bytes"
	_ "embed"
	"fmt"
	"text/template"
	"time"

	"gopkg.in/yaml.v3"

	"newsdash/internal/aggregate"
	"newsdash/internal/model"
	"newsdash/internal/payout"
)

// Bucket is one counted group in a chart section.
type Bucket struct {
	Name  string
	Count int
}

// AuthorRow is one line of the payout summary section.
type AuthorRow struct {
	Author string
	Titles []string
	Total  float64
}

// Data feeds the digest template.
type Data struct {
	Title         string
	Query         string
	Generated     string
	TotalArticles int
	Sources       []Bucket
	Categories    []Bucket
	Dates         []Bucket
	Payouts       []AuthorRow
	PayoutTotal   float64
}

// frontmatter is the YAML header of the rendered document.
type frontmatter struct {
	Title     string `yaml:"title"`
	Query     string `yaml:"query"`
	Generated string `yaml:"generated"`
	Articles  int    `yaml:"articles"`
}

//go:embed report.tmpl
var reportTpl string

var compiled = template.Must(template.New("report").Parse(reportTpl))

// Build assembles the digest data from the current articles and payouts.
func Build(query string, articles []model.Article, entries []model.PayoutEntry, now time.Time) Data {
	d := Data{
		Title:         fmt.Sprintf("News Analytics %s", now.UTC().Format("2006-01-02")),
		Query:         query,
		Generated:     now.UTC().Format(time.RFC3339),
		TotalArticles: len(articles),
		Sources:       bucketsOf(aggregate.CountBySource(articles)),
		Categories:    bucketsOf(aggregate.CountByCategory(articles)),
		Dates:         bucketsOf(aggregate.CountByDate(articles)),
	}
	summary := payout.Summarize(entries)
	summary.Each(func(author string, v model.AuthorSummary) {
		d.Payouts = append(d.Payouts, AuthorRow{
			Author: author,
			Titles: v.ArticleTitles,
			Total:  v.TotalPayout,
		})
		d.PayoutTotal += v.TotalPayout
	})
	return d
}

func bucketsOf(g *aggregate.Grouped[string, int]) []Bucket {
	out := make([]Bucket, 0, g.Len())
	g.Each(func(k string, v int) {
		out = append(out, Bucket{Name: k, Count: v})
	})
	return out
}

// Render produces the full markdown document: YAML frontmatter between ---
// fences, then the templated body.
func Render(d Data) (string, error) {
	fm, err := yaml.Marshal(frontmatter{
		Title:     d.Title,
		Query:     d.Query,
		Generated: d.Generated,
		Articles:  d.TotalArticles,
	})
	if err != nil {
		return "", err
	}
	var buf bytes.Buffer
	buf.WriteString("---\n")
	buf.Write(fm)
	buf.WriteString("---\n\n")
	if err := compiled.Execute(&buf, d); err != nil {
		return "", err
	}
	return buf.String(), nil
}
