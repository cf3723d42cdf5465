// Package server exposes the dashboard's data surface over HTTP: filtered
// articles, chart buckets, and the payout table with its summary and
// exports. Authentication is delegated to an external identity provider in
// front of this service, so no auth middleware lives here.
package server

import (
	"context"
	"errors"
	"log/slog"
	"math"
	"net/http"
	"time"

	"github.com/araddon/dateparse"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	"newsdash/internal/aggregate"
	"newsdash/internal/export"
	"newsdash/internal/filter"
	"newsdash/internal/model"
	"newsdash/internal/payout"
)

// ArticleSource supplies the cached article set for the configured query.
type ArticleSource interface {
	LoadArticles(ctx context.Context, query string) ([]model.Article, error)
}

// PayoutStore persists the finalized payout entry list.
type PayoutStore interface {
	SavePayouts(ctx context.Context, entries []model.PayoutEntry) error
	LoadPayouts(ctx context.Context) ([]model.PayoutEntry, error)
}

// Server is the dashboard HTTP API.
type Server struct {
	e        *echo.Echo
	addr     string
	query    string
	articles ArticleSource
	payouts  PayoutStore
}

// New builds the server and registers its routes.
func New(addr, query string, articles ArticleSource, payouts PayoutStore) *Server {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Use(middleware.Recover())

	s := &Server{e: e, addr: addr, query: query, articles: articles, payouts: payouts}

	e.GET("/healthz", s.handleHealth)

	v1 := e.Group("/v1")
	v1.GET("/articles", s.handleArticles)
	v1.GET("/analytics/sources", s.handleSources)
	v1.GET("/analytics/categories", s.handleCategories)
	v1.GET("/analytics/dates", s.handleDates)
	v1.GET("/payouts", s.handleGetPayouts)
	v1.PUT("/payouts", s.handlePutPayouts)
	v1.GET("/payouts/summary", s.handlePayoutSummary)
	v1.GET("/payouts/export", s.handlePayoutExport)

	return s
}

// Start runs the server until the context is cancelled, then shuts down
// gracefully. It satisfies the worker interface so serve can supervise it
// alongside the collectors.
func (s *Server) Start(ctx context.Context) error {
	errc := make(chan error, 1)
	go func() {
		if err := s.e.Start(s.addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errc <- err
		}
	}()
	slog.Info("server: listening", "addr", s.addr)
	select {
	case err := <-errc:
		return err
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		return s.e.Shutdown(shutdownCtx)
	}
}

// Echo exposes the underlying router, for tests.
func (s *Server) Echo() *echo.Echo { return s.e }

func (s *Server) handleHealth(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
}

// criteriaFrom reads the filter query parameters. Date bounds accept any
// parseable date text; a bound that cannot be parsed is an input error
// rather than a silently ignored filter.
func criteriaFrom(c echo.Context) (filter.Criteria, error) {
	crit := filter.Criteria{
		AuthorQuery: c.QueryParam("author"),
		Category:    c.QueryParam("category"),
		SearchTerm:  c.QueryParam("q"),
	}
	if raw := c.QueryParam("start_date"); raw != "" {
		t, err := dateparse.ParseAny(raw)
		if err != nil {
			return crit, echo.NewHTTPError(http.StatusBadRequest, "invalid start_date")
		}
		t = t.UTC()
		crit.StartDate = &t
	}
	if raw := c.QueryParam("end_date"); raw != "" {
		t, err := dateparse.ParseAny(raw)
		if err != nil {
			return crit, echo.NewHTTPError(http.StatusBadRequest, "invalid end_date")
		}
		t = t.UTC()
		crit.EndDate = &t
	}
	return crit, nil
}

func (s *Server) loadArticles(c echo.Context) ([]model.Article, error) {
	articles, err := s.articles.LoadArticles(c.Request().Context(), s.query)
	if err != nil {
		slog.Error("server: load articles", "error", err)
		return nil, echo.NewHTTPError(http.StatusInternalServerError, "article store unavailable")
	}
	return articles, nil
}

type articlesResponse struct {
	Articles   []model.Article `json:"articles"`
	Total      int             `json:"total"`
	Categories []string        `json:"categories"`
}

func (s *Server) handleArticles(c echo.Context) error {
	crit, err := criteriaFrom(c)
	if err != nil {
		return err
	}
	articles, err := s.loadArticles(c)
	if err != nil {
		return err
	}
	matched := filter.Filter(articles, crit)
	return c.JSON(http.StatusOK, articlesResponse{
		Articles: matched,
		Total:    len(matched),
		// Dropdown options come from the full set, not the filtered one.
		Categories: filter.Categories(articles),
	})
}

// bucket is one chart data point.
type bucket struct {
	Name  string `json:"name"`
	Value int    `json:"value"`
}

func bucketsOf(g *aggregate.Grouped[string, int]) []bucket {
	out := make([]bucket, 0, g.Len())
	g.Each(func(k string, v int) {
		out = append(out, bucket{Name: k, Value: v})
	})
	return out
}

func (s *Server) handleSources(c echo.Context) error {
	articles, err := s.loadArticles(c)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, bucketsOf(aggregate.CountBySource(articles)))
}

func (s *Server) handleCategories(c echo.Context) error {
	articles, err := s.loadArticles(c)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, bucketsOf(aggregate.CountByCategory(articles)))
}

func (s *Server) handleDates(c echo.Context) error {
	articles, err := s.loadArticles(c)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, bucketsOf(aggregate.CountByDate(articles)))
}

func (s *Server) handleGetPayouts(c echo.Context) error {
	entries, err := s.payouts.LoadPayouts(c.Request().Context())
	if err != nil {
		slog.Error("server: load payouts", "error", err)
		return echo.NewHTTPError(http.StatusInternalServerError, "payout store unavailable")
	}
	if entries == nil {
		entries = []model.PayoutEntry{}
	}
	return c.JSON(http.StatusOK, entries)
}

func (s *Server) handlePutPayouts(c echo.Context) error {
	var entries []model.PayoutEntry
	if err := c.Bind(&entries); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payout list")
	}
	for i, e := range entries {
		if e.Payout != nil && (math.IsNaN(*e.Payout) || *e.Payout < 0) {
			return echo.NewHTTPError(http.StatusBadRequest,
				map[string]any{"error": "payout must be non-negative", "index": i})
		}
	}
	if err := s.payouts.SavePayouts(c.Request().Context(), entries); err != nil {
		slog.Error("server: save payouts", "error", err)
		return echo.NewHTTPError(http.StatusInternalServerError, "payout store unavailable")
	}
	return c.NoContent(http.StatusNoContent)
}

type summaryRow struct {
	Author        string   `json:"author"`
	ArticleTitles []string `json:"article_titles"`
	TotalPayout   float64  `json:"total_payout"`
}

func (s *Server) handlePayoutSummary(c echo.Context) error {
	entries, err := s.payouts.LoadPayouts(c.Request().Context())
	if err != nil {
		slog.Error("server: load payouts", "error", err)
		return echo.NewHTTPError(http.StatusInternalServerError, "payout store unavailable")
	}
	summary := payout.Summarize(entries)
	rows := make([]summaryRow, 0, summary.Len())
	summary.Each(func(author string, v model.AuthorSummary) {
		rows = append(rows, summaryRow{
			Author:        author,
			ArticleTitles: v.ArticleTitles,
			TotalPayout:   v.TotalPayout,
		})
	})
	return c.JSON(http.StatusOK, rows)
}

func (s *Server) handlePayoutExport(c echo.Context) error {
	entries, err := s.payouts.LoadPayouts(c.Request().Context())
	if err != nil {
		slog.Error("server: load payouts", "error", err)
		return echo.NewHTTPError(http.StatusInternalServerError, "payout store unavailable")
	}
	res := c.Response()
	switch c.QueryParam("format") {
	case "", "csv":
		res.Header().Set(echo.HeaderContentType, "text/csv; charset=utf-8")
		res.Header().Set(echo.HeaderContentDisposition, `attachment; filename="payout_details.csv"`)
		res.WriteHeader(http.StatusOK)
		return export.WriteCSV(res, entries)
	case "pdf":
		res.Header().Set(echo.HeaderContentType, "application/pdf")
		res.Header().Set(echo.HeaderContentDisposition, `attachment; filename="payout_details.pdf"`)
		res.WriteHeader(http.StatusOK)
		return export.WritePDF(res, entries)
	default:
		return echo.NewHTTPError(http.StatusBadRequest, "format must be csv or pdf")
	}
}
