package worker

import (
	"context"
	"log/slog"
	"time"

	"newsdash/internal/newsdata"
	"newsdash/internal/storage"
)

// Collector polls NewsData on an interval and refreshes the cached article
// set the dashboard serves from.
type Collector struct {
	Client   *newsdata.Client
	Store    *storage.RedisStore
	Query    newsdata.Query
	MaxPages int
	Interval time.Duration
	CacheTTL time.Duration
}

func (w *Collector) Start(ctx context.Context) error {
	if w.Interval <= 0 {
		w.Interval = 15 * time.Minute
	}
	if w.CacheTTL <= 0 {
		w.CacheTTL = 24 * time.Hour
	}

	// initial run
	w.runOnce(ctx)

	t := time.NewTicker(w.Interval)
	defer t.Stop()
	for {
		select {
		case <-ctx.Done():
			return nil
		case <-t.C:
			w.runOnce(ctx)
		}
	}
}

func (w *Collector) runOnce(ctx context.Context) {
	fetchCtx, cancel := context.WithTimeout(ctx, 60*time.Second)
	defer cancel()
	articles, err := w.Client.Latest(fetchCtx, w.Query, w.MaxPages)
	if err != nil {
		slog.Error("collector: fetch error", "query", w.Query.Q, "error", err)
		return
	}
	if len(articles) == 0 {
		// Keep the previous cached set rather than replacing it with nothing.
		slog.Warn("collector: empty result set, keeping cache", "query", w.Query.Q)
		return
	}
	if err := w.Store.SaveArticles(ctx, w.Query.Q, articles, w.CacheTTL); err != nil {
		slog.Error("collector: store error", "query", w.Query.Q, "error", err)
		return
	}
	slog.Info("collector: refreshed articles", "query", w.Query.Q, "count", len(articles))
}
