package worker

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"newsdash/internal/report"
	"newsdash/internal/storage"
)

// ReportBuilder periodically writes the markdown analytics digest for the
// cached article set and the persisted payouts.
type ReportBuilder struct {
	Store     *storage.RedisStore
	Query     string
	OutputDir string
	Interval  time.Duration
}

func (w *ReportBuilder) Start(ctx context.Context) error {
	if w.Interval <= 0 {
		w.Interval = 24 * time.Hour
	}
	if err := os.MkdirAll(w.OutputDir, 0o755); err != nil {
		return err
	}

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

func (w *ReportBuilder) runOnce(ctx context.Context) {
	articles, err := w.Store.LoadArticles(ctx, w.Query)
	if err != nil {
		slog.Error("report-builder: load articles err", "error", err)
		return
	}
	if len(articles) == 0 {
		return
	}
	entries, err := w.Store.LoadPayouts(ctx)
	if err != nil {
		slog.Error("report-builder: load payouts err", "error", err)
		return
	}
	now := time.Now().UTC()
	md, err := report.Render(report.Build(w.Query, articles, entries, now))
	if err != nil {
		slog.Error("report-builder: render err", "error", err)
		return
	}
	name := fmt.Sprintf("analytics-%s.md", now.Format("2006-01-02"))
	path := filepath.Join(w.OutputDir, name)
	if err := os.WriteFile(path, []byte(md), 0o644); err != nil {
		slog.Error("report-builder: write file err", "path", path, "error", err)
		return
	}
	slog.Info("report-builder: wrote digest", "path", path, "articles", len(articles))
}
