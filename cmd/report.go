package cmd

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"newsdash/internal/redisclient"
	"newsdash/internal/report"
	"newsdash/internal/storage"

	"github.com/spf13/cobra"
)

// reportCmd force-generates the analytics digest from the current cache.
var reportCmd = &cobra.Command{
	Use:   "report",
	Short: "Generate the markdown analytics digest now",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := GetConfig()

		rdb := redisclient.New(cfg.Redis)
		defer rdb.Close()
		store := storage.NewRedisStore(rdb)

		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()

		articles, err := store.LoadArticles(ctx, cfg.Source.Query)
		if err != nil {
			return err
		}
		if len(articles) == 0 {
			return fmt.Errorf("no cached articles for query %q; run fetch first", cfg.Source.Query)
		}
		entries, err := store.LoadPayouts(ctx)
		if err != nil {
			return err
		}

		now := time.Now().UTC()
		md, err := report.Render(report.Build(cfg.Source.Query, articles, entries, now))
		if err != nil {
			return err
		}
		if err := os.MkdirAll(cfg.Report.OutputDir, 0o755); err != nil {
			return err
		}
		path := filepath.Join(cfg.Report.OutputDir, fmt.Sprintf("analytics-%s.md", now.Format("2006-01-02")))
		if err := os.WriteFile(path, []byte(md), 0o644); err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "wrote %s\n", path)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(reportCmd)
}
