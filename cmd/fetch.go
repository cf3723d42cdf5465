package cmd

import (
	"context"
	"fmt"
	"time"

	"newsdash/internal/newsdata"
	"newsdash/internal/redisclient"
	"newsdash/internal/storage"

	"github.com/spf13/cobra"
)

// fetchCmd performs a one-shot fetch into the article cache.
var fetchCmd = &cobra.Command{
	Use:   "fetch",
	Short: "Fetch the latest articles once and cache them",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := GetConfig()

		rdb := redisclient.New(cfg.Redis)
		defer rdb.Close()
		store := storage.NewRedisStore(rdb)

		cacheTTL, err := time.ParseDuration(cfg.Source.CacheTTL)
		if err != nil {
			return err
		}

		client := newsdata.NewClient(cfg.Source.BaseURL, cfg.Source.APIKey)
		ctx, cancel := context.WithTimeout(context.Background(), 60*time.Second)
		defer cancel()

		articles, err := client.Latest(ctx, newsdata.Query{
			Q:        cfg.Source.Query,
			Language: cfg.Source.Language,
			Country:  cfg.Source.Country,
		}, cfg.Source.MaxPages)
		if err != nil {
			return err
		}
		if err := store.SaveArticles(ctx, cfg.Source.Query, articles, cacheTTL); err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "cached %d articles for query %q\n", len(articles), cfg.Source.Query)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(fetchCmd)
}
