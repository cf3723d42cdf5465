package cmd

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"newsdash/internal/newsdata"
	"newsdash/internal/redisclient"
	"newsdash/internal/server"
	"newsdash/internal/storage"
	"newsdash/worker"

	"github.com/spf13/cobra"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the collector, report builder and HTTP API",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := GetConfig()

		rdb := redisclient.New(cfg.Redis)
		defer rdb.Close()
		store := storage.NewRedisStore(rdb)

		interval, err := time.ParseDuration(cfg.Source.FetchInterval)
		if err != nil {
			return err
		}
		cacheTTL, err := time.ParseDuration(cfg.Source.CacheTTL)
		if err != nil {
			return err
		}
		reportInterval, err := time.ParseDuration(cfg.Report.Interval)
		if err != nil {
			return err
		}

		collector := &worker.Collector{
			Client: newsdata.NewClient(cfg.Source.BaseURL, cfg.Source.APIKey),
			Store:  store,
			Query: newsdata.Query{
				Q:        cfg.Source.Query,
				Language: cfg.Source.Language,
				Country:  cfg.Source.Country,
			},
			MaxPages: cfg.Source.MaxPages,
			Interval: interval,
			CacheTTL: cacheTTL,
		}
		builder := &worker.ReportBuilder{
			Store:     store,
			Query:     cfg.Source.Query,
			OutputDir: cfg.Report.OutputDir,
			Interval:  reportInterval,
		}
		api := server.New(cfg.Server.Addr, cfg.Source.Query, store, store)

		mgr := worker.NewManager(collector, builder, api)
		ctx, cancel := context.WithCancel(context.Background())
		defer cancel()

		// Signal handling for systemd
		sigc := make(chan os.Signal, 1)
		signal.Notify(sigc, syscall.SIGINT, syscall.SIGTERM)
		go func() {
			s := <-sigc
			log.Printf("received signal: %s, shutting down", s)
			cancel()
		}()

		return mgr.Start(ctx)
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)
}
