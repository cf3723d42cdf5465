package cmd

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"newsdash/internal/export"
	"newsdash/internal/redisclient"
	"newsdash/internal/storage"

	"github.com/spf13/cobra"
)

var exportDir string

// exportCmd writes the persisted payout table to CSV and PDF files.
var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export the saved payout table as CSV and PDF",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := GetConfig()

		rdb := redisclient.New(cfg.Redis)
		defer rdb.Close()
		store := storage.NewRedisStore(rdb)

		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()

		entries, err := store.LoadPayouts(ctx)
		if err != nil {
			return err
		}
		if len(entries) == 0 {
			return fmt.Errorf("no saved payouts to export")
		}
		if err := os.MkdirAll(exportDir, 0o755); err != nil {
			return err
		}

		csvPath := filepath.Join(exportDir, "payout_details.csv")
		cf, err := os.Create(csvPath)
		if err != nil {
			return err
		}
		if err := export.WriteCSV(cf, entries); err != nil {
			cf.Close()
			return err
		}
		if err := cf.Close(); err != nil {
			return err
		}

		pdfPath := filepath.Join(exportDir, "payout_details.pdf")
		pf, err := os.Create(pdfPath)
		if err != nil {
			return err
		}
		if err := export.WritePDF(pf, entries); err != nil {
			pf.Close()
			return err
		}
		if err := pf.Close(); err != nil {
			return err
		}

		fmt.Fprintf(cmd.OutOrStdout(), "wrote %s and %s (%d rows)\n", csvPath, pdfPath, len(entries))
		return nil
	},
}

func init() {
	exportCmd.Flags().StringVar(&exportDir, "dir", ".", "directory to write export files into")
	rootCmd.AddCommand(exportCmd)
}
