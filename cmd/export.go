package cmd

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/monthlies/bulletin/internal/config"
	"github.com/monthlies/bulletin/internal/db"
	"github.com/monthlies/bulletin/internal/draft"
	"github.com/monthlies/bulletin/internal/export"
	"github.com/monthlies/bulletin/internal/progress"
)

var exportOut string

var exportCmd = &cobra.Command{
	Use:   "export <draft-id>",
	Short: "Write a print-ready bundle for a draft",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load(cfgFile)
		if err != nil {
			return fmt.Errorf("loading config: %w", err)
		}

		database, err := db.Open(filepath.Join(cfg.DataDir, "bulletin.db"))
		if err != nil {
			return fmt.Errorf("opening database: %w", err)
		}
		defer database.Close()

		outDir := exportOut
		if outDir == "" {
			outDir = filepath.Join(cfg.ExportDir, args[0])
		}

		store := draft.NewStore(database)
		exporter := export.New(store)

		n, err := exporter.Export(context.Background(), args[0], outDir, progress.NewReporter("Exporting"))
		if err != nil {
			return err
		}

		fmt.Fprintf(os.Stderr, "Wrote %d files to %s\n", n, outDir)
		return nil
	},
}

func init() {
	exportCmd.Flags().StringVar(&exportOut, "out", "", "Output directory (default: <export_dir>/<draft-id>)")
	rootCmd.AddCommand(exportCmd)
}
