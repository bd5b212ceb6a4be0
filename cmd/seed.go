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
	"github.com/monthlies/bulletin/internal/progress"
	"github.com/monthlies/bulletin/internal/seed"
)

var seedCount int

var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Create demo drafts for development",
	Long:  `Populates the database with demo drafts cycling through all templates, with placeholder photos, blurbs, calendar notes and recipients.`,
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

		store := draft.NewStore(database)
		seeder := seed.New(store)

		ids, err := seeder.Seed(context.Background(), seedCount, progress.NewReporter("Seeding drafts"))
		if err != nil {
			return err
		}

		fmt.Fprintf(os.Stderr, "Created %d demo drafts\n", len(ids))
		for _, id := range ids {
			fmt.Fprintf(os.Stderr, "  /preview/%s/host\n", id)
		}
		return nil
	},
}

func init() {
	seedCmd.Flags().IntVar(&seedCount, "count", 4, "Number of demo drafts to create")
	rootCmd.AddCommand(seedCmd)
}
