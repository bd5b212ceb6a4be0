package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/monthlies/bulletin/internal/arc"
	"github.com/monthlies/bulletin/internal/config"
	"github.com/monthlies/bulletin/internal/db"
	"github.com/monthlies/bulletin/internal/draft"
	"github.com/monthlies/bulletin/internal/export"
	"github.com/monthlies/bulletin/internal/preview"
	"github.com/monthlies/bulletin/internal/relay"
	"github.com/monthlies/bulletin/internal/server"
	"github.com/monthlies/bulletin/internal/uploads"
)

var servePort int

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the bulletin server",
	Long:  `Starts the bulletin HTTP server: draft API, image uploads, live preview and the editing relay.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load(cfgFile)
		if err != nil {
			return fmt.Errorf("loading config: %w", err)
		}
		if servePort != 0 {
			cfg.Port = servePort
		}
		if err := cfg.Validate(); err != nil {
			return fmt.Errorf("invalid config: %w", err)
		}

		dbPath := filepath.Join(cfg.DataDir, "bulletin.db")
		database, err := db.Open(dbPath)
		if err != nil {
			return fmt.Errorf("opening database: %w", err)
		}
		defer database.Close()

		srv := server.New(server.Config{
			Port:     cfg.Port,
			AllowAll: cfg.AllowAllOrigins,
		}, database)

		if err := registerAllRoutes(srv, database, cfg); err != nil {
			return err
		}

		// Graceful shutdown.
		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		go func() {
			<-ctx.Done()
			fmt.Fprintln(os.Stderr, "\nShutting down server...")
			srv.Shutdown(context.Background())
		}()

		fmt.Fprintf(os.Stderr, "bulletin server v%s starting on port %d\n", Version, cfg.Port)
		fmt.Fprintf(os.Stderr, "  Database: %s\n", dbPath)
		fmt.Fprintf(os.Stderr, "  Uploads:  %s\n", filepath.Join(cfg.DataDir, "uploads"))

		return srv.Start()
	},
}

// registerAllRoutes wires up all feature routes.
func registerAllRoutes(srv *server.Server, database *db.DB, cfg *config.Config) error {
	r := srv.Router()

	// Drafts, notes, recipients, submissions.
	store := draft.NewStore(database)
	draft.RegisterRoutes(r, store)

	// Image uploads.
	upStore, err := uploads.NewStore(filepath.Join(cfg.DataDir, "uploads"), cfg.Uploads.Allowed)
	if err != nil {
		return fmt.Errorf("creating upload store: %w", err)
	}
	uploads.RegisterRoutes(r, upStore)

	// Sandboxed preview.
	renderer := preview.NewRenderer(store, cfg.Preview.BaseWidthPx)
	preview.RegisterRoutes(r, renderer)

	// Print bundles, same output layout as the export CLI verb.
	export.RegisterRoutes(r, export.New(store), cfg.ExportDir)

	// Editing relay.
	hub := relay.NewHub(store, arc.Config{
		Radius:     float64(cfg.Menu.RadiusPx),
		ButtonSize: float64(cfg.Menu.ButtonSizePx),
		SpreadDeg:  float64(cfg.Menu.SpreadDeg),
		BiasDeg:    float64(cfg.Menu.BiasDeg),
	})
	hub.RegisterRoutes(r)

	return nil
}

func init() {
	serveCmd.Flags().IntVar(&servePort, "port", 0, "Port to listen on (overrides config)")
	rootCmd.AddCommand(serveCmd)
}
