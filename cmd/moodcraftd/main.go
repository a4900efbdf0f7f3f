// MoodCraft Daemon - the mood journal background service
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/moodcraft/moodcraft/internal/api"
	"github.com/moodcraft/moodcraft/internal/config"
	"github.com/moodcraft/moodcraft/internal/history"
	"github.com/moodcraft/moodcraft/internal/journal"
	"github.com/moodcraft/moodcraft/internal/logging"
	"github.com/moodcraft/moodcraft/internal/storage"
)

var (
	configPath string
	dataDir    string
	port       int
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "moodcraftd",
		Short: "MoodCraft Daemon - your mood journal service",
		RunE:  runDaemon,
	}

	rootCmd.Flags().StringVar(&configPath, "config", "", "Config file path")
	rootCmd.Flags().StringVar(&dataDir, "data-dir", "", "Data directory (overrides config)")
	rootCmd.Flags().IntVar(&port, "port", 0, "HTTP server port (overrides config)")

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func runDaemon(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(configPath)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	if dataDir != "" {
		cfg.DataDir = dataDir
	}
	if port != 0 {
		cfg.Server.Port = port
	}
	logging.SetLevel(logging.ParseLevel(cfg.LogLevel))

	if err := os.MkdirAll(cfg.DataDir, 0755); err != nil {
		return fmt.Errorf("failed to create data dir: %w", err)
	}

	backend, closeBackend, err := openBackend(cfg)
	if err != nil {
		return err
	}
	defer closeBackend()

	store := history.New(backend)
	svc := journal.New(store)

	server := api.New(api.Config{
		Port:       cfg.Server.Port,
		Store:      store,
		Journal:    svc,
		Submission: cfg.Submission,
	})

	// Handle shutdown
	go func() {
		sigCh := make(chan os.Signal, 1)
		signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)
		<-sigCh

		logging.Info("Shutting down...")
		server.Stop(context.Background())
	}()

	logging.Info("Open http://localhost:%d in your browser", cfg.Server.Port)
	return server.Start()
}

// openBackend opens the configured history backend and returns it with
// its cleanup function.
func openBackend(cfg *config.Config) (history.Backend, func(), error) {
	path := cfg.StoragePath()

	switch cfg.Storage.Backend {
	case config.BackendRecord:
		logging.WithField("path", path).Info("Using record file storage")
		return storage.NewRecordStore(path), func() {}, nil

	case config.BackendSQLite:
		db, err := storage.Open(storage.Config{Path: path})
		if err != nil {
			return nil, nil, fmt.Errorf("failed to open database: %w", err)
		}
		if err := db.Migrate(); err != nil {
			db.Close()
			return nil, nil, fmt.Errorf("migration failed: %w", err)
		}
		logging.WithField("path", path).Info("Using sqlite storage")
		return storage.NewEntryStore(db), func() { db.Close() }, nil

	default:
		return nil, nil, fmt.Errorf("unknown storage backend %q", cfg.Storage.Backend)
	}
}
