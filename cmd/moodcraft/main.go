// MoodCraft CLI - the command-line interface for the mood journal.
package main

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/moodcraft/moodcraft/internal/config"
	"github.com/moodcraft/moodcraft/internal/core"
	"github.com/moodcraft/moodcraft/internal/history"
	"github.com/moodcraft/moodcraft/internal/insights"
	"github.com/moodcraft/moodcraft/internal/journal"
	"github.com/moodcraft/moodcraft/internal/storage"
)

var (
	// Config
	configPath string
	dataDir    string

	// Version
	version = "0.1.0"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "moodcraft",
		Short: "MoodCraft - a journal for how you feel",
		Long: `MoodCraft turns a few honest sentences about your day into a
mood reading, a suggestion for what to do next, and music that fits.

Entries stay on YOUR machine.`,
	}

	// Global flags
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "config file path")
	rootCmd.PersistentFlags().StringVar(&dataDir, "data-dir", "", "data directory (overrides config)")

	// Commands
	rootCmd.AddCommand(submitCmd())
	rootCmd.AddCommand(historyCmd())
	rootCmd.AddCommand(insightsCmd())
	rootCmd.AddCommand(statusCmd())
	rootCmd.AddCommand(versionCmd())

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// openService opens the configured backend and builds the journal on it
func openService() (*journal.Service, *history.Store, func(), error) {
	cfg, err := config.Load(configPath)
	if err != nil {
		return nil, nil, nil, err
	}
	if dataDir != "" {
		cfg.DataDir = dataDir
	}
	if err := os.MkdirAll(cfg.DataDir, 0755); err != nil {
		return nil, nil, nil, err
	}

	var backend history.Backend
	closeFn := func() {}

	switch cfg.Storage.Backend {
	case config.BackendRecord:
		backend = storage.NewRecordStore(cfg.StoragePath())
	default:
		db, err := storage.Open(storage.Config{Path: cfg.StoragePath()})
		if err != nil {
			return nil, nil, nil, err
		}
		if err := db.Migrate(); err != nil {
			db.Close()
			return nil, nil, nil, err
		}
		closeFn = func() { db.Close() }
		backend = storage.NewEntryStore(db)
	}

	store := history.New(backend)
	return journal.New(store), store, closeFn, nil
}

// submitCmd records how you feel right now
func submitCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "submit [text]",
		Short: "Describe how you feel and get a mood reading",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, _, closeFn, err := openService()
			if err != nil {
				return err
			}
			defer closeFn()

			text := strings.Join(args, " ")
			sub, err := svc.SubmitFeeling(text)
			if sub == nil {
				return err
			}

			fmt.Printf("🎭 Mood: %s (intensity %d/10)\n", sub.Analysis.Mood, sub.Analysis.Intensity)
			fmt.Println()
			fmt.Printf("   %s\n", sub.Analysis.Summary)
			fmt.Printf("   %s\n", sub.Narrative)
			fmt.Println()
			fmt.Println("💡 Try:")
			for _, a := range sub.Analysis.SuggestedActions {
				fmt.Printf("   • %s\n", a)
			}
			fmt.Println()
			fmt.Println("🎵 Listen to:")
			for _, m := range sub.Analysis.MusicRecommendations {
				fmt.Printf("   • %s\n", m)
			}

			if !sub.Saved {
				fmt.Println()
				fmt.Println("⚠️  Entry could not be saved; the reading above is still valid.")
			}
			return nil
		},
	}
}

// historyCmd lists recent entries, newest first
func historyCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "history",
		Short: "Show recent mood entries",
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, _, closeFn, err := openService()
			if err != nil {
				return err
			}
			defer closeFn()

			mood, _ := cmd.Flags().GetString("mood")
			limit, _ := cmd.Flags().GetInt("limit")

			entries, err := svc.History(mood, limit)
			if err != nil {
				return err
			}
			if len(entries) == 0 {
				fmt.Println("No entries yet. Run 'moodcraft submit' to record one.")
				return nil
			}

			fmt.Println("📖 Your Mood History")
			fmt.Println()
			for _, e := range entries {
				fmt.Printf("   %s  %-8s %2d/10", e.CreatedAt.Local().Format("2006-01-02 15:04"), e.Mood, e.Intensity)
				if e.Notes != "" {
					note := e.Notes
					if len(note) > 60 {
						note = note[:57] + "..."
					}
					fmt.Printf("  %s", note)
				}
				fmt.Println()
			}
			return nil
		},
	}
	cmd.Flags().String("mood", "", "only show entries with this mood")
	cmd.Flags().Int("limit", 20, "maximum entries to show")
	return cmd
}

// insightsCmd prints the mood chart and insight text
func insightsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "insights",
		Short: "Show mood trends and the daily insight",
		RunE: func(cmd *cobra.Command, args []string) error {
			_, store, closeFn, err := openService()
			if err != nil {
				return err
			}
			defer closeFn()

			raw, _ := cmd.Flags().GetString("window")
			window, err := core.ParseWindow(raw)
			if err != nil {
				return err
			}

			entries, err := store.Load()
			if err != nil {
				return err
			}

			now := time.Now().UTC()
			series := insights.DailyMoodSeries(entries, window, now)

			fmt.Printf("📈 Mood over the last %s\n", window)
			fmt.Println()
			for _, p := range series {
				bar := strings.Repeat("█", int(p.Score))
				marker := " "
				if p.Synthetic {
					marker = "·"
				}
				fmt.Printf("   %-6s %4.1f %s %s\n", p.Slot, p.Score, marker, bar)
			}

			fmt.Println()
			fmt.Println("🧭 " + insights.Insight(series))

			dist := insights.EmotionDistribution(entries, window, now)
			fmt.Println()
			fmt.Println("🎨 Emotions:")
			for _, c := range dist {
				fmt.Printf("   %-10s %d\n", c.Label, c.Count)
			}
			return nil
		},
	}
	cmd.Flags().String("window", "week", "aggregation window: week, month or year")
	return cmd
}

// statusCmd shows storage status
func statusCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "Show MoodCraft status",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(configPath)
			if err != nil {
				return err
			}
			if dataDir != "" {
				cfg.DataDir = dataDir
			}

			svc, store, closeFn, err := openService()
			if err != nil {
				return err
			}
			defer closeFn()

			entries, err := store.Load()
			if err != nil {
				return err
			}

			fmt.Println("📊 MoodCraft Status")
			fmt.Println()
			fmt.Printf("   Data: %s\n", cfg.DataDir)
			fmt.Printf("   Backend: %s (%s)\n", cfg.Storage.Backend, cfg.StoragePath())
			fmt.Printf("   Entries: %d\n", len(entries))
			if len(entries) > 0 {
				latest := entries[0]
				fmt.Printf("   Latest: %s at %s\n", latest.Mood, latest.CreatedAt.Local().Format("2006-01-02 15:04"))
			}
			fmt.Printf("   Today's music: %s\n", svc.SuggestedMusicCategory())

			quote := svc.DailyQuote()
			fmt.Println()
			fmt.Printf("   “%s” — %s\n", quote.Text, quote.Author)
			return nil
		},
	}
}

// versionCmd shows version
func versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show MoodCraft version",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Printf("MoodCraft %s\n", version)
			fmt.Println("A journal for how you feel")
		},
	}
}
