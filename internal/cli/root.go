package cli

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/brokencop23/focus-timer/internal/config"
	"github.com/brokencop23/focus-timer/internal/report"
	"github.com/brokencop23/focus-timer/internal/storage"
)

var rootCmd *cobra.Command

func init() {
	rootCmd = &cobra.Command{
		Use:   "focus-timer",
		Short: "Track time spent on tasks from the command line",
		Long: `focus-timer is a personal time tracker. Create tasks, start and stop
timers on them, and query the history kept in a local SQLite database.`,
		RunE:          runShowActive, // Default action shows the active task
		SilenceUsage:  true,
		SilenceErrors: true,
	}
}

// Execute runs the root command.
func Execute(version string) error {
	rootCmd.AddCommand(newCmd)
	rootCmd.AddCommand(startCmd)
	rootCmd.AddCommand(stopCmd)
	rootCmd.AddCommand(completeCmd)
	rootCmd.AddCommand(deleteCmd)
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(statCmd)
	rootCmd.AddCommand(exportCmd)
	rootCmd.AddCommand(infoCmd)
	rootCmd.AddCommand(flushCmd)
	rootCmd.AddCommand(configCmd)

	rootCmd.Version = version
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return err
	}
	return nil
}

// openStore loads the configuration and opens the task database.
func openStore() (*storage.Store, *config.Config, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load config: %w", err)
	}

	store, err := storage.Open(cfg.Database.Path)
	if err != nil {
		return nil, nil, err
	}
	return store, cfg, nil
}

func runShowActive(cmd *cobra.Command, args []string) error {
	store, _, err := openStore()
	if err != nil {
		return err
	}
	defer store.Close()

	active, err := store.Active()
	if err != nil {
		return err
	}

	fmt.Println(report.RenderActive(active, time.Now()))
	return nil
}
