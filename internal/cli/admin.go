package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/brokencop23/focus-timer/internal/config"
)

var infoCmd = &cobra.Command{
	Use:   "info",
	Short: "Show where task data is stored",
	RunE:  runInfo,
}

var flushCmd = &cobra.Command{
	Use:   "flush",
	Short: "Delete the entire task database",
	RunE:  runFlush,
}

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Configuration utilities",
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Print the effective configuration",
	RunE:  runConfigShow,
}

func init() {
	configCmd.AddCommand(configShowCmd)
}

func runInfo(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	fmt.Printf("Database: %s\n", cfg.Database.Path)
	if _, err := os.Stat(cfg.Database.Path); err == nil {
		fmt.Println("  Status: OK")
	} else {
		fmt.Println("  Status: Not initialized")
	}
	fmt.Printf("Config:   %s\n", config.Path())
	return nil
}

func runFlush(cmd *cobra.Command, args []string) error {
	store, _, err := openStore()
	if err != nil {
		return err
	}

	if err := store.Destroy(); err != nil {
		return err
	}

	fmt.Println("Task database removed")
	return nil
}

func runConfigShow(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	out, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("failed to render config: %w", err)
	}

	fmt.Print(string(out))
	return nil
}
