package cli

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/brokencop23/focus-timer/internal/report"
)

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export tasks to a file",
	Long: `Export writes the filtered task set to a file. Supported formats are
csv (default), json and pdf.`,
	RunE: runExport,
}

func init() {
	exportCmd.Flags().StringP("path", "p", "", "Output file path (required)")
	exportCmd.MarkFlagRequired("path")
	exportCmd.Flags().String("format", "", "Output format: csv, json or pdf (default from config)")
	exportCmd.Flags().String("date_from", "", "Only tasks created on or after this day (YYYY-MM-DD)")
	exportCmd.Flags().String("date_to", "", "Only tasks created on or before this day (YYYY-MM-DD)")
}

func runExport(cmd *cobra.Command, args []string) error {
	path, _ := cmd.Flags().GetString("path")
	format, _ := cmd.Flags().GetString("format")
	fromStr, _ := cmd.Flags().GetString("date_from")
	toStr, _ := cmd.Flags().GetString("date_to")

	filter, err := parseDateRange(fromStr, toStr)
	if err != nil {
		return err
	}

	store, cfg, err := openStore()
	if err != nil {
		return err
	}
	defer store.Close()

	if format == "" {
		format = cfg.Export.Format
	}

	tasks, err := store.List(filter)
	if err != nil {
		return err
	}

	if err := report.ExportFile(path, format, tasks, time.Now()); err != nil {
		return err
	}

	fmt.Printf("Exported %d tasks to %s\n", len(tasks), path)
	return nil
}
