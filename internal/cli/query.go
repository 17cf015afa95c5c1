package cli

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/brokencop23/focus-timer/internal/report"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List tasks, newest first",
	RunE:  runList,
}

var statCmd = &cobra.Command{
	Use:   "stat",
	Short: "Show aggregate statistics",
	RunE:  runStat,
}

func init() {
	for _, cmd := range []*cobra.Command{listCmd, statCmd} {
		cmd.Flags().String("date_from", "", "Only tasks created on or after this day (YYYY-MM-DD)")
		cmd.Flags().String("date_to", "", "Only tasks created on or before this day (YYYY-MM-DD)")
	}
	listCmd.Flags().IntP("limit", "n", 0, "Max tasks to show (0 = config default)")
}

func runList(cmd *cobra.Command, args []string) error {
	fromStr, _ := cmd.Flags().GetString("date_from")
	toStr, _ := cmd.Flags().GetString("date_to")
	limit, _ := cmd.Flags().GetInt("limit")

	filter, err := parseDateRange(fromStr, toStr)
	if err != nil {
		return err
	}

	store, cfg, err := openStore()
	if err != nil {
		return err
	}
	defer store.Close()

	filter.Limit = limit
	if filter.Limit <= 0 {
		filter.Limit = cfg.List.Limit
	}

	tasks, err := store.List(filter)
	if err != nil {
		return err
	}

	fmt.Println(report.RenderTasks(tasks, time.Now()))
	return nil
}

func runStat(cmd *cobra.Command, args []string) error {
	fromStr, _ := cmd.Flags().GetString("date_from")
	toStr, _ := cmd.Flags().GetString("date_to")

	filter, err := parseDateRange(fromStr, toStr)
	if err != nil {
		return err
	}

	store, _, err := openStore()
	if err != nil {
		return err
	}
	defer store.Close()

	tasks, err := store.List(filter)
	if err != nil {
		return err
	}

	fmt.Println(report.RenderStats(report.Collect(tasks, time.Now())))
	return nil
}
