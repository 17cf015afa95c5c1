package cli

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/brokencop23/focus-timer/internal/tracker"
)

var newCmd = &cobra.Command{
	Use:   "new",
	Short: "Create a new task",
	RunE:  runNew,
}

var startCmd = &cobra.Command{
	Use:   "start",
	Short: "Start tracking time on a task",
	RunE:  runStart,
}

var stopCmd = &cobra.Command{
	Use:   "stop",
	Short: "Stop the running task",
	RunE:  runStop,
}

var completeCmd = &cobra.Command{
	Use:   "complete",
	Short: "Mark a task as completed",
	RunE:  runComplete,
}

var deleteCmd = &cobra.Command{
	Use:   "delete",
	Short: "Delete a task",
	RunE:  runDelete,
}

func init() {
	newCmd.Flags().StringP("task", "t", "", "Task name (required)")
	newCmd.MarkFlagRequired("task")

	for _, cmd := range []*cobra.Command{startCmd, stopCmd, completeCmd, deleteCmd} {
		cmd.Flags().Int64P("id", "i", 0, "Task id (required)")
		cmd.MarkFlagRequired("id")
	}
}

func runNew(cmd *cobra.Command, args []string) error {
	name, _ := cmd.Flags().GetString("task")
	if name == "" {
		return fmt.Errorf("task name must not be empty")
	}

	store, _, err := openStore()
	if err != nil {
		return err
	}
	defer store.Close()

	t, err := store.Create(name, time.Now())
	if err != nil {
		return err
	}

	fmt.Printf("Created task %d: %s\n", t.ID, t.Name)
	return nil
}

func runStart(cmd *cobra.Command, args []string) error {
	id, _ := cmd.Flags().GetInt64("id")

	store, _, err := openStore()
	if err != nil {
		return err
	}
	defer store.Close()

	t, err := tracker.Start(store, id, time.Now())
	if err != nil {
		return err
	}

	fmt.Printf("Task %d started\n", t.ID)
	return nil
}

func runStop(cmd *cobra.Command, args []string) error {
	id, _ := cmd.Flags().GetInt64("id")

	store, _, err := openStore()
	if err != nil {
		return err
	}
	defer store.Close()

	t, err := tracker.Stop(store, id, time.Now())
	if err != nil {
		return err
	}

	fmt.Printf("Task %d stopped\n", t.ID)
	return nil
}

func runComplete(cmd *cobra.Command, args []string) error {
	id, _ := cmd.Flags().GetInt64("id")

	store, _, err := openStore()
	if err != nil {
		return err
	}
	defer store.Close()

	t, err := tracker.Complete(store, id, time.Now())
	if err != nil {
		return err
	}

	fmt.Printf("Task %d completed\n", t.ID)
	return nil
}

func runDelete(cmd *cobra.Command, args []string) error {
	id, _ := cmd.Flags().GetInt64("id")

	store, _, err := openStore()
	if err != nil {
		return err
	}
	defer store.Close()

	if err := store.Delete(id); err != nil {
		return err
	}

	fmt.Printf("Task %d deleted\n", id)
	return nil
}
