package report

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/brokencop23/focus-timer/internal/task"
)

var (
	titleStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("86")).
			Bold(true)

	runningStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("82")).
			Bold(true)

	headerStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("86")).
			Bold(true)

	durationStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("69")).
			Bold(true)

	mutedStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("241"))
)

// FormatDuration renders a duration as h:mm:ss, or mm:ss under an hour.
func FormatDuration(d time.Duration) string {
	total := int(d.Seconds())
	hours := total / 3600
	minutes := (total % 3600) / 60
	seconds := total % 60

	if hours > 0 {
		return fmt.Sprintf("%d:%02d:%02d", hours, minutes, seconds)
	}
	return fmt.Sprintf("%02d:%02d", minutes, seconds)
}

// RenderActive renders the currently running task, or a placeholder
// when nothing is being tracked.
func RenderActive(t *task.Task, now time.Time) string {
	if t == nil {
		return mutedStyle.Render("No active task")
	}

	var b strings.Builder
	b.WriteString(titleStyle.Render("Active task") + "\n")
	b.WriteString(fmt.Sprintf("  [%d] %s\n", t.ID, t.Name))
	b.WriteString(fmt.Sprintf("  Status:  %s\n", runningStyle.Render(t.Status.String())))
	b.WriteString(fmt.Sprintf("  Started: %s\n", t.StartedAt.Local().Format("2006-01-02 15:04:05")))
	b.WriteString(fmt.Sprintf("  Spent:   %s", durationStyle.Render(FormatDuration(t.Elapsed(now)))))
	return b.String()
}

// RenderTasks renders tasks as an aligned table, newest first.
func RenderTasks(tasks []task.Task, now time.Time) string {
	if len(tasks) == 0 {
		return mutedStyle.Render("No tasks found")
	}

	var b strings.Builder
	b.WriteString(headerStyle.Render(fmt.Sprintf("%-5s %-30s %-10s %-10s %s",
		"ID", "NAME", "STATUS", "SPENT", "CREATED")) + "\n")

	for _, t := range tasks {
		name := t.Name
		if len(name) > 30 {
			name = name[:27] + "..."
		}
		// Styled cells would break the fixed-width alignment, so rows
		// stay plain and only the trailing timestamp is dimmed.
		b.WriteString(fmt.Sprintf("%-5d %-30s %-10s %-10s %s\n",
			t.ID,
			name,
			t.Status.String(),
			FormatDuration(t.Elapsed(now)),
			mutedStyle.Render(t.CreatedAt.Local().Format("2006-01-02 15:04")),
		))
	}
	return strings.TrimRight(b.String(), "\n")
}

// RenderStats renders the aggregate summary for a filtered set.
func RenderStats(st Stats) string {
	var b strings.Builder
	b.WriteString(titleStyle.Render("Total stat") + "\n")
	b.WriteString(fmt.Sprintf("  Tasks:      %d\n", st.Count))
	b.WriteString(fmt.Sprintf("  Total time: %s\n", durationStyle.Render(FormatDuration(st.Total))))
	b.WriteString(fmt.Sprintf("  Avg time:   %s\n", durationStyle.Render(FormatDuration(st.Average()))))

	b.WriteString(headerStyle.Render("By status") + "\n")
	for _, status := range statusOrder {
		bucket, ok := st.ByStatus[status]
		if !ok {
			continue
		}
		b.WriteString(fmt.Sprintf("  %-10s %3d  %s\n",
			status.String(), bucket.Count, FormatDuration(bucket.Duration)))
	}
	return strings.TrimRight(b.String(), "\n")
}
