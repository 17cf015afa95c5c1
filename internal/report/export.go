package report

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/jung-kurt/gofpdf"

	"github.com/brokencop23/focus-timer/internal/task"
)

// Export formats.
const (
	FormatCSV  = "csv"
	FormatJSON = "json"
	FormatPDF  = "pdf"
)

// CSVHeader is the first row of a CSV export.
var CSVHeader = []string{"id", "name", "status", "duration", "created_at", "started_at"}

// exportRow is the JSON shape of one exported task.
type exportRow struct {
	ID        int64  `json:"id"`
	Name      string `json:"name"`
	Status    string `json:"status"`
	Duration  int64  `json:"duration_sec"`
	CreatedAt string `json:"created_at"`
	StartedAt string `json:"started_at,omitempty"`
}

func toRow(t task.Task, now time.Time) exportRow {
	r := exportRow{
		ID:        t.ID,
		Name:      t.Name,
		Status:    t.Status.String(),
		Duration:  int64(t.Elapsed(now).Seconds()),
		CreatedAt: t.CreatedAt.Format(time.RFC3339),
	}
	if !t.StartedAt.IsZero() {
		r.StartedAt = t.StartedAt.Format(time.RFC3339)
	}
	return r
}

// Export writes tasks to w in the given format.
func Export(w io.Writer, format string, tasks []task.Task, now time.Time) error {
	switch strings.ToLower(format) {
	case FormatCSV:
		return exportCSV(w, tasks, now)
	case FormatJSON:
		return exportJSON(w, tasks, now)
	case FormatPDF:
		return exportPDF(w, tasks, now)
	default:
		return fmt.Errorf("unknown export format %q", format)
	}
}

// ExportFile writes tasks to a new file at path.
func ExportFile(path, format string, tasks []task.Task, now time.Time) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create export file: %w", err)
	}
	defer f.Close()

	if err := Export(f, format, tasks, now); err != nil {
		return err
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("failed to write export file: %w", err)
	}
	return nil
}

func exportCSV(w io.Writer, tasks []task.Task, now time.Time) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(CSVHeader); err != nil {
		return fmt.Errorf("failed to write csv header: %w", err)
	}
	for _, t := range tasks {
		r := toRow(t, now)
		record := []string{
			strconv.FormatInt(r.ID, 10),
			r.Name,
			r.Status,
			strconv.FormatInt(r.Duration, 10),
			r.CreatedAt,
			r.StartedAt,
		}
		if err := cw.Write(record); err != nil {
			return fmt.Errorf("failed to write csv row: %w", err)
		}
	}
	cw.Flush()
	return cw.Error()
}

func exportJSON(w io.Writer, tasks []task.Task, now time.Time) error {
	rows := make([]exportRow, 0, len(tasks))
	for _, t := range tasks {
		rows = append(rows, toRow(t, now))
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(rows)
}

func exportPDF(w io.Writer, tasks []task.Task, now time.Time) error {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.AddPage()
	pdf.SetFont("Arial", "B", 14)
	pdf.Cell(40, 10, "Focus Timer Report")
	pdf.Ln(12)

	pdf.SetFont("Arial", "", 10)
	for _, t := range tasks {
		line := fmt.Sprintf("[%d] %s - %s, spent %s, created %s",
			t.ID, t.Name, t.Status, FormatDuration(t.Elapsed(now)),
			t.CreatedAt.Format("2006-01-02"))
		pdf.MultiCell(0, 6, line, "0", "L", false)
	}

	st := Collect(tasks, now)
	pdf.Ln(6)
	pdf.SetFont("Arial", "B", 10)
	pdf.Cell(40, 6, fmt.Sprintf("%d tasks, total %s, avg %s",
		st.Count, FormatDuration(st.Total), FormatDuration(st.Average())))

	return pdf.Output(w)
}
