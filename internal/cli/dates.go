package cli

import (
	"fmt"
	"time"

	"github.com/brokencop23/focus-timer/internal/storage"
)

// dateLayout is the accepted format for --date_from and --date_to.
const dateLayout = "2006-01-02"

// parseDateRange turns the date flags into a storage filter range.
// Both days are interpreted in UTC; the end day is included, so the
// returned To bound is midnight of the following day.
func parseDateRange(fromStr, toStr string) (storage.Filter, error) {
	var f storage.Filter

	if fromStr != "" {
		from, err := time.Parse(dateLayout, fromStr)
		if err != nil {
			return f, fmt.Errorf("invalid --date_from %q: expected YYYY-MM-DD", fromStr)
		}
		f.From = from
	}
	if toStr != "" {
		to, err := time.Parse(dateLayout, toStr)
		if err != nil {
			return f, fmt.Errorf("invalid --date_to %q: expected YYYY-MM-DD", toStr)
		}
		f.To = to.AddDate(0, 0, 1)
	}
	if !f.From.IsZero() && !f.To.IsZero() && f.To.Before(f.From) {
		return f, fmt.Errorf("--date_to %s is before --date_from %s", toStr, fromStr)
	}
	return f, nil
}
