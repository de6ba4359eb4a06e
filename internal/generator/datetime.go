// Date and time rendering for prompts and fallback text.
// Formatting never fails: unparseable input degrades to the raw form values.
package generator

import (
	"strings"
	"time"

	"github.com/ncruces/go-strftime"
)

const (
	dateLayout = "2006-01-02"
	timeLayout = "15:04"
)

// FormatPoint renders a single date+time as
// "Sunday, June 15, 2025 at 9:00 AM" (no leading zero on the hour).
// On parse failure it returns "<date> at <time>" verbatim.
func FormatPoint(date, clock string) string {
	t, err := parseStamp(date, clock)
	if err != nil {
		return date + " at " + clock
	}
	return formatPoint(t)
}

// FormatSpan renders a start/end span. Same-day spans (string equality of the
// two dates) print the date once:
// "Sunday, June 15, 2025, 9:00 AM to 5:00 PM".
// Multi-day spans print both endpoints in full. On any parse failure it
// returns "<start_date> <start_time> to <end_date> <end_time>" verbatim.
func FormatSpan(startDate, endDate, startTime, endTime string) string {
	start, err := parseStamp(startDate, startTime)
	if err != nil {
		return startDate + " " + startTime + " to " + endDate + " " + endTime
	}
	end, err := parseStamp(endDate, endTime)
	if err != nil {
		return startDate + " " + startTime + " to " + endDate + " " + endTime
	}

	if startDate == endDate {
		return strftime.Format("%A, %B %d, %Y", start) + ", " + formatClock(start) + " to " + formatClock(end)
	}
	return formatPoint(start) + " to " + formatPoint(end)
}

func parseStamp(date, clock string) (time.Time, error) {
	return time.Parse(dateLayout+" "+timeLayout, date+" "+clock)
}

func formatPoint(t time.Time) string {
	return strftime.Format("%A, %B %d, %Y", t) + " at " + formatClock(t)
}

// formatClock renders a 12-hour clock reading with no leading zero ("9:00 AM").
func formatClock(t time.Time) string {
	return strings.TrimPrefix(strftime.Format("%I:%M %p", t), "0")
}

// arrivalClock computes the suggested volunteer arrival reading: 45 minutes
// before the event start, defaulting to a 09:00 start when the field is empty.
// Unparseable input degrades to a literal phrase instead of failing.
func arrivalClock(startTime string) string {
	if startTime == "" {
		startTime = "09:00"
	}
	t, err := time.Parse(timeLayout, startTime)
	if err != nil {
		return "45 minutes before the event start time"
	}
	return formatClock(t.Add(-45 * time.Minute))
}
