package meetparse

import (
	"strings"
)

// DateLayout is the layout used when a meeting date is shown to people.
const DateLayout = "2006-01-02"

// FormatMeeting renders a one-line summary: date, time, title and venue.
// Missing fields are shown as "-".
func FormatMeeting(m *Meeting) string {
	date := "-"
	if m.Date != nil {
		date = m.Date.Format(DateLayout)
	}
	parts := []string{date, orDash(m.Time), orDash(m.Title)}
	if m.Venue != "" {
		parts = append(parts, "@ "+m.Venue)
	}
	return strings.Join(parts, "  ")
}

// FormatMeetings formats meetings one per line, in the given order.
func FormatMeetings(meetings []*Meeting) string {
	if len(meetings) == 0 {
		return ""
	}

	lines := make([]string, 0, len(meetings))
	for _, m := range meetings {
		lines = append(lines, FormatMeeting(m))
	}
	return strings.Join(lines, "\n")
}

func orDash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}
