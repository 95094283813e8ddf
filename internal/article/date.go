package article

import (
	"strings"
	"time"
)

// dateLayouts are tried in order by NewDate. Submission metadata is
// hand-edited, so several common spellings are accepted.
var dateLayouts = []string{
	"2006-01-02",
	"2006/01/02",
	"02/01/2006",
	"2 January 2006",
	"02 January 2006",
	"January 2, 2006",
	"Jan 2, 2006",
	"2006-01-02 15:04:05",
	time.RFC3339,
}

// Date is a submission lifecycle date (received/accepted/published).
//
// Textual is the display form ("14 January 2021"). A value that failed
// to parse carries the current time and an empty Textual; NewDate never
// fails.
type Date struct {
	Time    time.Time
	Textual string
}

// NewDate parses a date string permissively. Any input that matches no
// known layout falls back to the current timestamp with empty display
// text.
func NewDate(s string) Date {
	s = strings.TrimSpace(s)
	if s != "" {
		for _, layout := range dateLayouts {
			if t, err := time.Parse(layout, s); err == nil {
				return Date{Time: t, Textual: t.Format("02 January 2006")}
			}
		}
	}
	return Date{Time: time.Now()}
}

// Year returns the four-digit year.
func (d Date) Year() int {
	return d.Time.Year()
}

func (d Date) String() string {
	return d.Textual
}
