// Package timeutil isolates the Indian Standard Time conversion used when
// rendering match start dates, so the rest of the service never depends on
// the host's ambient locale or timezone.
package timeutil

import (
	"errors"
	"time"
)

// startDateLayout mirrors the 12-hour en-US rendering of the scoreboard's
// start date, e.g. "1/2/2024, 3:30:00 PM".
const startDateLayout = "1/2/2006, 3:04:05 PM"

// startDateInputs are the ISO-8601 shapes the scoreboard markup emits for
// the startDate attribute. Cricbuzz omits seconds on some pages.
var startDateInputs = []string{
	time.RFC3339,
	"2006-01-02T15:04Z07:00",
}

var errUnrecognizedStartDate = errors.New("timeutil: unrecognized start date value")

// ist resolves Asia/Kolkata once; when the host lacks tzdata we fall back to
// the fixed +05:30 offset, which is equivalent (India has no DST).
var ist = loadIST()

func loadIST() *time.Location {
	loc, err := time.LoadLocation("Asia/Kolkata")
	if err != nil {
		return time.FixedZone("IST", 5*60*60+30*60)
	}
	return loc
}

// ParseStartDate parses an ISO-8601 start date value from scoreboard markup.
func ParseStartDate(value string) (time.Time, error) {
	for _, layout := range startDateInputs {
		if t, err := time.Parse(layout, value); err == nil {
			return t, nil
		}
	}
	return time.Time{}, errUnrecognizedStartDate
}

// FormatMatchStart renders t as a 12-hour Indian Standard Time timestamp.
func FormatMatchStart(t time.Time) string {
	return t.In(ist).Format(startDateLayout)
}
