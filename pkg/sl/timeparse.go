package sl

import (
	"fmt"
	"strings"
	"time"
)

// ParseWhen interprets a free-text date/time argument in the given location.
// Accepted forms, in order: a bare date (local midnight), a date and time
// separated by space or "T", a bare time (today), and finally anything
// RFC3339 can make sense of.
func ParseWhen(input string, loc *time.Location) (time.Time, error) {
	s := strings.TrimSpace(input)

	if t, err := time.ParseInLocation("2006-01-02", s, loc); err == nil {
		return t, nil
	}
	for _, layout := range []string{"2006-01-02 15:04", "2006-01-02T15:04"} {
		if t, err := time.ParseInLocation(layout, s, loc); err == nil {
			return t, nil
		}
	}
	if t, err := time.ParseInLocation("15:04", s, loc); err == nil {
		now := time.Now().In(loc)
		return time.Date(now.Year(), now.Month(), now.Day(), t.Hour(), t.Minute(), 0, 0, loc), nil
	}
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t.In(loc), nil
	}

	return time.Time{}, fmt.Errorf("could not parse date/time %q (try 2006-01-02, 15:04, or 2006-01-02 15:04)", input)
}
