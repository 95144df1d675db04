package sl

import (
	"math"
	"sort"
	"strings"
	"time"
)

// maxDepartures caps how many departures one call returns.
const maxDepartures = 30

// ParseDepartures normalizes a raw departures batch against a single "now"
// so every relative time in the result is computed from the same instant.
// Records without a scheduled time and records more than a minute in the
// past are dropped; the rest are sorted by expected time and capped.
func ParseDepartures(raws []RawDeparture, now time.Time) []Departure {
	loc := now.Location()

	var deps []Departure
	for _, raw := range raws {
		dep, ok := parseDeparture(raw, now, loc)
		if !ok {
			continue
		}
		deps = append(deps, dep)
	}

	sort.Slice(deps, func(i, j int) bool {
		return deps[i].Expected.Before(deps[j].Expected)
	})
	if len(deps) > maxDepartures {
		deps = deps[:maxDepartures]
	}
	return deps
}

func parseDeparture(raw RawDeparture, now time.Time, loc *time.Location) (Departure, bool) {
	if raw.Scheduled == "" {
		return Departure{}, false
	}
	scheduled, err := parseAPITime(raw.Scheduled, loc)
	if err != nil {
		return Departure{}, false
	}

	expected := scheduled
	if raw.Expected != "" {
		if t, err := parseAPITime(raw.Expected, loc); err == nil {
			expected = t
		}
	}

	minutes := int(math.Round(expected.Sub(now).Minutes()))
	if minutes < -1 {
		// Already gone.
		return Departure{}, false
	}

	state := strings.ToUpper(raw.State)

	return Departure{
		Kind:         ClassifyTransportMode(raw.Line.TransportMode),
		Line:         raw.Line.Designation,
		Destination:  raw.Destination,
		Scheduled:    scheduled,
		Expected:     expected,
		MinutesUntil: clampNonNegative(minutes),
		Delayed:      expected.Sub(scheduled) > time.Minute,
		Cancelled:    state == "CANCELLED" || state == "REPLACED",
		Platform:     raw.StopPoint.Designation,
	}, true
}
