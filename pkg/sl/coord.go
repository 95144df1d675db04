package sl

import (
	"strconv"
	"strings"
)

// ParseCoord interprets a place argument as a "lat,lon" pair. The second
// return is false when the input is not a coordinate at all, in which case
// the caller should treat it as a search query. A pair that parses but is
// outside WGS84 ranges is also rejected.
func ParseCoord(s string) (lat, lon float64, ok bool) {
	parts := strings.Split(strings.TrimSpace(s), ",")
	if len(parts) != 2 {
		return 0, 0, false
	}
	lat, err := strconv.ParseFloat(strings.TrimSpace(parts[0]), 64)
	if err != nil {
		return 0, 0, false
	}
	lon, err = strconv.ParseFloat(strings.TrimSpace(parts[1]), 64)
	if err != nil {
		return 0, 0, false
	}
	if lat < -90 || lat > 90 || lon < -180 || lon > 180 {
		return 0, 0, false
	}
	return lat, lon, true
}

// PickLocation chooses the best candidate from a stop-finder result:
// the one flagged best by the planner, else the highest match quality,
// else simply the first.
func PickLocation(locations []Location) (Location, bool) {
	if len(locations) == 0 {
		return Location{}, false
	}
	best := locations[0]
	for _, l := range locations[1:] {
		if l.IsBest && !best.IsBest {
			best = l
			continue
		}
		if l.IsBest == best.IsBest && l.MatchQuality > best.MatchQuality {
			best = l
		}
	}
	return best, true
}
