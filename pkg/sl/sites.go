package sl

import (
	"math"
	"strings"
)

const earthRadiusKm = 6371.0

// haversine returns the great-circle distance in kilometers between two
// WGS84 coordinates.
func haversine(lat1, lon1, lat2, lon2 float64) float64 {
	dLat := toRad(lat2 - lat1)
	dLon := toRad(lon2 - lon1)

	a := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(toRad(lat1))*math.Cos(toRad(lat2))*
			math.Sin(dLon/2)*math.Sin(dLon/2)

	c := 2 * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))
	return earthRadiusKm * c
}

func toRad(deg float64) float64 {
	return deg * math.Pi / 180
}

// NearestSite returns the site closest to the given coordinate. Sites
// without a coordinate are not considered at all. The second return is
// false when no site carries a coordinate.
func NearestSite(lat, lon float64, sites []Site) (Site, bool) {
	var nearest Site
	best := math.Inf(1)
	found := false

	for _, s := range sites {
		if s.Lat == nil || s.Lon == nil {
			continue
		}
		d := haversine(lat, lon, *s.Lat, *s.Lon)
		if d < best {
			best = d
			nearest = s
			found = true
		}
	}
	return nearest, found
}

// ResolveSite finds the site best matching a free-text query. A purely
// numeric query is treated as a site ID; an unknown numeric ID still
// resolves, to a synthesized site, so users can pass IDs the sites list
// does not carry. Text queries match case-insensitively by substring,
// preferring an exact name match, then a prefix match, then the first
// substring hit.
func ResolveSite(query string, sites []Site) (Site, bool) {
	if query == "" {
		return Site{}, false
	}

	if isNumeric(query) {
		for _, s := range sites {
			if s.ID == query {
				return s, true
			}
		}
		return Site{ID: query, Name: query}, true
	}

	q := strings.ToLower(query)
	var prefix, substring *Site
	for i := range sites {
		name := strings.ToLower(sites[i].Name)
		if !strings.Contains(name, q) {
			continue
		}
		if name == q {
			return sites[i], true
		}
		if prefix == nil && strings.HasPrefix(name, q) {
			prefix = &sites[i]
		}
		if substring == nil {
			substring = &sites[i]
		}
	}
	if prefix != nil {
		return *prefix, true
	}
	if substring != nil {
		return *substring, true
	}
	return Site{}, false
}

func isNumeric(s string) bool {
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return len(s) > 0
}
