package sl

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"
)

var (
	journeyBaseURL   = "https://journeyplanner.integration.sl.se/v2"
	transportBaseURL = "https://transport.integration.sl.se/v1"
)

// Optimize is the planner-side ranking preference for trip proposals.
type Optimize string

const (
	OptimizeTime    Optimize = "leasttime"
	OptimizeChanges Optimize = "leastinterchange"
	OptimizeWalk    Optimize = "leastwalking"
)

// TripQuery describes one trip search.
type TripQuery struct {
	From       Place
	To         Place
	Trips      int // requested proposals, clamped to 1..3
	When       time.Time
	ArriveBy   bool // When is an arrive-before target instead of depart-after
	Optimize   Optimize
	MaxChanges int // negative means unbounded
}

// Client talks to the SL journey planner and transport APIs.
type Client struct {
	httpClient *http.Client

	// Logf, when set, receives one line per outgoing request.
	Logf func(format string, args ...any)
}

func NewClient() *Client {
	return &Client{
		httpClient: &http.Client{Timeout: 30 * time.Second},
	}
}

func (c *Client) get(reqURL string) (*http.Response, error) {
	req, err := http.NewRequest("GET", reqURL, nil)
	if err != nil {
		return nil, err
	}
	// Public APIs often block default Go user agents
	req.Header.Set("User-Agent", "sl-cli/1.0 (https://github.com/ossianhempel/sl-cli)")

	if c.Logf != nil {
		c.Logf("GET %s", reqURL)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	if resp.StatusCode != http.StatusOK {
		resp.Body.Close()
		return nil, fmt.Errorf("unexpected status: %s", resp.Status)
	}
	return resp, nil
}

// FindLocations searches the journey planner's stop finder for stops and
// addresses matching a text query.
func (c *Client) FindLocations(query string) ([]Location, error) {
	params := url.Values{}
	params.Set("name_sf", query)
	params.Set("type_sf", "any")
	reqURL := fmt.Sprintf("%s/stop-finder?%s", journeyBaseURL, params.Encode())

	resp, err := c.get(reqURL)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch locations: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read location response body: %w", err)
	}

	var sfResp stopFinderResponse
	if err := json.Unmarshal(body, &sfResp); err != nil {
		return nil, fmt.Errorf("failed to decode locations JSON: %w", err)
	}

	var locations []Location
	for _, raw := range sfResp.Locations {
		loc := Location{
			ID:           raw.ID,
			Name:         raw.Name,
			Kind:         "address",
			MatchQuality: raw.MatchQuality,
			IsBest:       raw.IsBest,
		}
		if raw.Type == "stop" || raw.Type == "platform" {
			loc.Kind = "stop"
		}
		if len(raw.Coord) >= 2 {
			loc.Latitude = raw.Coord[0]
			loc.Longitude = raw.Coord[1]
		}
		locations = append(locations, loc)
	}
	return locations, nil
}

// FetchTrips runs a trip search and returns the raw journeys for
// ParseJourneys to normalize.
func (c *Client) FetchTrips(q TripQuery) ([]json.RawMessage, error) {
	params := url.Values{}
	setPlaceParams(params, "origin", q.From)
	setPlaceParams(params, "destination", q.To)

	trips := q.Trips
	if trips < 1 {
		trips = 1
	} else if trips > 3 {
		trips = 3
	}
	params.Set("calc_number_of_trips", strconv.Itoa(trips))

	if !q.When.IsZero() {
		params.Set("itd_date", q.When.Format("20060102"))
		params.Set("itd_time", q.When.Format("1504"))
		if q.ArriveBy {
			params.Set("itd_trip_date_time_dep_arr", "arr")
		} else {
			params.Set("itd_trip_date_time_dep_arr", "dep")
		}
	}
	if q.Optimize != "" {
		params.Set("route_type", string(q.Optimize))
	}
	if q.MaxChanges >= 0 {
		params.Set("max_changes", strconv.Itoa(q.MaxChanges))
	}

	reqURL := fmt.Sprintf("%s/trips?%s", journeyBaseURL, params.Encode())

	resp, err := c.get(reqURL)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch trips: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read trip response body: %w", err)
	}

	var tripResp tripResponse
	if err := json.Unmarshal(body, &tripResp); err != nil {
		return nil, fmt.Errorf("failed to decode trips JSON: %w", err)
	}
	return tripResp.Journeys, nil
}

// setPlaceParams encodes one end of a trip request. The planner takes known
// locations by ID and raw positions as a lon:lat coordinate triple.
func setPlaceParams(params url.Values, side string, place Place) {
	switch p := place.(type) {
	case PlaceID:
		params.Set("type_"+side, "any")
		params.Set("name_"+side, p.ID)
	case PlaceCoord:
		params.Set("type_"+side, "coord")
		params.Set("name_"+side, fmt.Sprintf("%.6f:%.6f:WGS84[dd.ddddd]", p.Lon, p.Lat))
	}
}

// FetchSites retrieves all known stops and stations.
func (c *Client) FetchSites() ([]Site, error) {
	reqURL := fmt.Sprintf("%s/sites?expand=true", transportBaseURL)

	resp, err := c.get(reqURL)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch sites: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read sites response body: %w", err)
	}

	var rawSites []rawSite
	if err := json.Unmarshal(body, &rawSites); err != nil {
		return nil, fmt.Errorf("failed to decode sites JSON: %w", err)
	}

	sites := make([]Site, 0, len(rawSites))
	for _, raw := range rawSites {
		sites = append(sites, Site{
			ID:       raw.ID.String(),
			Name:     raw.Name,
			Lat:      raw.Lat,
			Lon:      raw.Lon,
			Products: raw.Products,
		})
	}
	return sites, nil
}

// FetchDepartures gets upcoming departures for a site within the forecast
// window, raw; ParseDepartures does the normalization.
func (c *Client) FetchDepartures(siteID string, forecastMinutes int) ([]RawDeparture, error) {
	reqURL := fmt.Sprintf("%s/sites/%s/departures?forecast=%d", transportBaseURL, url.PathEscape(siteID), forecastMinutes)

	resp, err := c.get(reqURL)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch departures: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read departure response body: %w", err)
	}

	var depResp departuresResponse
	if err := json.Unmarshal(body, &depResp); err != nil {
		return nil, fmt.Errorf("failed to decode departures JSON: %w", err)
	}
	return depResp.Departures, nil
}
