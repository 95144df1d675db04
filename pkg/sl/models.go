package sl

import (
	"encoding/json"
	"time"
)

// Raw wire shapes for the two SL APIs. The journey planner (an EFA backend)
// nests times and platforms inside the origin/destination stop events; the
// transport API uses flat snake_case records.

// stopFinderResponse represents the object returned by /stop-finder.
type stopFinderResponse struct {
	Locations []rawLocation `json:"locations"`
}

type rawLocation struct {
	ID           string    `json:"id"`
	Name         string    `json:"name"`
	Coord        []float64 `json:"coord"` // [lat, lon]
	Type         string    `json:"type"`  // "stop", "street", "singlehouse", ...
	MatchQuality int       `json:"matchQuality"`
	IsBest       bool      `json:"isBest"`
}

// tripResponse represents the object returned by /trips. Journeys are kept
// raw so one malformed journey cannot sink the whole batch.
type tripResponse struct {
	Journeys []json.RawMessage `json:"journeys"`
}

type rawJourney struct {
	TripDuration *int     `json:"tripDuration"` // seconds
	Legs         []rawLeg `json:"legs"`
}

type rawLeg struct {
	Duration       *int               `json:"duration"` // seconds
	Origin         *rawStopEvent      `json:"origin"`
	Destination    *rawStopEvent      `json:"destination"`
	Transportation *rawTransportation `json:"transportation"`
}

type rawStopEvent struct {
	Name                       string `json:"name"`
	DepartureTimeEstimated     string `json:"departureTimeEstimated"`
	DepartureTimePlanned       string `json:"departureTimePlanned"`
	DepartureTimeBaseTimetable string `json:"departureTimeBaseTimetable"`
	ArrivalTimeEstimated       string `json:"arrivalTimeEstimated"`
	ArrivalTimePlanned         string `json:"arrivalTimePlanned"`
	ArrivalTimeBaseTimetable   string `json:"arrivalTimeBaseTimetable"`
	Properties                 struct {
		Platform string `json:"platform"`
	} `json:"properties"`
}

type rawTransportation struct {
	Name             string `json:"name"`             // e.g. "tunnelbanans gröna linje 17"
	DisassembledName string `json:"disassembledName"` // e.g. "17"
	Destination      struct {
		Name string `json:"name"`
	} `json:"destination"`
	Product struct {
		Name string `json:"name"` // e.g. "Tunnelbana", "Buss", "footpath"
	} `json:"product"`
}

// sitesResponse is the array returned by /sites.
type rawSite struct {
	ID       json.Number `json:"id"`
	Name     string      `json:"name"`
	Lat      *float64    `json:"lat"`
	Lon      *float64    `json:"lon"`
	Products []string    `json:"products"`
}

// departuresResponse represents the object returned by /sites/{id}/departures.
type departuresResponse struct {
	Departures []RawDeparture `json:"departures"`
}

// RawDeparture is one departure record as the transport API sends it.
type RawDeparture struct {
	Destination string `json:"destination"`
	State       string `json:"state"`
	Scheduled   string `json:"scheduled"`
	Expected    string `json:"expected"`
	Line        struct {
		Designation   string `json:"designation"`
		TransportMode string `json:"transport_mode"`
	} `json:"line"`
	StopPoint struct {
		Designation string `json:"designation"`
	} `json:"stop_point"`
}

// apiTimeLayout is what the transport API actually emits: RFC3339 without a
// zone suffix, in Swedish local time.
const apiTimeLayout = "2006-01-02T15:04:05"

// parseAPITime accepts both zoned RFC3339 and the transport API's bare
// local-time variant.
func parseAPITime(s string, loc *time.Location) (time.Time, error) {
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t, nil
	}
	return time.ParseInLocation(apiTimeLayout, s, loc)
}
