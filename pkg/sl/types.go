package sl

import "time"

// TransportKind is the normalized category of a leg or departure.
type TransportKind string

const (
	KindWalk  TransportKind = "walk"
	KindMetro TransportKind = "metro"
	KindTrain TransportKind = "train"
	KindTram  TransportKind = "tram"
	KindBus   TransportKind = "bus"
	KindShip  TransportKind = "ship"
)

// Location is one stop-finder candidate.
type Location struct {
	ID           string  `json:"id"`
	Name         string  `json:"name"`
	Latitude     float64 `json:"latitude"`
	Longitude    float64 `json:"longitude"`
	Kind         string  `json:"kind"` // "stop" or "address"
	MatchQuality int     `json:"matchQuality,omitempty"`
	IsBest       bool    `json:"isBest,omitempty"`
}

// Site is a physical stop or station from the sites endpoint.
// Lat/Lon are nil when the API carries no coordinate for the site.
type Site struct {
	ID       string   `json:"id"`
	Name     string   `json:"name"`
	Lat      *float64 `json:"lat,omitempty"`
	Lon      *float64 `json:"lon,omitempty"`
	Products []string `json:"products,omitempty"`
}

// TripLeg is one uninterrupted segment of a journey.
type TripLeg struct {
	Kind      TransportKind `json:"kind"`
	Line      string        `json:"line,omitempty"`
	Direction string        `json:"direction,omitempty"`
	Departure time.Time     `json:"departure"`
	Arrival   time.Time     `json:"arrival"`
	Duration  int           `json:"durationSeconds"`
	From      string        `json:"from"`
	To        string        `json:"to"`
	Platform  string        `json:"platform,omitempty"`
}

// TripProposal is one suggested itinerary. Legs is never empty and never
// contains two consecutive walking legs.
type TripProposal struct {
	Legs        []TripLeg `json:"legs"`
	Departure   time.Time `json:"departure"`
	Arrival     time.Time `json:"arrival"`
	DurationMin int       `json:"durationMinutes"`
	WalkSeconds int       `json:"walkSeconds"` // walking before the first transport leg
	Summary     string    `json:"summary"`
}

// Departure is one upcoming departure at a site.
type Departure struct {
	Kind         TransportKind `json:"kind"`
	Line         string        `json:"line"`
	Destination  string        `json:"destination"`
	Scheduled    time.Time     `json:"scheduled"`
	Expected     time.Time     `json:"expected"`
	MinutesUntil int           `json:"minutesUntil"`
	Delayed      bool          `json:"delayed"`
	Cancelled    bool          `json:"cancelled"`
	Platform     string        `json:"platform,omitempty"`
}

// Place identifies one end of a trip request, either by a known location ID
// or by a raw coordinate. It is a closed set: only PlaceID and PlaceCoord
// implement it.
type Place interface {
	isPlace()
}

// PlaceID references a location the journey planner already knows.
type PlaceID struct {
	ID   string
	Name string
}

// PlaceCoord is a raw WGS84 coordinate.
type PlaceCoord struct {
	Lat float64
	Lon float64
}

func (PlaceID) isPlace()    {}
func (PlaceCoord) isPlace() {}
