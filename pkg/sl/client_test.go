package sl

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"
)

func TestClient_FetchTrips(t *testing.T) {
	// Mock JSON representing a typical journey planner payload
	mockJSON := `{
		"journeys": [
			{
				"tripDuration": 1500,
				"legs": [
					{
						"duration": 900,
						"origin": {"name": "Odenplan", "departureTimePlanned": "2026-02-25T08:00:00Z"},
						"destination": {"name": "T-Centralen", "arrivalTimePlanned": "2026-02-25T08:15:00Z"},
						"transportation": {"disassembledName": "17", "product": {"name": "Tunnelbana"}}
					}
				]
			}
		]
	}`

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()
		if q.Get("name_origin") != "9117" {
			t.Errorf("expected origin 9117, got %s", q.Get("name_origin"))
		}
		if q.Get("type_destination") != "coord" {
			t.Errorf("expected coordinate destination, got %s", q.Get("type_destination"))
		}
		if q.Get("calc_number_of_trips") != "3" {
			t.Errorf("expected trips clamped to 3, got %s", q.Get("calc_number_of_trips"))
		}
		if q.Get("itd_trip_date_time_dep_arr") != "arr" {
			t.Errorf("expected arrive-by mode, got %s", q.Get("itd_trip_date_time_dep_arr"))
		}
		if q.Get("route_type") != "leastwalking" {
			t.Errorf("expected leastwalking route type, got %s", q.Get("route_type"))
		}

		w.WriteHeader(http.StatusOK)
		w.Write([]byte(mockJSON))
	}))
	defer server.Close()

	// Temporarily override the unexported base URL
	originalBaseURL := journeyBaseURL
	journeyBaseURL = server.URL
	defer func() { journeyBaseURL = originalBaseURL }()

	client := NewClient()

	raws, err := client.FetchTrips(TripQuery{
		From:       PlaceID{ID: "9117"},
		To:         PlaceCoord{Lat: 59.33, Lon: 18.06},
		Trips:      7, // clamped down to 3
		When:       time.Date(2026, 2, 25, 9, 0, 0, 0, time.UTC),
		ArriveBy:   true,
		Optimize:   OptimizeWalk,
		MaxChanges: -1,
	})
	if err != nil {
		t.Fatalf("unexpected error fetching mocked trips: %v", err)
	}
	if len(raws) != 1 {
		t.Fatalf("expected 1 raw journey, got %d", len(raws))
	}

	trips := ParseJourneys(raws, time.UTC)
	if len(trips) != 1 {
		t.Fatalf("expected 1 parsed trip, got %d", len(trips))
	}
	if trips[0].DurationMin != 25 {
		t.Errorf("expected 25 min trip, got %d", trips[0].DurationMin)
	}
}

func TestClient_FindLocations(t *testing.T) {
	mockJSON := `{
		"locations": [
			{"id": "9117", "name": "Odenplan (Stockholm)", "coord": [59.3428, 18.0486], "type": "stop", "matchQuality": 1000, "isBest": true},
			{"id": "streetID", "name": "Odengatan (Stockholm)", "coord": [59.3434, 18.0540], "type": "street", "matchQuality": 700}
		]
	}`

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Query().Get("name_sf") != "Odenplan" {
			t.Errorf("expected query Odenplan, got %s", r.URL.Query().Get("name_sf"))
		}
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(mockJSON))
	}))
	defer server.Close()

	originalBaseURL := journeyBaseURL
	journeyBaseURL = server.URL
	defer func() { journeyBaseURL = originalBaseURL }()

	client := NewClient()

	locations, err := client.FindLocations("Odenplan")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(locations) != 2 {
		t.Fatalf("expected 2 locations, got %d", len(locations))
	}
	if locations[0].Kind != "stop" || locations[1].Kind != "address" {
		t.Errorf("expected stop/address classification, got %s/%s", locations[0].Kind, locations[1].Kind)
	}
	if locations[0].Latitude != 59.3428 {
		t.Errorf("expected latitude from coord pair, got %f", locations[0].Latitude)
	}

	best, ok := PickLocation(locations)
	if !ok || best.ID != "9117" {
		t.Errorf("expected the isBest stop to be picked, got %+v", best)
	}
}

func TestClient_FetchSitesAndDepartures(t *testing.T) {
	sitesJSON := `[
		{"id": 9192, "name": "Slussen", "lat": 59.3201, "lon": 18.0719},
		{"id": 1080, "name": "No Coords"}
	]`
	departuresJSON := `{
		"departures": [
			{
				"destination": "Skarpnäck",
				"state": "EXPECTED",
				"scheduled": "2026-02-25T08:00:00",
				"expected": "2026-02-25T08:03:00",
				"line": {"designation": "17", "transport_mode": "METRO"},
				"stop_point": {"designation": "3"}
			}
		]
	}`

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		switch r.URL.Path {
		case "/sites":
			w.Write([]byte(sitesJSON))
		case "/sites/9192/departures":
			w.Write([]byte(departuresJSON))
		default:
			t.Errorf("unexpected path %s", r.URL.Path)
		}
	}))
	defer server.Close()

	originalBaseURL := transportBaseURL
	transportBaseURL = server.URL
	defer func() { transportBaseURL = originalBaseURL }()

	client := NewClient()

	sites, err := client.FetchSites()
	if err != nil {
		t.Fatalf("unexpected error fetching sites: %v", err)
	}
	if len(sites) != 2 {
		t.Fatalf("expected 2 sites, got %d", len(sites))
	}
	if sites[0].ID != "9192" || sites[0].Lat == nil {
		t.Errorf("expected a parsed coordinate site, got %+v", sites[0])
	}
	if sites[1].Lat != nil {
		t.Errorf("expected nil coordinate for the bare site, got %+v", sites[1])
	}

	raw, err := client.FetchDepartures("9192", 60)
	if err != nil {
		t.Fatalf("unexpected error fetching departures: %v", err)
	}
	if len(raw) != 1 {
		t.Fatalf("expected 1 raw departure, got %d", len(raw))
	}
	if raw[0].Line.Designation != "17" {
		t.Errorf("expected line 17, got %s", raw[0].Line.Designation)
	}
}

func TestClient_SurfacesHTTPStatus(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer server.Close()

	originalBaseURL := transportBaseURL
	transportBaseURL = server.URL
	defer func() { transportBaseURL = originalBaseURL }()

	client := NewClient()

	if _, err := client.FetchSites(); err == nil {
		t.Fatal("expected a non-2xx status to be surfaced as an error")
	}
}
