package sl

import (
	"testing"
	"time"
)

func TestIntegration_FindLocations(t *testing.T) {
	if testing.Short() {
		t.Skip("Skipping integration test in short mode")
	}

	client := NewClient()

	locations, err := client.FindLocations("T-Centralen")
	if err != nil {
		t.Fatalf("Failed to fetch locations: %v", err)
	}
	if len(locations) == 0 {
		t.Fatal("Expected at least one location, got 0")
	}
	for _, loc := range locations {
		if loc.Name == "" {
			t.Errorf("Location missing name: %+v", loc)
		}
	}
}

func TestIntegration_SitesAndDepartures(t *testing.T) {
	if testing.Short() {
		t.Skip("Skipping integration test in short mode")
	}

	client := NewClient()

	sites, err := client.FetchSites()
	if err != nil {
		t.Fatalf("Failed to fetch sites: %v", err)
	}
	if len(sites) == 0 {
		t.Fatal("Expected a non-empty sites list")
	}

	site, ok := ResolveSite("Slussen", sites)
	if !ok {
		t.Fatal("Could not resolve Slussen in the sites list")
	}

	raw, err := client.FetchDepartures(site.ID, 60)
	if err != nil {
		t.Fatalf("Failed to fetch departures: %v", err)
	}

	deps := ParseDepartures(raw, time.Now())
	if len(deps) == 0 {
		t.Logf("Got 0 departures for Slussen. Note: this might happen late at night.")
	}
	for _, d := range deps {
		if d.MinutesUntil < 0 {
			t.Errorf("Departure with negative minutesUntil: %+v", d)
		}
	}
}
