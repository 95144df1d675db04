package exporter

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/ossianhempel/sl-cli/pkg/sl"
)

func TestWriteTripICS(t *testing.T) {
	loc, _ := time.LoadLocation("Europe/Stockholm")
	departure := time.Date(2026, 3, 4, 8, 15, 0, 0, loc)
	arrival := time.Date(2026, 3, 4, 8, 45, 0, 0, loc)

	trip := sl.TripProposal{
		Legs: []sl.TripLeg{
			{
				Kind:      sl.KindWalk,
				Departure: departure,
				Arrival:   departure.Add(5 * time.Minute),
				Duration:  300,
				From:      "Home",
				To:        "Odenplan",
			},
			{
				Kind:      sl.KindMetro,
				Line:      "17",
				Departure: departure.Add(7 * time.Minute),
				Arrival:   arrival,
				Duration:  1380,
				From:      "Odenplan",
				To:        "T-Centralen",
			},
		},
		Departure:   departure,
		Arrival:     arrival,
		DurationMin: 30,
		Summary:     "metro 17",
	}

	var buf bytes.Buffer
	if err := WriteTripICS(trip, "Home", "T-Centralen", &buf); err != nil {
		t.Fatalf("WriteTripICS failed: %v", err)
	}

	output := buf.String()

	if !strings.Contains(output, "Home -> T-Centralen") {
		t.Errorf("Expected ICS to contain the trip summary, got: \n%s", output)
	}
	if !strings.Contains(output, "LOCATION:Home") {
		t.Errorf("Expected ICS to carry the start location")
	}
	// 04-Mar-2026 08:15 Stockholm time is 07:15 UTC.
	if !strings.Contains(output, "DTSTART:20260304T071500Z") {
		t.Errorf("Expected start time string in ICS (should be UTC), got: \n%s", output)
	}
	if !strings.Contains(output, "metro 17") {
		t.Errorf("Expected the leg listing in the description")
	}
}

func TestWriteTripICS_EmptyTrip(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteTripICS(sl.TripProposal{}, "A", "B", &buf); err == nil {
		t.Fatal("expected an error for a trip without legs")
	}
}
