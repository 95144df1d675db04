package sl

import (
	"encoding/json"
	"errors"
	"math"
	"strings"
	"time"
)

// ErrNoProposal is returned when a journey cannot be turned into a usable
// trip proposal (no legs, or every leg was malformed).
var ErrNoProposal = errors.New("journey contains no usable legs")

// ParseJourneys normalizes a batch of raw journeys. Malformed journeys are
// dropped; the remaining ones are returned in the order the planner ranked
// them.
func ParseJourneys(raws []json.RawMessage, loc *time.Location) []TripProposal {
	var trips []TripProposal
	for _, raw := range raws {
		trip, err := ParseJourney(raw, loc)
		if err != nil {
			continue
		}
		trips = append(trips, trip)
	}
	return trips
}

// ParseJourney normalizes one raw journey into a TripProposal: resolves leg
// times, merges consecutive walking legs, and derives the totals and the
// route summary. Legs missing a stop record, a transportation record, or a
// resolvable time are dropped; the journey fails only when nothing is left.
func ParseJourney(raw json.RawMessage, loc *time.Location) (TripProposal, error) {
	var journey rawJourney
	if err := json.Unmarshal(raw, &journey); err != nil {
		return TripProposal{}, err
	}
	if len(journey.Legs) == 0 {
		return TripProposal{}, ErrNoProposal
	}

	var legs []TripLeg
	for _, rl := range journey.Legs {
		leg, ok := parseLeg(rl, loc)
		if !ok {
			continue
		}
		// Collapse runs of walking legs (walk to platform, walk to exit)
		// into a single visible block.
		if last := len(legs) - 1; last >= 0 && legs[last].Kind == KindWalk && leg.Kind == KindWalk {
			legs[last].Arrival = leg.Arrival
			legs[last].Duration += leg.Duration
			legs[last].To = leg.To
			continue
		}
		legs = append(legs, leg)
	}
	if len(legs) == 0 {
		return TripProposal{}, ErrNoProposal
	}

	departure := legs[0].Departure
	arrival := legs[len(legs)-1].Arrival

	totalSec := roundSeconds(arrival.Sub(departure))
	if journey.TripDuration != nil {
		totalSec = *journey.TripDuration
	}

	return TripProposal{
		Legs:        legs,
		Departure:   departure,
		Arrival:     arrival,
		DurationMin: clampNonNegative(int(math.Round(float64(totalSec) / 60))),
		WalkSeconds: walkBeforeTransport(legs),
		Summary:     routeSummary(legs),
	}, nil
}

func parseLeg(rl rawLeg, loc *time.Location) (TripLeg, bool) {
	if rl.Origin == nil || rl.Destination == nil || rl.Transportation == nil {
		return TripLeg{}, false
	}

	departure, ok := pickTime(loc,
		rl.Origin.DepartureTimeEstimated,
		rl.Origin.DepartureTimePlanned,
		rl.Origin.DepartureTimeBaseTimetable)
	if !ok {
		return TripLeg{}, false
	}
	arrival, ok := pickTime(loc,
		rl.Destination.ArrivalTimeEstimated,
		rl.Destination.ArrivalTimePlanned,
		rl.Destination.ArrivalTimeBaseTimetable)
	if !ok {
		return TripLeg{}, false
	}

	duration := roundSeconds(arrival.Sub(departure))
	if rl.Duration != nil {
		duration = *rl.Duration
	}

	return TripLeg{
		Kind:      ClassifyProduct(rl.Transportation.Product.Name),
		Line:      rl.Transportation.DisassembledName,
		Direction: rl.Transportation.Destination.Name,
		Departure: departure,
		Arrival:   arrival,
		Duration:  duration,
		From:      rl.Origin.Name,
		To:        rl.Destination.Name,
		Platform:  rl.Origin.Properties.Platform,
	}, true
}

// pickTime resolves the first usable timestamp, preferring realtime
// estimates over planned times over the base timetable.
func pickTime(loc *time.Location, candidates ...string) (time.Time, bool) {
	for _, s := range candidates {
		if s == "" {
			continue
		}
		if t, err := parseAPITime(s, loc); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

// walkBeforeTransport sums the walking durations before the first transport
// leg. An all-walking trip reports 0.
func walkBeforeTransport(legs []TripLeg) int {
	first := -1
	for i, leg := range legs {
		if leg.Kind != KindWalk {
			first = i
			break
		}
	}
	if first <= 0 {
		return 0
	}
	sum := 0
	for _, leg := range legs[:first] {
		if leg.Kind == KindWalk {
			sum += leg.Duration
		}
	}
	return sum
}

// routeSummary concatenates the transport legs, e.g. "bus 4 -> metro 17".
// An all-walking trip summarizes as "walk".
func routeSummary(legs []TripLeg) string {
	var parts []string
	for _, leg := range legs {
		if leg.Kind == KindWalk {
			continue
		}
		part := string(leg.Kind)
		if leg.Line != "" {
			part += " " + leg.Line
		}
		parts = append(parts, part)
	}
	if len(parts) == 0 {
		return string(KindWalk)
	}
	return strings.Join(parts, " -> ")
}

func roundSeconds(d time.Duration) int {
	return clampNonNegative(int(math.Round(d.Seconds())))
}

func clampNonNegative(n int) int {
	if n < 0 {
		return 0
	}
	return n
}
