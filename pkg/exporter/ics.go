package exporter

import (
	"fmt"
	"io"
	"time"

	ics "github.com/arran4/golang-ical"

	"github.com/ossianhempel/sl-cli/pkg/sl"
)

// WriteTripICS serializes a planned trip as a calendar: one event covering
// the whole journey, with the legs spelled out in the description.
func WriteTripICS(trip sl.TripProposal, from, to string, w io.Writer) error {
	if len(trip.Legs) == 0 {
		return fmt.Errorf("trip has no legs to export")
	}

	cal := ics.NewCalendar()
	cal.SetMethod(ics.MethodPublish)

	event := cal.AddEvent(fmt.Sprintf("sl-cli-trip-%s", trip.Departure.UTC().Format("20060102T150405Z")))
	event.SetCreatedTime(time.Now())
	event.SetDtStampTime(time.Now())
	event.SetModifiedAt(time.Now())
	event.SetStartAt(trip.Departure)
	event.SetEndAt(trip.Arrival)
	event.SetSummary(fmt.Sprintf("🚇 %s -> %s (%s)", from, to, trip.Summary))
	event.SetLocation(trip.Legs[0].From)

	desc := fmt.Sprintf("Trip %s -> %s, %d min total.\n\nLegs:\n", from, to, trip.DurationMin)
	for i, leg := range trip.Legs {
		label := "Walk"
		if leg.Kind != sl.KindWalk {
			label = string(leg.Kind)
			if leg.Line != "" {
				label += " " + leg.Line
			}
		}
		desc += fmt.Sprintf("%d. [%s] %s: %s -> %s\n",
			i+1, leg.Departure.Format("15:04"), label, leg.From, leg.To)
	}
	event.SetDescription(desc)

	return cal.SerializeTo(w)
}
