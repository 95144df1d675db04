package render

import (
	"fmt"
	"io"
	"time"

	"github.com/ossianhempel/sl-cli/pkg/sl"
)

// plainRenderer emits one tab-separated record per line, for grep/awk use.
type plainRenderer struct {
	loc *time.Location
}

func (r *plainRenderer) clock(t time.Time) string {
	return t.In(r.loc).Format("15:04")
}

func (r *plainRenderer) Trips(w io.Writer, from, to string, trips []sl.TripProposal) error {
	for i, trip := range trips {
		fmt.Fprintf(w, "trip\t%d\t%s\t%s\t%dmin\t%s\n",
			i+1, r.clock(trip.Departure), r.clock(trip.Arrival), trip.DurationMin, trip.Summary)
		for _, leg := range trip.Legs {
			line := leg.Line
			if line == "" {
				line = "-"
			}
			fmt.Fprintf(w, "leg\t%s\t%s\t%s\t%s\t%s -> %s\n",
				leg.Kind, line, r.clock(leg.Departure), r.clock(leg.Arrival), leg.From, leg.To)
		}
	}
	return nil
}

func (r *plainRenderer) Departures(w io.Writer, site string, deps []sl.Departure) error {
	for _, d := range deps {
		status := "ontime"
		switch {
		case d.Cancelled:
			status = "cancelled"
		case d.Delayed:
			status = "delayed"
		}
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%dmin\t%s\n",
			r.clock(d.Expected), d.Kind, d.Line, d.Destination, d.MinutesUntil, status)
	}
	return nil
}

func (r *plainRenderer) KeyValues(w io.Writer, pairs [][2]string) error {
	for _, p := range pairs {
		fmt.Fprintf(w, "%s\t%s\n", p[0], p[1])
	}
	return nil
}

func (r *plainRenderer) Error(w io.Writer, err error) {
	fmt.Fprintf(w, "error: %v\n", err)
}
