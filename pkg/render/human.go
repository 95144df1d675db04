package render

import (
	"fmt"
	"io"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/ossianhempel/sl-cli/pkg/sl"
)

// humanRenderer prints styled terminal output.
type humanRenderer struct {
	loc *time.Location

	header lipgloss.Style
	line   lipgloss.Style
	clockS lipgloss.Style
	dim    lipgloss.Style
	bad    lipgloss.Style
	warn   lipgloss.Style
}

func newHumanRenderer(loc *time.Location, noColor bool) *humanRenderer {
	r := &humanRenderer{loc: loc}
	if noColor {
		plain := lipgloss.NewStyle()
		r.header, r.line, r.clockS, r.dim, r.bad, r.warn = plain, plain, plain, plain, plain, plain
		return r
	}
	r.header = lipgloss.NewStyle().Foreground(lipgloss.Color("33")).Bold(true)
	r.line = lipgloss.NewStyle().Foreground(lipgloss.Color("86")).Bold(true)
	r.clockS = lipgloss.NewStyle().Foreground(lipgloss.Color("205")).Bold(true)
	r.dim = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	r.bad = lipgloss.NewStyle().Foreground(lipgloss.Color("196")).Bold(true)
	r.warn = lipgloss.NewStyle().Foreground(lipgloss.Color("214"))
	return r
}

var kindIcons = map[sl.TransportKind]string{
	sl.KindWalk:  "🚶",
	sl.KindMetro: "🚇",
	sl.KindTrain: "🚆",
	sl.KindTram:  "🚋",
	sl.KindBus:   "🚌",
	sl.KindShip:  "⛴️",
}

func (r *humanRenderer) clock(t time.Time) string {
	return r.clockS.Render(t.In(r.loc).Format("15:04"))
}

func (r *humanRenderer) Trips(w io.Writer, from, to string, trips []sl.TripProposal) error {
	fmt.Fprintln(w, r.header.Render(fmt.Sprintf("\n--- 🧭 %s -> %s ---", from, to)))

	if len(trips) == 0 {
		fmt.Fprintln(w, "No trips could be found. It might be too late at night.")
		return nil
	}

	for i, trip := range trips {
		walk := ""
		if trip.WalkSeconds > 0 {
			walk = r.dim.Render(fmt.Sprintf(", %d min walk first", trip.WalkSeconds/60))
		}
		fmt.Fprintf(w, "\n%s  %s - %s (%d min%s)  %s\n",
			r.header.Render(fmt.Sprintf("Trip %d", i+1)),
			r.clock(trip.Departure), r.clock(trip.Arrival),
			trip.DurationMin, walk,
			r.dim.Render(trip.Summary))

		for _, leg := range trip.Legs {
			label := "Walk"
			if leg.Kind != sl.KindWalk {
				label = string(leg.Kind)
				if leg.Line != "" {
					label += " " + leg.Line
				}
				if leg.Direction != "" {
					label += " towards " + leg.Direction
				}
			}
			platform := ""
			if leg.Platform != "" {
				platform = r.dim.Render(fmt.Sprintf(" (platform %s)", leg.Platform))
			}
			fmt.Fprintf(w, "  %s [%s] %s: %s -> %s%s\n",
				kindIcons[leg.Kind], r.clock(leg.Departure), r.line.Render(label), leg.From, leg.To, platform)
		}
	}
	fmt.Fprintln(w)
	return nil
}

func (r *humanRenderer) Departures(w io.Writer, site string, deps []sl.Departure) error {
	fmt.Fprintln(w, r.header.Render(fmt.Sprintf("\n--- 🚏 Next departures: %s ---", site)))

	if len(deps) == 0 {
		fmt.Fprintln(w, "No upcoming departures found.")
		return nil
	}

	for _, d := range deps {
		status := ""
		switch {
		case d.Cancelled:
			status = r.bad.Render(" CANCELLED")
		case d.Delayed:
			delay := d.Expected.Sub(d.Scheduled).Round(time.Minute)
			status = r.warn.Render(fmt.Sprintf(" (+%d min)", int(delay.Minutes())))
		}
		platform := ""
		if d.Platform != "" {
			platform = r.dim.Render(fmt.Sprintf("  %s", d.Platform))
		}
		fmt.Fprintf(w, "%s %s  in %2d min  %s -> %s%s%s\n",
			kindIcons[d.Kind], r.clock(d.Expected), d.MinutesUntil,
			r.line.Render(d.Line), d.Destination, platform, status)
	}
	fmt.Fprintln(w)
	return nil
}

func (r *humanRenderer) KeyValues(w io.Writer, pairs [][2]string) error {
	for _, p := range pairs {
		value := p[1]
		if value == "" {
			value = r.dim.Render("(not set)")
		}
		fmt.Fprintf(w, "%s: %s\n", r.header.Render(p[0]), value)
	}
	return nil
}

func (r *humanRenderer) Error(w io.Writer, err error) {
	fmt.Fprintln(w, r.bad.Render(fmt.Sprintf("❌ %v", err)))
}
