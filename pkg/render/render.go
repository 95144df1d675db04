package render

import (
	"io"
	"os"
	"time"

	"github.com/mattn/go-isatty"

	"github.com/ossianhempel/sl-cli/pkg/sl"
)

// Renderer turns normalized domain values into one of the output formats.
type Renderer interface {
	Trips(w io.Writer, from, to string, trips []sl.TripProposal) error
	Departures(w io.Writer, site string, deps []sl.Departure) error
	KeyValues(w io.Writer, pairs [][2]string) error
	Error(w io.Writer, err error)
}

// Mode selects the output format.
type Mode int

const (
	ModeHuman Mode = iota
	ModePlain
	ModeJSON
)

// Detect picks the output mode from the global flags: explicit flags win,
// otherwise human-readable on a terminal and JSON when piped.
func Detect(jsonFlag, plainFlag bool) Mode {
	switch {
	case jsonFlag:
		return ModeJSON
	case plainFlag:
		return ModePlain
	case isatty.IsTerminal(os.Stdout.Fd()) || isatty.IsCygwinTerminal(os.Stdout.Fd()):
		return ModeHuman
	default:
		return ModeJSON
	}
}

// New constructs the renderer for a mode. Times are formatted in loc.
func New(mode Mode, loc *time.Location, noColor bool) Renderer {
	if loc == nil {
		loc = time.Local
	}
	switch mode {
	case ModeJSON:
		return &jsonRenderer{}
	case ModePlain:
		return &plainRenderer{loc: loc}
	default:
		return newHumanRenderer(loc, noColor)
	}
}
