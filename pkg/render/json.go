package render

import (
	"encoding/json"
	"io"

	"github.com/ossianhempel/sl-cli/pkg/sl"
)

type jsonRenderer struct{}

func (r *jsonRenderer) Trips(w io.Writer, from, to string, trips []sl.TripProposal) error {
	return writeJSON(w, struct {
		From  string            `json:"from"`
		To    string            `json:"to"`
		Trips []sl.TripProposal `json:"trips"`
	}{from, to, trips})
}

func (r *jsonRenderer) Departures(w io.Writer, site string, deps []sl.Departure) error {
	return writeJSON(w, struct {
		Site       string         `json:"site"`
		Departures []sl.Departure `json:"departures"`
	}{site, deps})
}

func (r *jsonRenderer) KeyValues(w io.Writer, pairs [][2]string) error {
	obj := make(map[string]string, len(pairs))
	for _, p := range pairs {
		obj[p[0]] = p[1]
	}
	return writeJSON(w, obj)
}

func (r *jsonRenderer) Error(w io.Writer, err error) {
	_ = writeJSON(w, map[string]string{"error": err.Error()})
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
