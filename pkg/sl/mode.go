package sl

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// foldDiacritics decomposes accented characters and strips the combining
// marks, so "Spårvagn" and "båt" compare as "Sparvagn" and "bat".
var foldDiacritics = transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)

func foldUpper(s string) string {
	folded, _, err := transform.String(foldDiacritics, s)
	if err != nil {
		folded = s
	}
	return strings.ToUpper(folded)
}

// ClassifyProduct maps a free-text product name from the journey planner
// (Swedish or English, with or without diacritics) to a TransportKind.
// It never fails; anything unrecognized is treated as a bus.
func ClassifyProduct(name string) TransportKind {
	n := foldUpper(name)
	switch {
	case strings.Contains(n, "FOOTPATH"), strings.Contains(n, "FOOT"), strings.Contains(n, "WALK"):
		return KindWalk
	case strings.Contains(n, "TUNNELBANA"), strings.Contains(n, "METRO"):
		return KindMetro
	case strings.Contains(n, "PENDEL"), strings.Contains(n, "TAG"), strings.Contains(n, "TRAIN"):
		return KindTrain
	case strings.Contains(n, "SPARV"), strings.Contains(n, "TRAM"):
		return KindTram
	case strings.Contains(n, "BAT"), strings.Contains(n, "SHIP"), strings.Contains(n, "FERRY"):
		return KindShip
	default:
		return KindBus
	}
}

// ClassifyTransportMode maps the transport API's coded transport_mode value
// to a TransportKind. The input is a controlled vocabulary, so no diacritic
// handling is needed; unknown codes default to bus.
func ClassifyTransportMode(mode string) TransportKind {
	switch strings.ToUpper(mode) {
	case "METRO":
		return KindMetro
	case "TRAIN", "COMMUTER_TRAIN":
		return KindTrain
	case "TRAM":
		return KindTram
	case "SHIP", "FERRY":
		return KindShip
	default:
		return KindBus
	}
}
