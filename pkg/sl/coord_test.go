package sl

import "testing"

func TestParseCoord(t *testing.T) {
	lat, lon, ok := ParseCoord("59.33, 18.06")
	if !ok {
		t.Fatal("expected a valid coordinate")
	}
	if lat != 59.33 || lon != 18.06 {
		t.Errorf("got (%f, %f)", lat, lon)
	}

	for _, input := range []string{"T-Centralen", "59.33", "59.33,18.06,7", "abc,def", "91.0,18.06", "59.33,181.0"} {
		if _, _, ok := ParseCoord(input); ok {
			t.Errorf("expected %q to be rejected as a coordinate", input)
		}
	}
}

func TestPickLocation(t *testing.T) {
	locations := []Location{
		{ID: "1", Name: "First", MatchQuality: 500},
		{ID: "2", Name: "Better", MatchQuality: 900},
		{ID: "3", Name: "Best", MatchQuality: 700, IsBest: true},
	}

	best, ok := PickLocation(locations)
	if !ok || best.ID != "3" {
		t.Errorf("expected the isBest candidate to win, got %+v", best)
	}

	// Without an isBest flag, the highest match quality wins.
	best, ok = PickLocation(locations[:2])
	if !ok || best.ID != "2" {
		t.Errorf("expected the highest-quality candidate, got %+v", best)
	}

	if _, ok := PickLocation(nil); ok {
		t.Error("expected no pick from an empty candidate list")
	}
}
