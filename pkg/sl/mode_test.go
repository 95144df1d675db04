package sl

import "testing"

func TestClassifyProduct(t *testing.T) {
	cases := []struct {
		name string
		want TransportKind
	}{
		{"footpath", KindWalk},
		{"Gå till fots (walk)", KindWalk},
		{"Tunnelbana", KindMetro},
		{"tunnelbanans gröna linje", KindMetro},
		{"Metro", KindMetro},
		{"Pendeltåg", KindTrain},
		{"Tåg", KindTrain},
		{"Regional Train", KindTrain},
		{"Spårvagn", KindTram},
		{"Tvärbanan tram", KindTram},
		{"Båt", KindShip},
		{"Waxholmsbolagets färja (ferry)", KindShip},
		{"Buss", KindBus},
		{"Blåbuss", KindBus},
		// Totality: unknown and empty input still classify.
		{"", KindBus},
		{"????", KindBus},
		{"Rymdskepp", KindBus},
	}

	for _, tc := range cases {
		if got := ClassifyProduct(tc.name); got != tc.want {
			t.Errorf("ClassifyProduct(%q) = %s, want %s", tc.name, got, tc.want)
		}
	}
}

func TestClassifyProduct_DiacriticsStripped(t *testing.T) {
	// The same product with and without Swedish diacritics must agree.
	if ClassifyProduct("Spårvagn") != ClassifyProduct("Sparvagn") {
		t.Error("expected Spårvagn and Sparvagn to classify the same")
	}
	if ClassifyProduct("Pendeltåg") != ClassifyProduct("Pendeltag") {
		t.Error("expected Pendeltåg and Pendeltag to classify the same")
	}
}

func TestClassifyTransportMode(t *testing.T) {
	cases := []struct {
		mode string
		want TransportKind
	}{
		{"METRO", KindMetro},
		{"TRAIN", KindTrain},
		{"COMMUTER_TRAIN", KindTrain},
		{"TRAM", KindTram},
		{"SHIP", KindShip},
		{"FERRY", KindShip},
		{"BUS", KindBus},
		{"bus", KindBus},
		{"", KindBus},
		{"TAXI", KindBus},
	}

	for _, tc := range cases {
		if got := ClassifyTransportMode(tc.mode); got != tc.want {
			t.Errorf("ClassifyTransportMode(%q) = %s, want %s", tc.mode, got, tc.want)
		}
	}
}
