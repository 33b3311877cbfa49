// Translocatus - Wildlife Translocation Tracking and Map Visualization
// Copyright 2026 M. Kotze (mkotze)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/mkotze/translocatus

package species

import "testing"

func TestCategorizeFlagships(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"Elephant", CategoryElephant},
		{"elephants", CategoryElephant},
		{"ELEPHANT", CategoryElephant},
		{"Black Rhino", CategoryBlackRhino},
		{"black-rhino", CategoryBlackRhino},
		{"White Rhino", CategoryWhiteRhino},
		{"  White Rhino  ", CategoryWhiteRhino},
	}

	for _, tt := range tests {
		if got := Categorize(tt.input); got.Category != tt.want {
			t.Errorf("Categorize(%q) = %q, want %q", tt.input, got.Category, tt.want)
		}
	}
}

func TestCategorizePlainsGame(t *testing.T) {
	tests := []string{
		"Impala",
		"zebras",
		"Impala, Kudu & Zebra",
		"Sable; Eland and Warthog",
		"Sable, Oryx, Waterbuck & Reedbuck",
		"Impala (127); Kudu (46); Sable (29)",
		"Buffalo",
		"Plains Game Species",
		"plains game",
		"Multiple species",
	}

	for _, input := range tests {
		if got := Categorize(input); got.Category != CategoryPlainsGame {
			t.Errorf("Categorize(%q) = %q, want %q", input, got.Category, CategoryPlainsGame)
		}
	}
}

func TestCategorizeOther(t *testing.T) {
	tests := []struct {
		input    string
		wantNote string
	}{
		{"Lion", "Lion"},
		{"Cheetah", "Cheetah"},
		{"Impala, Lion", "Impala, Lion"}, // mix with a non-plains member
		{"Other", ""},
		{"", ""},
	}

	for _, tt := range tests {
		got := Categorize(tt.input)
		if got.Category != CategoryOther {
			t.Errorf("Categorize(%q) = %q, want %q", tt.input, got.Category, CategoryOther)
		}
		if got.Note != tt.wantNote {
			t.Errorf("Categorize(%q) note = %q, want %q", tt.input, got.Note, tt.wantNote)
		}
	}
}

func TestCategorizeMixedFlagshipIsNotFlagship(t *testing.T) {
	// A flagship only keeps its own bucket when named alone.
	got := Categorize("Elephant, Impala")
	if got.Category == CategoryElephant {
		t.Errorf("Categorize(mixed consignment) = %q, want anything but %q", got.Category, CategoryElephant)
	}
}
