// Translocatus - Wildlife Translocation Tracking and Map Visualization
// Copyright 2026 M. Kotze (mkotze)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/mkotze/translocatus

package geo

import "testing"

func TestParse(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantLat float64
		wantLng float64
		wantOK  bool
	}{
		{"simple pair", "-24.9947, 32.5969", -24.9947, 32.5969, true},
		{"no space after comma", "-14.843917,35.346718", -14.843917, 35.346718, true},
		{"integer degrees", "10, 19", 10, 19, true},
		{"degree punctuation", "-24.9947°, 32.5969°", -24.9947, 32.5969, true},
		{"quoted coordinates", "\"-12.798572\", \"34.011480\"", -12.798572, 34.011480, true},
		{"space separated", "-24.99 32.59", -24.99, 32.59, true},
		{"origin is a real coordinate", "0, 0", 0, 0, true},
		{"empty string", "", 0, 0, false},
		{"whitespace only", "   ", 0, 0, false},
		{"place name", "not a place", 0, 0, false},
		{"place list with commas", "Liwonde, Malawi, Africa", 0, 0, false},
		{"latitude out of range", "95.0, 32.5", 0, 0, false},
		{"longitude out of range", "-24.9, 195.0", 0, 0, false},
		{"single number", "-24.9947", 0, 0, false},
		{"three numbers no comma", "-24.9 32.5 10.1", 0, 0, false},
		{"half a pair", "-24.9947,", 0, 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			point, ok := Parse(tt.input)
			if ok != tt.wantOK {
				t.Fatalf("Parse(%q) ok = %v, want %v", tt.input, ok, tt.wantOK)
			}
			if !ok {
				return
			}
			if point.Lat != tt.wantLat || point.Lng != tt.wantLng {
				t.Errorf("Parse(%q) = (%v, %v), want (%v, %v)",
					tt.input, point.Lat, point.Lng, tt.wantLat, tt.wantLng)
			}
		})
	}
}

func TestParseBoundaryValues(t *testing.T) {
	for _, input := range []string{"-90, -180", "90, 180", "90, -180", "-90, 180"} {
		if _, ok := Parse(input); !ok {
			t.Errorf("Parse(%q) rejected a boundary coordinate", input)
		}
	}
}
