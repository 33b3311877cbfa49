// Translocatus - Wildlife Translocation Tracking and Map Visualization
// Copyright 2026 M. Kotze (mkotze)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/mkotze/translocatus

// Package geo parses human-typed coordinate strings into validated lat/lng
// pairs for map plotting.
package geo

import (
	"regexp"
	"strconv"
	"strings"
)

// Point is a WGS 84 coordinate pair.
type Point struct {
	Lat float64
	Lng float64
}

// coordinate strings copied from mapping tools often carry degree and
// minute/second punctuation; strip it before numeric parsing.
var punctReplacer = strings.NewReplacer("°", "", "'", "", "\"", "", "`", "", "’", "", "”", "")

// numberPattern extracts signed decimal numbers from strings without a comma
// separator, e.g. "-24.99 32.59" pasted from a GPS readout.
var numberPattern = regexp.MustCompile(`-?\d+(?:\.\d+)?`)

// Parse converts a free-text coordinate string into a Point.
//
// The expected shape is "lat, lng". Degree and quote punctuation is stripped,
// both parts are trimmed and parsed as floats, and the pair must fall within
// valid latitude [-90, 90] and longitude [-180, 180] ranges. Strings without a
// comma fall back to extracting the first two signed decimals.
//
// Parse never fails loudly: malformed, empty, or out-of-range input returns
// ok=false and the caller decides whether the record is simply not plottable.
// There is no sentinel value; (0, 0) with ok=true is a real coordinate.
func Parse(s string) (Point, bool) {
	cleaned := strings.TrimSpace(punctReplacer.Replace(s))
	if cleaned == "" {
		return Point{}, false
	}

	var latStr, lngStr string
	if i := strings.Index(cleaned, ","); i >= 0 {
		latStr = strings.TrimSpace(cleaned[:i])
		lngStr = strings.TrimSpace(cleaned[i+1:])
		// A second comma means the string is not a simple pair
		// (e.g. "Liwonde, Malawi, Africa").
		if strings.Contains(lngStr, ",") {
			return Point{}, false
		}
	} else {
		nums := numberPattern.FindAllString(cleaned, 3)
		if len(nums) != 2 {
			return Point{}, false
		}
		latStr, lngStr = nums[0], nums[1]
	}

	lat, err := strconv.ParseFloat(latStr, 64)
	if err != nil {
		return Point{}, false
	}
	lng, err := strconv.ParseFloat(lngStr, 64)
	if err != nil {
		return Point{}, false
	}

	if lat < -90 || lat > 90 || lng < -180 || lng > 180 {
		return Point{}, false
	}

	return Point{Lat: lat, Lng: lng}, true
}
