// Translocatus - Wildlife Translocation Tracking and Map Visualization
// Copyright 2026 M. Kotze (mkotze)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/mkotze/translocatus

// Package species reduces free-text species labels to the fixed set of
// reporting categories the dashboard aggregates by.
//
// Categorization is a pure function of the input string and the tables below,
// evaluated in priority order: flagship exact match, then plains-game
// membership, then the "Other" fallback. Matching is case-insensitive.
package species

import (
	"regexp"
	"strings"
)

// Reporting categories. Flagship species keep their own bucket; recognized
// plains-game consignments share one; everything else folds into Other with
// the original label preserved as a breakdown note.
const (
	CategoryElephant   = "Elephant"
	CategoryBlackRhino = "Black Rhino"
	CategoryWhiteRhino = "White Rhino"
	CategoryPlainsGame = "Plains Game Species"
	CategoryOther      = "Other"
)

// Categories lists every reporting category in display order.
var Categories = []string{
	CategoryElephant,
	CategoryBlackRhino,
	CategoryWhiteRhino,
	CategoryPlainsGame,
	CategoryOther,
}

// flagshipCategories maps normalized flagship names to their category. A
// flagship keeps its own bucket only when it is the sole species named.
var flagshipCategories = map[string]string{
	"elephant":    CategoryElephant,
	"elephants":   CategoryElephant,
	"black rhino": CategoryBlackRhino,
	"black-rhino": CategoryBlackRhino,
	"white rhino": CategoryWhiteRhino,
	"white-rhino": CategoryWhiteRhino,
}

// plainsGame enumerates the species that bucket as Plains Game, alone or in
// any mix made up entirely of members of this set.
var plainsGame = map[string]bool{
	"impala":     true,
	"kudu":       true,
	"zebra":      true,
	"sable":      true,
	"warthog":    true,
	"waterbuck":  true,
	"hartebeest": true,
	"eland":      true,
	"oryx":       true,
	"reedbuck":   true,
	"wildebeest": true,
	"buffalo":    true,
}

// mixSeparators splits a consignment label like "Impala, Kudu & Zebra" or
// "Sable; Eland and Warthog" into individual species tokens.
var mixSeparators = regexp.MustCompile(`\s*(?:,|;|/|\+|&|\band\b)\s*`)

// parentheticalCount removes per-species counts such as "Impala (127)".
var parentheticalCount = regexp.MustCompile(`\s*\(\d+\)\s*$`)

// singular trims a trailing plural s from a token ("zebras" -> "zebra").
func singular(token string) string {
	if len(token) > 3 && strings.HasSuffix(token, "s") && !strings.HasSuffix(token, "ss") {
		return token[:len(token)-1]
	}
	return token
}

// Result is the categorizer's output for one species label.
type Result struct {
	// Category is one of the Categories constants.
	Category string

	// Note preserves the original label when the record folds into Other, so
	// the breakdown is not lost. Empty for every other category.
	Note string
}

// Categorize assigns a reporting category to a raw species label.
//
// Priority order:
//  1. A label naming exactly one flagship species keeps its own category.
//  2. A label made only of plains-game names (alone or mixed, counts in
//     parentheses allowed) buckets as Plains Game Species.
//  3. Labels already naming a category ("Plains Game Species", "Other",
//     "multiple species") keep that bucket, so exported data re-imports
//     cleanly.
//  4. Everything else is Other, with the original text preserved in Note.
func Categorize(raw string) Result {
	label := strings.TrimSpace(raw)
	if label == "" {
		return Result{Category: CategoryOther}
	}
	normalized := strings.ToLower(label)

	if category, ok := flagshipCategories[normalized]; ok {
		return Result{Category: category}
	}

	if tokens, ok := splitMix(normalized); ok && allPlainsGame(tokens) {
		return Result{Category: CategoryPlainsGame}
	}

	switch {
	case strings.Contains(normalized, "plains") || strings.Contains(normalized, "game"):
		return Result{Category: CategoryPlainsGame}
	case strings.Contains(normalized, "multiple"):
		return Result{Category: CategoryPlainsGame}
	case normalized == strings.ToLower(CategoryOther):
		return Result{Category: CategoryOther}
	}

	return Result{Category: CategoryOther, Note: label}
}

// splitMix tokenizes a consignment label. ok is false when tokenization
// produced nothing usable.
func splitMix(normalized string) ([]string, bool) {
	parts := mixSeparators.Split(normalized, -1)
	tokens := make([]string, 0, len(parts))
	for _, part := range parts {
		token := strings.TrimSpace(parentheticalCount.ReplaceAllString(part, ""))
		if token == "" {
			continue
		}
		tokens = append(tokens, singular(token))
	}
	return tokens, len(tokens) > 0
}

// allPlainsGame reports whether every token is a plains-game member.
func allPlainsGame(tokens []string) bool {
	for _, token := range tokens {
		if !plainsGame[token] {
			return false
		}
	}
	return true
}
