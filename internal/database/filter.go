// Translocatus - Wildlife Translocation Tracking and Map Visualization
// Copyright 2026 M. Kotze (mkotze)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/mkotze/translocatus

package database

import (
	"fmt"
	"strings"
)

// TranslocationFilter contains the filter parameters for listing queries.
//
// All fields are optional and combine with AND logic; multi-select fields
// use OR within the field (Years: [2022, 2023] matches either year). Search
// matches case-insensitively against the project title, species text, and
// both area names.
type TranslocationFilter struct {
	SpeciesCategories []string
	Years             []int
	Transports        []string
	SpecialProjects   []string
	Countries         []string
	Search            string

	// Limit of 0 returns everything; Offset is ignored without a Limit.
	Limit  int
	Offset int
}

// buildFilterConditions turns a TranslocationFilter into parameterized WHERE
// clauses and their arguments.
func buildFilterConditions(filter TranslocationFilter) ([]string, []interface{}) {
	whereClauses := []string{}
	args := []interface{}{}

	appendInClause("species_category", filter.SpeciesCategories, &whereClauses, &args)
	appendInClause("year", filter.Years, &whereClauses, &args)
	appendInClause("transport", filter.Transports, &whereClauses, &args)
	appendInClause("special_project", filter.SpecialProjects, &whereClauses, &args)

	if len(filter.Countries) > 0 {
		// A record matches when either endpoint is in one of the countries.
		placeholders := placeholderList(len(filter.Countries))
		whereClauses = append(whereClauses,
			fmt.Sprintf("(source_country IN (%s) OR recipient_country IN (%s))", placeholders, placeholders))
		for i := 0; i < 2; i++ {
			for _, country := range filter.Countries {
				args = append(args, country)
			}
		}
	}

	if search := strings.TrimSpace(filter.Search); search != "" {
		pattern := "%" + strings.ToLower(search) + "%"
		whereClauses = append(whereClauses,
			`(LOWER(project_title) LIKE ? OR LOWER(species) LIKE ? OR LOWER(source_name) LIKE ? OR LOWER(recipient_name) LIKE ?)`)
		args = append(args, pattern, pattern, pattern, pattern)
	}

	return whereClauses, args
}

// appendInClause is a generic helper for building SQL IN clauses across the
// multi-select filter dimensions.
func appendInClause(columnName string, values interface{}, whereClauses *[]string, args *[]interface{}) {
	var length int
	var getValue func(int) interface{}

	switch v := values.(type) {
	case []string:
		length = len(v)
		getValue = func(i int) interface{} { return v[i] }
	case []int:
		length = len(v)
		getValue = func(i int) interface{} { return v[i] }
	default:
		return
	}

	if length == 0 {
		return
	}

	for i := 0; i < length; i++ {
		*args = append(*args, getValue(i))
	}
	*whereClauses = append(*whereClauses, fmt.Sprintf("%s IN (%s)", columnName, placeholderList(length)))
}

// placeholderList returns "?, ?, ?" with n placeholders.
func placeholderList(n int) string {
	placeholders := make([]string, n)
	for i := range placeholders {
		placeholders[i] = "?"
	}
	return strings.Join(placeholders, ", ")
}
