// Translocatus - Wildlife Translocation Tracking and Map Visualization
// Copyright 2026 M. Kotze (mkotze)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/mkotze/translocatus

package validation

import (
	"strings"
	"testing"
)

type recordForm struct {
	Title     string `validate:"required"`
	Year      int    `validate:"gte=2000,lte=2035"`
	Animals   int    `validate:"gte=1"`
	Transport string `validate:"omitempty,oneof=Road Air"`
}

func TestValidateStructPasses(t *testing.T) {
	form := recordForm{Title: "Kasungu Elephants", Year: 2022, Animals: 263, Transport: "Road"}
	if err := ValidateStruct(&form); err != nil {
		t.Errorf("ValidateStruct() error: %v", err)
	}
}

func TestValidateStructCollectsAllFailures(t *testing.T) {
	form := recordForm{Year: 1995, Transport: "Boat"}
	err := ValidateStruct(&form)
	if err == nil {
		t.Fatal("ValidateStruct() accepted an invalid struct")
	}
	if len(err.Errors()) != 4 {
		t.Errorf("got %d field errors, want 4: %v", len(err.Errors()), err)
	}
}

func TestValidateStructMessages(t *testing.T) {
	tests := []struct {
		name string
		form recordForm
		want string
	}{
		{"required", recordForm{Year: 2022, Animals: 1}, "Title is required"},
		{"gte", recordForm{Title: "x", Year: 1980, Animals: 1}, "Year must be at least 2000"},
		{"lte", recordForm{Title: "x", Year: 2099, Animals: 1}, "Year must be at most 2035"},
		{"oneof", recordForm{Title: "x", Year: 2022, Animals: 1, Transport: "Boat"}, "Transport must be one of: Road Air"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateStruct(&tt.form)
			if err == nil {
				t.Fatal("ValidateStruct() accepted an invalid struct")
			}
			if !strings.Contains(err.Error(), tt.want) {
				t.Errorf("error %q does not contain %q", err, tt.want)
			}
		})
	}
}

func TestToAPIError(t *testing.T) {
	err := ValidateStruct(&recordForm{Year: 2022, Animals: 1})
	if err == nil {
		t.Fatal("ValidateStruct() accepted an invalid struct")
	}

	apiErr := err.ToAPIError()
	if apiErr.Code != "VALIDATION_ERROR" {
		t.Errorf("code = %q, want VALIDATION_ERROR", apiErr.Code)
	}
	fields, ok := apiErr.Details["fields"].([]map[string]interface{})
	if !ok || len(fields) != 1 {
		t.Fatalf("details fields = %#v, want one entry", apiErr.Details["fields"])
	}
	if fields[0]["field"] != "Title" {
		t.Errorf("failed field = %v, want Title", fields[0]["field"])
	}
}
