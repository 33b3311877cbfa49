// Translocatus - Wildlife Translocation Tracking and Map Visualization
// Copyright 2026 M. Kotze (mkotze)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/mkotze/translocatus

package database

import (
	"context"
	"testing"

	"github.com/google/uuid"

	"github.com/mkotze/translocatus/internal/config"
	"github.com/mkotze/translocatus/internal/models"
	"github.com/mkotze/translocatus/internal/species"
)

// setupTestDB creates an in-memory database with the full schema.
func setupTestDB(t *testing.T) *DB {
	t.Helper()
	db, err := New(&config.DatabaseConfig{Path: "", MaxMemory: "256MB", Threads: 1})
	if err != nil {
		t.Fatalf("failed to create test database: %v", err)
	}
	t.Cleanup(func() { db.Close() })
	return db
}

func testRecord(title, speciesLabel string, year, count int) *models.Translocation {
	return &models.Translocation{
		ProjectTitle:    title,
		Year:            year,
		Species:         speciesLabel,
		NumberOfAnimals: count,
		SourceArea: models.Area{
			Name:        "Liwonde National Park",
			Coordinates: "-14.844, 35.347",
			Country:     "Malawi",
		},
		RecipientArea: models.Area{
			Name:        "Kasungu National Park",
			Coordinates: "-12.897, 33.750",
			Country:     "Malawi",
		},
		Transport:      models.TransportRoad,
		SpecialProject: "African Parks",
	}
}

func TestInsertAndGetTranslocation(t *testing.T) {
	db := setupTestDB(t)
	ctx := context.Background()

	record := testRecord("Kasungu Elephants", "Elephant", 2022, 263)
	if err := db.InsertTranslocation(ctx, record); err != nil {
		t.Fatalf("InsertTranslocation() error: %v", err)
	}
	if record.ID == uuid.Nil {
		t.Fatal("insert did not assign an ID")
	}
	if record.Seq == 0 {
		t.Error("insert did not assign a sequence number")
	}

	got, err := db.GetTranslocation(ctx, record.ID)
	if err != nil {
		t.Fatalf("GetTranslocation() error: %v", err)
	}
	if got.ProjectTitle != "Kasungu Elephants" || got.Year != 2022 {
		t.Errorf("got %q/%d, want Kasungu Elephants/2022", got.ProjectTitle, got.Year)
	}
	if got.SpeciesCategory != species.CategoryElephant {
		t.Errorf("category = %q, want %q", got.SpeciesCategory, species.CategoryElephant)
	}
	if got.SourceArea.Lat == nil || *got.SourceArea.Lat != -14.844 {
		t.Errorf("source lat = %v, want -14.844", got.SourceArea.Lat)
	}
	if got.SourceArea.Coordinates != "-14.844, 35.347" {
		t.Errorf("raw coordinates not round-tripped: %q", got.SourceArea.Coordinates)
	}
}

func TestGetTranslocationNotFound(t *testing.T) {
	db := setupTestDB(t)

	_, err := db.GetTranslocation(context.Background(), uuid.New())
	if err != ErrNotFound {
		t.Errorf("err = %v, want ErrNotFound", err)
	}
}

func TestUpdateTranslocationRederives(t *testing.T) {
	db := setupTestDB(t)
	ctx := context.Background()

	record := testRecord("Project", "Elephant", 2020, 10)
	if err := db.InsertTranslocation(ctx, record); err != nil {
		t.Fatalf("InsertTranslocation() error: %v", err)
	}

	record.Species = "Impala, Kudu"
	record.SourceArea.Coordinates = "garbage"
	if err := db.UpdateTranslocation(ctx, record); err != nil {
		t.Fatalf("UpdateTranslocation() error: %v", err)
	}

	got, err := db.GetTranslocation(ctx, record.ID)
	if err != nil {
		t.Fatalf("GetTranslocation() error: %v", err)
	}
	if got.SpeciesCategory != species.CategoryPlainsGame {
		t.Errorf("category = %q, want %q after species change", got.SpeciesCategory, species.CategoryPlainsGame)
	}
	if got.SourceArea.Lat != nil {
		t.Error("stale latitude survived a coordinate change to unparseable text")
	}
}

func TestUpdateTranslocationNotFound(t *testing.T) {
	db := setupTestDB(t)

	record := testRecord("Ghost", "Elephant", 2020, 1)
	record.ID = uuid.New()
	if err := db.UpdateTranslocation(context.Background(), record); err != ErrNotFound {
		t.Errorf("err = %v, want ErrNotFound", err)
	}
}

func TestDeleteTranslocation(t *testing.T) {
	db := setupTestDB(t)
	ctx := context.Background()

	record := testRecord("Doomed", "Elephant", 2020, 1)
	if err := db.InsertTranslocation(ctx, record); err != nil {
		t.Fatalf("InsertTranslocation() error: %v", err)
	}
	if err := db.DeleteTranslocation(ctx, record.ID); err != nil {
		t.Fatalf("DeleteTranslocation() error: %v", err)
	}
	if err := db.DeleteTranslocation(ctx, record.ID); err != ErrNotFound {
		t.Errorf("second delete err = %v, want ErrNotFound", err)
	}
}

func TestClearTranslocations(t *testing.T) {
	db := setupTestDB(t)
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		if err := db.InsertTranslocation(ctx, testRecord("P", "Elephant", 2020, 1)); err != nil {
			t.Fatalf("InsertTranslocation() error: %v", err)
		}
	}

	cleared, err := db.ClearTranslocations(ctx)
	if err != nil {
		t.Fatalf("ClearTranslocations() error: %v", err)
	}
	if cleared != 3 {
		t.Errorf("cleared = %d, want 3", cleared)
	}

	count, err := db.CountTranslocations(ctx)
	if err != nil {
		t.Fatalf("CountTranslocations() error: %v", err)
	}
	if count != 0 {
		t.Errorf("count after clear = %d, want 0", count)
	}
}

func TestListTranslocationsFilteringAndOrder(t *testing.T) {
	db := setupTestDB(t)
	ctx := context.Background()

	records := []*models.Translocation{
		testRecord("First", "Elephant", 2016, 100),
		testRecord("Second", "Black Rhino", 2019, 18),
		testRecord("Third", "Elephant", 2022, 263),
	}
	records[1].Transport = models.TransportAir
	records[1].SpecialProject = "Peace Parks"
	for _, record := range records {
		if err := db.InsertTranslocation(ctx, record); err != nil {
			t.Fatalf("InsertTranslocation() error: %v", err)
		}
	}

	all, total, err := db.ListTranslocations(ctx, TranslocationFilter{})
	if err != nil {
		t.Fatalf("ListTranslocations() error: %v", err)
	}
	if total != 3 || len(all) != 3 {
		t.Fatalf("total = %d, len = %d, want 3/3", total, len(all))
	}
	for i, want := range []string{"First", "Second", "Third"} {
		if all[i].ProjectTitle != want {
			t.Errorf("record %d = %q, want %q (insertion order)", i, all[i].ProjectTitle, want)
		}
	}

	elephants, total, err := db.ListTranslocations(ctx, TranslocationFilter{
		SpeciesCategories: []string{species.CategoryElephant},
	})
	if err != nil {
		t.Fatalf("ListTranslocations(category) error: %v", err)
	}
	if total != 2 || len(elephants) != 2 {
		t.Errorf("elephant filter matched %d/%d, want 2/2", len(elephants), total)
	}

	recent, _, err := db.ListTranslocations(ctx, TranslocationFilter{Years: []int{2019, 2022}})
	if err != nil {
		t.Fatalf("ListTranslocations(years) error: %v", err)
	}
	if len(recent) != 2 {
		t.Errorf("year filter matched %d, want 2", len(recent))
	}

	air, _, err := db.ListTranslocations(ctx, TranslocationFilter{Transports: []string{"Air"}})
	if err != nil {
		t.Fatalf("ListTranslocations(transport) error: %v", err)
	}
	if len(air) != 1 || air[0].ProjectTitle != "Second" {
		t.Errorf("transport filter = %v, want [Second]", air)
	}

	searched, _, err := db.ListTranslocations(ctx, TranslocationFilter{Search: "third"})
	if err != nil {
		t.Fatalf("ListTranslocations(search) error: %v", err)
	}
	if len(searched) != 1 || searched[0].ProjectTitle != "Third" {
		t.Errorf("search filter = %v, want [Third]", searched)
	}
}

func TestListTranslocationsPagination(t *testing.T) {
	db := setupTestDB(t)
	ctx := context.Background()

	for i := 0; i < 5; i++ {
		if err := db.InsertTranslocation(ctx, testRecord("P", "Elephant", 2020, 1)); err != nil {
			t.Fatalf("InsertTranslocation() error: %v", err)
		}
	}

	page, total, err := db.ListTranslocations(ctx, TranslocationFilter{Limit: 2, Offset: 2})
	if err != nil {
		t.Fatalf("ListTranslocations() error: %v", err)
	}
	if total != 5 {
		t.Errorf("total = %d, want 5 (pre-pagination count)", total)
	}
	if len(page) != 2 {
		t.Errorf("page size = %d, want 2", len(page))
	}
}

func TestGetSpeciesStats(t *testing.T) {
	db := setupTestDB(t)
	ctx := context.Background()

	for _, record := range []*models.Translocation{
		testRecord("A", "Elephant", 2020, 100),
		testRecord("B", "Elephant", 2021, 50),
		testRecord("C", "White Rhino", 2021, 200),
	} {
		if err := db.InsertTranslocation(ctx, record); err != nil {
			t.Fatalf("InsertTranslocation() error: %v", err)
		}
	}

	stats, err := db.GetSpeciesStats(ctx, TranslocationFilter{})
	if err != nil {
		t.Fatalf("GetSpeciesStats() error: %v", err)
	}
	if len(stats) != 2 {
		t.Fatalf("categories = %d, want 2", len(stats))
	}

	// Ordered by total animals descending.
	if stats[0].Category != species.CategoryWhiteRhino || stats[0].TotalAnimals != 200 {
		t.Errorf("stats[0] = %+v, want White Rhino with 200", stats[0])
	}
	if stats[1].Category != species.CategoryElephant || stats[1].TotalAnimals != 150 || stats[1].TotalTranslocations != 2 {
		t.Errorf("stats[1] = %+v, want Elephant with 150 over 2 records", stats[1])
	}

	filtered, err := db.GetSpeciesStats(ctx, TranslocationFilter{Years: []int{2020}})
	if err != nil {
		t.Fatalf("GetSpeciesStats(filtered) error: %v", err)
	}
	if len(filtered) != 1 || filtered[0].TotalAnimals != 100 {
		t.Errorf("filtered stats = %+v, want only 2020's elephants", filtered)
	}
}

func TestGetFilterValues(t *testing.T) {
	db := setupTestDB(t)
	ctx := context.Background()

	first := testRecord("A", "Elephant", 2016, 10)
	second := testRecord("B", "Black Rhino", 2022, 5)
	second.Transport = models.TransportAir
	second.SpecialProject = ""
	for _, record := range []*models.Translocation{first, second} {
		if err := db.InsertTranslocation(ctx, record); err != nil {
			t.Fatalf("InsertTranslocation() error: %v", err)
		}
	}

	values, err := db.GetFilterValues(ctx)
	if err != nil {
		t.Fatalf("GetFilterValues() error: %v", err)
	}
	if len(values.SpeciesCategories) != 2 {
		t.Errorf("categories = %v, want 2 entries", values.SpeciesCategories)
	}
	if len(values.Years) != 2 || values.Years[0] != 2016 || values.Years[1] != 2022 {
		t.Errorf("years = %v, want [2016 2022]", values.Years)
	}
	if len(values.Transports) != 2 {
		t.Errorf("transports = %v, want 2 entries", values.Transports)
	}
	// Blank special projects are excluded from dropdown values.
	if len(values.SpecialProjects) != 1 || values.SpecialProjects[0] != "African Parks" {
		t.Errorf("special projects = %v, want [African Parks]", values.SpecialProjects)
	}
}

func TestSeedSampleDataIdempotent(t *testing.T) {
	db := setupTestDB(t)
	ctx := context.Background()

	if err := db.SeedSampleData(ctx); err != nil {
		t.Fatalf("SeedSampleData() error: %v", err)
	}
	first, err := db.CountTranslocations(ctx)
	if err != nil {
		t.Fatalf("CountTranslocations() error: %v", err)
	}
	if first == 0 {
		t.Fatal("seed inserted nothing")
	}

	if err := db.SeedSampleData(ctx); err != nil {
		t.Fatalf("second SeedSampleData() error: %v", err)
	}
	second, err := db.CountTranslocations(ctx)
	if err != nil {
		t.Fatalf("CountTranslocations() error: %v", err)
	}
	if second != first {
		t.Errorf("second seed changed count from %d to %d", first, second)
	}
}
