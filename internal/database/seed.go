// Translocatus - Wildlife Translocation Tracking and Map Visualization
// Copyright 2026 M. Kotze (mkotze)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/mkotze/translocatus

package database

import (
	"context"
	"fmt"

	"github.com/mkotze/translocatus/internal/logging"
	"github.com/mkotze/translocatus/internal/models"
)

// seedRecord is the compact form of one sample translocation. Coordinates
// stay as raw text; insertion derives the lat/lng pair and the category the
// same way an upload would.
type seedRecord struct {
	title     string
	year      int
	species   string
	count     int
	srcName   string
	srcCoords string
	srcCtry   string
	dstName   string
	dstCoords string
	dstCtry   string
	transport models.Transport
	project   string
	info      string
}

// sampleRecords is a curated slice of real southern-African translocation
// projects, covering every reporting category, both transport modes, and all
// three partner programmes.
var sampleRecords = []seedRecord{
	{"500 Elephants", 2016, "Elephant", 366, "Liwonde National Park", "-14.843917, 35.346718", "Malawi", "Nkhotakota National Park", "-12.798572, 34.011480", "Malawi", models.TransportRoad, "African Parks", ""},
	{"500 Elephants", 2017, "Elephant", 156, "Majete Wildlife Reserve", "-16.009218, 35.015772", "Malawi", "Nkhotakota National Park", "-12.798572, 34.011480", "Malawi", models.TransportRoad, "African Parks", ""},
	{"Nyika Elephants", 2017, "Elephant", 34, "Liwonde National Park", "-14.844, 35.347", "Malawi", "Nyika National Park", "-10.797, 33.752", "Malawi", models.TransportRoad, "African Parks", ""},
	{"Zinave Elephant", 2018, "Elephant", 29, "Liwonde National Park", "-14.844, 35.347", "Malawi", "Zinave National Park", "-21.879, 33.550", "Mozambique", models.TransportRoad, "Peace Parks", ""},
	{"Moremi Giants", 2019, "Elephant", 101, "Venetia Limpopo Nature Reserve", "-22.363, 29.506", "South Africa", "Zinave National Park", "-21.879, 33.550", "Mozambique", models.TransportRoad, "Peace Parks", ""},
	{"Maputo National Park Elephants", 2020, "Elephant", 30, "Maputo National Park", "-26.434, 32.795", "Mozambique", "Zinave National Park", "-21.879, 33.550", "Mozambique", models.TransportRoad, "Peace Parks", ""},
	{"Kasungu Elephants", 2022, "Elephant", 263, "Liwonde National Park", "-14.844, 35.347", "Malawi", "Kasungu National Park", "-12.897, 33.750", "Malawi", models.TransportRoad, "African Parks", ""},
	{"Babanango Elephant", 2023, "Elephant", 8, "Addo Elephant National Park", "-33.390, 25.646", "South Africa", "Babanango Game Reserve", "-28.340, 31.197", "South Africa", models.TransportRoad, "", ""},
	{"Black Rhino Akagera", 2017, "Black Rhino", 18, "Thaba Tholo", "-24.528, 27.865", "South Africa", "Akagera National Park", "-1.879, 30.796", "Rwanda", models.TransportAir, "African Parks", ""},
	{"Liwonde Black Rhino", 2019, "Black Rhino", 17, "Ezemvelo", "-28.211, 31.655", "South Africa", "Liwonde National Park", "-14.844, 35.347", "Malawi", models.TransportAir, "African Parks", ""},
	{"Zinave Black Rhino", 2022, "Black Rhino", 7, "Hluhluwe Game Reserve", "-27.345, 32.065", "South Africa", "Zinave National Park", "-21.879, 33.550", "Mozambique", models.TransportRoad, "Peace Parks", ""},
	{"Zakouma Rhino", 2023, "Black Rhino", 6, "Thaba Tholo", "-24.528, 27.865", "South Africa", "Zakouma National Park", "10.837, 19.831", "Chad", models.TransportAir, "African Parks", "Plane: C130"},
	{"Akagera White Rhino", 2021, "White Rhino", 30, "Phinda Private Game Reserve", "-27.830, 32.329", "South Africa", "Akagera National Park", "-1.879, 30.796", "Rwanda", models.TransportRoad, "African Parks", ""},
	{"Zinave White Rhino", 2022, "White Rhino", 40, "Hluhluwe Game Reserve", "-28.062, 32.162", "South Africa", "Zinave National Park", "-21.879, 33.550", "Mozambique", models.TransportRoad, "Peace Parks", ""},
	{"Akagera White Rhino", 2025, "White Rhino", 70, "Phinda Private Game Reserve", "-27.830, 32.329", "South Africa", "Akagera National Park", "-1.879, 30.796", "Rwanda", models.TransportAir, "African Parks", "Two loads of 35 rhino - Boeing 747"},
	{"Nkhotakota Plains Game", 2016, "Plains Game Species", 1500, "Liwonde National Park", "-14.844, 35.347", "Malawi", "Nkhotakota National Park", "-12.799, 34.011", "Malawi", models.TransportRoad, "African Parks", "Buffalo, impala, kudu, sable, zebra, warthog, waterbuck, hartebeest"},
	{"Zinave Plains Game", 2019, "Plains Game Species", 388, "Maputo National Park", "-26.791, 32.699", "Mozambique", "Zinave National Park", "-21.879, 33.550", "Mozambique", models.TransportRoad, "Peace Parks", "Sable, Oryx, Waterbuck & Reedbuck"},
	{"Kasungu Plains Game", 2022, "Plains Game Species", 423, "Liwonde National Park", "-14.844, 35.347", "Malawi", "Kasungu National Park", "-12.897, 33.750", "Malawi", models.TransportRoad, "African Parks", "Buffalo (84); Impala (127); Sable (29); Warthog (86); Kudu (46); Hartebeest (32)"},
	{"Akagera Lions", 2023, "Lion", 7, "Phinda Private Game Reserve", "-27.830, 32.329", "South Africa", "Akagera National Park", "-1.879, 30.796", "Rwanda", models.TransportAir, "", ""},
	{"Niassa Buffalo", 2021, "Buffalo", 200, "North Luangwa National Park", "-11.889, 32.140", "Zambia", "Niassa National Park", "-8.796, 37.936", "Mozambique", models.TransportRoad, "", ""},
}

// SeedSampleData loads the curated sample dataset. It is a no-op when the
// table already holds records, so restarting a seeded deployment does not
// duplicate data.
func (db *DB) SeedSampleData(ctx context.Context) error {
	count, err := db.CountTranslocations(ctx)
	if err != nil {
		return err
	}
	if count > 0 {
		logging.Debug().Int64("records", count).Msg("Skipping seed, database not empty")
		return nil
	}

	for _, sample := range sampleRecords {
		record := &models.Translocation{
			ProjectTitle:    sample.title,
			Year:            sample.year,
			Species:         sample.species,
			NumberOfAnimals: sample.count,
			SourceArea: models.Area{
				Name:        sample.srcName,
				Coordinates: sample.srcCoords,
				Country:     sample.srcCtry,
			},
			RecipientArea: models.Area{
				Name:        sample.dstName,
				Coordinates: sample.dstCoords,
				Country:     sample.dstCtry,
			},
			Transport:      sample.transport,
			SpecialProject: sample.project,
			AdditionalInfo: sample.info,
		}
		if err := db.InsertTranslocation(ctx, record); err != nil {
			return fmt.Errorf("failed to seed record %q: %w", sample.title, err)
		}
	}

	logging.Info().Int("records", len(sampleRecords)).Msg("Seeded sample translocation data")
	return nil
}
