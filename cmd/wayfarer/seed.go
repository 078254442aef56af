// Copyright 2025 Poiesic Systems
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.


package main

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/poiesic/wayfarer/core"
	"github.com/urfave/cli/v2"
)

func sampleCatalog() ([]*core.Destination, []*core.Package) {
	price := func(v float64) *float64 { return &v }

	dests := []*core.Destination{
		{
			Id: 1, Name: "Lisbon", Country: "Portugal", Climate: core.ClimateWarm,
			Activities:  "beach,culture,food",
			Description: "Coastal capital with tiled facades, tram rides and Atlantic light.",
		},
		{
			Id: 2, Name: "Kyoto", Country: "Japan", Climate: core.ClimateMild,
			Activities:  "culture,temples,food",
			Description: "Former imperial capital of gardens, shrines and quiet alleys.",
		},
		{
			Id: 3, Name: "Tromso", Country: "Norway", Climate: core.ClimateCold,
			Activities:  "aurora,skiing,hiking",
			Description: "Arctic gateway with northern lights and fjord scenery.",
		},
		{
			Id: 4, Name: "Cancun", Country: "Mexico", Climate: core.ClimateWarm,
			Activities:  "beach,snorkeling,nightlife",
			Description: "Caribbean beaches, cenotes and Mayan ruins nearby.",
		},
		{
			Id: 5, Name: "Queenstown", Country: "New Zealand", Climate: core.ClimateMild,
			Activities:  "hiking,adventure,skiing",
			Description: "Adventure hub on a glacial lake ringed by mountains.",
		},
	}

	pkgs := []*core.Package{
		{
			Id: 101, DestinationId: 1, Name: "Lisbon City Week",
			Budget: core.BudgetMedium, Nights: 6, Price: price(1150),
			Activities: "beach,culture",
			Highlights: "Alfama walking tour, day trip to Sintra",
		},
		{
			Id: 102, DestinationId: 1, Name: "Atlantic Surf Escape",
			Budget: core.BudgetLow, Nights: 4, Price: price(620),
			Activities: "beach,surfing",
			Highlights: "Surf lessons at Costa da Caparica",
		},
		{
			Id: 103, DestinationId: 2, Name: "Kyoto Heritage Trail",
			Budget: core.BudgetHigh, Nights: 7, Price: price(2850),
			Activities: "culture,temples",
			Highlights: "Private tea ceremony, Fushimi Inari at dawn",
		},
		{
			Id: 104, DestinationId: 3, Name: "Northern Lights Hunt",
			Budget: core.BudgetHigh, Nights: 5, Price: price(2400),
			Activities: "aurora,hiking",
			Highlights: "Guided aurora chase, whale safari",
		},
		{
			Id: 105, DestinationId: 4, Name: "Cancun All-Inclusive",
			Budget: core.BudgetMedium, Nights: 7, Price: price(1680),
			Activities: "beach,snorkeling",
			Highlights: "Reef snorkeling, Chichen Itza excursion",
		},
		{
			Id: 106, DestinationId: 4, Name: "Yucatan Budget Break",
			Budget: core.BudgetLow, Nights: 5,
			Activities: "beach",
			Highlights: "Hostel stay steps from the sand",
		},
		{
			Id: 107, DestinationId: 5, Name: "Southern Alps Trek",
			Budget: core.BudgetMedium, Nights: 8, Price: price(1950),
			Activities: "hiking,adventure",
			Highlights: "Routeburn Track, jet boat ride",
		},
	}

	return dests, pkgs
}

func seedCommand(c *cli.Context) error {
	outDir := c.String("out")
	if err := os.MkdirAll(outDir, 0o755); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}

	dests, pkgs := sampleCatalog()

	if err := writeJSON(filepath.Join(outDir, "destinations.json"), dests); err != nil {
		return err
	}
	if err := writeJSON(filepath.Join(outDir, "packages.json"), pkgs); err != nil {
		return err
	}

	slog.Info("sample catalog written",
		"dir", outDir, "destinations", len(dests), "packages", len(pkgs))
	return nil
}

func writeJSON(path string, v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode %s: %w", path, err)
	}
	if err := os.WriteFile(path, append(data, '\n'), 0o644); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	return nil
}
