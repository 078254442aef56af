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
	"fmt"
	"log"
	"log/slog"
	"os"
	"strings"

	"github.com/urfave/cli/v2"
)

func main() {
	app := &cli.App{
		Name:  "wayfarer",
		Usage: "Personal trip recommender over a static travel catalog",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "log-level",
				Aliases: []string{"l"},
				Usage:   "Set logging level (debug, info, warn, error)",
				Value:   "info",
			},
		},
		Before: setupLogger,
		Commands: []*cli.Command{
			{
				Name:   "recommend",
				Usage:  "Recommend travel packages for your preferences",
				Action: recommendCommand,
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:  "data",
						Usage: "Path to a directory with destinations.json and packages.json",
					},
					&cli.StringFlag{
						Name:    "db",
						Aliases: []string{"d"},
						Usage:   "Path to an imported BadgerDB catalog directory",
					},
					&cli.IntFlag{
						Name:    "top-k",
						Aliases: []string{"k"},
						Usage:   "Number of recommendations to return",
						Value:   5,
					},
					&cli.StringFlag{
						Name:  "embedding-host",
						Usage: "Embedding service host URL",
						Value: "http://localhost:11434/v1",
					},
					&cli.StringFlag{
						Name:  "embedding-model",
						Usage: "Embedding model name (empty disables semantic ranking)",
					},
					&cli.StringFlag{
						Name:  "budget",
						Usage: "Budget category (low, medium, high); skips the prompt",
					},
					&cli.StringFlag{
						Name:  "climate",
						Usage: "Climate preference (warm, cold, mild); skips the prompt",
					},
					&cli.StringFlag{
						Name:  "activities",
						Usage: "Comma-separated activity tags; skips the prompt",
					},
					&cli.StringFlag{
						Name:  "duration",
						Usage: "Trip duration in days; skips the prompt",
					},
					&cli.StringFlag{
						Name:  "month",
						Usage: "Travel month; skips the prompt",
					},
					&cli.BoolFlag{
						Name:  "no-input",
						Usage: "Never prompt; use flag values and defaults",
					},
				},
			},
			{
				Name:   "import",
				Usage:  "Import a JSON catalog into a BadgerDB store",
				Action: importCommand,
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:     "data",
						Usage:    "Path to a directory with destinations.json and packages.json",
						Required: true,
					},
					&cli.StringFlag{
						Name:     "db",
						Aliases:  []string{"d"},
						Usage:    "Path to the BadgerDB catalog directory to write",
						Required: true,
					},
					&cli.StringFlag{
						Name:  "embedding-host",
						Usage: "Embedding service host URL",
						Value: "http://localhost:11434/v1",
					},
					&cli.StringFlag{
						Name:  "embedding-model",
						Usage: "Embedding model name (empty skips candidate embedding)",
					},
					&cli.IntFlag{
						Name:  "pool-size",
						Usage: "Worker pool size for embedding work",
					},
				},
			},
			{
				Name:   "seed",
				Usage:  "Write a small sample catalog for trying the tool",
				Action: seedCommand,
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:     "out",
						Aliases:  []string{"o"},
						Usage:    "Directory to write destinations.json and packages.json into",
						Required: true,
					},
				},
			},
		},
	}

	if err := app.Run(os.Args); err != nil {
		log.Fatal(err)
	}
}

func setupLogger(c *cli.Context) error {
	levelStr := strings.ToLower(c.String("log-level"))

	var level slog.Level
	switch levelStr {
	case "debug":
		level = slog.LevelDebug
	case "info":
		level = slog.LevelInfo
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	default:
		return fmt.Errorf("invalid log level %q: must be one of debug, info, warn, error", levelStr)
	}

	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	}))
	slog.SetDefault(logger)

	return nil
}
