package main

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/poiesic/wayfarer/ai"
	"github.com/poiesic/wayfarer/ai/openai"
	"github.com/poiesic/wayfarer/catalog"
	"github.com/poiesic/wayfarer/catalog/badger"
	"github.com/poiesic/wayfarer/catalog/jsonfile"
	"github.com/poiesic/wayfarer/core"
	"github.com/poiesic/wayfarer/recommend"
	"github.com/urfave/cli/v2"
)

// Prompt defaults. Shown in brackets and used when the answer is empty.
const (
	defaultBudget     = core.BudgetMedium
	defaultClimate    = core.ClimateWarm
	defaultActivities = "beach, culture"
	defaultDuration   = "6"
)

func recommendCommand(c *cli.Context) error {
	ctx := context.Background()

	store, err := openStore(c)
	if err != nil {
		return err
	}
	defer store.Close()

	pref := buildPreference(c, os.Stdin, os.Stderr)

	ranker := buildRanker(c)
	recommender, err := recommend.NewRecommender(ranker,
		recommend.WithMonitor(&recommend.LogMonitor{}))
	if err != nil {
		return err
	}

	recs, err := recommender.RecommendFromStore(ctx, store, pref, c.Int("top-k"))
	if err != nil {
		return fmt.Errorf("recommendation failed: %w", err)
	}

	renderRecommendations(os.Stdout, recs)
	return nil
}

// openStore picks the catalog source. A JSON data directory wins over a
// database directory when both are given.
func openStore(c *cli.Context) (catalog.Store, error) {
	dataDir := c.String("data")
	dbPath := c.String("db")

	switch {
	case dataDir != "":
		return jsonfile.New(dataDir), nil
	case dbPath != "":
		backend, err := badger.OpenBackend(dbPath, false)
		if err != nil {
			return nil, fmt.Errorf("failed to open database: %w", err)
		}
		return badger.NewCatalog(backend), nil
	default:
		return nil, fmt.Errorf("either --data or --db is required")
	}
}

// buildRanker connects the semantic ranker when a model is configured.
// Connection failures degrade to identity ordering inside the ranker.
func buildRanker(c *cli.Context) *recommend.Ranker {
	model := c.String("embedding-model")
	if model == "" {
		return recommend.NewIdentityRanker()
	}

	config := ai.NewConfig(
		ai.WithHost(c.String("embedding-host")),
		ai.WithModel(model),
	)
	return recommend.NewRanker(func() (ai.Embedder, error) {
		if err := config.Validate(); err != nil {
			return nil, err
		}
		return openai.NewEmbedder(config)
	})
}

// buildPreference assembles the preference from flags, prompting on the
// given reader for anything not supplied. An unparsable duration answer
// means no duration preference.
func buildPreference(c *cli.Context, in io.Reader, out io.Writer) *core.Preference {
	reader := bufio.NewReader(in)
	noInput := c.Bool("no-input")

	answer := func(flagName, question, fallback string) string {
		if c.IsSet(flagName) {
			return c.String(flagName)
		}
		if noInput {
			return fallback
		}
		return ask(reader, out, question, fallback)
	}

	budget := strings.ToLower(strings.TrimSpace(
		answer("budget", "Budget (low/medium/high)", defaultBudget)))
	climate := strings.ToLower(strings.TrimSpace(
		answer("climate", "Climate (warm/cold/mild)", defaultClimate)))
	activities := answer("activities", "Activities (comma-separated)", defaultActivities)
	durationStr := answer("duration", "Trip duration in days", defaultDuration)
	month := strings.ToLower(strings.TrimSpace(
		answer("month", "Travel month (optional)", "")))

	duration, err := strconv.Atoi(strings.TrimSpace(durationStr))
	if err != nil || duration < 0 {
		duration = 0
	}

	return &core.Preference{
		Budget:       budget,
		Climate:      climate,
		Activities:   recommend.NormalizeTags(activities),
		DurationDays: duration,
		Month:        month,
	}
}

// ask prints a question with its default and reads one line. An empty or
// failed read yields the default.
func ask(reader *bufio.Reader, out io.Writer, question, fallback string) string {
	if fallback != "" {
		fmt.Fprintf(out, "%s [%s]: ", question, fallback)
	} else {
		fmt.Fprintf(out, "%s: ", question)
	}

	line, err := reader.ReadString('\n')
	if err != nil && line == "" {
		return fallback
	}
	line = strings.TrimSpace(line)
	if line == "" {
		return fallback
	}
	return line
}
