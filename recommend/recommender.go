package recommend

import (
	"context"
	"log/slog"
	"math"
	"sort"

	"github.com/poiesic/wayfarer/catalog"
	"github.com/poiesic/wayfarer/core"
)

// defaultFinalistLimit bounds how many pre-ranked candidates receive a
// heuristic score, regardless of catalog size.
const defaultFinalistLimit = 50

// Recommender joins packages to destinations, pre-ranks the candidates,
// scores the finalists and returns the best matches.
type Recommender struct {
	ranker        *Ranker
	monitor       Monitor
	logger        *slog.Logger
	finalistLimit int
}

// Option configures a Recommender.
type Option func(*Recommender) error

// WithLogger sets a custom logger.
// Default is slog.Default().
func WithLogger(logger *slog.Logger) Option {
	return func(r *Recommender) error {
		if logger == nil {
			logger = slog.Default()
		}
		r.logger = logger
		return nil
	}
}

// WithMonitor sets a pipeline monitor.
// Default is a no-op monitor.
func WithMonitor(monitor Monitor) Option {
	return func(r *Recommender) error {
		if monitor == nil {
			monitor = &noopMonitor{}
		}
		r.monitor = monitor
		return nil
	}
}

// WithFinalistLimit overrides the bound on how many pre-ranked candidates
// are scored. Values below 1 are ignored.
func WithFinalistLimit(limit int) Option {
	return func(r *Recommender) error {
		if limit >= 1 {
			r.finalistLimit = limit
		}
		return nil
	}
}

// NewRecommender creates a Recommender using the given ranker.
func NewRecommender(ranker *Ranker, opts ...Option) (*Recommender, error) {
	if ranker == nil {
		return nil, ErrRankerRequired
	}

	r := &Recommender{
		ranker:        ranker,
		monitor:       &noopMonitor{},
		logger:        slog.Default(),
		finalistLimit: defaultFinalistLimit,
	}

	for _, opt := range opts {
		if err := opt(r); err != nil {
			return nil, err
		}
	}

	return r, nil
}

// candidate pairs a package with its resolved destination.
type candidate struct {
	pkg  *core.Package
	dest *core.Destination
}

// Recommend returns up to topK scored matches, best first.
//
// Packages whose destination identifier does not resolve are silently
// excluded; an empty package list yields an empty result, not an error.
// Inputs are never mutated.
func (r *Recommender) Recommend(ctx context.Context, pref *core.Preference, dests []*core.Destination, pkgs []*core.Package, topK int) ([]*core.Recommendation, error) {
	if err := core.ValidatePreference(pref); err != nil {
		return nil, err
	}

	r.monitor.Start(pref)

	destByID := make(map[core.ID]*core.Destination, len(dests))
	for _, dest := range dests {
		if dest != nil {
			destByID[dest.Id] = dest
		}
	}

	candidates := make([]candidate, 0, len(pkgs))
	dropped := 0
	for _, pkg := range pkgs {
		if pkg == nil {
			continue
		}
		dest, ok := destByID[pkg.DestinationId]
		if !ok {
			dropped++
			continue
		}
		candidates = append(candidates, candidate{pkg: pkg, dest: dest})
	}
	r.monitor.AfterJoin(len(candidates), dropped)

	if len(candidates) == 0 {
		results := []*core.Recommendation{}
		r.monitor.Finish(results)
		return results, nil
	}

	order := r.preRank(ctx, pref, candidates)

	finalists := len(order)
	if finalists > r.finalistLimit {
		finalists = r.finalistLimit
	}
	order = order[:finalists]
	r.monitor.AfterSemanticRank(order, r.ranker.Available())

	scored := make([]*core.Recommendation, 0, len(order))
	for _, idx := range order {
		c := candidates[idx]
		scored = append(scored, &core.Recommendation{
			Score:       Score(pref, c.pkg, c.dest),
			Package:     c.pkg,
			Destination: c.dest,
		})
	}
	r.monitor.AfterScoring(scored)

	sort.SliceStable(scored, func(i, j int) bool {
		if scored[i].Score != scored[j].Score {
			return scored[i].Score > scored[j].Score
		}
		return scored[i].Package.PriceOrZero() < scored[j].Package.PriceOrZero()
	})

	if topK < 0 {
		topK = 0
	}
	if len(scored) > topK {
		scored = scored[:topK]
	}

	for _, rec := range scored {
		rec.Score = math.Round(rec.Score*100) / 100
	}

	r.monitor.Finish(scored)
	return scored, nil
}

// RecommendFromStore pulls both collections from a catalog store and
// recommends against them. Load failures propagate to the caller.
func (r *Recommender) RecommendFromStore(ctx context.Context, store catalog.Store, pref *core.Preference, topK int) ([]*core.Recommendation, error) {
	dests, err := store.Destinations(ctx)
	if err != nil {
		return nil, err
	}
	pkgs, err := store.Packages(ctx)
	if err != nil {
		return nil, err
	}
	return r.Recommend(ctx, pref, dests, pkgs, topK)
}

// preRank orders all candidates with the semantic ranker. Precomputed
// package vectors are used when every candidate has one; otherwise the
// candidate texts are embedded on the fly.
func (r *Recommender) preRank(ctx context.Context, pref *core.Preference, candidates []candidate) []int {
	query := QueryText(pref)

	if r.ranker.Available() {
		vectors := make([][]float32, len(candidates))
		precomputed := true
		for i, c := range candidates {
			if len(c.pkg.Vector) == 0 {
				precomputed = false
				break
			}
			vectors[i] = c.pkg.Vector
		}
		if precomputed {
			return r.ranker.RankPrecomputed(ctx, query, vectors, len(candidates))
		}
	}

	texts := make([]string, len(candidates))
	for i, c := range candidates {
		texts[i] = CandidateText(c.pkg, c.dest)
	}
	return r.ranker.Rank(ctx, query, texts, len(candidates))
}
