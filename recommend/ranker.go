package recommend

import (
	"context"
	"log/slog"
	"sort"

	"github.com/poiesic/wayfarer/ai"
)

// ConnectFunc constructs an embedder. It is called once at ranker
// construction; any failure is absorbed and the ranker degrades to
// identity ordering.
type ConnectFunc func() (ai.Embedder, error)

// Ranker orders candidate texts by semantic similarity to a query.
//
// Semantic capability is optional. An unavailable ranker returns candidates
// in their original order, which downstream code treats as a fully valid
// ordering rather than a degraded one.
type Ranker struct {
	embedder ai.Embedder
	logger   *slog.Logger
}

// RankerOption configures a Ranker.
type RankerOption func(*Ranker)

// WithRankerLogger sets a custom logger.
// Default is slog.Default().
func WithRankerLogger(logger *slog.Logger) RankerOption {
	return func(r *Ranker) {
		if logger == nil {
			logger = slog.Default()
		}
		r.logger = logger
	}
}

// NewRanker creates a Ranker, attempting to connect the embedding capability
// exactly once. A nil connect function or a connection failure yields an
// unavailable ranker; the failure never propagates.
func NewRanker(connect ConnectFunc, opts ...RankerOption) *Ranker {
	r := &Ranker{
		logger: slog.Default().With("component", "ranker"),
	}
	for _, opt := range opts {
		opt(r)
	}

	if connect == nil {
		return r
	}

	embedder, err := connect()
	if err != nil {
		r.logger.Debug("semantic ranking unavailable, using identity order", "err", err)
		return r
	}
	r.embedder = embedder
	return r
}

// NewIdentityRanker creates a Ranker with no semantic capability.
func NewIdentityRanker(opts ...RankerOption) *Ranker {
	return NewRanker(nil, opts...)
}

// Available reports whether semantic ranking is active.
func (r *Ranker) Available() bool {
	return r.embedder != nil
}

// Rank returns candidate indices ordered by descending similarity to query,
// truncated to topK. Without semantic capability it returns the first topK
// indices in original order.
//
// An embedding failure after successful construction also falls back to
// identity order, with a warning: the pre-ranker is advisory and must never
// sink a recommendation request.
func (r *Ranker) Rank(ctx context.Context, query string, texts []string, topK int) []int {
	if !r.Available() {
		return identityOrder(len(texts), topK)
	}

	queryVec, err := r.embedder.EmbedText(ctx, query)
	if err != nil {
		r.logger.Warn("query embedding failed, falling back to identity order", "err", err)
		return identityOrder(len(texts), topK)
	}

	candidateVecs, err := r.embedder.EmbedTexts(ctx, texts)
	if err != nil || len(candidateVecs) != len(texts) {
		r.logger.Warn("candidate embedding failed, falling back to identity order", "count", len(texts), "err", err)
		return identityOrder(len(texts), topK)
	}

	for i := range candidateVecs {
		candidateVecs[i] = NormalizeVector(candidateVecs[i])
	}

	return r.orderBySimilarity(NormalizeVector(queryVec), candidateVecs, topK)
}

// RankPrecomputed ranks candidates whose embeddings were computed ahead of
// time (for example by the ingest pipeline). Only the query is embedded.
// Vectors are expected to be unit-normalized.
func (r *Ranker) RankPrecomputed(ctx context.Context, query string, vectors [][]float32, topK int) []int {
	if !r.Available() {
		return identityOrder(len(vectors), topK)
	}

	queryVec, err := r.embedder.EmbedText(ctx, query)
	if err != nil {
		r.logger.Warn("query embedding failed, falling back to identity order", "err", err)
		return identityOrder(len(vectors), topK)
	}

	return r.orderBySimilarity(NormalizeVector(queryVec), vectors, topK)
}

func (r *Ranker) orderBySimilarity(queryVec []float32, candidateVecs [][]float32, topK int) []int {
	similarities := make([]float32, len(candidateVecs))
	for i, vec := range candidateVecs {
		similarities[i] = dotProduct(queryVec, vec)
	}

	order := identityOrder(len(candidateVecs), len(candidateVecs))
	// Stable sort keeps original index order for ties, for determinism.
	sort.SliceStable(order, func(i, j int) bool {
		return similarities[order[i]] > similarities[order[j]]
	})

	if topK < len(order) {
		order = order[:topK]
	}
	return order
}

// identityOrder returns [0, 1, ..., n-1] truncated to topK.
func identityOrder(n, topK int) []int {
	if topK < 0 {
		topK = 0
	}
	if topK > n {
		topK = n
	}
	order := make([]int, topK)
	for i := range order {
		order[i] = i
	}
	return order
}
