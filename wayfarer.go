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


// Package wayfarer ties the catalog store, the ingest pipeline and the
// recommender together behind a single embedded entry point.
package wayfarer

import (
	"log/slog"

	"github.com/poiesic/wayfarer/ai"
	"github.com/poiesic/wayfarer/ai/openai"
	"github.com/poiesic/wayfarer/catalog"
	"github.com/poiesic/wayfarer/catalog/badger"
	"github.com/poiesic/wayfarer/ingest"
	"github.com/poiesic/wayfarer/recommend"
)

// Planner is an opened trip catalog plus the capabilities built on it.
type Planner struct {
	backend *badger.Backend
	catalog *badger.Catalog
	ranker  *recommend.Ranker
	logger  *slog.Logger
}

// PlannerOption configures a Planner.
type PlannerOption func(*plannerOptions)

type plannerOptions struct {
	aiConfig *ai.Config
	semantic bool
}

// WithAIConfig enables semantic ranking and candidate embedding using the
// given embedding configuration.
func WithAIConfig(config *ai.Config) PlannerOption {
	return func(o *plannerOptions) {
		if config != nil {
			o.aiConfig = config
			o.semantic = true
		}
	}
}

// Open opens (or creates) a catalog database at filePath.
// Without WithAIConfig the planner works purely heuristically; a failing
// embedding endpoint degrades to the same behavior instead of erroring.
func Open(filePath string, opts ...PlannerOption) (*Planner, error) {
	options := &plannerOptions{
		aiConfig: ai.DefaultConfig(),
	}
	for _, opt := range opts {
		opt(options)
	}

	backend, err := badger.OpenBackend(filePath, false)
	if err != nil {
		return nil, err
	}

	ranker := recommend.NewIdentityRanker()
	if options.semantic {
		config := options.aiConfig
		ranker = recommend.NewRanker(func() (ai.Embedder, error) {
			if err := config.Validate(); err != nil {
				return nil, err
			}
			return openai.NewEmbedder(config)
		})
	}

	return &Planner{
		backend: backend,
		catalog: badger.NewCatalog(backend),
		ranker:  ranker,
		logger:  slog.Default(),
	}, nil
}

// Close closes the catalog and its backend storage.
func (p *Planner) Close() error {
	if err := p.catalog.Close(); err != nil {
		p.logger.Error("error closing backend storage", "err", err)
		return err
	}
	return nil
}

// Catalog returns the underlying store for direct reads.
func (p *Planner) Catalog() catalog.Store {
	return p.catalog
}

// Writer returns the underlying store for imports.
func (p *Planner) Writer() catalog.Writer {
	return p.catalog
}

// NewRecommender creates a recommender over the planner's ranker.
func (p *Planner) NewRecommender(opts ...recommend.Option) (*recommend.Recommender, error) {
	return recommend.NewRecommender(p.ranker, opts...)
}

// NewIngestPipeline creates an import pipeline writing into this catalog.
func (p *Planner) NewIngestPipeline(opts ...ingest.Option) (*ingest.Pipeline, error) {
	return ingest.NewPipeline(p.catalog, opts...)
}
