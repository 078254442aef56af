package ingest

import (
	"context"
	"log/slog"
	"runtime"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/panjf2000/ants/v2"
	"github.com/poiesic/wayfarer/ai"
	"github.com/poiesic/wayfarer/catalog"
	"github.com/poiesic/wayfarer/core"
	"github.com/poiesic/wayfarer/recommend"
)

// Pipeline imports catalog collections into a writable store.
// When an embedder is configured it also precomputes candidate embeddings
// for every joinable (package, destination) pair on a worker pool.
type Pipeline struct {
	store    catalog.Writer
	embedder ai.Embedder
	pool     *ants.Pool
	logger   *slog.Logger
}

// Option configures a Pipeline.
type Option func(*Pipeline) error

// WithPoolSize sets the worker pool size for embedding work.
// Default is runtime.NumCPU() / 2, with a minimum of 1.
func WithPoolSize(size int) Option {
	return func(p *Pipeline) error {
		if size < 1 {
			size = 1
		}

		if p.pool != nil {
			p.pool.Release()
		}

		pool, err := ants.NewPool(size)
		if err != nil {
			return err
		}
		p.pool = pool
		return nil
	}
}

// WithEmbedder enables candidate embedding during import.
// Without an embedder packages are stored without vectors and the
// recommender embeds candidate texts on demand instead.
func WithEmbedder(embedder ai.Embedder) Option {
	return func(p *Pipeline) error {
		p.embedder = embedder
		return nil
	}
}

// WithLogger sets a custom logger.
// Default is slog.Default().
func WithLogger(logger *slog.Logger) Option {
	return func(p *Pipeline) error {
		if logger == nil {
			logger = slog.Default()
		}
		p.logger = logger
		return nil
	}
}

// NewPipeline creates an import pipeline writing to the given store.
func NewPipeline(store catalog.Writer, opts ...Option) (*Pipeline, error) {
	if store == nil {
		return nil, ErrStoreRequired
	}

	poolSize := runtime.NumCPU() / 2
	if poolSize < 1 {
		poolSize = 1
	}

	pool, err := ants.NewPool(poolSize)
	if err != nil {
		return nil, err
	}

	p := &Pipeline{
		store:  store,
		pool:   pool,
		logger: slog.Default().With("component", "ingest"),
	}

	for _, opt := range opts {
		if optErr := opt(p); optErr != nil {
			p.Release()
			return nil, optErr
		}
	}

	return p, nil
}

// Source holds the records to import. The raw byte fields are optional;
// when present the collection fingerprint is computed over them, otherwise
// over the record contents.
type Source struct {
	Destinations []*core.Destination
	Packages     []*core.Package

	DestinationBytes []byte
	PackageBytes     []byte
}

// Result reports what an import did.
type Result struct {
	DestinationsStored  int
	DestinationsSkipped int
	PackagesStored      int
	PackagesSkipped     int
	Embedded            int
}

// Run imports a source into the store. Invalid records are skipped with a
// warning rather than failing the import; store write failures propagate.
// Embedding failures leave the affected package without a vector.
func (p *Pipeline) Run(ctx context.Context, source *Source) (*Result, error) {
	if source == nil {
		return nil, ErrSourceRequired
	}

	result := &Result{}

	dests := make([]*core.Destination, 0, len(source.Destinations))
	destByID := make(map[core.ID]*core.Destination, len(source.Destinations))
	for _, dest := range source.Destinations {
		if err := core.ValidateDestination(dest); err != nil {
			p.logger.Warn("skipping invalid destination", "err", err)
			result.DestinationsSkipped++
			continue
		}
		dests = append(dests, dest)
		destByID[dest.Id] = dest
	}

	pkgs := make([]*core.Package, 0, len(source.Packages))
	for _, pkg := range source.Packages {
		if err := core.ValidatePackage(pkg); err != nil {
			p.logger.Warn("skipping invalid package", "err", err)
			result.PackagesSkipped++
			continue
		}
		pkgs = append(pkgs, pkg)
	}

	if p.embedder != nil {
		result.Embedded = p.embedAll(ctx, pkgs, destByID)
	}

	if len(dests) > 0 {
		if err := p.store.PutDestinations(ctx, dests...); err != nil {
			return nil, err
		}
	}
	if len(pkgs) > 0 {
		if err := p.store.PutPackages(ctx, pkgs...); err != nil {
			return nil, err
		}
	}
	result.DestinationsStored = len(dests)
	result.PackagesStored = len(pkgs)

	importedAt := time.Now().UTC()
	destFP := &core.Fingerprint{
		Collection: catalog.CollectionDestinations,
		Sum:        fingerprintSum(source.DestinationBytes, destinationContents(dests)),
		Records:    len(dests),
		ImportedAt: importedAt,
	}
	pkgFP := &core.Fingerprint{
		Collection: catalog.CollectionPackages,
		Sum:        fingerprintSum(source.PackageBytes, packageContents(pkgs)),
		Records:    len(pkgs),
		ImportedAt: importedAt,
	}
	if err := p.store.PutFingerprint(ctx, destFP); err != nil {
		return nil, err
	}
	if err := p.store.PutFingerprint(ctx, pkgFP); err != nil {
		return nil, err
	}

	p.logger.Info("import finished",
		"destinations", result.DestinationsStored,
		"packages", result.PackagesStored,
		"skipped", result.DestinationsSkipped+result.PackagesSkipped,
		"embedded", result.Embedded)

	return result, nil
}

// embedAll computes a candidate embedding for every joinable package,
// fanning the work out on the pool. Each task writes only its own index.
// Returns the number of packages that received a vector.
func (p *Pipeline) embedAll(ctx context.Context, pkgs []*core.Package, destByID map[core.ID]*core.Destination) int {
	var wg sync.WaitGroup
	embedded := make([]bool, len(pkgs))

	for i, pkg := range pkgs {
		dest, ok := destByID[pkg.DestinationId]
		if !ok {
			p.logger.Debug("package has no destination, skipping embedding",
				"package", pkg.Name, "destinationId", pkg.DestinationId)
			continue
		}

		wg.Add(1)
		task := func() {
			defer wg.Done()

			vector, err := p.embedder.EmbedText(ctx, recommend.CandidateText(pkg, dest))
			if err != nil {
				p.logger.Warn("candidate embedding failed, storing without vector",
					"package", pkg.Name, "err", err)
				return
			}
			pkg.Vector = recommend.NormalizeVector(vector)
			embedded[i] = true
		}
		if err := p.pool.Submit(task); err != nil {
			// Pool rejected the task (released or overloaded); run inline.
			task()
		}
	}

	wg.Wait()

	count := 0
	for _, ok := range embedded {
		if ok {
			count++
		}
	}
	return count
}

// Release releases the worker pool.
// The pipeline should not be used after calling Release.
func (p *Pipeline) Release() {
	if p.pool != nil {
		p.pool.Release()
	}
}

// fingerprintSum derives the collection sum from the raw source bytes when
// available, falling back to the validated record contents.
func fingerprintSum(raw []byte, contents string) core.ID {
	if len(raw) > 0 {
		return core.IDFromContent(string(raw))
	}
	return core.IDFromContent(contents)
}

func destinationContents(dests []*core.Destination) string {
	parts := make([]string, len(dests))
	for i, dest := range dests {
		parts[i] = strconv.FormatUint(uint64(dest.Id), 10) + "|" + dest.Name + "|" + dest.Country
	}
	return strings.Join(parts, "\n")
}

func packageContents(pkgs []*core.Package) string {
	parts := make([]string, len(pkgs))
	for i, pkg := range pkgs {
		parts[i] = strconv.FormatUint(uint64(pkg.Id), 10) + "|" + pkg.Name + "|" + strconv.Itoa(pkg.Nights)
	}
	return strings.Join(parts, "\n")
}
