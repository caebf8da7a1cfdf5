// Package batch resolves JSON Lines of news stories to districts.
package batch

import (
	"bufio"
	"bytes"
	"context"
	"fmt"
	"io"
	"time"

	"github.com/goccy/go-json"
	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"

	"newsgeo/internal/catalog"
	"newsgeo/internal/geo"
	"newsgeo/internal/metrics"
	"newsgeo/internal/validation"
)

const (
	// DefaultWorkers is the worker pool size when none is configured.
	DefaultWorkers = 4

	maxLineSize = 4 << 20
)

// Resolver infers districts for records against one catalog.
// It is safe for concurrent use.
type Resolver struct {
	matcher  *geo.Matcher
	all      []geo.DistrictCandidate
	byRegion map[string][]geo.DistrictCandidate
	workers  int
	log      zerolog.Logger
}

// Option configures a Resolver.
type Option func(*Resolver)

// WithWorkers sets the number of records resolved concurrently.
func WithWorkers(n int) Option {
	return func(r *Resolver) { r.workers = n }
}

// WithLogger sets the logger for skipped records and region fallbacks.
func WithLogger(l zerolog.Logger) Option {
	return func(r *Resolver) { r.log = l }
}

// NewResolver prepares a resolver for the catalog. It returns
// catalog.ErrNoDistricts when the catalog is empty.
func NewResolver(m *geo.Matcher, c *catalog.Catalog, opts ...Option) (*Resolver, error) {
	all := c.Candidates()
	if len(all) == 0 {
		return nil, catalog.ErrNoDistricts
	}

	r := &Resolver{
		matcher:  m,
		all:      all,
		byRegion: make(map[string][]geo.DistrictCandidate),
		workers:  DefaultWorkers,
		log:      zerolog.Nop(),
	}

	for _, opt := range opts {
		opt(r)
	}

	if r.workers < 1 {
		r.workers = 1
	}

	for _, region := range c.Regions() {
		if cands, ok := c.Filter(region); ok {
			r.byRegion[geo.Normalize(region)] = cands
		}
	}

	metrics.SetCatalogSize(len(all))

	return r, nil
}

// candidates returns the districts for region, or every district when the
// region is empty or unknown.
func (r *Resolver) candidates(region string) []geo.DistrictCandidate {
	if region == "" {
		return r.all
	}

	if cands, ok := r.byRegion[geo.Normalize(region)]; ok {
		return cands
	}

	r.log.Debug().Str("region", region).Msg("unknown region, using all districts")

	return r.all
}

// Resolve validates and resolves one record. Invalid records produce an
// unresolved Output carrying the error, and an error wrapping ErrInvalidRecord.
func (r *Resolver) Resolve(rec *Record) (Output, error) {
	if verr := validation.ValidateStruct(rec); verr != nil {
		err := fmt.Errorf("%w: %s", ErrInvalidRecord, verr.Error())
		metrics.RecordInvalidRecord()

		return Output{ID: rec.ID, Error: err.Error()}, err
	}

	start := time.Now()
	res := r.matcher.Infer(rec.Story(), r.candidates(rec.Region))
	metrics.RecordInference(res, time.Since(start))

	return newOutput(rec.ID, res), nil
}

func (r *Resolver) resolveLine(line int, data []byte) Output {
	var rec Record
	if err := json.Unmarshal(data, &rec); err != nil {
		metrics.RecordInvalidRecord()
		r.log.Warn().Int("line", line).Err(err).Msg("skipping undecodable record")

		return Output{Error: fmt.Errorf("%w: line %d: %v", ErrInvalidRecord, line, err).Error()}
	}

	out, err := r.Resolve(&rec)
	if err != nil {
		r.log.Warn().Int("line", line).Str("id", rec.ID).Err(err).Msg("skipping invalid record")
	}

	return out
}

// Run reads records from in and writes one Output per non-blank line to out,
// in input order. Records are resolved on a pool of workers. Invalid records
// never stop the run; read and write failures and ctx cancellation do.
func (r *Resolver) Run(ctx context.Context, in io.Reader, out io.Writer) (Stats, error) {
	var stats Stats

	g, ctx := errgroup.WithContext(ctx)
	pending := make(chan chan Output, r.workers*2)

	g.Go(func() error {
		defer close(pending)

		return r.read(ctx, in, pending)
	})

	g.Go(func() error {
		return r.write(ctx, out, pending, &stats)
	})

	err := g.Wait()

	r.log.Info().
		Int("total", stats.Total).
		Int("resolved", stats.Resolved).
		Int("unresolved", stats.Unresolved).
		Int("invalid", stats.Invalid).
		Msg("batch finished")

	return stats, err
}

// read dispatches every line to the pool and queues its result slot on pending.
func (r *Resolver) read(ctx context.Context, in io.Reader, pending chan<- chan Output) error {
	var pool errgroup.Group
	pool.SetLimit(r.workers)

	defer func() { _ = pool.Wait() }()

	sc := bufio.NewScanner(in)
	sc.Buffer(make([]byte, 0, 64*1024), maxLineSize)

	line := 0
	for sc.Scan() {
		line++

		if err := ctx.Err(); err != nil {
			return err
		}

		data := sc.Bytes()
		if len(bytes.TrimSpace(data)) == 0 {
			continue
		}

		data = append([]byte(nil), data...)
		slot := make(chan Output, 1)

		select {
		case pending <- slot:
		case <-ctx.Done():
			return ctx.Err()
		}

		n := line
		pool.Go(func() error {
			slot <- r.resolveLine(n, data)
			return nil
		})
	}

	if err := sc.Err(); err != nil {
		return fmt.Errorf("failed to read records: %w", err)
	}

	return nil
}

// write drains pending in order.
func (r *Resolver) write(ctx context.Context, out io.Writer, pending <-chan chan Output, stats *Stats) error {
	bw := bufio.NewWriter(out)
	enc := json.NewEncoder(bw)

	for slot := range pending {
		var o Output

		select {
		case o = <-slot:
		case <-ctx.Done():
			return ctx.Err()
		}

		stats.add(&o)

		if err := enc.Encode(o); err != nil {
			return fmt.Errorf("failed to write result: %w", err)
		}
	}

	if err := bw.Flush(); err != nil {
		return fmt.Errorf("failed to write result: %w", err)
	}

	return nil
}
