// Package specmatch resolves product specification records across web
// catalogs: it decides which pairs of records describe the same
// real-world product. The pipeline runs four stages strictly forward —
// catalog building, blocking-key extraction, block assignment, and
// pairwise matching — and produces a pairwise match relation. It does
// not cluster or merge records.
package specmatch

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/transactionalblog/sigmod-contest-2020/internal/metrics"
	"github.com/transactionalblog/sigmod-contest-2020/pkg/blocking"
	"github.com/transactionalblog/sigmod-contest-2020/pkg/errors"
	"github.com/transactionalblog/sigmod-contest-2020/pkg/logging"
	"github.com/transactionalblog/sigmod-contest-2020/pkg/matching"
	"github.com/transactionalblog/sigmod-contest-2020/pkg/specs"
)

// Pipeline runs the resolution stages over a set of raw source items.
// Configure it once with options; Run may be called repeatedly.
type Pipeline struct {
	keyLength int
	keyFunc   blocking.KeyFunc
	matcher   matching.Matcher
	threshold int
	workers   int
	logger    zerolog.Logger
}

// New creates a pipeline with the default configuration: 3-character
// prefix keys, whitespace tokens, match threshold 2, serial matching.
func New(opts ...Option) *Pipeline {
	p := &Pipeline{
		keyLength: blocking.DefaultKeyLength,
		threshold: matching.DefaultThreshold,
		workers:   1,
		logger:    *logging.Default(),
	}
	for _, opt := range opts {
		opt(p)
	}
	if p.keyFunc == nil && p.keyLength >= 1 {
		p.keyFunc = blocking.PrefixKey(p.keyLength)
	}
	if p.matcher == nil {
		p.matcher = matching.TokenOverlap{Threshold: p.threshold, Tokenize: matching.Whitespace}
	}
	return p
}

// Stats describes one pipeline run.
type Stats struct {
	Items             int `json:"items" yaml:"items"`
	Records           int `json:"records" yaml:"records"`
	SkippedNoTitle    int `json:"skipped_no_title" yaml:"skipped_no_title"`
	SkippedShortTitle int `json:"skipped_short_title" yaml:"skipped_short_title"`
	VocabularySize    int `json:"vocabulary_size" yaml:"vocabulary_size"`
	Blocks            int `json:"blocks" yaml:"blocks"`
	Unassigned        int `json:"unassigned" yaml:"unassigned"`
	CandidatePairs    int `json:"candidate_pairs" yaml:"candidate_pairs"`
	Matches           int `json:"matches" yaml:"matches"`

	ExecutedAt time.Time     `json:"executed_at" yaml:"executed_at"`
	Duration   time.Duration `json:"duration" yaml:"duration"`
}

// Result is the outcome of one pipeline run. Matches is a set: no pair
// recurs and no enumeration order is guaranteed.
type Result struct {
	Matches []matching.Pair
	Blocks  *blocking.Blocks
	Stats   Stats
}

// Summary returns a human-readable summary of the run.
func (r *Result) Summary() string {
	skipped := r.Stats.SkippedNoTitle + r.Stats.SkippedShortTitle
	return fmt.Sprintf("%d matches from %d candidate pairs in %d blocks (%d records, %d skipped, took %v)",
		r.Stats.Matches, r.Stats.CandidatePairs, r.Stats.Blocks,
		r.Stats.Records, skipped, r.Stats.Duration)
}

// Run executes the pipeline over raw source items. Per-record data
// errors (missing or degenerate titles) are skipped and counted; a
// duplicate spec id aborts the run.
func (p *Pipeline) Run(ctx context.Context, items []specs.Item) (*Result, error) {
	if p.keyFunc == nil {
		return nil, errors.NewConfigError("key-length",
			fmt.Sprintf("blocking key length must be at least 1, got %d", p.keyLength),
			errors.ErrInvalidInput)
	}

	start := time.Now()
	result := &Result{
		Stats: Stats{Items: len(items), ExecutedAt: start},
	}

	// Stage 1: catalog.
	stageStart := time.Now()
	catalog, err := specs.Build(items)
	if err != nil {
		return nil, err
	}
	metrics.StageSeconds.WithLabelValues("catalog").Observe(time.Since(stageStart).Seconds())
	metrics.RecordsLoaded.Add(float64(catalog.Len()))
	metrics.RecordsSkipped.WithLabelValues(metrics.ReasonMissingTitle).Add(float64(catalog.Skipped()))
	result.Stats.Records = catalog.Len()
	result.Stats.SkippedNoTitle = catalog.Skipped()
	p.logger.Info().
		Int("records", catalog.Len()).
		Int("skipped", catalog.Skipped()).
		Msg("Catalog built")

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	// Stage 2: blocking key vocabulary.
	stageStart = time.Now()
	vocab, shortTitles, err := blocking.ExtractKeys(catalog, p.keyFunc)
	if err != nil {
		return nil, err
	}
	metrics.StageSeconds.WithLabelValues("keys").Observe(time.Since(stageStart).Seconds())
	metrics.RecordsSkipped.WithLabelValues(metrics.ReasonShortTitle).Add(float64(shortTitles))
	metrics.VocabularySize.Set(float64(vocab.Len()))
	result.Stats.VocabularySize = vocab.Len()
	result.Stats.SkippedShortTitle = shortTitles
	p.logger.Info().
		Int("keys", vocab.Len()).
		Int("short_titles", shortTitles).
		Msg("Blocking keys extracted")

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	// Stage 3: block assignment.
	stageStart = time.Now()
	blocks := blocking.Partition(catalog, blocking.NewScanAssigner(vocab))
	metrics.StageSeconds.WithLabelValues("blocking").Observe(time.Since(stageStart).Seconds())
	metrics.UnassignedRecords.Set(float64(blocks.Unassigned()))
	metrics.CandidatePairs.Add(float64(blocks.CandidatePairs()))
	for _, key := range blocks.Keys() {
		metrics.BlockSize.Observe(float64(len(blocks.Members(key))))
	}
	result.Blocks = blocks
	result.Stats.Blocks = blocks.Len()
	result.Stats.Unassigned = blocks.Unassigned()
	result.Stats.CandidatePairs = blocks.CandidatePairs()
	p.logger.Info().
		Int("blocks", blocks.Len()).
		Int("unassigned", blocks.Unassigned()).
		Int("candidate_pairs", blocks.CandidatePairs()).
		Msg("Records partitioned")

	// Stage 4: pairwise matching.
	stageStart = time.Now()
	pairs, err := matching.Pairs(ctx, blocks, catalog, p.matcher, &matching.Options{Workers: p.workers})
	if err != nil {
		return nil, err
	}
	metrics.StageSeconds.WithLabelValues("matching").Observe(time.Since(stageStart).Seconds())
	metrics.MatchedPairs.Add(float64(len(pairs)))
	result.Matches = pairs
	result.Stats.Matches = len(pairs)

	result.Stats.Duration = time.Since(start)
	p.logger.Info().
		Int("matches", len(pairs)).
		Dur("duration", result.Stats.Duration).
		Msg("Matching completed")

	return result, nil
}
