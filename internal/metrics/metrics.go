// Package metrics exposes prometheus collectors for resolution runs.
// Serve them with promhttp when a metrics address is configured; for
// short batch runs they still make skip counts and the block-size
// distribution inspectable after the fact.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Skip reasons for RecordsSkipped.
const (
	ReasonMissingTitle = "missing_title"
	ReasonShortTitle   = "short_title"
)

var (
	RecordsLoaded = promauto.NewCounter(prometheus.CounterOpts{
		Name: "specmatch_records_loaded_total",
		Help: "Total number of specification records admitted to the catalog",
	})

	RecordsSkipped = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "specmatch_records_skipped_total",
		Help: "Total number of specification records dropped, by reason",
	}, []string{"reason"})

	VocabularySize = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "specmatch_vocabulary_size",
		Help: "Number of distinct blocking keys in the last run",
	})

	UnassignedRecords = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "specmatch_unassigned_records",
		Help: "Records that matched no blocking key in the last run",
	})

	BlockSize = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "specmatch_block_size",
		Help:    "Distribution of block sizes after partitioning",
		Buckets: prometheus.ExponentialBuckets(1, 2, 16),
	})

	CandidatePairs = promauto.NewCounter(prometheus.CounterOpts{
		Name: "specmatch_candidate_pairs_total",
		Help: "Total number of in-block pairs enumerated for matching",
	})

	MatchedPairs = promauto.NewCounter(prometheus.CounterOpts{
		Name: "specmatch_matched_pairs_total",
		Help: "Total number of pairs accepted by the match predicate",
	})

	StageSeconds = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "specmatch_stage_duration_seconds",
		Help:    "Wall-clock duration of each pipeline stage",
		Buckets: prometheus.DefBuckets,
	}, []string{"stage"})
)
