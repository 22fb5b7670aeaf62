package specmatch

import (
	"github.com/rs/zerolog"

	"github.com/transactionalblog/sigmod-contest-2020/pkg/blocking"
	"github.com/transactionalblog/sigmod-contest-2020/pkg/matching"
)

// Option configures a Pipeline.
type Option func(*Pipeline)

// WithKeyLength sets the blocking key length used by the default
// prefix key rule. Shorter keys mean coarser blocks: more candidate
// pairs to compare but fewer matches missed across blocks.
func WithKeyLength(length int) Option {
	return func(p *Pipeline) {
		p.keyLength = length
	}
}

// WithKeyFunc replaces the blocking key derivation rule entirely.
// Takes precedence over WithKeyLength.
func WithKeyFunc(fn blocking.KeyFunc) Option {
	return func(p *Pipeline) {
		p.keyFunc = fn
	}
}

// WithMatcher replaces the pairwise match predicate.
func WithMatcher(m matching.Matcher) Option {
	return func(p *Pipeline) {
		p.matcher = m
	}
}

// WithThreshold sets the token-overlap threshold on the default
// matcher. Ignored when WithMatcher is also given.
func WithThreshold(threshold int) Option {
	return func(p *Pipeline) {
		p.threshold = threshold
	}
}

// WithWorkers sets how many blocks are matched concurrently. The match
// relation is identical regardless of worker count.
func WithWorkers(workers int) Option {
	return func(p *Pipeline) {
		p.workers = workers
	}
}

// WithLogger sets the pipeline logger.
func WithLogger(logger zerolog.Logger) Option {
	return func(p *Pipeline) {
		p.logger = logger
	}
}
