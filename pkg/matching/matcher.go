// Package matching decides which candidate pairs of spec records
// describe the same real-world product. Pairs are enumerated within
// blocks only; the verdict for one pair depends on nothing but the two
// page titles, so the match relation is a set and carries no order.
package matching

import "strings"

// DefaultThreshold is the number of shared title tokens required for a
// match. It is a policy parameter, not a derived statistic.
const DefaultThreshold = 2

// Tokenizer splits a normalized title into tokens for the overlap test.
type Tokenizer func(title string) []string

// Whitespace is the default tokenizer: split on runs of whitespace.
func Whitespace(title string) []string {
	return strings.Fields(title)
}

// Matcher is the pairwise similarity predicate. Implementations must be
// symmetric (Match(a, b) == Match(b, a)) and deterministic.
type Matcher interface {
	// Match reports whether two normalized titles describe the same
	// product.
	Match(left, right string) bool
}

// TokenOverlap matches two titles when their token sets share at least
// Threshold tokens. Token multiplicity is ignored on both sides. The
// zero value uses the default threshold and whitespace tokenizer.
type TokenOverlap struct {
	Threshold int
	Tokenize  Tokenizer
}

// NewTokenOverlap returns the default matcher: whitespace tokens,
// threshold 2.
func NewTokenOverlap() TokenOverlap {
	return TokenOverlap{Threshold: DefaultThreshold, Tokenize: Whitespace}
}

// Match implements Matcher.
func (m TokenOverlap) Match(left, right string) bool {
	tokenize := m.Tokenize
	if tokenize == nil {
		tokenize = Whitespace
	}
	threshold := m.Threshold
	if threshold <= 0 {
		threshold = DefaultThreshold
	}

	leftTokens := make(map[string]struct{})
	for _, tok := range tokenize(left) {
		leftTokens[tok] = struct{}{}
	}

	shared := 0
	seen := make(map[string]struct{})
	for _, tok := range tokenize(right) {
		if _, dup := seen[tok]; dup {
			continue
		}
		seen[tok] = struct{}{}
		if _, ok := leftTokens[tok]; ok {
			shared++
			if shared >= threshold {
				return true
			}
		}
	}
	return false
}
