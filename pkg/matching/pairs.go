package matching

import (
	"context"
	"sync"

	"golang.org/x/sync/errgroup"

	"github.com/transactionalblog/sigmod-contest-2020/pkg/blocking"
	"github.com/transactionalblog/sigmod-contest-2020/pkg/specs"
)

// Pair is an unordered pair of spec ids accepted by the matcher.
type Pair struct {
	Left  string `json:"left_spec_id" yaml:"left_spec_id"`
	Right string `json:"right_spec_id" yaml:"right_spec_id"`
}

// Options configures candidate-pair matching.
type Options struct {
	// Workers is the number of blocks matched concurrently. Blocks are
	// independent, so this changes only wall-clock time, never the
	// resulting relation. Values below 2 select the serial path.
	Workers int
}

// DefaultOptions returns the default matching options.
func DefaultOptions() *Options {
	return &Options{Workers: 1}
}

// Pairs enumerates every unordered pair of distinct records sharing a
// block, applies the matcher to their titles, and collects the accepted
// pairs. No pair crosses blocks and no record pairs with itself; since
// a record belongs to exactly one block, the relation contains no
// repeated pair. Emission order across blocks is not specified.
func Pairs(ctx context.Context, blocks *blocking.Blocks, catalog *specs.Catalog, m Matcher, opts ...*Options) ([]Pair, error) {
	options := DefaultOptions()
	if len(opts) > 0 && opts[0] != nil {
		options = opts[0]
	}

	if options.Workers > 1 {
		return matchParallel(ctx, blocks, catalog, m, options.Workers)
	}
	return matchSerial(ctx, blocks, catalog, m)
}

func matchSerial(ctx context.Context, blocks *blocking.Blocks, catalog *specs.Catalog, m Matcher) ([]Pair, error) {
	var matches []Pair
	for _, key := range blocks.Keys() {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		matches = append(matches, matchBlock(blocks.Members(key), catalog, m)...)
	}
	return matches, nil
}

func matchParallel(ctx context.Context, blocks *blocking.Blocks, catalog *specs.Catalog, m Matcher, workers int) ([]Pair, error) {
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)

	var mu sync.Mutex
	var matches []Pair

	for _, key := range blocks.Keys() {
		members := blocks.Members(key)
		if len(members) < 2 {
			continue
		}
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			accepted := matchBlock(members, catalog, m)
			if len(accepted) == 0 {
				return nil
			}
			mu.Lock()
			matches = append(matches, accepted...)
			mu.Unlock()
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return matches, nil
}

// matchBlock tests all unordered pairs of one block's members. Workers
// share only the read-only catalog, so this needs no synchronization.
func matchBlock(ids []string, catalog *specs.Catalog, m Matcher) []Pair {
	var accepted []Pair
	for i := 0; i < len(ids); i++ {
		leftTitle, _ := catalog.Title(ids[i])
		for j := i + 1; j < len(ids); j++ {
			rightTitle, _ := catalog.Title(ids[j])
			if m.Match(leftTitle, rightTitle) {
				accepted = append(accepted, Pair{Left: ids[i], Right: ids[j]})
			}
		}
	}
	return accepted
}
