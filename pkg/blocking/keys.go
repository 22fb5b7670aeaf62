// Package blocking partitions the spec catalog into blocks before
// pairwise comparison. A vocabulary of blocking keys is derived from
// the records themselves; every record is then assigned to at most one
// block by substring containment. Blocking exists purely to bound the
// quadratic comparison cost of matching, at the price of missed matches
// across blocks: a richer key space means smaller blocks and lower
// recall, a coarser one the opposite.
package blocking

import (
	"fmt"
	"sort"

	"github.com/transactionalblog/sigmod-contest-2020/pkg/errors"
	"github.com/transactionalblog/sigmod-contest-2020/pkg/logging"
	"github.com/transactionalblog/sigmod-contest-2020/pkg/specs"
)

// DefaultKeyLength is the conventional blocking key length: the first
// three characters of the page title.
const DefaultKeyLength = 3

// KeyFunc derives one candidate blocking key from a normalized title.
// A ShortTitleError-kind failure marks the record as unable to
// contribute a key; the record still participates in assignment.
type KeyFunc func(title string) (string, error)

// PrefixKey returns a KeyFunc taking the first length characters of the
// title. Lengths are counted in runes so multi-byte titles don't yield
// truncated UTF-8. length must be positive.
func PrefixKey(length int) KeyFunc {
	if length < 1 {
		panic("blocking: key length must be positive")
	}
	return func(title string) (string, error) {
		runes := []rune(title)
		if len(runes) < length {
			return "", errors.NewShortTitleError("", title, length)
		}
		return string(runes[:length]), nil
	}
}

// Vocabulary is the deduplicated set of blocking keys for one run.
// Enumeration order is lexicographic; that order is part of the
// assignment contract, because a title containing several keys is
// assigned to the first one tested.
type Vocabulary struct {
	keys []string
}

// NewVocabulary builds a vocabulary from raw keys, collapsing
// duplicates and fixing the enumeration order.
func NewVocabulary(keys []string) *Vocabulary {
	seen := make(map[string]struct{}, len(keys))
	unique := make([]string, 0, len(keys))
	for _, k := range keys {
		if _, dup := seen[k]; dup {
			continue
		}
		seen[k] = struct{}{}
		unique = append(unique, k)
	}
	sort.Strings(unique)
	return &Vocabulary{keys: unique}
}

// ExtractKeys derives the vocabulary for a catalog: one candidate key
// per record. Records whose title is too short for the key rule are
// skipped with a counted warning; the second return value is the number
// of such records. Any other KeyFunc failure aborts extraction.
func ExtractKeys(c *specs.Catalog, fn KeyFunc) (*Vocabulary, int, error) {
	keys := make([]string, 0, c.Len())
	skipped := 0
	for _, rec := range c.Records() {
		key, err := fn(rec.Title)
		if err != nil {
			if !errors.Skippable(err) {
				return nil, 0, fmt.Errorf("derive blocking key for %s: %w", rec.ID, err)
			}
			skipped++
			logging.Warn().
				Str("spec_id", rec.ID).
				Str("title", rec.Title).
				Msg("Title contributes no blocking key")
			continue
		}
		keys = append(keys, key)
	}
	return NewVocabulary(keys), skipped, nil
}

// Keys returns the vocabulary in enumeration order. Callers must not
// modify the returned slice.
func (v *Vocabulary) Keys() []string {
	return v.keys
}

// Len returns the vocabulary size.
func (v *Vocabulary) Len() int {
	return len(v.keys)
}
