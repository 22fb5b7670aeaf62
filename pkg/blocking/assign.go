package blocking

import (
	"sort"
	"strings"

	"github.com/transactionalblog/sigmod-contest-2020/pkg/specs"
)

// Assigner maps a normalized title to its blocking key. Implementations
// must be deterministic: the same title and vocabulary always yield the
// same key. The interface exists so the linear scan below can be
// replaced by an indexed implementation (e.g. a trie over the key
// vocabulary) without touching callers.
type Assigner interface {
	// Assign returns the first vocabulary key, in vocabulary
	// enumeration order, that occurs as a substring of the title.
	// ok is false when no key matches; such records join no block.
	Assign(title string) (key string, ok bool)
}

// scanAssigner tests every vocabulary key by substring containment.
// Cost is records x vocabulary in the worst case, which in practice
// dominates the blocking stage since the vocabulary can approach the
// record count.
type scanAssigner struct {
	keys []string
}

// NewScanAssigner creates the linear-scan Assigner over a vocabulary.
func NewScanAssigner(v *Vocabulary) Assigner {
	return &scanAssigner{keys: v.Keys()}
}

// Assign implements Assigner. Keys are tested by containment rather
// than prefix equality, so a title may satisfy several keys; the first
// one in vocabulary order wins. That tie-break is deliberate and part
// of the contract: reordering the vocabulary changes the partition.
func (a *scanAssigner) Assign(title string) (string, bool) {
	for _, key := range a.keys {
		if strings.Contains(title, key) {
			return key, true
		}
	}
	return "", false
}

// Blocks is the partition of a catalog by blocking key. Every record
// appears in exactly one block or is counted unassigned; no record
// appears twice.
type Blocks struct {
	keys       []string            // keys with at least one member, sorted
	members    map[string][]string // key -> spec ids in catalog order
	assigned   int
	unassigned int
}

// Partition assigns every catalog record to at most one block.
func Partition(c *specs.Catalog, a Assigner) *Blocks {
	b := &Blocks{
		members: make(map[string][]string),
	}
	for _, rec := range c.Records() {
		key, ok := a.Assign(rec.Title)
		if !ok {
			b.unassigned++
			continue
		}
		b.members[key] = append(b.members[key], rec.ID)
		b.assigned++
	}

	b.keys = make([]string, 0, len(b.members))
	for key := range b.members {
		b.keys = append(b.keys, key)
	}
	sort.Strings(b.keys)
	return b
}

// Keys returns the keys of all non-empty blocks in lexicographic order.
func (b *Blocks) Keys() []string {
	return b.keys
}

// Members returns the spec ids assigned to a key, in catalog order.
func (b *Blocks) Members(key string) []string {
	return b.members[key]
}

// Len returns the number of non-empty blocks.
func (b *Blocks) Len() int {
	return len(b.keys)
}

// Assigned returns the number of records placed into a block.
func (b *Blocks) Assigned() int {
	return b.assigned
}

// Unassigned returns the number of records that matched no key. They
// participate in no candidate pair.
func (b *Blocks) Unassigned() int {
	return b.unassigned
}

// CandidatePairs returns the total number of unordered in-block pairs
// the matcher will enumerate.
func (b *Blocks) CandidatePairs() int {
	total := 0
	for _, ids := range b.members {
		n := len(ids)
		total += n * (n - 1) / 2
	}
	return total
}
