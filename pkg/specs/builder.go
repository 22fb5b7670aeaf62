package specs

import (
	"github.com/transactionalblog/sigmod-contest-2020/pkg/errors"
	"github.com/transactionalblog/sigmod-contest-2020/pkg/logging"
)

// Builder accumulates records into a Catalog. Records are kept in
// insertion order; spec id uniqueness is enforced on every Add.
type Builder struct {
	records []Record
	index   map[string]int
	skipped int
}

// NewBuilder creates an empty catalog builder.
func NewBuilder() *Builder {
	return &Builder{
		index: make(map[string]int),
	}
}

// Add normalizes a raw title and appends a record for it. The returned
// error is non-nil only for a duplicate spec id, which is fatal: two
// items with the same id mean the input source is corrupt.
func (b *Builder) Add(source, number, title string) error {
	id := MakeID(source, number)
	if _, exists := b.index[id]; exists {
		return errors.NewDuplicateIDError(id, source, number)
	}

	b.index[id] = len(b.records)
	b.records = append(b.records, Record{
		Source: source,
		Number: number,
		ID:     id,
		Title:  NormalizeTitle(title),
	})
	return nil
}

// AddItem consumes one raw source item. A missing title surfaces as a
// MissingAttributeError so the caller can apply the skip policy;
// duplicate ids always abort.
func (b *Builder) AddItem(item Item) error {
	if !item.HasTitle {
		return errors.NewMissingAttributeError(item.Source, item.Number, TitleAttribute)
	}
	return b.Add(item.Source, item.Number, item.Title)
}

// SkipMissing records that a source item lacked the title attribute.
// The drop is counted and surfaced on the built catalog.
func (b *Builder) SkipMissing(source, number string) {
	b.skipped++
	logging.Warn().
		Err(errors.NewMissingAttributeError(source, number, TitleAttribute)).
		Str("spec_id", MakeID(source, number)).
		Msg("Skipping item without page title")
}

// Catalog freezes the accumulated records. The builder may not be
// reused afterwards.
func (b *Builder) Catalog() *Catalog {
	c := &Catalog{
		records: b.records,
		index:   b.index,
		skipped: b.skipped,
	}
	b.records = nil
	b.index = nil
	return c
}

// Build constructs a catalog directly from raw source items. Per-record
// errors are skipped with a counted warning; anything else aborts.
func Build(items []Item) (*Catalog, error) {
	b := NewBuilder()
	for _, item := range items {
		err := b.AddItem(item)
		if err == nil {
			continue
		}
		if !errors.Skippable(err) {
			return nil, err
		}
		b.SkipMissing(item.Source, item.Number)
	}
	return b.Catalog(), nil
}

// Catalog is the ordered, immutable record set produced by a Builder.
type Catalog struct {
	records []Record
	index   map[string]int
	skipped int
}

// Records returns the records in insertion order. Callers must not
// modify the returned slice.
func (c *Catalog) Records() []Record {
	return c.records
}

// Len returns the number of records in the catalog.
func (c *Catalog) Len() int {
	return len(c.records)
}

// Skipped returns how many source items were dropped for lacking the
// title attribute.
func (c *Catalog) Skipped() int {
	return c.skipped
}

// Lookup returns the record with the given spec id.
func (c *Catalog) Lookup(id string) (Record, bool) {
	i, ok := c.index[id]
	if !ok {
		return Record{}, false
	}
	return c.records[i], true
}

// Title returns the normalized title for a spec id.
func (c *Catalog) Title(id string) (string, bool) {
	rec, ok := c.Lookup(id)
	return rec.Title, ok
}
