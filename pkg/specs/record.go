// Package specs builds the in-memory catalog of product specification
// records that the resolution pipeline operates on. A record carries the
// source it came from, its number within that source, a catalog-wide
// unique spec id, and the lower-cased page title. The page title is the
// only attribute used for resolution; everything else in the source
// items is deliberately ignored.
package specs

import "strings"

// IDSeparator joins a source name and an item number into a spec id.
// It is guaranteed not to occur in either component.
const IDSeparator = "//"

// TitleAttribute is the key under which source items expose the page title.
const TitleAttribute = "<page title>"

// Record is one normalized product specification. Records are value
// objects: created once by the Builder and never mutated.
type Record struct {
	// Source is the catalog the record came from, e.g. "www.sourcea.com".
	Source string

	// Number is the record's number within its source, e.g. "42".
	Number string

	// ID is the catalog-wide unique spec id, Source + "//" + Number.
	ID string

	// Title is the lower-cased page title. Normalization is
	// lower-casing only; no stemming or punctuation stripping, since
	// richer normalization would silently change match semantics.
	Title string
}

// MakeID builds the spec id for a source name and item number.
func MakeID(source, number string) string {
	return source + IDSeparator + number
}

// Item is a raw source item as produced by the input boundary, before
// normalization. HasTitle is false when the source item lacks the page
// title attribute entirely (distinct from an empty title).
type Item struct {
	Source   string
	Number   string
	Title    string
	HasTitle bool
}

// NormalizeTitle applies the catalog's title normalization. Kept as a
// named function so the (intentionally minimal) rule is stated in one
// place.
func NormalizeTitle(title string) string {
	return strings.ToLower(title)
}
