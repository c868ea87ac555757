// Package normalize maps free-text food preferences onto catalog categories.
package normalize

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"golang.org/x/text/unicode/norm"
)

// Kind reports which rule resolved an input.
type Kind string

const (
	// KindCategory means the input named a known category directly.
	KindCategory Kind = "category"
	// KindSynonym means the input was found in the synonym table.
	KindSynonym Kind = "synonym"
	// KindPassthrough means the input was unknown and returned capitalized.
	KindPassthrough Kind = "passthrough"
)

// Lookup is the slice of the catalog the normalizer reads.
type Lookup interface {
	HasCategory(lower string) bool
	Synonym(term string) (string, bool)
}

// Normalizer resolves user text to a category. It holds no mutable state.
type Normalizer struct {
	lookup Lookup
}

// New creates a Normalizer over lookup.
func New(lookup Lookup) *Normalizer {
	return &Normalizer{lookup: lookup}
}

// Normalize returns the category for input. It never fails: unknown input
// comes back capitalized.
func (n *Normalizer) Normalize(input string) string {
	out, _ := n.Resolve(input)
	return out
}

// Resolve is Normalize plus the rule that produced the result.
//
// A direct category match only capitalizes the first letter, so "stir fry"
// becomes "Stir fry" while the synonym table yields "Stir Fry". Matching
// downstream is case-insensitive, so both select the same venues.
func (n *Normalizer) Resolve(input string) (string, Kind) {
	key := Key(input)
	if n.lookup.HasCategory(key) {
		return Capitalize(key), KindCategory
	}
	if category, ok := n.lookup.Synonym(key); ok {
		return category, KindSynonym
	}
	return Capitalize(input), KindPassthrough
}

// Key folds input into the form used for lookups: NFKC, trimmed, lowercase.
func Key(input string) string {
	return strings.ToLower(strings.TrimSpace(norm.NFKC.String(input)))
}

// Capitalize upper-cases the first rune of s and lower-cases the rest.
func Capitalize(s string) string {
	if s == "" {
		return s
	}
	r, size := utf8.DecodeRuneInString(s)
	return string(unicode.ToTitle(r)) + strings.ToLower(s[size:])
}
