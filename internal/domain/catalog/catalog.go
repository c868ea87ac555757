// Package catalog holds the compiled-in venue list and synonym table.
//
// A Catalog never changes after construction. Every accessor hands out
// copies, so concurrent readers need no locking.
package catalog

import (
	"sort"
	"strings"

	"github.com/okian/campusdine/internal/domain/model"
)

// Desserts is served by every venue whenever it is open.
const Desserts = "Desserts"

// Catalog is an immutable set of venues plus the synonym table used to
// resolve informal food terms.
type Catalog struct {
	venues     []model.Venue
	synonyms   map[string]string
	categories []string            // sorted display names, Desserts included
	known      map[string]struct{} // lowercased category names
}

var reference = New(referenceVenues, referenceSynonyms)

// Default returns the reference catalog.
func Default() *Catalog {
	return reference
}

// New builds a Catalog from venues and synonyms. Inputs are copied; synonym
// keys are lowercased.
func New(venues []model.Venue, synonyms map[string]string) *Catalog {
	c := &Catalog{
		venues:   make([]model.Venue, len(venues)),
		synonyms: make(map[string]string, len(synonyms)),
		known:    map[string]struct{}{strings.ToLower(Desserts): {}},
	}

	display := map[string]struct{}{Desserts: {}}
	for i, v := range venues {
		c.venues[i] = v.Clone()
		for _, food := range v.Foods {
			display[food] = struct{}{}
			c.known[strings.ToLower(food)] = struct{}{}
		}
	}
	for term, category := range synonyms {
		c.synonyms[strings.ToLower(term)] = category
	}

	c.categories = make([]string, 0, len(display))
	for name := range display {
		c.categories = append(c.categories, name)
	}
	sort.Strings(c.categories)
	return c
}

// Venues returns the venues in declared order.
func (c *Catalog) Venues() []model.Venue {
	out := make([]model.Venue, len(c.venues))
	for i, v := range c.venues {
		out[i] = v.Clone()
	}
	return out
}

// Len returns the number of venues.
func (c *Catalog) Len() int { return len(c.venues) }

// Categories returns every served category plus Desserts, sorted.
func (c *Catalog) Categories() []string {
	return append([]string(nil), c.categories...)
}

// HasCategory reports whether lower is a known category name. The argument
// must already be lowercased.
func (c *Catalog) HasCategory(lower string) bool {
	_, ok := c.known[lower]
	return ok
}

// Synonym looks up an informal term. The argument must already be lowercased.
func (c *Catalog) Synonym(term string) (string, bool) {
	category, ok := c.synonyms[term]
	return category, ok
}

// SynonymTerms returns every synonym key, sorted.
func (c *Catalog) SynonymTerms() []string {
	terms := make([]string, 0, len(c.synonyms))
	for term := range c.synonyms {
		terms = append(terms, term)
	}
	sort.Strings(terms)
	return terms
}
