// Package recommend filters the venue catalog by food category and time of day.
package recommend

import (
	"slices"
	"strings"

	"github.com/okian/campusdine/internal/domain/catalog"
	"github.com/okian/campusdine/internal/domain/clock"
	"github.com/okian/campusdine/internal/domain/model"
	"github.com/okian/campusdine/internal/domain/types"
)

// VenueSource lists venues in catalog order.
type VenueSource interface {
	Venues() []model.Venue
}

// Normalizer resolves free text to a category.
type Normalizer interface {
	Normalize(input string) string
}

// Filter finds open venues serving a category. It is safe for concurrent use.
type Filter struct {
	venues     VenueSource
	normalizer Normalizer
}

// NewFilter creates a Filter.
func NewFilter(venues VenueSource, normalizer Normalizer) *Filter {
	return &Filter{venues: venues, normalizer: normalizer}
}

// Find normalizes preferredFood and returns matching venues open at
// currentTime (HHMM), in catalog order. The result is never nil.
func (f *Filter) Find(preferredFood string, currentTime int) []types.VenueMatch {
	return f.FindCategory(f.normalizer.Normalize(preferredFood), currentTime)
}

// FindCategory is Find for an already normalized category.
//
// Venue open days are not consulted: any venue inside its time window is
// treated as open.
func (f *Filter) FindCategory(category string, currentTime int) []types.VenueMatch {
	matches := make([]types.VenueMatch, 0)
	for _, v := range f.venues.Venues() {
		if !v.OpenAt(currentTime) {
			continue
		}

		available := append(slices.Clip(v.Foods), catalog.Desserts)
		if !serves(available, category) {
			continue
		}
		matches = append(matches, types.VenueMatch{
			Name:      v.Name,
			OpenTime:  clock.ToDisplay(v.OpenTime),
			CloseTime: clock.ToDisplay(v.CloseTime),
			Foods:     available,
		})
	}
	return matches
}

func serves(foods []string, category string) bool {
	for _, food := range foods {
		if strings.EqualFold(food, category) {
			return true
		}
	}
	return false
}
