package probe

import (
	"github.com/google/uuid"
	"github.com/okian/campusdine/internal/domain/catalog"
	"github.com/okian/campusdine/internal/domain/clock"
	"github.com/okian/campusdine/internal/domain/normalize"
	"github.com/okian/campusdine/internal/domain/recommend"
	"github.com/okian/campusdine/internal/domain/types"
)

// unknownFoods exercise the passthrough path; they must never match.
var unknownFoods = []string{"sushi", "Ramen Noodles"}

// BuildGrid crosses every category, synonym term and a few unknown foods
// with a time every stepMinutes across the day. Each probe carries the
// venues the local filter returns for it.
func BuildGrid(c *catalog.Catalog, stepMinutes int) []Probe {
	if stepMinutes <= 0 {
		stepMinutes = DefaultStepMinutes
	}

	foods := append(c.Categories(), c.SynonymTerms()...)
	foods = append(foods, unknownFoods...)

	times := make([]int, 0, minutesPerDay/stepMinutes+1)
	for m := 0; m < minutesPerDay; m += stepMinutes {
		times = append(times, (m/60)*100+m%60)
	}

	filter := recommend.NewFilter(c, normalize.New(c))
	probes := make([]Probe, 0, len(foods)*len(times))
	for _, food := range foods {
		for _, t := range times {
			probes = append(probes, Probe{
				ID:       uuid.NewString(),
				Food:     food,
				Time:     clock.ToDisplay(t),
				Expected: venueNames(filter.Find(food, t)),
			})
		}
	}
	return probes
}

func venueNames(matches []types.VenueMatch) []string {
	out := make([]string, 0, len(matches))
	for _, m := range matches {
		out = append(out, m.Name)
	}
	return out
}
