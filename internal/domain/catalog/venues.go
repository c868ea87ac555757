package catalog

import (
	"time"

	"github.com/okian/campusdine/internal/domain/model"
)

var weekdays = []time.Weekday{time.Monday, time.Tuesday, time.Wednesday, time.Thursday, time.Friday}

// referenceVenues is the compiled-in dining catalog. Order is significant:
// recommendations are emitted in this order.
var referenceVenues = []model.Venue{
	{
		Name:      "Earhart",
		Foods:     []string{"Pizza", "Burgers", "Salad", "Pasta"},
		OpenDays:  weekdays,
		OpenTime:  700,
		CloseTime: 2100,
	},
	{
		Name:      "Ford",
		Foods:     []string{"Vegan", "Vegetarian", "Stir Fry", "Soup"},
		OpenDays:  append(append([]time.Weekday(nil), weekdays...), time.Saturday, time.Sunday),
		OpenTime:  1100,
		CloseTime: 2000,
	},
	{
		Name:      "Wiley",
		Foods:     []string{"Pizza", "Wings", "Grill"},
		OpenDays:  append(append([]time.Weekday(nil), weekdays...), time.Saturday),
		OpenTime:  1700,
		CloseTime: 2200,
	},
	{
		Name:      "Windsor",
		Foods:     []string{"Burgers", "Tacos", "Salad", "Vegan"},
		OpenDays:  weekdays,
		OpenTime:  730,
		CloseTime: 1930,
	},
}
