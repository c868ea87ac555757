package catalog_test

import (
	"testing"
	"time"

	"github.com/okian/campusdine/internal/domain/catalog"
	"github.com/okian/campusdine/internal/domain/model"
	. "github.com/smartystreets/goconvey/convey"
)

func TestDefaultCatalog(t *testing.T) {
	Convey("Given the reference catalog", t, func() {
		c := catalog.Default()

		Convey("Then venues should come back in declared order", func() {
			names := []string{}
			for _, v := range c.Venues() {
				names = append(names, v.Name)
			}
			So(names, ShouldResemble, []string{"Earhart", "Ford", "Wiley", "Windsor"})
			So(c.Len(), ShouldEqual, 4)
		})

		Convey("And categories should be the sorted union plus Desserts", func() {
			So(c.Categories(), ShouldResemble, []string{
				"Burgers", "Desserts", "Grill", "Pasta", "Pizza", "Salad",
				"Soup", "Stir Fry", "Tacos", "Vegan", "Vegetarian", "Wings",
			})
		})

		Convey("And known categories should be matched by lowercase name", func() {
			So(c.HasCategory("stir fry"), ShouldBeTrue)
			So(c.HasCategory("desserts"), ShouldBeTrue)
			So(c.HasCategory("Pizza"), ShouldBeFalse)
			So(c.HasCategory("sushi"), ShouldBeFalse)
		})

		Convey("And synonyms should resolve many-to-one", func() {
			for _, term := range []string{"cake", "ice cream", "sweets", "dessert"} {
				got, ok := c.Synonym(term)
				So(ok, ShouldBeTrue)
				So(got, ShouldEqual, "Desserts")
			}
			got, ok := c.Synonym("stir-fry")
			So(ok, ShouldBeTrue)
			So(got, ShouldEqual, "Stir Fry")

			_, ok = c.Synonym("sushi")
			So(ok, ShouldBeFalse)
		})

		Convey("And synonym terms should be listed sorted", func() {
			terms := c.SynonymTerms()
			So(len(terms), ShouldBeGreaterThan, 40)
			So(terms[0], ShouldEqual, "brownie")
			So(terms, ShouldContain, "chicken wings")
		})

		Convey("And open days should be kept per venue", func() {
			venues := c.Venues()
			So(venues[0].OpenDays, ShouldHaveLength, 5)
			So(venues[1].OpenDays, ShouldHaveLength, 7)
			So(venues[2].OpenDays, ShouldHaveLength, 6)
			So(venues[2].OpenDays, ShouldContain, time.Saturday)
			So(venues[2].OpenDays, ShouldNotContain, time.Sunday)
		})
	})
}

func TestCatalogImmutability(t *testing.T) {
	Convey("Given the reference catalog", t, func() {
		c := catalog.Default()

		Convey("When a caller mutates returned slices", func() {
			venues := c.Venues()
			venues[0].Foods[0] = "Sushi"
			venues[0].Name = "Renamed"
			cats := c.Categories()
			cats[0] = "Sushi"

			Convey("Then the catalog should be unaffected", func() {
				again := c.Venues()
				So(again[0].Name, ShouldEqual, "Earhart")
				So(again[0].Foods[0], ShouldEqual, "Pizza")
				So(c.Categories()[0], ShouldEqual, "Burgers")
			})
		})
	})

	Convey("Given a catalog built from caller-owned data", t, func() {
		venues := []model.Venue{{Name: "Test", Foods: []string{"Ramen"}, OpenTime: 900, CloseTime: 1700}}
		synonyms := map[string]string{"Noodle Soup": "Ramen"}
		c := catalog.New(venues, synonyms)

		Convey("When the caller mutates its inputs afterwards", func() {
			venues[0].Foods[0] = "Sushi"
			synonyms["noodle soup"] = "Sushi"

			Convey("Then the catalog should keep its own copy", func() {
				So(c.Venues()[0].Foods, ShouldResemble, []string{"Ramen"})
				got, ok := c.Synonym("noodle soup")
				So(ok, ShouldBeTrue)
				So(got, ShouldEqual, "Ramen")
				So(c.Categories(), ShouldResemble, []string{"Desserts", "Ramen"})
			})
		})
	})
}
