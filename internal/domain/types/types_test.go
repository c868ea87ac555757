package types_test

import (
	"encoding/json"
	"testing"

	types "github.com/okian/campusdine/internal/domain/types"
	. "github.com/smartystreets/goconvey/convey"
)

func TestRecommendationWireShape(t *testing.T) {
	Convey("Given a recommendation with one match", t, func() {
		rec := types.Recommendation{
			Success: true,
			Recommendations: []types.VenueMatch{{
				Name:      "Wiley",
				OpenTime:  "5:00 PM",
				CloseTime: "10:00 PM",
				Foods:     []string{"Pizza", "Wings", "Grill", "Desserts"},
			}},
			Count: 1,
		}

		Convey("When encoded as JSON", func() {
			raw, err := json.Marshal(rec)
			So(err, ShouldBeNil)

			Convey("Then it should use the snake_case field names clients read", func() {
				body := string(raw)
				So(body, ShouldContainSubstring, `"success":true`)
				So(body, ShouldContainSubstring, `"count":1`)
				So(body, ShouldContainSubstring, `"open_time":"5:00 PM"`)
				So(body, ShouldContainSubstring, `"close_time":"10:00 PM"`)
				So(body, ShouldContainSubstring, `"foods":["Pizza","Wings","Grill","Desserts"]`)
			})
		})
	})

	Convey("Given an empty recommendation list", t, func() {
		rec := types.Recommendation{Success: true, Recommendations: []types.VenueMatch{}}

		Convey("Then it should encode as an empty array rather than null", func() {
			raw, err := json.Marshal(rec)
			So(err, ShouldBeNil)
			So(string(raw), ShouldContainSubstring, `"recommendations":[]`)
		})
	})
}

func TestVenueListingWireShape(t *testing.T) {
	Convey("Given a venue listing", t, func() {
		l := types.VenueListing{
			Name:      "Ford",
			Foods:     []string{"Soup"},
			OpenDays:  []string{"Monday"},
			OpenTime:  "11:00 AM",
			CloseTime: "8:00 PM",
		}

		Convey("Then open days should be encoded by name", func() {
			raw, err := json.Marshal(l)
			So(err, ShouldBeNil)
			So(string(raw), ShouldContainSubstring, `"open_days":["Monday"]`)
		})
	})
}
