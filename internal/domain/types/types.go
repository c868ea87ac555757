// Package types contains the read shapes returned across the API boundary.
package types

// VenueMatch is one venue that is open and serves the requested category.
type VenueMatch struct {
	Name      string   `json:"name"`
	OpenTime  string   `json:"open_time"`
	CloseTime string   `json:"close_time"`
	Foods     []string `json:"foods"`
}

// Recommendation is the response of a recommend call.
type Recommendation struct {
	Success         bool         `json:"success"`
	Recommendations []VenueMatch `json:"recommendations"`
	Count           int          `json:"count"`
}

// VenueListing describes a catalog venue for display.
type VenueListing struct {
	Name      string   `json:"name"`
	Foods     []string `json:"foods"`
	OpenDays  []string `json:"open_days"`
	OpenTime  string   `json:"open_time"`
	CloseTime string   `json:"close_time"`
}
