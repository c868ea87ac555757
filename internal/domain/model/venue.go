// Package model contains domain models passed between layers.
package model

import "time"

// Venue is a dining location with a fixed daily serving window.
// Times are HHMM integers on a 24-hour scale; CloseTime is on the same day
// as OpenTime.
type Venue struct {
	Name      string         // unique key
	Foods     []string       // served categories, in declared order
	OpenDays  []time.Weekday // listed for display only
	OpenTime  int
	CloseTime int
}

// OpenAt reports whether t falls inside the serving window. Both bounds count
// as open.
func (v Venue) OpenAt(t int) bool {
	return v.OpenTime <= t && t <= v.CloseTime
}

// Clone returns a copy that shares no slices with v.
func (v Venue) Clone() Venue {
	out := v
	out.Foods = append([]string(nil), v.Foods...)
	out.OpenDays = append([]time.Weekday(nil), v.OpenDays...)
	return out
}

// Query carries the raw inputs of one recommendation request.
type Query struct {
	FoodText string
	TimeText string
}
