// Package model defines shared data structures.
package model

import (
	"strconv"
	"time"
)

// Selection is the user's choice of city and optional time filter.
// Month and Day are empty when unset; at most one of them is set.
type Selection struct {
	City  string
	Month string
	Day   string
}

// HasFilter reports whether a month or day filter is active.
func (s Selection) HasFilter() bool {
	return s.Month != "" || s.Day != ""
}

// Trip is a single row of a city dataset.
type Trip struct {
	// Index is the 0-based position of the row among the file's data rows.
	Index int
	// Values holds the raw cells in header order.
	Values []string

	StartTime    time.Time
	HasStartTime bool
	EndTime      time.Time
	HasEndTime   bool
	StartStation string
	EndStation   string
	Duration     float64
	HasDuration  bool
	UserType     string
	Gender       string
	BirthYear    int
	HasBirthYear bool

	// Derived from StartTime at load. Zero when the start time is missing.
	Month   int
	Weekday int
	Hour    int
}

// DerivedColumns lists the names of the columns computed at load time.
var DerivedColumns = []string{"Month", "Day_of_week", "Hour"}

// DerivedValues returns the Month, Day_of_week and Hour cells. They are
// empty when the trip has no start time.
func (t Trip) DerivedValues() []string {
	if !t.HasStartTime {
		return []string{"", "", ""}
	}
	return []string{strconv.Itoa(t.Month), strconv.Itoa(t.Weekday), strconv.Itoa(t.Hour)}
}
