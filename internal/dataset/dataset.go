// Package dataset loads city trip files and applies time filters.
package dataset

import (
	"errors"

	"github.com/bsatish290/pdsnd-github/internal/model"
)

// Source column names.
const (
	ColStartTime    = "Start Time"
	ColEndTime      = "End Time"
	ColDuration     = "Trip Duration"
	ColStartStation = "Start Station"
	ColEndStation   = "End Station"
	ColUserType     = "User Type"
	ColGender       = "Gender"
	ColBirthYear    = "Birth Year"
)

var requiredColumns = []string{
	ColStartTime,
	ColEndTime,
	ColStartStation,
	ColEndStation,
	ColDuration,
	ColUserType,
}

var (
	// ErrUnknownCity is returned when a selection names a city outside the catalog.
	ErrUnknownCity = errors.New("unknown city")
	// ErrMissingColumn is returned when a file lacks a required column.
	ErrMissingColumn = errors.New("missing column")
	// ErrUnknownMonth is returned for a month outside the filterable months.
	ErrUnknownMonth = errors.New("unknown month")
	// ErrInvalidDay is returned for a day key outside "1".."7".
	ErrInvalidDay = errors.New("invalid day")
)

// Dataset is the loaded, possibly filtered, trip table for one city.
type Dataset struct {
	City         string
	Header       []string
	Trips        []model.Trip
	HasGender    bool
	HasBirthYear bool
}

// Len returns the number of trips.
func (d *Dataset) Len() int {
	return len(d.Trips)
}

// Columns returns the source header followed by the derived columns.
func (d *Dataset) Columns() []string {
	cols := make([]string, 0, len(d.Header)+len(model.DerivedColumns))
	cols = append(cols, d.Header...)
	return append(cols, model.DerivedColumns...)
}

// Filter returns a dataset holding the trips that satisfy keep, in their
// original order. The receiver is left untouched.
func (d *Dataset) Filter(keep func(model.Trip) bool) *Dataset {
	out := &Dataset{
		City:         d.City,
		Header:       d.Header,
		HasGender:    d.HasGender,
		HasBirthYear: d.HasBirthYear,
		Trips:        make([]model.Trip, 0, len(d.Trips)),
	}
	for _, trip := range d.Trips {
		if keep(trip) {
			out.Trips = append(out.Trips, trip)
		}
	}
	return out
}

// ByMonth keeps trips that started in the given month (1-12). Trips without
// a start time never match.
func ByMonth(month int) func(model.Trip) bool {
	return func(t model.Trip) bool { return t.HasStartTime && t.Month == month }
}

// ByWeekday keeps trips that started on the given weekday (1 is Monday).
func ByWeekday(day int) func(model.Trip) bool {
	return func(t model.Trip) bool { return t.HasStartTime && t.Weekday == day }
}
