package stats

import (
	"fmt"

	"github.com/bsatish290/pdsnd-github/internal/dataset"
)

// DurationSummary holds total and mean trip duration, rounded to 3 places.
type DurationSummary struct {
	TotalHours  float64
	MeanMinutes float64
	// Trips is the number of trips with a duration value.
	Trips int
}

// TripDurations sums and averages the trip durations. Empty cells are
// skipped; negative or zero values are used as they are.
func TripDurations(ds *dataset.Dataset) DurationSummary {
	var total float64
	var n int
	for _, trip := range ds.Trips {
		if !trip.HasDuration {
			continue
		}
		total += trip.Duration
		n++
	}
	sum := DurationSummary{
		TotalHours: Round3(total / 3600),
		Trips:      n,
	}
	if n > 0 {
		sum.MeanMinutes = Round3(total / float64(n) / 60)
	}
	return sum
}

// DurationLines renders the trip duration report body.
func DurationLines(ds *dataset.Dataset) []string {
	if ds.Len() == 0 {
		return []string{noTrips}
	}
	sum := TripDurations(ds)
	mean := "n/a"
	if sum.Trips > 0 {
		mean = FormatDecimal(sum.MeanMinutes)
	}
	return []string{
		fmt.Sprintf(" Total duration of all trips in hours is : %s", FormatDecimal(sum.TotalHours)),
		fmt.Sprintf(" Average duration of all trips in minutes is : %s", mean),
	}
}
