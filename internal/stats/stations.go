package stats

import (
	"fmt"

	"github.com/bsatish290/pdsnd-github/internal/dataset"
)

// StationSummary holds the busiest start station, end station and trip.
type StationSummary struct {
	Start Count[string]
	End   Count[string]
	Trip  Count[string]
}

// TripLabel formats a start/end station pair.
func TripLabel(from, to string) string {
	return fmt.Sprintf("FROM : [%s] TO : [%s]", from, to)
}

// PopularStations computes the most frequent stations and station pair,
// ignoring empty station cells. ok is false for an empty dataset.
func PopularStations(ds *dataset.Dataset) (StationSummary, bool) {
	if ds.Len() == 0 {
		return StationSummary{}, false
	}
	starts := make([]string, 0, ds.Len())
	ends := make([]string, 0, ds.Len())
	trips := make([]string, 0, ds.Len())
	for _, trip := range ds.Trips {
		if trip.StartStation != "" {
			starts = append(starts, trip.StartStation)
		}
		if trip.EndStation != "" {
			ends = append(ends, trip.EndStation)
		}
		if trip.StartStation != "" && trip.EndStation != "" {
			trips = append(trips, TripLabel(trip.StartStation, trip.EndStation))
		}
	}
	var sum StationSummary
	sum.Start, _ = Mode(starts)
	sum.End, _ = Mode(ends)
	sum.Trip, _ = Mode(trips)
	return sum, true
}

// StationLines renders the station report body.
func StationLines(ds *dataset.Dataset) []string {
	sum, ok := PopularStations(ds)
	if !ok {
		return []string{noTrips}
	}
	return []string{
		fmt.Sprintf(" Most common start station is : '%s' with count : %d", sum.Start.Value, sum.Start.Count),
		fmt.Sprintf(" Most common end station is : '%s' with count : %d", sum.End.Value, sum.End.Count),
		fmt.Sprintf(" Most frequent combination of starting and ending stations is : '%s' with count : %d", sum.Trip.Value, sum.Trip.Count),
	}
}
