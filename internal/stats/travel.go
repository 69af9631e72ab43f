package stats

import (
	"fmt"

	"github.com/bsatish290/pdsnd-github/internal/dataset"
	"github.com/bsatish290/pdsnd-github/internal/model"
)

// TimeSummary holds the busiest month, weekday and start hour.
type TimeSummary struct {
	Month   Count[int]
	Weekday Count[int]
	Hour    Count[int]
	// ByHour counts trips per start hour 0-23.
	ByHour [24]int
}

// TravelTimes computes the most frequent month, weekday and hour over trips
// with a start time. ok is false when there are none.
func TravelTimes(ds *dataset.Dataset) (TimeSummary, bool) {
	months := make([]int, 0, ds.Len())
	days := make([]int, 0, ds.Len())
	hours := make([]int, 0, ds.Len())
	var sum TimeSummary
	for _, trip := range ds.Trips {
		if !trip.HasStartTime {
			continue
		}
		months = append(months, trip.Month)
		days = append(days, trip.Weekday)
		hours = append(hours, trip.Hour)
		if trip.Hour >= 0 && trip.Hour < len(sum.ByHour) {
			sum.ByHour[trip.Hour]++
		}
	}
	if len(months) == 0 {
		return TimeSummary{}, false
	}
	sum.Month, _ = Mode(months)
	sum.Weekday, _ = Mode(days)
	sum.Hour, _ = Mode(hours)
	return sum, true
}

// TimeLines renders the time-of-travel report body.
func TimeLines(cat model.Catalog, ds *dataset.Dataset) []string {
	if ds.Len() == 0 {
		return []string{noTrips}
	}
	sum, ok := TravelTimes(ds)
	if !ok {
		return []string{" No start time data to share."}
	}
	dayName, found := cat.DayName(fmt.Sprint(sum.Weekday.Value))
	if !found {
		dayName = fmt.Sprint(sum.Weekday.Value)
	}
	hourly := make([]float64, len(sum.ByHour))
	for i, n := range sum.ByHour {
		hourly[i] = float64(n)
	}
	return []string{
		fmt.Sprintf(" Most common month of travel is : %s with count : %d", cat.MonthName(sum.Month.Value), sum.Month.Count),
		fmt.Sprintf(" Most common travel day of week is : %s with count : %d", dayName, sum.Weekday.Count),
		fmt.Sprintf(" Most common travel start hour of day is : %d with count : %d", sum.Hour.Value, sum.Hour.Count),
		fmt.Sprintf(" Trips by start hour (00-23) : [%s]", Sparkline(hourly)),
	}
}
