package model

import (
	"path/filepath"
	"strings"
	"time"
)

// Time unit choices offered by the filter prompt.
const (
	TimeUnitMonth = "Month"
	TimeUnitDay   = "Day"
	TimeUnitNone  = "Nal"
)

// City maps a display name to its trip data file.
type City struct {
	Name string
	File string
}

// Weekday pairs a day key ("1" is Monday) with its abbreviation.
type Weekday struct {
	Key    string
	Abbrev string
}

// Catalog is the fixed set of cities and filter values. Build it once with
// NewCatalog and pass it to whatever needs it.
type Catalog struct {
	dataDir   string
	cities    []City
	timeUnits []string
	months    []string
	weekdays  []Weekday
}

// NewCatalog returns the catalog with data files resolved against dataDir.
func NewCatalog(dataDir string) Catalog {
	return Catalog{
		dataDir: dataDir,
		cities: []City{
			{Name: "Chicago", File: "chicago.csv"},
			{Name: "New York City", File: "new_york_city.csv"},
			{Name: "Washington", File: "washington.csv"},
		},
		timeUnits: []string{TimeUnitMonth, TimeUnitDay, TimeUnitNone},
		months:    []string{"January", "February", "March", "April", "May", "June"},
		weekdays: []Weekday{
			{Key: "1", Abbrev: "Mon"},
			{Key: "2", Abbrev: "Tue"},
			{Key: "3", Abbrev: "Wed"},
			{Key: "4", Abbrev: "Thur"},
			{Key: "5", Abbrev: "Fri"},
			{Key: "6", Abbrev: "Sat"},
			{Key: "7", Abbrev: "Sun"},
		},
	}
}

// DataDir returns the directory city files are resolved against.
func (c Catalog) DataDir() string {
	return c.dataDir
}

// Cities returns a copy of the known cities.
func (c Catalog) Cities() []City {
	return append([]City(nil), c.cities...)
}

// CityNames returns the display names of the known cities.
func (c Catalog) CityNames() []string {
	names := make([]string, len(c.cities))
	for i, city := range c.cities {
		names[i] = city.Name
	}
	return names
}

// City looks up a city by name, ignoring case and surrounding space.
func (c Catalog) City(name string) (City, bool) {
	name = strings.TrimSpace(name)
	for _, city := range c.cities {
		if strings.EqualFold(city.Name, name) {
			return city, true
		}
	}
	return City{}, false
}

// CityFile returns the resolved data file path for a city.
func (c Catalog) CityFile(name string) (string, bool) {
	city, ok := c.City(name)
	if !ok {
		return "", false
	}
	return filepath.Join(c.dataDir, city.File), true
}

// TimeUnits returns the valid time unit choices.
func (c Catalog) TimeUnits() []string {
	return append([]string(nil), c.timeUnits...)
}

// Months returns the month names that can be filtered on.
func (c Catalog) Months() []string {
	return append([]string(nil), c.months...)
}

// MonthNumber returns the 1-based position of month in the filterable months.
func (c Catalog) MonthNumber(month string) (int, bool) {
	month = strings.TrimSpace(month)
	for i, m := range c.months {
		if strings.EqualFold(m, month) {
			return i + 1, true
		}
	}
	return 0, false
}

// MonthName returns the English name of a 1-12 month number.
func (c Catalog) MonthName(n int) string {
	if n < 1 || n > 12 {
		return "Unknown"
	}
	return time.Month(n).String()
}

// DayKeys returns the valid weekday keys "1".."7".
func (c Catalog) DayKeys() []string {
	keys := make([]string, len(c.weekdays))
	for i, d := range c.weekdays {
		keys[i] = d.Key
	}
	return keys
}

// DayName returns the abbreviation for a weekday key.
func (c Catalog) DayName(key string) (string, bool) {
	key = strings.TrimSpace(key)
	for _, d := range c.weekdays {
		if d.Key == key {
			return d.Abbrev, true
		}
	}
	return "", false
}
