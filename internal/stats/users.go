package stats

import (
	"fmt"

	"github.com/bsatish290/pdsnd-github/internal/dataset"
)

const genderMissing = "Not available"

// BirthYears holds the birth year extremes and mode.
type BirthYears struct {
	Earliest int
	Latest   int
	Common   Count[int]
}

// UserSummary holds rider demographics.
type UserSummary struct {
	UserTypes []Count[string]
	// Genders is nil when the dataset has no gender column.
	Genders []Count[string]
	// Births is nil when the dataset has no birth year values.
	Births *BirthYears
}

// UserBreakdown counts user types and genders and summarizes birth years.
func UserBreakdown(ds *dataset.Dataset) UserSummary {
	userTypes := make([]string, 0, ds.Len())
	for _, trip := range ds.Trips {
		if trip.UserType == "" {
			continue
		}
		userTypes = append(userTypes, trip.UserType)
	}
	sum := UserSummary{UserTypes: ValueCounts(userTypes)}

	if ds.HasGender {
		genders := make([]string, 0, ds.Len())
		for _, trip := range ds.Trips {
			g := trip.Gender
			if g == "" {
				g = genderMissing
			}
			genders = append(genders, g)
		}
		sum.Genders = ValueCounts(genders)
	}

	if ds.HasBirthYear {
		years := make([]int, 0, ds.Len())
		for _, trip := range ds.Trips {
			if trip.HasBirthYear {
				years = append(years, trip.BirthYear)
			}
		}
		if lo, hi, ok := MinMax(years); ok {
			common, _ := Mode(years)
			sum.Births = &BirthYears{Earliest: lo, Latest: hi, Common: common}
		}
	}
	return sum
}

// UserLines renders the user report body.
func UserLines(ds *dataset.Dataset) []string {
	if ds.Len() == 0 {
		return []string{noTrips}
	}
	sum := UserBreakdown(ds)

	lines := []string{" The distribution of different user types is :"}
	lines = append(lines, countTable("User Type", sum.UserTypes)...)
	lines = append(lines, "")

	if ds.HasGender {
		lines = append(lines, " The distribution of Gender is :")
		lines = append(lines, countTable("Gender", sum.Genders)...)
		lines = append(lines, "")
	} else {
		lines = append(lines, " No gender data to display.")
	}

	if sum.Births != nil {
		lines = append(lines,
			fmt.Sprintf(" The most recent year of birth is : %d", sum.Births.Latest),
			fmt.Sprintf(" The earliest year of birth is : %d", sum.Births.Earliest),
			fmt.Sprintf(" The most common year of birth is : %d", sum.Births.Common.Value),
		)
	} else {
		lines = append(lines, " No birth year data to display.")
	}
	return lines
}

func countTable(label string, counts []Count[string]) []string {
	rows := make([][]string, 0, len(counts))
	for _, c := range counts {
		rows = append(rows, []string{c.Value, fmt.Sprintf("%d", c.Count)})
	}
	lines := FormatTable([]string{label, "Count"}, rows, map[int]bool{1: true})
	for i, line := range lines {
		lines[i] = "   " + line
	}
	return lines
}
