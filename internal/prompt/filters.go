package prompt

import (
	"fmt"
	"strings"

	"github.com/bsatish290/pdsnd-github/internal/model"
)

// CollectFilters asks for a city and an optional month or day filter.
func CollectFilters(c *Console, cat model.Catalog) (model.Selection, error) {
	var sel model.Selection
	if _, err := fmt.Fprintln(c.out, c.styles.Heading.Render("Hello! Let's explore some US bikeshare data!")); err != nil {
		return sel, err
	}

	cityMessage := fmt.Sprintf("Select the city for which you would like to see the data --> %s : ",
		strings.Join(cat.CityNames(), ", "))
	unitMessage := "Would you like to filter by Month, Day or Not at All? Type 'NAL' if no time filters are needed : "
	monthMessage := fmt.Sprintf("Please enter the complete month name from -> %s : ", strings.Join(cat.Months(), ", "))
	dayMessage := "Please enter the day of the week as a number : (1, Monday) , (2, Tuesday) . . : "

	city, err := c.Ask(cityMessage, "city", cat.CityNames())
	if err != nil {
		return sel, err
	}
	sel.City = city

	unit, err := c.Ask(unitMessage, "time unit", cat.TimeUnits())
	if err != nil {
		return sel, err
	}
	switch TitleCase(unit) {
	case model.TimeUnitMonth:
		if sel.Month, err = c.Ask(monthMessage, "month", cat.Months()); err != nil {
			return sel, err
		}
	case model.TimeUnitDay:
		if sel.Day, err = c.Ask(dayMessage, "day", cat.DayKeys()); err != nil {
			return sel, err
		}
	}

	if _, err := fmt.Fprintln(c.out, c.styles.Separator()); err != nil {
		return sel, err
	}
	return sel, nil
}
