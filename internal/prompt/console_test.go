package prompt

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bsatish290/pdsnd-github/internal/model"
	"github.com/bsatish290/pdsnd-github/internal/style"
)

func newTestConsole(input string) (*Console, *bytes.Buffer) {
	var out bytes.Buffer
	return NewConsole(strings.NewReader(input), &out, style.Plain()), &out
}

func TestAskRetriesUntilValid(t *testing.T) {
	c, out := newTestConsole("boston\n\nCHICAGO\n")

	got, err := c.Ask("city? ", "city", []string{"Chicago", "New York City"})
	require.NoError(t, err)
	assert.Equal(t, "CHICAGO", got)
	assert.Equal(t, 3, strings.Count(out.String(), "city? "))
	assert.Equal(t, 2, strings.Count(out.String(), "Sorry, that was an incorrect city. Try again."))
}

func TestAskMatchesMultiWordNames(t *testing.T) {
	c, _ := newTestConsole("  new YORK city  \n")

	got, err := c.Ask("city? ", "city", []string{"Chicago", "New York City"})
	require.NoError(t, err)
	assert.Equal(t, "new YORK city", got)
}

func TestAskNeverReturnsInvalidValue(t *testing.T) {
	valid := []string{"Month", "Day", "Nal"}
	inputs := []string{"nal", "NAL", "month", "dAy", "weekly", "", "12", "Day"}
	c, _ := newTestConsole(strings.Join(inputs, "\n") + "\n")

	for {
		got, err := c.Ask("unit? ", "time unit", valid)
		if err != nil {
			assert.ErrorIs(t, err, ErrInputClosed)
			break
		}
		assert.Contains(t, valid, TitleCase(got))
	}
}

func TestAskInputClosed(t *testing.T) {
	c, _ := newTestConsole("nope\n")

	_, err := c.Ask("city? ", "city", []string{"Chicago"})
	assert.ErrorIs(t, err, ErrInputClosed)
}

func TestConfirm(t *testing.T) {
	c, _ := newTestConsole("YES\nyes please\n")

	ok, err := c.Confirm("again? ")
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = c.Confirm("again? ")
	require.NoError(t, err)
	assert.False(t, ok)

	ok, err = c.Confirm("again? ")
	require.NoError(t, err)
	assert.False(t, ok, "end of input counts as no")
}

func TestTitleCase(t *testing.T) {
	assert.Equal(t, "New York City", TitleCase("nEW yORK cITY"))
	assert.Equal(t, "Nal", TitleCase("NAL"))
	assert.Equal(t, "3", TitleCase("3"))
}

func TestCollectFiltersMonth(t *testing.T) {
	c, out := newTestConsole("chicago\nmonth\nfeb\nFebruary\n")

	sel, err := CollectFilters(c, model.NewCatalog("."))
	require.NoError(t, err)
	assert.Equal(t, model.Selection{City: "chicago", Month: "February"}, sel)
	assert.Contains(t, out.String(), "incorrect month")
	assert.Contains(t, out.String(), strings.Repeat("-", 40))
}

func TestCollectFiltersDay(t *testing.T) {
	c, _ := newTestConsole("washington\nDAY\n0\n8\n3\n")

	sel, err := CollectFilters(c, model.NewCatalog("."))
	require.NoError(t, err)
	assert.Equal(t, model.Selection{City: "washington", Day: "3"}, sel)
}

func TestCollectFiltersNone(t *testing.T) {
	c, _ := newTestConsole("New York City\nnal\n")

	sel, err := CollectFilters(c, model.NewCatalog("."))
	require.NoError(t, err)
	assert.Equal(t, "New York City", sel.City)
	assert.False(t, sel.HasFilter())
}
