package pager

import (
	"bytes"
	"fmt"
	"strconv"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bsatish290/pdsnd-github/internal/dataset"
	"github.com/bsatish290/pdsnd-github/internal/model"
	"github.com/bsatish290/pdsnd-github/internal/prompt"
	"github.com/bsatish290/pdsnd-github/internal/style"
)

func makeDataset(n int) *dataset.Dataset {
	ds := &dataset.Dataset{
		City:   "Chicago",
		Header: []string{"Start Station", "End Station"},
	}
	for i := 0; i < n; i++ {
		ds.Trips = append(ds.Trips, model.Trip{
			Index:        i * 2,
			Values:       []string{fmt.Sprintf("S%d", i), "E"},
			Month:        1,
			Weekday:      2,
			Hour:         3,
			HasStartTime: true,
		})
	}
	return ds
}

func run(t *testing.T, ds *dataset.Dataset, answers ...string) string {
	t.Helper()
	var out bytes.Buffer
	console := prompt.NewConsole(strings.NewReader(strings.Join(answers, "\n")+"\n"), &out, style.Plain())
	require.NoError(t, New(console, style.Plain()).Run(ds))
	return out.String()
}

func yes(n int) []string {
	answers := make([]string, n)
	for i := range answers {
		answers[i] = "yes"
	}
	return answers
}

func TestPagerBatchesForAllYes(t *testing.T) {
	for _, n := range []int{1, 4, 5, 6, 10, 12} {
		t.Run(strconv.Itoa(n), func(t *testing.T) {
			out := run(t, makeDataset(n), yes(n+5)...)

			batches := (n + PageSize - 1) / PageSize
			assert.Equal(t, batches, strings.Count(out, "Showing trips"))
			assert.Equal(t, batches, strings.Count(out, "view original trip data"))
			lastStart := (batches-1)*PageSize + 1
			assert.Contains(t, out, fmt.Sprintf("Showing trips %d-%d of %d", lastStart, n, n))
			assert.Contains(t, out, "No more trip data to display.")
		})
	}
}

func TestPagerPrintsRowsInOrderWithDerivedColumns(t *testing.T) {
	out := run(t, makeDataset(7), "yes")

	lines := strings.Split(out, "\n")
	var header, first string
	for i, line := range lines {
		if strings.Contains(line, "Start Station") {
			header = line
			first = lines[i+1]
			break
		}
	}
	assert.Contains(t, header, "Month")
	assert.Contains(t, header, "Day_of_week")
	assert.Contains(t, header, "Hour")
	assert.Equal(t, []string{"0", "S0", "E", "1", "2", "3"}, strings.Fields(first))
	assert.Contains(t, out, "S4")
	assert.NotContains(t, out, "S5")
}

func TestPagerStopsOnNo(t *testing.T) {
	out := run(t, makeDataset(20), "yes", "no", "yes")

	assert.Equal(t, 1, strings.Count(out, "Showing trips"))
	assert.Equal(t, 2, strings.Count(out, "view original trip data"))
	assert.NotContains(t, out, "No more trip data")
}

func TestPagerEmptyDataset(t *testing.T) {
	out := run(t, makeDataset(0), "yes")

	assert.NotContains(t, out, "view original trip data")
	assert.Contains(t, out, "No trip data to display.")
}

func TestPagerStateIsPerCall(t *testing.T) {
	ds := makeDataset(3)
	var out bytes.Buffer
	console := prompt.NewConsole(strings.NewReader("yes\nyes\n"), &out, style.Plain())
	p := New(console, style.Plain())

	require.NoError(t, p.Run(ds))
	require.NoError(t, p.Run(ds))
	assert.Equal(t, 2, strings.Count(out.String(), "Showing trips 1-3 of 3"))
}
