// Package pager prints a dataset five rows at a time on request.
package pager

import (
	"fmt"
	"strconv"

	"github.com/dustin/go-humanize"

	"github.com/bsatish290/pdsnd-github/internal/dataset"
	"github.com/bsatish290/pdsnd-github/internal/prompt"
	"github.com/bsatish290/pdsnd-github/internal/stats"
	"github.com/bsatish290/pdsnd-github/internal/style"
)

// PageSize is the number of rows printed per batch.
const PageSize = 5

const viewMessage = "\nWould you like to view original trip data? Type 'yes' or 'no' : "

// Pager shows raw trip rows through a console.
type Pager struct {
	console *prompt.Console
	styles  style.Styles
}

// New returns a Pager that prompts and prints through console.
func New(console *prompt.Console, styles style.Styles) *Pager {
	return &Pager{console: console, styles: styles}
}

// Run asks before each batch and stops on the first answer other than yes
// or once every row has been shown. The cursor starts at zero on every call.
func (p *Pager) Run(ds *dataset.Dataset) error {
	out := p.console.Out()
	total := ds.Len()
	if total == 0 {
		_, err := fmt.Fprintln(out, p.styles.Notice.Render("No trip data to display."))
		return err
	}
	for cursor := 0; cursor < total; cursor += PageSize {
		ok, err := p.console.Confirm(viewMessage)
		if err != nil {
			return err
		}
		if !ok {
			return nil
		}
		end := min(cursor+PageSize, total)
		if err := p.printBatch(ds, cursor, end); err != nil {
			return err
		}
	}
	_, err := fmt.Fprintln(out, p.styles.Notice.Render("No more trip data to display."))
	return err
}

func (p *Pager) printBatch(ds *dataset.Dataset, start, end int) error {
	out := p.console.Out()
	headers := append([]string{""}, ds.Columns()...)
	rows := make([][]string, 0, end-start)
	for _, trip := range ds.Trips[start:end] {
		row := make([]string, 0, len(headers))
		row = append(row, strconv.Itoa(trip.Index))
		row = append(row, trip.Values...)
		row = append(row, trip.DerivedValues()...)
		rows = append(rows, row)
	}
	for _, line := range stats.FormatTable(headers, rows, map[int]bool{0: true}) {
		if _, err := fmt.Fprintln(out, line); err != nil {
			return err
		}
	}
	summary := fmt.Sprintf("Showing trips %s-%s of %s", humanize.Comma(int64(start+1)),
		humanize.Comma(int64(end)), humanize.Comma(int64(ds.Len())))
	_, err := fmt.Fprintf(out, "%s\n\n", p.styles.Notice.Render(summary))
	return err
}
