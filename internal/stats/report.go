package stats

import (
	"fmt"
	"io"
	"time"

	"github.com/bsatish290/pdsnd-github/internal/dataset"
	"github.com/bsatish290/pdsnd-github/internal/model"
	"github.com/bsatish290/pdsnd-github/internal/style"
)

const noTrips = " No trips match the selected filters."

type section struct {
	title string
	lines func(*dataset.Dataset) []string
}

// Reporter prints the four trip reports to a writer.
type Reporter struct {
	w      io.Writer
	styles style.Styles
	now    func() time.Time

	sections []section
}

// NewReporter returns a Reporter writing to w.
func NewReporter(w io.Writer, cat model.Catalog, styles style.Styles) *Reporter {
	return &Reporter{
		w:      w,
		styles: styles,
		now:    time.Now,
		sections: []section{
			{
				title: "Calculating The Most Frequent Times of Travel...",
				lines: func(ds *dataset.Dataset) []string { return TimeLines(cat, ds) },
			},
			{title: "Calculating The Most Popular Stations and Trip...", lines: StationLines},
			{title: "Calculating Trip Duration...", lines: DurationLines},
			{title: "Calculating User Stats...", lines: UserLines},
		},
	}
}

// Run prints the time, station, duration and user reports in that order.
func (r *Reporter) Run(ds *dataset.Dataset) error {
	for _, s := range r.sections {
		if err := r.runSection(s, ds); err != nil {
			return err
		}
	}
	return nil
}

func (r *Reporter) runSection(s section, ds *dataset.Dataset) error {
	if _, err := fmt.Fprintf(r.w, "\n%s\n\n", r.styles.Heading.Render(s.title)); err != nil {
		return err
	}
	started := r.now()
	lines := s.lines(ds)
	elapsed := r.now().Sub(started)
	if err := writeLines(r.w, lines); err != nil {
		return err
	}
	took := fmt.Sprintf("This took %.6f seconds.", elapsed.Seconds())
	if _, err := fmt.Fprintf(r.w, "\n%s\n", r.styles.Notice.Render(took)); err != nil {
		return err
	}
	if _, err := fmt.Fprintln(r.w, r.styles.Separator()); err != nil {
		return err
	}
	return nil
}

func writeLines(w io.Writer, lines []string) error {
	for _, line := range lines {
		if _, err := fmt.Fprintln(w, line); err != nil {
			return err
		}
	}
	return nil
}
