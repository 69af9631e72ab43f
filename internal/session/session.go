// Package session runs the interactive select, load, report and page loop.
package session

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/bsatish290/pdsnd-github/internal/dataset"
	"github.com/bsatish290/pdsnd-github/internal/model"
	"github.com/bsatish290/pdsnd-github/internal/pager"
	"github.com/bsatish290/pdsnd-github/internal/prompt"
	"github.com/bsatish290/pdsnd-github/internal/stats"
	"github.com/bsatish290/pdsnd-github/internal/style"
)

const restartMessage = "\nWould you like to restart? Enter yes or no.\n"

// Runner drives sessions until the user declines to restart.
type Runner struct {
	catalog  model.Catalog
	console  *prompt.Console
	loader   *dataset.Loader
	reporter *stats.Reporter
	pager    *pager.Pager
	styles   style.Styles
	log      *slog.Logger
}

// NewRunner wires the session components around one console.
func NewRunner(cat model.Catalog, console *prompt.Console, styles style.Styles, log *slog.Logger) *Runner {
	if log == nil {
		log = slog.New(slog.DiscardHandler)
	}
	return &Runner{
		catalog:  cat,
		console:  console,
		loader:   dataset.NewLoader(cat, log),
		reporter: stats.NewReporter(console.Out(), cat, styles),
		pager:    pager.New(console, styles),
		styles:   styles,
		log:      log,
	}
}

// Run repeats sessions until the restart prompt gets anything but yes.
// Load failures and closed input during filter selection end the loop with
// an error.
func (r *Runner) Run(ctx context.Context) error {
	for {
		if err := ctx.Err(); err != nil {
			return err
		}
		if err := r.runOnce(ctx); err != nil {
			return err
		}
		again, err := r.console.Confirm(restartMessage)
		if err != nil {
			return err
		}
		if !again {
			r.log.DebugContext(ctx, "session loop finished")
			return nil
		}
	}
}

func (r *Runner) runOnce(ctx context.Context) error {
	log := r.log.With("session_id", uuid.NewString())

	sel, err := prompt.CollectFilters(r.console, r.catalog)
	if err != nil {
		return fmt.Errorf("failed to read filters: %w", err)
	}
	log.DebugContext(ctx, "filters selected", "city", sel.City, "month", sel.Month, "day", sel.Day)

	ds, err := r.loader.Load(ctx, sel)
	if err != nil {
		return err
	}
	if _, err := fmt.Fprintln(r.console.Out(), r.styles.Label.Render(FilterSummary(r.catalog, sel))); err != nil {
		return err
	}
	if err := r.reporter.Run(ds); err != nil {
		return fmt.Errorf("failed to print reports: %w", err)
	}
	if err := r.pager.Run(ds); err != nil {
		return fmt.Errorf("failed to page trip data: %w", err)
	}
	log.DebugContext(ctx, "session finished", "trips", ds.Len())
	return nil
}

// FilterSummary describes the active selection, printing None for unset
// filters and the weekday abbreviation for a day filter.
func FilterSummary(cat model.Catalog, sel model.Selection) string {
	city := sel.City
	if c, ok := cat.City(sel.City); ok {
		city = c.Name
	}
	month := "None"
	if sel.Month != "" {
		month = prompt.TitleCase(sel.Month)
	}
	day := "None"
	if sel.Day != "" {
		if name, ok := cat.DayName(sel.Day); ok {
			day = name
		}
	}
	return fmt.Sprintf("Filters -> city : %s, month: %s, day: %s", city, month, day)
}
