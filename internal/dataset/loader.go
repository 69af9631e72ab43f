package dataset

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"time"

	"github.com/bsatish290/pdsnd-github/internal/model"
)

// Loader reads city files named by a catalog.
type Loader struct {
	catalog model.Catalog
	log     *slog.Logger
}

// NewLoader returns a Loader. A nil logger discards log output.
func NewLoader(cat model.Catalog, log *slog.Logger) *Loader {
	if log == nil {
		log = slog.New(slog.DiscardHandler)
	}
	return &Loader{catalog: cat, log: log}
}

// Load reads the selected city's file and applies the month or day filter.
// Nothing is cached; every call reads the file again.
func (l *Loader) Load(ctx context.Context, sel model.Selection) (*Dataset, error) {
	city, ok := l.catalog.City(sel.City)
	if !ok {
		return nil, fmt.Errorf("%w %q", ErrUnknownCity, sel.City)
	}
	keep, err := l.predicate(sel)
	if err != nil {
		return nil, err
	}
	path, _ := l.catalog.CityFile(city.Name)

	started := time.Now()
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open %s data: %w", city.Name, err)
	}
	defer func() { _ = file.Close() }()

	ds, err := Read(file, city.Name)
	if err != nil {
		return nil, fmt.Errorf("failed to load %s data from %s: %w", city.Name, path, err)
	}
	total := ds.Len()
	if sel.HasFilter() {
		ds = ds.Filter(keep)
	}
	l.log.DebugContext(ctx, "dataset loaded",
		"city", city.Name,
		"path", path,
		"rows", total,
		"kept", ds.Len(),
		"elapsed", time.Since(started),
	)
	return ds, nil
}

func (l *Loader) predicate(sel model.Selection) (func(model.Trip) bool, error) {
	switch {
	case sel.Month != "" && sel.Day != "":
		return nil, fmt.Errorf("month and day filters are mutually exclusive")
	case sel.Month != "":
		n, ok := l.catalog.MonthNumber(sel.Month)
		if !ok {
			return nil, fmt.Errorf("%w %q", ErrUnknownMonth, sel.Month)
		}
		return ByMonth(n), nil
	case sel.Day != "":
		if _, ok := l.catalog.DayName(sel.Day); !ok {
			return nil, fmt.Errorf("%w %q", ErrInvalidDay, sel.Day)
		}
		n, err := strconv.Atoi(sel.Day)
		if err != nil {
			return nil, fmt.Errorf("%w %q", ErrInvalidDay, sel.Day)
		}
		return ByWeekday(n), nil
	}
	return nil, nil
}
