package dataset

import (
	"bufio"
	"bytes"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/bsatish290/pdsnd-github/internal/model"
)

var timeLayouts = []string{
	"2006-01-02 15:04:05",
	"2006-01-02T15:04:05",
	"2006-01-02 15:04",
}

var utf8BOM = []byte("\xef\xbb\xbf")

type columnIndex struct {
	startTime    int
	endTime      int
	duration     int
	startStation int
	endStation   int
	userType     int
	gender       int
	birthYear    int
}

// Read parses a trip CSV with a header row and derives month, weekday and
// hour from the start time of every row that has one. Short rows are padded with empty
// cells; rows with more fields than the header are rejected.
func Read(r io.Reader, city string) (*Dataset, error) {
	reader := csv.NewReader(skipBOM(r))
	reader.FieldsPerRecord = -1
	header, err := reader.Read()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("file is empty")
		}
		return nil, fmt.Errorf("failed to read header: %w", err)
	}
	idx, err := indexColumns(header)
	if err != nil {
		return nil, err
	}

	ds := &Dataset{
		City:         city,
		Header:       header,
		HasGender:    idx.gender >= 0,
		HasBirthYear: idx.birthYear >= 0,
	}
	for row := 0; ; row++ {
		record, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to read row %d: %w", row+1, err)
		}
		if len(record) > len(header) {
			return nil, fmt.Errorf("row %d: expected %d fields, got %d", row+1, len(header), len(record))
		}
		for len(record) < len(header) {
			record = append(record, "")
		}
		trip, err := parseTrip(record, idx)
		if err != nil {
			return nil, fmt.Errorf("row %d: %w", row+1, err)
		}
		trip.Index = row
		ds.Trips = append(ds.Trips, trip)
	}
	return ds, nil
}

func indexColumns(header []string) (columnIndex, error) {
	pos := make(map[string]int, len(header))
	for i, name := range header {
		pos[strings.TrimSpace(name)] = i
	}
	for _, name := range requiredColumns {
		if _, ok := pos[name]; !ok {
			return columnIndex{}, fmt.Errorf("%w %q", ErrMissingColumn, name)
		}
	}
	optional := func(name string) int {
		if i, ok := pos[name]; ok {
			return i
		}
		return -1
	}
	return columnIndex{
		startTime:    pos[ColStartTime],
		endTime:      pos[ColEndTime],
		duration:     pos[ColDuration],
		startStation: pos[ColStartStation],
		endStation:   pos[ColEndStation],
		userType:     pos[ColUserType],
		gender:       optional(ColGender),
		birthYear:    optional(ColBirthYear),
	}, nil
}

func parseTrip(record []string, idx columnIndex) (model.Trip, error) {
	trip := model.Trip{
		Values:       record,
		StartStation: record[idx.startStation],
		EndStation:   record[idx.endStation],
		UserType:     strings.TrimSpace(record[idx.userType]),
	}

	var err error
	if raw := strings.TrimSpace(record[idx.startTime]); raw != "" {
		if trip.StartTime, err = parseTime(raw); err != nil {
			return trip, fmt.Errorf("column %q: %w", ColStartTime, err)
		}
		trip.HasStartTime = true
	}
	if raw := strings.TrimSpace(record[idx.endTime]); raw != "" {
		if trip.EndTime, err = parseTime(raw); err != nil {
			return trip, fmt.Errorf("column %q: %w", ColEndTime, err)
		}
		trip.HasEndTime = true
	}
	if raw := strings.TrimSpace(record[idx.duration]); raw != "" {
		if trip.Duration, err = strconv.ParseFloat(raw, 64); err != nil {
			return trip, fmt.Errorf("column %q: %w", ColDuration, err)
		}
		trip.HasDuration = true
	}
	if idx.gender >= 0 {
		trip.Gender = strings.TrimSpace(record[idx.gender])
	}
	if idx.birthYear >= 0 {
		if raw := strings.TrimSpace(record[idx.birthYear]); raw != "" {
			year, err := strconv.ParseFloat(raw, 64)
			if err != nil {
				return trip, fmt.Errorf("column %q: %w", ColBirthYear, err)
			}
			trip.BirthYear = int(math.Round(year))
			trip.HasBirthYear = true
		}
	}

	if trip.HasStartTime {
		trip.Month = int(trip.StartTime.Month())
		trip.Weekday = isoWeekday(trip.StartTime.Weekday())
		trip.Hour = trip.StartTime.Hour()
	}
	return trip, nil
}

func parseTime(value string) (time.Time, error) {
	for _, layout := range timeLayouts {
		if t, err := time.Parse(layout, value); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("cannot parse %q as a date-time", value)
}

// isoWeekday maps Sunday=0..Saturday=6 onto Monday=1..Sunday=7.
func isoWeekday(d time.Weekday) int {
	if d == time.Sunday {
		return 7
	}
	return int(d)
}

func skipBOM(r io.Reader) io.Reader {
	br := bufio.NewReader(r)
	if head, _ := br.Peek(len(utf8BOM)); bytes.Equal(head, utf8BOM) {
		_, _ = br.Discard(len(utf8BOM))
	}
	return br
}
