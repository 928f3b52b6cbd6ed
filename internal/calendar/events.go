package calendar

import (
	"fmt"
	"time"

	"github.com/youpv/personal-trainer/internal/trainings"
)

// Event is the calendar view of a single training, derived fresh on every
// fetch and never mutated in place.
type Event struct {
	ID       int64     `json:"id"`
	Title    string    `json:"title"`
	Start    time.Time `json:"start"`
	End      time.Time `json:"end"`
	Customer string    `json:"customer"`
}

// DateParseError reports a training whose date string is not valid ISO-8601.
type DateParseError struct {
	TrainingID int64
	Value      string
	Err        error
}

func (e *DateParseError) Error() string {
	return fmt.Sprintf("training %d: cannot parse date [%s]: %s", e.TrainingID, e.Value, e.Err)
}

func (e *DateParseError) Unwrap() error {
	return e.Err
}

// RowError ties a per-row transformation failure to its position in the input.
type RowError struct {
	Index int
	Err   error
}

func (e RowError) Error() string {
	return fmt.Sprintf("row %d: %s", e.Index, e.Err)
}

func (e RowError) Unwrap() error {
	return e.Err
}

// EventsFromTrainings maps trainings to calendar events, preserving input
// order. End is Start plus the training duration in minutes, and the title is
// "{activity} / {customer full name}".
//
// A row with an unparseable date or a non-numeric duration is skipped and
// reported in the returned row errors instead of silently producing an invalid
// event; the rest of the batch is unaffected.
func EventsFromTrainings(list []trainings.Training) ([]Event, []RowError) {
	events := make([]Event, 0, len(list))
	var rowErrs []RowError

	for i, t := range list {
		start, err := parseDate(t.Date)
		if err != nil {
			rowErrs = append(rowErrs, RowError{
				Index: i,
				Err:   &DateParseError{TrainingID: t.ID, Value: t.Date, Err: err},
			})
			continue
		}

		minutes, err := t.Minutes()
		if err != nil {
			rowErrs = append(rowErrs, RowError{Index: i, Err: err})
			continue
		}

		events = append(events, Event{
			ID:       t.ID,
			Title:    fmt.Sprintf("%s / %s", t.Activity, t.CustomerName()),
			Start:    start,
			End:      start.Add(time.Duration(minutes * float64(time.Minute))),
			Customer: t.CustomerName(),
		})
	}

	return events, rowErrs
}

// offset-less layouts are interpreted in the local timezone
var localLayouts = []string{
	"2006-01-02T15:04:05",
	"2006-01-02",
}

func parseDate(value string) (time.Time, error) {
	if t, err := time.Parse(time.RFC3339, value); err == nil {
		return t, nil
	}

	var lastErr error
	for _, layout := range localLayouts {
		t, err := time.ParseInLocation(layout, value, time.Local)
		if err == nil {
			return t, nil
		}
		lastErr = err
	}

	return time.Time{}, lastErr
}
