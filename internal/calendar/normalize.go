package calendar

import (
	"fmt"
	"time"

	"github.com/yoteibot/yoteibot/internal/domain"
)

// EventDates is the normalized view of one event's start/end: both fields
// reduced to local calendar days by a single rule, plus the all-day flag.
// Returning them as one unit keeps start and end from ever taking different
// normalization branches.
type EventDates struct {
	Start  Date
	End    Date
	AllDay bool
}

// NormalizeEvent reduces an event's start/end to local calendar dates. The
// branch is chosen by the start representation and applied to both fields:
//
//   - instant: shift by the fixed offset, take year/month/day
//   - 8-digit date string: literal date, no shift, all-day
//   - anything else: best-effort timestamp parse, date taken as-is
//
// If end cannot be read under start's branch it degrades to the start date
// (zero-length) rather than switching branches.
func NormalizeEvent(ev domain.RawEvent, offset time.Duration) (EventDates, error) {
	switch ev.Start.Kind {
	case domain.KindInstant:
		if ev.Start.Time.IsZero() {
			return EventDates{}, fmt.Errorf("event %q: instant start has no time", ev.Summary)
		}
		start := LocalDate(ev.Start.Time, offset)
		end := start
		if !ev.End.Time.IsZero() {
			end = LocalDate(ev.End.Time, offset)
		}
		return EventDates{Start: start, End: end}, nil

	case domain.KindDate:
		start, err := parseDateValue(ev.Start.Value)
		if err != nil {
			return EventDates{}, fmt.Errorf("event %q: start %q: %w", ev.Summary, ev.Start.Value, err)
		}
		end := start
		if e, err := parseDateValue(ev.End.Value); err == nil {
			end = e
		}
		return EventDates{Start: start, End: end, AllDay: true}, nil

	default:
		start, err := parseLoose(ev.Start.Value)
		if err != nil {
			return EventDates{}, fmt.Errorf("event %q: start %q: %w", ev.Summary, ev.Start.Value, err)
		}
		end := start
		if e, err := parseLoose(ev.End.Value); err == nil {
			end = e
		}
		return EventDates{Start: DateOf(start), End: DateOf(end)}, nil
	}
}

// parseDateValue parses the 8-digit YYYYMMDD form.
func parseDateValue(v string) (Date, error) {
	t, err := time.Parse("20060102", v)
	if err != nil {
		return Date{}, err
	}
	return DateOf(t), nil
}

// looseLayouts are tried in order for unclassified timestamp values. The
// resulting date is used without any offset shift (degraded fidelity).
var looseLayouts = []string{
	"20060102T150405Z",
	"20060102T150405",
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02",
	"20060102",
}

func parseLoose(v string) (time.Time, error) {
	for _, layout := range looseLayouts {
		if t, err := time.Parse(layout, v); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("unrecognized timestamp %q", v)
}
