package calendar

import (
	"log"
	"sort"
	"time"

	"github.com/yoteibot/yoteibot/internal/domain"
)

// UntitledPlaceholder replaces a missing SUMMARY in projected events.
const UntitledPlaceholder = "（タイトルなし）"

// SelectDay returns the events overlapping the target local day, projected
// for display and sorted ascending by original start instant (stable, so
// feed order breaks ties). Events whose dates fail to normalize are logged
// and skipped, never fatal.
//
// Overlap uses the normalized dates promoted back to instants at local
// midnight: an event is selected when its start falls before the day's end
// and its end falls after the day's start. An event ending exactly at the
// day's first midnight ended the previous day and is excluded, unless it is
// a zero-duration event sitting exactly on that midnight.
func SelectDay(events []domain.RawEvent, day Date, offset time.Duration) []domain.Event {
	w := DayWindow(day, offset)

	selected := make([]domain.Event, 0, len(events))
	for _, ev := range events {
		nd, err := NormalizeEvent(ev, offset)
		if err != nil {
			log.Printf("Skipping malformed event: %v", err)
			continue
		}

		normStart := nd.Start.Instant(offset)
		normEnd := nd.End.Instant(offset)

		if !normStart.Before(w.End) {
			continue
		}
		if normEnd.After(w.Start) || (normEnd.Equal(w.Start) && normStart.Equal(normEnd)) {
			selected = append(selected, Project(ev, nd, offset))
		}
	}

	sort.SliceStable(selected, func(i, j int) bool {
		return selected[i].Start.Before(selected[j].Start)
	})
	return selected
}

// Project shapes one selected raw event for the presentation layer. Start
// and End keep the original instants (time-of-day is still needed for
// display); date-only values are promoted to their local midnight.
func Project(ev domain.RawEvent, nd EventDates, offset time.Duration) domain.Event {
	title := ev.Summary
	if title == "" {
		title = UntitledPlaceholder
	}

	return domain.Event{
		Title:       title,
		Start:       originalInstant(ev.Start, nd.Start, offset),
		End:         originalInstant(ev.End, nd.End, offset),
		Location:    ev.Location,
		Description: ev.Description,
		AllDay:      nd.AllDay,
	}
}

// originalInstant recovers the best available instant for one stamp: the
// parsed instant when the feed gave one, otherwise the normalized date's
// local midnight.
func originalInstant(stamp domain.RawStamp, normalized Date, offset time.Duration) time.Time {
	if stamp.Kind == domain.KindInstant && !stamp.Time.IsZero() {
		return stamp.Time
	}
	if stamp.Kind == domain.KindOther {
		if t, err := parseLoose(stamp.Value); err == nil {
			return t
		}
	}
	return normalized.Instant(offset)
}
