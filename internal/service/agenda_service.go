package service

import (
	"context"
	"fmt"
	"time"

	"github.com/yoteibot/yoteibot/internal/calendar"
	"github.com/yoteibot/yoteibot/internal/domain"
)

// EventSource supplies raw events overlapping roughly [from, to). Sources
// may over-deliver (an ICS feed returns everything); precise day selection
// always happens here.
type EventSource interface {
	Events(ctx context.Context, from, to time.Time) ([]domain.RawEvent, error)
}

// AgendaService runs the fetch → normalize → select → project pipeline for
// one local calendar day. Every call is an independent query: nothing is
// cached or shared between invocations.
type AgendaService struct {
	source EventSource
	offset time.Duration
	now    func() time.Time
}

func NewAgendaService(source EventSource, offset time.Duration) *AgendaService {
	return &AgendaService{
		source: source,
		offset: offset,
		now:    time.Now,
	}
}

// EventsForDay returns the projected events overlapping the target local
// day, sorted by start. A non-nil error means the fetch failed; callers must
// surface that distinctly and never render it as "no events".
func (s *AgendaService) EventsForDay(ctx context.Context, day calendar.Date) ([]domain.Event, error) {
	w := calendar.DayWindow(day, s.offset)

	// Widen the requested range by a day on each side so range-filtering
	// sources cannot drop an event whose normalized local day differs from
	// its UTC day.
	raw, err := s.source.Events(ctx, w.Start.Add(-24*time.Hour), w.End.Add(24*time.Hour))
	if err != nil {
		return nil, fmt.Errorf("events for %s: %w", day, err)
	}

	return calendar.SelectDay(raw, day, s.offset), nil
}

// EventsForTomorrow resolves "tomorrow" in the fixed-offset zone and runs
// the pipeline for it. The resolved date is returned for the message header.
func (s *AgendaService) EventsForTomorrow(ctx context.Context) ([]domain.Event, calendar.Date, error) {
	day := s.Tomorrow()
	events, err := s.EventsForDay(ctx, day)
	return events, day, err
}

// Tomorrow is the local calendar day after the one the current instant
// falls on.
func (s *AgendaService) Tomorrow() calendar.Date {
	return calendar.LocalDate(s.now(), s.offset).AddDays(1)
}
