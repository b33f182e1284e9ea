package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/yoteibot/yoteibot/internal/calendar"
	"github.com/yoteibot/yoteibot/internal/domain"
)

const jst = 9 * time.Hour

type fakeSource struct {
	events []domain.RawEvent
	err    error

	gotFrom time.Time
	gotTo   time.Time
}

func (f *fakeSource) Events(ctx context.Context, from, to time.Time) ([]domain.RawEvent, error) {
	f.gotFrom, f.gotTo = from, to
	return f.events, f.err
}

func fixedNow(t time.Time) func() time.Time {
	return func() time.Time { return t }
}

func TestAgendaService_FetchFailureIsNotEmptyList(t *testing.T) {
	src := &fakeSource{err: errors.New("connection refused")}
	svc := NewAgendaService(src, jst)

	events, err := svc.EventsForDay(context.Background(), calendar.Date{Year: 2025, Month: time.November, Day: 18})
	if err == nil {
		t.Fatal("want error on fetch failure, got nil")
	}
	if events != nil {
		t.Errorf("events = %v, want nil alongside the error", events)
	}
}

func TestAgendaService_EmptyFeedIsZeroEventsNoError(t *testing.T) {
	svc := NewAgendaService(&fakeSource{}, jst)

	events, err := svc.EventsForDay(context.Background(), calendar.Date{Year: 2025, Month: time.November, Day: 18})
	if err != nil {
		t.Fatalf("EventsForDay: %v", err)
	}
	if len(events) != 0 {
		t.Errorf("got %d events, want 0", len(events))
	}
}

func TestAgendaService_Tomorrow(t *testing.T) {
	svc := NewAgendaService(&fakeSource{}, jst)

	// 10:00 UTC on the 17th is 19:00 JST on the 17th; tomorrow is the 18th.
	svc.now = fixedNow(time.Date(2025, 11, 17, 10, 0, 0, 0, time.UTC))
	if got := svc.Tomorrow(); !got.Equal(calendar.Date{Year: 2025, Month: time.November, Day: 18}) {
		t.Errorf("Tomorrow() = %s, want 2025-11-18", got)
	}

	// 16:00 UTC on the 17th is already 01:00 JST on the 18th; tomorrow is
	// the 19th. This is exactly the misclassification the offset guards
	// against.
	svc.now = fixedNow(time.Date(2025, 11, 17, 16, 0, 0, 0, time.UTC))
	if got := svc.Tomorrow(); !got.Equal(calendar.Date{Year: 2025, Month: time.November, Day: 19}) {
		t.Errorf("Tomorrow() = %s, want 2025-11-19", got)
	}
}

func TestAgendaService_WidensSourceRange(t *testing.T) {
	src := &fakeSource{}
	svc := NewAgendaService(src, jst)

	day := calendar.Date{Year: 2025, Month: time.November, Day: 18}
	if _, err := svc.EventsForDay(context.Background(), day); err != nil {
		t.Fatalf("EventsForDay: %v", err)
	}

	w := calendar.DayWindow(day, jst)
	if !src.gotFrom.Equal(w.Start.Add(-24 * time.Hour)) {
		t.Errorf("from = %v, want window start minus a day", src.gotFrom)
	}
	if !src.gotTo.Equal(w.End.Add(24 * time.Hour)) {
		t.Errorf("to = %v, want window end plus a day", src.gotTo)
	}
}

func TestAgendaService_SelectionAppliedToSourceEvents(t *testing.T) {
	dayStart := time.Date(2025, 11, 17, 15, 0, 0, 0, time.UTC)
	src := &fakeSource{events: []domain.RawEvent{
		{
			Summary: "in range",
			Start:   domain.RawStamp{Kind: domain.KindInstant, Time: dayStart.Add(2 * time.Hour)},
			End:     domain.RawStamp{Kind: domain.KindInstant, Time: dayStart.Add(3 * time.Hour)},
		},
		{
			Summary: "out of range",
			Start:   domain.RawStamp{Kind: domain.KindInstant, Time: dayStart.Add(-20 * time.Hour)},
			End:     domain.RawStamp{Kind: domain.KindInstant, Time: dayStart.Add(-19 * time.Hour)},
		},
	}}
	svc := NewAgendaService(src, jst)

	events, err := svc.EventsForDay(context.Background(), calendar.Date{Year: 2025, Month: time.November, Day: 18})
	if err != nil {
		t.Fatalf("EventsForDay: %v", err)
	}
	if len(events) != 1 || events[0].Title != "in range" {
		t.Errorf("events = %+v, want only %q", events, "in range")
	}
}
