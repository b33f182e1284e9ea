package calendar

import (
	"testing"
	"time"

	"github.com/yoteibot/yoteibot/internal/domain"
)

const jst = 9 * time.Hour

func instantStamp(t time.Time) domain.RawStamp {
	return domain.RawStamp{Kind: domain.KindInstant, Time: t, Value: t.Format("20060102T150405Z")}
}

func dateStamp(v string) domain.RawStamp {
	return domain.RawStamp{Kind: domain.KindDate, Value: v}
}

func TestNormalizeEvent_InstantShiftsIntoLocalDay(t *testing.T) {
	// 15:30 UTC + 9h = 00:30 the next local day.
	ev := domain.RawEvent{
		Summary: "late call",
		Start:   instantStamp(time.Date(2025, 11, 17, 15, 30, 0, 0, time.UTC)),
		End:     instantStamp(time.Date(2025, 11, 17, 16, 30, 0, 0, time.UTC)),
	}

	nd, err := NormalizeEvent(ev, jst)
	if err != nil {
		t.Fatalf("NormalizeEvent: %v", err)
	}

	want := Date{Year: 2025, Month: time.November, Day: 18}
	if !nd.Start.Equal(want) {
		t.Errorf("start = %s, want %s", nd.Start, want)
	}
	if !nd.End.Equal(want) {
		t.Errorf("end = %s, want %s", nd.End, want)
	}
	if nd.AllDay {
		t.Error("instant event must not be all-day")
	}
}

func TestNormalizeEvent_InstantBeforeShiftBoundaryStaysOnDay(t *testing.T) {
	// 14:59 UTC + 9h = 23:59 the same local day.
	ev := domain.RawEvent{
		Start: instantStamp(time.Date(2025, 11, 17, 14, 59, 0, 0, time.UTC)),
		End:   instantStamp(time.Date(2025, 11, 17, 14, 59, 0, 0, time.UTC)),
	}

	nd, err := NormalizeEvent(ev, jst)
	if err != nil {
		t.Fatalf("NormalizeEvent: %v", err)
	}

	want := Date{Year: 2025, Month: time.November, Day: 17}
	if !nd.Start.Equal(want) {
		t.Errorf("start = %s, want %s", nd.Start, want)
	}
}

func TestNormalizeEvent_DateOnlyIsLiteral(t *testing.T) {
	// Date-only values are floating: no offset applied, all-day set.
	ev := domain.RawEvent{
		Summary: "holiday",
		Start:   dateStamp("20251117"),
		End:     dateStamp("20251119"),
	}

	nd, err := NormalizeEvent(ev, jst)
	if err != nil {
		t.Fatalf("NormalizeEvent: %v", err)
	}

	if !nd.Start.Equal(Date{2025, time.November, 17}) {
		t.Errorf("start = %s, want 2025-11-17", nd.Start)
	}
	if !nd.End.Equal(Date{2025, time.November, 19}) {
		t.Errorf("end = %s, want 2025-11-19", nd.End)
	}
	if !nd.AllDay {
		t.Error("date-only event must be all-day")
	}
}

func TestNormalizeEvent_StartBranchGovernsEnd(t *testing.T) {
	// Start is an instant, end is (bogusly) date-only. The end must follow
	// the instant branch and degrade to the start date instead of switching
	// branches and producing a skewed window.
	ev := domain.RawEvent{
		Start: instantStamp(time.Date(2025, 11, 17, 15, 30, 0, 0, time.UTC)),
		End:   dateStamp("20251120"),
	}

	nd, err := NormalizeEvent(ev, jst)
	if err != nil {
		t.Fatalf("NormalizeEvent: %v", err)
	}

	if !nd.End.Equal(nd.Start) {
		t.Errorf("end = %s, want start date %s", nd.End, nd.Start)
	}
	if nd.AllDay {
		t.Error("instant-branch event must not be all-day")
	}
}

func TestNormalizeEvent_FallbackParsesLoosely(t *testing.T) {
	ev := domain.RawEvent{
		Start: domain.RawStamp{Kind: domain.KindOther, Value: "2025-11-17T23:30:00"},
		End:   domain.RawStamp{Kind: domain.KindOther, Value: "2025-11-17T23:45:00"},
	}

	nd, err := NormalizeEvent(ev, jst)
	if err != nil {
		t.Fatalf("NormalizeEvent: %v", err)
	}

	// Fallback takes the parsed date as-is, no offset shift.
	if !nd.Start.Equal(Date{2025, time.November, 17}) {
		t.Errorf("start = %s, want 2025-11-17", nd.Start)
	}
}

func TestNormalizeEvent_MalformedIsAnError(t *testing.T) {
	cases := []domain.RawEvent{
		{Summary: "garbage", Start: domain.RawStamp{Kind: domain.KindOther, Value: "not a time"}},
		{Summary: "bad date", Start: dateStamp("20251399")},
		{Summary: "zero instant", Start: domain.RawStamp{Kind: domain.KindInstant}},
	}

	for _, ev := range cases {
		if _, err := NormalizeEvent(ev, jst); err == nil {
			t.Errorf("NormalizeEvent(%q): want error, got nil", ev.Summary)
		}
	}
}
