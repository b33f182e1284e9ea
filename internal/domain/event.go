package domain

import "time"

// StampKind discriminates how a VEVENT encoded its DTSTART/DTEND value.
type StampKind int

const (
	// KindInstant is a timezone-aware point in time.
	KindInstant StampKind = iota
	// KindDate is a YYYYMMDD date-only value (all-day semantics, no instant).
	KindDate
	// KindOther is anything we could not classify; handled best-effort.
	KindOther
)

// RawStamp is one DTSTART or DTEND value as it came off the feed.
// Time is only meaningful for KindInstant; Value always holds the raw text.
type RawStamp struct {
	Kind  StampKind
	Time  time.Time
	Value string
}

// RawEvent is a single VEVENT straight from a feed, before any date
// normalization. Start and End keep their original representations so the
// normalizer can pick one rule for both.
type RawEvent struct {
	UID         string
	Summary     string
	Description string
	Location    string
	Start       RawStamp
	End         RawStamp
}

// Event is a projected event ready for display. Start/End keep the original
// time-of-day (promoted to local midnight for date-only events) so the
// presentation layer can render clock times; AllDay tells it not to.
type Event struct {
	Title       string
	Start       time.Time
	End         time.Time
	Location    string
	Description string
	AllDay      bool
}

// FormatTime returns the clock-time range for display, empty for all-day
// events.
func (e *Event) FormatTime(loc *time.Location) string {
	if e.AllDay {
		return ""
	}
	if e.End.IsZero() || e.End.Equal(e.Start) {
		return e.Start.In(loc).Format("15:04")
	}
	return e.Start.In(loc).Format("15:04") + " - " + e.End.In(loc).Format("15:04")
}
