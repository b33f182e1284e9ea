// Package calendar holds the date-boundary core: converting raw feed events
// into local calendar days under a fixed UTC offset and selecting the ones
// that overlap a target day. Everything here is pure; network and storage
// live in internal/clients and internal/storage.
package calendar

import "time"

// Date is a calendar date with no time-of-day. It represents either "the
// local day on which an instant falls" or a literal date-only feed value.
type Date struct {
	Year  int
	Month time.Month
	Day   int
}

// DateOf returns the calendar date of t in t's own location.
func DateOf(t time.Time) Date {
	y, m, d := t.Date()
	return Date{Year: y, Month: m, Day: d}
}

// LocalDate returns the calendar date on which the instant t falls in a zone
// at the given fixed offset from UTC. No DST: the offset is a constant shift.
func LocalDate(t time.Time, offset time.Duration) Date {
	return DateOf(t.UTC().Add(offset))
}

// Instant promotes the date to the absolute instant of its local midnight,
// i.e. midnight in the fixed-offset zone expressed in UTC.
func (d Date) Instant(offset time.Duration) time.Time {
	return time.Date(d.Year, d.Month, d.Day, 0, 0, 0, 0, time.UTC).Add(-offset)
}

// AddDays returns the date n days later (or earlier for negative n).
func (d Date) AddDays(n int) Date {
	return DateOf(time.Date(d.Year, d.Month, d.Day, 0, 0, 0, 0, time.UTC).AddDate(0, 0, n))
}

func (d Date) Equal(other Date) bool {
	return d.Year == other.Year && d.Month == other.Month && d.Day == other.Day
}

func (d Date) String() string {
	return time.Date(d.Year, d.Month, d.Day, 0, 0, 0, 0, time.UTC).Format("2006-01-02")
}

// Window is the half-open instant range [Start, End) of one local calendar
// day.
type Window struct {
	Start time.Time
	End   time.Time
}

// DayWindow computes the window covering day in the fixed-offset zone.
func DayWindow(day Date, offset time.Duration) Window {
	start := day.Instant(offset)
	return Window{Start: start, End: start.Add(24 * time.Hour)}
}
