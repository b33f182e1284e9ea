package calendar

import (
	"time"

	"github.com/emersion/go-ical"

	"github.com/yoteibot/yoteibot/internal/domain"
)

// EventsFromCalendar extracts RawEvents from a decoded iCalendar document.
// Only VEVENT components are consumed; VTIMEZONE, VFREEBUSY and the rest are
// dropped here so no other layer has to re-check entry kinds.
func EventsFromCalendar(cal *ical.Calendar) []domain.RawEvent {
	events := make([]domain.RawEvent, 0, len(cal.Children))
	for _, comp := range cal.Children {
		if comp.Name != ical.CompEvent {
			continue
		}
		events = append(events, EventFromComponent(comp))
	}
	return events
}

// EventFromComponent maps one VEVENT component to a RawEvent, keeping the
// original start/end representations intact for the normalizer.
func EventFromComponent(comp *ical.Component) domain.RawEvent {
	ev := domain.RawEvent{}

	if prop := comp.Props.Get(ical.PropUID); prop != nil {
		ev.UID = prop.Value
	}
	if prop := comp.Props.Get(ical.PropSummary); prop != nil {
		ev.Summary = prop.Value
	}
	if prop := comp.Props.Get(ical.PropDescription); prop != nil {
		ev.Description = prop.Value
	}
	if prop := comp.Props.Get(ical.PropLocation); prop != nil {
		ev.Location = prop.Value
	}

	ev.Start = stampFromProp(comp.Props.Get(ical.PropDateTimeStart))
	ev.End = stampFromProp(comp.Props.Get(ical.PropDateTimeEnd))
	return ev
}

// stampFromProp classifies a DTSTART/DTEND property. VALUE=DATE (or a bare
// 8-digit value) means date-only; a parseable date-time becomes an instant;
// everything else passes through as-is for best-effort handling.
func stampFromProp(prop *ical.Prop) domain.RawStamp {
	if prop == nil {
		return domain.RawStamp{Kind: domain.KindOther}
	}

	if prop.Params.Get(ical.ParamValue) == string(ical.ValueDate) || isDateOnly(prop.Value) {
		return domain.RawStamp{Kind: domain.KindDate, Value: prop.Value}
	}

	if t, err := prop.DateTime(time.UTC); err == nil {
		return domain.RawStamp{Kind: domain.KindInstant, Time: t, Value: prop.Value}
	}

	return domain.RawStamp{Kind: domain.KindOther, Value: prop.Value}
}

func isDateOnly(v string) bool {
	if len(v) != 8 {
		return false
	}
	for _, c := range v {
		if c < '0' || c > '9' {
			return false
		}
	}
	return true
}
