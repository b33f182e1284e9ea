package service

import (
	"fmt"
	"strings"
	"time"

	"github.com/yoteibot/yoteibot/internal/calendar"
	"github.com/yoteibot/yoteibot/internal/domain"
)

// FetchFailureMessage is shown whenever the feed could not be retrieved.
// It is deliberately distinct from the "no events" message.
const FetchFailureMessage = "❌ カレンダーの取得に失敗しました。"

var weekdayKanji = [...]string{"日", "月", "火", "水", "木", "金", "土"}

// FormatDate renders a local calendar day as 2025年11月18日（火）.
func FormatDate(day calendar.Date) string {
	t := time.Date(day.Year, day.Month, day.Day, 0, 0, 0, 0, time.UTC)
	return fmt.Sprintf("%d年%d月%d日（%s）", day.Year, int(day.Month), day.Day, weekdayKanji[t.Weekday()])
}

// FormatAgenda renders the full agenda message for one day in Telegram HTML.
// All-day events get no time line; empty location/description lines are
// dropped entirely.
func FormatAgenda(day calendar.Date, events []domain.Event, loc *time.Location) string {
	var b strings.Builder

	if len(events) == 0 {
		fmt.Fprintf(&b, "📅 <b>明日（%s）の予定</b>\n\n予定はありません。", FormatDate(day))
		return b.String()
	}

	fmt.Fprintf(&b, "📅 <b>明日（%s）の予定</b>（%d件）\n", FormatDate(day), len(events))

	for i, ev := range events {
		b.WriteString("\n<b>")
		b.WriteString(htmlEscape(ev.Title))
		b.WriteString("</b>\n")

		if t := ev.FormatTime(loc); t != "" {
			fmt.Fprintf(&b, "⏰ %s\n", t)
		}
		if ev.Location != "" {
			fmt.Fprintf(&b, "📍 %s\n", htmlEscape(ev.Location))
		}
		if ev.Description != "" {
			fmt.Fprintf(&b, "📝 %s\n", htmlEscape(ev.Description))
		}

		if i < len(events)-1 {
			b.WriteString("———\n")
		}
	}

	return strings.TrimRight(b.String(), "\n")
}

// htmlEscape guards feed-supplied text against Telegram HTML parse mode.
func htmlEscape(s string) string {
	s = strings.ReplaceAll(s, "&", "&amp;")
	s = strings.ReplaceAll(s, "<", "&lt;")
	s = strings.ReplaceAll(s, ">", "&gt;")
	return s
}
