// Command agenda is a one-shot version of the bot pipeline: it fetches the
// feed, selects the events for one local day and prints them to stdout.
// Handy for checking what a scheduled send would contain.
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/yoteibot/yoteibot/internal/calendar"
	"github.com/yoteibot/yoteibot/internal/clients/feed"
	"github.com/yoteibot/yoteibot/internal/service"
)

func main() {
	var (
		urlFlag    = flag.String("url", os.Getenv("CALENDAR_URL"), "iCalendar feed URL (defaults to CALENDAR_URL)")
		dateFlag   = flag.String("date", "", "target local day as YYYY-MM-DD (default: tomorrow)")
		offsetFlag = flag.Int("offset", 9, "fixed timezone offset from UTC in hours")
	)
	flag.Parse()

	if *urlFlag == "" {
		log.Fatal("feed URL required: pass -url or set CALENDAR_URL")
	}

	offset := time.Duration(*offsetFlag) * time.Hour
	loc := time.FixedZone(fmt.Sprintf("UTC%+d", *offsetFlag), *offsetFlag*3600)

	agendaSvc := service.NewAgendaService(feed.NewClient(*urlFlag, 15*time.Second), offset)

	day := agendaSvc.Tomorrow()
	if *dateFlag != "" {
		t, err := time.Parse("2006-01-02", *dateFlag)
		if err != nil {
			log.Fatalf("Invalid -date: %v", err)
		}
		day = calendar.DateOf(t)
	}

	events, err := agendaSvc.EventsForDay(context.Background(), day)
	if err != nil {
		log.Fatalf("Fetch failed: %v", err)
	}

	if len(events) == 0 {
		fmt.Printf("%sの予定はありません。\n", service.FormatDate(day))
		return
	}

	fmt.Printf("%sの予定（%d件）\n", service.FormatDate(day), len(events))
	for _, ev := range events {
		fmt.Printf("\n📌 %s\n", ev.Title)
		if t := ev.FormatTime(loc); t != "" {
			fmt.Printf("   ⏰ %s\n", t)
		}
		if ev.Location != "" {
			fmt.Printf("   📍 %s\n", ev.Location)
		}
		if ev.Description != "" {
			fmt.Printf("   📝 %s\n", ev.Description)
		}
	}
}
