package config

import (
	"fmt"
	"os"
	"strconv"
	"time"
)

// Config holds everything the bot needs at startup. Missing required values
// are a load error; the process refuses to start rather than run degraded.
type Config struct {
	TelegramToken string
	CalendarURL   string

	// Optional CalDAV source; used instead of CalendarURL when set.
	CalDAVURL      string
	CalDAVUsername string
	CalDAVPassword string
	CalDAVCalendar string

	DatabasePath string
	SendTime     string

	// Offset is the fixed shift from UTC defining the local day. No IANA
	// lookup and no DST: the whole system reasons in a constant offset.
	Offset   time.Duration
	Timezone *time.Location

	FetchTimeout time.Duration
}

func Load() (*Config, error) {
	token := os.Getenv("TELEGRAM_BOT_TOKEN")
	if token == "" {
		return nil, fmt.Errorf("TELEGRAM_BOT_TOKEN is required")
	}

	calendarURL := os.Getenv("CALENDAR_URL")
	caldavURL := os.Getenv("CALDAV_URL")
	if calendarURL == "" && caldavURL == "" {
		return nil, fmt.Errorf("CALENDAR_URL (or CALDAV_URL) is required")
	}

	dbPath := os.Getenv("DATABASE_PATH")
	if dbPath == "" {
		dbPath = "./data/yoteibot.db"
	}

	sendTime := os.Getenv("SEND_TIME")
	if sendTime == "" {
		sendTime = "18:00"
	}
	if _, _, err := ParseClock(sendTime); err != nil {
		return nil, fmt.Errorf("invalid SEND_TIME: %w", err)
	}

	offsetHours := 9
	if v := os.Getenv("TZ_OFFSET_HOURS"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return nil, fmt.Errorf("invalid TZ_OFFSET_HOURS: %w", err)
		}
		offsetHours = n
	}

	fetchTimeout := 15 * time.Second
	if v := os.Getenv("FETCH_TIMEOUT_SECONDS"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return nil, fmt.Errorf("invalid FETCH_TIMEOUT_SECONDS: %w", err)
		}
		fetchTimeout = time.Duration(n) * time.Second
	}

	return &Config{
		TelegramToken:  token,
		CalendarURL:    calendarURL,
		CalDAVURL:      caldavURL,
		CalDAVUsername: os.Getenv("CALDAV_USERNAME"),
		CalDAVPassword: os.Getenv("CALDAV_PASSWORD"),
		CalDAVCalendar: os.Getenv("CALDAV_CALENDAR"),
		DatabasePath:   dbPath,
		SendTime:       sendTime,
		Offset:         time.Duration(offsetHours) * time.Hour,
		Timezone:       fixedZone(offsetHours),
		FetchTimeout:   fetchTimeout,
	}, nil
}

// UseCalDAV reports whether the CalDAV source should replace the ICS feed.
func (c *Config) UseCalDAV() bool {
	return c.CalDAVURL != "" && c.CalDAVUsername != "" && c.CalDAVPassword != ""
}

// ParseClock parses an "HH:MM" wall-clock value.
func ParseClock(v string) (hour, minute int, err error) {
	if len(v) != 5 || v[2] != ':' {
		return 0, 0, fmt.Errorf("want HH:MM, got %q", v)
	}
	hour, err = strconv.Atoi(v[:2])
	if err != nil || hour < 0 || hour > 23 {
		return 0, 0, fmt.Errorf("bad hour in %q", v)
	}
	minute, err = strconv.Atoi(v[3:])
	if err != nil || minute < 0 || minute > 59 {
		return 0, 0, fmt.Errorf("bad minute in %q", v)
	}
	return hour, minute, nil
}

func fixedZone(offsetHours int) *time.Location {
	name := fmt.Sprintf("UTC+%d", offsetHours)
	if offsetHours < 0 {
		name = fmt.Sprintf("UTC%d", offsetHours)
	}
	return time.FixedZone(name, offsetHours*3600)
}
