// Package caldav provides an alternative event source backed by a CalDAV
// server (e.g. iCloud) instead of a public ICS URL. It is read-only: events
// are consumed for the daily agenda, never written back.
package caldav

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/emersion/go-webdav/caldav"

	"github.com/yoteibot/yoteibot/internal/calendar"
	"github.com/yoteibot/yoteibot/internal/domain"
)

// Client queries a single CalDAV calendar collection.
type Client struct {
	baseURL      string
	username     string
	password     string
	calendarPath string
	client       *caldav.Client
}

func NewClient(baseURL, username, password, calendarPath string) *Client {
	return &Client{
		baseURL:      baseURL,
		username:     username,
		password:     password,
		calendarPath: calendarPath,
	}
}

func (c *Client) connect() (*caldav.Client, error) {
	if c.client != nil {
		return c.client, nil
	}

	httpClient := &http.Client{
		Transport: &basicAuthTransport{username: c.username, password: c.password},
		Timeout:   30 * time.Second,
	}

	client, err := caldav.NewClient(httpClient, c.baseURL)
	if err != nil {
		return nil, fmt.Errorf("connect to CalDAV: %w", err)
	}

	c.client = client
	return client, nil
}

// basicAuthTransport adds Basic Auth to HTTP requests.
type basicAuthTransport struct {
	username string
	password string
}

func (t *basicAuthTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	req.SetBasicAuth(t.username, t.password)
	return http.DefaultTransport.RoundTrip(req)
}

// Events queries VEVENTs in [from, to) and returns them as raw events. The
// server-side filter only narrows the transfer; date-boundary selection
// still happens in the core, identically to the ICS path.
func (c *Client) Events(ctx context.Context, from, to time.Time) ([]domain.RawEvent, error) {
	client, err := c.connect()
	if err != nil {
		return nil, err
	}

	if c.calendarPath == "" {
		return nil, fmt.Errorf("calendar path not specified")
	}

	query := &caldav.CalendarQuery{
		CompFilter: caldav.CompFilter{
			Name: "VCALENDAR",
			Comps: []caldav.CompFilter{
				{
					Name:  "VEVENT",
					Start: from,
					End:   to,
				},
			},
		},
	}

	objects, err := client.QueryCalendar(ctx, c.calendarPath, query)
	if err != nil {
		return nil, fmt.Errorf("query calendar: %w", err)
	}

	var events []domain.RawEvent
	for _, obj := range objects {
		if obj.Data == nil {
			continue
		}
		events = append(events, calendar.EventsFromCalendar(obj.Data)...)
	}

	return events, nil
}
