// Package feed fetches a public iCalendar feed over HTTP(S).
package feed

import (
	"context"
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/emersion/go-ical"

	"github.com/yoteibot/yoteibot/internal/calendar"
	"github.com/yoteibot/yoteibot/internal/domain"
)

// Client fetches and parses one ICS feed URL.
type Client struct {
	url    string
	client *http.Client
	now    func() time.Time
}

// NewClient creates a feed client. timeout bounds the whole fetch so a stuck
// feed cannot hang a scheduled tick.
func NewClient(url string, timeout time.Duration) *Client {
	if timeout <= 0 {
		timeout = 15 * time.Second
	}
	return &Client{
		url:    url,
		client: &http.Client{Timeout: timeout},
		now:    time.Now,
	}
}

// Events fetches the feed and returns its VEVENTs as raw events. Network
// failure, a non-200 status and a malformed feed all collapse into a single
// error: the caller must treat that as "fetch failed", never as "no events".
// The from/to range is ignored; an ICS feed is always fetched whole and
// filtered by the caller.
func (c *Client) Events(ctx context.Context, from, to time.Time) ([]domain.RawEvent, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, cacheBust(c.url, c.now()), nil)
	if err != nil {
		return nil, fmt.Errorf("build feed request: %w", err)
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetch feed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("fetch feed: unexpected status %s", resp.Status)
	}

	cal, err := ical.NewDecoder(resp.Body).Decode()
	if err != nil {
		return nil, fmt.Errorf("parse feed: %w", err)
	}

	return calendar.EventsFromCalendar(cal), nil
}

// cacheBust appends a timestamp query parameter so frequent fetches see
// near-real-time edits instead of a CDN-cached copy.
func cacheBust(url string, now time.Time) string {
	sep := "?"
	if strings.Contains(url, "?") {
		sep = "&"
	}
	return url + sep + "_t=" + strconv.FormatInt(now.UnixMilli(), 10)
}
