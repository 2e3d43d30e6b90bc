package scraper

import (
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"
	"github.com/ctfwatch/ctftime-bot/internal/event"
	"github.com/ctfwatch/ctftime-bot/internal/logger"
)

const (
	BaseURL   = "https://ctftime.org"
	EventsURL = BaseURL + "/event/list/upcoming"
	// CTFTime serves a different page to non-browser clients, so the bot
	// identifies as a desktop browser.
	UserAgent = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/91.0.4472.124 Safari/537.36"
	Timeout   = 15 * time.Second

	// rangeSeparator is the em-dash CTFTime prints between the start and
	// end halves of a date range.
	rangeSeparator = "—"
)

// Scraper fetches and parses the CTFTime upcoming-events listing.
type Scraper struct {
	client    *http.Client
	baseURL   string
	eventsURL string
	userAgent string
}

// New creates a new Scraper instance.
func New() *Scraper {
	return &Scraper{
		client: &http.Client{
			Timeout: Timeout,
		},
		baseURL:   BaseURL,
		eventsURL: EventsURL,
		userAgent: UserAgent,
	}
}

// NewWithOptions creates a Scraper with a custom listing URL, User-Agent,
// and timeout. Zero values fall back to the package defaults.
func NewWithOptions(eventsURL, userAgent string, timeout time.Duration) *Scraper {
	s := New()
	if eventsURL != "" {
		s.eventsURL = eventsURL
		// Relative hrefs resolve against the listing's origin.
		if i := strings.Index(eventsURL, "://"); i >= 0 {
			if j := strings.Index(eventsURL[i+3:], "/"); j >= 0 {
				s.baseURL = eventsURL[:i+3+j]
			} else {
				s.baseURL = eventsURL
			}
		}
	}
	if userAgent != "" {
		s.userAgent = userAgent
	}
	if timeout > 0 {
		s.client.Timeout = timeout
	}
	return s
}

// EventsURL returns the listing URL this scraper targets.
func (s *Scraper) EventsURL() string {
	return s.eventsURL
}

// FetchPage fetches the upcoming-events page and returns its body as a
// string. Every failure mode (request construction, transport errors,
// non-200 status) collapses to an empty string with a logged diagnostic.
// One attempt, no retries.
func (s *Scraper) FetchPage() string {
	start := time.Now()

	req, err := http.NewRequest("GET", s.eventsURL, nil)
	if err != nil {
		logger.Error("Failed to build request", logger.Fields{"url": s.eventsURL}, err)
		return ""
	}
	req.Header.Set("User-Agent", s.userAgent)

	resp, err := s.client.Do(req)
	if err != nil {
		logger.Error("Failed to fetch page", logger.Fields{"url": s.eventsURL}, err)
		return ""
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		logger.Error("Unexpected status fetching page", logger.Fields{
			"url":    s.eventsURL,
			"status": resp.StatusCode,
		}, nil)
		return ""
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		logger.Error("Failed to read response body", logger.Fields{"url": s.eventsURL}, err)
		return ""
	}

	logger.RecordTiming("scrape.fetch", time.Since(start))
	return string(body)
}

// ParseEvents extracts CTF events from the listing HTML, preserving table
// row order. A missing events table yields an empty slice; individual rows
// with an unexpected shape are skipped without aborting the batch.
func (s *Scraper) ParseEvents(html string) []*event.Event {
	events := make([]*event.Event, 0)

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		logger.Error("Failed to parse HTML", nil, err)
		return events
	}

	table := doc.Find("table.table-striped").First()
	if table.Length() == 0 {
		logger.Warn("Could not find events table", nil)
		return events
	}

	rows := table.Find("tbody tr")
	if rows.Length() == 0 {
		// No tbody delimiter, enumerate all rows and skip the header.
		rows = table.Find("tr")
		if rows.Length() > 0 {
			rows = rows.Slice(1, goquery.ToEnd)
		}
	}

	logger.Debug("Found potential event rows", logger.Fields{"rows": rows.Length()})

	rows.Each(func(i int, row *goquery.Selection) {
		evt, ok := s.parseRow(row)
		if !ok {
			logger.IncrCounter("scrape.rows_skipped")
			return
		}
		events = append(events, evt)
	})

	logger.Info("Parsed events", logger.Fields{"events": len(events)})
	logger.SetGauge("scrape.events_found", float64(len(events)))
	return events
}

// parseRow extracts one event from a table row. Returns ok=false for rows
// that don't have the expected shape: fewer than four cells or no title
// link.
func (s *Scraper) parseRow(row *goquery.Selection) (*event.Event, bool) {
	cells := row.Find("td")
	if cells.Length() < 4 {
		logger.Debug("Skipping short row", logger.Fields{"cells": cells.Length()})
		return nil, false
	}

	titleLink := cells.Eq(0).Find("a").First()
	if titleLink.Length() == 0 {
		logger.Debug("Skipping row without title link", nil)
		return nil, false
	}

	title := strings.TrimSpace(titleLink.Text())
	href, _ := titleLink.Attr("href")
	url := s.baseURL + href

	dateText := strings.TrimSpace(cells.Eq(1).Text())
	format := strings.TrimSpace(cells.Eq(2).Text())

	startText, duration := splitDateRange(dateText)

	logger.Debug("Parsed event", logger.Fields{"title": title, "start": startText})
	return event.NewEvent(title, startText, duration, url, format), true
}

// splitDateRange splits a scraped date-range string into the raw start text
// and a human-readable duration. Without the em-dash separator the whole
// string is the start text and the duration is unknown.
func splitDateRange(dateText string) (startText, duration string) {
	if !strings.Contains(dateText, rangeSeparator) {
		return dateText, "Unknown"
	}

	parts := strings.Split(dateText, rangeSeparator)
	startText = strings.TrimSpace(parts[0])

	duration = "Unknown"
	if len(parts) == 2 {
		duration = startText + " to " + strings.TrimSpace(parts[1])
	}
	return startText, duration
}
