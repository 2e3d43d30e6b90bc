package filter_test

import (
	"os"
	"strings"
	"testing"
	"time"

	"github.com/ctfwatch/ctftime-bot/internal/filter"
	"github.com/ctfwatch/ctftime-bot/internal/scraper"
	"github.com/ctfwatch/ctftime-bot/internal/telegram"
)

// TestIntegration runs the core pipeline end to end: parse the listing
// fixture, filter to the 7-day window, and render the digest.
func TestIntegration(t *testing.T) {
	data, err := os.ReadFile("../scraper/testdata/upcoming.html")
	if err != nil {
		t.Fatalf("failed to load test fixture: %v", err)
	}

	s := scraper.New()
	events := s.ParseEvents(string(data))
	if len(events) == 0 {
		t.Fatal("expected events from fixture")
	}

	now := time.Date(2025, time.August, 15, 12, 0, 0, 0, time.UTC)
	upcoming := filter.UpcomingWeek(events, now)

	// Midnight Sun (20 Aug, yearless) and DefCamp (22 Aug 2025, window
	// boundary) are in range; Winter Byte Bash rolls to January 2026 and
	// Pwn Island starts in late September.
	wantTitles := []string{"Midnight Sun CTF Quals", "DefCamp Capture the Flag"}
	if len(upcoming) != len(wantTitles) {
		t.Fatalf("got %d upcoming events, want %d", len(upcoming), len(wantTitles))
	}
	for i, want := range wantTitles {
		if upcoming[i].Title != want {
			t.Errorf("upcoming[%d].Title = %q, want %q", i, upcoming[i].Title, want)
		}
	}

	msg := telegram.FormatWeeklyDigest(upcoming, s.EventsURL())
	for _, want := range wantTitles {
		if !strings.Contains(msg, want) {
			t.Errorf("digest missing %q", want)
		}
	}
	if strings.Contains(msg, "Winter Byte Bash") {
		t.Error("digest should not contain an out-of-window event")
	}
}
