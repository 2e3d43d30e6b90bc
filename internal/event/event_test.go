package event

import "testing"

func TestNewEvent(t *testing.T) {
	evt := NewEvent("Example CTF", "20 Aug., 10:00 UTC", "20 Aug., 10:00 UTC to 22 Aug., 10:00 UTC", "https://ctftime.org/event/1234", "Online")

	if evt.Title != "Example CTF" {
		t.Errorf("Title = %q, want %q", evt.Title, "Example CTF")
	}
	if evt.StartText != "20 Aug., 10:00 UTC" {
		t.Errorf("StartText = %q", evt.StartText)
	}
	if evt.URL != "https://ctftime.org/event/1234" {
		t.Errorf("URL = %q", evt.URL)
	}
	if evt.Format != "Online" {
		t.Errorf("Format = %q, want %q", evt.Format, "Online")
	}
}

func TestEventStructuralEquality(t *testing.T) {
	a := NewEvent("CTF", "20 Aug., 10:00 UTC", "Unknown", "https://ctftime.org/event/1", "Jeopardy")
	b := NewEvent("CTF", "20 Aug., 10:00 UTC", "Unknown", "https://ctftime.org/event/1", "Jeopardy")

	if *a != *b {
		t.Error("events built from the same fields should compare equal")
	}
}
