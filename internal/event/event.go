package event

// Event represents a single CTF competition listing scraped from the
// upcoming-events table. Events are plain values created fresh on every
// run; there is no identity beyond the fields themselves and nothing is
// persisted between runs.
type Event struct {
	Title     string `json:"title"`
	StartText string `json:"start_text"`
	Duration  string `json:"duration"`
	URL       string `json:"url"`
	Format    string `json:"format,omitempty"`
}

// NewEvent creates a new Event.
func NewEvent(title, startText, duration, url, format string) *Event {
	return &Event{
		Title:     title,
		StartText: startText,
		Duration:  duration,
		URL:       url,
		Format:    format,
	}
}
