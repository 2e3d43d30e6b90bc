package telegram

import (
	"fmt"
	"strings"

	"github.com/ctfwatch/ctftime-bot/internal/event"
)

// MaxDigestEvents caps the number of event sections in a single digest
// message; events past the cap collapse into an overflow note.
const MaxDigestEvents = 10

// FormatWeeklyDigest formats the events starting in the next 7 days as one
// HTML message, capped at MaxDigestEvents sections.
func FormatWeeklyDigest(events []*event.Event, listingURL string) string {
	return FormatDigest(events, listingURL, MaxDigestEvents)
}

// FormatDigest is FormatWeeklyDigest with a caller-supplied section cap.
// listingURL is linked from the overflow note when more events exist than
// the cap allows.
func FormatDigest(events []*event.Event, listingURL string, maxSections int) string {
	var msg strings.Builder

	msg.WriteString("🚩 <b>Upcoming CTFs This Week</b>\n\n")
	msg.WriteString("Here are the CTFs happening in the next 7 days!\n\n")

	shown := events
	if len(shown) > maxSections {
		shown = shown[:maxSections]
	}

	for _, evt := range shown {
		writeEventSection(&msg, evt)
	}

	if extra := len(events) - maxSections; extra > 0 {
		msg.WriteString(fmt.Sprintf("📝 And %d more CTF", extra))
		if extra != 1 {
			msg.WriteString("s")
		}
		msg.WriteString(fmt.Sprintf("! Check <a href=\"%s\">CTFTime</a> for the full list.\n\n", listingURL))
	}

	msg.WriteString("<i>CTF Time Bot • Next 7 Days</i>")

	return msg.String()
}

// FormatNext formats the first limit events of an unfiltered sequence,
// regardless of date.
func FormatNext(events []*event.Event, limit int) string {
	if limit > len(events) {
		limit = len(events)
	}

	var msg strings.Builder

	msg.WriteString("🚩 <b>Next Upcoming CTFs</b>\n\n")
	msg.WriteString(fmt.Sprintf("Here are the next %d upcoming CTFs:\n\n", limit))

	for _, evt := range events[:limit] {
		writeEventSection(&msg, evt)
	}

	msg.WriteString("<i>CTF Time Bot</i>")

	return msg.String()
}

// writeEventSection renders one titled event block.
func writeEventSection(msg *strings.Builder, evt *event.Event) {
	msg.WriteString(fmt.Sprintf("🎯 <b>%s</b>\n", evt.Title))
	msg.WriteString(fmt.Sprintf("<b>Start:</b> %s\n", evt.StartText))
	msg.WriteString(fmt.Sprintf("<b>Duration:</b> %s\n", evt.Duration))
	msg.WriteString(fmt.Sprintf("<b>Format:</b> %s\n", evt.Format))
	msg.WriteString(fmt.Sprintf("🔗 <a href=\"%s\">Event Link</a>\n\n", evt.URL))
}
