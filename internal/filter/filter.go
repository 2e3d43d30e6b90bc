// Package filter selects scraped CTF events whose start date falls inside
// the rolling 7-day window.
//
// Each event's raw start text is resolved to an absolute UTC calendar date
// (see the event package) and checked against the closed interval
// [today, today+7]. Events whose start text cannot be resolved are dropped
// with a logged reason; a bad date never aborts the batch. The relative
// order of retained events matches the input order.
package filter

import (
	"time"

	"github.com/ctfwatch/ctftime-bot/internal/event"
	"github.com/ctfwatch/ctftime-bot/internal/logger"
)

// WindowDays is the default width of the upcoming window.
const WindowDays = 7

// UpcomingWeek retains events starting within [today, today+7], anchored to
// now in UTC.
func UpcomingWeek(events []*event.Event, now time.Time) []*event.Event {
	return Upcoming(events, now, WindowDays)
}

// Upcoming retains events starting within the closed interval
// [today, today+days].
func Upcoming(events []*event.Event, now time.Time, days int) []*event.Event {
	from, to := event.Window(now, days)

	logger.Info("Filtering events", logger.Fields{
		"from": from.Format("2006-01-02"),
		"to":   to.Format("2006-01-02"),
	})

	upcoming := make([]*event.Event, 0)
	for _, evt := range events {
		date, err := event.ResolveStartDate(evt.StartText, now)
		if err != nil {
			logger.Warn("Skipping event with unparseable start text", logger.Fields{
				"title": evt.Title,
				"start": evt.StartText,
			})
			logger.IncrCounter("filter.events_unparseable")
			continue
		}

		if date.Before(from) || date.After(to) {
			logger.Debug("Event outside window", logger.Fields{
				"title": evt.Title,
				"date":  date.Format("2006-01-02"),
			})
			continue
		}

		upcoming = append(upcoming, evt)
	}

	logger.Info("Filtered events", logger.Fields{
		"total":    len(events),
		"upcoming": len(upcoming),
	})
	return upcoming
}
