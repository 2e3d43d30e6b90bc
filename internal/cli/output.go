package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"time"

	"github.com/ctfwatch/ctftime-bot/internal/event"
)

// OutputFormat specifies the output format
type OutputFormat string

const (
	FormatText OutputFormat = "text"
	FormatJSON OutputFormat = "json"
)

// OutputResult contains data to be output
type OutputResult struct {
	CheckedAt  time.Time      `json:"checked_at"`
	Source     string         `json:"source"`
	WindowDays int            `json:"window_days"`
	AllEvents  bool           `json:"all_events,omitempty"`
	Events     []*event.Event `json:"events"`
	EventCount int            `json:"event_count"`
}

// WriteOutput writes the result in the specified format
func WriteOutput(w io.Writer, result *OutputResult, format OutputFormat, verbose bool) error {
	switch format {
	case FormatJSON:
		return writeJSON(w, result)
	case FormatText:
		return writeText(w, result, verbose)
	default:
		return fmt.Errorf("unknown format: %s", format)
	}
}

// writeJSON outputs results as JSON
func writeJSON(w io.Writer, result *OutputResult) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(result)
}

// writeText outputs results as human-readable text
func writeText(w io.Writer, result *OutputResult, verbose bool) error {
	if result.EventCount == 0 {
		if result.AllEvents {
			fmt.Fprintln(w, "No upcoming events found.")
		} else {
			fmt.Fprintf(w, "No events starting in the next %d days.\n", result.WindowDays)
		}
		return nil
	}

	for _, evt := range result.Events {
		fmt.Fprintf(w, "%s (starts %s)\n", evt.Title, evt.StartText)
		if verbose {
			fmt.Fprintf(w, "     Duration: %s\n", evt.Duration)
			if evt.Format != "" {
				fmt.Fprintf(w, "     Format: %s\n", evt.Format)
			}
			fmt.Fprintf(w, "     URL: %s\n", evt.URL)
		}
	}

	if result.AllEvents {
		fmt.Fprintf(w, "\nTotal: %d upcoming events\n", result.EventCount)
	} else {
		fmt.Fprintf(w, "\nTotal: %d events in the next %d days\n", result.EventCount, result.WindowDays)
	}

	return nil
}
