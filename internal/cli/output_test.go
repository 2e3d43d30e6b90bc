package cli

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"
	"time"

	"github.com/ctfwatch/ctftime-bot/internal/event"
)

func sampleResult() *OutputResult {
	return &OutputResult{
		CheckedAt:  time.Date(2025, time.August, 15, 12, 0, 0, 0, time.UTC),
		Source:     "https://ctftime.org/event/list/upcoming",
		WindowDays: 7,
		Events: []*event.Event{
			event.NewEvent("Midnight Sun CTF Quals", "20 Aug., 10:00 UTC",
				"20 Aug., 10:00 UTC to 22 Aug. 2025, 10:00 UTC",
				"https://ctftime.org/event/2501", "Jeopardy"),
		},
		EventCount: 1,
	}
}

func TestWriteOutput_Text(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteOutput(&buf, sampleResult(), FormatText, false); err != nil {
		t.Fatalf("WriteOutput() error: %v", err)
	}

	out := buf.String()
	if !strings.Contains(out, "Midnight Sun CTF Quals") {
		t.Errorf("text output missing title:\n%s", out)
	}
	if !strings.Contains(out, "Total: 1 events in the next 7 days") {
		t.Errorf("text output missing total line:\n%s", out)
	}
	if strings.Contains(out, "Duration:") {
		t.Error("non-verbose output should not show duration")
	}
}

func TestWriteOutput_TextVerbose(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteOutput(&buf, sampleResult(), FormatText, true); err != nil {
		t.Fatalf("WriteOutput() error: %v", err)
	}

	out := buf.String()
	if !strings.Contains(out, "Duration: 20 Aug., 10:00 UTC to 22 Aug. 2025, 10:00 UTC") {
		t.Errorf("verbose output missing duration:\n%s", out)
	}
	if !strings.Contains(out, "URL: https://ctftime.org/event/2501") {
		t.Errorf("verbose output missing URL:\n%s", out)
	}
}

func TestWriteOutput_JSON(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteOutput(&buf, sampleResult(), FormatJSON, false); err != nil {
		t.Fatalf("WriteOutput() error: %v", err)
	}

	var decoded OutputResult
	if err := json.Unmarshal(buf.Bytes(), &decoded); err != nil {
		t.Fatalf("output is not valid JSON: %v", err)
	}
	if decoded.EventCount != 1 || len(decoded.Events) != 1 {
		t.Errorf("decoded = %+v", decoded)
	}
	if decoded.Events[0].Title != "Midnight Sun CTF Quals" {
		t.Errorf("title = %q", decoded.Events[0].Title)
	}
}

func TestWriteOutput_Empty(t *testing.T) {
	var buf bytes.Buffer
	result := &OutputResult{WindowDays: 7}
	if err := WriteOutput(&buf, result, FormatText, false); err != nil {
		t.Fatalf("WriteOutput() error: %v", err)
	}

	if !strings.Contains(buf.String(), "No events starting in the next 7 days.") {
		t.Errorf("unexpected empty output: %q", buf.String())
	}
}

func TestWriteOutput_UnknownFormat(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteOutput(&buf, sampleResult(), OutputFormat("xml"), false); err == nil {
		t.Error("unknown format should fail")
	}
}
