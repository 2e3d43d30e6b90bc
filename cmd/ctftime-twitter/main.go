package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/ctfwatch/ctftime-bot/internal/event"
	"github.com/ctfwatch/ctftime-bot/internal/notifier"
)

var (
	eventsFile = flag.String("events-file", "", "Path to events JSON file from `ctftime --format json` (or read from stdin)")
	dryRun     = flag.Bool("dry-run", false, "Print tweets without posting")
	maxTweets  = flag.Int("max-tweets", 10, "Maximum number of tweets to post")
)

func main() {
	flag.Parse()

	// Read events from file or stdin
	var reader io.Reader
	if *eventsFile != "" {
		f, err := os.Open(*eventsFile)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error opening events file: %v\n", err)
			os.Exit(1)
		}
		defer f.Close()
		reader = f
	} else {
		reader = os.Stdin
	}

	// Parse the CLI's JSON output
	var result struct {
		Events []*event.Event `json:"events"`
	}

	decoder := json.NewDecoder(reader)
	if err := decoder.Decode(&result); err != nil {
		fmt.Fprintf(os.Stderr, "Error parsing JSON: %v\n", err)
		os.Exit(1)
	}

	if len(result.Events) == 0 {
		fmt.Println("No events to tweet")
		os.Exit(0)
	}

	events := result.Events
	if len(events) > *maxTweets {
		events = events[:*maxTweets]
	}

	// Initialize Twitter client
	var tw notifier.Notifier
	if *dryRun {
		tw = notifier.NewDryRunNotifier()
		fmt.Printf("DRY RUN MODE - Would tweet %d events:\n\n", len(events))
	} else {
		client, err := notifier.NewTwitterNotifier()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error initializing Twitter client: %v\n", err)
			os.Exit(1)
		}
		tw = client
	}

	// Post tweets
	if err := tw.Notify(events); err != nil {
		fmt.Fprintf(os.Stderr, "Error posting tweets: %v\n", err)
		os.Exit(1)
	}

	if !*dryRun {
		fmt.Printf("Successfully posted %d tweets\n", len(events))
	}
}
