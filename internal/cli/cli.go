package cli

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/ctfwatch/ctftime-bot/internal/config"
	"github.com/ctfwatch/ctftime-bot/internal/filter"
	"github.com/ctfwatch/ctftime-bot/internal/scraper"
	"github.com/spf13/cobra"
)

const (
	ExitSuccess = 0
	ExitError   = 1
)

var (
	flagConfig  string
	flagAll     bool
	flagWindow  int
	flagLimit   int
	flagFormat  string
	flagVerbose bool
)

// NewRootCmd creates the root command
func NewRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "ctftime",
		Short: "List upcoming CTF competitions from ctftime.org",
		Long: `A CLI tool to list upcoming CTF competitions scraped from ctftime.org.
By default only events starting within the next 7 days are shown; use --all
for the full listing. Output can be piped as JSON to ctftime-twitter.`,
		RunE: runCheck,
	}

	cmd.Flags().StringVar(&flagConfig, "config", "", "Path to optional YAML config file")
	cmd.Flags().BoolVar(&flagAll, "all", false, "Show all upcoming events, not just the next window")
	cmd.Flags().IntVar(&flagWindow, "window", 0, "Window width in days (default from config, 7)")
	cmd.Flags().IntVar(&flagLimit, "limit", 0, "Maximum number of events to show (0 = no limit)")
	cmd.Flags().StringVar(&flagFormat, "format", "text", "Output format: text or json")
	cmd.Flags().BoolVar(&flagVerbose, "verbose", false, "Enable verbose logging")

	return cmd
}

// runCheck is the main command logic
func runCheck(cmd *cobra.Command, args []string) error {
	format := OutputFormat(strings.ToLower(flagFormat))
	if format != FormatText && format != FormatJSON {
		return fmt.Errorf("invalid format: %s (must be 'text' or 'json')", flagFormat)
	}

	cfg, err := config.Load(flagConfig)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}

	windowDays := cfg.Notify.WindowDays
	if flagWindow > 0 {
		windowDays = flagWindow
	}

	sc := scraper.NewWithOptions(cfg.Scrape.EventsURL, cfg.Scrape.UserAgent, cfg.Scrape.Timeout())

	if flagVerbose {
		fmt.Fprintf(os.Stderr, "Fetching events from %s\n", sc.EventsURL())
	}

	html := sc.FetchPage()
	if html == "" {
		return fmt.Errorf("failed to fetch events page")
	}

	events := sc.ParseEvents(html)

	if flagVerbose {
		fmt.Fprintf(os.Stderr, "Parsed %d total events\n", len(events))
	}

	now := time.Now().UTC()
	shown := events
	if !flagAll {
		shown = filter.Upcoming(events, now, windowDays)
	}

	if flagLimit > 0 && len(shown) > flagLimit {
		shown = shown[:flagLimit]
	}

	result := &OutputResult{
		CheckedAt:  now,
		Source:     sc.EventsURL(),
		WindowDays: windowDays,
		AllEvents:  flagAll,
		Events:     shown,
		EventCount: len(shown),
	}

	return WriteOutput(os.Stdout, result, format, flagVerbose)
}
