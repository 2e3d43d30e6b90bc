package main

import (
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/ctfwatch/ctftime-bot/internal/config"
	"github.com/ctfwatch/ctftime-bot/internal/filter"
	"github.com/ctfwatch/ctftime-bot/internal/logger"
	"github.com/ctfwatch/ctftime-bot/internal/notifier"
	"github.com/ctfwatch/ctftime-bot/internal/scraper"
	"github.com/ctfwatch/ctftime-bot/internal/telegram"
	"github.com/joho/godotenv"
)

var (
	configPath   = flag.String("config", "", "Path to optional YAML config file")
	dryRun       = flag.Bool("dry-run", false, "Print the digest instead of sending it")
	loop         = flag.Bool("loop", false, "Run continuously with long polling (for on-demand commands)")
	loopDuration = flag.Duration("loop-duration", 5*time.Hour+50*time.Minute, "Maximum duration for loop mode (default 5h50m)")
	verbose      = flag.Bool("verbose", false, "Enable debug logging")
)

func main() {
	// Missing .env is fine; the environment may already be populated.
	godotenv.Load() // nolint:errcheck

	flag.Parse()

	if *verbose {
		logger.SetDefault(logger.New(logger.LevelDebug, os.Stdout))
	}

	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}
	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	if err := cfg.ValidateCredentials(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	client, err := telegram.NewClient(cfg.BotToken)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating Telegram client: %v\n", err)
		os.Exit(1)
	}

	bot := newBot(cfg, client, *dryRun)

	if *loop {
		bot.runLoop(*loopDuration)
	} else {
		bot.runOnce()
	}
}

// bot ties one invocation's collaborators together. There is no state
// shared between runs; a fresh bot is built on every process start.
type bot struct {
	cfg     *config.Config
	client  *telegram.Client
	scraper *scraper.Scraper
	dryRun  bool
}

func newBot(cfg *config.Config, client *telegram.Client, dryRun bool) *bot {
	return &bot{
		cfg:     cfg,
		client:  client,
		scraper: scraper.NewWithOptions(cfg.Scrape.EventsURL, cfg.Scrape.UserAgent, cfg.Scrape.Timeout()),
		dryRun:  dryRun,
	}
}

// runOnce performs the startup check-and-notify flow and returns. Recurring
// execution is an external scheduler's job.
func (b *bot) runOnce() {
	logger.Info("Checking for upcoming CTFs in the next week", nil)

	html := b.scraper.FetchPage()
	if html == "" {
		logger.Error("Failed to fetch events page, nothing to send", nil, nil)
		return
	}

	all := b.scraper.ParseEvents(html)
	upcoming := filter.Upcoming(all, time.Now().UTC(), b.cfg.Notify.WindowDays)

	if len(upcoming) == 0 {
		logger.Info("No CTFs found for the upcoming week", nil)
		return
	}

	if b.dryRun {
		fmt.Printf("[DRY RUN] Would send digest with %d events:\n\n%s\n",
			len(upcoming), telegram.FormatDigest(upcoming, b.scraper.EventsURL(), b.cfg.Notify.DigestCap))
		return
	}

	n, err := notifier.NewTelegramNotifier(b.client, b.cfg.ChatID, b.scraper.EventsURL(), b.cfg.Notify.DigestCap)
	if err != nil {
		logger.Error("Failed to create notifier", nil, err)
		return
	}

	if err := n.Notify(upcoming); err != nil {
		logger.Error("Failed to send notification", logger.Fields{"chat_id": b.cfg.ChatID}, err)
	}
}

// runLoop long-polls for chat commands until the duration elapses.
func (b *bot) runLoop(duration time.Duration) {
	logger.Info("Starting long polling loop", logger.Fields{"duration": duration.String()})
	startTime := time.Now()
	offset := 0

	for {
		if time.Since(startTime) >= duration {
			logger.Info("Reached time limit, exiting gracefully", logger.Fields{"duration": duration.String()})
			break
		}

		updates, err := b.client.GetUpdates(offset, 30)
		if err != nil {
			logger.Error("Failed to get updates", nil, err)
			time.Sleep(5 * time.Second) // Brief pause before polling again
			continue
		}

		for _, update := range updates {
			if update.UpdateID >= offset {
				offset = update.UpdateID + 1
			}
			if update.Message == nil {
				continue
			}

			logger.Info("Received message", logger.Fields{
				"from":    update.Message.From.FirstName,
				"chat_id": update.Message.Chat.ID,
				"text":    update.Message.Text,
			})

			b.handleCommand(update.Message)
		}
	}
}

// send delivers a message to a chat, honoring dry-run mode.
func (b *bot) send(chatID int64, text string) {
	if b.dryRun {
		fmt.Printf("[DRY RUN] Would send to %d:\n%s\n\n", chatID, text)
		return
	}

	if err := b.client.SendMessage(chatID, text); err != nil {
		logger.Error("Failed to send response", logger.Fields{"chat_id": chatID}, err)
	}
}
