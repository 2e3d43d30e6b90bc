// Package config provides configuration management for the CTFTime bot.
//
// The required values, the Telegram bot token and the target chat ID, come
// from the environment (TELEGRAM_BOT_TOKEN, TELEGRAM_CHAT_ID). An
// optional YAML file tunes the scrape itself: listing URL, User-Agent,
// timeout, window width, digest cap, and the default list limit.
package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"time"

	"gopkg.in/yaml.v3"
)

// Configuration validation errors.
var (
	ErrMissingBotToken  = errors.New("bot token is required (TELEGRAM_BOT_TOKEN)")
	ErrMissingChatID    = errors.New("chat ID is required (TELEGRAM_CHAT_ID)")
	ErrInvalidChatID    = errors.New("chat ID must be a non-zero integer")
	ErrMissingEventsURL = errors.New("scrape.events_url is required")
	ErrInvalidTimeout   = errors.New("scrape.timeout_sec must be at least 1")
	ErrInvalidWindow    = errors.New("notify.window_days must be at least 1")
	ErrInvalidDigestCap = errors.New("notify.digest_cap must be at least 1")
	ErrInvalidListLimit = errors.New("notify.default_list_limit must be at least 1")
)

// Config represents the complete bot configuration.
type Config struct {
	BotToken string       `yaml:"-"`
	ChatID   int64        `yaml:"-"`
	Scrape   ScrapeConfig `yaml:"scrape"`
	Notify   NotifyConfig `yaml:"notify"`
}

// ScrapeConfig contains fetch/parse settings.
type ScrapeConfig struct {
	EventsURL  string `yaml:"events_url"`
	UserAgent  string `yaml:"user_agent"`
	TimeoutSec int    `yaml:"timeout_sec"`
}

// NotifyConfig contains notification settings.
type NotifyConfig struct {
	WindowDays       int `yaml:"window_days"`
	DigestCap        int `yaml:"digest_cap"`
	DefaultListLimit int `yaml:"default_list_limit"`
}

// Defaults returns the configuration used when no YAML file is given.
func Defaults() *Config {
	return &Config{
		Scrape: ScrapeConfig{
			EventsURL:  "https://ctftime.org/event/list/upcoming",
			UserAgent:  "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/91.0.4472.124 Safari/537.36",
			TimeoutSec: 15,
		},
		Notify: NotifyConfig{
			WindowDays:       7,
			DigestCap:        10,
			DefaultListLimit: 5,
		},
	}
}

// Load builds the configuration from the environment and an optional YAML
// file. An empty path keeps the defaults. The environment is read after the
// file, so TELEGRAM_BOT_TOKEN and TELEGRAM_CHAT_ID always win.
func Load(path string) (*Config, error) {
	cfg := Defaults()

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("reading config file: %w", err)
		}
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parsing config file: %w", err)
		}
	}

	cfg.BotToken = os.Getenv("TELEGRAM_BOT_TOKEN")

	if raw := os.Getenv("TELEGRAM_CHAT_ID"); raw != "" {
		chatID, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("%w: %q", ErrInvalidChatID, raw)
		}
		cfg.ChatID = chatID
	}

	return cfg, nil
}

// Timeout returns the scrape timeout as a duration.
func (c *ScrapeConfig) Timeout() time.Duration {
	return time.Duration(c.TimeoutSec) * time.Second
}

// Validate checks the configuration, returning the first problem found.
// Token and chat ID are validated separately by ValidateCredentials so the
// CLI can run without them.
func (c *Config) Validate() error {
	if c.Scrape.EventsURL == "" {
		return ErrMissingEventsURL
	}
	if c.Scrape.TimeoutSec < 1 {
		return ErrInvalidTimeout
	}
	if c.Notify.WindowDays < 1 {
		return ErrInvalidWindow
	}
	if c.Notify.DigestCap < 1 {
		return ErrInvalidDigestCap
	}
	if c.Notify.DefaultListLimit < 1 {
		return ErrInvalidListLimit
	}
	return nil
}

// ValidateCredentials checks the values the bot cannot run without.
func (c *Config) ValidateCredentials() error {
	if c.BotToken == "" {
		return ErrMissingBotToken
	}
	if c.ChatID == 0 {
		return ErrMissingChatID
	}
	return nil
}
