package main

import (
	"strconv"
	"strings"
	"time"

	"github.com/ctfwatch/ctftime-bot/internal/filter"
	"github.com/ctfwatch/ctftime-bot/internal/logger"
	"github.com/ctfwatch/ctftime-bot/internal/telegram"
)

// handleCommand dispatches a chat message to its command handler. Unknown
// text is ignored so the bot can share a group chat.
func (b *bot) handleCommand(msg *telegram.Message) {
	command, arg := splitCommand(msg.Text)

	switch command {
	case "/ctf_check":
		b.handleCheck(msg.Chat.ID)
	case "/next_ctfs":
		b.handleNext(msg.Chat.ID, parseLimit(arg, b.cfg.Notify.DefaultListLimit))
	case "/start", "/help":
		b.send(msg.Chat.ID, helpText)
	}
}

const helpText = "🚩 <b>CTF Time Bot</b>\n\n" +
	"/ctf_check — CTFs starting in the next 7 days\n" +
	"/next_ctfs [N] — the next N upcoming CTFs (default 5)"

// handleCheck re-runs the full fetch-parse-filter-notify pipeline into the
// invoking chat. Unlike the startup flow, fetch failures produce a
// user-visible error message.
func (b *bot) handleCheck(chatID int64) {
	b.send(chatID, "🔍 Checking for upcoming CTFs in the next week...")

	html := b.scraper.FetchPage()
	if html == "" {
		b.send(chatID, "❌ Failed to fetch the CTFTime page")
		return
	}

	all := b.scraper.ParseEvents(html)
	upcoming := filter.Upcoming(all, time.Now().UTC(), b.cfg.Notify.WindowDays)

	if len(upcoming) == 0 {
		b.send(chatID, "📅 No CTFs found for the next week!")
		return
	}

	b.send(chatID, telegram.FormatDigest(upcoming, b.scraper.EventsURL(), b.cfg.Notify.DigestCap))
	logger.Info("Sent check result", logger.Fields{"chat_id": chatID, "events": len(upcoming)})
}

// handleNext renders the first limit events regardless of date.
func (b *bot) handleNext(chatID int64, limit int) {
	html := b.scraper.FetchPage()
	if html == "" {
		b.send(chatID, "❌ Failed to fetch the CTFTime page")
		return
	}

	events := b.scraper.ParseEvents(html)
	if len(events) == 0 {
		b.send(chatID, "📅 No upcoming CTFs found!")
		return
	}

	b.send(chatID, telegram.FormatNext(events, limit))
	logger.Info("Sent next list", logger.Fields{"chat_id": chatID, "limit": limit})
}

// splitCommand separates a message into its command word and the remainder.
// "/next_ctfs@SomeBot 3" becomes ("/next_ctfs", "3").
func splitCommand(text string) (command, arg string) {
	text = strings.TrimSpace(text)

	parts := strings.SplitN(text, " ", 2)
	command = parts[0]
	if len(parts) == 2 {
		arg = strings.TrimSpace(parts[1])
	}

	// Group chats address commands as /command@botname.
	if i := strings.Index(command, "@"); i >= 0 {
		command = command[:i]
	}

	return command, arg
}

// parseLimit parses an optional numeric argument, falling back to def for
// missing, malformed, or non-positive values.
func parseLimit(arg string, def int) int {
	if arg == "" {
		return def
	}
	n, err := strconv.Atoi(arg)
	if err != nil || n < 1 {
		return def
	}
	return n
}
