// Package telegram provides Telegram Bot API integration for delivering CTF
// event notifications.
//
// The package sends HTML-formatted messages and long-polls for chat commands
// using simple HTTP requests. No external dependencies required - uses only
// the standard library.
//
// Authentication requires a bot token (from @BotFather); the target chat is
// identified by its numeric chat ID.
package telegram
