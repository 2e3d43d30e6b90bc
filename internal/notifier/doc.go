// Package notifier provides notification interfaces and implementations for
// upcoming CTF events.
//
// The notifier package supports posting event notifications to various
// platforms including Telegram and Twitter. It handles authentication,
// rate limiting between posts, and message formatting for each channel.
package notifier
