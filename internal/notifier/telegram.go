package notifier

import (
	"fmt"

	"github.com/ctfwatch/ctftime-bot/internal/event"
	"github.com/ctfwatch/ctftime-bot/internal/logger"
	"github.com/ctfwatch/ctftime-bot/internal/telegram"
)

// TelegramNotifier posts a weekly digest message to a Telegram chat.
type TelegramNotifier struct {
	client     *telegram.Client
	chatID     int64
	listingURL string
	digestCap  int
}

// NewTelegramNotifier creates a Telegram notifier targeting the given chat.
// listingURL is linked from the digest's overflow note; a non-positive
// digestCap falls back to telegram.MaxDigestEvents.
func NewTelegramNotifier(client *telegram.Client, chatID int64, listingURL string, digestCap int) (*TelegramNotifier, error) {
	if client == nil {
		return nil, fmt.Errorf("telegram client is required")
	}
	if chatID == 0 {
		return nil, fmt.Errorf("chat ID is required")
	}
	if digestCap <= 0 {
		digestCap = telegram.MaxDigestEvents
	}

	return &TelegramNotifier{
		client:     client,
		chatID:     chatID,
		listingURL: listingURL,
		digestCap:  digestCap,
	}, nil
}

// Notify sends one digest message covering all events.
func (n *TelegramNotifier) Notify(events []*event.Event) error {
	if len(events) == 0 {
		logger.Info("No events to notify", nil)
		return nil
	}

	msg := telegram.FormatDigest(events, n.listingURL, n.digestCap)
	if err := n.client.SendMessage(n.chatID, msg); err != nil {
		return fmt.Errorf("sending digest: %w", err)
	}

	logger.Info("Sent notification", logger.Fields{
		"chat_id": n.chatID,
		"events":  len(events),
	})
	return nil
}
