package notifier

import (
	"fmt"

	"github.com/ctfwatch/ctftime-bot/internal/event"
)

// DryRunNotifier prints what would be posted without actually posting
type DryRunNotifier struct{}

// NewDryRunNotifier creates a new dry-run notifier
func NewDryRunNotifier() *DryRunNotifier {
	return &DryRunNotifier{}
}

// Notify prints the posts that would be made
func (n *DryRunNotifier) Notify(events []*event.Event) error {
	for i, evt := range events {
		post := formatTweet(evt)
		fmt.Printf("--- Post %d/%d ---\n", i+1, len(events))
		fmt.Println(post)
		fmt.Printf("\n(Length: %d characters)\n\n", len(post))
	}
	return nil
}
