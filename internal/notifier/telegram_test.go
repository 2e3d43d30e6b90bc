package notifier

import (
	"testing"

	"github.com/ctfwatch/ctftime-bot/internal/telegram"
)

func TestNewTelegramNotifier_Validation(t *testing.T) {
	client, err := telegram.NewClient("token")
	if err != nil {
		t.Fatalf("NewClient() error: %v", err)
	}

	if _, err := NewTelegramNotifier(nil, 123, "https://ctftime.org", 0); err == nil {
		t.Error("nil client should be rejected")
	}
	if _, err := NewTelegramNotifier(client, 0, "https://ctftime.org", 0); err == nil {
		t.Error("zero chat ID should be rejected")
	}
	if _, err := NewTelegramNotifier(client, 123, "https://ctftime.org", 0); err != nil {
		t.Errorf("valid notifier rejected: %v", err)
	}
}

func TestTelegramNotifier_NoEvents(t *testing.T) {
	client, err := telegram.NewClient("token")
	if err != nil {
		t.Fatalf("NewClient() error: %v", err)
	}

	n, err := NewTelegramNotifier(client, 123, "https://ctftime.org", 0)
	if err != nil {
		t.Fatal(err)
	}

	// No events means no message and no network activity.
	if err := n.Notify(nil); err != nil {
		t.Errorf("Notify(nil) error = %v, want nil", err)
	}
}
