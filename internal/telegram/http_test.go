package telegram

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

// TestSendMessage_Success tests successful message sending
func TestSendMessage_Success(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != "POST" {
			t.Errorf("Expected POST request, got %s", r.Method)
		}
		if r.Header.Get("Content-Type") != "application/json" {
			t.Errorf("Expected Content-Type application/json, got %s", r.Header.Get("Content-Type"))
		}
		if !strings.HasSuffix(r.URL.Path, "/sendMessage") {
			t.Errorf("Expected sendMessage path, got %s", r.URL.Path)
		}

		var payload map[string]interface{}
		if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
			t.Errorf("decoding payload: %v", err)
		}
		if payload["parse_mode"] != "HTML" {
			t.Errorf("parse_mode = %v, want HTML", payload["parse_mode"])
		}
		if payload["chat_id"].(float64) != 12345 {
			t.Errorf("chat_id = %v, want 12345", payload["chat_id"])
		}

		response := map[string]interface{}{
			"ok": true,
			"result": map[string]interface{}{
				"message_id": 123,
				"chat": map[string]interface{}{
					"id": 12345,
				},
				"text": "Test message",
			},
		}
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(response) // nolint:errcheck
	}))
	defer server.Close()

	originalURL := apiBaseURL
	apiBaseURL = server.URL + "/"
	defer func() { apiBaseURL = originalURL }()

	client := &Client{
		botToken:   "test-token",
		httpClient: &http.Client{},
	}

	if err := client.SendMessage(12345, "Test message"); err != nil {
		t.Errorf("SendMessage() unexpected error: %v", err)
	}
}

// TestSendMessage_APIError tests API error handling
func TestSendMessage_APIError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		response := map[string]interface{}{
			"ok":          false,
			"description": "Bad Request: chat not found",
		}
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(response) // nolint:errcheck
	}))
	defer server.Close()

	originalURL := apiBaseURL
	apiBaseURL = server.URL + "/"
	defer func() { apiBaseURL = originalURL }()

	client := &Client{
		botToken:   "test-token",
		httpClient: &http.Client{},
	}

	err := client.SendMessage(12345, "Test message")
	if err == nil {
		t.Fatal("SendMessage() expected error, got nil")
	}
	if !strings.Contains(err.Error(), "chat not found") {
		t.Errorf("error should carry the API description, got %v", err)
	}
}

// TestSendMessage_EmptyText tests validation of empty messages
func TestSendMessage_EmptyText(t *testing.T) {
	client := &Client{
		botToken:   "test-token",
		httpClient: &http.Client{},
	}

	if err := client.SendMessage(12345, ""); err == nil {
		t.Error("SendMessage() with empty text should fail")
	}
}

// TestGetUpdates_Success tests long-poll update retrieval
func TestGetUpdates_Success(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !strings.HasSuffix(r.URL.Path, "/getUpdates") {
			t.Errorf("Expected getUpdates path, got %s", r.URL.Path)
		}

		response := map[string]interface{}{
			"ok": true,
			"result": []map[string]interface{}{
				{
					"update_id": 7,
					"message": map[string]interface{}{
						"message_id": 1,
						"chat":       map[string]interface{}{"id": 999, "type": "private"},
						"text":       "/ctf_check",
					},
				},
			},
		}
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(response) // nolint:errcheck
	}))
	defer server.Close()

	originalURL := apiBaseURL
	apiBaseURL = server.URL + "/"
	defer func() { apiBaseURL = originalURL }()

	client := &Client{
		botToken:   "test-token",
		httpClient: &http.Client{},
	}

	updates, err := client.GetUpdates(0, 1)
	if err != nil {
		t.Fatalf("GetUpdates() unexpected error: %v", err)
	}
	if len(updates) != 1 {
		t.Fatalf("got %d updates, want 1", len(updates))
	}
	if updates[0].UpdateID != 7 {
		t.Errorf("UpdateID = %d, want 7", updates[0].UpdateID)
	}
	if updates[0].Message == nil || updates[0].Message.Text != "/ctf_check" {
		t.Errorf("unexpected message: %+v", updates[0].Message)
	}
	if updates[0].Message.Chat.ID != 999 {
		t.Errorf("Chat.ID = %d, want 999", updates[0].Message.Chat.ID)
	}
}

// TestNewClient_Validation tests constructor validation
func TestNewClient_Validation(t *testing.T) {
	if _, err := NewClient(""); err == nil {
		t.Error("NewClient() with empty token should fail")
	}

	client, err := NewClient("token")
	if err != nil {
		t.Fatalf("NewClient() unexpected error: %v", err)
	}
	if client == nil {
		t.Fatal("NewClient() returned nil client")
	}
}
