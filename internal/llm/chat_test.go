package llm

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
)

func chatHandler(t *testing.T, check func(req chatRequest)) http.HandlerFunc {
	t.Helper()
	return func(w http.ResponseWriter, r *http.Request) {
		var req chatRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			t.Errorf("decode chat request: %v", err)
		}
		if check != nil {
			check(req)
		}
		resp := chatResponse{
			ID:     "test-id",
			Object: "chat.completion",
			Choices: []chatChoice{{Index: 0}},
		}
		resp.Choices[0].Message.Role = "assistant"
		resp.Choices[0].Message.Content = "Response"
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(resp)
	}
}

func TestChatWithMessages(t *testing.T) {
	server := httptest.NewServer(chatHandler(t, func(req chatRequest) {
		if len(req.Messages) != 2 {
			t.Errorf("expected 2 messages, got %d", len(req.Messages))
		}
		if req.Model != "custom-model" {
			t.Errorf("model = %q, want custom-model", req.Model)
		}
		if req.MaxTokens != 100 {
			t.Errorf("max_tokens = %d, want 100", req.MaxTokens)
		}
	}))
	defer server.Close()

	client := NewChatClient(server.URL, "test-key", "test-model")
	messages := []Message{
		{Role: "system", Content: "You are a helpful assistant"},
		{Role: "user", Content: "Hello"},
	}

	reply, err := client.ChatWithMessages(context.Background(), messages, ChatParams{
		Model:       "custom-model",
		MaxTokens:   100,
		Temperature: 0.7,
	})
	if err != nil {
		t.Fatalf("ChatWithMessages() error = %v", err)
	}
	if reply != "Response" {
		t.Errorf("ChatWithMessages() reply = %v, want Response", reply)
	}
}

func TestChatWithMessages_DefaultModel(t *testing.T) {
	server := httptest.NewServer(chatHandler(t, func(req chatRequest) {
		if req.Model != "test-model" {
			t.Errorf("expected model test-model, got %s", req.Model)
		}
	}))
	defer server.Close()

	client := NewChatClient(server.URL, "test-key", "test-model")
	messages := []Message{{Role: "user", Content: "Hello"}}

	reply, err := client.ChatWithMessages(context.Background(), messages, ChatParams{})
	if err != nil {
		t.Fatalf("ChatWithMessages() error = %v", err)
	}
	if reply != "Response" {
		t.Errorf("ChatWithMessages() reply = %v, want Response", reply)
	}
}

func TestChatWithMessages_ServerError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "model not loaded", http.StatusInternalServerError)
	}))
	defer server.Close()

	client := NewChatClient(server.URL, "test-key", "test-model")
	if _, err := client.ChatWithMessages(context.Background(), []Message{{Role: "user", Content: "Hi"}}, ChatParams{}); err == nil {
		t.Fatal("ChatWithMessages() error = nil, want error on 500")
	}
}

func TestChatWithMessages_NoChoices(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(chatResponse{ID: "test-id"})
	}))
	defer server.Close()

	client := NewChatClient(server.URL, "test-key", "test-model")
	if _, err := client.ChatWithMessages(context.Background(), []Message{{Role: "user", Content: "Hi"}}, ChatParams{}); err == nil {
		t.Fatal("ChatWithMessages() error = nil, want error when no choices returned")
	}
}
