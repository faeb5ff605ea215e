package ai_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"moodring/internal/ai"

	"github.com/stretchr/testify/assert"
)

func TestClient_Complete(t *testing.T) {
	var gotAuth string
	var gotBody map[string]interface{}

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/v1/chat/completions", r.URL.Path)
		gotAuth = r.Header.Get("Authorization")
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&gotBody))

		json.NewEncoder(w).Encode(map[string]interface{}{
			"choices": []map[string]interface{}{
				{"message": map[string]string{"role": "assistant", "content": "happy,grateful"}},
			},
		})
	}))
	defer server.Close()

	client := ai.NewClient("test-key", server.URL, "test-model")
	content, err := client.Complete(context.Background(), "classify this")
	assert.NoError(t, err)
	assert.Equal(t, "happy,grateful", content)

	assert.Equal(t, "Bearer test-key", gotAuth)
	assert.Equal(t, "test-model", gotBody["model"])
	// Low temperature and a small completion: classification, not generation.
	assert.Equal(t, 0.1, gotBody["temperature"])
	assert.Equal(t, float64(50), gotBody["max_tokens"])

	messages := gotBody["messages"].([]interface{})
	assert.Len(t, messages, 1)
	message := messages[0].(map[string]interface{})
	assert.Equal(t, "user", message["role"])
	assert.Equal(t, "classify this", message["content"])
}

func TestClient_Complete_NonOKStatus(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"error": "rate limited"}`, http.StatusTooManyRequests)
	}))
	defer server.Close()

	client := ai.NewClient("test-key", server.URL, "")
	_, err := client.Complete(context.Background(), "classify this")
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "429")
}

func TestClient_Complete_MalformedResponse(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("not json at all"))
	}))
	defer server.Close()

	client := ai.NewClient("test-key", server.URL, "")
	_, err := client.Complete(context.Background(), "classify this")
	assert.Error(t, err)
}

func TestClient_Complete_NoChoices(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"choices": []}`))
	}))
	defer server.Close()

	client := ai.NewClient("test-key", server.URL, "")
	_, err := client.Complete(context.Background(), "classify this")
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "no choices")
}

func TestClient_Complete_ServerUnreachable(t *testing.T) {
	// A server that is immediately closed leaves a refused port behind.
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	server.Close()

	client := ai.NewClient("test-key", server.URL, "")
	_, err := client.Complete(context.Background(), "classify this")
	assert.Error(t, err)
}
