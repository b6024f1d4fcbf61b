package generation

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRemoteClient_Generate(t *testing.T) {
	responseCards := []Card{
		{Question: "O que é Go?", Answer: "Uma linguagem compilada.", Tag: "go"},
		{Question: "O que é uma goroutine?", Answer: "Uma thread leve gerida pelo runtime.", Tag: "go"},
		{Question: "O que é um canal?", Answer: "Um meio de comunicação entre goroutines.", Tag: "go"},
	}

	t.Run("forwards the request and returns the cards", func(t *testing.T) {
		var gotBody generateRequestBody
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			require.NoError(t, json.NewDecoder(r.Body).Decode(&gotBody))
			w.Header().Set("Content-Type", "application/json")
			require.NoError(t, json.NewEncoder(w).Encode(generateResponseBody{Flashcards: responseCards}))
		}))
		defer server.Close()

		client := NewRemoteClient(server.URL, DefaultMaxRetryAttempts)
		got, err := client.Generate(context.Background(), Request{Topic: "Go", Quantity: 5, Style: StyleExample})
		require.NoError(t, err)

		assert.Equal(t, responseCards, got)
		assert.Equal(t, generateRequestBody{
			Topic:            "Go",
			Quantity:         5,
			StyleInstruction: "Inclua exemplos práticos e aplicações do mundo real.",
		}, gotBody)
	})

	t.Run("caps the result at the requested quantity", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Content-Type", "application/json")
			require.NoError(t, json.NewEncoder(w).Encode(generateResponseBody{Flashcards: responseCards}))
		}))
		defer server.Close()

		client := NewRemoteClient(server.URL, DefaultMaxRetryAttempts)
		got, err := client.Generate(context.Background(), Request{Topic: "Go", Quantity: 2, Style: StyleQuestion})
		require.NoError(t, err)
		assert.Equal(t, responseCards[:2], got)
	})

	t.Run("retries server errors until the backend recovers", func(t *testing.T) {
		var calls int
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			calls++
			if calls < 3 {
				w.WriteHeader(http.StatusServiceUnavailable)
				return
			}
			w.Header().Set("Content-Type", "application/json")
			require.NoError(t, json.NewEncoder(w).Encode(generateResponseBody{Flashcards: responseCards[:1]}))
		}))
		defer server.Close()

		client := NewRemoteClient(server.URL, DefaultMaxRetryAttempts)
		got, err := client.Generate(context.Background(), Request{Topic: "Go", Quantity: 1, Style: StyleQuestion})
		require.NoError(t, err)
		assert.Equal(t, responseCards[:1], got)
		assert.Equal(t, 3, calls)
	})

	t.Run("a client error fails without retrying", func(t *testing.T) {
		var calls int
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			calls++
			w.WriteHeader(http.StatusBadRequest)
		}))
		defer server.Close()

		client := NewRemoteClient(server.URL, DefaultMaxRetryAttempts)
		got, err := client.Generate(context.Background(), Request{Topic: "Go", Quantity: 1, Style: StyleQuestion})
		assert.ErrorIs(t, err, ErrGenerationFailed)
		assert.Nil(t, got)
		assert.Equal(t, 1, calls)
	})

	t.Run("gives up after exhausting the retry budget", func(t *testing.T) {
		var calls int
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			calls++
			w.WriteHeader(http.StatusInternalServerError)
		}))
		defer server.Close()

		client := NewRemoteClient(server.URL, 1)
		got, err := client.Generate(context.Background(), Request{Topic: "Go", Quantity: 1, Style: StyleQuestion})
		assert.ErrorIs(t, err, ErrGenerationFailed)
		assert.Nil(t, got)
		assert.Equal(t, 2, calls)
	})

	t.Run("rejects an invalid request before calling the backend", func(t *testing.T) {
		var calls int
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			calls++
		}))
		defer server.Close()

		client := NewRemoteClient(server.URL, DefaultMaxRetryAttempts)
		_, err := client.Generate(context.Background(), Request{Topic: "", Quantity: 1, Style: StyleQuestion})
		assert.ErrorIs(t, err, ErrGenerationFailed)
		assert.Zero(t, calls)
	})
}
