package utils

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"

	"recipehub/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func geminiServer(t *testing.T, handler http.HandlerFunc) *GeminiClient {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return NewGeminiClient(&config.Config{GeminiAPIKey: "k", GeminiAPIURL: srv.URL, GeminiModel: "test-model"})
}

func TestGenerateRecipe_SendsPromptAndJoinsParts(t *testing.T) {
	client := geminiServer(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v1beta/models/test-model:generateContent", r.URL.Path)
		assert.Equal(t, "k", r.Header.Get("x-goog-api-key"))
		assert.NotEmpty(t, r.Header.Get("X-Request-Id"))

		var body geminiRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		require.Len(t, body.Contents, 1)
		text := body.Contents[0].Parts[0].Text
		assert.True(t, strings.HasPrefix(text, chefInstruction))
		assert.True(t, strings.HasSuffix(text, "eggs, flour"))

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"candidates":[{"content":{"parts":[{"text":"Pancakes. "},{"text":"Mix and fry."}]}}]}`))
	})

	recipe, err := client.GenerateRecipe(context.Background(), "eggs, flour")
	require.NoError(t, err)
	assert.Equal(t, "Pancakes. Mix and fry.", recipe)
}

func TestGenerateRecipe_NotConfigured(t *testing.T) {
	client := NewGeminiClient(&config.Config{GeminiAPIURL: "http://127.0.0.1:1"})
	_, err := client.GenerateRecipe(context.Background(), "eggs")
	assert.ErrorIs(t, err, ErrAINotConfigured)
}

func TestGenerateRecipe_UpstreamError(t *testing.T) {
	var calls int32
	client := geminiServer(t, func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&calls, 1)
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusBadRequest)
		_, _ = w.Write([]byte(`{"error":{"code":400,"message":"API key not valid"}}`))
	})

	_, err := client.GenerateRecipe(context.Background(), "eggs")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "API key not valid")
	assert.EqualValues(t, 1, atomic.LoadInt32(&calls), "4xx is not retried")
}

func TestGenerateRecipe_EmptyAnswer(t *testing.T) {
	client := geminiServer(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"candidates":[]}`))
	})

	_, err := client.GenerateRecipe(context.Background(), "eggs")
	assert.Error(t, err)
}
