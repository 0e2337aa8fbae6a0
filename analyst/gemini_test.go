package analyst

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"alpha-terminal/config"
)

func geminiReply(w http.ResponseWriter, text string) {
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(map[string]any{
		"candidates": []map[string]any{
			{"content": map[string]any{"role": "model", "parts": []map[string]any{{"text": text}}}},
		},
	})
}

func newTestClient(t *testing.T, h http.HandlerFunc) *GeminiClient {
	t.Helper()
	srv := httptest.NewServer(h)
	t.Cleanup(srv.Close)
	return NewGeminiClient(config.GeminiConfig{BaseURL: srv.URL, Model: "test-model", Timeout: 5 * time.Second})
}

func TestAnalyzeSuccess(t *testing.T) {
	var captured generateContentRequest
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/v1beta/models/test-model:generateContent", r.URL.Path)
		assert.Equal(t, "secret", r.Header.Get("x-goog-api-key"))
		raw, err := io.ReadAll(r.Body)
		require.NoError(t, err)
		require.NoError(t, json.Unmarshal(raw, &captured))
		geminiReply(w, `{"ticker":"XOM","action":"BUY","probability":78,"horizon":"MID_TERM","reasoning":"Energy policy catalyst","catalystKeyword":"Drill"}`)
	})

	res, err := client.Analyze(context.Background(), "DRILL, BABY, DRILL!", "secret")
	require.NoError(t, err)
	require.NotNil(t, res.Ticker)
	assert.Equal(t, "XOM", *res.Ticker)
	require.NotNil(t, res.Probability)
	assert.Equal(t, 78, *res.Probability)
	assert.Nil(t, res.Name)
	assert.Nil(t, res.Sector)

	require.Len(t, captured.Contents, 1)
	assert.Contains(t, captured.Contents[0].Parts[0].Text, "DRILL, BABY, DRILL!")
	assert.Contains(t, captured.SystemInstruction.Parts[0].Text, "Drill Baby Drill")
	assert.Equal(t, "application/json", captured.GenerationConfig.ResponseMIMEType)
	require.NotNil(t, captured.GenerationConfig.ResponseSchema)
	assert.Equal(t, []string{"SHORT_TERM", "MID_TERM", "LONG_TERM"}, captured.GenerationConfig.ResponseSchema.Properties["horizon"].Enum)
	assert.ElementsMatch(t, []string{"ticker", "action", "probability", "reasoning", "horizon"}, captured.GenerationConfig.ResponseSchema.Required)
}

func TestAnalyzeMissingKeySkipsRequest(t *testing.T) {
	var calls int32
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&calls, 1)
	})

	_, err := client.Analyze(context.Background(), "Tariffs", "")
	assert.ErrorIs(t, err, ErrMissingAPIKey)
	assert.Zero(t, atomic.LoadInt32(&calls))
}

func TestAnalyzeFailures(t *testing.T) {
	tests := []struct {
		name    string
		handler http.HandlerFunc
		target  error
	}{
		{
			name: "auth error",
			handler: func(w http.ResponseWriter, r *http.Request) {
				w.Header().Set("Content-Type", "application/json")
				w.WriteHeader(http.StatusUnauthorized)
				_, _ = w.Write([]byte(`{"error":{"code":401,"message":"API key not valid"}}`))
			},
		},
		{
			name: "no candidates",
			handler: func(w http.ResponseWriter, r *http.Request) {
				w.Header().Set("Content-Type", "application/json")
				_, _ = w.Write([]byte(`{"candidates":[]}`))
			},
			target: ErrEmptyResponse,
		},
		{
			name: "blank text",
			handler: func(w http.ResponseWriter, r *http.Request) {
				geminiReply(w, "   ")
			},
			target: ErrEmptyResponse,
		},
		{
			name: "null text",
			handler: func(w http.ResponseWriter, r *http.Request) {
				geminiReply(w, "null")
			},
			target: ErrEmptyResponse,
		},
		{
			name: "not json",
			handler: func(w http.ResponseWriter, r *http.Request) {
				geminiReply(w, "BUY XOM, trust me")
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client := newTestClient(t, tt.handler)
			res, err := client.Analyze(context.Background(), "Fake News!", "secret")
			require.Error(t, err)
			assert.Nil(t, res)
			if tt.target != nil {
				assert.ErrorIs(t, err, tt.target)
			}
		})
	}
}

func TestAnalyzeTransportError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	url := srv.URL
	srv.Close()

	client := NewGeminiClient(config.GeminiConfig{BaseURL: url, Timeout: time.Second})
	_, err := client.Analyze(context.Background(), "DOGE", "secret")
	assert.Error(t, err)
}
