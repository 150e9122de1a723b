package openai_test

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/fwojciec/docqa"
	"github.com/fwojciec/docqa/openai"
	"github.com/openai/openai-go/v3/option"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestAnswerer(t *testing.T, handler http.HandlerFunc) *openai.Answerer {
	t.Helper()

	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	client := openai.NewClient("test-key", option.WithBaseURL(server.URL+"/"))
	return openai.NewAnswerer(client, "gpt-test")
}

func TestAnswerer_Answer(t *testing.T) {
	t.Parallel()

	t.Run("returns the first choice", func(t *testing.T) {
		t.Parallel()

		requests := make(chan string, 2)
		answerer := newTestAnswerer(t, func(w http.ResponseWriter, r *http.Request) {
			body, _ := io.ReadAll(r.Body)
			requests <- r.URL.Path
			requests <- string(body)
			w.Header().Set("Content-Type", "application/json")
			_, _ = w.Write([]byte(`{
				"id": "chatcmpl-1",
				"object": "chat.completion",
				"created": 1700000000,
				"model": "gpt-test",
				"choices": [{
					"index": 0,
					"message": {"role": "assistant", "content": "Dividends were raised.", "refusal": null},
					"finish_reason": "stop",
					"logprobs": null
				}]
			}`))
		})

		answer, err := answerer.Answer(context.Background(), "Question: dividends?")

		require.NoError(t, err)
		assert.Equal(t, "Dividends were raised.", answer)
		path, body := <-requests, <-requests
		assert.True(t, strings.HasSuffix(path, "/chat/completions"), path)
		assert.Contains(t, body, "Question: dividends?")
	})

	t.Run("makes a single request on failure", func(t *testing.T) {
		t.Parallel()

		calls := make(chan struct{}, 10)
		answerer := newTestAnswerer(t, func(w http.ResponseWriter, r *http.Request) {
			calls <- struct{}{}
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusUnauthorized)
			_, _ = w.Write([]byte(`{"error":{"message":"Incorrect API key provided","type":"invalid_request_error","code":"invalid_api_key"}}`))
		})

		_, err := answerer.Answer(context.Background(), "prompt")

		require.Error(t, err)
		assert.Equal(t, docqa.EBACKEND, docqa.ErrorCode(err))
		assert.Len(t, calls, 1)
	})

	t.Run("reports empty choices as backend errors", func(t *testing.T) {
		t.Parallel()

		answerer := newTestAnswerer(t, func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Content-Type", "application/json")
			_, _ = w.Write([]byte(`{"id":"chatcmpl-2","object":"chat.completion","created":1700000000,"model":"gpt-test","choices":[]}`))
		})

		_, err := answerer.Answer(context.Background(), "prompt")

		require.Error(t, err)
		assert.Equal(t, docqa.EBACKEND, docqa.ErrorCode(err))
		assert.Contains(t, docqa.ErrorMessage(err), "empty response")
	})
}

func TestAnswerer_Answer_ReturnsErrorWhenPromptEmpty(t *testing.T) {
	t.Parallel()

	_, err := openai.NewAnswerer(nil, "").Answer(context.Background(), "")

	require.Error(t, err)
	assert.Equal(t, docqa.EINVALID, docqa.ErrorCode(err))
}
