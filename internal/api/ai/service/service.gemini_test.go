// Package aisvc - Test client Gemini với server giả lập.
package aisvc

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

func newTestClient(url string) *GeminiClient {
	return &GeminiClient{
		apiKey:     "test-key",
		apiURL:     url,
		httpClient: http.DefaultClient,
	}
}

func TestGenerateContent_MissingKey(t *testing.T) {
	client := &GeminiClient{httpClient: http.DefaultClient}
	_, err := client.GenerateContent(context.Background(), "hello")
	assert.Error(t, err, "thiếu API key phải trả lỗi trước khi gọi HTTP")
}

func TestGenerateContent_ParsesCandidate(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "test-key", r.Header.Get("x-goog-api-key"))
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
		w.Write([]byte(`{"candidates":[{"content":{"parts":[{"text":"Xin chào!"}]}}]}`))
	}))
	defer srv.Close()

	text, err := newTestClient(srv.URL).GenerateContent(context.Background(), "chào")
	assert.NoError(t, err)
	assert.Equal(t, "Xin chào!", text)
}

func TestGenerateContent_UpstreamErrorHidesBody(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusForbidden)
		w.Write([]byte(`{"error":{"message":"key invalid: test-key"}}`))
	}))
	defer srv.Close()

	_, err := newTestClient(srv.URL).GenerateContent(context.Background(), "chào")
	assert.Error(t, err)
	assert.NotContains(t, err.Error(), "test-key", "message lỗi không được lộ thông tin upstream")
}

func TestGenerateContent_EmptyCandidates(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"candidates":[]}`))
	}))
	defer srv.Close()

	_, err := newTestClient(srv.URL).GenerateContent(context.Background(), "chào")
	assert.Error(t, err, "response không có candidate phải trả lỗi")
}
