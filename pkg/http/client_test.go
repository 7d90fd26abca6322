package http

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type digest struct {
	Count int `json:"count"`
}

type ack struct {
	Received int `json:"received"`
}

type apiError struct {
	Error string `json:"error"`
}

func fastBackoff(retries int) *BackoffConfig {
	return &BackoffConfig{MaxRetries: retries, InitialInterval: time.Millisecond, Multiplier: 2}
}

func TestClient_PostJSON(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/hooks/digest", r.URL.Path)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
		assert.Equal(t, "secret", r.Header.Get("X-Token"))

		var body digest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		w.Header().Set("Content-Type", "application/json; charset=utf-8")
		_ = json.NewEncoder(w).Encode(ack{Received: body.Count})
	}))
	defer server.Close()

	client := NewHttpClient(server.URL+"/", ClientOptions{DefaultHeaders: map[string]string{"X-Token": "secret"}})

	resp, errResp, status, err := client.Post(context.Background(), "hooks/digest", nil, nil, digest{Count: 3}, &ack{}, &apiError{})
	require.NoError(t, err)
	assert.Nil(t, errResp)
	assert.Equal(t, http.StatusOK, status)
	assert.Equal(t, 3, resp.(*ack).Received)
}

func TestClient_ErrorResponse(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusBadRequest)
		_, _ = w.Write([]byte(`{"error":"bad digest"}`))
	}))
	defer server.Close()

	client := NewHttpClient(server.URL, ClientOptions{Backoff: fastBackoff(3)})

	_, errResp, status, err := client.Post(context.Background(), "/hooks", nil, nil, digest{}, &ack{}, &apiError{})
	assert.EqualError(t, err, "http error: status 400")
	assert.Equal(t, http.StatusBadRequest, status)
	assert.Equal(t, "bad digest", errResp.(*apiError).Error)
}

func TestClient_RetriesServerErrors(t *testing.T) {
	var calls int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if atomic.AddInt32(&calls, 1) < 3 {
			w.WriteHeader(http.StatusServiceUnavailable)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"received":1}`))
	}))
	defer server.Close()

	client := NewHttpClient(server.URL, ClientOptions{Logger: ZapLogger{}})

	resp, _, status, err := client.Request().
		WithMethod(POST).
		WithPath("/hooks").
		WithBody(digest{Count: 1}).
		WithSuccessResp(&ack{}).
		WithBackoff(fastBackoff(3)).
		Execute(context.Background())
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, status)
	assert.Equal(t, 1, resp.(*ack).Received)
	assert.Equal(t, int32(3), atomic.LoadInt32(&calls))
}

func TestClient_GivesUpAfterMaxRetries(t *testing.T) {
	var calls int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&calls, 1)
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer server.Close()

	client := NewHttpClient(server.URL, ClientOptions{Backoff: fastBackoff(2)})

	_, _, status, err := client.Get(context.Background(), "/", nil, nil, nil, nil)
	assert.Error(t, err)
	assert.Equal(t, http.StatusInternalServerError, status)
	assert.Equal(t, int32(3), atomic.LoadInt32(&calls))
}

func TestClient_Dismiss404(t *testing.T) {
	server := httptest.NewServer(http.NotFoundHandler())
	defer server.Close()

	client := NewHttpClient(server.URL, ClientOptions{Dismiss404: true})

	resp, errResp, status, err := client.Get(context.Background(), "/missing", map[string]string{"q": "a b"}, nil, &ack{}, nil)
	assert.NoError(t, err)
	assert.Nil(t, resp)
	assert.Nil(t, errResp)
	assert.Equal(t, http.StatusNotFound, status)
}

func TestBackoffConfig_Interval(t *testing.T) {
	backoff := &BackoffConfig{InitialInterval: 100 * time.Millisecond, MaxInterval: 300 * time.Millisecond, Multiplier: 2}

	assert.Equal(t, 100*time.Millisecond, backoff.interval(1))
	assert.Equal(t, 200*time.Millisecond, backoff.interval(2))
	assert.Equal(t, 300*time.Millisecond, backoff.interval(3))
	assert.Equal(t, 300*time.Millisecond, backoff.interval(6))
}

func TestBuildQueryString(t *testing.T) {
	assert.Equal(t, "a=1&q=hello+world", buildQueryString(map[string]string{"q": "hello world", "a": "1"}))
}
