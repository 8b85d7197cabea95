package http

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestClient(retries int) IClient {
	return NewClient(ClientConfig{
		Timeout:   time.Second,
		Retries:   retries,
		RetryWait: time.Millisecond,
	})
}

func TestPostRetriesWithFullBody(t *testing.T) {
	var mu sync.Mutex
	var bodies []string

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		raw, err := io.ReadAll(r.Body)
		require.NoError(t, err)
		mu.Lock()
		bodies = append(bodies, string(raw))
		attempt := len(bodies)
		mu.Unlock()
		if attempt == 1 {
			w.WriteHeader(http.StatusInternalServerError)
			return
		}
		w.Write([]byte(`{"ok":true}`))
	}))
	defer srv.Close()

	c := newTestClient(2)
	resp, status, err := c.Post(context.Background(), srv.URL, map[string]string{"q": "견적"}, nil)
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, status)
	assert.JSONEq(t, `{"ok":true}`, string(resp))

	mu.Lock()
	defer mu.Unlock()
	require.Len(t, bodies, 2)
	// The retried attempt must carry the same payload as the first one.
	assert.JSONEq(t, `{"q":"견적"}`, bodies[0])
	assert.JSONEq(t, `{"q":"견적"}`, bodies[1])
}

func TestGetRetriesExhausted(t *testing.T) {
	var mu sync.Mutex
	attempts := 0
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		mu.Lock()
		attempts++
		mu.Unlock()
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer srv.Close()

	c := newTestClient(2)
	_, status, err := c.Get(context.Background(), srv.URL, nil)
	require.NoError(t, err)
	assert.Equal(t, http.StatusServiceUnavailable, status)

	mu.Lock()
	defer mu.Unlock()
	assert.Equal(t, 3, attempts)
}

func TestPostSetsHeaders(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
		assert.Equal(t, "Bearer token-1", r.Header.Get("Authorization"))
		w.Write([]byte(`{}`))
	}))
	defer srv.Close()

	c := newTestClient(0)
	_, status, err := c.Post(context.Background(), srv.URL, map[string]int{"n": 1}, map[string]string{
		"Authorization": "Bearer token-1",
	})
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, status)
}

func TestGetCancelledContextStopsRetrying(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	c := NewClient(ClientConfig{Timeout: time.Second, Retries: 5, RetryWait: time.Minute})
	_, _, err := c.Get(ctx, srv.URL, nil)
	require.Error(t, err)
}
