package app

import (
	"context"
	"io"
	"log/slog"
	"net"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupTestApp(t *testing.T) *App {
	t.Helper()
	t.Setenv("SESSION_SECRET", "test-secret")
	t.Setenv("SESSION_TTL", "1m")
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	a, err := New(logger)
	require.NoError(t, err)
	return a
}

func get(t *testing.T, url string) (int, string) {
	t.Helper()
	res, err := http.Get(url)
	require.NoError(t, err)
	defer res.Body.Close()
	body, err := io.ReadAll(res.Body)
	require.NoError(t, err)
	return res.StatusCode, string(body)
}

func TestServe(t *testing.T) {
	a := setupTestApp(t)
	l, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	base := "http://" + l.Addr().String()

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() {
		done <- a.Serve(ctx, l)
	}()

	code, body := get(t, base+"/status")
	assert.Equal(t, http.StatusOK, code)
	assert.Equal(t, "OK", body)

	code, body = get(t, base+"/")
	assert.Equal(t, http.StatusOK, code)
	assert.Contains(t, body, "<title>Minesweeper</title>")

	res, err := http.Post(base+"/game?difficulty=medium", "", nil)
	require.NoError(t, err)
	res.Body.Close()
	assert.Equal(t, http.StatusOK, res.StatusCode)
	assert.Equal(t, 1, a.store.Len())

	code, body = get(t, base+"/metrics")
	assert.Equal(t, http.StatusOK, code)
	assert.Contains(t, body, "minesweeper_games_started_total 1\n")
	assert.Contains(t, body, `http_requests_total{code="200",method="POST"} 1`)

	cancel()
	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("server did not shut down")
	}
}

func TestNewRejectsBadConfig(t *testing.T) {
	t.Setenv("SESSION_TTL", "forever")
	_, err := New(slog.New(slog.NewTextHandler(io.Discard, nil)))
	assert.Error(t, err)

	t.Setenv("SESSION_TTL", "1m")
	t.Setenv("COOKIES_SAMESITE", "sideways")
	_, err = New(slog.New(slog.NewTextHandler(io.Discard, nil)))
	assert.Error(t, err)
}
