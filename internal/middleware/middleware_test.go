package middleware

import (
	"bytes"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/BrevinJohnston/BrevinJohnston.github.io/internal/config"
)

func setupTestLogger() (*slog.Logger, *bytes.Buffer) {
	buf := &bytes.Buffer{}
	return slog.New(slog.NewTextHandler(buf, &slog.HandlerOptions{Level: slog.LevelDebug})), buf
}

func statusHandler(code int) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(code)
	})
}

func TestWrapOrder(t *testing.T) {
	var order []string
	mw := func(name string) Middleware {
		return func(next http.Handler) http.Handler {
			return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				order = append(order, name)
				next.ServeHTTP(w, r)
			})
		}
	}
	h := Wrap(statusHandler(http.StatusOK), mw("inner"), mw("outer"))
	h.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/", nil))
	assert.Equal(t, []string{"outer", "inner"}, order)
}

func TestLogging(t *testing.T) {
	logger, buf := setupTestLogger()
	h := Logging(logger)(statusHandler(http.StatusTeapot))

	h.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/game/1", nil))
	assert.Contains(t, buf.String(), "statusCode=418")
	assert.Contains(t, buf.String(), "uri=/game/1")
}

type requestCounter map[string]int

func (c requestCounter) Request(method string, code int) {
	c[method+" "+http.StatusText(code)]++
}

func TestMetrics(t *testing.T) {
	counter := requestCounter{}
	logger, _ := setupTestLogger()
	implicit := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("ok"))
	})

	Wrap(implicit, Metrics(counter), Logging(logger)).
		ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/", nil))
	Metrics(counter)(statusHandler(http.StatusNotFound)).
		ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodPost, "/", nil))

	assert.Equal(t, requestCounter{"GET OK": 1, "POST Not Found": 1}, counter)
}

func TestCors(t *testing.T) {
	testCases := []struct {
		origins []string
		origin  string
		allowed bool
	}{
		{nil, "http://anywhere.test", true},
		{[]string{}, "http://anywhere.test", false},
		{[]string{"http://mines.test"}, "http://mines.test", true},
		{[]string{"http://mines.test"}, "http://other.test", false},
	}
	for _, test := range testCases {
		h := Cors(test.origins)(statusHandler(http.StatusOK))
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set("Origin", test.origin)
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, req)

		got := rec.Header().Get("Access-Control-Allow-Origin")
		if test.allowed {
			assert.Equal(t, test.origin, got, "origins %v", test.origins)
		} else {
			assert.Empty(t, got, "origins %v", test.origins)
		}
	}
}

func newTestCookies(t *testing.T) *config.Cookies {
	t.Helper()
	t.Setenv("SESSION_SECRET", "test-secret")
	j, err := config.NewJWT()
	require.NoError(t, err)
	c, err := config.NewCookies(j)
	require.NoError(t, err)
	return c
}

func TestSession(t *testing.T) {
	logger, _ := setupTestLogger()
	cookies := newTestCookies(t)

	var (
		claims *config.SessionClaims
		ok     bool
	)
	h := Session(logger, cookies)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		claims, ok = SessionClaims(r)
	}))

	rec := httptest.NewRecorder()
	require.NoError(t, cookies.Refresh(rec, "abc"))
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.AddCookie(rec.Result().Cookies()[0])
	h.ServeHTTP(httptest.NewRecorder(), req)
	require.True(t, ok)
	assert.Equal(t, "abc", claims.SessionId)

	// no cookie: nothing to clear
	rec = httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))
	assert.False(t, ok)
	assert.Empty(t, rec.Result().Cookies())

	req = httptest.NewRequest(http.MethodGet, "/", nil)
	req.AddCookie(&http.Cookie{Name: "session", Value: "garbage"})
	rec = httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	assert.False(t, ok)
	require.Len(t, rec.Result().Cookies(), 1)
	assert.Equal(t, -1, rec.Result().Cookies()[0].MaxAge)
}
