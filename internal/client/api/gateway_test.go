package api

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/time/rate"

	"github.com/smarttrace/smarttrace-cli/internal/client/session"
	"github.com/smarttrace/smarttrace-cli/internal/logging"
)

type fakeSession struct {
	s session.Session
}

func (f *fakeSession) Current() session.Session     { return f.s }
func (f *fakeSession) Save(s session.Session) error { f.s = s; return nil }
func (f *fakeSession) Clear() error                 { f.s = session.Session{}; return nil }

func testLogger() logging.Logger {
	return logging.NewTextLogger(io.Discard, 0)
}

func newTestGateway(t *testing.T, handler http.Handler, sess *fakeSession) *Gateway {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	return NewGateway(srv.URL, 5*time.Second, sess, rate.NewLimiter(rate.Inf, 1), testLogger())
}

func TestDo_BearerHeaderInjectedWhenTokenPresent(t *testing.T) {
	var gotAuth string
	var gotRequestID string
	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		gotRequestID = r.Header.Get("X-Request-Id")
		w.Write([]byte(`{}`))
	})

	sess := &fakeSession{s: session.Session{AccessToken: "tok123"}}
	g := newTestGateway(t, handler, sess)

	var out map[string]any
	require.NoError(t, g.getJSON(context.Background(), "/x", nil, &out))

	assert.Equal(t, "Bearer tok123", gotAuth)
	assert.NotEmpty(t, gotRequestID)
}

func TestDo_BearerHeaderOmittedWhenNoToken(t *testing.T) {
	var hadAuthHeader bool
	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, hadAuthHeader = r.Header["Authorization"]
		w.Write([]byte(`{}`))
	})

	g := newTestGateway(t, handler, &fakeSession{})

	var out map[string]any
	require.NoError(t, g.getJSON(context.Background(), "/x", nil, &out))

	// absent entirely, never "Bearer " with an empty token
	assert.False(t, hadAuthHeader)
}

func TestDo_TokenReadFreshOnEveryRequest(t *testing.T) {
	var auths []string
	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		auths = append(auths, r.Header.Get("Authorization"))
		w.Write([]byte(`{}`))
	})

	sess := &fakeSession{s: session.Session{AccessToken: "old"}}
	g := newTestGateway(t, handler, sess)

	var out map[string]any
	require.NoError(t, g.getJSON(context.Background(), "/x", nil, &out))

	require.NoError(t, sess.Save(session.Session{AccessToken: "new"}))
	require.NoError(t, g.getJSON(context.Background(), "/x", nil, &out))

	assert.Equal(t, []string{"Bearer old", "Bearer new"}, auths)
}

func TestDo_ErrorMapping(t *testing.T) {
	tests := []struct {
		name   string
		status int
		body   string
		want   error
	}{
		{"unauthorized", http.StatusUnauthorized, `{"detail":"token expired"}`, ErrUnauthorized},
		{"forbidden", http.StatusForbidden, `{}`, ErrForbidden},
		{"not found", http.StatusNotFound, `{}`, ErrNotFound},
		{"validation", http.StatusBadRequest, `{"email":["invalid address"]}`, ErrValidation},
		{"server", http.StatusInternalServerError, ``, ErrServer},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
				w.Write([]byte(tt.body))
			})
			g := newTestGateway(t, handler, &fakeSession{})

			err := g.postJSON(context.Background(), "/x", map[string]string{}, nil)
			require.Error(t, err)
			assert.ErrorIs(t, err, tt.want)
		})
	}
}

func TestDo_ValidationFieldErrors(t *testing.T) {
	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		w.Write([]byte(`{"message":"check the form","email":["invalid address"],"phone":"too short"}`))
	})
	g := newTestGateway(t, handler, &fakeSession{})

	err := g.postJSON(context.Background(), "/x", map[string]string{}, nil)

	var apiErr *Error
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, "check the form", apiErr.Message)
	assert.Equal(t, "invalid address", apiErr.Fields["email"])
	assert.Equal(t, "too short", apiErr.Fields["phone"])
}

func TestDo_MalformedResponse(t *testing.T) {
	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"oops`))
	})
	g := newTestGateway(t, handler, &fakeSession{})

	var out map[string]any
	err := g.getJSON(context.Background(), "/x", nil, &out)
	assert.ErrorIs(t, err, ErrMalformedResponse)
}

func TestDo_NetworkUnavailable(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	srv.Close() // nothing listening any more

	g := NewGateway(srv.URL, time.Second, &fakeSession{}, rate.NewLimiter(rate.Inf, 1), testLogger())

	err := g.postJSON(context.Background(), "/x", map[string]string{}, nil)
	assert.ErrorIs(t, err, ErrNetworkUnavailable)
}

func TestDo_Timeout(t *testing.T) {
	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(200 * time.Millisecond)
	})
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	g := NewGateway(srv.URL, 20*time.Millisecond, &fakeSession{}, rate.NewLimiter(rate.Inf, 1), testLogger())

	err := g.postJSON(context.Background(), "/x", map[string]string{}, nil)
	assert.ErrorIs(t, err, ErrTimeout)
}

func TestGetJSON_RetriesServerErrors(t *testing.T) {
	var calls atomic.Int32
	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if calls.Add(1) < 3 {
			w.WriteHeader(http.StatusInternalServerError)
			return
		}
		w.Write([]byte(`{"ok":true}`))
	})
	g := newTestGateway(t, handler, &fakeSession{})

	var out map[string]any
	require.NoError(t, g.getJSON(context.Background(), "/x", nil, &out))
	assert.Equal(t, int32(3), calls.Load())
}

func TestGetJSON_NoRetryOnNotFound(t *testing.T) {
	var calls atomic.Int32
	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		w.WriteHeader(http.StatusNotFound)
	})
	g := newTestGateway(t, handler, &fakeSession{})

	var out map[string]any
	err := g.getJSON(context.Background(), "/x", nil, &out)
	assert.ErrorIs(t, err, ErrNotFound)
	assert.Equal(t, int32(1), calls.Load())
}

func TestMutations_NeverRetried(t *testing.T) {
	var calls atomic.Int32
	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		w.WriteHeader(http.StatusInternalServerError)
	})
	g := newTestGateway(t, handler, &fakeSession{})

	err := g.postJSON(context.Background(), "/x", map[string]string{}, nil)
	assert.ErrorIs(t, err, ErrServer)
	assert.Equal(t, int32(1), calls.Load())
}
