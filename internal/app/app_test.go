package app

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"github.com/SergeyBogomolovv/restaurant-pos/internal/config"
	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type pingHandler struct{}

func (pingHandler) Init(r chi.Router) {
	r.Get("/ping", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	})
}

type stubConsumer struct {
	consumed atomic.Bool
	closed   atomic.Bool
}

func (c *stubConsumer) Consume(ctx context.Context) {
	c.consumed.Store(true)
	<-ctx.Done()
}

func (c *stubConsumer) Close() error {
	c.closed.Store(true)
	return nil
}

type stubStarter struct{ err error }

func (s stubStarter) Start(context.Context) error { return s.err }

type stubCloser struct{ closed bool }

func (c *stubCloser) Close() error {
	c.closed = true
	return nil
}

func testConfig() config.Config {
	return config.Config{
		Http: config.Http{Host: "127.0.0.1", Port: "0"},
		Cors: config.CORS{AllowedOrigins: []string{"*"}},
	}
}

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestApplication_Routes(t *testing.T) {
	a := New(testLogger(), testConfig())
	a.SetHTTPHandlers(pingHandler{})

	testCases := []struct {
		path       string
		wantStatus int
	}{
		{path: "/ping", wantStatus: http.StatusNoContent},
		{path: "/metrics", wantStatus: http.StatusOK},
		{path: "/swagger/doc.json", wantStatus: http.StatusOK},
		{path: "/missing", wantStatus: http.StatusNotFound},
	}

	for _, tc := range testCases {
		t.Run(tc.path, func(t *testing.T) {
			rr := httptest.NewRecorder()
			a.router.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, tc.path, nil))
			assert.Equal(t, tc.wantStatus, rr.Code)
		})
	}
}

func TestApplication_StartStop(t *testing.T) {
	a := New(testLogger(), testConfig())
	a.SetHTTPHandlers(pingHandler{})

	consumer := &stubConsumer{}
	closer := &stubCloser{}
	a.SetConsumers(consumer)
	a.SetStarters(stubStarter{})
	a.SetClosers(closer)

	ctx, cancel := context.WithCancel(context.Background())
	require.NoError(t, a.Start(ctx))

	res, err := http.Get("http://" + a.addr.String() + "/ping")
	require.NoError(t, err)
	res.Body.Close()
	assert.Equal(t, http.StatusNoContent, res.StatusCode)

	cancel()
	require.NoError(t, a.Stop())

	assert.True(t, consumer.consumed.Load())
	assert.True(t, consumer.closed.Load())
	assert.True(t, closer.closed)
}

func TestApplication_StarterFailure(t *testing.T) {
	a := New(testLogger(), testConfig())
	a.SetStarters(stubStarter{}, stubStarter{err: errors.New("warm up failed")})

	err := a.Start(context.Background())
	assert.ErrorContains(t, err, "warm up failed")
}
