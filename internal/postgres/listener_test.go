package postgres

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeSource struct {
	listened  []string
	listenErr error
	ch        chan *pq.Notification
}

func (s *fakeSource) Listen(channel string) error {
	s.listened = append(s.listened, channel)
	return s.listenErr
}

func (s *fakeSource) NotificationChannel() <-chan *pq.Notification { return s.ch }
func (s *fakeSource) Ping() error                                 { return nil }

func (s *fakeSource) Close() error {
	close(s.ch)
	return nil
}

type invalidation struct {
	id    uuid.UUID
	purge bool
}

type fakeInvalidator struct {
	mu    sync.Mutex
	calls []invalidation
	seen  chan struct{}
}

func newFakeInvalidator() *fakeInvalidator {
	return &fakeInvalidator{seen: make(chan struct{}, 16)}
}

func (f *fakeInvalidator) Invalidate(id uuid.UUID) { f.record(invalidation{id: id}) }
func (f *fakeInvalidator) Purge()                  { f.record(invalidation{purge: true}) }

func (f *fakeInvalidator) record(c invalidation) {
	f.mu.Lock()
	f.calls = append(f.calls, c)
	f.mu.Unlock()
	f.seen <- struct{}{}
}

func (f *fakeInvalidator) wait(t *testing.T, n int) []invalidation {
	t.Helper()
	for range n {
		select {
		case <-f.seen:
		case <-time.After(time.Second):
			t.Fatal("invalidation not observed")
		}
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]invalidation(nil), f.calls...)
}

func TestCatalogListener(t *testing.T) {
	id := uuid.New()
	source := &fakeSource{ch: make(chan *pq.Notification, 3)}
	target := newFakeInvalidator()

	l := newCatalogListener(slog.New(slog.NewTextHandler(io.Discard, nil)), source, target)
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	require.NoError(t, l.Start(ctx))
	assert.Equal(t, []string{MenuItemsChannel}, source.listened)

	source.ch <- &pq.Notification{Channel: MenuItemsChannel, Extra: id.String()}
	source.ch <- nil
	source.ch <- &pq.Notification{Channel: MenuItemsChannel, Extra: "not-a-uuid"}

	calls := target.wait(t, 4)
	assert.Equal(t, []invalidation{
		{purge: true},
		{id: id},
		{purge: true},
		{purge: true},
	}, calls)
	assert.NoError(t, l.Close())
}

func TestCatalogListener_ListenFailure(t *testing.T) {
	source := &fakeSource{ch: make(chan *pq.Notification), listenErr: errors.New("connection refused")}
	target := newFakeInvalidator()

	l := newCatalogListener(slog.New(slog.NewTextHandler(io.Discard, nil)), source, target)
	err := l.Start(context.Background())

	assert.ErrorContains(t, err, "connection refused")
	assert.Empty(t, target.calls)
}
