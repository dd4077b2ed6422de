package locker

import (
	"context"
	"sync"
)

type localEntry struct {
	ch   chan struct{}
	refs int
}

// LocalLocker is an in-process keyed mutex for single-instance deployments.
type LocalLocker struct {
	mu    sync.Mutex
	locks map[string]*localEntry
}

func NewLocalLocker() *LocalLocker {
	return &LocalLocker{locks: make(map[string]*localEntry)}
}

func (l *LocalLocker) Lock(ctx context.Context, key string) (Unlock, error) {
	if err := isDone(ctx); err != nil {
		return nil, err
	}

	l.mu.Lock()
	e, ok := l.locks[key]
	if !ok {
		e = &localEntry{ch: make(chan struct{}, 1)}
		l.locks[key] = e
	}
	e.refs++
	l.mu.Unlock()

	select {
	case e.ch <- struct{}{}:
	case <-ctx.Done():
		l.release(key, e, false)
		return nil, ctx.Err()
	}

	var once sync.Once
	return func(context.Context) error {
		err := ErrLockLost
		once.Do(func() {
			l.release(key, e, true)
			err = nil
		})
		return err
	}, nil
}

func (l *LocalLocker) release(key string, e *localEntry, held bool) {
	l.mu.Lock()
	defer l.mu.Unlock()

	if held {
		<-e.ch
	}
	e.refs--
	if e.refs == 0 {
		delete(l.locks, key)
	}
}
