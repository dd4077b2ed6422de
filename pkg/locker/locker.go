package locker

import (
	"context"
	"errors"
)

var ErrLockLost = errors.New("lock already released or expired")

// Unlock releases a held lock.
type Unlock func(ctx context.Context) error

// KeyPrefix namespaces every lock key.
const KeyPrefix = "lock:"

func isDone(ctx context.Context) error {
	select {
	case <-ctx.Done():
		return ctx.Err()
	default:
		return nil
	}
}
