// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"
	"time"
)

// Transactor runs a unit of work atomically. Repositories called with the
// context passed to fn take part in the same transaction. Nested calls join
// the outer transaction.
type Transactor interface {
	WithinTransaction(ctx context.Context, fn func(ctx context.Context) error) error
}

// Unlocker releases a lock obtained from a Locker.
type Unlocker func(ctx context.Context) error

// Locker provides best-effort mutual exclusion across processes.
type Locker interface {
	// TryLock attempts to take key for ttl. It returns ok=false without error
	// when the key is already held.
	TryLock(ctx context.Context, key string, ttl time.Duration) (unlock Unlocker, ok bool, err error)
}
