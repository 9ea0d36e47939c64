// Package lock garante que um job agendado rode em apenas um lugar por vez
package lock

import (
	"context"
	"errors"
	"time"
)

//go:generate mockgen -source=lock.go -destination=mocks/lock_mock.go -package=mocks

var ErrNotHeld = errors.New("lock não pertence mais a este processo")

// Locker tenta obter um lock nomeado. ok == false significa que outro dono já o detém.
type Locker interface {
	TryLock(ctx context.Context, name string, ttl time.Duration) (Lock, bool, error)
}

type Lock interface {
	Release(ctx context.Context) error
}
