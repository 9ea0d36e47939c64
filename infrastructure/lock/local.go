package lock

import (
	"context"
	"sync"
	"time"
)

// LocalLocker é o fallback em memória quando não há redis configurado.
// Só protege contra execuções concorrentes dentro do mesmo processo.
type LocalLocker struct {
	mu   sync.Mutex
	held map[string]*localLock
	now  func() time.Time
}

func NewLocalLocker() *LocalLocker {
	return &LocalLocker{
		held: make(map[string]*localLock),
		now:  time.Now,
	}
}

func (l *LocalLocker) TryLock(_ context.Context, name string, ttl time.Duration) (Lock, bool, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	if current, ok := l.held[name]; ok && l.now().Before(current.expiresAt) {
		return nil, false, nil
	}

	lock := &localLock{owner: l, name: name, expiresAt: l.now().Add(ttl)}
	l.held[name] = lock

	return lock, true, nil
}

type localLock struct {
	owner     *LocalLocker
	name      string
	expiresAt time.Time
}

func (l *localLock) Release(context.Context) error {
	l.owner.mu.Lock()
	defer l.owner.mu.Unlock()

	if l.owner.held[l.name] != l {
		return ErrNotHeld
	}

	delete(l.owner.held, l.name)
	return nil
}
