package qcache

import (
	"context"
	"sync"

	"github.com/realmkeeper/realmkeeper/pkg/clog"
	"github.com/realmkeeper/realmkeeper/pkg/lock"
)

// Listener is told about keys after they've been removed from the cache.
type Listener func(keys []string)

// Invalidator owns a Cache and the per-key locks that keep a response fill from
// racing an invalidation of the same key. Readers fill through WithKeyLock;
// writers call Invalidate once their change is committed.
type Invalidator struct {
	cache     Cache
	locker    *lock.KeyLocker
	mu        sync.RWMutex
	listeners []Listener
}

func NewInvalidator(cache Cache) *Invalidator {
	return &Invalidator{
		cache:  cache,
		locker: lock.NewKeyLocker(),
	}
}

func (i *Invalidator) Cache() Cache {
	return i.cache
}

func (i *Invalidator) OnInvalidate(l Listener) {
	i.mu.Lock()
	defer i.mu.Unlock()
	i.listeners = append(i.listeners, l)
}

// WithKeyLock runs fn holding key's lock. A response read and stored inside fn
// can't land after a concurrent Invalidate of key has returned.
func (i *Invalidator) WithKeyLock(key string, fn func() error) error {
	return i.locker.WithLock(key, fn)
}

// Invalidate drops keys from the cache and then notifies listeners. Listeners are
// told even when the cache fails so that clients still refetch.
func (i *Invalidator) Invalidate(ctx context.Context, keys ...string) error {
	if len(keys) == 0 {
		return nil
	}

	err := i.locker.WithLocks(keys, func() error {
		return i.cache.Invalidate(ctx, keys...)
	})

	if err != nil {
		clog.For("qcache").Errorf("Failed invalidating %v: %s", keys, err)
	} else {
		clog.For("qcache").Debugf("Invalidated %v", keys)
	}

	i.mu.RLock()
	listeners := i.listeners
	i.mu.RUnlock()

	for _, l := range listeners {
		l(keys)
	}

	return err
}
