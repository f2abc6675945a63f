package lock

import (
	"slices"
	"sync"

	"github.com/apex/log"
)

// KeyLocker hands out a mutex per key. Mutexes are created on first use and
// dropped once nobody holds or waits on them, so the map only grows with the
// number of keys in use at the same time.
type KeyLocker struct {
	mapMutex sync.Mutex
	keyMap   map[string]*keyMutex
}

type keyMutex struct {
	sync.Mutex
	refs int
}

func NewKeyLocker() *KeyLocker {
	return &KeyLocker{
		keyMap: make(map[string]*keyMutex),
	}
}

func (l *KeyLocker) AcquireLock(key string) {
	l.mapMutex.Lock()
	m, ok := l.keyMap[key]
	if !ok {
		m = &keyMutex{}
		l.keyMap[key] = m
	}
	m.refs++
	l.mapMutex.Unlock()

	// Wait outside mapMutex so other keys aren't blocked behind this one.
	m.Lock()
}

func (l *KeyLocker) ReleaseLock(key string) {
	l.mapMutex.Lock()
	defer l.mapMutex.Unlock()

	m, ok := l.keyMap[key]
	if !ok {
		log.Errorf("ReleaseLock called on key (%s) with no mutex", key)
		return
	}

	m.refs--
	if m.refs == 0 {
		delete(l.keyMap, key)
	}

	m.Unlock()
}

func (l *KeyLocker) WithLock(key string, f func() error) error {
	l.AcquireLock(key)
	defer l.ReleaseLock(key)
	return f()
}

// WithLocks holds the lock for every key while f runs. Keys are locked in sorted
// order, duplicates removed.
func (l *KeyLocker) WithLocks(keys []string, f func() error) error {
	keys = slices.Clone(keys)
	slices.Sort(keys)
	keys = slices.Compact(keys)
	for _, key := range keys {
		l.AcquireLock(key)
	}

	defer func() {
		for i := len(keys) - 1; i >= 0; i-- {
			l.ReleaseLock(keys[i])
		}
	}()

	return f()
}

// Len is the number of keys currently held or waited on.
func (l *KeyLocker) Len() int {
	l.mapMutex.Lock()
	defer l.mapMutex.Unlock()
	return len(l.keyMap)
}
