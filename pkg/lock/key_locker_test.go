package lock

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestKeyLockerSerializesSameKey(t *testing.T) {
	l := NewKeyLocker()

	var (
		wg      sync.WaitGroup
		counter int
	)

	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_ = l.WithLock("/api/worlds", func() error {
				v := counter
				v++
				counter = v
				return nil
			})
		}()
	}

	wg.Wait()
	assert.Equal(t, 50, counter)
	assert.Equal(t, 0, l.Len())
}

func TestKeyLockerDifferentKeysDoNotBlock(t *testing.T) {
	l := NewKeyLocker()

	l.AcquireLock("a")
	done := make(chan struct{})
	go func() {
		l.AcquireLock("b")
		l.ReleaseLock("b")
		close(done)
	}()

	<-done
	assert.Equal(t, 1, l.Len())
	l.ReleaseLock("a")
	assert.Equal(t, 0, l.Len())
}

func TestKeyLockerWithLocks(t *testing.T) {
	l := NewKeyLocker()

	err := l.WithLocks([]string{"a", "b"}, func() error {
		assert.Equal(t, 2, l.Len())
		return nil
	})
	require.NoError(t, err)
	assert.Equal(t, 0, l.Len())
}
