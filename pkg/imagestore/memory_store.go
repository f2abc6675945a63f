package imagestore

import (
	"bytes"
	"context"
	"io"
	"sync"
	"time"

	"github.com/pkg/errors"
)

type memoryObject struct {
	data        []byte
	contentType string
}

// MemoryStore keeps objects in process. It backs `realmd serve --memory` and tests.
type MemoryStore struct {
	mu      sync.RWMutex
	objects map[string]memoryObject
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{objects: make(map[string]memoryObject)}
}

func (s *MemoryStore) Put(_ context.Context, key string, r io.Reader, _ int64, contentType string) error {
	data, err := io.ReadAll(r)
	if err != nil {
		return errors.Wrap(err, "read object")
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.objects[key] = memoryObject{data: data, contentType: contentType}
	return nil
}

// PresignGet has no URL to hand out; callers serve the bytes through Open.
func (s *MemoryStore) PresignGet(_ context.Context, key string, _ time.Duration) (string, error) {
	return "", errors.Errorf("memory store can't presign %s", key)
}

func (s *MemoryStore) Delete(_ context.Context, key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.objects, key)
	return nil
}

func (s *MemoryStore) Open(_ context.Context, key string) (io.ReadCloser, string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	o, ok := s.objects[key]
	if !ok {
		return nil, "", errors.Wrapf(ErrObjectNotFound, "%s", key)
	}

	return io.NopCloser(bytes.NewReader(o.data)), o.contentType, nil
}
