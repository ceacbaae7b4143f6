package repository

import (
	"context"
	"sync"

	"github.com/giladbarnea/assetvista-core/internal/storage"
)

// memDocumentStore is an in-memory DocumentStore for tests. Optional func
// fields override individual operations to inject failures.
type memDocumentStore struct {
	mu   sync.Mutex
	docs map[string][]byte

	readFn  func(ctx context.Context, key string) ([]byte, error)
	writeFn func(ctx context.Context, key string, data []byte) error
}

func newMemDocumentStore() *memDocumentStore {
	return &memDocumentStore{docs: make(map[string][]byte)}
}

func (s *memDocumentStore) Read(ctx context.Context, key string) ([]byte, error) {
	if s.readFn != nil {
		return s.readFn(ctx, key)
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	data, ok := s.docs[key]
	if !ok {
		return nil, storage.ErrDocumentNotFound
	}
	out := make([]byte, len(data))
	copy(out, data)
	return out, nil
}

func (s *memDocumentStore) Write(ctx context.Context, key string, data []byte) error {
	if s.writeFn != nil {
		return s.writeFn(ctx, key, data)
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	stored := make([]byte, len(data))
	copy(stored, data)
	s.docs[key] = stored
	return nil
}

func (s *memDocumentStore) Delete(_ context.Context, key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.docs, key)
	return nil
}
