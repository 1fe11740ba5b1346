package memory

import (
	"sync"

	"github.com/robinrdj/go-taskboard/internal/storage"
)

// Store is a process-local slot store. It backs tests and is the
// fallback medium when no storage path is configured.
type Store struct {
	mu    sync.Mutex
	slots map[string]string

	// FailPuts makes every Put return this error, for exercising
	// the best-effort persistence path.
	FailPuts error
}

func New() *Store {
	return &Store{slots: make(map[string]string)}
}

func (s *Store) Get(name string) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	value, ok := s.slots[name]
	if !ok {
		return "", storage.ErrSlotNotFound
	}
	return value, nil
}

func (s *Store) Put(name, value string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.FailPuts != nil {
		return s.FailPuts
	}
	s.slots[name] = value
	return nil
}

func (s *Store) Close() error { return nil }
