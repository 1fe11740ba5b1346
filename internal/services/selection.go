package services

import (
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

type pendingDelete struct {
	ids   []int64
	timer *time.Timer
}

type selectionImpl struct {
	logger zerolog.Logger
	store  TaskStore

	mu       sync.Mutex
	mode     bool
	selected map[int64]struct{}
	pending  map[string]*pendingDelete
}

func NewSelectionCoordinator(
	logger zerolog.Logger,
	store TaskStore,
) SelectionCoordinator {
	return &selectionImpl{
		logger:   logger,
		store:    store,
		selected: make(map[int64]struct{}),
		pending:  make(map[string]*pendingDelete),
	}
}

func (s *selectionImpl) Toggle(id int64, extend bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if extend {
		if _, ok := s.selected[id]; ok {
			delete(s.selected, id)
		} else {
			s.selected[id] = struct{}{}
		}
		return
	}

	// Plain click: selecting the sole selected task deselects it,
	// anything else becomes an exclusive single-select.
	_, only := s.selected[id]
	if only && len(s.selected) == 1 {
		s.selected = make(map[int64]struct{})
		return
	}
	s.selected = map[int64]struct{}{id: {}}
}

func (s *selectionImpl) Activate() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.mode = true
}

func (s *selectionImpl) Cancel() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.mode = false
	s.selected = make(map[int64]struct{})
}

func (s *selectionImpl) State() (bool, []int64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.mode, s.selectedIDs()
}

func (s *selectionImpl) CommitDelete(grace time.Duration) (string, int) {
	s.mu.Lock()
	ids := s.selectedIDs()
	s.selected = make(map[int64]struct{})
	s.mode = false

	if grace <= 0 {
		s.mu.Unlock()
		return "", s.store.DeleteMultiple(ids)
	}

	token := uuid.NewString()
	p := &pendingDelete{ids: ids}
	s.pending[token] = p
	// The timer callback re-checks membership under the lock, so a
	// cancellation that wins the race suppresses the delete and the
	// delete can never run twice.
	p.timer = time.AfterFunc(grace, func() {
		s.firePending(token)
	})
	s.mu.Unlock()

	s.logger.Info().
		Str("token", token).
		Int("count", len(ids)).
		Dur("grace", grace).
		Msg("scheduled delete")
	return token, 0
}

func (s *selectionImpl) firePending(token string) {
	s.mu.Lock()
	p, ok := s.pending[token]
	if ok {
		delete(s.pending, token)
	}
	s.mu.Unlock()
	if !ok {
		return
	}

	deleted := s.store.DeleteMultiple(p.ids)
	s.logger.Info().
		Str("token", token).
		Int("deleted", deleted).
		Msg("pending delete fired")
}

func (s *selectionImpl) CancelPending(token string) error {
	s.mu.Lock()
	p, ok := s.pending[token]
	if ok {
		delete(s.pending, token)
	}
	s.mu.Unlock()
	if !ok {
		return ErrNoPendingDelete
	}

	p.timer.Stop()
	s.logger.Info().
		Str("token", token).
		Msg("pending delete cancelled")
	return nil
}

func (s *selectionImpl) CommitUpdate(patch TaskPatch) int {
	s.mu.Lock()
	ids := s.selectedIDs()
	s.selected = make(map[int64]struct{})
	s.mode = false
	s.mu.Unlock()

	return s.store.UpdateMultiple(ids, patch)
}

func (s *selectionImpl) selectedIDs() []int64 {
	ids := make([]int64, 0, len(s.selected))
	for id := range s.selected {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	return ids
}
