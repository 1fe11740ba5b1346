package services

import (
	"sync"
	"time"

	"github.com/rs/zerolog"

	"github.com/robinrdj/go-taskboard/internal/models"
	"github.com/robinrdj/go-taskboard/internal/storage"
)

type taskStoreImpl struct {
	logger zerolog.Logger
	repo   *storage.TaskRepository

	mu     sync.Mutex
	tasks  []models.Task
	lastID int64

	now func() time.Time
}

// NewTaskStore loads the persisted collection and returns the store
// over it. A load failure is irrecoverable and aborts startup.
func NewTaskStore(
	logger zerolog.Logger,
	repo *storage.TaskRepository,
) (TaskStore, error) {
	tasks, err := repo.LoadTasks()
	if err != nil {
		return nil, err
	}

	s := &taskStoreImpl{
		logger: logger,
		repo:   repo,
		tasks:  tasks,
		now:    time.Now,
	}
	for _, task := range tasks {
		if task.ID > s.lastID {
			s.lastID = task.ID
		}
	}
	return s, nil
}

// nextID derives a fresh id from the Unix-millisecond clock, bumped
// past the previous id whenever the clock has not advanced. Ids stay
// timestamp-ordered without the collision risk of raw clock reads
// under rapid successive adds.
func (s *taskStoreImpl) nextID() int64 {
	id := s.now().UnixMilli()
	if id <= s.lastID {
		id = s.lastID + 1
	}
	s.lastID = id
	return id
}

// persist writes the full collection. The in-memory mutation has
// already committed; a write failure leaves memory and storage
// disagreeing until the next successful write, which is preferred
// over rolling back under the caller.
func (s *taskStoreImpl) persist() {
	err := s.repo.SaveTasks(s.tasks)
	if err != nil {
		s.logger.Error().
			Err(err).
			Msg("failed to persist tasks, keeping in-memory state")
	}
}

func (s *taskStoreImpl) Add(input TaskInput) models.Task {
	s.mu.Lock()
	defer s.mu.Unlock()

	task := models.Task{
		ID:          s.nextID(),
		Title:       input.Title,
		Description: input.Description,
		DueDate:     models.NormalizeDueDate(input.DueDate),
		Status:      input.Status,
		Assignee:    input.Assignee,
		Priority:    input.Priority,
		CreatedOn:   s.now().UTC().Format(time.RFC3339),
	}
	if task.Status == "" {
		task.Status = models.StatusTodo
	}
	if task.Priority == "" {
		task.Priority = models.PriorityLow
	}

	s.tasks = append(s.tasks, task)
	s.persist()

	s.logger.Info().
		Int64("task_id", task.ID).
		Str("status", task.Status).
		Msg("created task")
	return task
}

func (s *taskStoreImpl) Update(id int64, patch TaskPatch) (models.Task, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.indexOf(id)
	if i < 0 {
		s.logger.Warn().
			Int64("task_id", id).
			Msg("task not found")
		return models.Task{}, ErrTaskNotFound
	}

	prevStatus := s.tasks[i].Status
	s.merge(&s.tasks[i], patch)
	if s.tasks[i].Status == models.StatusCompleted && prevStatus != models.StatusCompleted {
		s.tasks[i].CompletedOn = s.now().UTC().Format(time.RFC3339)
	}
	s.persist()

	s.logger.Info().
		Int64("task_id", id).
		Msg("updated task")
	return s.tasks[i], nil
}

func (s *taskStoreImpl) Delete(id int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.indexOf(id)
	if i < 0 {
		s.logger.Warn().
			Int64("task_id", id).
			Msg("task not found")
		return ErrTaskNotFound
	}

	s.tasks = append(s.tasks[:i], s.tasks[i+1:]...)
	s.persist()

	s.logger.Info().
		Int64("task_id", id).
		Msg("deleted task")
	return nil
}

func (s *taskStoreImpl) DeleteMultiple(ids []int64) int {
	s.mu.Lock()
	defer s.mu.Unlock()

	drop := make(map[int64]struct{}, len(ids))
	for _, id := range ids {
		drop[id] = struct{}{}
	}

	kept := s.tasks[:0]
	for _, task := range s.tasks {
		if _, ok := drop[task.ID]; !ok {
			kept = append(kept, task)
		}
	}
	deleted := len(s.tasks) - len(kept)
	s.tasks = kept
	s.persist()

	s.logger.Info().
		Int("requested", len(ids)).
		Int("deleted", deleted).
		Msg("deleted tasks")
	return deleted
}

func (s *taskStoreImpl) UpdateMultiple(ids []int64, patch TaskPatch) int {
	s.mu.Lock()
	defer s.mu.Unlock()

	match := make(map[int64]struct{}, len(ids))
	for _, id := range ids {
		match[id] = struct{}{}
	}

	// Bulk update deliberately skips the completed_on stamping that
	// single update performs, matching the established behavior of
	// multi-select updates.
	updated := 0
	for i := range s.tasks {
		if _, ok := match[s.tasks[i].ID]; ok {
			s.merge(&s.tasks[i], patch)
			updated++
		}
	}
	s.persist()

	s.logger.Info().
		Int("requested", len(ids)).
		Int("updated", updated).
		Msg("updated tasks")
	return updated
}

func (s *taskStoreImpl) Snapshot() []models.Task {
	s.mu.Lock()
	defer s.mu.Unlock()

	snapshot := make([]models.Task, len(s.tasks))
	copy(snapshot, s.tasks)
	return snapshot
}

func (s *taskStoreImpl) indexOf(id int64) int {
	for i := range s.tasks {
		if s.tasks[i].ID == id {
			return i
		}
	}
	return -1
}

// merge applies the patch in place. The id and created_on fields are
// not reachable through a patch, keeping them immutable.
func (s *taskStoreImpl) merge(task *models.Task, patch TaskPatch) {
	if patch.Title != nil {
		task.Title = *patch.Title
	}
	if patch.Description != nil {
		task.Description = *patch.Description
	}
	if patch.DueDate != nil {
		task.DueDate = models.NormalizeDueDate(*patch.DueDate)
	}
	if patch.Status != nil {
		task.Status = *patch.Status
	}
	if patch.Assignee != nil {
		task.Assignee = *patch.Assignee
	}
	if patch.Priority != nil {
		task.Priority = *patch.Priority
	}
}
