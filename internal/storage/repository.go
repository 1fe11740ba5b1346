package storage

import (
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/robinrdj/go-taskboard/internal/models"
)

const (
	ThemeLight = "light"
	ThemeDark  = "dark"
)

// TaskRepository serializes the task collection and the theme
// preference to their slots. Every save is a full-document overwrite.
type TaskRepository struct {
	logger zerolog.Logger
	slots  SlotStore
}

func NewTaskRepository(logger zerolog.Logger, slots SlotStore) *TaskRepository {
	return &TaskRepository{
		logger: logger,
		slots:  slots,
	}
}

// LoadTasks reads the whole collection from the tasks slot. A missing
// slot yields an empty collection; malformed JSON is an error the
// caller treats as fatal at startup.
//
// Tasks persisted before created_on existed get it backfilled from
// the id, which historically encoded the creation clock in Unix
// milliseconds. The shim runs on every load and is a no-op for tasks
// that already carry the field.
func (r *TaskRepository) LoadTasks() ([]models.Task, error) {
	raw, err := r.slots.Get(SlotTasks)
	if err != nil {
		if errors.Is(err, ErrSlotNotFound) {
			r.logger.Info().Msg("no persisted tasks, starting empty")
			return []models.Task{}, nil
		}
		return nil, err
	}

	var tasks []models.Task
	err = json.Unmarshal([]byte(raw), &tasks)
	if err != nil {
		return nil, fmt.Errorf("corrupt tasks slot: %w", err)
	}

	backfilled := 0
	for i := range tasks {
		if tasks[i].CreatedOn == "" {
			createdAt := time.UnixMilli(tasks[i].ID).UTC()
			tasks[i].CreatedOn = createdAt.Format(time.RFC3339)
			backfilled++
		}
	}
	if backfilled > 0 {
		r.logger.Debug().
			Int("count", backfilled).
			Msg("backfilled created_on from task ids")
	}

	r.logger.Info().
		Int("count", len(tasks)).
		Msg("loaded tasks")
	return tasks, nil
}

// SaveTasks overwrites the tasks slot with the full collection.
func (r *TaskRepository) SaveTasks(tasks []models.Task) error {
	raw, err := json.Marshal(tasks)
	if err != nil {
		return fmt.Errorf("marshal tasks: %w", err)
	}

	err = r.slots.Put(SlotTasks, string(raw))
	if err != nil {
		return err
	}

	r.logger.Debug().
		Int("count", len(tasks)).
		Msg("saved tasks")
	return nil
}

// LoadTheme reads the theme slot. Anything other than a persisted
// "dark" normalizes to light.
func (r *TaskRepository) LoadTheme() (string, error) {
	theme, err := r.slots.Get(SlotTheme)
	if err != nil {
		if errors.Is(err, ErrSlotNotFound) {
			return ThemeLight, nil
		}
		return "", err
	}
	if theme != ThemeDark {
		theme = ThemeLight
	}
	return theme, nil
}

// SaveTheme overwrites the theme slot.
func (r *TaskRepository) SaveTheme(theme string) error {
	return r.slots.Put(SlotTheme, theme)
}
