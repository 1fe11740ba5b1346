package services

import (
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/robinrdj/go-taskboard/internal/models"
)

func newTestSelection(t *testing.T) (SelectionCoordinator, *taskStoreImpl) {
	t.Helper()
	store, _ := newTestStore(t)
	return NewSelectionCoordinator(zerolog.Nop(), store), store
}

func TestToggleExtendTogglesMembership(t *testing.T) {
	selection, _ := newTestSelection(t)

	selection.Toggle(1, true)
	selection.Toggle(2, true)
	_, ids := selection.State()
	assert.Equal(t, []int64{1, 2}, ids)

	selection.Toggle(1, true)
	_, ids = selection.State()
	assert.Equal(t, []int64{2}, ids)
}

func TestToggleExclusiveSelect(t *testing.T) {
	selection, _ := newTestSelection(t)

	selection.Toggle(1, true)
	selection.Toggle(2, true)

	// A plain click collapses the selection to the clicked task.
	selection.Toggle(3, false)
	_, ids := selection.State()
	assert.Equal(t, []int64{3}, ids)

	// Clicking the sole selected task deselects it.
	selection.Toggle(3, false)
	_, ids = selection.State()
	assert.Empty(t, ids)
}

func TestCancelClearsSelection(t *testing.T) {
	selection, _ := newTestSelection(t)

	selection.Activate()
	selection.Toggle(1, true)

	mode, ids := selection.State()
	require.True(t, mode)
	require.Len(t, ids, 1)

	selection.Cancel()
	mode, ids = selection.State()
	assert.False(t, mode)
	assert.Empty(t, ids)
}

func TestCommitDeleteImmediate(t *testing.T) {
	selection, store := newTestSelection(t)

	a := store.Add(TaskInput{Title: "a"})
	b := store.Add(TaskInput{Title: "b"})

	selection.Activate()
	selection.Toggle(a.ID, true)
	selection.Toggle(b.ID, true)

	token, deleted := selection.CommitDelete(0)
	assert.Empty(t, token)
	assert.Equal(t, 2, deleted)
	assert.Empty(t, store.Snapshot())

	mode, ids := selection.State()
	assert.False(t, mode)
	assert.Empty(t, ids)
}

func TestCommitDeleteDeferredFiresOnce(t *testing.T) {
	selection, store := newTestSelection(t)

	task := store.Add(TaskInput{Title: "doomed"})
	selection.Toggle(task.ID, true)

	token, deleted := selection.CommitDelete(10 * time.Millisecond)
	require.NotEmpty(t, token)
	assert.Zero(t, deleted)

	// Still present during the grace period.
	assert.Len(t, store.Snapshot(), 1)

	require.Eventually(t, func() bool {
		return len(store.Snapshot()) == 0
	}, time.Second, 5*time.Millisecond)

	// The token is spent once the delete fired.
	assert.ErrorIs(t, selection.CancelPending(token), ErrNoPendingDelete)
}

func TestCommitDeleteCancelled(t *testing.T) {
	selection, store := newTestSelection(t)

	task := store.Add(TaskInput{Title: "saved"})
	selection.Toggle(task.ID, true)

	token, _ := selection.CommitDelete(30 * time.Millisecond)
	require.NotEmpty(t, token)
	require.NoError(t, selection.CancelPending(token))

	time.Sleep(60 * time.Millisecond)
	assert.Len(t, store.Snapshot(), 1, "cancelled delete must never run")

	// Cancelling again reports nothing pending.
	assert.ErrorIs(t, selection.CancelPending(token), ErrNoPendingDelete)
}

func TestCommitUpdate(t *testing.T) {
	selection, store := newTestSelection(t)

	a := store.Add(TaskInput{Title: "a"})
	store.Add(TaskInput{Title: "b"})

	selection.Activate()
	selection.Toggle(a.ID, true)

	updated := selection.CommitUpdate(TaskPatch{Priority: strPtr(models.PriorityHigh)})
	assert.Equal(t, 1, updated)

	mode, ids := selection.State()
	assert.False(t, mode)
	assert.Empty(t, ids)

	for _, task := range store.Snapshot() {
		if task.ID == a.ID {
			assert.Equal(t, models.PriorityHigh, task.Priority)
		} else {
			assert.Equal(t, models.PriorityLow, task.Priority)
		}
	}
}
