package sqlite

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/robinrdj/go-taskboard/internal/storage"
)

func TestSlotRoundTrip(t *testing.T) {
	store, err := New(filepath.Join(t.TempDir(), "slots.db"))
	require.NoError(t, err)
	defer store.Close()

	_, err = store.Get(storage.SlotTasks)
	assert.ErrorIs(t, err, storage.ErrSlotNotFound)

	require.NoError(t, store.Put(storage.SlotTasks, `[{"id":1}]`))
	value, err := store.Get(storage.SlotTasks)
	require.NoError(t, err)
	assert.Equal(t, `[{"id":1}]`, value)

	// Full-document overwrite.
	require.NoError(t, store.Put(storage.SlotTasks, `[]`))
	value, err = store.Get(storage.SlotTasks)
	require.NoError(t, err)
	assert.Equal(t, `[]`, value)
}

func TestSlotsSurviveReopen(t *testing.T) {
	path := filepath.Join(t.TempDir(), "slots.db")

	store, err := New(path)
	require.NoError(t, err)
	require.NoError(t, store.Put(storage.SlotTheme, "dark"))
	require.NoError(t, store.Close())

	reopened, err := New(path)
	require.NoError(t, err)
	defer reopened.Close()

	value, err := reopened.Get(storage.SlotTheme)
	require.NoError(t, err)
	assert.Equal(t, "dark", value)
}
