package services

import (
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/robinrdj/go-taskboard/internal/storage"
	"github.com/robinrdj/go-taskboard/internal/storage/memory"
)

func TestThemeToggleRoundTrips(t *testing.T) {
	slots := memory.New()
	repo := storage.NewTaskRepository(zerolog.Nop(), slots)

	service, err := NewThemeService(zerolog.Nop(), repo)
	require.NoError(t, err)
	assert.Equal(t, storage.ThemeLight, service.Theme())

	theme, err := service.ToggleTheme()
	require.NoError(t, err)
	assert.Equal(t, storage.ThemeDark, theme)

	// A fresh service over the same slots sees the persisted value.
	reloaded, err := NewThemeService(zerolog.Nop(), repo)
	require.NoError(t, err)
	assert.Equal(t, storage.ThemeDark, reloaded.Theme())
}

func TestSetThemeValidates(t *testing.T) {
	slots := memory.New()
	repo := storage.NewTaskRepository(zerolog.Nop(), slots)

	service, err := NewThemeService(zerolog.Nop(), repo)
	require.NoError(t, err)

	assert.ErrorIs(t, service.SetTheme("sepia"), ErrInvalidTheme)
	require.NoError(t, service.SetTheme(storage.ThemeDark))
	assert.Equal(t, storage.ThemeDark, service.Theme())
}
