package services

import (
	"sync"

	"github.com/rs/zerolog"

	"github.com/robinrdj/go-taskboard/internal/storage"
)

type themeServiceImpl struct {
	logger zerolog.Logger
	repo   *storage.TaskRepository

	mu    sync.Mutex
	theme string
}

// NewThemeService loads the persisted preference, defaulting to
// light when none was ever saved.
func NewThemeService(
	logger zerolog.Logger,
	repo *storage.TaskRepository,
) (ThemeService, error) {
	theme, err := repo.LoadTheme()
	if err != nil {
		return nil, err
	}
	return &themeServiceImpl{
		logger: logger,
		repo:   repo,
		theme:  theme,
	}, nil
}

func (s *themeServiceImpl) Theme() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.theme
}

func (s *themeServiceImpl) SetTheme(theme string) error {
	if theme != storage.ThemeLight && theme != storage.ThemeDark {
		return ErrInvalidTheme
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.theme = theme
	err := s.repo.SaveTheme(theme)
	if err != nil {
		s.logger.Error().
			Err(err).
			Msg("failed to persist theme")
	}
	return nil
}

func (s *themeServiceImpl) ToggleTheme() (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.theme == storage.ThemeDark {
		s.theme = storage.ThemeLight
	} else {
		s.theme = storage.ThemeDark
	}
	err := s.repo.SaveTheme(s.theme)
	if err != nil {
		s.logger.Error().
			Err(err).
			Msg("failed to persist theme")
	}
	return s.theme, nil
}
