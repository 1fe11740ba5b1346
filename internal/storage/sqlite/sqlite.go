package sqlite

import (
	"errors"
	"fmt"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/robinrdj/go-taskboard/internal/storage"
)

// slot is a single named value. The table is tiny on purpose: the
// application treats storage as a key-value medium with full-document
// overwrite semantics, so one row per slot is all there is.
type slot struct {
	Name  string `gorm:"primaryKey"`
	Value string
}

func (slot) TableName() string { return "slots" }

// Store keeps slots in a local SQLite file.
type Store struct {
	db *gorm.DB
}

// New opens (and migrates) the SQLite file at path.
func New(path string) (*Store, error) {
	db, err := gorm.Open(sqlite.Open(path), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		return nil, fmt.Errorf("open sqlite at %s: %w", path, err)
	}

	err = db.AutoMigrate(&slot{})
	if err != nil {
		return nil, fmt.Errorf("migrate slots table: %w", err)
	}

	return &Store{db: db}, nil
}

func (s *Store) Get(name string) (string, error) {
	var row slot
	err := s.db.First(&row, "name = ?", name).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", storage.ErrSlotNotFound
		}
		return "", fmt.Errorf("read slot %s: %w", name, err)
	}
	return row.Value, nil
}

func (s *Store) Put(name, value string) error {
	err := s.db.Save(&slot{Name: name, Value: value}).Error
	if err != nil {
		return fmt.Errorf("write slot %s: %w", name, err)
	}
	return nil
}

func (s *Store) Close() error {
	db, err := s.db.DB()
	if err != nil {
		return err
	}
	return db.Close()
}
