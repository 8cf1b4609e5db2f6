package sqlite

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"

	_ "modernc.org/sqlite"

	"github.com/rutina-app/rutina/internal/constants"
)

// migrations holds the ordered schema steps. The database's user_version
// pragma records how many have been applied.
var migrations = [][]string{
	{
		`CREATE TABLE habits (
			id               TEXT PRIMARY KEY,
			name             TEXT NOT NULL,
			description      TEXT NOT NULL DEFAULT '',
			icon             TEXT NOT NULL,
			category         TEXT NOT NULL,
			tags             TEXT NOT NULL DEFAULT '[]',
			target           INTEGER NOT NULL DEFAULT 1,
			target_unit      TEXT NOT NULL DEFAULT '',
			current          INTEGER NOT NULL DEFAULT 0,
			completed        INTEGER NOT NULL DEFAULT 0,
			streak           INTEGER NOT NULL DEFAULT 0,
			frequency        TEXT NOT NULL,
			difficulty       TEXT NOT NULL DEFAULT '',
			priority         TEXT NOT NULL DEFAULT '',
			reminder_time    TEXT,
			reminder_enabled INTEGER NOT NULL DEFAULT 0,
			created_at       TEXT NOT NULL,
			last_completed   TEXT
		)`,
		`CREATE TABLE habit_entries (
			id         TEXT PRIMARY KEY,
			habit_id   TEXT NOT NULL,
			day        TEXT NOT NULL,
			value      INTEGER NOT NULL DEFAULT 0,
			completed  INTEGER NOT NULL DEFAULT 0,
			created_at TEXT NOT NULL,
			updated_at TEXT NOT NULL,
			UNIQUE (habit_id, day)
		)`,
		`CREATE TABLE areas (
			id         TEXT PRIMARY KEY,
			name       TEXT NOT NULL,
			color      TEXT NOT NULL DEFAULT '',
			emoji      TEXT NOT NULL DEFAULT '',
			created_at TEXT NOT NULL
		)`,
		`CREATE TABLE tasks (
			id         TEXT PRIMARY KEY,
			area_id    TEXT NOT NULL,
			text       TEXT NOT NULL,
			completed  INTEGER NOT NULL DEFAULT 0,
			priority   TEXT NOT NULL DEFAULT 'media',
			position   INTEGER NOT NULL DEFAULT 0,
			created_at TEXT NOT NULL
		)`,
		`CREATE TABLE preferences (
			key   TEXT PRIMARY KEY,
			value TEXT NOT NULL
		)`,
	},
	{
		`CREATE INDEX idx_habit_entries_habit_day ON habit_entries (habit_id, day)`,
		`CREATE INDEX idx_tasks_area ON tasks (area_id)`,
	},
}

type Store struct {
	path string
	db   *sql.DB
}

func NewStore(path string) *Store {
	return &Store{path: path}
}

func (s *Store) Init() error {
	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0700); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	db, err := sql.Open("sqlite", s.path)
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	s.db = db

	if err := s.runMigrations(); err != nil {
		return fmt.Errorf("failed to run migrations: %w", err)
	}

	return nil
}

func (s *Store) Load() error {
	if s.db != nil {
		return nil
	}

	if _, err := os.Stat(s.path); os.IsNotExist(err) {
		return fmt.Errorf("storage not initialized, run '%s init' first", constants.AppName)
	}

	db, err := sql.Open("sqlite", s.path)
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	s.db = db

	return s.validateSchemaVersion()
}

func (s *Store) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

func (s *Store) GetConfigPath() string {
	return s.path
}

func (s *Store) schemaVersion() (int, error) {
	var version int
	if err := s.db.QueryRow("PRAGMA user_version").Scan(&version); err != nil {
		return 0, err
	}
	return version, nil
}

func (s *Store) runMigrations() error {
	version, err := s.schemaVersion()
	if err != nil {
		return err
	}

	for i := version; i < len(migrations); i++ {
		tx, err := s.db.Begin()
		if err != nil {
			return err
		}
		for _, stmt := range migrations[i] {
			if _, err := tx.Exec(stmt); err != nil {
				tx.Rollback()
				return fmt.Errorf("migration %d failed: %w", i+1, err)
			}
		}
		// PRAGMA does not support placeholders.
		if _, err := tx.Exec(fmt.Sprintf("PRAGMA user_version = %d", i+1)); err != nil {
			tx.Rollback()
			return fmt.Errorf("migration %d failed to record version: %w", i+1, err)
		}
		if err := tx.Commit(); err != nil {
			return err
		}
	}

	return nil
}

func (s *Store) validateSchemaVersion() error {
	version, err := s.schemaVersion()
	if err != nil {
		return err
	}
	if version < len(migrations) {
		return fmt.Errorf("database schema is at version %d, expected %d; run '%s init' to migrate", version, len(migrations), constants.AppName)
	}
	if version > len(migrations) {
		return fmt.Errorf("database schema version %d is newer than this build supports (%d)", version, len(migrations))
	}
	return nil
}
