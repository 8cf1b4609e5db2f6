package storage

import "github.com/rutina-app/rutina/internal/storage/sqlite"

// NewSQLiteStore returns the SQLite-backed Provider rooted at path.
func NewSQLiteStore(path string) Provider {
	return sqlite.NewStore(path)
}
