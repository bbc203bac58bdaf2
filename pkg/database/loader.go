package database

import (
	"context"

	"github.com/glorpus-work/portkit/internal/logger"
	"github.com/glorpus-work/portkit/pkg/model"
)

// FileLoader loads listing snapshots from a database file.
type FileLoader struct {
	Path string
}

// NewFileLoader creates a FileLoader for the database at path.
func NewFileLoader(path string) *FileLoader {
	return &FileLoader{Path: path}
}

// LoadSnapshot reads the database and returns its installed packages.
func (l *FileLoader) LoadSnapshot(ctx context.Context) ([]model.InstalledPackage, error) {
	db := NewInstalledDatabase()
	if err := db.LoadDatabase(ctx, l.Path); err != nil {
		return nil, err
	}

	snapshot := db.Snapshot()
	logger.Debug("Loaded installed database", logger.Fields{
		"path":      l.Path,
		"records":   len(db.GetInstalledPackages()),
		"installed": len(snapshot),
	})
	return snapshot, nil
}
