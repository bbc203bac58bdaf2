// Package database provides a JSON-backed store of installed packages and
// the snapshot loader the list command reads from.
package database

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/glorpus-work/portkit/pkg/errors"
	"github.com/glorpus-work/portkit/pkg/model"
)

// InstalledDatabase is the database of installed packages.
type InstalledDatabase struct {
	FormatVersion string                    `json:"format_version"`
	LastUpdate    time.Time                 `json:"last_update"`
	Packages      []*model.InstalledPackage `json:"packages"`
	rwMutex       sync.RWMutex
}

const (
	// CurrentFormatVersion is written into every saved database.
	CurrentFormatVersion = "1"
	// InitialPackageCapacity defines the initial slice capacity for installed packages.
	InitialPackageCapacity = 100
)

// NewInstalledDatabase creates a new installed packages database.
func NewInstalledDatabase() *InstalledDatabase {
	return &InstalledDatabase{
		FormatVersion: CurrentFormatVersion,
		LastUpdate:    time.Now(),
		Packages:      make([]*model.InstalledPackage, 0, InitialPackageCapacity),
	}
}

// LoadDatabase loads the installed packages database from file. A missing
// file leaves the database empty. Compressed files are decompressed
// transparently.
func (db *InstalledDatabase) LoadDatabase(ctx context.Context, dbPath string) error {
	// Clean and validate the database path
	cleanPath := filepath.Clean(dbPath)
	if !filepath.IsAbs(cleanPath) {
		return fmt.Errorf("database path must be absolute: %s: %w", dbPath, errors.ErrInvalidPath)
	}

	file, err := os.Open(cleanPath)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return fmt.Errorf("failed to open database file: %w", err)
	}
	defer func() { _ = file.Close() }()

	reader, err := openDecompressed(ctx, cleanPath, file)
	if err != nil {
		return err
	}
	defer func() { _ = reader.Close() }()

	return db.parseFromReader(reader)
}

// SaveDatabase saves the installed packages database to file.
func (db *InstalledDatabase) SaveDatabase(dbPath string) (err error) {
	cleanPath := filepath.Clean(dbPath)
	if !filepath.IsAbs(cleanPath) {
		return fmt.Errorf("database path must be absolute: %s: %w", dbPath, errors.ErrInvalidPath)
	}

	dbDir := filepath.Dir(cleanPath)

	// Create a temporary file for atomic write
	tmpFile, err := os.CreateTemp(dbDir, "portkit-db-*.tmp")
	if err != nil {
		return fmt.Errorf("failed to create temporary file in %s: %w", dbDir, err)
	}
	tmpPath := tmpFile.Name()
	defer func() {
		if err != nil {
			_ = os.Remove(tmpPath)
		}
	}()

	db.rwMutex.RLock()
	data, err := json.MarshalIndent(db, "", "  ")
	db.rwMutex.RUnlock()
	if err != nil {
		_ = tmpFile.Close()
		return fmt.Errorf("failed to marshal database to JSON: %w", err)
	}

	if _, err := tmpFile.Write(data); err != nil {
		_ = tmpFile.Close()
		return fmt.Errorf("failed to write to temporary file: %w", err)
	}

	if err := tmpFile.Sync(); err != nil {
		_ = tmpFile.Close()
		return fmt.Errorf("failed to sync temporary file to disk: %w", err)
	}

	if err := tmpFile.Close(); err != nil {
		return fmt.Errorf("failed to close temporary file: %w", err)
	}

	if err := os.Rename(tmpPath, cleanPath); err != nil {
		return fmt.Errorf("failed to rename temporary file to %s: %w", cleanPath, err)
	}

	return nil
}

// AddPackage adds a package to the database, replacing any record with the same key.
func (db *InstalledDatabase) AddPackage(pkg *model.InstalledPackage) {
	db.rwMutex.Lock()
	defer db.rwMutex.Unlock()

	db.LastUpdate = time.Now()
	for i, existing := range db.Packages {
		if existing.Key() == pkg.Key() {
			db.Packages[i] = pkg
			return
		}
	}

	db.Packages = append(db.Packages, pkg)
}

// GetInstalledPackages returns all recorded packages regardless of state.
func (db *InstalledDatabase) GetInstalledPackages() []*model.InstalledPackage {
	db.rwMutex.RLock()
	defer db.rwMutex.RUnlock()

	// Return a copy of the slice to prevent data races
	packages := make([]*model.InstalledPackage, len(db.Packages))
	copy(packages, db.Packages)
	return packages
}

// Snapshot returns value copies of the fully installed packages in database
// order. When a key is recorded more than once the later record wins, at the
// position of the first one.
func (db *InstalledDatabase) Snapshot() []model.InstalledPackage {
	db.rwMutex.RLock()
	defer db.rwMutex.RUnlock()

	index := make(map[string]int, len(db.Packages))
	latest := make([]*model.InstalledPackage, 0, len(db.Packages))
	for _, pkg := range db.Packages {
		if i, ok := index[pkg.Key()]; ok {
			latest[i] = pkg
			continue
		}
		index[pkg.Key()] = len(latest)
		latest = append(latest, pkg)
	}

	snapshot := make([]model.InstalledPackage, 0, len(latest))
	for _, pkg := range latest {
		if pkg.IsInstalled() {
			snapshot = append(snapshot, *pkg)
		}
	}
	return snapshot
}

// parseFromReader parses the database from an io.Reader.
func (db *InstalledDatabase) parseFromReader(reader io.Reader) error {
	data, err := io.ReadAll(reader)
	if err != nil {
		return fmt.Errorf("failed to read database: %w", err)
	}
	if len(data) == 0 {
		return nil
	}

	db.rwMutex.Lock()
	defer db.rwMutex.Unlock()

	if err := json.Unmarshal(data, db); err != nil {
		return fmt.Errorf("%w: %w", errors.ErrDatabaseParse, err)
	}

	return checkFormatVersion(db.FormatVersion)
}
