package config

import (
	"path/filepath"

	"imgcurate/internal/adapters/filesystem"
	"imgcurate/internal/adapters/jsonfile"
	"imgcurate/internal/adapters/sqlite"
	"imgcurate/internal/application"
	"imgcurate/internal/ports"
)

// IndexPath returns the JSON index file, defaulting to images.json in the root
func (c Config) IndexPath() string {
	if c.IndexFile != "" {
		return c.IndexFile
	}
	return filepath.Join(c.Root, jsonfile.DefaultFileName)
}

// DatabasePath returns the SQLite database, defaulting to the XDG data dir
func (c Config) DatabasePath() string {
	if c.DBPath != "" {
		return c.DBPath
	}
	return sqlite.DatabasePath(c.Root)
}

// Library returns the filesystem library for the configured root
func (c Config) Library() *filesystem.Library {
	return filesystem.NewLibrary(c.Root)
}

// OpenStore opens the configured index store
func (c Config) OpenStore() (ports.IndexStore, error) {
	return c.OpenStoreKind(c.Store)
}

// OpenStoreKind opens the index store of the given kind at its configured
// location. The caller closes it.
func (c Config) OpenStoreKind(kind string) (ports.IndexStore, error) {
	if err := application.ValidateStoreKind("store", kind); err != nil {
		return nil, err
	}

	if kind == "sqlite" {
		return sqlite.Open(c.DatabasePath())
	}
	return jsonfile.NewStore(c.IndexPath()), nil
}
