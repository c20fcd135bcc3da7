package sqlite

import (
	"crypto/sha256"
	"database/sql"
	"encoding/hex"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "github.com/mattn/go-sqlite3"

	"imgcurate/internal/application"
	"imgcurate/internal/domain"
	"imgcurate/internal/ports"
)

const schemaVersion = "1"

// Store implements ports.IndexStore using SQLite
type Store struct {
	db     *sql.DB
	dbPath string
}

// Ensure Store implements IndexStore
var _ ports.IndexStore = (*Store)(nil)

// Open opens (creating if needed) the database at dbPath
func Open(dbPath string) (*Store, error) {
	if err := os.MkdirAll(filepath.Dir(dbPath), 0755); err != nil {
		return nil, fmt.Errorf("failed to create index directory: %w", err)
	}

	db, err := sql.Open("sqlite3", dbPath+"?_journal_mode=WAL&_busy_timeout=5000")
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	// Performance pragmas + schema in single batch
	_, err = db.Exec(`
		PRAGMA synchronous = NORMAL;
		PRAGMA temp_store = MEMORY;

		CREATE TABLE IF NOT EXISTS images (
			folder TEXT NOT NULL,
			filename TEXT NOT NULL,
			folder_pos INTEGER NOT NULL,
			file_pos INTEGER NOT NULL
		);
		CREATE TABLE IF NOT EXISTS meta (
			key TEXT PRIMARY KEY,
			value TEXT NOT NULL
		);
		CREATE INDEX IF NOT EXISTS idx_images_order ON images(folder_pos, file_pos);
	`)
	if err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to setup database: %w", err)
	}

	return &Store{db: db, dbPath: dbPath}, nil
}

// Location returns the database file path
func (s *Store) Location() string {
	return s.dbPath
}

// Close closes the database connection
func (s *Store) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

// Load reads the index in stored folder and file order
func (s *Store) Load() (*domain.ImageIndex, error) {
	var savedAt string
	err := s.db.QueryRow(`SELECT value FROM meta WHERE key = 'saved_at'`).Scan(&savedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, &application.IndexLoadError{Location: s.dbPath, Err: application.ErrIndexNotFound}
	}
	if err != nil {
		return nil, &application.IndexLoadError{Location: s.dbPath, Err: err}
	}

	rows, err := s.db.Query(`SELECT folder, filename FROM images ORDER BY folder_pos, file_pos`)
	if err != nil {
		return nil, &application.IndexLoadError{Location: s.dbPath, Err: err}
	}
	defer rows.Close()

	var order []string
	files := make(map[string][]string)
	for rows.Next() {
		var folder, filename string
		if err := rows.Scan(&folder, &filename); err != nil {
			return nil, &application.IndexLoadError{Location: s.dbPath, Err: err}
		}
		if _, seen := files[folder]; !seen {
			order = append(order, folder)
		}
		files[folder] = append(files[folder], filename)
	}
	if err := rows.Err(); err != nil {
		return nil, &application.IndexLoadError{Location: s.dbPath, Err: err}
	}

	idx := domain.NewImageIndex()
	for _, folder := range order {
		idx.Set(folder, files[folder])
	}
	if err := idx.Validate(); err != nil {
		return nil, &application.IndexLoadError{Location: s.dbPath, Err: err}
	}
	return idx, nil
}

// Save replaces the stored rows with idx in one transaction
func (s *Store) Save(idx *domain.ImageIndex) error {
	if err := s.save(idx); err != nil {
		return &application.PersistError{Location: s.dbPath, Err: err}
	}
	return nil
}

func (s *Store) save(idx *domain.ImageIndex) error {
	tx, err := s.beginTx()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if err := tx.ClearImages(); err != nil {
		return err
	}
	for folderPos, folder := range idx.Folders() {
		for filePos, filename := range idx.Files(folder) {
			if err := tx.InsertImage(folder, filename, folderPos, filePos); err != nil {
				return err
			}
		}
	}
	if err := tx.SetMeta("schema_version", schemaVersion); err != nil {
		return err
	}
	if err := tx.SetMeta("saved_at", time.Now().UTC().Format(time.RFC3339)); err != nil {
		return err
	}

	return tx.Commit()
}

// DatabasePath returns the default database location for a library root
func DatabasePath(rootPath string) string {
	// XDG data directory
	dataHome := os.Getenv("XDG_DATA_HOME")
	if dataHome == "" {
		home, _ := os.UserHomeDir()
		dataHome = filepath.Join(home, ".local", "share")
	}

	return filepath.Join(dataHome, "imgcurate", hashRootPath(rootPath)+".db")
}

// hashRootPath returns a short hash of the root path
func hashRootPath(rootPath string) string {
	h := sha256.Sum256([]byte(rootPath))
	return hex.EncodeToString(h[:8]) // First 8 bytes = 16 hex chars
}
