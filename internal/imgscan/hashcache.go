package imgscan

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite"
)

// HashCache persists computed perceptual hashes keyed by file path. A row
// is only reused while the file's size and modification time are
// unchanged. Safe for concurrent use by scanner workers.
type HashCache struct {
	db *sql.DB
}

// OpenHashCache opens (creating if needed) a cache database at dbPath.
func OpenHashCache(dbPath string) (*HashCache, error) {
	dir := filepath.Dir(dbPath)
	if dir != "." && dir != "" {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return nil, fmt.Errorf("failed to create directory: %w", err)
		}
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	c := &HashCache{db: db}
	if err := c.init(); err != nil {
		db.Close()
		return nil, err
	}

	return c, nil
}

func (c *HashCache) init() error {
	_, err := c.db.Exec(`
		CREATE TABLE IF NOT EXISTS hashes (
			path      TEXT PRIMARY KEY,
			file_size INTEGER NOT NULL,
			mod_time  INTEGER NOT NULL,
			hash      INTEGER NOT NULL
		)
	`)
	if err != nil {
		return fmt.Errorf("failed to create hashes table: %w", err)
	}
	return nil
}

// Get returns the cached hash for path, if the stored size and mtime still
// match the file on disk.
func (c *HashCache) Get(path string, size int64, modTime time.Time) (uint64, bool) {
	var (
		cachedSize int64
		cachedMod  int64
		hash       int64
	)
	err := c.db.QueryRow(
		`SELECT file_size, mod_time, hash FROM hashes WHERE path = ?`,
		path,
	).Scan(&cachedSize, &cachedMod, &hash)
	if err != nil {
		return 0, false
	}
	if cachedSize != size || cachedMod != modTime.UnixNano() {
		return 0, false
	}
	return uint64(hash), true
}

// Put stores or replaces the cached hash for path.
func (c *HashCache) Put(path string, size int64, modTime time.Time, hash uint64) error {
	_, err := c.db.Exec(`
		INSERT INTO hashes (path, file_size, mod_time, hash)
		VALUES (?, ?, ?, ?)
		ON CONFLICT(path) DO UPDATE SET
			file_size = excluded.file_size,
			mod_time  = excluded.mod_time,
			hash      = excluded.hash
	`, path, size, modTime.UnixNano(), int64(hash))
	if err != nil {
		return fmt.Errorf("failed to store hash: %w", err)
	}
	return nil
}

// Close closes the underlying database.
func (c *HashCache) Close() error {
	return c.db.Close()
}
