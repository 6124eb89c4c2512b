package catalog

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite" // SQLite driver

	"github.com/gnvclient/gnvclient/internal/model"
)

// DefaultCacheValidity is how long a persisted data source listing stays
// usable before it is considered stale and re-fetched from the engine.
// The listing changes on the order of months; one week keeps the CLI fast
// without serving outdated curation data for long.
const DefaultCacheValidity = 7 * 24 * time.Hour

// cacheFileName is the SQLite file created inside the cache directory.
const cacheFileName = "gnvclient.db"

// Store persists the data source listing in a local SQLite database.
// It holds a single listing snapshot plus its fetch time; Save replaces the
// snapshot atomically within one transaction.
type Store struct {
	db   *sql.DB
	path string

	// validity is the maximum age of a snapshot Load reports as fresh.
	validity time.Duration

	// now is a clock hook for freshness tests.
	now func() time.Time
}

// StoreOptions configures Store behavior.
type StoreOptions struct {
	// CreateIfNotExists creates the cache directory and database file when
	// they do not exist yet.
	CreateIfNotExists bool

	// Validity is the snapshot freshness window. Zero means
	// DefaultCacheValidity.
	Validity time.Duration
}

// DefaultStoreOptions returns the default disk cache options.
func DefaultStoreOptions() StoreOptions {
	return StoreOptions{
		CreateIfNotExists: true,
		Validity:          DefaultCacheValidity,
	}
}

// OpenStore opens or creates the catalog cache database in cacheDir.
func OpenStore(cacheDir string, opts StoreOptions) (*Store, error) {
	dbPath := filepath.Join(cacheDir, cacheFileName)

	var dsn string
	if opts.CreateIfNotExists {
		if err := os.MkdirAll(cacheDir, 0750); err != nil {
			return nil, fmt.Errorf("failed to create cache directory: %w", err)
		}
		dsn = dbPath + "?mode=rwc"
	} else {
		if _, err := os.Stat(dbPath); err != nil {
			if os.IsNotExist(err) {
				return nil, fmt.Errorf("catalog cache not found at %s", dbPath)
			}
			return nil, fmt.Errorf("failed to check cache path: %w", err)
		}
		dsn = dbPath + "?mode=rw"
	}

	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open catalog cache: %w", err)
	}

	// SQLite supports a single writer; one connection is all we need for a
	// cache this small.
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)
	db.SetConnMaxLifetime(time.Hour)

	validity := opts.Validity
	if validity == 0 {
		validity = DefaultCacheValidity
	}

	s := &Store{
		db:       db,
		path:     dbPath,
		validity: validity,
		now:      time.Now,
	}

	if err := s.createTables(); err != nil {
		_ = db.Close() //nolint:errcheck // Best effort cleanup
		return nil, fmt.Errorf("failed to create cache tables: %w", err)
	}

	return s, nil
}

// Close closes the underlying database.
func (s *Store) Close() error {
	return s.db.Close()
}

// Path returns the location of the cache database file.
func (s *Store) Path() string {
	return s.path
}

// createTables creates the cache schema if it does not exist.
func (s *Store) createTables() error {
	schema := `
	-- Single-row snapshot of the engine's data source listing.
	CREATE TABLE IF NOT EXISTS catalog_cache (
		id INTEGER PRIMARY KEY CHECK (id = 1),
		payload TEXT NOT NULL,
		fetched_at INTEGER NOT NULL
	);`
	_, err := s.db.Exec(schema)
	return err
}

// Load reads the persisted listing. The second return value reports whether
// the snapshot is within the validity window; a stale snapshot is still
// returned so callers can choose to use it as a fallback. A missing snapshot
// returns (nil, false, nil).
func (s *Store) Load(ctx context.Context) ([]model.DataSource, bool, error) {
	var payload string
	var fetchedAt int64

	row := s.db.QueryRowContext(ctx, "SELECT payload, fetched_at FROM catalog_cache WHERE id = 1")
	if err := row.Scan(&payload, &fetchedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, false, nil
		}
		return nil, false, fmt.Errorf("failed to read catalog cache: %w", err)
	}

	var sources []model.DataSource
	if err := json.Unmarshal([]byte(payload), &sources); err != nil {
		return nil, false, fmt.Errorf("corrupt catalog cache payload: %w", err)
	}

	age := s.now().Sub(time.Unix(fetchedAt, 0))
	fresh := age >= 0 && age < s.validity

	return sources, fresh, nil
}

// Save replaces the persisted listing with the given one, stamped with the
// current time.
func (s *Store) Save(ctx context.Context, sources []model.DataSource) error {
	payload, err := json.Marshal(sources)
	if err != nil {
		return fmt.Errorf("failed to encode catalog cache payload: %w", err)
	}

	_, err = s.db.ExecContext(ctx,
		`INSERT INTO catalog_cache (id, payload, fetched_at) VALUES (1, ?, ?)
		 ON CONFLICT(id) DO UPDATE SET payload = excluded.payload, fetched_at = excluded.fetched_at`,
		string(payload), s.now().Unix(),
	)
	if err != nil {
		return fmt.Errorf("failed to write catalog cache: %w", err)
	}
	return nil
}
