package sqlite

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite"

	"github.com/mesh-intelligence/stencil/pkg/types"
)

// Compile-time interface check: Backend must implement Store.
var _ types.Store = (*Backend)(nil)

// Backend implements the Store interface using SQLite as the query engine
// and schemas.jsonl as the source of truth. Documents are saved wholesale:
// every Save replaces the full document row and rewrites the JSONL file.
type Backend struct {
	mu       sync.RWMutex
	attached bool
	config   types.Config
	db       *sql.DB
	dataDir  string
}

// NewBackend creates a new SQLite backend instance.
// The backend is not attached; call Attach with a Config to initialize.
func NewBackend() *Backend {
	return &Backend{}
}

// Attach initializes the backend with the given configuration. Creates the
// DataDir if needed, builds a fresh SQLite database, and loads
// schemas.jsonl into it. Returns ErrAlreadyAttached if already attached.
func (b *Backend) Attach(config types.Config) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.attached {
		return types.ErrAlreadyAttached
	}
	if err := config.Validate(); err != nil {
		return err
	}

	dataDir := config.DataDir
	if dataDir == "" {
		dataDir = "."
	}
	if err := os.MkdirAll(dataDir, 0o755); err != nil {
		return err
	}

	// The database is rebuilt from JSONL on every attach.
	dbPath := filepath.Join(dataDir, "stencil.db")
	_ = os.Remove(dbPath)

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return err
	}
	if _, err := db.Exec(createSchemas); err != nil {
		db.Close()
		return err
	}

	if err := ensureJSONLFile(dataDir); err != nil {
		db.Close()
		return err
	}

	b.db = db
	b.config = config
	b.dataDir = dataDir

	if err := b.loadJSONL(); err != nil {
		db.Close()
		b.db = nil
		return fmt.Errorf("load JSONL: %w", err)
	}

	b.attached = true
	return nil
}

// Detach releases backend resources. Idempotent: multiple calls succeed.
func (b *Backend) Detach() error {
	b.mu.Lock()
	defer b.mu.Unlock()

	if !b.attached {
		return nil
	}
	b.attached = false
	if b.db != nil {
		err := b.db.Close()
		b.db = nil
		return err
	}
	return nil
}

// Get retrieves a schema document by id.
func (b *Backend) Get(id string) (*types.Schema, error) {
	b.mu.RLock()
	defer b.mu.RUnlock()

	if !b.attached {
		return nil, types.ErrStoreDetached
	}
	if id == "" {
		return nil, types.ErrInvalidID
	}

	var document string
	err := b.db.QueryRow(
		"SELECT document FROM schemas WHERE schema_id = ?", id,
	).Scan(&document)
	if err == sql.ErrNoRows {
		return nil, types.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("getting schema %s: %w", id, err)
	}
	return decodeDocument(id, document)
}

// Save persists a schema document wholesale. An empty SchemaID creates the
// document with a fresh UUID v7 and initialized timestamps; a non-empty id
// replaces (or imports) the document under that id. The document must pass
// Validate. Returns the actual id.
func (b *Backend) Save(s *types.Schema) (string, error) {
	b.mu.Lock()
	defer b.mu.Unlock()

	if !b.attached {
		return "", types.ErrStoreDetached
	}
	if s == nil {
		return "", types.ErrInvalidData
	}

	now := time.Now().UTC()
	if s.SchemaID == "" {
		newID, err := uuid.NewV7()
		if err != nil {
			return "", fmt.Errorf("generating UUID v7: %w", err)
		}
		s.SchemaID = newID.String()
		s.CreatedAt = now
	}
	s.UpdatedAt = now

	if err := s.Validate(); err != nil {
		return "", fmt.Errorf("%w: %w", types.ErrInvalidData, err)
	}

	document, err := encodeDocument(s)
	if err != nil {
		return "", err
	}

	_, err = b.db.Exec(
		`INSERT INTO schemas (schema_id, name, document, created_at, updated_at)
		 VALUES (?, ?, ?, ?, ?)
		 ON CONFLICT(schema_id) DO UPDATE SET
		     name = excluded.name,
		     document = excluded.document,
		     updated_at = excluded.updated_at`,
		s.SchemaID, s.Name, document,
		s.CreatedAt.Format(time.RFC3339Nano), s.UpdatedAt.Format(time.RFC3339Nano),
	)
	if err != nil {
		return "", fmt.Errorf("saving schema %s: %w", s.SchemaID, err)
	}

	if err := b.persistJSONL(); err != nil {
		return "", fmt.Errorf("persisting schema %s: %w", s.SchemaID, err)
	}
	return s.SchemaID, nil
}

// Delete removes a schema document by id.
func (b *Backend) Delete(id string) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	if !b.attached {
		return types.ErrStoreDetached
	}
	if id == "" {
		return types.ErrInvalidID
	}

	res, err := b.db.Exec("DELETE FROM schemas WHERE schema_id = ?", id)
	if err != nil {
		return fmt.Errorf("deleting schema %s: %w", id, err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("deleting schema %s: %w", id, err)
	}
	if affected == 0 {
		return types.ErrNotFound
	}

	if err := b.persistJSONL(); err != nil {
		return fmt.Errorf("persisting after delete of %s: %w", id, err)
	}
	return nil
}

// List returns all schema documents ordered by creation time.
func (b *Backend) List() ([]*types.Schema, error) {
	b.mu.RLock()
	defer b.mu.RUnlock()

	if !b.attached {
		return nil, types.ErrStoreDetached
	}

	rows, err := b.db.Query(
		"SELECT schema_id, document FROM schemas ORDER BY created_at, schema_id",
	)
	if err != nil {
		return nil, fmt.Errorf("listing schemas: %w", err)
	}
	defer rows.Close()

	schemas := make([]*types.Schema, 0)
	for rows.Next() {
		var id, document string
		if err := rows.Scan(&id, &document); err != nil {
			return nil, fmt.Errorf("scanning schema row: %w", err)
		}
		s, err := decodeDocument(id, document)
		if err != nil {
			return nil, err
		}
		schemas = append(schemas, s)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("listing schemas: %w", err)
	}
	return schemas, nil
}
