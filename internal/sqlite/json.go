// Document encode/decode and JSONL load/persist. A document row holds the
// whole schema as JSON; the JSONL file carries the same documents one per
// line, rewritten atomically after every successful write.
package sqlite

import (
	"encoding/json"
	"fmt"
	"path/filepath"
	"time"

	"github.com/mesh-intelligence/stencil/pkg/types"
)

// encodeDocument marshals a schema to its stored JSON form.
func encodeDocument(s *types.Schema) (string, error) {
	raw, err := json.Marshal(s)
	if err != nil {
		return "", fmt.Errorf("marshaling schema %s: %w", s.SchemaID, err)
	}
	return string(raw), nil
}

// decodeDocument unmarshals a stored document back into a schema.
func decodeDocument(id, document string) (*types.Schema, error) {
	var s types.Schema
	if err := json.Unmarshal([]byte(document), &s); err != nil {
		return nil, fmt.Errorf("unmarshaling schema %s: %w", id, err)
	}
	return &s, nil
}

// loadJSONL reads schemas.jsonl and inserts every valid document into the
// freshly created database. Called under the backend write lock.
func (b *Backend) loadJSONL() error {
	path := filepath.Join(b.dataDir, schemasJSONLName)
	records, err := readJSONL(path)
	if err != nil {
		return err
	}
	for _, rec := range records {
		var s types.Schema
		if err := json.Unmarshal(rec, &s); err != nil {
			// Skip records that no longer decode; the rest of the
			// store stays usable.
			continue
		}
		if s.SchemaID == "" {
			continue
		}
		_, err := b.db.Exec(
			`INSERT OR REPLACE INTO schemas (schema_id, name, document, created_at, updated_at)
			 VALUES (?, ?, ?, ?, ?)`,
			s.SchemaID, s.Name, string(rec),
			s.CreatedAt.Format(time.RFC3339Nano), s.UpdatedAt.Format(time.RFC3339Nano),
		)
		if err != nil {
			return fmt.Errorf("loading schema %s: %w", s.SchemaID, err)
		}
	}
	return nil
}

// persistJSONL rewrites schemas.jsonl from the current database contents.
// Called under the backend write lock after every successful write.
func (b *Backend) persistJSONL() error {
	rows, err := b.db.Query(
		"SELECT document FROM schemas ORDER BY created_at, schema_id",
	)
	if err != nil {
		return err
	}
	defer rows.Close()

	var records []json.RawMessage
	for rows.Next() {
		var document string
		if err := rows.Scan(&document); err != nil {
			return err
		}
		records = append(records, json.RawMessage(document))
	}
	if err := rows.Err(); err != nil {
		return err
	}

	path := filepath.Join(b.dataDir, schemasJSONLName)
	return writeJSONL(path, records)
}
