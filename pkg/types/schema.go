package types

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

// Schema is the root schema document: a named, ordered sequence of fields.
//
// The editor holds exactly one canonical Schema per document and replaces
// Fields wholesale with the result of UpdateField/RemoveField on each
// accepted mutation. The store persists and reloads the whole document;
// there are no partial saves.
type Schema struct {
	SchemaID    string         `json:"schema_id"`
	Name        string         `json:"name"`
	Description string         `json:"description,omitempty"`
	Fields      []*SchemaField `json:"fields"`
	CreatedAt   time.Time      `json:"created_at"`
	UpdatedAt   time.Time      `json:"updated_at"`
}

// Schema validation errors.
var (
	ErrEmptySchemaName = errors.New("schema name must not be empty")
)

// NewSchema creates a schema document with a fresh UUID v7 id. The fields
// sequence may be empty; description may be empty.
func NewSchema(name, description string, fields ...*SchemaField) *Schema {
	now := time.Now().UTC()
	return &Schema{
		SchemaID:    uuid.Must(uuid.NewV7()).String(),
		Name:        name,
		Description: description,
		Fields:      fields,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
}

// Validate checks the document: non-empty name plus the structural
// invariants of the field tree (see ValidateFields).
func (s *Schema) Validate() error {
	if s.Name == "" {
		return ErrEmptySchemaName
	}
	return ValidateFields(s.Fields)
}

// WithFields returns a copy of the schema carrying the given field tree and
// a refreshed UpdatedAt. The receiver is not modified.
func (s *Schema) WithFields(fields []*SchemaField) *Schema {
	cp := *s
	cp.Fields = fields
	cp.UpdatedAt = time.Now().UTC()
	return &cp
}
