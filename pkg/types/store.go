package types

import "errors"

// Store defines the interface for backend-agnostic schema persistence.
// Callers attach to a backend, operate on whole documents, and detach when
// done. Documents are always saved and loaded wholesale; the store never
// sees partial field updates.
type Store interface {
	// Attach connects the store to the backend described by config.
	// Creates the DataDir if it does not exist.
	// Returns ErrAlreadyAttached if called while already attached.
	Attach(config Config) error

	// Detach releases backend resources. Idempotent: multiple calls
	// succeed. After Detach, operations return ErrStoreDetached.
	Detach() error

	// Get retrieves a schema document by id.
	// Returns ErrNotFound if no document has the id.
	Get(id string) (*Schema, error)

	// Save persists a schema document. If the document's SchemaID is
	// empty, a UUID v7 is generated and timestamps are initialized;
	// otherwise the existing document is replaced wholesale. Returns the
	// actual id. The document must pass Validate.
	Save(s *Schema) (string, error)

	// Delete removes a schema document by id.
	// Returns ErrNotFound if no document has the id.
	Delete(id string) error

	// List returns all schema documents ordered by creation time.
	// Returns an empty slice (not nil) when the store is empty.
	List() ([]*Schema, error)
}

// Store lifecycle and operation errors.
var (
	ErrStoreDetached   = errors.New("store is detached")
	ErrAlreadyAttached = errors.New("store is already attached")
	ErrNotFound        = errors.New("schema not found")
	ErrInvalidID       = errors.New("invalid schema id")
	ErrInvalidData     = errors.New("invalid schema data")
)
