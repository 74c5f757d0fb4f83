// Package sqlite implements the SQLite storage backend for Stencil.
// See docs/ARCHITECTURE.md § SQLite Backend.
package sqlite

// Schema DDL. SQLite is the query engine; schemas.jsonl is the source of
// truth and is reloaded into a fresh database on every Attach.
const createSchemas = `CREATE TABLE schemas (
    schema_id TEXT PRIMARY KEY,
    name TEXT NOT NULL,
    document TEXT NOT NULL,
    created_at TEXT NOT NULL,
    updated_at TEXT NOT NULL
);`
