// Package types defines the schema document model for Stencil: the Schema
// root, the recursive SchemaField tree with per-kind constraint payloads,
// the copy-on-write tree mutation operations, the Store interface, and
// standard error values.
// See docs/ARCHITECTURE.md § Schema Model.
package types
