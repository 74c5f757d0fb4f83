package types

import (
	"errors"
	"fmt"
)

// Structural invariant errors. These signal programmer or caller mistakes
// (hand-assembled or malformed decoded trees); they are not recoverable
// conditions the editor is expected to handle.
var (
	ErrDuplicateFieldID = errors.New("duplicate field id in tree")
	ErrUnknownKind      = errors.New("unknown field kind")
	ErrInvalidChildren  = errors.New("children present on non-object field")
	ErrInvalidItem      = errors.New("item present on non-array field")
	ErrLogicMismatch    = errors.New("logic payload does not match field kind")
	ErrEmptyFieldName   = errors.New("field name must not be empty")
)

// ValidateFields checks the structural invariants over a whole scope:
// tree-wide unique ids, children only on objects, item only on arrays,
// recognized kinds, non-empty names, and kind-matching logic payloads.
// The first violation found is returned, wrapped with the offending
// field's id and name so the caller can report which invariant broke.
func ValidateFields(scope []*SchemaField) error {
	seen := make(map[string]bool)
	return validateScope(scope, seen)
}

func validateScope(scope []*SchemaField, seen map[string]bool) error {
	for _, f := range scope {
		if err := validateField(f, seen); err != nil {
			return err
		}
	}
	return nil
}

func validateField(f *SchemaField, seen map[string]bool) error {
	if !IsValidKind(f.Kind) {
		return fieldErr(f, ErrUnknownKind)
	}
	if f.Name == "" {
		return fmt.Errorf("field %s: %w", f.FieldID, ErrEmptyFieldName)
	}
	if seen[f.FieldID] {
		return fieldErr(f, ErrDuplicateFieldID)
	}
	seen[f.FieldID] = true

	if len(f.Children) > 0 && f.Kind != KindObject {
		return fieldErr(f, ErrInvalidChildren)
	}
	if f.Item != nil && f.Kind != KindArray {
		return fieldErr(f, ErrInvalidItem)
	}
	if !logicMatchesKind(f.Kind, f.Logic) {
		return fieldErr(f, ErrLogicMismatch)
	}

	if err := validateScope(f.Children, seen); err != nil {
		return err
	}
	if f.Item != nil {
		return validateField(f.Item, seen)
	}
	return nil
}

func fieldErr(f *SchemaField, err error) error {
	return fmt.Errorf("field %s (%q): %w", f.FieldID, f.Name, err)
}
