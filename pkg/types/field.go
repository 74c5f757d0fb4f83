package types

import "github.com/google/uuid"

// Field kinds. The set is closed; anything else fails Validate and renders
// as the unknown sentinel downstream.
const (
	KindText    FieldKind = "text"
	KindEmail   FieldKind = "email"
	KindURL     FieldKind = "url"
	KindNumber  FieldKind = "number"
	KindBoolean FieldKind = "boolean"
	KindDate    FieldKind = "date"
	KindObject  FieldKind = "object"
	KindArray   FieldKind = "array"
)

// FieldKind discriminates the SchemaField variant.
type FieldKind string

// validKinds is the set of recognized field kinds.
var validKinds = map[FieldKind]bool{
	KindText:    true,
	KindEmail:   true,
	KindURL:     true,
	KindNumber:  true,
	KindBoolean: true,
	KindDate:    true,
	KindObject:  true,
	KindArray:   true,
}

// IsValidKind reports whether the given kind is recognized.
func IsValidKind(k FieldKind) bool {
	return validKinds[k]
}

// SchemaField is one node of a schema tree.
//
// Children is populated only for object fields; Item only for array fields.
// Item may itself be of any kind, including array or object, so trees nest
// to arbitrary depth. Logic holds the constraint payload matching Kind
// (see Logic); nil means unconstrained.
//
// Fields are treated as immutable once built: every structural edit goes
// through UpdateField/RemoveField, which return new trees and share
// untouched subtrees by reference. Use the New*Field constructors; they
// assign a fresh UUID v7 id and only accept the payload legal for the kind.
type SchemaField struct {
	FieldID  string
	Name     string
	Kind     FieldKind
	Logic    Logic
	Children []*SchemaField // object only
	Item     *SchemaField   // array only
}

// newFieldID returns a fresh UUID v7 string.
func newFieldID() string {
	return uuid.Must(uuid.NewV7()).String()
}

// NewTextField creates a text field. logic may be nil.
func NewTextField(name string, logic *StringLogic) *SchemaField {
	f := &SchemaField{FieldID: newFieldID(), Name: name, Kind: KindText}
	if logic != nil {
		f.Logic = logic
	}
	return f
}

// NewEmailField creates an email field. logic may be nil.
func NewEmailField(name string, logic *StringLogic) *SchemaField {
	f := &SchemaField{FieldID: newFieldID(), Name: name, Kind: KindEmail}
	if logic != nil {
		f.Logic = logic
	}
	return f
}

// NewURLField creates a url field. URLs carry no constraints beyond required.
func NewURLField(name string, required bool) *SchemaField {
	return newBasicField(name, KindURL, required)
}

// NewNumberField creates a number field. logic may be nil.
func NewNumberField(name string, logic *NumberLogic) *SchemaField {
	f := &SchemaField{FieldID: newFieldID(), Name: name, Kind: KindNumber}
	if logic != nil {
		f.Logic = logic
	}
	return f
}

// NewBooleanField creates a boolean field.
func NewBooleanField(name string, required bool) *SchemaField {
	return newBasicField(name, KindBoolean, required)
}

// NewDateField creates a date field.
func NewDateField(name string, required bool) *SchemaField {
	return newBasicField(name, KindDate, required)
}

// NewObjectField creates an object field with the given ordered children.
// The children slice may be empty; objects never carry an Item.
func NewObjectField(name string, required bool, children ...*SchemaField) *SchemaField {
	f := newBasicField(name, KindObject, required)
	f.Children = children
	return f
}

// NewArrayField creates an array field with the given element type.
// item may be nil (an incomplete array awaiting an element type) and may
// itself be an array or object. logic may be nil.
func NewArrayField(name string, item *SchemaField, logic *ArrayLogic) *SchemaField {
	f := &SchemaField{FieldID: newFieldID(), Name: name, Kind: KindArray, Item: item}
	if logic != nil {
		f.Logic = logic
	}
	return f
}

func newBasicField(name string, kind FieldKind, required bool) *SchemaField {
	f := &SchemaField{FieldID: newFieldID(), Name: name, Kind: kind}
	if required {
		f.Logic = &BasicLogic{Required: true}
	}
	return f
}

// Equal reports deep structural equality of two fields, including ids,
// constraint payloads, children, and array item chains.
func (f *SchemaField) Equal(other *SchemaField) bool {
	if f == nil || other == nil {
		return f == other
	}
	if f.FieldID != other.FieldID || f.Name != other.Name || f.Kind != other.Kind {
		return false
	}
	if !logicEqual(f.Logic, other.Logic) {
		return false
	}
	if len(f.Children) != len(other.Children) {
		return false
	}
	for i := range f.Children {
		if !f.Children[i].Equal(other.Children[i]) {
			return false
		}
	}
	return f.Item.Equal(other.Item)
}

func logicEqual(a, b Logic) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	switch av := a.(type) {
	case *StringLogic:
		bv, ok := b.(*StringLogic)
		return ok && av.Required == bv.Required &&
			intPtrEqual(av.MinLength, bv.MinLength) &&
			intPtrEqual(av.MaxLength, bv.MaxLength) &&
			av.Pattern == bv.Pattern &&
			stringSliceEqual(av.Enum, bv.Enum)
	case *NumberLogic:
		bv, ok := b.(*NumberLogic)
		return ok && av.Required == bv.Required &&
			floatPtrEqual(av.Min, bv.Min) &&
			floatPtrEqual(av.Max, bv.Max) &&
			floatSliceEqual(av.Enum, bv.Enum)
	case *BasicLogic:
		bv, ok := b.(*BasicLogic)
		return ok && av.Required == bv.Required
	case *ArrayLogic:
		bv, ok := b.(*ArrayLogic)
		return ok && intPtrEqual(av.MinItems, bv.MinItems) &&
			intPtrEqual(av.MaxItems, bv.MaxItems)
	default:
		return false
	}
}

func intPtrEqual(a, b *int) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	return *a == *b
}

func floatPtrEqual(a, b *float64) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	return *a == *b
}

func stringSliceEqual(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func floatSliceEqual(a, b []float64) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

// Int returns a pointer to v, for optional constraint members.
func Int(v int) *int { return &v }

// Float returns a pointer to v, for optional constraint members.
func Float(v float64) *float64 { return &v }
