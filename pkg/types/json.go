// JSON encoding for SchemaField. The logic payload is a tagged union keyed
// by the field kind, so decoding picks the concrete payload type from the
// kind discriminator rather than guessing from the payload shape.
package types

import (
	"encoding/json"
	"fmt"
)

// fieldJSON mirrors the persisted record shape for one field.
type fieldJSON struct {
	FieldID  string          `json:"field_id"`
	Name     string          `json:"name"`
	Kind     FieldKind       `json:"kind"`
	Logic    json.RawMessage `json:"logic,omitempty"`
	Children []*SchemaField  `json:"children,omitempty"`
	Item     *SchemaField    `json:"item,omitempty"`
}

// MarshalJSON encodes the field with its kind-specific logic payload inline.
func (f *SchemaField) MarshalJSON() ([]byte, error) {
	rec := fieldJSON{
		FieldID:  f.FieldID,
		Name:     f.Name,
		Kind:     f.Kind,
		Children: f.Children,
		Item:     f.Item,
	}
	if f.Logic != nil {
		raw, err := json.Marshal(f.Logic)
		if err != nil {
			return nil, fmt.Errorf("marshaling logic for field %s: %w", f.FieldID, err)
		}
		rec.Logic = raw
	}
	return json.Marshal(rec)
}

// UnmarshalJSON decodes the field, selecting the logic payload type from
// the kind discriminator. An unrecognized kind with a logic payload is a
// malformed document and fails loudly.
func (f *SchemaField) UnmarshalJSON(data []byte) error {
	var rec fieldJSON
	if err := json.Unmarshal(data, &rec); err != nil {
		return err
	}
	f.FieldID = rec.FieldID
	f.Name = rec.Name
	f.Kind = rec.Kind
	f.Children = rec.Children
	f.Item = rec.Item
	f.Logic = nil

	if len(rec.Logic) == 0 || string(rec.Logic) == "null" {
		return nil
	}

	logic, err := decodeLogic(rec.Kind, rec.Logic)
	if err != nil {
		return fmt.Errorf("decoding logic for field %s: %w", rec.FieldID, err)
	}
	f.Logic = logic
	return nil
}

func decodeLogic(kind FieldKind, raw json.RawMessage) (Logic, error) {
	switch kind {
	case KindText, KindEmail:
		var l StringLogic
		if err := json.Unmarshal(raw, &l); err != nil {
			return nil, err
		}
		return &l, nil
	case KindNumber:
		var l NumberLogic
		if err := json.Unmarshal(raw, &l); err != nil {
			return nil, err
		}
		return &l, nil
	case KindBoolean, KindDate, KindURL, KindObject:
		var l BasicLogic
		if err := json.Unmarshal(raw, &l); err != nil {
			return nil, err
		}
		return &l, nil
	case KindArray:
		var l ArrayLogic
		if err := json.Unmarshal(raw, &l); err != nil {
			return nil, err
		}
		return &l, nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownKind, kind)
	}
}
