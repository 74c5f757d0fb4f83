package types

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFieldJSONRoundTripNestedTree(t *testing.T) {
	root := NewObjectField("order", true,
		NewTextField("orderId", &StringLogic{Required: true, Pattern: "^ORD-"}),
		NewArrayField("items",
			NewObjectField("item", false,
				NewTextField("sku", &StringLogic{Enum: []string{"a", "b"}}),
				NewNumberField("quantity", &NumberLogic{Required: true, Min: Float(1), Max: Float(100)}),
			),
			&ArrayLogic{MinItems: Int(1), MaxItems: Int(10)}),
		NewArrayField("grid",
			NewArrayField("row", NewNumberField("cell", nil), nil),
			nil),
		NewBooleanField("paid", true),
	)

	raw, err := json.Marshal(root)
	require.NoError(t, err)

	var decoded SchemaField
	require.NoError(t, json.Unmarshal(raw, &decoded))

	assert.True(t, root.Equal(&decoded), "decoded tree must equal the original, payload types included")
}

func TestFieldJSONDecodeSelectsPayloadByKind(t *testing.T) {
	tests := []struct {
		name string
		doc  string
		want func(t *testing.T, f *SchemaField)
	}{
		{
			name: "text gets StringLogic",
			doc:  `{"field_id":"f1","name":"bio","kind":"text","logic":{"required":true,"max_length":80}}`,
			want: func(t *testing.T, f *SchemaField) {
				logic, ok := f.Logic.(*StringLogic)
				require.True(t, ok)
				assert.True(t, logic.Required)
				assert.Equal(t, 80, *logic.MaxLength)
			},
		},
		{
			name: "number gets NumberLogic",
			doc:  `{"field_id":"f2","name":"age","kind":"number","logic":{"min":18}}`,
			want: func(t *testing.T, f *SchemaField) {
				logic, ok := f.Logic.(*NumberLogic)
				require.True(t, ok)
				assert.Equal(t, float64(18), *logic.Min)
			},
		},
		{
			name: "date gets BasicLogic",
			doc:  `{"field_id":"f3","name":"at","kind":"date","logic":{"required":true}}`,
			want: func(t *testing.T, f *SchemaField) {
				logic, ok := f.Logic.(*BasicLogic)
				require.True(t, ok)
				assert.True(t, logic.Required)
			},
		},
		{
			name: "array gets ArrayLogic",
			doc:  `{"field_id":"f4","name":"tags","kind":"array","logic":{"min_items":1,"max_items":5}}`,
			want: func(t *testing.T, f *SchemaField) {
				logic, ok := f.Logic.(*ArrayLogic)
				require.True(t, ok)
				assert.Equal(t, 1, *logic.MinItems)
				assert.Equal(t, 5, *logic.MaxItems)
			},
		},
		{
			name: "absent logic stays nil",
			doc:  `{"field_id":"f5","name":"active","kind":"boolean"}`,
			want: func(t *testing.T, f *SchemaField) {
				assert.Nil(t, f.Logic)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var f SchemaField
			require.NoError(t, json.Unmarshal([]byte(tt.doc), &f))
			tt.want(t, &f)
		})
	}
}

func TestFieldJSONDecodeUnknownKindWithLogicFails(t *testing.T) {
	doc := `{"field_id":"f9","name":"x","kind":"uuid","logic":{"required":true}}`
	var f SchemaField
	err := json.Unmarshal([]byte(doc), &f)
	assert.ErrorIs(t, err, ErrUnknownKind)
}
