package preview

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mesh-intelligence/stencil/pkg/catalog"
	"github.com/mesh-intelligence/stencil/pkg/types"
)

func TestRenderLeafDescriptions(t *testing.T) {
	tests := []struct {
		name  string
		field *types.SchemaField
		want  string
	}{
		{
			name:  "bare text",
			field: types.NewTextField("bio", nil),
			want:  "text",
		},
		{
			name:  "bare text with only required",
			field: types.NewTextField("bio", &types.StringLogic{Required: true}),
			want:  "text",
		},
		{
			name:  "bare email",
			field: types.NewEmailField("email", &types.StringLogic{Required: true}),
			want:  "email",
		},
		{
			name:  "text enum wins over other constraints",
			field: types.NewTextField("color", &types.StringLogic{Enum: []string{"red", "green", "blue"}, Pattern: "^x", MinLength: types.Int(1)}),
			want:  "text, one of: red, green, blue",
		},
		{
			name:  "text pattern",
			field: types.NewTextField("slug", &types.StringLogic{Pattern: "^[a-z0-9-]+$"}),
			want:  "text matching ^[a-z0-9-]+$",
		},
		{
			name:  "text both bounds",
			field: types.NewTextField("name", &types.StringLogic{MinLength: types.Int(2), MaxLength: types.Int(50)}),
			want:  "text (2-50 chars)",
		},
		{
			name:  "text min only",
			field: types.NewTextField("content", &types.StringLogic{MinLength: types.Int(100)}),
			want:  "text (min 100 chars)",
		},
		{
			name:  "text max only",
			field: types.NewTextField("summary", &types.StringLogic{MaxLength: types.Int(280)}),
			want:  "text (max 280 chars)",
		},
		{
			name:  "url renders bare name",
			field: types.NewURLField("homepage", true),
			want:  "url",
		},
		{
			name:  "boolean renders bare name",
			field: types.NewBooleanField("active", false),
			want:  "boolean",
		},
		{
			name:  "date renders bare name",
			field: types.NewDateField("createdAt", true),
			want:  "date",
		},
		{
			name:  "bare number",
			field: types.NewNumberField("age", nil),
			want:  "number",
		},
		{
			name:  "number enum",
			field: types.NewNumberField("rating", &types.NumberLogic{Enum: []float64{1, 2.5, 5}}),
			want:  "number, one of: 1, 2.5, 5",
		},
		{
			name:  "number both bounds",
			field: types.NewNumberField("age", &types.NumberLogic{Min: types.Float(18), Max: types.Float(99)}),
			want:  "number (18 to 99)",
		},
		{
			name:  "number min only",
			field: types.NewNumberField("price", &types.NumberLogic{Min: types.Float(0.01)}),
			want:  "number (min 0.01)",
		},
		{
			name:  "number max only",
			field: types.NewNumberField("discount", &types.NumberLogic{Max: types.Float(90)}),
			want:  "number (max 90)",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := RenderField(tt.field, Options{})
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestRenderUnknownKindSentinel(t *testing.T) {
	f := &types.SchemaField{FieldID: "x", Name: "x", Kind: "uuid"}
	assert.Equal(t, "unknown", RenderField(f, Options{}))
}

func TestRenderArraySampleCounts(t *testing.T) {
	tests := []struct {
		name       string
		logic      *types.ArrayLogic
		forPreview bool
		wantCount  int
	}{
		{name: "defaults full sample is min+1", logic: nil, wantCount: 3},
		{name: "defaults preview is one", logic: nil, forPreview: true, wantCount: 1},
		{
			name:      "min equals max pins count",
			logic:     &types.ArrayLogic{MinItems: types.Int(1), MaxItems: types.Int(1)},
			wantCount: 1,
		},
		{
			name:       "min equals max pins count in preview too",
			logic:      &types.ArrayLogic{MinItems: types.Int(1), MaxItems: types.Int(1)},
			forPreview: true,
			wantCount:  1,
		},
		{
			name:      "min+1 capped at max",
			logic:     &types.ArrayLogic{MinItems: types.Int(2), MaxItems: types.Int(5)},
			wantCount: 3,
		},
		{
			name:       "explicit bounds preview still one",
			logic:      &types.ArrayLogic{MinItems: types.Int(2), MaxItems: types.Int(5)},
			forPreview: true,
			wantCount:  1,
		},
		{
			name:      "cap below min+1",
			logic:     &types.ArrayLogic{MinItems: types.Int(4), MaxItems: types.Int(4)},
			wantCount: 4,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			arr := types.NewArrayField("tags", types.NewTextField("tag", nil), tt.logic)
			got := RenderField(arr, Options{ForPreview: tt.forPreview})
			samples, ok := got.([]any)
			require.True(t, ok)
			assert.Len(t, samples, tt.wantCount)
			for _, s := range samples {
				assert.Equal(t, "text", s)
			}
		})
	}
}

func TestRenderArrayWithoutItem(t *testing.T) {
	arr := types.NewArrayField("pending", nil, nil)

	got := RenderField(arr, Options{})
	assert.Equal(t, []any{}, got)

	// Collapsing an itemless array does not produce a placeholder.
	got = RenderField(arr, Options{Collapsed: map[string]bool{arr.FieldID: true}})
	assert.Equal(t, []any{}, got)
}

func TestRenderCollapsedArrayPlaceholder(t *testing.T) {
	t.Run("singular", func(t *testing.T) {
		arr := types.NewArrayField("tags", types.NewTextField("tag", nil),
			&types.ArrayLogic{MinItems: types.Int(1), MaxItems: types.Int(1)})
		got := RenderField(arr, Options{Collapsed: map[string]bool{arr.FieldID: true}})
		assert.Equal(t, "...1 item", got)
	})

	t.Run("plural", func(t *testing.T) {
		arr := types.NewArrayField("tags", types.NewTextField("tag", nil),
			&types.ArrayLogic{MinItems: types.Int(2), MaxItems: types.Int(5)})
		got := RenderField(arr, Options{Collapsed: map[string]bool{arr.FieldID: true}})
		assert.Equal(t, "...3 items", got)
	})
}

func TestRenderCollapsedObjectPlaceholder(t *testing.T) {
	t.Run("one child singular", func(t *testing.T) {
		obj := types.NewObjectField("author", false, types.NewTextField("name", nil))
		got := RenderField(obj, Options{Collapsed: map[string]bool{obj.FieldID: true}})
		assert.Equal(t, "...1 field", got)
	})

	t.Run("two children plural", func(t *testing.T) {
		obj := types.NewObjectField("author", false,
			types.NewTextField("name", nil),
			types.NewEmailField("email", nil))
		got := RenderField(obj, Options{Collapsed: map[string]bool{obj.FieldID: true}})
		assert.Equal(t, "...2 fields", got)
	})

	t.Run("empty object expands even when collapsed", func(t *testing.T) {
		obj := types.NewObjectField("empty", false)
		got := RenderField(obj, Options{Collapsed: map[string]bool{obj.FieldID: true}})
		rendered, ok := got.(*Object)
		require.True(t, ok)
		assert.Equal(t, 0, rendered.Len())
	})
}

func TestRenderDuplicateKeys(t *testing.T) {
	fields := []*types.SchemaField{
		types.NewTextField("x", nil),
		types.NewTextField("x", nil),
		types.NewTextField("x", nil),
	}

	for i := 0; i < 3; i++ {
		got := RenderSchema(fields, Options{})
		assert.Equal(t, []string{"x", "x_2", "x_3"}, got.Keys(), "suffixing must be order-stable and reproducible")
	}
}

func TestRenderDuplicateKeysScopedPerObject(t *testing.T) {
	fields := []*types.SchemaField{
		types.NewTextField("name", nil),
		types.NewObjectField("inner", false,
			types.NewTextField("name", nil),
			types.NewTextField("name", nil),
		),
	}

	got := RenderSchema(fields, Options{})
	assert.Equal(t, []string{"name", "inner"}, got.Keys(), "outer scope does not see inner names")

	inner, ok := got.Get("inner")
	require.True(t, ok)
	innerObj, ok := inner.(*Object)
	require.True(t, ok)
	assert.Equal(t, []string{"name", "name_2"}, innerObj.Keys())
}

func TestRenderDuplicateKeysProbeUpward(t *testing.T) {
	// A literal name_2 occupies the first probe slot; the synthetic key for
	// the second "name" probes past it.
	fields := []*types.SchemaField{
		types.NewTextField("name", nil),
		types.NewTextField("name_2", nil),
		types.NewTextField("name", nil),
	}

	got := RenderSchema(fields, Options{})
	assert.Equal(t, []string{"name", "name_2", "name_3"}, got.Keys())
}

func TestRenderIsPureAndIdempotent(t *testing.T) {
	s, ok := catalog.Get("order")
	require.True(t, ok)
	before, err := json.Marshal(s.Fields)
	require.NoError(t, err)

	opts := Options{ForPreview: false}
	first, err := json.Marshal(RenderSchema(s.Fields, opts))
	require.NoError(t, err)
	second, err := json.Marshal(RenderSchema(s.Fields, opts))
	require.NoError(t, err)
	assert.Equal(t, string(first), string(second), "identical arguments must yield identical output")

	after, err := json.Marshal(s.Fields)
	require.NoError(t, err)
	assert.Equal(t, string(before), string(after), "rendering must not mutate the schema")
}

func TestRenderNestedSampleJSON(t *testing.T) {
	s, ok := catalog.Get("matrix")
	require.True(t, ok)

	raw, err := json.Marshal(RenderSchema(s.Fields, Options{ForPreview: true}))
	require.NoError(t, err)

	// Preview mode renders one sample per array level.
	assert.JSONEq(t, `{"name":"text","grid":[["number (0 to 9)"]]}`, string(raw))
}

// Full editor round: seed the user template, flip the email field to
// optional through the tree mutator, and confirm the preview reflects the
// constraint set of each field.
func TestUserTemplateEditAndRenderScenario(t *testing.T) {
	s, ok := catalog.Get("user")
	require.True(t, ok)
	require.Len(t, s.Fields, 6)

	var emailID string
	for _, f := range s.Fields {
		require.Empty(t, f.Children, "user template is flat")
		require.Nil(t, f.Item, "user template is flat")
		if f.Name == "email" {
			emailID = f.FieldID
		}
	}
	require.NotEmpty(t, emailID)

	newFields := types.UpdateField(s.Fields, emailID, func(f *types.SchemaField) *types.SchemaField {
		cp := *f
		cp.Logic = types.WithRequired(f.Kind, f.Logic, false)
		return &cp
	})

	// Only the email node differs; its siblings are shared by reference.
	for i, f := range s.Fields {
		if f.FieldID == emailID {
			assert.NotSame(t, f, newFields[i])
			assert.False(t, types.IsRequired(newFields[i].Logic))
		} else {
			assert.Same(t, f, newFields[i])
		}
	}

	got := RenderSchema(newFields, Options{ForPreview: true})
	email, ok := got.Get("email")
	require.True(t, ok)
	assert.Equal(t, "email", email, "no length bounds, so the bare kind renders")

	firstName, ok := got.Get("firstName")
	require.True(t, ok)
	assert.Equal(t, "text (2-50 chars)", firstName)
}
