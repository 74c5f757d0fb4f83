package preview

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestObjectPreservesInsertionOrder(t *testing.T) {
	obj := NewObject()
	obj.Set("zebra", 1)
	obj.Set("apple", 2)
	obj.Set("mango", 3)

	assert.Equal(t, []string{"zebra", "apple", "mango"}, obj.Keys())
	assert.Equal(t, 3, obj.Len())

	raw, err := json.Marshal(obj)
	require.NoError(t, err)
	assert.Equal(t, `{"zebra":1,"apple":2,"mango":3}`, string(raw))
}

func TestObjectGet(t *testing.T) {
	obj := NewObject()
	obj.Set("a", "first")

	v, ok := obj.Get("a")
	assert.True(t, ok)
	assert.Equal(t, "first", v)

	_, ok = obj.Get("missing")
	assert.False(t, ok)
}

func TestObjectMarshalNested(t *testing.T) {
	inner := NewObject()
	inner.Set("x", []any{"a", "b"})

	obj := NewObject()
	obj.Set("inner", inner)
	obj.Set("n", 4.5)

	raw, err := json.Marshal(obj)
	require.NoError(t, err)
	assert.Equal(t, `{"inner":{"x":["a","b"]},"n":4.5}`, string(raw))
}

func TestObjectMarshalEmpty(t *testing.T) {
	raw, err := json.Marshal(NewObject())
	require.NoError(t, err)
	assert.Equal(t, `{}`, string(raw))
}
