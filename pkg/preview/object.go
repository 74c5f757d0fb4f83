package preview

import (
	"bytes"
	"encoding/json"
)

// Object is a JSON object that preserves insertion order when marshaled.
// The renderer needs key order to follow child order, which the stdlib map
// type cannot guarantee.
type Object struct {
	members []member
}

type member struct {
	key   string
	value any
}

// NewObject returns an empty ordered object.
func NewObject() *Object {
	return &Object{}
}

// Set appends a key/value member. Keys are assumed distinct; the renderer's
// duplicate-key rule guarantees that for rendered output.
func (o *Object) Set(key string, value any) {
	o.members = append(o.members, member{key: key, value: value})
}

// Get returns the value for a key and whether it is present.
func (o *Object) Get(key string) (any, bool) {
	for _, m := range o.members {
		if m.key == key {
			return m.value, true
		}
	}
	return nil, false
}

// Len returns the number of members.
func (o *Object) Len() int {
	return len(o.members)
}

// Keys returns the keys in insertion order.
func (o *Object) Keys() []string {
	keys := make([]string, len(o.members))
	for i, m := range o.members {
		keys[i] = m.key
	}
	return keys
}

// MarshalJSON encodes the object with members in insertion order.
func (o *Object) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, m := range o.members {
		if i > 0 {
			buf.WriteByte(',')
		}
		key, err := json.Marshal(m.key)
		if err != nil {
			return nil, err
		}
		buf.Write(key)
		buf.WriteByte(':')
		value, err := json.Marshal(m.value)
		if err != nil {
			return nil, err
		}
		buf.Write(value)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}
