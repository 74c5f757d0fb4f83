package types

// Tree mutation operations. Both operations are copy-on-write: they rebuild
// the path from the scope down to the matched field and return every
// untouched sibling subtree by reference, so old and new versions of a
// schema can coexist (undo history) and callers can dirty-check cheaply.
//
// The traversal visits, for each field in scope order: the field itself,
// its children (recursively), its array item, the item's children, and the
// item's own item, so array-of-array chains of any depth are reachable.
// Field ids are unique within a tree, so at most one node matches.
//
// A miss is a deliberate no-op, not an error: the input scope is returned
// unchanged (same slice value), which callers treat as already-satisfied.

// UpdateField returns a new scope in which the field with the given id has
// been replaced by update(field). The update function receives the matched
// field and must return its replacement; it must not mutate the argument.
func UpdateField(scope []*SchemaField, targetID string, update func(*SchemaField) *SchemaField) []*SchemaField {
	newScope, found := updateInScope(scope, targetID, update)
	if !found {
		return scope
	}
	return newScope
}

// RemoveField returns a new scope with the field with the given id removed
// from wherever it lives: a sibling list, an object's children, or an
// array's item slot. Removing an array's item leaves that array with a nil
// Item; removing an object's last child leaves an empty children sequence.
func RemoveField(scope []*SchemaField, targetID string) []*SchemaField {
	newScope, found := removeInScope(scope, targetID)
	if !found {
		return scope
	}
	return newScope
}

func updateInScope(scope []*SchemaField, targetID string, update func(*SchemaField) *SchemaField) ([]*SchemaField, bool) {
	for i, f := range scope {
		newField, found := updateInField(f, targetID, update)
		if !found {
			continue
		}
		out := make([]*SchemaField, len(scope))
		copy(out, scope)
		out[i] = newField
		return out, true
	}
	return scope, false
}

func updateInField(f *SchemaField, targetID string, update func(*SchemaField) *SchemaField) (*SchemaField, bool) {
	if f.FieldID == targetID {
		return update(f), true
	}
	if len(f.Children) > 0 {
		if newChildren, found := updateInScope(f.Children, targetID, update); found {
			cp := *f
			cp.Children = newChildren
			return &cp, true
		}
	}
	if f.Item != nil {
		if newItem, found := updateInField(f.Item, targetID, update); found {
			cp := *f
			cp.Item = newItem
			return &cp, true
		}
	}
	return f, false
}

func removeInScope(scope []*SchemaField, targetID string) ([]*SchemaField, bool) {
	for i, f := range scope {
		if f.FieldID == targetID {
			out := make([]*SchemaField, 0, len(scope)-1)
			out = append(out, scope[:i]...)
			out = append(out, scope[i+1:]...)
			return out, true
		}
		newField, found := removeInField(f, targetID)
		if !found {
			continue
		}
		out := make([]*SchemaField, len(scope))
		copy(out, scope)
		out[i] = newField
		return out, true
	}
	return scope, false
}

func removeInField(f *SchemaField, targetID string) (*SchemaField, bool) {
	if len(f.Children) > 0 {
		if newChildren, found := removeInScope(f.Children, targetID); found {
			cp := *f
			cp.Children = newChildren
			return &cp, true
		}
	}
	if f.Item != nil {
		if f.Item.FieldID == targetID {
			cp := *f
			cp.Item = nil
			return &cp, true
		}
		if newItem, found := removeInField(f.Item, targetID); found {
			cp := *f
			cp.Item = newItem
			return &cp, true
		}
	}
	return f, false
}

// FindField returns the field with the given id, or nil if absent, using
// the same traversal order as UpdateField and RemoveField.
func FindField(scope []*SchemaField, targetID string) *SchemaField {
	for _, f := range scope {
		if match := findInField(f, targetID); match != nil {
			return match
		}
	}
	return nil
}

// FindFieldByName returns the first field with the given name in traversal
// order, or nil. Names are sibling-scoped and may repeat; id lookup is the
// authoritative form.
func FindFieldByName(scope []*SchemaField, name string) *SchemaField {
	for _, f := range scope {
		if f.Name == name {
			return f
		}
		if match := FindFieldByName(f.Children, name); match != nil {
			return match
		}
		if f.Item != nil {
			if match := FindFieldByName([]*SchemaField{f.Item}, name); match != nil {
				return match
			}
		}
	}
	return nil
}

func findInField(f *SchemaField, targetID string) *SchemaField {
	if f.FieldID == targetID {
		return f
	}
	if match := FindField(f.Children, targetID); match != nil {
		return match
	}
	if f.Item != nil {
		return findInField(f.Item, targetID)
	}
	return nil
}
