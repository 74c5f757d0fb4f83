// Package preview renders a schema field tree into a representative JSON
// value for display. Rendering is deterministic and pure: no randomness,
// no mutation of the input tree, identical output for identical input, so
// it can run on every keystroke without coordination.
// See docs/ARCHITECTURE.md § Preview Renderer.
package preview

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/mesh-intelligence/stencil/pkg/types"
)

// Options controls rendering.
type Options struct {
	// Collapsed holds ids of container fields whose expansion is replaced
	// by a short placeholder string.
	Collapsed map[string]bool

	// ForPreview caps array samples at one element, for compact live
	// previews; the full sample count is used otherwise.
	ForPreview bool
}

// Default sample-count bounds for arrays with no explicit min/max items.
const (
	defaultMinItems = 2
	defaultMaxItems = 5
)

// unknownDescription is the sentinel rendered for an unrecognized kind.
// Construction keeps the kind set closed, so this is a defensive default
// for hand-assembled trees only.
const unknownDescription = "unknown"

// RenderSchema renders an ordered sequence of fields into an ordered JSON
// object, applying the duplicate-key rule across the sequence.
func RenderSchema(fields []*types.SchemaField, opts Options) *Object {
	return renderScope(fields, opts)
}

// RenderField renders one field into a JSON-like value: a descriptive
// string for leaf fields, a slice for arrays, an *Object for objects, or a
// placeholder string for collapsed containers.
func RenderField(f *types.SchemaField, opts Options) any {
	switch f.Kind {
	case types.KindText, types.KindEmail:
		return describeString(f)
	case types.KindURL, types.KindBoolean, types.KindDate:
		return string(f.Kind)
	case types.KindNumber:
		return describeNumber(f)
	case types.KindArray:
		return renderArray(f, opts)
	case types.KindObject:
		return renderObject(f, opts)
	default:
		return unknownDescription
	}
}

// renderScope builds the ordered mapping for one sibling scope. Keys are
// resolved with the duplicate-key rule scoped to this sequence only: the
// first occurrence keeps the bare name, later duplicates probe _2, _3, …
// upward until an unused key is found. A source name that already looks
// like a probed key (a literal "foo_2") can still collide with a synthetic
// key generated for a later "foo"; the probe does not guard against that.
func renderScope(fields []*types.SchemaField, opts Options) *Object {
	obj := NewObject()
	used := make(map[string]bool, len(fields))
	for _, f := range fields {
		key := reserveKey(used, f.Name)
		obj.Set(key, RenderField(f, opts))
	}
	return obj
}

func reserveKey(used map[string]bool, name string) string {
	key := name
	for n := 2; used[key]; n++ {
		key = fmt.Sprintf("%s_%d", name, n)
	}
	used[key] = true
	return key
}

func describeString(f *types.SchemaField) string {
	kind := string(f.Kind)
	logic, ok := f.Logic.(*types.StringLogic)
	if !ok || logic == nil {
		return kind
	}
	if len(logic.Enum) > 0 {
		return fmt.Sprintf("%s, one of: %s", kind, strings.Join(logic.Enum, ", "))
	}
	if logic.Pattern != "" {
		return fmt.Sprintf("%s matching %s", kind, logic.Pattern)
	}
	switch {
	case logic.MinLength != nil && logic.MaxLength != nil:
		return fmt.Sprintf("%s (%d-%d chars)", kind, *logic.MinLength, *logic.MaxLength)
	case logic.MinLength != nil:
		return fmt.Sprintf("%s (min %d chars)", kind, *logic.MinLength)
	case logic.MaxLength != nil:
		return fmt.Sprintf("%s (max %d chars)", kind, *logic.MaxLength)
	}
	return kind
}

func describeNumber(f *types.SchemaField) string {
	kind := string(f.Kind)
	logic, ok := f.Logic.(*types.NumberLogic)
	if !ok || logic == nil {
		return kind
	}
	if len(logic.Enum) > 0 {
		values := make([]string, len(logic.Enum))
		for i, v := range logic.Enum {
			values[i] = formatNumber(v)
		}
		return fmt.Sprintf("%s, one of: %s", kind, strings.Join(values, ", "))
	}
	switch {
	case logic.Min != nil && logic.Max != nil:
		return fmt.Sprintf("%s (%s to %s)", kind, formatNumber(*logic.Min), formatNumber(*logic.Max))
	case logic.Min != nil:
		return fmt.Sprintf("%s (min %s)", kind, formatNumber(*logic.Min))
	case logic.Max != nil:
		return fmt.Sprintf("%s (max %s)", kind, formatNumber(*logic.Max))
	}
	return kind
}

func formatNumber(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}

func renderArray(f *types.SchemaField, opts Options) any {
	minItems := defaultMinItems
	maxItems := defaultMaxItems
	if logic, ok := f.Logic.(*types.ArrayLogic); ok && logic != nil {
		if logic.MinItems != nil {
			minItems = *logic.MinItems
		}
		if logic.MaxItems != nil {
			maxItems = *logic.MaxItems
		}
	}

	count := 1
	if !opts.ForPreview {
		count = minItems + 1
		if count > maxItems {
			count = maxItems
		}
	}

	if opts.Collapsed[f.FieldID] && f.Item != nil {
		return placeholder(count, "item")
	}
	if f.Item == nil {
		// Incomplete array: the item slot was removed.
		return []any{}
	}

	samples := make([]any, 0, count)
	for i := 0; i < count; i++ {
		samples = append(samples, RenderField(f.Item, opts))
	}
	return samples
}

func renderObject(f *types.SchemaField, opts Options) any {
	if opts.Collapsed[f.FieldID] && len(f.Children) > 0 {
		return placeholder(len(f.Children), "field")
	}
	return renderScope(f.Children, opts)
}

// placeholder formats the collapsed-container label, e.g. "...1 field" or
// "...3 items". Plural applies to every count except exactly 1.
func placeholder(count int, noun string) string {
	if count == 1 {
		return fmt.Sprintf("...%d %s", count, noun)
	}
	return fmt.Sprintf("...%d %ss", count, noun)
}
