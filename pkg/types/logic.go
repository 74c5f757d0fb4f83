package types

// Logic is the constraint payload attached to a SchemaField. The concrete
// type must match the field's kind family:
//
//	StringLogic  text, email
//	NumberLogic  number
//	BasicLogic   boolean, date, url, object
//	ArrayLogic   array
//
// The interface is sealed so the set of payload shapes is closed; a field
// cannot carry constraints its kind does not define.
type Logic interface {
	logic()
}

// StringLogic constrains text and email fields. All members are optional;
// a nil pointer or zero value means the constraint is absent.
type StringLogic struct {
	Required  bool     `json:"required,omitempty"`
	MinLength *int     `json:"min_length,omitempty"`
	MaxLength *int     `json:"max_length,omitempty"`
	Pattern   string   `json:"pattern,omitempty"`
	Enum      []string `json:"enum,omitempty"` // allowed values, order preserved
}

// NumberLogic constrains number fields.
type NumberLogic struct {
	Required bool      `json:"required,omitempty"`
	Min      *float64  `json:"min,omitempty"`
	Max      *float64  `json:"max,omitempty"`
	Enum     []float64 `json:"enum,omitempty"` // allowed values, order preserved
}

// BasicLogic carries the only constraint available to boolean, date, url,
// and object fields.
type BasicLogic struct {
	Required bool `json:"required,omitempty"`
}

// ArrayLogic bounds the number of samples rendered for an array field.
// The bounds are independent of required-ness; arrays carry no Required.
type ArrayLogic struct {
	MinItems *int `json:"min_items,omitempty"`
	MaxItems *int `json:"max_items,omitempty"`
}

func (*StringLogic) logic() {}
func (*NumberLogic) logic() {}
func (*BasicLogic) logic()  {}
func (*ArrayLogic) logic()  {}

// IsRequired reports whether the logic payload marks its field required.
// Arrays and nil payloads are never required.
func IsRequired(l Logic) bool {
	switch v := l.(type) {
	case *StringLogic:
		return v != nil && v.Required
	case *NumberLogic:
		return v != nil && v.Required
	case *BasicLogic:
		return v != nil && v.Required
	default:
		return false
	}
}

// WithRequired returns a copy of the logic payload with Required set to the
// given value. A nil payload yields a fresh payload legal for the kind of
// field the original was attached to; callers pass the field kind so the
// copy stays shape-correct. Arrays have no Required and are returned as-is.
func WithRequired(kind FieldKind, l Logic, required bool) Logic {
	switch kind {
	case KindText, KindEmail:
		cp := StringLogic{}
		if v, ok := l.(*StringLogic); ok && v != nil {
			cp = *v
		}
		cp.Required = required
		return &cp
	case KindNumber:
		cp := NumberLogic{}
		if v, ok := l.(*NumberLogic); ok && v != nil {
			cp = *v
		}
		cp.Required = required
		return &cp
	case KindBoolean, KindDate, KindURL, KindObject:
		cp := BasicLogic{}
		if v, ok := l.(*BasicLogic); ok && v != nil {
			cp = *v
		}
		cp.Required = required
		return &cp
	default:
		return l
	}
}

// logicMatchesKind reports whether a payload's concrete type is legal for
// the given kind. A nil payload is legal for every kind.
func logicMatchesKind(kind FieldKind, l Logic) bool {
	if l == nil {
		return true
	}
	switch l.(type) {
	case *StringLogic:
		return kind == KindText || kind == KindEmail
	case *NumberLogic:
		return kind == KindNumber
	case *BasicLogic:
		return kind == KindBoolean || kind == KindDate || kind == KindURL || kind == KindObject
	case *ArrayLogic:
		return kind == KindArray
	default:
		return false
	}
}
