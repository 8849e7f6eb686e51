package compiler

/*
value.go models ASN.1 literal values as they appear in value
assignments, DEFAULT clauses, and OBJECT IDENTIFIER arc lists. Like
Type, Value is a small sum type visited by type switch; ValueListValue
is what lets a Value recurse (an OID's arc list, a SEQUENCE value's
component list).
*/

// ValueSelection discriminates the kinds of literal a Value can hold.
type ValueSelection interface{ isValueSelection() }

// Value is an ASN.1 literal: exactly one of the selections below.
type Value struct{ Selection ValueSelection }

// ValueListValue is a value made of other values — an OID's arc list,
// a SEQUENCE OF literal, a SEQUENCE literal's component values.
type ValueListValue []Value

// IntegerValue is a bare integer literal.
type IntegerValue int64

// RealValue is a bare floating-point literal.
type RealValue float64

// StringValue is a quoted string literal with no further structure
// (used where the grammar doesn't distinguish a character-string
// subtype at the value level).
type StringValue string

// NamedNumberVal is one `name(value)` pair, as used both in INTEGER's
// named numbers and a Value's NamedNumber selection.
type NamedNumberVal struct {
	Name  string
	Value int64
}

// BitStringValue is a `'...'B` or `{bit, names}` BIT STRING literal.
type BitStringValue struct {
	Bits       []bool
	NamedBits  []string
}

// HexStringValue is a `'...'H` literal.
type HexStringValue struct{ Hex string }

// CharStringValue is a `"..."` character-string literal.
type CharStringValue struct{ Value string }

// DefinedValue is a reference to another value assignment, optionally
// module-qualified — the value-level analogue of DefinedType.
type DefinedValue struct {
	ModuleReference string
	Reference       string
}

// BooleanValue is TRUE/FALSE.
type BooleanValue bool

// NullValue is the NULL literal.
type NullValue struct{}

// TimeValue is a quoted time literal (GeneralizedTime/UTCTime/Date/...).
type TimeValue struct{ Value string }

func (ValueListValue) isValueSelection()    {}
func (IntegerValue) isValueSelection()      {}
func (RealValue) isValueSelection()         {}
func (StringValue) isValueSelection()       {}
func (NamedNumberVal) isValueSelection()    {}
func (BitStringValue) isValueSelection()    {}
func (HexStringValue) isValueSelection()    {}
func (CharStringValue) isValueSelection()   {}
func (DefinedValue) isValueSelection()      {}
func (BooleanValue) isValueSelection()      {}
func (NullValue) isValueSelection()         {}
func (TimeValue) isValueSelection()         {}

// ObjectIdComponentValue is one parsed arc of an OBJECT IDENTIFIER
// literal: either a bare numeric value, a name, or both (`foo(1)`).
type ObjectIdComponentValue struct {
	Name  *string
	Value *int64
}

// ObjectIdComponents parses an OBJECT IDENTIFIER literal's arc list.
// v must select a ValueListValue; each element must be a
// DefinedValue, StringValue, IntegerValue, or NamedNumberVal — any
// other selection is a malformed OID literal.
func ObjectIdComponents(v Value) ([]ObjectIdComponentValue, error) {
	list, ok := v.Selection.(ValueListValue)
	if !ok {
		return nil, ErrUnknownValueKind
	}

	out := make([]ObjectIdComponentValue, 0, len(list))
	for _, elem := range list {
		switch sel := elem.Selection.(type) {
		case DefinedValue:
			name := sel.Reference
			out = append(out, ObjectIdComponentValue{Name: &name})
		case StringValue:
			name := string(sel)
			out = append(out, ObjectIdComponentValue{Name: &name})
		case IntegerValue:
			n := int64(sel)
			out = append(out, ObjectIdComponentValue{Value: &n})
		case NamedNumberVal:
			name, n := sel.Name, sel.Value
			out = append(out, ObjectIdComponentValue{Name: &name, Value: &n})
		default:
			return nil, ErrUnknownValueKind
		}
	}
	return out, nil
}
