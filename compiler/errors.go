package compiler

/*
errors.go collects the resolver's failure types. Unlike the runtime
codec (which reports failures as plain errors on a hot decode path),
schema resolution failures are fatal to the run and carry enough
context — module and reference name — for a caller to report them
without re-parsing the error string.
*/

import "errors"

// SchemaError names a schema resolution failure against a specific
// module and reference.
type SchemaError struct {
	Module    string
	Reference string
	Msg       string
}

func (e *SchemaError) Error() string {
	if e.Module == "" {
		return e.Msg + ": " + e.Reference
	}
	return e.Msg + ": " + e.Module + "." + e.Reference
}

func errUndefinedReference(module, reference string) error {
	return &SchemaError{Module: module, Reference: reference, Msg: "reference to undefined object"}
}

func errModuleNotFound(module string) error {
	return &SchemaError{Module: module, Msg: "module does not exist"}
}

func errNotObjectClass(module, reference string) error {
	return &SchemaError{Module: module, Reference: reference, Msg: "referenced object is not an object class"}
}

func errFieldNotFound(class, field string) error {
	return &SchemaError{Module: class, Reference: field, Msg: "object class field not found"}
}

func errFieldNotValueField(class, field string) error {
	return &SchemaError{Module: class, Reference: field, Msg: "object class field does not carry a type"}
}

// ErrMultiLevelFieldPath is returned when an ObjectClassFieldType names
// a field path deeper than one level; the resolver does not chase
// nested object-class field references.
var ErrMultiLevelFieldPath = errors.New("compiler: object class field paths deeper than one level are not supported")

// ErrAmbiguousChoice is returned when two Choice alternatives admit
// overlapping identifiers, violating the one-identifier-per-type
// invariant §3.2 requires of every fully resolved type.
var ErrAmbiguousChoice = errors.New("compiler: ambiguous choice alternatives share an admissible identifier")

// ErrUnknownValueKind is returned by ObjectIdComponents when a Value
// feeding an OBJECT IDENTIFIER literal carries a selection it does not
// recognize as an OID arc.
var ErrUnknownValueKind = errors.New("compiler: value does not resolve to an OID component")
