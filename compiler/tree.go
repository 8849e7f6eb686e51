package compiler

/*
tree.go models the resolver's schema-level input: the parsed ASN.1
module tree that ResolveType.cpp, ObjectClass.cpp and Dependencies.cpp
all operate over. A parser (out of scope here) produces an Asn1Tree;
this package's job is to normalize it in place — chasing defined-type
aliases, substituting information-object-class fields, deriving
per-type tagging identifiers — before handing it to an emitter.
*/

// TaggingMode is a module or prefixed-type's tagging discipline.
type TaggingMode int

const (
	ExplicitTagging TaggingMode = iota
	ImplicitTagging
	AutomaticTagging
)

func (m TaggingMode) String() string {
	switch m {
	case ImplicitTagging:
		return "IMPLICIT"
	case AutomaticTagging:
		return "AUTOMATIC"
	default:
		return "EXPLICIT"
	}
}

// Class is the ASN.1 tag class of a Tag or Identifier.
type Class int

const (
	ClassUniversal Class = iota
	ClassApplication
	ClassContextSpecific
	ClassPrivate
)

// StorageMode picks the representation an emitter should use for a
// component, relevant mainly when the component's type is recursive.
type StorageMode int

const (
	StorageStatic StorageMode = iota
	StorageSmallBufferOptimised
	StorageDynamic
)

// Dependency names another assignment that must exist (and, if being
// emitted, be emitted first) before a given assignment can be
// resolved or emitted. An empty ModuleReference means "look in the
// current module."
type Dependency struct {
	Name            string
	ModuleReference string
}

// Parameter is a formal parameter of a parameterized assignment, e.g.
// the "INTEGER:lb" in `Seq{INTEGER:lb} ::= SEQUENCE {...}`. Governor
// is nil for value parameters with no declared governing type.
type Parameter struct {
	Governor  *Type
	Reference string
}

// NamedType pairs a field/alternative/assignment name with its Type.
type NamedType struct {
	Name string
	Type Type
}

// ComponentType is one member of a SEQUENCE/SET's component list.
type ComponentType struct {
	NamedType    NamedType
	Optional     bool
	Default      *Value
	ComponentsOf *Type
	Storage      StorageMode
}

// AssignmentSpecific discriminates the four kinds of Assignment.
type AssignmentSpecific interface{ isAssignmentSpecific() }

// TypeAssignment is `Name ::= Type`.
type TypeAssignment struct{ Type Type }

// ValueAssignment is `name Type ::= Value`.
type ValueAssignment struct {
	Type  Type
	Value Value
}

// ClassFieldKind discriminates the kinds of field an
// ObjectClassAssignment can declare.
type ClassFieldKind interface{ isClassField() }

// TypeField is an object-class field that names a type (no fixed
// value attached).
type TypeField struct{ Optional bool }

// FixedTypeValueField is an object-class field fixed to a single
// type — the kind ObjectClassFieldType substitution actually uses.
type FixedTypeValueField struct {
	Type     Type
	Optional bool
	Unique   bool
}

func (TypeField) isClassField()            {}
func (FixedTypeValueField) isClassField()  {}

// ClassField is one named field of an information object class.
type ClassField struct {
	Name  string
	Field ClassFieldKind
}

// ObjectClassAssignment is `Name ::= CLASS {...}`.
type ObjectClassAssignment struct{ Fields []ClassField }

// ObjectSetAssignment is `Name Class ::= {...}`; its members are not
// modeled — the resolver only needs to recognize and eliminate it.
type ObjectSetAssignment struct{}

func (TypeAssignment) isAssignmentSpecific()        {}
func (ValueAssignment) isAssignmentSpecific()       {}
func (ObjectClassAssignment) isAssignmentSpecific() {}
func (ObjectSetAssignment) isAssignmentSpecific()   {}

// Assignment is a single top-level definition inside a Module: a type
// assignment, value assignment, object-class assignment, or
// object-set assignment, plus its dependency and parameter lists.
type Assignment struct {
	Name       string
	Specific   AssignmentSpecific
	DependsOn  []Dependency
	Parameters []Parameter
}

// Import is one `IMPORTS ... FROM module_reference;` clause.
type Import struct {
	ModuleReference string
	ImportedTypes   []string
	ImportedValues  []string
}

// Export marks a module's EXPORTS clause. Its contents are not
// interpreted by the resolver beyond presence.
type Export struct{}

// Module is a single ASN.1 module definition.
type Module struct {
	ModuleReference string
	TaggingDefault  TaggingMode
	Exports         []Export
	Imports         []Import
	Assignments     []Assignment
}

// Asn1Tree is the complete parsed schema: every module in the
// compilation unit, in parse order.
type Asn1Tree struct {
	Modules []Module
}

// IsType reports whether an Assignment is a TypeAssignment.
func IsType(a Assignment) bool {
	_, ok := a.Specific.(TypeAssignment)
	return ok
}

// IsValue reports whether an Assignment is a ValueAssignment.
func IsValue(a Assignment) bool {
	_, ok := a.Specific.(ValueAssignment)
	return ok
}

// IsObjectClass reports whether an Assignment is an
// ObjectClassAssignment or an ObjectSetAssignment.
func IsObjectClass(a Assignment) bool {
	switch a.Specific.(type) {
	case ObjectClassAssignment, ObjectSetAssignment:
		return true
	default:
		return false
	}
}

// TypeOf returns the Type of a TypeAssignment, or false if a is not
// one.
func TypeOf(a Assignment) (Type, bool) {
	ta, ok := a.Specific.(TypeAssignment)
	if !ok {
		return nil, false
	}
	return ta.Type, true
}

// ValueOf returns the ValueAssignment payload of a, or false if a is
// not one.
func ValueOf(a Assignment) (ValueAssignment, bool) {
	va, ok := a.Specific.(ValueAssignment)
	return va, ok
}

// ObjectClassOf returns the ObjectClassAssignment payload of a, or
// false if a is not one.
func ObjectClassOf(a Assignment) (ObjectClassAssignment, bool) {
	oa, ok := a.Specific.(ObjectClassAssignment)
	return oa, ok
}

// isAParameter reports whether reference names a formal parameter in
// parameters — used to distinguish a parameterized-type's own formal
// parameter from a genuine cross-assignment reference that must be
// resolved.
func isAParameter(reference string, parameters []Parameter) bool {
	for _, p := range parameters {
		if p.Reference == reference {
			return true
		}
	}
	return false
}
