package compiler

import "testing"

func buildObjectClassTree() Asn1Tree {
	class := Assignment{
		Name: "KEY-PURPOSE",
		Specific: ObjectClassAssignment{Fields: []ClassField{
			{Name: "&id", Field: FixedTypeValueField{Type: ObjectIdentifierType{}}},
			{Name: "&Type", Field: FixedTypeValueField{Type: OctetStringType{}}},
			{Name: "&untyped", Field: TypeField{}},
		}},
	}

	// A type assignment aliasing the class directly — discovered by
	// the fixed-point pass as an object class name in its own right.
	aliasOfClass := Assignment{Name: "AliasedClass", Specific: TypeAssignment{Type: DefinedType{TypeReference: "KEY-PURPOSE"}}}

	// An object set over KEY-PURPOSE, and a type assignment merely
	// aliasing it — both must be recognized as object classes too.
	set := Assignment{Name: "KeyPurposeSet", Specific: ObjectSetAssignment{}}
	aliasOfSet := Assignment{Name: "AliasedSet", Specific: TypeAssignment{Type: DefinedType{TypeReference: "KeyPurposeSet"}}}

	usage := Assignment{
		Name: "Usage",
		Specific: TypeAssignment{Type: SequenceType{Collection{Components: []ComponentType{
			{NamedType: NamedType{Name: "purpose", Type: ObjectClassFieldType{
				ReferencedObjectClass: DefinedType{TypeReference: "KEY-PURPOSE"},
				FieldNames:            []string{"&Type"},
			}}},
		}}}},
	}

	return Asn1Tree{Modules: []Module{{
		ModuleReference: "M",
		Assignments:     []Assignment{class, aliasOfClass, set, aliasOfSet, usage},
		Imports: []Import{
			{ModuleReference: "Other", ImportedTypes: []string{"KEY-PURPOSE"}},
		},
	}}}
}

func TestObjectClassNames(t *testing.T) {
	tree := buildObjectClassTree()
	names := ObjectClassNames(tree)

	if _, ok := names["M.KEY-PURPOSE"]; !ok {
		t.Errorf("%s: expected M.KEY-PURPOSE to be discovered", t.Name())
	}
	if _, ok := names["M.AliasedClass"]; !ok {
		t.Errorf("%s: expected M.AliasedClass (alias of a class) to be discovered", t.Name())
	}
	if _, ok := names["M.KeyPurposeSet"]; !ok {
		t.Errorf("%s: expected M.KeyPurposeSet (an object set) to be discovered", t.Name())
	}
	if _, ok := names["M.AliasedSet"]; !ok {
		t.Errorf("%s: expected M.AliasedSet (alias of an object set) to be discovered", t.Name())
	}
	if _, ok := names["M.Usage"]; ok {
		t.Errorf("%s: Usage should not be classified as an object class", t.Name())
	}
}

func TestEliminateObjectClasses(t *testing.T) {
	tree := buildObjectClassTree()
	if err := EliminateObjectClasses(&tree); err != nil {
		t.Fatalf("%s failed: %v", t.Name(), err)
	}

	module := tree.Modules[0]
	for _, a := range module.Assignments {
		switch a.Name {
		case "KEY-PURPOSE", "AliasedClass", "KeyPurposeSet", "AliasedSet":
			t.Errorf("%s: expected %s to be removed", t.Name(), a.Name)
		}
	}

	usage, err := resolveInModule(module, "Usage")
	if err != nil {
		t.Fatalf("%s: Usage assignment missing: %v", t.Name(), err)
	}
	seqType, ok := TypeOf(*usage)
	if !ok {
		t.Fatalf("%s: Usage is not a type assignment", t.Name())
	}
	seq, ok := seqType.(SequenceType)
	if !ok {
		t.Fatalf("%s: Usage is not a Sequence: %+v", t.Name(), seqType)
	}
	if !IsOctetString(seq.Components[0].NamedType.Type) {
		t.Errorf("%s: expected &Type field substituted with OctetString, got %+v",
			t.Name(), seq.Components[0].NamedType.Type)
	}

	if len(module.Imports[0].ImportedTypes) != 0 {
		t.Errorf("%s: expected KEY-PURPOSE import entry removed, got %v", t.Name(), module.Imports[0].ImportedTypes)
	}
}

func TestCreateConcreteType_multiLevelPathRejected(t *testing.T) {
	tree := buildObjectClassTree()
	field := ObjectClassFieldType{
		ReferencedObjectClass: DefinedType{TypeReference: "KEY-PURPOSE"},
		FieldNames:            []string{"&Type", "&nested"},
	}
	if _, err := createConcreteType(tree, tree.Modules[0], field); err != ErrMultiLevelFieldPath {
		t.Errorf("%s: expected ErrMultiLevelFieldPath, got %v", t.Name(), err)
	}
}

func TestCreateConcreteType_untypedFieldRejected(t *testing.T) {
	tree := buildObjectClassTree()
	field := ObjectClassFieldType{
		ReferencedObjectClass: DefinedType{TypeReference: "KEY-PURPOSE"},
		FieldNames:            []string{"&untyped"},
	}
	if _, err := createConcreteType(tree, tree.Modules[0], field); err == nil {
		t.Errorf("%s: expected error for non-value field", t.Name())
	}
}

func TestObjectClassNames_crossModuleAlias(t *testing.T) {
	tree := buildObjectClassTree()

	// B.Qux aliases A.Baz (module-qualified), which in turn aliases
	// M.KEY-PURPOSE — a two-hop chain that only resolves correctly if
	// the fixed-point pass honors the alias's own module qualifier
	// rather than always looking names up under the referencing module.
	otherModule := Module{
		ModuleReference: "A",
		Assignments: []Assignment{
			{Name: "Baz", Specific: TypeAssignment{Type: DefinedType{ModuleReference: strPtr("M"), TypeReference: "KEY-PURPOSE"}}},
		},
	}
	refModule := Module{
		ModuleReference: "B",
		Assignments: []Assignment{
			{Name: "Qux", Specific: TypeAssignment{Type: DefinedType{ModuleReference: strPtr("A"), TypeReference: "Baz"}}},
		},
	}
	tree.Modules = append(tree.Modules, otherModule, refModule)

	names := ObjectClassNames(tree)
	if _, ok := names["A.Baz"]; !ok {
		t.Errorf("%s: expected A.Baz to be discovered", t.Name())
	}
	if _, ok := names["B.Qux"]; !ok {
		t.Errorf("%s: expected B.Qux (cross-module alias of an alias) to be discovered", t.Name())
	}
}
