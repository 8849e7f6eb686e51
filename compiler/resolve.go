package compiler

/*
resolve.go ports the name-resolution algorithm of
original_source/src/compiler/ResolveType.cpp: chasing a DefinedType
reference through alias chains and tag wrappers until it lands on a
genuine builtin type, tracking which module the chase currently lives
in (a module-qualified reference can hop modules; an unqualified one
cannot).
*/

// FindModule returns the module named moduleReference, or a
// SchemaError if no such module exists in tree.
func FindModule(tree Asn1Tree, moduleReference string) (*Module, error) {
	for i := range tree.Modules {
		if tree.Modules[i].ModuleReference == moduleReference {
			return &tree.Modules[i], nil
		}
	}
	return nil, errModuleNotFound(moduleReference)
}

// Resolve finds the assignment named reference inside the module
// named moduleReference.
func Resolve(tree Asn1Tree, moduleReference, reference string) (*Assignment, error) {
	module, err := FindModule(tree, moduleReference)
	if err != nil {
		return nil, err
	}
	return resolveInModule(*module, reference)
}

func resolveInModule(module Module, reference string) (*Assignment, error) {
	for i := range module.Assignments {
		if module.Assignments[i].Name == reference {
			return &module.Assignments[i], nil
		}
	}
	return nil, errUndefinedReference(module.ModuleReference, reference)
}

// resolveModuleForDefined finds the module a DefinedType should be
// resolved against, honoring the current-module fallback rule.
func resolveModuleForDefined(tree Asn1Tree, currentModuleReference string, defined DefinedType) (*Module, error) {
	ref := currentModuleReference
	if defined.ModuleReference != nil {
		ref = *defined.ModuleReference
	}
	return FindModule(tree, ref)
}

// resolveDefined resolves a DefinedType to its Assignment, honoring
// the current-module fallback rule.
func resolveDefined(tree Asn1Tree, currentModuleReference string, defined DefinedType) (*Assignment, error) {
	module, err := resolveModuleForDefined(tree, currentModuleReference, defined)
	if err != nil {
		return nil, err
	}
	return resolveInModule(*module, defined.TypeReference)
}

// Exists reports whether defined resolves to a real assignment,
// swallowing the error FindModule/Resolve would otherwise return.
func Exists(tree Asn1Tree, currentModuleReference string, defined DefinedType) bool {
	_, err := resolveDefined(tree, currentModuleReference, defined)
	return err == nil
}

// namedTypeAndModule pairs a resolved NamedType with the module it
// was ultimately found in — needed because resolving a
// module-qualified alias can move the working module forward.
type namedTypeAndModule struct {
	NamedType NamedType
	Module    Module
}

// ResolveTypeAndModule chases t — a DefinedType alias chain, possibly
// wrapped at some point in a PrefixedType — until it reaches a
// concrete builtin type, and returns that type alongside the module
// the chase ended in. A PrefixedType whose inner type is itself
// defined has that inner type resolved recursively and spliced back
// into the wrapper, preserving the outer prefix; a PrefixedType
// wrapping a genuine builtin is returned unchanged.
func ResolveTypeAndModule(tree Asn1Tree, currentModuleReference string, t Type) (Type, *Module, error) {
	named, err := resolveTypeAndModule(tree, currentModuleReference, NamedType{Type: t})
	if err != nil {
		return nil, nil, err
	}
	return named.NamedType.Type, &named.Module, nil
}

// ResolveType is ResolveTypeAndModule discarding the module half.
func ResolveType(tree Asn1Tree, currentModuleReference string, t Type) (Type, error) {
	resolved, _, err := ResolveTypeAndModule(tree, currentModuleReference, t)
	return resolved, err
}

func resolveTypeAndModule(tree Asn1Tree, currentModuleReference string, info NamedType) (namedTypeAndModule, error) {
	switch defined := info.Type.(type) {
	case DefinedType:
		return resolveDefinedTypeAndModule(tree, currentModuleReference, defined)
	case PrefixedType:
		inner := defined.TaggedType.Type
		resolved, err := resolveTypeAndModule(tree, currentModuleReference, NamedType{Name: info.Name, Type: inner})
		if err != nil {
			return namedTypeAndModule{}, err
		}
		spliced := PrefixedType{TaggedType: &TaggedType{
			Tag:         defined.TaggedType.Tag,
			TaggingMode: defined.TaggedType.TaggingMode,
			Type:        resolved.NamedType.Type,
		}}
		return namedTypeAndModule{
			NamedType: NamedType{Name: info.Name, Type: spliced},
			Module:    resolved.Module,
		}, nil
	default:
		module, err := FindModule(tree, currentModuleReference)
		if err != nil {
			return namedTypeAndModule{}, err
		}
		return namedTypeAndModule{NamedType: info, Module: *module}, nil
	}
}

func resolveDefinedTypeAndModule(tree Asn1Tree, currentModuleReference string, originalDefined DefinedType) (namedTypeAndModule, error) {
	defined := originalDefined
	moduleRef := currentModuleReference

	for {
		workingModule, err := resolveModuleForDefined(tree, moduleRef, defined)
		if err != nil {
			return namedTypeAndModule{}, err
		}
		assignment, err := resolveInModule(*workingModule, defined.TypeReference)
		if err != nil {
			return namedTypeAndModule{}, err
		}
		t, ok := TypeOf(*assignment)
		if !ok {
			return namedTypeAndModule{}, errUndefinedReference(workingModule.ModuleReference, defined.TypeReference)
		}

		// If module_reference was explicitly set on this hop, it
		// becomes the fallback module for subsequent unqualified hops
		// in the same alias chain — mirrors resolve_type_and_module's
		// `module = *defined.module_reference` update.
		if inner, ok := t.(DefinedType); ok {
			if defined.ModuleReference != nil {
				moduleRef = *defined.ModuleReference
			}
			defined = inner
			continue
		}

		if prefixed, ok := t.(PrefixedType); ok {
			if innerDefined, ok := prefixed.TaggedType.Type.(DefinedType); ok {
				resolved, err := resolveDefinedTypeAndModule(tree, currentModuleReference, innerDefined)
				if err != nil {
					return namedTypeAndModule{}, err
				}
				spliced := PrefixedType{TaggedType: &TaggedType{
					Tag:         prefixed.TaggedType.Tag,
					TaggingMode: prefixed.TaggedType.TaggingMode,
					Type:        resolved.NamedType.Type,
				}}
				return namedTypeAndModule{
					NamedType: NamedType{Name: assignment.Name, Type: spliced},
					Module:    resolved.Module,
				}, nil
			}
			return namedTypeAndModule{NamedType: NamedType{Name: assignment.Name, Type: t}, Module: *workingModule}, nil
		}

		return namedTypeAndModule{NamedType: NamedType{Name: assignment.Name, Type: t}, Module: *workingModule}, nil
	}
}
