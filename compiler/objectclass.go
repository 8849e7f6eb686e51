package compiler

/*
objectclass.go ports ObjectClass.cpp's elimination pass: information
object classes describe families of types indirectly through
ObjectClassFieldType references (`ClassRef.&field`); before emission
every such reference must be replaced by the concrete type the field
names, and the now-redundant class/set/alias assignments removed.

The pass runs in two stages: ObjectClassNames discovers, by fixed-point
iteration, every assignment name that denotes an object class (directly
or through an alias chain); EliminateObjectClasses then walks every
type assignment substituting ObjectClassFieldType occurrences, and
drops the discovered names from their modules' assignment and import
lists.
*/

// ObjectClassNames returns the set of "module.name" qualified names
// that denote an object class, found by fixed-point iteration: a name
// qualifies if it is declared as one directly, if it's a type or
// value assignment whose resolved type is (or aliases) one, or if
// it's imported from a module where the exporter is one.
func ObjectClassNames(tree Asn1Tree) map[string]struct{} {
	names := make(map[string]struct{})

	for {
		before := len(names)

		for _, module := range tree.Modules {
			for _, assignment := range module.Assignments {
				if t, ok := TypeOf(assignment); ok {
					if defined, ok := t.(DefinedType); ok && !isAParameter(defined.TypeReference, assignment.Parameters) {
						markIfObjectClass(tree, module, assignment.Name, defined, names)
					}
				}
				if va, ok := ValueOf(assignment); ok {
					if defined, ok := va.Type.(DefinedType); ok && !isAParameter(defined.TypeReference, assignment.Parameters) {
						markIfObjectClass(tree, module, assignment.Name, defined, names)
					}
				}
				if IsObjectClass(assignment) {
					names[module.ModuleReference+"."+assignment.Name] = struct{}{}
				}
			}
		}

		for _, module := range tree.Modules {
			for _, imp := range module.Imports {
				for _, importedName := range imp.ImportedTypes {
					if isDefinedObjectClassName(imp.ModuleReference, importedName, names) {
						names[module.ModuleReference+"."+importedName] = struct{}{}
					}
				}
			}
		}

		if len(names) == before {
			return names
		}
	}
}

func markIfObjectClass(tree Asn1Tree, module Module, assignmentName string, defined DefinedType, names map[string]struct{}) {
	inner, err := resolveDefined(tree, module.ModuleReference, defined)
	if err != nil {
		return
	}
	ref := module.ModuleReference
	if defined.ModuleReference != nil {
		ref = *defined.ModuleReference
	}
	if IsObjectClass(*inner) || isDefinedObjectClassName(ref, defined.TypeReference, names) {
		names[module.ModuleReference+"."+assignmentName] = struct{}{}
	}
}

func isDefinedObjectClassName(moduleReference, typeReference string, names map[string]struct{}) bool {
	_, ok := names[moduleReference+"."+typeReference]
	return ok
}

func isDefinedObjectClass(module Module, t Type, names map[string]struct{}) bool {
	defined, ok := t.(DefinedType)
	if !ok {
		return false
	}
	ref := module.ModuleReference
	if defined.ModuleReference != nil {
		ref = *defined.ModuleReference
	}
	return isDefinedObjectClassName(ref, defined.TypeReference, names)
}

// EliminateObjectClasses discovers every object-class name in tree,
// replaces every ObjectClassFieldType occurrence in every type
// assignment with the concrete type its field names, and removes the
// now-redundant object-class/object-set/alias assignments (and their
// import-list entries) from every module.
func EliminateObjectClasses(tree *Asn1Tree) error {
	names := ObjectClassNames(*tree)

	for mi := range tree.Modules {
		module := &tree.Modules[mi]
		for ai := range module.Assignments {
			ta, ok := module.Assignments[ai].Specific.(TypeAssignment)
			if !ok {
				continue
			}
			resolved, err := objectClassToConcrete(*tree, *module, ta.Type)
			if err != nil {
				return err
			}
			module.Assignments[ai].Specific = TypeAssignment{Type: resolved}
		}
	}

	removeObjectClasses(tree, names)
	return nil
}

// objectClassToConcrete walks t, substituting any ObjectClassFieldType
// it finds (or any nested inside a Collection/Choice/SequenceOf/
// PrefixedType) for the concrete type the referenced field names.
func objectClassToConcrete(tree Asn1Tree, module Module, t Type) (Type, error) {
	switch v := t.(type) {
	case ObjectClassFieldType:
		return createConcreteType(tree, module, v)
	case ChoiceType:
		for i := range v.Choices {
			resolved, err := objectClassToConcrete(tree, module, v.Choices[i].Type)
			if err != nil {
				return nil, err
			}
			v.Choices[i].Type = resolved
		}
		return v, nil
	case SequenceType:
		if err := eliminateInComponents(tree, module, v.Components); err != nil {
			return nil, err
		}
		return v, nil
	case SetType:
		if err := eliminateInComponents(tree, module, v.Components); err != nil {
			return nil, err
		}
		return v, nil
	case SequenceOfType:
		resolved, err := objectClassToConcreteSequenceOfElem(tree, module, v)
		if err != nil {
			return nil, err
		}
		return resolved, nil
	case SetOfType:
		resolved, err := objectClassToConcreteSequenceOfElem(tree, module, v.SequenceOfType)
		if err != nil {
			return nil, err
		}
		return SetOfType{SequenceOfType: resolved.(SequenceOfType)}, nil
	case PrefixedType:
		resolved, err := objectClassToConcrete(tree, module, v.TaggedType.Type)
		if err != nil {
			return nil, err
		}
		v.TaggedType.Type = resolved
		return v, nil
	default:
		return t, nil
	}
}

func objectClassToConcreteSequenceOfElem(tree Asn1Tree, module Module, s SequenceOfType) (Type, error) {
	if s.HasName {
		resolved, err := objectClassToConcrete(tree, module, s.NamedType.Type)
		if err != nil {
			return nil, err
		}
		s.NamedType.Type = resolved
		return s, nil
	}
	resolved, err := objectClassToConcrete(tree, module, *s.Type)
	if err != nil {
		return nil, err
	}
	s.Type = &resolved
	return s, nil
}

func eliminateInComponents(tree Asn1Tree, module Module, components []ComponentType) error {
	for i := range components {
		resolved, err := objectClassToConcrete(tree, module, components[i].NamedType.Type)
		if err != nil {
			return err
		}
		components[i].NamedType.Type = resolved
	}
	return nil
}

// createConcreteType looks up the object class named by field's
// ReferencedObjectClass, finds the named field (single-level paths
// only), and returns the type a FixedTypeValueField declares.
func createConcreteType(tree Asn1Tree, module Module, field ObjectClassFieldType) (Type, error) {
	assignment, err := Resolve(tree, derefModule(field.ReferencedObjectClass, module), field.ReferencedObjectClass.TypeReference)
	if err != nil {
		return nil, err
	}
	class, ok := ObjectClassOf(*assignment)
	if !ok {
		return nil, errNotObjectClass(module.ModuleReference, field.ReferencedObjectClass.TypeReference)
	}

	if len(field.FieldNames) != 1 {
		return nil, ErrMultiLevelFieldPath
	}

	for _, f := range class.Fields {
		if f.Name != field.FieldNames[0] {
			continue
		}
		fixed, ok := f.Field.(FixedTypeValueField)
		if !ok {
			return nil, errFieldNotValueField(field.ReferencedObjectClass.TypeReference, field.FieldNames[0])
		}
		return fixed.Type, nil
	}

	return nil, errFieldNotFound(field.ReferencedObjectClass.TypeReference, field.FieldNames[0])
}

func derefModule(defined DefinedType, current Module) string {
	if defined.ModuleReference != nil {
		return *defined.ModuleReference
	}
	return current.ModuleReference
}

// removeObjectClasses drops every assignment identified by names (or
// depending on a parameter governor that is one) from every module,
// and strips matching entries from every module's import lists.
func removeObjectClasses(tree *Asn1Tree, names map[string]struct{}) {
	for mi := range tree.Modules {
		module := &tree.Modules[mi]
		kept := module.Assignments[:0]
		for _, assignment := range module.Assignments {
			if shouldRemoveAssignment(*tree, *module, assignment, names) {
				continue
			}
			kept = append(kept, assignment)
		}
		module.Assignments = kept
	}

	for mi := range tree.Modules {
		module := &tree.Modules[mi]
		for ii := range module.Imports {
			imp := &module.Imports[ii]
			keptTypes := imp.ImportedTypes[:0]
			for _, name := range imp.ImportedTypes {
				if isDefinedObjectClassName(imp.ModuleReference, name, names) ||
					isDefinedObjectClassName(module.ModuleReference, name, names) {
					continue
				}
				keptTypes = append(keptTypes, name)
			}
			imp.ImportedTypes = keptTypes
		}
	}
}

func shouldRemoveAssignment(tree Asn1Tree, module Module, assignment Assignment, names map[string]struct{}) bool {
	if IsObjectClass(assignment) {
		return true
	}
	if t, ok := TypeOf(assignment); ok && IsDefined(t) {
		return isDefinedObjectClass(module, t, names)
	}
	if va, ok := ValueOf(assignment); ok && IsDefined(va.Type) {
		return isDefinedObjectClass(module, va.Type, names)
	}
	for _, p := range assignment.Parameters {
		if p.Governor != nil && isDefinedObjectClass(module, *p.Governor, names) {
			return true
		}
	}
	return false
}
