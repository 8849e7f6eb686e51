package compiler

/*
dependencies.go ports Dependencies.cpp: the set of other assignments
(optionally module-qualified) that must exist before a given type or
assignment can be resolved or emitted. Primitives depend on nothing;
composites union their members' dependencies; a DefinedType reference
is itself exactly one dependency.
*/

// DependsOn returns the immediate dependencies of t: for most builtin
// types this is empty, for Sequence/Set/Choice it's the union over
// components/alternatives, for SequenceOf/SetOf it's the element
// type's dependencies, for a Prefixed type it's its inner type's, and
// for a DefinedType it's a single Dependency naming the reference.
func DependsOn(t Type) []Dependency {
	switch v := t.(type) {
	case DefinedType:
		module := ""
		if v.ModuleReference != nil {
			module = *v.ModuleReference
		}
		return []Dependency{{Name: v.TypeReference, ModuleReference: module}}

	case ChoiceType:
		var out []Dependency
		for _, alt := range v.Choices {
			out = append(out, DependsOn(alt.Type)...)
		}
		return out

	case SequenceType:
		return dependsOnComponents(v.Components)

	case SetType:
		return dependsOnComponents(v.Components)

	case SequenceOfType:
		return DependsOn(v.ElementType())

	case SetOfType:
		return DependsOn(v.SequenceOfType.ElementType())

	case PrefixedType:
		return DependsOn(v.TaggedType.Type)

	default:
		return nil
	}
}

func dependsOnComponents(components []ComponentType) []Dependency {
	var out []Dependency
	for _, c := range components {
		out = append(out, DependsOn(c.NamedType.Type)...)
	}
	return out
}

// dependsOnValue returns value's dependencies: a DefinedValue
// reference counts as one, anything else as none.
func dependsOnValue(value Value) []Dependency {
	if dv, ok := value.Selection.(DefinedValue); ok {
		module := dv.ModuleReference
		return []Dependency{{Name: dv.Reference, ModuleReference: module}}
	}
	return nil
}

// Dependencies returns an assignment's full dependency list: a
// TypeAssignment's type dependencies, or a ValueAssignment's type and
// value dependencies combined. Any other assignment kind has none.
func Dependencies(a Assignment) []Dependency {
	switch v := a.Specific.(type) {
	case TypeAssignment:
		return DependsOn(v.Type)
	case ValueAssignment:
		out := DependsOn(v.Type)
		out = append(out, dependsOnValue(v.Value)...)
		return out
	default:
		return nil
	}
}

// GetDependenciesRecursive walks typeName's dependency list (and its
// dependencies' dependency lists, transitively) within a single
// module, collecting every Dependency reached along the way into
// depends. It stops descending into a dependency once already
// recorded, so cycles terminate. Cross-module dependencies are
// neither recorded nor followed. assignments must map every in-module
// assignment name to its Assignment (with DependsOn already
// populated).
func GetDependenciesRecursive(typeName, moduleName string, assignments map[string]Assignment, depends map[Dependency]struct{}) error {
	assignment, ok := assignments[typeName]
	if !ok {
		return errUndefinedReference(moduleName, typeName)
	}

	for _, dep := range assignment.DependsOn {
		if dep.ModuleReference != "" && dep.ModuleReference != moduleName {
			continue
		}
		if _, seen := depends[dep]; seen {
			continue
		}
		depends[dep] = struct{}{}
		if err := GetDependenciesRecursive(dep.Name, moduleName, assignments, depends); err != nil {
			return err
		}
	}
	return nil
}
