package asn1kit

/*
constr.go contains constraint and constraint group components which
serve to implement ASN.1's constraints design for various types.
*/

/*
Constraint implements a closure function signature meant to enforce
the constraining of a single value.

Instances of this type may be fed to various type constructors and
registries throughout this package.
*/
type Constraint func(any) error

/*
ConstraintGroup implements a wrapper of slices of [Constraint].
Instances are evaluated in the order in which they were added.
*/
type ConstraintGroup []Constraint

/*
Constrain returns an error following the execution of all [Constraint]
instances against x which reside within the receiver instance.
*/
func (r ConstraintGroup) Constrain(x any) (err error) {
	debugEvent(EventEnter|EventConstraint, x)
	defer func() {
		debugEvent(EventExit|EventConstraint, newLItem(err))
	}()

	for i := 0; i < len(r) && err == nil; i++ {
		if r[i] != nil {
			err = r[i](x)
			debugEvent(EventConstraint|EventTrace, newLItem(i, "constraint"), newLItem(err))
		}
	}

	return
}

func (r ConstraintGroup) phase(actual, expect int) (funk func(any) error) {
	funk = func(_ any) error { return nil }
	if actual == expect || actual == CodecConstraintBoth {
		funk = r.Constrain
	}
	return
}

var constraintReg map[string]Constraint

/*
RegisterTaggedConstraint assigns the provided [Constraint] function
instance to the package-level [Constraint] registry. The input name is
used within "asn1" struct tags via the "constraint" keyword, e.g.:

	`asn1:"...,constraint:myConstraint"`

This function will panic if a [Constraint] is already registered under
name. Case is not significant.
*/
func RegisterTaggedConstraint(name string, c Constraint) {
	putConstraint(name, c)
}

/*
RegisterTaggedConstraintGroup assigns the provided [ConstraintGroup]
instance to the package-level [Constraint] registry under name.
*/
func RegisterTaggedConstraintGroup(name string, g ConstraintGroup) {
	wrapped := Constraint(func(x any) error { return g.Constrain(x) })
	putConstraint(name, wrapped)
}

func putConstraint(name string, fn Constraint) {
	key := lc(name)

	debugEvent(EventEnter|EventConstraint, newLItem(key, "put constraint"))
	defer func() { debugEvent(EventExit | EventConstraint) }()

	if _, dup := constraintReg[key]; dup {
		panic("asn1kit: duplicate constraint name " + name)
	} else if fn != nil {
		constraintReg[key] = fn
	}
}

func collectConstraint(names []string) (group ConstraintGroup, err error) {
	for _, n := range names {
		n = trimL(lc(n), `^$`)
		constraint, ok := constraintReg[n]
		if !ok {
			err = errorUnknownConstraint(n)
			break
		}
		group = append(group, constraint)
	}

	return
}

func errorUnknownConstraint(name string) error {
	return mkerrf("unknown constraint reference: ", name)
}

func constraintViolationf(parts ...any) error {
	return mkerrf(append([]any{"constraint violation: "}, parts...)...)
}

const (
	// CodecConstraintEncoding indicates that codec operations should
	// only execute constraints during the encoding (write) phase.
	CodecConstraintEncoding = iota + 1

	// CodecConstraintDecoding indicates that codec operations should
	// only execute constraints during the decoding (read) phase.
	CodecConstraintDecoding

	// CodecConstraintBoth indicates that codec operations should
	// execute constraints in both phases.
	CodecConstraintBoth
)

func init() {
	constraintReg = make(map[string]Constraint)
}
