//go:build !asn1kit_no_constr_pf

package asn1kit

import (
	"time"

	"golang.org/x/exp/constraints"
)

/*
Numerical is satisfied by any ordinary signed/unsigned integer or
floating point type, and by [Integer] itself.
*/
type Numerical interface {
	constraints.Integer | constraints.Float
}

/*
Lengthy is satisfied by any type exposing a logical length, such as
[OctetString], the ASN.1 string family, or a collection.
*/
type Lengthy interface {
	Len() int
}

/*
Enumeration returns an instance of [Constraint] based upon a hard-coded
map. K may be any [Numerical] value, while V must always be a string.

If the input map is nil or zero, this function will panic.
*/
func Enumeration[K Numerical, V string](enum map[K]V) Constraint {
	if len(enum) == 0 {
		panic("ENUMERATED: constraint prefab error received nil or zero enum map")
	}

	return func(x any) (err error) {
		kVal, ok := x.(K)
		if !ok {
			err = constraintViolationf("ENUMERATED: invalid type, expected Numerical qualifier")
			return
		}

		if _, ok := enum[kVal]; !ok {
			err = constraintViolationf("ENUMERATED: disallowed ENUM value")
		}
		return
	}
}

/*
Unsigned implements an [Integer] [Constraint] which prohibits negative
numbers. Intended for use as a variadic argument to [NewInteger].
*/
func Unsigned(x any) (err error) {
	if i, ok := x.(Integer); !ok {
		err = constraintViolationf("Unsigned: not an Integer")
	} else if i.Lt(0) {
		err = errorNegativeInteger
	}
	return
}

/*
Union returns an instance of [Constraint] which checks that at least
one (1) of the provided constraints is satisfied.
*/
func Union(cs ...Constraint) Constraint {
	return func(x any) error {
		for _, c := range cs {
			if c(x) == nil {
				return nil
			}
		}
		return constraintViolationf("union failed all ", len(cs), " constraints")
	}
}

/*
Intersection returns an instance of [Constraint] which checks that all
of the specified constraints are satisfied.
*/
func Intersection(cs ...Constraint) Constraint {
	return func(x any) (err error) {
		for i := 0; i < len(cs) && err == nil; i++ {
			err = cs[i](x)
		}
		return
	}
}

/*
From returns an instance of [Constraint] that checks that a string or
[]byte value contains only characters present in allowed.
*/
func From(allowed string) Constraint {
	allowedSet := make(map[rune]struct{})
	for _, r := range allowed {
		allowedSet[r] = struct{}{}
	}
	return func(x any) (err error) {
		var s string
		switch tv := x.(type) {
		case string:
			s = tv
		case []byte:
			s = string(tv)
		default:
			err = constraintViolationf("From: expected string or []byte")
			return
		}
		for i := 0; i < len(s) && err == nil; i++ {
			if _, ok := allowedSet[rune(s[i])]; !ok {
				err = constraintViolationf("character '", string(s[i]), "' is not allowed")
			}
		}
		return
	}
}

/*
Range returns an instance of [Constraint] that checks that a value of
any [constraints.Ordered] type falls between minimum and maximum,
inclusive.
*/
func Range[T constraints.Ordered](minimum, maximum T) Constraint {
	return func(val any) error {
		v, ok := val.(T)
		if !ok {
			return constraintViolationf("Range: type assertion to ordered type failed")
		}
		if v < minimum || v > maximum {
			return constraintViolationf("Range: value is out of range")
		}
		return nil
	}
}

/*
Size returns an instance of [Constraint] that checks that a [Lengthy]
value's logical length falls between minimum and maximum, inclusive.

This constructor is primarily intended to enforce SIZE constraints on
ASN.1 string and collection types, e.g.:

	ub-international-isdn-number INTEGER ::= 16
	InternationalISDNNumber ::= NumericString(SIZE (1..ub-international-isdn-number))
*/
func Size[T Lengthy](minimum, maximum int) Constraint {
	return func(val any) error {
		v, ok := val.(T)
		if !ok {
			return constraintViolationf("Size: type assertion to Lengthy failed")
		}
		if n := v.Len(); n < minimum || n > maximum {
			return constraintViolationf("Size: length is out of bounds")
		}
		return nil
	}
}

/*
Recurrence returns a [Temporal] [Constraint] for values that must fall
within a recurring window.

period is the recurrence period (e.g. 24h); windowStart and windowEnd
represent the allowable offset (as durations) within each period.
*/
func Recurrence(period, windowStart, windowEnd time.Duration) Constraint {
	return func(val any) (err error) {
		tm, ok := val.(Temporal)
		if !ok {
			err = constraintViolationf("Recurrence: Temporal assertion failed")
			return
		}
		remainder := time.Duration(tm.Cast().UnixNano()) % period
		if remainder < windowStart || remainder > windowEnd {
			err = constraintViolationf("Recurrence: time is not within the recurrence window")
		}
		return
	}
}

/*
TimePointRange returns a [Temporal] [Constraint] hard-coded with the
specified min and max values for the purpose of constraining [Temporal]
values to a specific window.
*/
func TimePointRange(minimum, maximum Temporal) Constraint {
	return func(val any) (err error) {
		tm, ok := val.(Temporal)
		if !ok {
			err = constraintViolationf("TimePointRange: Temporal assertion failed")
			return
		}
		t := tm.Cast()
		if t.Before(minimum.Cast()) || t.After(maximum.Cast()) {
			err = constraintViolationf("TimePointRange: time is not in allowed range")
		}
		return
	}
}
