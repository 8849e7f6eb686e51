package asn1kit

/*
ns.go contains all types and methods pertaining to the ASN.1
NUMERIC STRING type.
*/

/*
NumericString implements the ASN.1 NUMERICSTRING type (tag 18),
restricted to decimal digits and the space character.
*/
type NumericString string

/*
Tag returns the integer constant [TagNumericString].
*/
func (r NumericString) Tag() int { return TagNumericString }

/*
String returns the string representation of the receiver instance.
*/
func (r NumericString) String() string { return string(r) }

/*
Len returns the integer length of the receiver instance.
*/
func (r NumericString) Len() int { return len(r) }

/*
NewNumericString returns an instance of [NumericString] alongside an
error following an attempt to marshal x.
*/
func NewNumericString(x any, constraints ...Constraint) (ns NumericString, err error) {
	var raw string
	switch tv := x.(type) {
	case string:
		raw = tv
	case []byte:
		raw = string(tv)
	case int:
		raw = itoa(tv)
	case int64:
		raw = fmtInt(tv, 10)
	case uint64:
		raw = fmtUint(tv, 10)
	case NumericString:
		raw = string(tv)
	default:
		err = mkerr("NUMERIC STRING: unsupported constructor input type")
		return
	}

	if verr := validateRunes(raw, "NUMERIC STRING", isNumericStringChar); verr != nil {
		err = verr
		return
	}

	if len(constraints) > 0 {
		err = ConstraintGroup(constraints).Constrain(NumericString(raw))
	}

	if err == nil {
		ns = NumericString(raw)
	}

	return
}

func isNumericStringChar(c rune) bool {
	return c == ' ' || (c >= '0' && c <= '9')
}

/*
Identifiers returns the single static [Identifier] of the ASN.1
NumericString type.
*/
func (r NumericString) Identifiers() []Identifier {
	return []Identifier{{Class: ClassUniversal, Tag: TagNumericString}}
}

/*
EncodedLen returns the byte length of the receiver's content octets.
*/
func (r NumericString) EncodedLen() int { return len(r) }

/*
Encode appends the receiver's TLV encoding to dst.
*/
func (r NumericString) Encode(dst *Container, opts *Options) error {
	return encodeSimpleString(r.Tag(), string(r), dst, opts)
}

/*
Decode reads one TLV from src and populates the receiver.
*/
func (r *NumericString) Decode(src *View, opts *Options) (err error) {
	var s string
	if s, err = decodeSimpleString(r.Tag(), src, opts); err == nil {
		*r = NumericString(s)
	}
	return
}
