package asn1kit

/*
vs.go contains all types and methods pertaining to the ASN.1
VISIBLE STRING type.
*/

/*
VisibleString implements the ASN.1 VISIBLE STRING type (tag 26): any
ASCII character that is not a control character.
*/
type VisibleString string

/*
NewVisibleString returns an instance of [VisibleString] alongside an
error following an attempt to marshal x.
*/
func NewVisibleString(x any, constraints ...Constraint) (vs VisibleString, err error) {
	var raw string
	switch tv := x.(type) {
	case string:
		raw = tv
	case []byte:
		raw = string(tv)
	case VisibleString:
		raw = string(tv)
	default:
		err = mkerr("VISIBLE STRING: unsupported constructor input type")
		return
	}

	for i := 0; i < len(raw); i++ {
		if raw[i] > 0x7F || isCtrl(rune(raw[i])) {
			err = mkerrf("VISIBLE STRING: invalid character #", itoa(int(raw[i])), " (is control or non-ASCII character)")
			return
		}
	}

	if len(constraints) > 0 {
		err = ConstraintGroup(constraints).Constrain(VisibleString(raw))
	}

	if err == nil {
		vs = VisibleString(raw)
	}

	return
}

/*
Len returns the integer length of the receiver instance.
*/
func (r VisibleString) Len() int { return len(r) }

/*
String returns the string representation of the receiver instance.
*/
func (r VisibleString) String() string { return string(r) }

/*
Tag returns the integer constant [TagVisibleString].
*/
func (r VisibleString) Tag() int { return TagVisibleString }

/*
Identifiers returns the single static [Identifier] of the ASN.1
VisibleString type.
*/
func (r VisibleString) Identifiers() []Identifier {
	return []Identifier{{Class: ClassUniversal, Tag: TagVisibleString}}
}

/*
EncodedLen returns the byte length of the receiver's content octets.
*/
func (r VisibleString) EncodedLen() int { return len(r) }

/*
Encode appends the receiver's TLV encoding to dst.
*/
func (r VisibleString) Encode(dst *Container, opts *Options) error {
	return encodeSimpleString(r.Tag(), string(r), dst, opts)
}

/*
Decode reads one TLV from src and populates the receiver.
*/
func (r *VisibleString) Decode(src *View, opts *Options) (err error) {
	var s string
	if s, err = decodeSimpleString(r.Tag(), src, opts); err == nil {
		*r = VisibleString(s)
	}
	return
}
