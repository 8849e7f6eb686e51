//go:build !asn1kit_no_dprc

package asn1kit

/*
gen.go contains all types and methods pertaining to the ASN.1
GENERAL STRING type.
*/

/*
Deprecated: GeneralString implements the ASN.1 GENERAL STRING type
(tag 27). Retained for legacy interoperability.
*/
type GeneralString string

/*
NewGeneralString returns an instance of [GeneralString] alongside an
error following an attempt to marshal x.
*/
func NewGeneralString(x any, constraints ...Constraint) (gen GeneralString, err error) {
	var raw string
	switch tv := x.(type) {
	case string:
		raw = tv
	case []byte:
		raw = string(tv)
	case GeneralString:
		raw = string(tv)
	default:
		err = mkerr("GENERAL STRING: unsupported constructor input type")
		return
	}

	for _, c := range raw {
		if c > 0x00FF {
			err = mkerrf("GENERAL STRING: invalid character '", string(c), "' (>0x00FF)")
			return
		}
	}

	if len(constraints) > 0 {
		err = ConstraintGroup(constraints).Constrain(GeneralString(raw))
	}

	if err == nil {
		gen = GeneralString(raw)
	}

	return
}

/*
Len returns the integer byte length of the receiver instance.
*/
func (r GeneralString) Len() int { return len(r) }

/*
String returns the string representation of the receiver instance.
*/
func (r GeneralString) String() string { return string(r) }

/*
Tag returns the integer constant [TagGeneralString].
*/
func (r GeneralString) Tag() int { return TagGeneralString }

/*
Identifiers returns the single static [Identifier] of the ASN.1
GeneralString type.
*/
func (r GeneralString) Identifiers() []Identifier {
	return []Identifier{{Class: ClassUniversal, Tag: TagGeneralString}}
}

/*
EncodedLen returns the byte length of the receiver's content octets.
*/
func (r GeneralString) EncodedLen() int { return len(r) }

/*
Encode appends the receiver's TLV encoding to dst.
*/
func (r GeneralString) Encode(dst *Container, opts *Options) error {
	return encodeSimpleString(r.Tag(), string(r), dst, opts)
}

/*
Decode reads one TLV from src and populates the receiver.
*/
func (r *GeneralString) Decode(src *View, opts *Options) (err error) {
	var s string
	if s, err = decodeSimpleString(r.Tag(), src, opts); err == nil {
		*r = GeneralString(s)
	}
	return
}
