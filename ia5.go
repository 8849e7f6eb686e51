package asn1kit

/*
ia5.go contains all types and methods pertaining to the International
Alphabet No. 5 string.
*/

/*
IA5String implements the [ITU-T Rec. T.50] IA5 string (tag 22),
covering the 7-bit 0x00-0x7F character range.

[ITU-T Rec. T.50]: https://www.itu.int/rec/T-REC-T.50
*/
type IA5String string

/*
Tag returns the integer constant [TagIA5String].
*/
func (r IA5String) Tag() int { return TagIA5String }

/*
String returns the string representation of the receiver instance.
*/
func (r IA5String) String() string { return string(r) }

/*
Len returns the integer length of the receiver instance.
*/
func (r IA5String) Len() int { return len(r) }

/*
NewIA5String returns an instance of [IA5String] alongside an error
following an attempt to marshal x.
*/
func NewIA5String(x any, constraints ...Constraint) (ia5 IA5String, err error) {
	var raw string
	switch tv := x.(type) {
	case string:
		raw = tv
	case []byte:
		raw = string(tv)
	case IA5String:
		raw = string(tv)
	default:
		err = mkerr("IA5 STRING: unsupported constructor input type")
		return
	}

	for _, c := range raw {
		if c > 0x007F {
			err = mkerrf("IA5 STRING: invalid character '", string(c), "' (>0x007F)")
			return
		}
	}

	if len(constraints) > 0 {
		err = ConstraintGroup(constraints).Constrain(IA5String(raw))
	}

	if err == nil {
		ia5 = IA5String(raw)
	}

	return
}

/*
Identifiers returns the single static [Identifier] of the ASN.1
IA5String type.
*/
func (r IA5String) Identifiers() []Identifier {
	return []Identifier{{Class: ClassUniversal, Tag: TagIA5String}}
}

/*
EncodedLen returns the byte length of the receiver's content octets.
*/
func (r IA5String) EncodedLen() int { return len(r) }

/*
Encode appends the receiver's TLV encoding to dst.
*/
func (r IA5String) Encode(dst *Container, opts *Options) error {
	return encodeSimpleString(r.Tag(), string(r), dst, opts)
}

/*
Decode reads one TLV from src and populates the receiver.
*/
func (r *IA5String) Decode(src *View, opts *Options) (err error) {
	var s string
	if s, err = decodeSimpleString(r.Tag(), src, opts); err == nil {
		*r = IA5String(s)
	}
	return
}
