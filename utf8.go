package asn1kit

/*
utf8.go contains all types and methods pertaining to the ASN.1
UTF8 STRING.
*/

/*
UTF8String implements the ASN.1 UTF8 STRING (tag 12) per
[ITU-T Rec. X.680].

[ITU-T Rec. X.680]: https://www.itu.int/rec/T-REC-X.680
*/
type UTF8String string

/*
Tag returns the integer constant [TagUTF8String].
*/
func (r UTF8String) Tag() int { return TagUTF8String }

/*
Len returns the integer length of the receiver instance.
*/
func (r UTF8String) Len() int { return len(r) }

/*
String returns the string representation of the receiver instance.
*/
func (r UTF8String) String() string { return string(r) }

/*
NewUTF8String returns an instance of [UTF8String] alongside an error
following an attempt to marshal x.
*/
func NewUTF8String(x any, constraints ...Constraint) (u8 UTF8String, err error) {
	var raw string
	switch tv := x.(type) {
	case string:
		raw = tv
	case []byte:
		raw = string(tv)
	case UTF8String:
		raw = string(tv)
	default:
		err = mkerr("UTF8 STRING: unsupported constructor input type")
		return
	}

	if !utf8OK(raw) {
		err = mkerr("UTF8 STRING: invalid UTF-8 character(s)")
		return
	}

	if len(constraints) > 0 {
		err = ConstraintGroup(constraints).Constrain(UTF8String(raw))
	}

	if err == nil {
		u8 = UTF8String(raw)
	}

	return
}

/*
Identifiers returns the single static [Identifier] of the ASN.1
UTF8String type.
*/
func (r UTF8String) Identifiers() []Identifier {
	return []Identifier{{Class: ClassUniversal, Tag: TagUTF8String}}
}

/*
EncodedLen returns the byte length of the receiver's content octets.
*/
func (r UTF8String) EncodedLen() int { return len(r) }

/*
Encode appends the receiver's TLV encoding to dst.
*/
func (r UTF8String) Encode(dst *Container, opts *Options) error {
	return encodeSimpleString(r.Tag(), string(r), dst, opts)
}

/*
Decode reads one TLV from src and populates the receiver.
*/
func (r *UTF8String) Decode(src *View, opts *Options) (err error) {
	var s string
	if s, err = decodeSimpleString(r.Tag(), src, opts); err == nil {
		*r = UTF8String(s)
	}
	return
}
