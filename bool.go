package asn1kit

/*
bool.go contains all types and methods pertaining to the ASN.1
BOOLEAN type.
*/

/*
Boolean implements the ASN.1 BOOLEAN type (tag 1).
*/
type Boolean bool

/*
Tag returns the integer constant one (1) for [TagBoolean].
*/
func (r Boolean) Tag() int { return TagBoolean }

/*
Byte returns the receiver expressed as a single byte: 0x00 for false,
0xFF for true.
*/
func (r Boolean) Byte() byte {
	var b byte
	if bool(r) {
		b = 0xFF
	}
	return b
}

/*
String returns the string representation of the receiver instance.
*/
func (r Boolean) String() string { return bool2str(bool(r)) }

/*
Bool returns the receiver instance cast as a native Go bool.
*/
func (r Boolean) Bool() bool { return bool(r) }

/*
NewBoolean returns an instance of [Boolean] alongside an error
following an attempt to marshal x.
*/
func NewBoolean(x any, constraints ...Constraint) (b Boolean, err error) {
	switch tv := x.(type) {
	case bool:
		b = Boolean(tv)
	case Boolean:
		b = tv
	case *bool:
		if tv != nil {
			b = Boolean(*tv)
		}
	case string:
		var _b bool
		_b, err = pbool(tv)
		b = Boolean(_b)
	case int:
		b = Boolean(tv == 1)
	case byte:
		b = Boolean(tv == 0xFF)
	default:
		err = mkerr("Invalid type for ASN.1 BOOLEAN")
	}

	if len(constraints) > 0 && err == nil {
		group := ConstraintGroup(constraints)
		err = group.Constrain(b)
	}

	return b, err
}

/*
Identifiers returns the single static [Identifier] of the ASN.1
BOOLEAN type.
*/
func (r Boolean) Identifiers() []Identifier {
	return []Identifier{{Class: ClassUniversal, Tag: TagBoolean}}
}

/*
EncodedLen returns 1, the fixed content length of an ASN.1 BOOLEAN.
*/
func (r Boolean) EncodedLen() int { return 1 }

/*
Encode appends the receiver's TLV encoding to dst.
*/
func (r Boolean) Encode(dst *Container, opts *Options) error {
	debugEnter("Boolean.Encode", r)
	defer debugExit("Boolean.Encode")

	tlv := TLV{Class: ClassUniversal, Tag: r.Tag(), Value: []byte{r.Byte()}, Length: 1}
	return dst.WriteTLV(tlv, opts)
}

/*
Decode reads one TLV from src and populates the receiver.
*/
func (r *Boolean) Decode(src *View, opts *Options) (err error) {
	debugEnter("Boolean.Decode")
	defer func() { debugExit("Boolean.Decode", newLItem(err)) }()

	var tlv TLV
	if tlv, err = src.TLV(); err != nil {
		return
	}

	tag, class := effectiveTag(r.Tag(), ClassUniversal, opts)
	if tlv.Class != class {
		return errorASN1Expect(class, tlv.Class, "Class")
	}
	if tlv.Tag != tag {
		return errorASN1Expect(tag, tlv.Tag, "Tag")
	}
	if len(tlv.Value) != 1 {
		return errorASN1Expect(1, len(tlv.Value), "Length")
	}

	*r = Boolean(tlv.Value[0] != 0)
	return
}
