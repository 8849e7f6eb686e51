//go:build !asn1kit_no_dprc

package asn1kit

/*
vts.go contains all types and methods pertaining to the ASN.1
VIDEOTEX STRING type.
*/

/*
Deprecated: VideotexString implements the ASN.1 VIDEOTEX STRING type
(tag 21) per ITU-T T.100/T.101. Retained for legacy interoperability.
*/
type VideotexString string

var videotexBitmap = rangeBitmap(
	[2]rune{0x0020, 0x007E},
	[2]rune{0x00A0, 0x00FF},
	[2]rune{0x0100, 0x017F},
	[2]rune{0x0180, 0x024F},
	[2]rune{0x0370, 0x03FF},
	[2]rune{0x0400, 0x04FF},
	[2]rune{0x0530, 0x058F},
	[2]rune{0x0590, 0x05FF},
	[2]rune{0x0600, 0x06FF},
	[2]rune{0x2500, 0x257F},
	[2]rune{0x2580, 0x259F},
	[2]rune{0x25A0, 0x25FF},
	[2]rune{0x2600, 0x26FF},
	[2]rune{0x2700, 0x27BF},
	[2]rune{0x3000, 0x303F},
	[2]rune{0x4E00, 0x9FFF},
)

func isVideotexChar(c rune) bool { return bitmapContains(&videotexBitmap, c) }

/*
NewVideotexString returns an instance of [VideotexString] alongside an
error following an attempt to marshal x.
*/
func NewVideotexString(x any, constraints ...Constraint) (vts VideotexString, err error) {
	var raw string
	switch tv := x.(type) {
	case string:
		raw = tv
	case []byte:
		raw = string(tv)
	case VideotexString:
		raw = string(tv)
	default:
		err = mkerr("VIDEOTEX STRING: unsupported constructor input type")
		return
	}

	if verr := validateRunes(raw, "VIDEOTEX STRING", isVideotexChar); verr != nil {
		err = verr
		return
	}

	if len(constraints) > 0 {
		err = ConstraintGroup(constraints).Constrain(VideotexString(raw))
	}

	if err == nil {
		vts = VideotexString(raw)
	}

	return
}

/*
Len returns the integer length of the receiver instance.
*/
func (r VideotexString) Len() int { return len(r) }

/*
String returns the string representation of the receiver instance.
*/
func (r VideotexString) String() string { return string(r) }

/*
Tag returns the integer constant [TagVideotexString].
*/
func (r VideotexString) Tag() int { return TagVideotexString }

/*
Identifiers returns the single static [Identifier] of the ASN.1
VideotexString type.
*/
func (r VideotexString) Identifiers() []Identifier {
	return []Identifier{{Class: ClassUniversal, Tag: TagVideotexString}}
}

/*
EncodedLen returns the byte length of the receiver's content octets.
*/
func (r VideotexString) EncodedLen() int { return len(r) }

/*
Encode appends the receiver's TLV encoding to dst.
*/
func (r VideotexString) Encode(dst *Container, opts *Options) error {
	return encodeSimpleString(r.Tag(), string(r), dst, opts)
}

/*
Decode reads one TLV from src and populates the receiver.
*/
func (r *VideotexString) Decode(src *View, opts *Options) (err error) {
	var s string
	if s, err = decodeSimpleString(r.Tag(), src, opts); err == nil {
		*r = VideotexString(s)
	}
	return
}
