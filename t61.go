//go:build !asn1kit_no_dprc

package asn1kit

/*
t61.go contains all types and methods pertaining to the ASN.1
T61 STRING (teletex string).
*/

/*
Deprecated: T61String implements the [ITU-T Rec. T.61] string (tag
20). Retained for legacy interoperability; prefer [UniversalString],
[BMPString] or [UTF8String].

[ITU-T Rec. T.61]: https://www.itu.int/rec/T-REC-T.61
*/
type T61String string

var t61Bitmap = rangeBitmap(
	[2]rune{0x0009, 0x000f},
	[2]rune{0x0020, 0x0039},
	[2]rune{0x0041, 0x005B},
	[2]rune{0x0061, 0x007A},
	[2]rune{0x00A0, 0x00FF},
	[2]rune{0x008B, 0x008C},
	[2]rune{0x0126, 0x0127},
	[2]rune{0x0131, 0x0132},
	[2]rune{0x0140, 0x0142},
	[2]rune{0x0149, 0x014A},
	[2]rune{0x0152, 0x0153},
	[2]rune{0x0166, 0x0167},
	[2]rune{0x0300, 0x0304},
	[2]rune{0x0306, 0x0308},
	[2]rune{0x030A, 0x030C},
	[2]rune{0x0327, 0x0328},
	[2]rune{0x009B, 0x009B},
	[2]rune{0x005C, 0x005C},
	[2]rune{0x005D, 0x005D},
	[2]rune{0x005F, 0x005F},
	[2]rune{0x003F, 0x003F},
	[2]rune{0x007C, 0x007C},
	[2]rune{0x007F, 0x007F},
	[2]rune{0x001D, 0x001D},
	[2]rune{0x0111, 0x0111},
	[2]rune{0x0138, 0x0138},
	[2]rune{0x0332, 0x0332},
	[2]rune{0x2126, 0x2126},
	[2]rune{0x013F, 0x013F},
	[2]rune{0x014B, 0x014B},
)

func isT61Char(c rune) bool { return bitmapContains(&t61Bitmap, c) }

/*
Tag returns the integer constant [TagT61String].
*/
func (r T61String) Tag() int { return TagT61String }

/*
String returns the string representation of the receiver instance.
*/
func (r T61String) String() string { return string(r) }

/*
Len returns the integer length of the receiver instance.
*/
func (r T61String) Len() int { return len(r) }

/*
NewT61String returns an instance of [T61String] alongside an error
following an attempt to marshal x.
*/
func NewT61String(x any, constraints ...Constraint) (t61 T61String, err error) {
	var raw string
	switch tv := x.(type) {
	case string:
		raw = tv
	case []byte:
		raw = string(tv)
	case T61String:
		raw = string(tv)
	default:
		err = mkerr("T.61 STRING: unsupported constructor input type")
		return
	}

	if verr := validateRunes(raw, "T.61 STRING", isT61Char); verr != nil {
		err = verr
		return
	}

	if len(constraints) > 0 {
		err = ConstraintGroup(constraints).Constrain(T61String(raw))
	}

	if err == nil {
		t61 = T61String(raw)
	}

	return
}

/*
Identifiers returns the single static [Identifier] of the ASN.1
T61String type.
*/
func (r T61String) Identifiers() []Identifier {
	return []Identifier{{Class: ClassUniversal, Tag: TagT61String}}
}

/*
EncodedLen returns the byte length of the receiver's content octets.
*/
func (r T61String) EncodedLen() int { return len(r) }

/*
Encode appends the receiver's TLV encoding to dst.
*/
func (r T61String) Encode(dst *Container, opts *Options) error {
	return encodeSimpleString(r.Tag(), string(r), dst, opts)
}

/*
Decode reads one TLV from src and populates the receiver.
*/
func (r *T61String) Decode(src *View, opts *Options) (err error) {
	var s string
	if s, err = decodeSimpleString(r.Tag(), src, opts); err == nil {
		*r = T61String(s)
	}
	return
}
