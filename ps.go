package asn1kit

/*
ps.go contains all types and methods pertaining to the ASN.1
PRINTABLE STRING type.
*/

/*
PrintableString implements ITU-T Rec. X.680 clause 41.4 (tag 19):
letters, digits, space, and a small set of punctuation marks.
*/
type PrintableString string

var printableStringBitmap = rangeBitmap(
	[2]rune{0x0020, 0x0020},
	[2]rune{0x0027, 0x0029},
	[2]rune{0x002B, 0x002F},
	[2]rune{0x003A, 0x003A},
	[2]rune{0x003F, 0x003F},
	[2]rune{0x0030, 0x0039},
	[2]rune{0x0041, 0x005A},
	[2]rune{0x0061, 0x007A},
)

func isPrintableStringChar(c rune) bool { return bitmapContains(&printableStringBitmap, c) }

/*
Tag returns the integer constant [TagPrintableString].
*/
func (r PrintableString) Tag() int { return TagPrintableString }

/*
String returns the string representation of the receiver instance.
*/
func (r PrintableString) String() string { return string(r) }

/*
Len returns the integer length of the receiver instance.
*/
func (r PrintableString) Len() int { return len(r) }

/*
NewPrintableString returns an instance of [PrintableString] alongside
an error following an attempt to marshal x.
*/
func NewPrintableString(x any, constraints ...Constraint) (ps PrintableString, err error) {
	var raw string
	switch tv := x.(type) {
	case string:
		raw = tv
	case []byte:
		raw = string(tv)
	case PrintableString:
		raw = string(tv)
	default:
		err = mkerr("PRINTABLE STRING: unsupported constructor input type")
		return
	}

	if verr := validateRunes(raw, "PRINTABLE STRING", isPrintableStringChar); verr != nil {
		err = verr
		return
	}

	if len(constraints) > 0 {
		err = ConstraintGroup(constraints).Constrain(PrintableString(raw))
	}

	if err == nil {
		ps = PrintableString(raw)
	}

	return
}

/*
Identifiers returns the single static [Identifier] of the ASN.1
PrintableString type.
*/
func (r PrintableString) Identifiers() []Identifier {
	return []Identifier{{Class: ClassUniversal, Tag: TagPrintableString}}
}

/*
EncodedLen returns the byte length of the receiver's content octets.
*/
func (r PrintableString) EncodedLen() int { return len(r) }

/*
Encode appends the receiver's TLV encoding to dst.
*/
func (r PrintableString) Encode(dst *Container, opts *Options) error {
	return encodeSimpleString(r.Tag(), string(r), dst, opts)
}

/*
Decode reads one TLV from src and populates the receiver.
*/
func (r *PrintableString) Decode(src *View, opts *Options) (err error) {
	var s string
	if s, err = decodeSimpleString(r.Tag(), src, opts); err == nil {
		*r = PrintableString(s)
	}
	return
}
