package asn1kit

/*
tlv.go contains the Type-Length-Value type shared by [View] and
[Container].
*/

/*
TLV stores a single discrete BER Tag-Length-Value component. Instances
are produced by [View.TLV] and [View.PeekTLV], and consumed by
[Container.WriteTLV].

Length is -1 when the element used indefinite length form.
*/
type TLV struct {
	Class       int
	Tag         int
	Constructed bool
	Length      int
	Value       []byte
}

func (t TLV) String() string { return tlvString(t) }

/*
Eq reports whether the receiver and tlv describe the same class, tag
and construction. The respective lengths are only compared when the
variadic length argument is true.
*/
func (t TLV) Eq(tlv TLV, length ...bool) bool { return tlvEqual(t, tlv, length...) }

func (t TLV) identifier() Identifier {
	return Identifier{Class: t.Class, Tag: t.Tag, Constructed: t.Constructed}
}

func tlvString(t TLV) string {
	var value []string
	for i := 0; i < len(t.Value); i++ {
		value = append(value, itoa(int(t.Value[i])))
	}

	return "{Class:" + itoa(t.Class) +
		", Tag:" + itoa(t.Tag) +
		", Constructed:" + bool2str(t.Constructed) +
		", Length:" + itoa(t.Length) +
		", Value:[" + join(value, ` `) + "]}"
}

func tlvEqual(a, b TLV, length ...bool) bool {
	lenOK := true
	if len(length) > 0 && length[0] {
		lenOK = a.Length == b.Length
	}

	return a.Constructed == b.Constructed &&
		a.Class == b.Class &&
		a.Tag == b.Tag && lenOK
}

/*
encodeTLV renders t, honoring any tag/class overlay and explicit
construction requested by opts, and returns the complete header+content
byte sequence.
*/
func encodeTLV(t TLV, opts *Options) []byte {
	bufPtr := getBuf()
	b := *bufPtr

	id := t.identifier()
	if opts != nil {
		id.Class = opts.Class()
		if opts.HasTag() {
			id.Tag = opts.Tag()
		}
		if opts.Explicit {
			id.Constructed = true
		}
	}

	if id.Tag < 0 {
		panic("encodeTLV: negative tag reached encoder")
	}

	b = id.encode(b)

	indef := (opts != nil && opts.Indefinite) || t.Length < 0
	if indef {
		b = append(b, indefByte)
	} else {
		b = encodeLength(b, t.Length)
	}

	b = append(b, t.Value...)

	out := append([]byte(nil), b...)
	putBuf(bufPtr)
	return out
}

func sizeTLV(tag, length int) int {
	size := 1
	if tag >= 0x1F {
		for i := tag; i > 0; i >>= 7 {
			size++
		}
	}

	size++
	if length >= 128 {
		size++
		for length > 255 {
			size++
			length >>= 8
		}
	}
	return size
}
