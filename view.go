package asn1kit

/*
view.go implements [View], a non-owning read cursor over a BER-encoded
byte slice.

A View never copies the slice it is given; it only tracks an offset
into it. Taking a sub-view (via [View.Enter]) re-seats that offset
within the same backing array, so callers must not mutate a slice
while a View derived from it is still in use.
*/

/*
View is a non-owning cursor over a BER-encoded buffer. Zero value is
not usable; construct with [NewView].
*/
type View struct {
	data   []byte
	offset int
}

/*
NewView returns a [View] over data. The returned View does not copy
data; the caller retains ownership and must not mutate it while the
View is in use.
*/
func NewView(data []byte) *View { return &View{data: data} }

/*
Data returns the full backing slice, regardless of the current offset.
*/
func (v *View) Data() []byte { return v.data }

/*
Len returns the length of the backing slice.
*/
func (v *View) Len() int { return len(v.data) }

/*
Offset returns the current cursor position.
*/
func (v *View) Offset() int { return v.offset }

/*
SetOffset repositions the cursor to a non-negative offset. A value of
-1 seats the cursor at the final byte of the backing slice when the
slice holds more than one byte; any other negative value, or -1 on a
slice of at most one byte, leaves the cursor unchanged. Omitting the
argument resets the cursor to zero.
*/
func (v *View) SetOffset(offset ...int) {
	if len(offset) == 0 {
		v.offset = 0
		return
	}
	if offset[0] == -1 && v.Len() > 1 {
		v.offset = v.Len() - 1
	} else if offset[0] >= 0 {
		v.offset = offset[0]
	}
}

/*
HasMoreData reports whether unread bytes remain past the cursor.
*/
func (v *View) HasMoreData() bool { return v.offset < len(v.data) }

/*
Identifier parses (without advancing) the identifier octets at the
current cursor position.
*/
func (v *View) Identifier() (Identifier, error) {
	if v.offset >= len(v.data) {
		return Identifier{}, errorOutOfBounds
	}
	id, _, err := decodeIdentifier(v.data[v.offset:])
	return id, err
}

/*
PeekTLV parses the [TLV] at the current cursor position without
advancing the cursor.
*/
func (v *View) PeekTLV() (TLV, error) {
	sub := &View{data: v.data, offset: v.offset}
	return readTLV(sub)
}

/*
TLV parses the [TLV] at the current cursor position and advances the
cursor past it.
*/
func (v *View) TLV() (TLV, error) { return readTLV(v) }

/*
Enter returns a sub-[View] over exactly the next L bytes from the
current cursor, re-seated at offset zero within that window, and
advances the receiver's cursor past those bytes. Used to descend into
a constructed element's content octets.
*/
func (v *View) Enter(L int) (*View, error) {
	if v.offset+L > v.Len() {
		return nil, errorASN1Expect(L, v.Len()-v.offset, "Length")
	}
	off := v.offset
	inner := v.data[off : off+L]
	v.offset = off + L
	return &View{data: inner}, nil
}

/*
Bytes returns the content octets (header stripped) of the element
beginning at the cursor, without advancing it.
*/
func (v *View) Bytes() ([]byte, error) {
	return viewBody(v.data, v.offset)
}

/*
FullBytes returns the header and content octets of the element
beginning at the cursor, without advancing it.
*/
func (v *View) FullBytes() ([]byte, error) {
	return viewFullBytes(v.data, v.offset)
}

/*
Hex returns the hexadecimal rendering of the element beginning at the
cursor, grouped as "tag length value".
*/
func (v *View) Hex() string { return formatHex(v.data[v.offset:]) }

func readTLV(v *View) (TLV, error) {
	if v.offset >= v.Len() {
		return TLV{}, mkerrf("View.TLV: no data available at offset ",
			itoa(v.offset), " (len:", itoa(v.Len()), ")")
	}

	sub := v.data[v.offset:]

	id, idLen, err := decodeIdentifier(sub)
	if err != nil {
		return TLV{}, mkerrf("View.TLV: error reading identifier: ", err.Error())
	}
	v.offset += idLen

	length, lenLen, err := decodeLength(v.data[v.offset:])
	if err != nil {
		return TLV{}, mkerrf("View.TLV: error reading length: ", err.Error())
	}
	v.offset += lenLen

	tlv := TLV{
		Class:       id.Class,
		Tag:         id.Tag,
		Constructed: id.Constructed,
		Length:      length,
	}

	if length >= 0 {
		if v.offset+length > v.Len() {
			return TLV{}, errorTruncatedContent
		}
		tlv.Value = v.data[v.offset : v.offset+length]
	} else {
		relEnd, err := findEOC(v.data[v.offset:])
		if err != nil {
			return TLV{}, err
		}
		tlv.Value = v.data[v.offset : v.offset+relEnd]
	}

	return tlv, nil
}

func viewBody(b []byte, off int) ([]byte, error) {
	sub := b[off:]

	_, idLen, err := decodeIdentifier(sub)
	if err != nil {
		return nil, err
	}

	length, lenLen, err := decodeLength(sub[idLen:])
	if err != nil {
		return nil, err
	}

	start := off + idLen + lenLen

	if length >= 0 {
		end := start + length
		if end > len(b) {
			return nil, errorTruncatedContent
		}
		return b[start:end], nil
	}

	relEnd, err := findEOC(sub[idLen+lenLen:])
	if err != nil {
		return nil, err
	}
	return b[start : start+relEnd], nil
}

func viewFullBytes(data []byte, off int) ([]byte, error) {
	sub := data[off:]
	if len(sub) == 0 {
		sub = data
		off = 0
	}

	_, idLen, err := decodeIdentifier(sub)
	if err != nil {
		return nil, err
	}

	length, lenLen, err := decodeLength(sub[idLen:])
	if err != nil {
		return nil, err
	}

	if length >= 0 {
		end := off + idLen + lenLen + length
		if end > len(data) {
			return nil, errorTruncatedContent
		}
		return data[off:end], nil
	}

	relEnd, err := findEOC(sub[idLen+lenLen:])
	if err != nil {
		return nil, err
	}
	end := off + idLen + lenLen + relEnd + 2
	if end > len(data) {
		return nil, errorTruncatedContent
	}
	return data[off:end], nil
}

func formatHex(data []byte) string {
	if len(data) == 0 {
		return ""
	}

	tagEnd := 1
	if data[0]&0x1F == 0x1F {
		for tagEnd < len(data) && data[tagEnd]&0x80 != 0 {
			tagEnd++
		}
		if tagEnd < len(data) {
			tagEnd++
		}
	}
	tagBytes := data[:tagEnd]

	if tagEnd >= len(data) {
		return trimS(uc(hexstr(data)))
	}

	var lengthEnd int
	firstLengthByte := data[tagEnd]
	if firstLengthByte == indefByte || firstLengthByte < 0x80 {
		lengthEnd = tagEnd + 1
	} else {
		numLengthBytes := int(firstLengthByte & 0x7F)
		lengthEnd = tagEnd + 1 + numLengthBytes
		if lengthEnd > len(data) {
			lengthEnd = len(data)
		}
	}

	lengthBytes := data[tagEnd:lengthEnd]
	contentBytes := data[lengthEnd:]

	return trimS(uc(hexstr(tagBytes) + " " + hexstr(lengthBytes) + " " + hexstr(contentBytes)))
}
