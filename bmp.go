package asn1kit

/*
bmp.go contains all types and methods pertaining to the Basic
Multilingual Plane (BMP) string.
*/

import "encoding/binary"

/*
BMPString implements the ASN.1 BMPSTRING type (tag 30): UTF-16BE
content octets, per [ITU-T Rec. X.680].

[ITU-T Rec. X.680]: https://www.itu.int/rec/T-REC-X.680
*/
type BMPString string

/*
NewBMPString returns an instance of [BMPString] alongside an error
following an attempt to marshal x.
*/
func NewBMPString(x any, constraints ...Constraint) (bmp BMPString, err error) {
	var raw string
	switch tv := x.(type) {
	case string:
		raw = tv
	case []byte:
		raw = string(tv)
	case BMPString:
		raw = string(tv)
	default:
		err = mkerr("BMP STRING: unsupported constructor input type")
		return
	}

	if _, verr := encodeUTF16BE(raw); verr != nil {
		err = verr
		return
	}

	if len(constraints) > 0 {
		err = ConstraintGroup(constraints).Constrain(BMPString(raw))
	}

	if err == nil {
		bmp = BMPString(raw)
	}

	return
}

func encodeUTF16BE(s string) ([]byte, error) {
	units := utf16Enc([]rune(s))
	out := make([]byte, 2*len(units))
	for i, u := range units {
		binary.BigEndian.PutUint16(out[2*i:], u)
	}
	return out, nil
}

func decodeUTF16BE(b []byte) (string, error) {
	if len(b)%2 != 0 {
		return "", mkerr("BMP STRING: odd content octet count")
	}
	var runes []rune
	for i := 0; i < len(b); i += 2 {
		u := binary.BigEndian.Uint16(b[i:])
		if u >= 0xD800 && u <= 0xDBFF {
			if i+4 > len(b) {
				return "", mkerr("BMP STRING: truncated surrogate pair")
			}
			lo := binary.BigEndian.Uint16(b[i+2:])
			if lo < 0xDC00 || lo > 0xDFFF {
				return "", mkerr("BMP STRING: invalid surrogate pair")
			}
			r := (rune(u-0xD800)<<10 | rune(lo-0xDC00)) + 0x10000
			runes = append(runes, r)
			i += 2
		} else {
			runes = append(runes, rune(u))
		}
	}
	return string(runes), nil
}

/*
Tag returns the integer constant [TagBMPString].
*/
func (r BMPString) Tag() int { return TagBMPString }

/*
Len returns the integer length of the receiver instance.
*/
func (r BMPString) Len() int { return len(r) }

/*
String returns the string representation of the receiver instance.
*/
func (r BMPString) String() string { return string(r) }

/*
Identifiers returns the single static [Identifier] of the ASN.1
BMPString type.
*/
func (r BMPString) Identifiers() []Identifier {
	return []Identifier{{Class: ClassUniversal, Tag: TagBMPString}}
}

/*
EncodedLen returns the byte length of the receiver's UTF-16BE
encoding.
*/
func (r BMPString) EncodedLen() int {
	b, _ := encodeUTF16BE(string(r))
	return len(b)
}

/*
Encode appends the receiver's TLV encoding to dst.
*/
func (r BMPString) Encode(dst *Container, opts *Options) error {
	content, err := encodeUTF16BE(string(r))
	if err != nil {
		return err
	}
	tlv := TLV{Class: ClassUniversal, Tag: r.Tag(), Value: content, Length: len(content)}
	return dst.WriteTLV(tlv, opts)
}

/*
Decode reads one TLV from src and populates the receiver.
*/
func (r *BMPString) Decode(src *View, opts *Options) (err error) {
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

	s, derr := decodeUTF16BE(tlv.Value)
	if derr != nil {
		return derr
	}
	*r = BMPString(s)
	return
}
