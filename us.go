package asn1kit

/*
us.go contains all types and methods pertaining to the ASN.1
UNIVERSAL STRING type.
*/

import "encoding/binary"

/*
UniversalString implements the UCS-4 ASN.1 UNIVERSAL STRING (tag 28).
*/
type UniversalString string

/*
Tag returns the integer constant [TagUniversalString].
*/
func (r UniversalString) Tag() int { return TagUniversalString }

/*
Len returns the integer length of the receiver instance.
*/
func (r UniversalString) Len() int { return len(r) }

/*
String returns the string representation of the receiver instance.
*/
func (r UniversalString) String() string { return string(r) }

/*
NewUniversalString returns an instance of [UniversalString] alongside
an error following an attempt to marshal x.
*/
func NewUniversalString(x any, constraints ...Constraint) (us UniversalString, err error) {
	var raw string
	switch tv := x.(type) {
	case string:
		raw = tv
	case []byte:
		raw = string(tv)
	case UniversalString:
		raw = string(tv)
	default:
		err = mkerr("UNIVERSAL STRING: unsupported constructor input type")
		return
	}

	if !utf8OK(raw) {
		err = mkerr("UNIVERSAL STRING: input is not valid UTF-8")
		return
	}
	for _, r2 := range raw {
		if universalStringOutOfBounds(r2) {
			err = mkerrf("UNIVERSAL STRING: invalid code point ", string(r2))
			return
		}
	}

	if len(constraints) > 0 {
		err = ConstraintGroup(constraints).Constrain(UniversalString(raw))
	}

	if err == nil {
		us = UniversalString(raw)
	}

	return
}

func universalStringOutOfBounds(r rune) bool {
	return r > 0x10FFFF || (r >= 0xD800 && r <= 0xDFFF)
}

func encodeUTF32BE(s string) []byte {
	runes := []rune(s)
	content := make([]byte, 4*len(runes))
	for i, r := range runes {
		binary.BigEndian.PutUint32(content[i*4:], uint32(r))
	}
	return content
}

func decodeUTF32BE(b []byte) (string, error) {
	if len(b)%4 != 0 {
		return "", mkerr("UNIVERSAL STRING: content octet length not multiple of 4")
	}
	runes := make([]rune, 0, len(b)/4)
	for i := 0; i < len(b); i += 4 {
		code := binary.BigEndian.Uint32(b[i:])
		if code > 0x10FFFF || (code >= 0xD800 && code <= 0xDFFF) {
			return "", mkerrf("UNIVERSAL STRING: invalid code point: ", itoa(int(code)))
		}
		runes = append(runes, rune(code))
	}
	return string(runes), nil
}

/*
Identifiers returns the single static [Identifier] of the ASN.1
UniversalString type.
*/
func (r UniversalString) Identifiers() []Identifier {
	return []Identifier{{Class: ClassUniversal, Tag: TagUniversalString}}
}

/*
EncodedLen returns the byte length of the receiver's UTF-32BE
encoding.
*/
func (r UniversalString) EncodedLen() int { return 4 * len([]rune(r)) }

/*
Encode appends the receiver's TLV encoding to dst.
*/
func (r UniversalString) Encode(dst *Container, opts *Options) error {
	content := encodeUTF32BE(string(r))
	tlv := TLV{Class: ClassUniversal, Tag: r.Tag(), Value: content, Length: len(content)}
	return dst.WriteTLV(tlv, opts)
}

/*
Decode reads one TLV from src and populates the receiver.
*/
func (r *UniversalString) Decode(src *View, opts *Options) (err error) {
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

	s, derr := decodeUTF32BE(tlv.Value)
	if derr != nil {
		return derr
	}
	*r = UniversalString(s)
	return
}
