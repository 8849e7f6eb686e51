package asn1kit

/*
oct.go contains all types and methods pertaining to the ASN.1
OCTET STRING type.
*/

/*
OctetString implements the ASN.1 OCTET STRING type (tag 4).
*/
type OctetString []byte

/*
NewOctetString returns an instance of [OctetString] alongside an error
following an attempt to marshal x.
*/
func NewOctetString(x any, constraints ...Constraint) (oct OctetString, err error) {
	var str []byte
	switch tv := x.(type) {
	case []byte:
		str = tv
	case string:
		str = []byte(tv)
	case OctetString:
		str = []byte(tv)
	default:
		err = mkerr("OCTET STRING: unsupported constructor input type")
	}

	if err == nil && len(constraints) > 0 {
		err = ConstraintGroup(constraints).Constrain(OctetString(str))
	}

	if err == nil {
		oct = OctetString(str)
	}

	return
}

/*
Tag returns the integer constant [TagOctetString].
*/
func (r OctetString) Tag() int { return TagOctetString }

/*
String returns the string representation of the receiver instance.
*/
func (r OctetString) String() string { return string(r) }

/*
Len returns the byte length of the receiver instance, satisfying
[Lengthy].
*/
func (r OctetString) Len() int { return len(r) }

/*
Identifiers returns the single static [Identifier] of the ASN.1
OCTET STRING type.
*/
func (r OctetString) Identifiers() []Identifier {
	return []Identifier{{Class: ClassUniversal, Tag: TagOctetString}}
}

/*
EncodedLen returns the byte length of the receiver's content octets.
*/
func (r OctetString) EncodedLen() int { return len(r) }

/*
Encode appends the receiver's TLV encoding to dst.
*/
func (r OctetString) Encode(dst *Container, opts *Options) error {
	tlv := TLV{Class: ClassUniversal, Tag: r.Tag(), Value: []byte(r), Length: len(r)}
	return dst.WriteTLV(tlv, opts)
}

/*
Decode reads one TLV from src and populates the receiver. Both
primitive and constructed (chunked) encodings are accepted on decode,
per BER; [OctetString.Encode] only ever emits the primitive form.
*/
func (r *OctetString) Decode(src *View, opts *Options) (err error) {
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

	if !tlv.Constructed {
		*r = OctetString(append([]byte(nil), tlv.Value...))
		return
	}

	sub := NewView(tlv.Value)
	var out []byte
	for sub.HasMoreData() {
		var chunk OctetString
		if err = chunk.Decode(sub, opts); err != nil {
			return
		}
		out = append(out, chunk...)
	}
	*r = OctetString(out)
	return
}
