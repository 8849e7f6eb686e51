package asn1kit

/*
null.go contains all types and methods pertaining to the ASN.1
NULL type.
*/

/*
Null implements the ASN.1 NULL type (tag 5). The zero value is the
only meaningful value of this type.
*/
type Null struct{}

/*
Tag returns the integer constant five (5) for [TagNull].
*/
func (r Null) Tag() int { return TagNull }

/*
String returns the literal string "NULL".
*/
func (r Null) String() string { return "NULL" }

/*
NewNull returns an instance of [Null]. The variadic input is ignored
and exists purely for constructor-signature consistency.
*/
func NewNull(_ ...any) (n Null, err error) { return Null{}, nil }

/*
Identifiers returns the single static [Identifier] of the ASN.1 NULL
type.
*/
func (r Null) Identifiers() []Identifier {
	return []Identifier{{Class: ClassUniversal, Tag: TagNull}}
}

/*
EncodedLen returns 0, the fixed content length of an ASN.1 NULL.
*/
func (r Null) EncodedLen() int { return 0 }

/*
Encode appends the receiver's TLV encoding to dst.
*/
func (r Null) Encode(dst *Container, opts *Options) error {
	tlv := TLV{Class: ClassUniversal, Tag: r.Tag(), Length: 0}
	return dst.WriteTLV(tlv, opts)
}

/*
Decode reads one TLV from src and populates the receiver.
*/
func (r *Null) Decode(src *View, opts *Options) (err error) {
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
	if len(tlv.Value) != 0 {
		return errorASN1Expect(0, len(tlv.Value), "Length")
	}

	*r = Null{}
	return
}
