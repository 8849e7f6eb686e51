package asn1kit

/*
enum.go contains all types and methods pertaining to the ASN.1
ENUMERATED type.
*/

/*
EnumerationNames implements a map of [Enumerated] string values. This
is not a standard ASN.1 type; it exists purely for convenience when
rendering an ENUMERATED value's symbolic name.
*/
type EnumerationNames map[Enumerated]string

/*
Name scans the receiver instance to determine the string name for the
input [Enumerated] value.
*/
func (r EnumerationNames) Name(e Enumerated) string {
	var n string = "unknown (" + itoa(int(e)) + ")"
	if name, ok := r[e]; ok {
		n = name
	}
	return n
}

/*
Enumerated implements the ASN.1 ENUMERATED type (tag 10).
*/
type Enumerated int

/*
Tag returns the integer constant [TagEnum].
*/
func (r Enumerated) Tag() int { return TagEnum }

/*
String returns the string representation of the receiver instance.
*/
func (r Enumerated) String() string { return itoa(int(r)) }

/*
Int returns the integer representation of the receiver instance.
*/
func (r Enumerated) Int() int { return int(r) }

/*
NewEnumerated returns an instance of [Enumerated] alongside an error
following an attempt to marshal x.
*/
func NewEnumerated(x any, constraints ...Constraint) (enum Enumerated, err error) {
	var e int
	switch tv := x.(type) {
	case int:
		e = tv
	case Enumerated:
		e = int(tv)
	default:
		err = mkerr("Invalid type for ASN.1 ENUMERATED")
	}

	if len(constraints) > 0 && err == nil {
		err = ConstraintGroup(constraints).Constrain(Enumerated(e))
	}

	if err == nil {
		enum = Enumerated(e)
	}

	return
}

/*
Identifiers returns the single static [Identifier] of the ASN.1
ENUMERATED type.
*/
func (r Enumerated) Identifiers() []Identifier {
	return []Identifier{{Class: ClassUniversal, Tag: TagEnum}}
}

/*
EncodedLen returns the number of content octets the receiver's
two's-complement encoding would occupy.
*/
func (r Enumerated) EncodedLen() int { return len(encodeNativeInt(int(r))) }

/*
Encode appends the receiver's TLV encoding to dst.
*/
func (r Enumerated) Encode(dst *Container, opts *Options) error {
	wire := encodeNativeInt(int(r))
	tlv := TLV{Class: ClassUniversal, Tag: r.Tag(), Value: wire, Length: len(wire)}
	return dst.WriteTLV(tlv, opts)
}

/*
Decode reads one TLV from src and populates the receiver.
*/
func (r *Enumerated) Decode(src *View, opts *Options) (err error) {
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

	var dec int
	if dec, err = decodeNativeInt(tlv.Value); err == nil {
		*r = Enumerated(dec)
	}

	return
}
