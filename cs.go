package asn1kit

/*
cs.go contains the ASN.1 ObjectDescriptor and CharacterString types
(clause 44.5 of ITU-T Rec. X.680). Unlike the other string types in
this package, CharacterString is not a primitive: it is a SEQUENCE
wrapping a CHOICE of identification mechanisms alongside the encoded
string data, built here on top of [Sequence] and [Choice] rather than
given a hand-rolled layout.

	[UNIVERSAL 29] SEQUENCE {
	  identification CHOICE {
	    syntax        OBJECT IDENTIFIER,
	    fixed         NULL },
	  data-value-descriptor ObjectDescriptor OPTIONAL,
	  string-value  OCTET STRING }
*/

/*
ObjectDescriptor implements the ASN.1 ObjectDescriptor type (tag 7), a
GraphicString-charset value used to give a human-readable label to a
[CharacterString] instance.
*/
type ObjectDescriptor string

/*
NewObjectDescriptor returns an instance of [ObjectDescriptor] alongside
an error following an attempt to marshal x.
*/
func NewObjectDescriptor(x any, constraints ...Constraint) (od ObjectDescriptor, err error) {
	var raw string
	switch tv := x.(type) {
	case string:
		raw = tv
	case []byte:
		raw = string(tv)
	case ObjectDescriptor:
		raw = string(tv)
	default:
		err = mkerr("ObjectDescriptor: unsupported constructor input type")
		return
	}

	for _, c := range raw {
		if c > 0x00FF {
			err = mkerrf("ObjectDescriptor: invalid character '", string(c), "' (>0x00FF)")
			return
		}
	}

	if len(constraints) > 0 {
		err = ConstraintGroup(constraints).Constrain(ObjectDescriptor(raw))
	}

	if err == nil {
		od = ObjectDescriptor(raw)
	}

	return
}

/*
Tag returns the integer constant [TagObjectDescriptor].
*/
func (r ObjectDescriptor) Tag() int { return TagObjectDescriptor }

/*
Len returns the integer byte length of the receiver instance.
*/
func (r ObjectDescriptor) Len() int { return len(r) }

/*
String returns the string representation of the receiver instance.
*/
func (r ObjectDescriptor) String() string { return string(r) }

/*
Identifiers returns the single static [Identifier] of the ASN.1
ObjectDescriptor type.
*/
func (r ObjectDescriptor) Identifiers() []Identifier {
	return []Identifier{{Class: ClassUniversal, Tag: TagObjectDescriptor}}
}

/*
EncodedLen returns the byte length of the receiver's content octets.
*/
func (r ObjectDescriptor) EncodedLen() int { return len(r) }

/*
Encode appends the receiver's TLV encoding to dst.
*/
func (r ObjectDescriptor) Encode(dst *Container, opts *Options) error {
	return encodeSimpleString(r.Tag(), string(r), dst, opts)
}

/*
Decode reads one TLV from src and populates the receiver.
*/
func (r *ObjectDescriptor) Decode(src *View, opts *Options) (err error) {
	var s string
	if s, err = decodeSimpleString(r.Tag(), src, opts); err == nil {
		*r = ObjectDescriptor(s)
	}
	return
}

/*
CharacterStringSyntax and CharacterStringFixed name the two
identification alternatives [NewCharacterString] registers by default,
matching the reduced identification choice most deployments actually
use ([RFC 4528]-style syntax-only or fixed identification) rather than
the full OSI presentation-layer negotiation alternatives, which are out
of scope for this toolkit.

[RFC 4528]: https://www.rfc-editor.org/rfc/rfc4528
*/
const (
	CharacterStringSyntax = "syntax"
	CharacterStringFixed  = "fixed"
)

/*
CharacterString implements the ASN.1 CharacterString type (tag 29).
*/
type CharacterString struct {
	Identification      Choice
	DataValueDescriptor  ObjectDescriptor
	HasDescriptor        bool
	StringValue          OctetString
}

/*
NewCharacterString returns a [CharacterString] identified by an OBJECT
IDENTIFIER syntax value (if syntax is non-nil) or by the fixed NULL
alternative (if syntax is nil), carrying value as its string-value
content.
*/
func NewCharacterString(value OctetString, syntax *ObjectIdentifier, descriptor ...ObjectDescriptor) (cs CharacterString, err error) {
	cs.StringValue = value
	cs.Identification = NewChoice(
		ChoiceAlternative{Name: CharacterStringSyntax, Value: &ObjectIdentifier{}, Options: idOptions(0)},
		ChoiceAlternative{Name: CharacterStringFixed, Value: &Null{}, Options: idOptions(1)},
	)

	if syntax != nil {
		err = cs.Identification.Set(CharacterStringSyntax, syntax)
	} else {
		null := Null{}
		err = cs.Identification.Set(CharacterStringFixed, &null)
	}
	if err != nil {
		return
	}

	if len(descriptor) > 0 {
		cs.DataValueDescriptor = descriptor[0]
		cs.HasDescriptor = true
	}

	return
}

func idOptions(tag int) (o Options) {
	o.SetTag(tag)
	o.SetClass(ClassContextSpecific)
	return
}

/*
Tag returns the integer constant [TagCharacterString].
*/
func (r CharacterString) Tag() int { return TagCharacterString }

/*
Identifiers returns the single static [Identifier] of the ASN.1
CharacterString type.
*/
func (r CharacterString) Identifiers() []Identifier {
	return []Identifier{{Class: ClassUniversal, Tag: TagCharacterString, Constructed: true}}
}

func (r CharacterString) sequence() Sequence {
	dvd := r.DataValueDescriptor
	return Sequence{Components: []Component{
		{Name: "identification", Value: &r.Identification},
		{Name: "data-value-descriptor", Value: &dvd, Options: Options{Optional: true, OmitEmpty: true}},
		{Name: "string-value", Value: &r.StringValue},
	}}
}

/*
EncodedLen returns the number of content octets the receiver's
encoding would occupy.
*/
func (r CharacterString) EncodedLen() int { return r.sequence().EncodedLen() }

/*
Encode appends the receiver's TLV encoding to dst.
*/
func (r CharacterString) Encode(dst *Container, opts *Options) error {
	return r.sequence().Encode(dst, opts)
}

/*
Decode reads one TLV from src and populates the receiver.
*/
func (r *CharacterString) Decode(src *View, opts *Options) (err error) {
	r.Identification = NewChoice(
		ChoiceAlternative{Name: CharacterStringSyntax, Value: &ObjectIdentifier{}, Options: idOptions(0)},
		ChoiceAlternative{Name: CharacterStringFixed, Value: &Null{}, Options: idOptions(1)},
	)

	var dvd ObjectDescriptor
	seq := Sequence{Components: []Component{
		{Name: "identification", Value: &r.Identification},
		{Name: "data-value-descriptor", Value: &dvd, Options: Options{Optional: true}},
		{Name: "string-value", Value: &r.StringValue},
	}}

	if err = seq.Decode(src, opts); err == nil {
		if dvd != "" {
			r.DataValueDescriptor = dvd
			r.HasDescriptor = true
		}
	}

	return
}
