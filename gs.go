//go:build !asn1kit_no_dprc

package asn1kit

/*
gs.go contains all types and methods pertaining to the ASN.1
GRAPHIC STRING type.
*/

/*
Deprecated: GraphicString implements the ASN.1 GRAPHIC STRING type
(tag 25). Retained for legacy interoperability.
*/
type GraphicString string

/*
NewGraphicString returns an instance of [GraphicString] alongside an
error following an attempt to marshal x.
*/
func NewGraphicString(x any, constraints ...Constraint) (gs GraphicString, err error) {
	var raw string
	switch tv := x.(type) {
	case string:
		raw = tv
	case []byte:
		raw = string(tv)
	case GraphicString:
		raw = string(tv)
	default:
		err = mkerr("GRAPHIC STRING: unsupported constructor input type")
		return
	}

	for _, c := range raw {
		if c > 0x00FF {
			err = mkerrf("GRAPHIC STRING: invalid character '", string(c), "' (>0x00FF)")
			return
		}
	}

	if len(constraints) > 0 {
		err = ConstraintGroup(constraints).Constrain(GraphicString(raw))
	}

	if err == nil {
		gs = GraphicString(raw)
	}

	return
}

/*
Len returns the integer byte length of the receiver instance.
*/
func (r GraphicString) Len() int { return len(r) }

/*
String returns the string representation of the receiver instance.
*/
func (r GraphicString) String() string { return string(r) }

/*
Tag returns the integer constant [TagGraphicString].
*/
func (r GraphicString) Tag() int { return TagGraphicString }

/*
Identifiers returns the single static [Identifier] of the ASN.1
GraphicString type.
*/
func (r GraphicString) Identifiers() []Identifier {
	return []Identifier{{Class: ClassUniversal, Tag: TagGraphicString}}
}

/*
EncodedLen returns the byte length of the receiver's content octets.
*/
func (r GraphicString) EncodedLen() int { return len(r) }

/*
Encode appends the receiver's TLV encoding to dst.
*/
func (r GraphicString) Encode(dst *Container, opts *Options) error {
	return encodeSimpleString(r.Tag(), string(r), dst, opts)
}

/*
Decode reads one TLV from src and populates the receiver.
*/
func (r *GraphicString) Decode(src *View, opts *Options) (err error) {
	var s string
	if s, err = decodeSimpleString(r.Tag(), src, opts); err == nil {
		*r = GraphicString(s)
	}
	return
}
