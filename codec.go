package asn1kit

/*
codec.go defines the typed-value protocol every ASN.1 value in this
package implements, and the top-level Marshal/Unmarshal entry points
built on top of it.
*/

/*
Value is implemented by every concrete ASN.1 type in this package
(Boolean, Integer, OctetString, Sequence, Choice, and so on). Each
value knows how to measure, encode and decode itself, and can report
the static [Identifier] it carries absent any tag overlay.
*/
type Value interface {
	// EncodedLen returns the number of content octets the value would
	// occupy, not including its own header.
	EncodedLen() int

	// Encode appends the value's TLV encoding (header plus content) to
	// dst, honoring any tag/class overlay present in opts, and returns
	// any error encountered.
	Encode(dst *Container, opts *Options) error

	// Decode reads one TLV from src at its current cursor and populates
	// the receiver, honoring any tag/class overlay present in opts.
	Decode(src *View, opts *Options) error

	// Identifiers reports the [Identifier] values statically associated
	// with the type: a single entry for ordinary values, one entry per
	// alternative for a [Choice].
	Identifiers() []Identifier
}

/*
Marshal encodes v and returns the complete BER-encoded byte sequence.
*/
func Marshal(v Value, opts ...Options) ([]byte, error) {
	debugEnter("Marshal")
	defer debugExit("Marshal")

	var o *Options
	if len(opts) > 0 {
		o = &opts[0]
	}

	c := NewContainer()
	defer c.Free()

	if err := v.Encode(c, o); err != nil {
		return nil, err
	}

	return c.Bytes(), nil
}

/*
Unmarshal decodes a single BER TLV from data into v.
*/
func Unmarshal(data []byte, v Value, opts ...Options) error {
	debugEnter("Unmarshal")
	defer debugExit("Unmarshal")

	var o *Options
	if len(opts) > 0 {
		o = &opts[0]
	}

	view := NewView(data)
	return v.Decode(view, o)
}

/*
identifierMatches reports whether tlv's class/tag pair matches id,
honoring an Options tag/class overlay if present.
*/
func identifierMatches(tlv TLV, id Identifier, opts *Options) bool {
	tag, class := effectiveTag(id.Tag, id.Class, opts)
	return tlv.Tag == tag && tlv.Class == class
}
