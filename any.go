package asn1kit

/*
any.go contains the ASN.1 ANY type: a value carrying raw content
octets alongside whatever identifier accompanied them on the wire (or
was supplied by a caller assembling one programmatically), rather than
a statically-known one.

Any's identifier is "absent until known": a freshly zero-valued Any
carries no identifier at all (a nil *Identifier), distinct from an
identifier with tag 0. It gains one either from [Any.Decode] reading a
TLV off the wire, or from [Any.From] capturing a concrete [Value]'s own
identifier.
*/
type Any struct {
	id      *Identifier
	Content []byte
}

/*
NewAny returns an [Any] pre-populated with id and content.
*/
func NewAny(id Identifier, content []byte) Any {
	idc := id
	return Any{id: &idc, Content: append([]byte(nil), content...)}
}

/*
HasIdentifier reports whether the receiver has captured an identifier,
either via decode or via [Any.From].
*/
func (r Any) HasIdentifier() bool { return r.id != nil }

/*
Identifier returns the receiver's captured [Identifier] and true, or a
zero value and false if none has been captured yet.
*/
func (r Any) Identifier() (Identifier, bool) {
	if r.id == nil {
		return Identifier{}, false
	}
	return *r.id, true
}

/*
Identifiers returns the receiver's captured identifier as a
single-element slice, or nil if none has been captured.
*/
func (r Any) Identifiers() []Identifier {
	if r.id == nil {
		return nil
	}
	return []Identifier{*r.id}
}

/*
From captures v's own identifier and encoded content octets into the
receiver, discarding any identifier/content previously held.
*/
func (r *Any) From(v Value) error {
	c := NewContainer()
	defer c.Free()

	if err := v.Encode(c, nil); err != nil {
		return err
	}

	view := NewView(c.Data())
	tlv, err := view.TLV()
	if err != nil {
		return err
	}

	id := Identifier{Class: tlv.Class, Tag: tlv.Tag, Constructed: tlv.Constructed}
	r.id = &id
	r.Content = append([]byte(nil), tlv.Value...)
	return nil
}

/*
As decodes the receiver's captured content into v, reconstructing the
original TLV from the captured identifier. An error is returned if the
receiver has no identifier captured.
*/
func (r Any) As(v Value) error {
	if r.id == nil {
		return mkerr("ANY: no identifier captured")
	}

	c := NewContainer()
	defer c.Free()

	tlv := TLV{Class: r.id.Class, Tag: r.id.Tag, Constructed: r.id.Constructed,
		Value: r.Content, Length: len(r.Content)}
	if err := c.WriteTLV(tlv, nil); err != nil {
		return err
	}

	return v.Decode(c.View(), nil)
}

/*
EncodedLen returns the byte length of the receiver's captured content
octets.
*/
func (r Any) EncodedLen() int { return len(r.Content) }

/*
Encode appends the receiver's TLV encoding to dst, using its captured
identifier (optionally overridden by opts). An error is returned if no
identifier has been captured.
*/
func (r Any) Encode(dst *Container, opts *Options) error {
	if r.id == nil {
		return mkerr("ANY: no identifier to encode")
	}

	tag, class := effectiveTag(r.id.Tag, r.id.Class, opts)
	tlv := TLV{Class: class, Tag: tag, Constructed: r.id.Constructed,
		Value: r.Content, Length: len(r.Content)}
	return dst.WriteTLV(tlv, nil)
}

/*
Decode reads one TLV from src, unconditionally accepting whatever
identifier it carries, and captures both the identifier and content
octets into the receiver.
*/
func (r *Any) Decode(src *View, opts *Options) (err error) {
	var tlv TLV
	if tlv, err = src.TLV(); err != nil {
		return
	}

	id := Identifier{Class: tlv.Class, Tag: tlv.Tag, Constructed: tlv.Constructed}
	r.id = &id
	r.Content = append([]byte(nil), tlv.Value...)
	return
}
