package asn1kit

/*
seqof.go contains the ASN.1 SEQUENCE OF and SET OF composite types: a
homogeneous, ordered (SequenceOf) or order-insensitive (SetOf) list of
elements of a single element type T.

Both are generic over T (the element's value type) and PT (a pointer
to T satisfying [Value]), since a fresh *T must be constructible on
decode without resorting to reflection:

	var ints SequenceOf[Integer, *Integer]
*/

/*
ValuePtr constrains PT to a pointer-to-T whose method set implements
[Value]. Every primitive and composite type in this package satisfies
this constraint via its *T Decode method (and value-receiver Encode,
promoted automatically).
*/
type ValuePtr[T any] interface {
	*T
	Value
}

/*
SequenceOf implements the ASN.1 SEQUENCE OF type (tag 16, constructed):
zero or more elements of type T, encoded and decoded in wire order.
*/
type SequenceOf[T any, PT ValuePtr[T]] struct {
	Elements []T
}

/*
Tag returns the integer constant [TagSequence].
*/
func (r SequenceOf[T, PT]) Tag() int { return TagSequence }

/*
Identifiers returns the single static [Identifier] of the ASN.1
SEQUENCE OF type.
*/
func (r SequenceOf[T, PT]) Identifiers() []Identifier {
	return []Identifier{{Class: ClassUniversal, Tag: TagSequence, Constructed: true}}
}

func (r SequenceOf[T, PT]) encodeContent() ([]byte, error) {
	child := NewContainer()
	defer child.Free()

	for i := range r.Elements {
		p := PT(&r.Elements[i])
		if err := p.Encode(child, nil); err != nil {
			return nil, err
		}
	}

	return append([]byte(nil), child.Data()...), nil
}

/*
EncodedLen returns the number of content octets the receiver's
encoding would occupy.
*/
func (r SequenceOf[T, PT]) EncodedLen() int {
	content, err := r.encodeContent()
	if err != nil {
		return 0
	}
	return len(content)
}

/*
Encode appends the receiver's TLV encoding to dst.
*/
func (r SequenceOf[T, PT]) Encode(dst *Container, opts *Options) error {
	content, err := r.encodeContent()
	if err != nil {
		return err
	}

	tag, class := effectiveTag(r.Tag(), ClassUniversal, opts)
	tlv := TLV{Class: class, Tag: tag, Constructed: true, Value: content, Length: len(content)}
	return dst.WriteTLV(tlv, opts)
}

/*
Decode reads one TLV from src and populates Elements, appending one
decoded T per child TLV found in its content octets.
*/
func (r *SequenceOf[T, PT]) Decode(src *View, opts *Options) (err error) {
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
		return errorASN1Expect(true, tlv.Constructed, "Compound")
	}

	inner := NewView(tlv.Value)
	r.Elements = nil

	for inner.HasMoreData() {
		var elem T
		p := PT(&elem)
		if err = p.Decode(inner, nil); err != nil {
			return
		}
		r.Elements = append(r.Elements, elem)
	}

	return
}

/*
SetOf implements the ASN.1 SET OF type (tag 17, constructed). It shares
[SequenceOf]'s wire content rule (zero or more elements of a single
type) but, per DER, canonically sorts encoded elements by their own
bytes; decode places no ordering requirement on its input.
*/
type SetOf[T any, PT ValuePtr[T]] struct {
	Elements []T
}

/*
Tag returns the integer constant [TagSet].
*/
func (r SetOf[T, PT]) Tag() int { return TagSet }

/*
Identifiers returns the single static [Identifier] of the ASN.1
SET OF type.
*/
func (r SetOf[T, PT]) Identifiers() []Identifier {
	return []Identifier{{Class: ClassUniversal, Tag: TagSet, Constructed: true}}
}

func (r SetOf[T, PT]) encodeContent() ([]byte, error) {
	parts := make([][]byte, 0, len(r.Elements))

	for i := range r.Elements {
		child := NewContainer()
		p := PT(&r.Elements[i])
		if err := p.Encode(child, nil); err != nil {
			child.Free()
			return nil, err
		}
		parts = append(parts, child.Bytes())
		child.Free()
	}

	sortByteSlices(parts)

	var out []byte
	for _, p := range parts {
		out = append(out, p...)
	}

	return out, nil
}

/*
EncodedLen returns the number of content octets the receiver's
encoding would occupy.
*/
func (r SetOf[T, PT]) EncodedLen() int {
	content, err := r.encodeContent()
	if err != nil {
		return 0
	}
	return len(content)
}

/*
Encode appends the receiver's TLV encoding to dst, with elements in
canonical (sorted) order.
*/
func (r SetOf[T, PT]) Encode(dst *Container, opts *Options) error {
	content, err := r.encodeContent()
	if err != nil {
		return err
	}

	tag, class := effectiveTag(r.Tag(), ClassUniversal, opts)
	tlv := TLV{Class: class, Tag: tag, Constructed: true, Value: content, Length: len(content)}
	return dst.WriteTLV(tlv, opts)
}

/*
Decode reads one TLV from src and populates Elements, appending one
decoded T per child TLV found in its content octets, in wire order.
*/
func (r *SetOf[T, PT]) Decode(src *View, opts *Options) (err error) {
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
		return errorASN1Expect(true, tlv.Constructed, "Compound")
	}

	inner := NewView(tlv.Value)
	r.Elements = nil

	for inner.HasMoreData() {
		var elem T
		p := PT(&elem)
		if err = p.Decode(inner, nil); err != nil {
			return
		}
		r.Elements = append(r.Elements, elem)
	}

	return
}
