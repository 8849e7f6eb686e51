package asn1kit

/*
seq.go contains the ASN.1 SEQUENCE composite type, implemented as an
ordered list of named [Component] slots rather than through reflection
over a Go struct.
*/

/*
Component describes a single named slot within a [Sequence] or [Set]:
the [Value] occupying it, and any tag/optionality/default overlay that
applies only to this slot.
*/
type Component struct {
	Name    string
	Value   Value
	Options Options
}

/*
Sequence implements the ASN.1 SEQUENCE type (tag 16). Components are
encoded in schema order; on decode, each non-optional, non-default
component must appear at its schema position, while optional and
default components are recognized by identifier peek and skipped when
absent from the wire.
*/
type Sequence struct {
	Components []Component

	// Extensible allows (and Extensions captures) trailing components
	// present on the wire beyond those named in Components, per the
	// ASN.1 "..." extension marker.
	Extensible bool
	Extensions []TLV
}

/*
Tag returns the integer constant [TagSequence].
*/
func (r Sequence) Tag() int { return TagSequence }

/*
Identifiers returns the single static [Identifier] of the ASN.1
SEQUENCE type.
*/
func (r Sequence) Identifiers() []Identifier {
	return []Identifier{{Class: ClassUniversal, Tag: TagSequence, Constructed: true}}
}

func identifierTagOf(v Value) int {
	if v == nil {
		return -1
	}
	if ids := v.Identifiers(); len(ids) > 0 {
		return ids[0].Tag
	}
	return -1
}

func identifierClassOf(v Value) int {
	if v == nil {
		return ClassUniversal
	}
	if ids := v.Identifiers(); len(ids) > 0 {
		return ids[0].Class
	}
	return ClassUniversal
}

/*
componentWantTag resolves the effective tag/class a component's value
is expected to carry on the wire, honoring the component's own Options
overlay.
*/
func componentWantTag(c *Component) (int, int) {
	o := c.Options
	return effectiveTag(identifierTagOf(c.Value), identifierClassOf(c.Value), &o)
}

/*
defaultEquals reports whether v's encoded form matches def, a
programmatically-supplied default [Value]. Non-Value defaults (parsed
from a string struct tag) never match, since there is no general way to
compare them against an arbitrary [Value] without re-parsing; such
defaults are honored on decode (absence materializes def) but never
suppress encoding.
*/
func defaultEquals(v Value, def any) bool {
	dv, ok := def.(Value)
	if !ok {
		return false
	}

	a := NewContainer()
	defer a.Free()
	if err := v.Encode(a, nil); err != nil {
		return false
	}

	b := NewContainer()
	defer b.Free()
	if err := dv.Encode(b, nil); err != nil {
		return false
	}

	return string(a.Data()) == string(b.Data())
}

func (r Sequence) encodeContent() ([]byte, error) {
	child := NewContainer()
	defer child.Free()

	for i := range r.Components {
		c := &r.Components[i]
		if c.Options.Default != nil && defaultEquals(c.Value, c.Options.Default) {
			continue
		}
		if c.Options.OmitEmpty && c.Value.EncodedLen() == 0 {
			continue
		}

		o := c.Options
		if err := c.Value.Encode(child, &o); err != nil {
			return nil, err
		}
	}

	return append([]byte(nil), child.Data()...), nil
}

/*
EncodedLen returns the number of content octets the receiver's
encoding would occupy.
*/
func (r Sequence) EncodedLen() int {
	content, err := r.encodeContent()
	if err != nil {
		return 0
	}
	return len(content)
}

/*
Encode appends the receiver's TLV encoding to dst.
*/
func (r Sequence) Encode(dst *Container, opts *Options) error {
	content, err := r.encodeContent()
	if err != nil {
		return err
	}

	tag, class := effectiveTag(r.Tag(), ClassUniversal, opts)
	tlv := TLV{Class: class, Tag: tag, Constructed: true, Value: content, Length: len(content)}
	return dst.WriteTLV(tlv, opts)
}

/*
Decode reads one TLV from src and populates the receiver, descending
into its content octets to decode each named [Component] in turn.
*/
func (r *Sequence) Decode(src *View, opts *Options) (err error) {
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

	for i := range r.Components {
		c := &r.Components[i]

		present := inner.HasMoreData()
		if present {
			var peek TLV
			if peek, err = inner.PeekTLV(); err != nil {
				return
			}
			wantTag, wantClass := componentWantTag(c)
			present = peek.Tag == wantTag && peek.Class == wantClass
		}

		if !present {
			if c.Options.Optional {
				continue
			}
			if c.Options.Default != nil {
				if dv, ok := c.Options.Default.(Value); ok {
					c.Value = dv
				}
				continue
			}
			return errorMissingRequiredField
		}

		o := c.Options
		if err = c.Value.Decode(inner, &o); err != nil {
			return
		}
	}

	if inner.HasMoreData() {
		if !r.Extensible {
			return errorExtensionsNotAllowed
		}
		for inner.HasMoreData() {
			var extra TLV
			if extra, err = inner.TLV(); err != nil {
				return
			}
			r.Extensions = append(r.Extensions, extra)
		}
	}

	return
}
