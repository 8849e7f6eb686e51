package asn1kit

/*
set.go contains the ASN.1 SET composite type. Unlike [Sequence], member
order on the wire carries no meaning: decode binds each child TLV to
its named [Component] by identifier rather than by position, and DER
encode canonically sorts the encoded members by their own bytes.
*/

import (
	"bytes"
	"slices"
)

/*
Set implements the ASN.1 SET type (tag 17). On encode, each member is
serialized independently and the resulting byte slices are sorted into
canonical (ascending) order per DER before concatenation. On decode,
members may appear in any order; each member binds to the first
not-yet-matched component wanting its identifier, and a member for
which every such component is already matched fails as a duplicate.
*/
type Set struct {
	Components []Component

	Extensible bool
	Extensions []TLV
}

/*
sortByteSlices canonically orders a SET's (or SET OF's) encoded
members ascending by their own bytes, per DER.
*/
func sortByteSlices(parts [][]byte) {
	slices.SortFunc(parts, func(a, b []byte) int { return bytes.Compare(a, b) })
}

/*
Tag returns the integer constant [TagSet].
*/
func (r Set) Tag() int { return TagSet }

/*
Identifiers returns the single static [Identifier] of the ASN.1
SET type.
*/
func (r Set) Identifiers() []Identifier {
	return []Identifier{{Class: ClassUniversal, Tag: TagSet, Constructed: true}}
}

func (r Set) encodeContent() ([]byte, error) {
	var parts [][]byte

	for i := range r.Components {
		c := &r.Components[i]
		if c.Options.Default != nil && defaultEquals(c.Value, c.Options.Default) {
			continue
		}
		if c.Options.OmitEmpty && c.Value.EncodedLen() == 0 {
			continue
		}

		child := NewContainer()
		o := c.Options
		if err := c.Value.Encode(child, &o); err != nil {
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
func (r Set) EncodedLen() int {
	content, err := r.encodeContent()
	if err != nil {
		return 0
	}
	return len(content)
}

/*
Encode appends the receiver's TLV encoding to dst.
*/
func (r Set) Encode(dst *Container, opts *Options) error {
	content, err := r.encodeContent()
	if err != nil {
		return err
	}

	tag, class := effectiveTag(r.Tag(), ClassUniversal, opts)
	tlv := TLV{Class: class, Tag: tag, Constructed: true, Value: content, Length: len(content)}
	return dst.WriteTLV(tlv, opts)
}

/*
Decode reads one TLV from src and populates the receiver, binding each
child TLV to its named [Component] by identifier regardless of wire
order.
*/
func (r *Set) Decode(src *View, opts *Options) (err error) {
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
	matched := make([]bool, len(r.Components))

	for inner.HasMoreData() {
		var peek TLV
		if peek, err = inner.PeekTLV(); err != nil {
			return
		}

		idx, dup := -1, false
		for i := range r.Components {
			c := &r.Components[i]
			wantTag, wantClass := componentWantTag(c)
			if peek.Tag == wantTag && peek.Class == wantClass {
				if matched[i] {
					dup = true
					continue
				}
				idx, dup = i, false
				break
			}
		}

		if dup {
			return errorDuplicateSetMember
		}

		if idx < 0 {
			if !r.Extensible {
				return errorExtensionsNotAllowed
			}
			var extra TLV
			if extra, err = inner.TLV(); err != nil {
				return
			}
			r.Extensions = append(r.Extensions, extra)
			continue
		}

		c := &r.Components[idx]
		o := c.Options
		if err = c.Value.Decode(inner, &o); err != nil {
			return
		}
		matched[idx] = true
	}

	for i, m := range matched {
		if m {
			continue
		}
		c := &r.Components[i]
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

	return
}
