package asn1kit

/*
choice.go contains the ASN.1 CHOICE type: a value holding exactly one
of a fixed set of named alternatives, selected at decode time by
inspecting the identifier of the next TLV on the wire.
*/

/*
ChoiceAlternative names one admissible member of a [Choice], pairing
the [Value] occupying that slot with any tag overlay the alternative
carries (e.g. an IMPLICIT context tag distinguishing it from sibling
alternatives of the same underlying type).
*/
type ChoiceAlternative struct {
	Name    string
	Value   Value
	Options Options
}

/*
Choice implements the ASN.1 CHOICE type. Exactly one of Alternatives is
"selected" at any time, tracked by the Chosen index (-1 when none has
been chosen). The receiver carries no intrinsic tag of its own: its
derived identifier is the union of every alternative's own identifier,
unless an outer explicit tag is supplied via [Options] at the point of
use, per §4.9's ChoiceId composition.
*/
type Choice struct {
	Alternatives []ChoiceAlternative
	Chosen       int
}

/*
NewChoice returns a [Choice] with Chosen set to -1 and alts registered
as its admissible alternatives.
*/
func NewChoice(alts ...ChoiceAlternative) Choice {
	return Choice{Alternatives: alts, Chosen: -1}
}

/*
IsZero returns a Boolean value indicative of no alternative having
been selected.
*/
func (r Choice) IsZero() bool { return r.Chosen < 0 || r.Chosen >= len(r.Alternatives) }

/*
Selected returns the currently-chosen [ChoiceAlternative] and true, or
a zero value and false if none has been selected.
*/
func (r Choice) Selected() (ChoiceAlternative, bool) {
	if r.IsZero() {
		return ChoiceAlternative{}, false
	}
	return r.Alternatives[r.Chosen], true
}

/*
Set assigns v to the alternative registered under name, making it the
selected member of the receiver. An error is returned if no
alternative by that name was registered.
*/
func (r *Choice) Set(name string, v Value) error {
	for i := range r.Alternatives {
		if r.Alternatives[i].Name == name {
			r.Alternatives[i].Value = v
			r.Chosen = i
			return nil
		}
	}
	return errorNoChoiceMatched(name)
}

func altWantTag(a *ChoiceAlternative) (int, int) {
	o := a.Options
	return effectiveTag(identifierTagOf(a.Value), identifierClassOf(a.Value), &o)
}

/*
Identifiers returns one [Identifier] per registered alternative: the
union a decoder must admit when scanning for this CHOICE, per the
ChoiceId composition of §3.1.
*/
func (r Choice) Identifiers() []Identifier {
	ids := make([]Identifier, 0, len(r.Alternatives))
	for i := range r.Alternatives {
		a := &r.Alternatives[i]
		tag, class := altWantTag(a)
		ids = append(ids, Identifier{Class: class, Tag: tag, Constructed: a.Options.Explicit})
	}
	return ids
}

/*
EncodedLen returns the number of content octets the currently-selected
alternative's encoding would occupy. A CHOICE with nothing selected
reports zero.
*/
func (r Choice) EncodedLen() int {
	alt, ok := r.Selected()
	if !ok {
		return 0
	}
	return alt.Value.EncodedLen()
}

/*
Encode appends the selected alternative's TLV encoding to dst. If opts
carries an explicit outer tag, the alternative's encoding is wrapped in
a constructed TLV bearing that tag; otherwise the alternative's own
identifier is written transparently.
*/
func (r Choice) Encode(dst *Container, opts *Options) error {
	alt, ok := r.Selected()
	if !ok {
		return errorNilInput
	}

	if opts != nil && opts.HasTag() {
		inner := NewContainer()
		defer inner.Free()

		o := alt.Options
		if err := alt.Value.Encode(inner, &o); err != nil {
			return err
		}

		tlv := TLV{Class: opts.Class(), Tag: opts.Tag(), Constructed: true,
			Value: inner.Data(), Length: inner.Len()}
		return dst.WriteTLV(tlv, nil)
	}

	o := alt.Options
	return alt.Value.Encode(dst, &o)
}

/*
Decode reads one TLV from src and, by matching its identifier against
every registered alternative, selects and populates the corresponding
member of the receiver. If opts carries an explicit outer tag, that
wrapper is unwrapped first and the alternative is matched against its
content instead.
*/
func (r *Choice) Decode(src *View, opts *Options) (err error) {
	target := src
	if opts != nil && opts.HasTag() {
		var tlv TLV
		if tlv, err = src.TLV(); err != nil {
			return
		}
		if tlv.Class != opts.Class() || tlv.Tag != opts.Tag() {
			return errorASN1Expect(opts.Tag(), tlv.Tag, "Tag")
		}
		target = NewView(tlv.Value)
	}

	var peek TLV
	if peek, err = target.PeekTLV(); err != nil {
		return
	}

	for i := range r.Alternatives {
		a := &r.Alternatives[i]
		wantTag, wantClass := altWantTag(a)
		if peek.Tag == wantTag && peek.Class == wantClass {
			o := a.Options
			if err = a.Value.Decode(target, &o); err != nil {
				return
			}
			r.Chosen = i
			return nil
		}
	}

	return errorUnknownChoiceTag
}
