package asn1kit

/*
optional.go contains the generic Optional[T] and Default[T] wrappers:
standalone, strongly-typed carriers of the OPTIONAL and DEFAULT
semantic modifiers for callers assembling a [Value] outside of a
[Sequence]/[Set] [Component] list (which instead carries these via
[Options].Optional/.Default directly).
*/

/*
Optional implements a value of type T that may be altogether absent on
the wire. Present reports whether Value holds a decoded instance (or
was explicitly populated by the caller before encoding).
*/
type Optional[T any, PT ValuePtr[T]] struct {
	Value   T
	Present bool
}

/*
Identifiers returns the single static [Identifier] of T.
*/
func (r Optional[T, PT]) Identifiers() []Identifier {
	var v T
	return PT(&v).Identifiers()
}

/*
EncodedLen returns zero if the receiver is absent, otherwise the
content length T itself would occupy.
*/
func (r Optional[T, PT]) EncodedLen() int {
	if !r.Present {
		return 0
	}
	v := r.Value
	return PT(&v).EncodedLen()
}

/*
Encode appends T's TLV encoding to dst if present; absence emits no
bytes at all.
*/
func (r Optional[T, PT]) Encode(dst *Container, opts *Options) error {
	if !r.Present {
		return nil
	}
	v := r.Value
	return PT(&v).Encode(dst, opts)
}

/*
Decode peeks the next TLV's identifier; if it fails to match T's own
identifier (honoring opts), the receiver is left absent and no bytes
are consumed. Otherwise T is decoded normally.
*/
func (r *Optional[T, PT]) Decode(src *View, opts *Options) (err error) {
	if !src.HasMoreData() {
		r.Present = false
		return nil
	}

	var peek TLV
	if peek, err = src.PeekTLV(); err != nil {
		return
	}

	var probe T
	wantTag, wantClass := effectiveTag(identifierTagOf(Value(PT(&probe))), identifierClassOf(Value(PT(&probe))), opts)
	if peek.Tag != wantTag || peek.Class != wantClass {
		r.Present = false
		return nil
	}

	var v T
	if err = PT(&v).Decode(src, opts); err != nil {
		return
	}
	r.Value = v
	r.Present = true
	return nil
}

/*
Default implements a value of type T carrying a schema-supplied
default: absence on the wire materializes Fallback on decode, and
encoding a value equal to Fallback emits no bytes, per §3's Default
absence rule.
*/
type Default[T any, PT ValuePtr[T]] struct {
	Value    T
	Fallback T
	Present  bool
}

/*
Identifiers returns the single static [Identifier] of T.
*/
func (r Default[T, PT]) Identifiers() []Identifier {
	var v T
	return PT(&v).Identifiers()
}

/*
EncodedLen returns zero if the receiver is absent or equal to
Fallback, otherwise the content length the held value would occupy.
*/
func (r Default[T, PT]) EncodedLen() int {
	if !r.Present {
		return 0
	}
	v, d := r.Value, r.Fallback
	if defaultEquals(Value(PT(&v)), Value(PT(&d))) {
		return 0
	}
	return PT(&v).EncodedLen()
}

/*
Encode appends the held value's TLV encoding to dst, unless it is
absent or equal to Fallback, in which case no bytes are emitted.
*/
func (r Default[T, PT]) Encode(dst *Container, opts *Options) error {
	if !r.Present {
		return nil
	}
	v, d := r.Value, r.Fallback
	if defaultEquals(Value(PT(&v)), Value(PT(&d))) {
		return nil
	}
	return PT(&v).Encode(dst, opts)
}

/*
Decode peeks the next TLV's identifier; on a mismatch, Fallback is
materialized into Value and the receiver reports absent (no bytes
consumed). Otherwise T is decoded normally and reported present.
*/
func (r *Default[T, PT]) Decode(src *View, opts *Options) (err error) {
	present := src.HasMoreData()

	if present {
		var peek TLV
		if peek, err = src.PeekTLV(); err != nil {
			return
		}
		var probe T
		wantTag, wantClass := effectiveTag(identifierTagOf(Value(PT(&probe))), identifierClassOf(Value(PT(&probe))), opts)
		present = peek.Tag == wantTag && peek.Class == wantClass
	}

	if !present {
		r.Value = r.Fallback
		r.Present = false
		return nil
	}

	var v T
	if err = PT(&v).Decode(src, opts); err != nil {
		return
	}
	r.Value = v
	r.Present = true
	return nil
}
