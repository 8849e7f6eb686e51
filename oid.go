package asn1kit

/*
oid.go contains all types and methods pertaining to the ASN.1
OBJECT IDENTIFIER and RELATIVE-OID types.
*/

import "math/big"

/*
ObjectIdentifier implements an unbounded ASN.1 OBJECT IDENTIFIER
(tag 6) as a slice of arc numbers.
*/
type ObjectIdentifier []Integer

/*
NewObjectIdentifier returns an instance of [ObjectIdentifier] alongside
an error following an attempt to marshal x.

A single string argument is parsed as a dotted arc sequence, e.g.
"1.3.6.1.4.1". Otherwise each argument is treated as one arc and may
be an int, int64, uint64, string, *[math/big.Int] or [Integer].
*/
func NewObjectIdentifier(x ...any) (r ObjectIdentifier, err error) {
	if len(x) == 1 {
		if dot, ok := x[0].(string); ok {
			return newObjectIdentifierStr(dot)
		}
	}

	d := make(ObjectIdentifier, 0, len(x))
	for i := 0; i < len(x) && err == nil; i++ {
		var nf Integer
		switch tv := x[i].(type) {
		case *big.Int, Integer, string, int64, uint64, int:
			nf, err = NewInteger(tv)
		default:
			err = mkerr("OBJECT IDENTIFIER: unsupported arc type")
		}
		if err == nil && nf.Lt(0) {
			err = mkerr("OBJECT IDENTIFIER: arc values must not be negative")
		}
		d = append(d, nf)
	}

	if err == nil {
		r = d
		err = r.validate()
	}

	return
}

func newObjectIdentifierStr(dot string) (r ObjectIdentifier, err error) {
	if !isNumericOID(dot) {
		err = mkerr("OBJECT IDENTIFIER: invalid dotted form " + dot)
		return
	}

	parts := split(dot, `.`)
	d := make(ObjectIdentifier, len(parts))
	for i := 0; i < len(parts) && err == nil; i++ {
		d[i], err = NewInteger(parts[i])
	}

	if err == nil {
		r = d
		err = r.validate()
	}

	return
}

func (r ObjectIdentifier) validate() error {
	if len(r) < 2 {
		return mkerr("OBJECT IDENTIFIER: must have two or more arcs")
	}
	if r[0].Gt(2) || r[0].Lt(0) {
		return mkerr("OBJECT IDENTIFIER: first arc must be 0, 1 or 2")
	}
	if r[0].Lt(2) && r[1].Ge(40) {
		return mkerr("OBJECT IDENTIFIER: second arc exceeds 39 for first arc 0 or 1")
	}
	return nil
}

/*
Tag returns the integer constant [TagOID].
*/
func (r ObjectIdentifier) Tag() int { return TagOID }

/*
String returns the dotted string representation of the receiver.
*/
func (r ObjectIdentifier) String() string {
	x := make([]string, len(r))
	for i := 0; i < len(r); i++ {
		x[i] = r[i].String()
	}
	return join(x, `.`)
}

/*
Len returns the number of arcs held by the receiver.
*/
func (r ObjectIdentifier) Len() int { return len(r) }

/*
Eq returns a Boolean value indicative of an equality match between
the receiver and input [ObjectIdentifier] instances.
*/
func (r ObjectIdentifier) Eq(o ObjectIdentifier) bool {
	if len(r) != len(o) {
		return false
	}
	for i := 0; i < len(r); i++ {
		if !r[i].Eq(o[i]) {
			return false
		}
	}
	return true
}

/*
Identifiers returns the single static [Identifier] of the ASN.1
OBJECT IDENTIFIER type.
*/
func (r ObjectIdentifier) Identifiers() []Identifier {
	return []Identifier{{Class: ClassUniversal, Tag: TagOID}}
}

func (r ObjectIdentifier) encodeArcs() []byte {
	forty := newBigInt(40)
	first := r[0].Big()
	second := r[1].Big()

	combined := newBigInt(0).Mul(first, forty)
	combined.Add(combined, second)
	content := encodeVLQ(combined.Bytes())

	for i := 2; i < len(r); i++ {
		content = append(content, encodeVLQ(r[i].Big().Bytes())...)
	}

	return content
}

/*
EncodedLen returns the number of content octets the receiver's arc
encoding would occupy.
*/
func (r ObjectIdentifier) EncodedLen() int { return len(r.encodeArcs()) }

/*
Encode appends the receiver's TLV encoding to dst.
*/
func (r ObjectIdentifier) Encode(dst *Container, opts *Options) error {
	if len(r) < 2 {
		return mkerr("OBJECT IDENTIFIER: must have two or more arcs")
	}
	content := r.encodeArcs()
	tlv := TLV{Class: ClassUniversal, Tag: r.Tag(), Value: content, Length: len(content)}
	return dst.WriteTLV(tlv, opts)
}

/*
Decode reads one TLV from src and populates the receiver.
*/
func (r *ObjectIdentifier) Decode(src *View, opts *Options) (err error) {
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
	if len(tlv.Value) == 0 {
		return errorTruncatedContent
	}

	arcs, decErr := decodeVLQArcs(tlv.Value)
	if decErr != nil {
		return decErr
	}

	first := arcs[0].Big()
	forty := newBigInt(40)
	eighty := newBigInt(80)

	var farc, sarc *big.Int
	if first.Cmp(eighty) < 0 {
		farc = newBigInt(0).Div(first, forty)
		sarc = newBigInt(0).Mod(first, forty)
	} else {
		farc = newBigInt(2)
		sarc = newBigInt(0).Sub(first, eighty)
	}

	out := make(ObjectIdentifier, 0, len(arcs)+1)
	out = append(out, bigToInteger(farc), bigToInteger(sarc))
	out = append(out, arcs[1:]...)

	*r = out
	return
}

func decodeVLQArcs(data []byte) (arcs []Integer, err error) {
	var i int
	sub := newBigInt(0)
	for i < len(data) {
		for {
			sub.Lsh(sub, 7)
			sub.Add(sub, newBigInt(int64(data[i]&0x7F)))
			if data[i]&0x80 == 0 {
				break
			}
			i++
			if i >= len(data) {
				return nil, mkerr("OBJECT IDENTIFIER: truncated arc")
			}
		}
		i++
		arcs = append(arcs, bigToInteger(sub))
		sub = newBigInt(0)
	}
	return
}

func encodeVLQ(b []byte) []byte {
	n := newBigInt(0).SetBytes(b)
	if n.Sign() == 0 {
		return []byte{0x00}
	}

	var buf [32]byte
	i := len(buf)
	base := newBigInt(128)
	rem := new(big.Int)
	zero := newBigInt(0)

	for n.Cmp(zero) > 0 {
		n.DivMod(n, base, rem)
		i--
		b := byte(rem.Uint64())
		if len(buf)-i > 1 {
			b |= 0x80
		}
		buf[i] = b
	}

	return buf[i:]
}

func isNumericOID(id string) bool {
	if !isValidOIDPrefix(id) {
		return false
	}

	var last rune
	for i, c := range id {
		switch {
		case c == '.':
			if last == c || i == len(id)-1 {
				return false
			}
			last = '.'
		case '0' <= c && c <= '9':
			last = c
		default:
			return false
		}
	}
	return true
}

func isValidOIDPrefix(id string) bool {
	parts := split(id, `.`)
	if len(parts) < 2 {
		return false
	}
	root, err := atoi(parts[0])
	if err != nil || root < 0 || root > 2 {
		return false
	}
	sub, err := atoi(parts[1])
	if err != nil {
		return false
	}
	if root != 2 && !(0 <= sub && sub <= 39) {
		return false
	}
	return true
}

/*
RelativeOID implements the ASN.1 RELATIVE-OID type (tag 13), used when
an arc sequence is meaningful only relative to some base
[ObjectIdentifier].
*/
type RelativeOID []Integer

/*
NewRelativeOID returns an instance of [RelativeOID] alongside an error
following an attempt to marshal x. Accepts the same argument forms as
[NewObjectIdentifier], except the two-arc minimum does not apply.
*/
func NewRelativeOID(x ...any) (r RelativeOID, err error) {
	if len(x) == 1 {
		if dot, ok := x[0].(string); ok {
			parts := split(dot, `.`)
			args := make([]any, len(parts))
			for i, p := range parts {
				args[i] = p
			}
			return NewRelativeOID(args...)
		}
	}

	d := make(RelativeOID, 0, len(x))
	for i := 0; i < len(x) && err == nil; i++ {
		var nf Integer
		switch tv := x[i].(type) {
		case *big.Int, Integer, string, int64, uint64, int:
			nf, err = NewInteger(tv)
		default:
			err = mkerr("RELATIVE-OID: unsupported arc type")
		}
		if err == nil && nf.Lt(0) {
			err = mkerr("RELATIVE-OID: arc values must not be negative")
		}
		d = append(d, nf)
	}

	if err == nil {
		r = d
	}
	return
}

/*
Tag returns the integer constant [TagRelativeOID].
*/
func (r RelativeOID) Tag() int { return TagRelativeOID }

/*
Len returns the number of arcs held by the receiver.
*/
func (r RelativeOID) Len() int { return len(r) }

/*
String returns the dotted string representation of the receiver.
*/
func (r RelativeOID) String() string {
	s := make([]string, len(r))
	for i := 0; i < len(r); i++ {
		s[i] = r[i].String()
	}
	return join(s, `.`)
}

/*
Absolute returns a complete [ObjectIdentifier] by appending the
receiver's arcs to base.
*/
func (r RelativeOID) Absolute(base ObjectIdentifier) ObjectIdentifier {
	abs := make(ObjectIdentifier, len(base)+len(r))
	copy(abs, base)
	copy(abs[len(base):], r)
	return abs
}

/*
Identifiers returns the single static [Identifier] of the ASN.1
RELATIVE-OID type.
*/
func (r RelativeOID) Identifiers() []Identifier {
	return []Identifier{{Class: ClassUniversal, Tag: TagRelativeOID}}
}

func (r RelativeOID) encodeArcs() []byte {
	var content []byte
	for i := 0; i < len(r); i++ {
		content = append(content, encodeVLQ(r[i].Big().Bytes())...)
	}
	return content
}

/*
EncodedLen returns the number of content octets the receiver's arc
encoding would occupy.
*/
func (r RelativeOID) EncodedLen() int { return len(r.encodeArcs()) }

/*
Encode appends the receiver's TLV encoding to dst.
*/
func (r RelativeOID) Encode(dst *Container, opts *Options) error {
	if len(r) < 1 {
		return mkerr("RELATIVE-OID: must have at least one arc")
	}
	content := r.encodeArcs()
	tlv := TLV{Class: ClassUniversal, Tag: r.Tag(), Value: content, Length: len(content)}
	return dst.WriteTLV(tlv, opts)
}

/*
Decode reads one TLV from src and populates the receiver.
*/
func (r *RelativeOID) Decode(src *View, opts *Options) (err error) {
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
	if len(tlv.Value) == 0 {
		return errorTruncatedContent
	}

	arcs, decErr := decodeVLQArcs(tlv.Value)
	if decErr != nil {
		return decErr
	}

	*r = arcs
	return
}
