package asn1kit

/*
real.go contains all types and methods pertaining to the ASN.1
REAL type.
*/

import (
	"math"
	"math/big"
)

const (
	realPlusInfByte  byte = 0x40
	realMinusInfByte byte = 0x41
	realSignBit      byte = 0x20
)

/*
RealSpecial implements a [Real] flag to denote a special value or
state, such as [RealPlusInfinity].
*/
type RealSpecial int

const (
	RealNormal        RealSpecial = 0
	RealPlusInfinity  RealSpecial = 1
	RealMinusInfinity RealSpecial = -1
)

/*
String returns the string representation of the receiver instance.
*/
func (r RealSpecial) String() string {
	switch r {
	case RealPlusInfinity:
		return "PLUS-INFINITY"
	case RealMinusInfinity:
		return "MINUS-INFINITY"
	}
	return ""
}

/*
Real implements the ASN.1 REAL type (tag 9). If Special is non-zero,
all other fields are ignored; otherwise the value is
Mantissa x Base^Exponent.
*/
type Real struct {
	Special  RealSpecial
	Mantissa Integer
	Base     int
	Exponent int
}

/*
NewRealPlusInfinity returns an instance of [Real] representing
positive infinity.
*/
func NewRealPlusInfinity() Real { return Real{Special: RealPlusInfinity} }

/*
NewRealMinusInfinity returns an instance of [Real] representing
negative infinity.
*/
func NewRealMinusInfinity() Real { return Real{Special: RealMinusInfinity} }

/*
NewReal returns an instance of [Real] alongside an error following an
attempt to marshal a (non-infinity) mantissa, base and exponent
combination. Only base values of 2, 8, 10 and 16 are supported.
*/
func NewReal(mantissa any, base, exponent int, constraints ...Constraint) (r Real, err error) {
	if !validRealBase(base) {
		err = mkerrf("REAL: unsupported base ", itoa(base))
		return
	}

	var i Integer
	if i, err = NewInteger(mantissa); err != nil {
		return
	}

	_r := Real{Mantissa: i, Base: base, Exponent: exponent}
	if len(constraints) > 0 {
		err = ConstraintGroup(constraints).Constrain(_r)
	}

	if err == nil {
		r = _r
	}

	return
}

/*
NewRealFromFloat converts f into an instance of [Real] using the
specified base (2, 8, 10 or 16).
*/
func NewRealFromFloat(f float64, base int) (r Real, err error) {
	var mant *big.Int
	var exp int
	if mant, exp, err = float64Components(f, base); err != nil {
		return
	}
	var i Integer
	if i, err = NewInteger(mant); err != nil {
		return
	}
	r = Real{Mantissa: i, Base: base, Exponent: exp}
	return
}

/*
Big returns the *[big.Float] representation of the receiver instance.
*/
func (r Real) Big() *big.Float {
	switch r.Special {
	case RealPlusInfinity, RealMinusInfinity:
		return new(big.Float).SetFloat64(math.Inf(int(r.Special)))
	}

	result := new(big.Float).SetInt(r.Mantissa.Big())

	absExp := r.Exponent
	if absExp < 0 {
		absExp = -absExp
	}
	baseInt := big.NewInt(int64(r.Base))
	powerInt := new(big.Int).Exp(baseInt, big.NewInt(int64(absExp)), nil)
	factor := new(big.Float).SetInt(powerInt)

	if r.Exponent < 0 {
		one := big.NewFloat(1)
		factor.Quo(one, factor)
	}

	result.Mul(result, factor)
	return result
}

/*
Float returns the numeric value of the receiver as a float64. If r
encodes an infinity, the corresponding math.Inf value is returned.
*/
func (r Real) Float() float64 {
	switch r.Special {
	case RealPlusInfinity:
		return math.Inf(+1)
	case RealMinusInfinity:
		return math.Inf(-1)
	}

	mant64, _ := new(big.Float).SetInt(r.Mantissa.Big()).Float64()
	factor := math.Pow(float64(r.Base), float64(r.Exponent))
	return mant64 * factor
}

/*
String returns the string representation of the receiver instance.
*/
func (r Real) String() string {
	if r.Special != RealNormal {
		return r.Special.String()
	}

	bld := newStrBuilder()
	bld.WriteString("{mantissa ")
	bld.WriteString(r.Mantissa.String())
	bld.WriteString(", base ")
	bld.WriteString(itoa(r.Base))
	bld.WriteString(", exponent ")
	bld.WriteString(itoa(r.Exponent))
	bld.WriteString("}")

	return bld.String()
}

/*
Tag returns the integer constant [TagReal].
*/
func (r Real) Tag() int { return TagReal }

func encodeRealExponent(exp int) []byte {
	if exp == 0 {
		return []byte{0x00}
	}
	negative := exp < 0
	absVal := exp
	if negative {
		absVal = -exp
	}
	var buf []byte
	for absVal > 0 {
		buf = append([]byte{byte(absVal & 0xFF)}, buf...)
		absVal >>= 8
	}
	var bflag byte = 0x00
	if negative {
		carry := byte(1)
		for i := len(buf) - 1; i >= 0; i-- {
			buf[i] = ^buf[i] + carry
			if buf[i] != 0 {
				carry = 0
			}
		}
		bflag = 0xFF
	}
	if buf[0]&0x80 == 0 {
		buf = append([]byte{bflag}, buf...)
	}
	return buf
}

func decodeRealExponent(expBytes []byte) int {
	n := 0
	for _, b := range expBytes {
		n = (n << 8) | int(b)
	}
	if len(expBytes) > 0 && expBytes[0]&0x80 != 0 {
		n -= 1 << (8 * len(expBytes))
	}
	return n
}

func decodeMantissa(mBytes []byte) *big.Int { return newBigInt(0).SetBytes(mBytes) }

func encodeMantissa(b *big.Int) []byte {
	bBytes := b.Bytes()
	if len(bBytes) == 0 {
		return []byte{0}
	}
	return bBytes
}

func validRealBase(base int) bool {
	return base == 2 || base == 8 || base == 10 || base == 16
}

func float64Components(f float64, base int) (mant *big.Int, exp int, err error) {
	if !validRealBase(base) {
		return nil, 0, mkerrf("REAL: unsupported base ", itoa(base))
	}

	switch {
	case math.IsInf(f, +1):
		return newBigInt(+1), math.MaxInt32, nil
	case math.IsInf(f, -1):
		return newBigInt(-1), math.MaxInt32, nil
	case math.IsNaN(f):
		return newBigInt(0), math.MinInt32, nil
	case f == 0:
		return newBigInt(0), 0, nil
	}

	neg := math.Signbit(f)
	if neg {
		f = -f
	}

	switch base {
	case 2, 8:
		mant, exp = float64Base2or8Components(f, base)
	case 10:
		sci := fmtFloat(f, 'e', -1, 64)
		parts := split(sci, "e")
		mantStr := replaceAll(parts[0], ".", "")
		exp10, _ := atoi(parts[1])
		exp10 -= len(mantStr) - 1

		mant = newBigInt(0)
		mant, _ = mant.SetString(mantStr, 10)
		exp = exp10
	case 16:
		m2, e2 := float64Base2or8Components(f, 2)

		exp16 := e2 / 4
		rem := e2 % 4
		if rem < 0 {
			rem += 4
			exp16--
		}
		if rem != 0 {
			m2 = new(big.Int).Lsh(m2, uint(rem))
		}
		mant, exp = m2, exp16
	}

	if neg {
		mant.Neg(mant)
	}

	return mant, exp, nil
}

func float64Base2or8Components(f float64, base int) (mant *big.Int, exp int) {
	frac, e2 := math.Frexp(f)
	const sigBits = 53
	m := big.NewInt(int64(frac * (1 << sigBits)))
	e2 -= sigBits

	if base == 8 {
		q, r := e2/3, e2%3
		if r < 0 {
			q--
			r += 3
		}
		exp = q
		if r != 0 {
			m.Lsh(m, uint(r))
		}
	} else {
		exp = e2
	}

	if base == 2 {
		tz := m.TrailingZeroBits()
		if tz > 0 {
			m.Rsh(m, tz)
			exp += int(tz)
		}
	} else {
		b8 := big.NewInt(8)
		for new(big.Int).Mod(m, b8).Sign() == 0 {
			m.Div(m, b8)
			exp++
		}
	}
	mant = m

	return
}

func realHeaderToBase(header byte) (base int) {
	switch (header & 0xC0) >> 6 {
	case 3:
		base = 10
	case 2:
		base = 16
	case 1:
		base = 8
	default:
		base = 2
	}
	return
}

func realBaseToHeader(base int) (header byte) {
	switch base {
	case 10:
		header = 0xC0
	case 16:
		header = 0x80
	case 8:
		header = 0x40
	default:
		header = 0x00
	}
	return
}

/*
Identifiers returns the single static [Identifier] of the ASN.1
REAL type.
*/
func (r Real) Identifiers() []Identifier {
	return []Identifier{{Class: ClassUniversal, Tag: TagReal}}
}

func (r Real) encodeContent() ([]byte, error) {
	switch r.Special {
	case RealPlusInfinity:
		return []byte{realPlusInfByte}, nil
	case RealMinusInfinity:
		return []byte{realMinusInfByte}, nil
	}

	if r.Mantissa.Big().Sign() == 0 {
		return nil, nil
	}

	signFlag := byte(0)
	if r.Mantissa.Big().Sign() < 0 {
		signFlag = realSignBit
	}

	baseIndicator := realBaseToHeader(r.Base)
	expBytes := encodeRealExponent(r.Exponent)
	if len(expBytes) > 15 {
		return nil, mkerr("REAL: exponent too long")
	}
	header := 0x80 | baseIndicator | signFlag | byte(len(expBytes))
	mantissaBytes := encodeMantissa(new(big.Int).Abs(r.Mantissa.Big()))

	wire := append([]byte{header}, expBytes...)
	wire = append(wire, mantissaBytes...)
	return wire, nil
}

/*
EncodedLen returns the number of content octets the receiver's
encoding would occupy.
*/
func (r Real) EncodedLen() int {
	content, err := r.encodeContent()
	if err != nil {
		return 0
	}
	return len(content)
}

/*
Encode appends the receiver's TLV encoding to dst.
*/
func (r Real) Encode(dst *Container, opts *Options) error {
	content, err := r.encodeContent()
	if err != nil {
		return err
	}
	tlv := TLV{Class: ClassUniversal, Tag: r.Tag(), Value: content, Length: len(content)}
	return dst.WriteTLV(tlv, opts)
}

/*
Decode reads one TLV from src and populates the receiver.
*/
func (r *Real) Decode(src *View, opts *Options) (err error) {
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

	wire := tlv.Value
	switch len(wire) {
	case 0:
		zero, _ := NewInteger(0)
		*r = Real{Mantissa: zero, Base: 2, Exponent: 0}
	case 1:
		switch wire[0] {
		case realPlusInfByte:
			*r = NewRealPlusInfinity()
		case realMinusInfByte:
			*r = NewRealMinusInfinity()
		default:
			return mkerr("REAL: invalid special value octet")
		}
	default:
		header := wire[0]
		if header&0x80 == 0 {
			return mkerr("REAL: only binary/decimal encoding forms are supported")
		}
		expLen := int(header & 0x0F)
		if 1+expLen >= len(wire) {
			return mkerr("REAL: insufficient data for exponent")
		}

		exp := decodeRealExponent(wire[1 : 1+expLen])
		mantissa := decodeMantissa(wire[1+expLen:])
		if header&realSignBit != 0 {
			mantissa.Neg(mantissa)
		}

		intMant, ierr := NewInteger(mantissa)
		if ierr != nil {
			return ierr
		}
		*r = Real{Mantissa: intMant, Base: realHeaderToBase(header), Exponent: exp}
	}

	return
}
