package asn1kit

/*
int.go contains all types and methods pertaining to the ASN.1
INTEGER type.
*/

import (
	"math"
	"math/big"
)

/*
Integer implements the unbounded ASN.1 INTEGER type (tag 2). Note
that *[big.Int] is used internally ONLY if the number overflows int64.

A zero instance of this type equates to int64(0).
*/
type Integer struct {
	big    bool
	native int64
	bigInt *big.Int
}

var errorNegativeInteger = mkerr("INTEGER: value must not be negative")

/*
NewInteger returns an instance of [Integer] alongside an error
following an attempt to marshal x as an ASN.1 INTEGER.

Input types may be int, int32, int64, uint64, string, []byte or
*[math/big.Int]. In the case of []byte, the value is expected to
be the Big Endian representation of the desired integer.

Any signed magnitude is permitted. Effective integers which overflow
int64 are stored as *[big.Int].
*/
func NewInteger[T any](x T, constraints ...Constraint) (i Integer, err error) {
	if i, err = assertInteger(x); err == nil {
		if len(constraints) > 0 {
			err = ConstraintGroup(constraints).Constrain(i)
		}
	}

	return
}

/*
MustNewInteger returns an instance of [Integer] and panics if
[NewInteger] returned an error during processing of x.
*/
func MustNewInteger[T any](x T, constraints ...Constraint) Integer {
	i, err := NewInteger(x, constraints...)
	if err != nil {
		panic(err)
	}
	return i
}

func assertInteger[T any](v T) (i Integer, err error) {
	switch value := any(v).(type) {
	case int:
		i = Integer{native: int64(value)}
	case int64:
		i = Integer{native: value}
	case uint64:
		i = uint64ToInteger(value)
	case []byte:
		i = bEToInteger(value)
	case *big.Int:
		i = bigToInteger(value)
	case int32:
		i = Integer{native: int64(value)}
	case string:
		i, err = strToInteger(value)
	case Integer:
		i = value
	default:
		err = mkerrf("INTEGER: unsupported constructor input type")
	}
	return
}

/*
Tag returns the integer constant [TagInteger].
*/
func (_ Integer) Tag() int { return TagInteger }

/*
String returns the string representation of the receiver instance.
*/
func (r Integer) String() string {
	var s string
	if r.big {
		s = r.bigInt.String()
	} else {
		s = fmtInt(r.native, 10)
	}

	return s
}

/*
IsBig returns a Boolean value indicative of the underlying value
overflowing int64.
*/
func (r Integer) IsBig() bool { return r.big }

/*
Native returns the underlying int64 value found within the receiver
instance. This method should not be used unless [Integer.IsBig]
returns false beforehand.
*/
func (r Integer) Native() int64 { return r.native }

/*
Big returns the *[big.Int] form of the receiver instance.
*/
func (r Integer) Big() (i *big.Int) {
	if r.big {
		i = r.bigInt
	} else {
		i = newBigInt(r.native)
	}

	return
}

/*
Bytes returns the receiver instance expressed as Big Endian bytes.
*/
func (r Integer) Bytes() []byte {
	var buf []byte
	if r.big {
		buf = r.bigInt.Bytes()
	} else {
		buf = int64ToBE(r.native)
	}

	return buf
}

/*
Len returns the byte length of the receiver's two's-complement
encoding, satisfying [Lengthy].
*/
func (r Integer) Len() int { return len(encodeIntegerContent(r.Big())) }

func (r Integer) Eq(x any) bool { return r.cmpAny(x) == 0 }
func (r Integer) Ne(x any) bool { return r.cmpAny(x) != 0 }
func (r Integer) Gt(x any) bool { return r.cmpAny(x) > 0 }
func (r Integer) Ge(x any) bool { return r.cmpAny(x) >= 0 }
func (r Integer) Lt(x any) bool { return r.cmpAny(x) < 0 }
func (r Integer) Le(x any) bool { return r.cmpAny(x) <= 0 }

func (r Integer) cmpAny(x any) (result int) {
	switch t := x.(type) {
	case Integer:
		result = cmpInteger(r, t)
	case int:
		result = r.cmpInt64(int64(t))
	case int32:
		result = r.cmpInt64(int64(t))
	case int64:
		result = r.cmpInt64(t)
	case uint64:
		result = r.cmpUint64(t)
	case []byte:
		result = cmpInteger(r, bEToInteger(t))
	case *big.Int:
		result = r.cmpBig(t)
	default:
		panic(mkerrf("INTEGER: unsupported type for comparison"))
	}

	return
}

func cmpInteger(a, b Integer) int {
	if !a.big && !b.big {
		switch {
		case a.native < b.native:
			return -1
		case a.native > b.native:
			return +1
		default:
			return 0
		}
	}
	return a.Big().Cmp(b.Big())
}

func (r Integer) cmpInt64(v int64) int {
	if !r.big {
		switch {
		case r.native < v:
			return -1
		case r.native > v:
			return +1
		default:
			return 0
		}
	}
	return r.Big().Cmp(big.NewInt(v))
}

func (r Integer) cmpUint64(u uint64) int {
	if !r.big && u <= math.MaxInt64 {
		return r.cmpInt64(int64(u))
	}
	b := newBigInt(0).SetUint64(u)
	return r.Big().Cmp(b)
}

func (r Integer) cmpBig(b *big.Int) int {
	if !r.big {
		return big.NewInt(r.native).Cmp(b)
	}
	return r.bigInt.Cmp(b)
}

func bEToInt64(b []byte) int64 {
	n := len(b)
	if n > 8 {
		panic("bEToInt64: buffer length must be <= 8")
	}

	pad := zeroByte
	if n > 0 && b[0]&0x80 != 0 {
		pad = 0xFF
	}

	var u uint64
	for i := 0; i < 8-n; i++ {
		u = (u << 8) | uint64(pad)
	}
	for _, by := range b {
		u = (u << 8) | uint64(by)
	}
	return int64(u)
}

func int64ToBE(n int64) []byte {
	b := make([]byte, 8)
	u := uint64(n)
	for i := 7; i >= 0; i-- {
		b[i] = byte(u & 0xFF)
		u >>= 8
	}
	return b
}

func bEFitsInt64(b []byte) bool {
	n := len(b)
	if n <= 8 {
		return true
	}
	high := b[n-8]
	var ext byte = zeroByte
	if high&0x80 != 0 {
		ext = 0xFF
	}
	for i := 0; i < n-8; i++ {
		if b[i] != ext {
			return false
		}
	}
	return true
}

func bEToInteger(b []byte) (i Integer) {
	if i.big = !bEFitsInt64(b); i.big {
		i.bigInt = newBigInt(0).SetBytes(b)
	} else {
		i.native = bEToInt64(b)
	}

	return
}

func strToInteger(num string) (i Integer, err error) {
	if _i, ok := newBigInt(0).SetString(num, 10); !ok {
		err = mkerrf("INTEGER: invalid string value ", num)
	} else if _i.IsInt64() {
		i = Integer{native: _i.Int64()}
	} else {
		i = Integer{big: true, bigInt: _i}
	}

	return
}

func bigToInteger(num *big.Int) (i Integer) {
	if i.big = !num.IsInt64(); i.big {
		i.bigInt = num
	} else {
		i.native = num.Int64()
	}

	return
}

func uint64ToInteger(num uint64) (i Integer) {
	if i.big = num > uint64(math.MaxInt64); i.big {
		i.bigInt = newBigInt(0).SetUint64(num)
	} else {
		i.native = int64(num)
	}

	return
}

func decodeIntegerContent(encoded []byte) (val *big.Int) {
	val = newBigInt(0)
	val.SetBytes(encoded)
	if len(encoded) > 0 && encoded[0]&0x80 != 0 {
		bitLen := uint(len(encoded) * 8)
		twoPow := newBigInt(0).Lsh(newBigInt(1), bitLen)
		val.Sub(val, twoPow)
	}

	return
}

func encodeIntegerContent(i *big.Int) (data []byte) {
	if i.Sign() >= 0 {
		b := i.Bytes()
		if len(b) == 0 {
			b = []byte{zeroByte}
		}
		if b[0]&0x80 != 0 {
			b = append([]byte{zeroByte}, b...)
		}
		data = b
	} else {
		abs := newBigInt(0).Abs(i)
		n := (abs.BitLen() + 7) / 8

		min := newBigInt(0).Lsh(newBigInt(1), uint(8*n-1))
		min.Neg(min)
		if i.Cmp(min) < 0 {
			n++
		}
		mod := newBigInt(0).Lsh(newBigInt(1), uint(8*n))
		value := newBigInt(0).Add(mod, i)
		data = value.Bytes()
	}

	return
}

/*
encodeNativeInt returns the minimal two's complement encoding for an
int value.
*/
func encodeNativeInt(value int) []byte {
	if value == 0 {
		return []byte{zeroByte}
	}

	v := int64(value)
	negative := value < 0
	var raw []byte

	for {
		b := byte(v & 0xff)
		raw = append([]byte{b}, raw...)
		v >>= 8

		if !negative {
			if v == 0 && (b&0x80) == 0 {
				break
			}
		} else {
			if v == -1 && (b&0x80) == 0x80 {
				break
			}
		}
	}

	return raw
}

/*
decodeNativeInt decodes a BER two's-complement INTEGER encoding into
an int. Callers must ensure the value fits.
*/
func decodeNativeInt(data []byte) (int, error) {
	if len(data) == 0 {
		return 0, mkerrf("INTEGER: zero bytes for decoding")
	}

	negative := data[0]&indefByte != 0

	var value int64 = 0
	for _, b := range data {
		value = (value << 8) | int64(b)
	}

	nBits := len(data) * 8
	if negative && nBits < 64 {
		shift := 64 - nBits
		value = (value << shift) >> shift
	}

	return int(value), nil
}

/*
Identifiers returns the single static [Identifier] of the ASN.1
INTEGER type.
*/
func (r Integer) Identifiers() []Identifier {
	return []Identifier{{Class: ClassUniversal, Tag: TagInteger}}
}

/*
EncodedLen returns the number of content octets the receiver's
two's-complement encoding would occupy.
*/
func (r Integer) EncodedLen() int { return len(encodeIntegerContent(r.Big())) }

/*
Encode appends the receiver's TLV encoding to dst.
*/
func (r Integer) Encode(dst *Container, opts *Options) error {
	wire := encodeIntegerContent(r.Big())
	tlv := TLV{Class: ClassUniversal, Tag: r.Tag(), Value: wire, Length: len(wire)}
	return dst.WriteTLV(tlv, opts)
}

/*
Decode reads one TLV from src and populates the receiver.
*/
func (r *Integer) Decode(src *View, opts *Options) (err error) {
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

	bi := decodeIntegerContent(tlv.Value)
	*r = bigToInteger(bi)
	return
}
