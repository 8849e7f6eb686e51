package asn1kit

import (
	"math/big"
	"testing"
)

func TestNewInteger_roundtrip(t *testing.T) {
	for idx, val := range []any{
		0, 1, -1, 127, -128, 255, 65535, -65536,
		int64(9223372036854775807), int64(-9223372036854775808),
		uint64(18446744073709551615),
		"12345678901234567890123456789",
		big.NewInt(-42),
		[]byte{0x01, 0x00},
	} {
		i, err := NewInteger(val)
		if err != nil {
			t.Errorf("%s[%d] failed [parse]: %v", t.Name(), idx, err)
			continue
		}

		_ = i.String()

		data, err := Marshal(i)
		if err != nil {
			t.Errorf("%s[%d] failed [encoding]: %v", t.Name(), idx, err)
			continue
		}

		var i2 Integer
		if err = Unmarshal(data, &i2); err != nil {
			t.Errorf("%s[%d] failed [decoding]: %v", t.Name(), idx, err)
			continue
		}

		if !i.Eq(i2) {
			t.Errorf("%s[%d]: roundtrip mismatch want %s got %s", t.Name(), idx, i, i2)
		}
	}
}

func TestInteger_comparisons(t *testing.T) {
	a := MustNewInteger(10)
	b := MustNewInteger(20)

	if !a.Lt(b) || !b.Gt(a) {
		t.Errorf("%s: expected a < b", t.Name())
	}
	if !a.Le(a) || !a.Ge(a) {
		t.Errorf("%s: expected a == a under Le/Ge", t.Name())
	}
	if !a.Ne(b) {
		t.Errorf("%s: expected a != b", t.Name())
	}
}

func TestInteger_bigOverflow(t *testing.T) {
	big1 := MustNewInteger("170141183460469231731687303715884105727")
	if !big1.IsBig() {
		t.Errorf("%s: expected big representation for overflowing value", t.Name())
	}
	if big1.Big().Sign() <= 0 {
		t.Errorf("%s: expected positive big value", t.Name())
	}
}

func TestNewInteger_badInput(t *testing.T) {
	if _, err := NewInteger(struct{}{}); err == nil {
		t.Errorf("%s: expected error for unsupported input type", t.Name())
	}
}

func TestInteger_Decode_wrongTag(t *testing.T) {
	var i Integer
	if err := Unmarshal([]byte{0x04, 0x01, 0x00}, &i); err == nil {
		t.Errorf("%s: expected error for mismatched tag", t.Name())
	}
}

func TestMustNewInteger_panics(t *testing.T) {
	defer func() {
		if r := recover(); r == nil {
			t.Errorf("%s: expected panic for unsupported input type", t.Name())
		}
	}()
	MustNewInteger(struct{}{})
}
