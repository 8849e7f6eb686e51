package asn1kit

import "testing"

func TestNewReal_roundtrip(t *testing.T) {
	for idx, tc := range []struct {
		mantissa any
		base     int
		exponent int
	}{
		{125, 10, -1},
		{5, 2, 3},
		{7, 8, 2},
		{0x1F, 16, 0},
	} {
		r, err := NewReal(tc.mantissa, tc.base, tc.exponent)
		if err != nil {
			t.Errorf("%s[%d] failed [parse]: %v", t.Name(), idx, err)
			continue
		}

		data, err := Marshal(r)
		if err != nil {
			t.Errorf("%s[%d] failed [encoding]: %v", t.Name(), idx, err)
			continue
		}

		var r2 Real
		if err = Unmarshal(data, &r2); err != nil {
			t.Errorf("%s[%d] failed [decoding]: %v", t.Name(), idx, err)
			continue
		}

		if r.Float() != r2.Float() {
			t.Errorf("%s[%d]: roundtrip mismatch want %v got %v", t.Name(), idx, r.Float(), r2.Float())
		}
	}
}

func TestReal_specialValues(t *testing.T) {
	plus := NewRealPlusInfinity()
	data, err := Marshal(plus)
	if err != nil {
		t.Fatalf("%s failed [encoding +inf]: %v", t.Name(), err)
	}
	var got Real
	if err = Unmarshal(data, &got); err != nil {
		t.Fatalf("%s failed [decoding +inf]: %v", t.Name(), err)
	}
	if got.Special != RealPlusInfinity {
		t.Errorf("%s: expected PLUS-INFINITY, got %s", t.Name(), got.Special)
	}

	minus := NewRealMinusInfinity()
	data, err = Marshal(minus)
	if err != nil {
		t.Fatalf("%s failed [encoding -inf]: %v", t.Name(), err)
	}
	if err = Unmarshal(data, &got); err != nil {
		t.Fatalf("%s failed [decoding -inf]: %v", t.Name(), err)
	}
	if got.Special != RealMinusInfinity {
		t.Errorf("%s: expected MINUS-INFINITY, got %s", t.Name(), got.Special)
	}
}

func TestNewRealFromFloat(t *testing.T) {
	r, err := NewRealFromFloat(3.25, 2)
	if err != nil {
		t.Fatalf("%s failed: %v", t.Name(), err)
	}
	if r.Float() != 3.25 {
		t.Errorf("%s: want 3.25, got %v", t.Name(), r.Float())
	}
}

func TestNewReal_badBase(t *testing.T) {
	if _, err := NewReal(5, 3, 0); err == nil {
		t.Errorf("%s: expected error for unsupported base", t.Name())
	}
}

func TestReal_Decode_wrongTag(t *testing.T) {
	var r Real
	if err := Unmarshal([]byte{0x02, 0x01, 0x00}, &r); err == nil {
		t.Errorf("%s: expected error for mismatched tag", t.Name())
	}
}
