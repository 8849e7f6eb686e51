package asn1kit

import "testing"

func TestNewBitString_notation(t *testing.T) {
	for idx, val := range []string{"'1011'B", "'4B'H"} {
		bs, err := NewBitString(val)
		if err != nil {
			t.Errorf("%s[%d] failed [parse]: %v", t.Name(), idx, err)
			continue
		}

		data, err := Marshal(bs)
		if err != nil {
			t.Errorf("%s[%d] failed [encoding]: %v", t.Name(), idx, err)
			continue
		}

		var bs2 BitString
		if err = Unmarshal(data, &bs2); err != nil {
			t.Errorf("%s[%d] failed [decoding]: %v", t.Name(), idx, err)
			continue
		}

		if bs.Bits() != bs2.Bits() {
			t.Errorf("%s[%d]: roundtrip mismatch want %s got %s", t.Name(), idx, bs.Bits(), bs2.Bits())
		}
	}
}

func TestBitString_setUnset(t *testing.T) {
	bs := BitString{Bytes: []byte{0x00}, BitLength: 8}
	bs.Set(0)
	if !bs.Positive(0) {
		t.Errorf("%s: expected bit 0 to be set", t.Name())
	}
	bs.Unset(0)
	if bs.Positive(0) {
		t.Errorf("%s: expected bit 0 to be unset", t.Name())
	}
}

func TestNamedBits(t *testing.T) {
	nb := NamedBits{
		BitString: BitString{Bytes: []byte{0x00}, BitLength: 8},
		Bits: []NamedBit{
			{Name: "keyCertSign", Bit: 5},
			{Name: "cRLSign", Bit: 6},
		},
	}

	nb.Set("keyCertSign")
	if !nb.Positive("keyCertSign") {
		t.Errorf("%s: expected keyCertSign to be positive", t.Name())
	}
	if nb.Positive("cRLSign") {
		t.Errorf("%s: expected cRLSign to be negative", t.Name())
	}

	names := nb.Names()
	if len(names) != 1 || names[0] != "keyCertSign" {
		t.Errorf("%s: unexpected Names() result: %v", t.Name(), names)
	}

	nb.Unset("keyCertSign")
	if nb.Positive("keyCertSign") {
		t.Errorf("%s: expected keyCertSign cleared", t.Name())
	}
}

func TestNewBitString_badInput(t *testing.T) {
	if _, err := NewBitString(struct{}{}); err == nil {
		t.Errorf("%s: expected error for unsupported input type", t.Name())
	}
}

func TestBitString_Decode_wrongTag(t *testing.T) {
	var bs BitString
	if err := Unmarshal([]byte{0x02, 0x01, 0x00}, &bs); err == nil {
		t.Errorf("%s: expected error for mismatched tag", t.Name())
	}
}
