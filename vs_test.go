package asn1kit

import "testing"

func TestNewVisibleString_roundtrip(t *testing.T) {
	vs, err := NewVisibleString("anything printable ~!@#$%")
	if err != nil {
		t.Fatalf("%s failed [parse]: %v", t.Name(), err)
	}

	data, err := Marshal(vs)
	if err != nil {
		t.Fatalf("%s failed [encoding]: %v", t.Name(), err)
	}

	var vs2 VisibleString
	if err = Unmarshal(data, &vs2); err != nil {
		t.Fatalf("%s failed [decoding]: %v", t.Name(), err)
	}

	if vs != vs2 {
		t.Errorf("%s: roundtrip mismatch want %s got %s", t.Name(), vs, vs2)
	}
}

func TestNewVisibleString_badInput(t *testing.T) {
	if _, err := NewVisibleString("has\tcontrol"); err == nil {
		t.Errorf("%s: expected error for control character", t.Name())
	}
	if _, err := NewVisibleString(struct{}{}); err == nil {
		t.Errorf("%s: expected error for unsupported input type", t.Name())
	}
}
