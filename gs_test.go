//go:build !asn1kit_no_dprc

package asn1kit

import "testing"

func TestNewGraphicString_roundtrip(t *testing.T) {
	gs, err := NewGraphicString("Gräphic String")
	if err != nil {
		t.Fatalf("%s failed [parse]: %v", t.Name(), err)
	}

	data, err := Marshal(gs)
	if err != nil {
		t.Fatalf("%s failed [encoding]: %v", t.Name(), err)
	}

	var gs2 GraphicString
	if err = Unmarshal(data, &gs2); err != nil {
		t.Fatalf("%s failed [decoding]: %v", t.Name(), err)
	}

	if gs != gs2 {
		t.Errorf("%s: roundtrip mismatch want %s got %s", t.Name(), gs, gs2)
	}
}

func TestNewGraphicString_badInput(t *testing.T) {
	if _, err := NewGraphicString(struct{}{}); err == nil {
		t.Errorf("%s: expected error for unsupported input type", t.Name())
	}
	if _, err := NewGraphicString(string(rune(0x0200))); err == nil {
		t.Errorf("%s: expected error for out-of-range character", t.Name())
	}
}
