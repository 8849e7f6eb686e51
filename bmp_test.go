package asn1kit

import "testing"

func TestNewBMPString_roundtrip(t *testing.T) {
	bmp, err := NewBMPString("Hello BMP")
	if err != nil {
		t.Fatalf("%s failed [parse]: %v", t.Name(), err)
	}

	data, err := Marshal(bmp)
	if err != nil {
		t.Fatalf("%s failed [encoding]: %v", t.Name(), err)
	}

	var bmp2 BMPString
	if err = Unmarshal(data, &bmp2); err != nil {
		t.Fatalf("%s failed [decoding]: %v", t.Name(), err)
	}

	if bmp != bmp2 {
		t.Errorf("%s: roundtrip mismatch want %s got %s", t.Name(), bmp, bmp2)
	}
}

func TestNewBMPString_badInput(t *testing.T) {
	if _, err := NewBMPString(struct{}{}); err == nil {
		t.Errorf("%s: expected error for unsupported input type", t.Name())
	}
}
