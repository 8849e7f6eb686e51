package asn1kit

import "testing"

func TestNewUTF8String_roundtrip(t *testing.T) {
	u8, err := NewUTF8String("héllo, 世界")
	if err != nil {
		t.Fatalf("%s failed [parse]: %v", t.Name(), err)
	}

	data, err := Marshal(u8)
	if err != nil {
		t.Fatalf("%s failed [encoding]: %v", t.Name(), err)
	}

	var u82 UTF8String
	if err = Unmarshal(data, &u82); err != nil {
		t.Fatalf("%s failed [decoding]: %v", t.Name(), err)
	}

	if u8 != u82 {
		t.Errorf("%s: roundtrip mismatch want %s got %s", t.Name(), u8, u82)
	}
}

func TestNewUTF8String_badInput(t *testing.T) {
	if _, err := NewUTF8String(struct{}{}); err == nil {
		t.Errorf("%s: expected error for unsupported input type", t.Name())
	}
	if _, err := NewUTF8String(string([]byte{0xff, 0xfe, 0xfd})); err == nil {
		t.Errorf("%s: expected error for invalid UTF-8", t.Name())
	}
}
