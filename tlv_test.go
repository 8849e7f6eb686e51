package asn1kit

import "testing"

func TestTLV_Eq(t *testing.T) {
	a := TLV{Class: ClassUniversal, Tag: TagInteger, Constructed: false, Length: 1, Value: []byte{0x01}}
	b := TLV{Class: ClassUniversal, Tag: TagInteger, Constructed: false, Length: 2, Value: []byte{0x01, 0x02}}

	if !a.Eq(b) {
		t.Errorf("%s: expected class/tag/constructed match regardless of length", t.Name())
	}
	if a.Eq(b, true) {
		t.Errorf("%s: expected length mismatch to fail strict comparison", t.Name())
	}

	c := TLV{Class: ClassContextSpecific, Tag: TagInteger}
	if a.Eq(c) {
		t.Errorf("%s: expected class mismatch to fail", t.Name())
	}
}

func TestTLV_String(t *testing.T) {
	tlv := TLV{Class: ClassUniversal, Tag: TagBoolean, Value: []byte{0xFF}, Length: 1}
	s := tlv.String()
	if s == "" {
		t.Errorf("%s: expected non-empty string representation", t.Name())
	}
}

func TestTLV_roundtrip(t *testing.T) {
	c := NewContainer()
	defer c.Free()

	in := TLV{Class: ClassUniversal, Tag: TagOctetString, Value: []byte("hello"), Length: 5}
	if err := c.WriteTLV(in, nil); err != nil {
		t.Fatalf("%s failed [WriteTLV]: %v", t.Name(), err)
	}

	view := NewView(c.Bytes())
	out, err := view.TLV()
	if err != nil {
		t.Fatalf("%s failed [View.TLV]: %v", t.Name(), err)
	}

	if !in.Eq(out, true) || string(out.Value) != "hello" {
		t.Errorf("%s: roundtrip mismatch: want %s got %s", t.Name(), in, out)
	}
}
