package asn1kit

import "testing"

func TestObjectDescriptor_roundtrip(t *testing.T) {
	od, err := NewObjectDescriptor("a human readable label")
	if err != nil {
		t.Fatalf("%s failed [parse]: %v", t.Name(), err)
	}

	data, err := Marshal(od)
	if err != nil {
		t.Fatalf("%s failed [encoding]: %v", t.Name(), err)
	}

	var od2 ObjectDescriptor
	if err = Unmarshal(data, &od2); err != nil {
		t.Fatalf("%s failed [decoding]: %v", t.Name(), err)
	}
	if od2.String() != od.String() {
		t.Errorf("%s: roundtrip mismatch want %s got %s", t.Name(), od, od2)
	}
}

func TestObjectDescriptor_badInput(t *testing.T) {
	if _, err := NewObjectDescriptor(string(rune(0x0100))); err == nil {
		t.Errorf("%s: expected error for character beyond 0x00FF", t.Name())
	}
	if _, err := NewObjectDescriptor(42); err == nil {
		t.Errorf("%s: expected error for unsupported constructor input type", t.Name())
	}
}

func TestCharacterString_syntaxIdentified_roundtrip(t *testing.T) {
	oid, err := NewObjectIdentifier("1.3.6.1")
	if err != nil {
		t.Fatalf("%s failed [oid parse]: %v", t.Name(), err)
	}

	cs, err := NewCharacterString(OctetString("hello"), &oid)
	if err != nil {
		t.Fatalf("%s failed [construct]: %v", t.Name(), err)
	}

	data, err := Marshal(cs)
	if err != nil {
		t.Fatalf("%s failed [encoding]: %v", t.Name(), err)
	}

	var out CharacterString
	if err = Unmarshal(data, &out); err != nil {
		t.Fatalf("%s failed [decoding]: %v", t.Name(), err)
	}
	if string(out.StringValue) != "hello" {
		t.Errorf("%s: expected string-value hello, got %s", t.Name(), out.StringValue)
	}
	sel, ok := out.Identification.Selected()
	if !ok || sel.Name != CharacterStringSyntax {
		t.Errorf("%s: expected syntax alternative selected, got %+v (ok=%v)", t.Name(), sel, ok)
	}
}

func TestCharacterString_fixedIdentified_roundtrip(t *testing.T) {
	cs, err := NewCharacterString(OctetString("world"), nil, "label")
	if err != nil {
		t.Fatalf("%s failed [construct]: %v", t.Name(), err)
	}
	if !cs.HasDescriptor {
		t.Fatalf("%s: expected descriptor to be recorded", t.Name())
	}

	data, err := Marshal(cs)
	if err != nil {
		t.Fatalf("%s failed [encoding]: %v", t.Name(), err)
	}

	var out CharacterString
	if err = Unmarshal(data, &out); err != nil {
		t.Fatalf("%s failed [decoding]: %v", t.Name(), err)
	}
	if string(out.StringValue) != "world" {
		t.Errorf("%s: expected string-value world, got %s", t.Name(), out.StringValue)
	}
	sel, ok := out.Identification.Selected()
	if !ok || sel.Name != CharacterStringFixed {
		t.Errorf("%s: expected fixed alternative selected, got %+v (ok=%v)", t.Name(), sel, ok)
	}
	if !out.HasDescriptor || string(out.DataValueDescriptor) != "label" {
		t.Errorf("%s: expected descriptor label, got %q (has=%v)", t.Name(), out.DataValueDescriptor, out.HasDescriptor)
	}
}
