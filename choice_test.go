package asn1kit

import "testing"

func buildAnimalChoice() Choice {
	return NewChoice(
		ChoiceAlternative{Name: "cat", Value: &OctetString{}},
		ChoiceAlternative{Name: "age", Value: &Integer{}},
	)
}

func TestChoice_roundtrip(t *testing.T) {
	c := buildAnimalChoice()
	cat := OctetString("whiskers")
	if err := c.Set("cat", &cat); err != nil {
		t.Fatalf("%s failed [select]: %v", t.Name(), err)
	}

	data, err := Marshal(c)
	if err != nil {
		t.Fatalf("%s failed [encoding]: %v", t.Name(), err)
	}

	out := buildAnimalChoice()
	if err = Unmarshal(data, &out); err != nil {
		t.Fatalf("%s failed [decoding]: %v", t.Name(), err)
	}

	sel, ok := out.Selected()
	if !ok || sel.Name != "cat" {
		t.Fatalf("%s: expected cat alternative selected, got %+v (ok=%v)", t.Name(), sel, ok)
	}
	got, _ := sel.Value.(*OctetString)
	if string(*got) != "whiskers" {
		t.Errorf("%s: expected whiskers, got %s", t.Name(), *got)
	}
}

func TestChoice_otherAlternative(t *testing.T) {
	c := buildAnimalChoice()
	age := MustNewInteger(7)
	if err := c.Set("age", &age); err != nil {
		t.Fatalf("%s failed [select]: %v", t.Name(), err)
	}

	data, err := Marshal(c)
	if err != nil {
		t.Fatalf("%s failed [encoding]: %v", t.Name(), err)
	}

	out := buildAnimalChoice()
	if err = Unmarshal(data, &out); err != nil {
		t.Fatalf("%s failed [decoding]: %v", t.Name(), err)
	}

	sel, ok := out.Selected()
	if !ok || sel.Name != "age" {
		t.Fatalf("%s: expected age alternative selected, got %+v (ok=%v)", t.Name(), sel, ok)
	}
}

func TestChoice_unknownName(t *testing.T) {
	c := buildAnimalChoice()
	if err := c.Set("dog", &OctetString{}); err == nil {
		t.Errorf("%s: expected error for unregistered alternative name", t.Name())
	}
}

func TestChoice_unselectedEncodeFails(t *testing.T) {
	c := buildAnimalChoice()
	if _, err := Marshal(c); err == nil {
		t.Errorf("%s: expected error encoding a CHOICE with nothing selected", t.Name())
	}
}

func TestChoice_unknownTagOnDecode(t *testing.T) {
	// NULL's tag (5) matches neither alternative (OCTET STRING=4, INTEGER=2).
	out := buildAnimalChoice()
	if err := Unmarshal([]byte{0x05, 0x00}, &out); err == nil {
		t.Errorf("%s: expected error for unmatched CHOICE tag", t.Name())
	}
}

func TestChoice_IsZero(t *testing.T) {
	c := buildAnimalChoice()
	if !c.IsZero() {
		t.Errorf("%s: expected freshly built Choice to report zero", t.Name())
	}
	cat := OctetString("x")
	c.Set("cat", &cat)
	if c.IsZero() {
		t.Errorf("%s: expected Choice with a selection to not report zero", t.Name())
	}
}
