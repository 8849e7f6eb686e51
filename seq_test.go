package asn1kit

import "testing"

func buildPersonSequence(name OctetString, age Integer) Sequence {
	return Sequence{Components: []Component{
		{Name: "name", Value: &name},
		{Name: "age", Value: &age},
	}}
}

func TestSequence_roundtrip(t *testing.T) {
	name := OctetString("Alice")
	age := MustNewInteger(30)
	seq := buildPersonSequence(name, age)

	data, err := Marshal(seq)
	if err != nil {
		t.Fatalf("%s failed [encoding]: %v", t.Name(), err)
	}

	var name2 OctetString
	var age2 Integer
	out := buildPersonSequence(name2, age2)
	if err = Unmarshal(data, &out); err != nil {
		t.Fatalf("%s failed [decoding]: %v", t.Name(), err)
	}

	gotName, _ := out.Components[0].Value.(*OctetString)
	gotAge, _ := out.Components[1].Value.(*Integer)
	if string(*gotName) != string(name) || !gotAge.Eq(age) {
		t.Errorf("%s: roundtrip mismatch: got name=%s age=%s", t.Name(), *gotName, gotAge)
	}
}

func TestSequence_optionalAbsent(t *testing.T) {
	var middle OctetString
	name := OctetString("Bob")
	seq := Sequence{Components: []Component{
		{Name: "name", Value: &name},
		{Name: "middle", Value: &middle, Options: Options{Optional: true}},
	}}

	data, err := Marshal(seq)
	if err != nil {
		t.Fatalf("%s failed [encoding]: %v", t.Name(), err)
	}

	var name2, middle2 OctetString
	out := Sequence{Components: []Component{
		{Name: "name", Value: &name2},
		{Name: "middle", Value: &middle2, Options: Options{Optional: true}},
	}}
	if err = Unmarshal(data, &out); err != nil {
		t.Fatalf("%s failed [decoding]: %v", t.Name(), err)
	}

	if string(name2) != "Bob" {
		t.Errorf("%s: expected name Bob, got %s", t.Name(), name2)
	}
}

func TestSequence_missingRequired(t *testing.T) {
	var name, age OctetString
	seq := Sequence{Components: []Component{
		{Name: "name", Value: &name},
		{Name: "age", Value: &age},
	}}
	data, err := Marshal(Sequence{Components: []Component{{Name: "name", Value: func() *OctetString { v := OctetString("solo"); return &v }()}}})
	if err != nil {
		t.Fatalf("%s failed [encoding]: %v", t.Name(), err)
	}
	if err = Unmarshal(data, &seq); err == nil {
		t.Errorf("%s: expected error for missing required component", t.Name())
	}
}

func TestSequence_extensible(t *testing.T) {
	name := OctetString("trunk")
	seq := Sequence{Components: []Component{{Name: "name", Value: &name}}}
	extra := OctetString("extra")
	full := Sequence{Components: []Component{
		{Name: "name", Value: &name},
		{Name: "extra", Value: &extra},
	}}

	data, err := Marshal(full)
	if err != nil {
		t.Fatalf("%s failed [encoding]: %v", t.Name(), err)
	}

	seq.Extensible = true
	var name2 OctetString
	out := Sequence{Components: []Component{{Name: "name", Value: &name2}}, Extensible: true}
	if err = Unmarshal(data, &out); err != nil {
		t.Fatalf("%s failed [decoding]: %v", t.Name(), err)
	}
	if len(out.Extensions) != 1 {
		t.Errorf("%s: expected one captured extension TLV, got %d", t.Name(), len(out.Extensions))
	}
}

func TestSequence_notExtensible(t *testing.T) {
	name := OctetString("trunk")
	extra := OctetString("extra")
	full := Sequence{Components: []Component{
		{Name: "name", Value: &name},
		{Name: "extra", Value: &extra},
	}}
	data, err := Marshal(full)
	if err != nil {
		t.Fatalf("%s failed [encoding]: %v", t.Name(), err)
	}

	var name2 OctetString
	out := Sequence{Components: []Component{{Name: "name", Value: &name2}}}
	if err = Unmarshal(data, &out); err == nil {
		t.Errorf("%s: expected error for trailing unrecognized component without Extensible", t.Name())
	}
}
