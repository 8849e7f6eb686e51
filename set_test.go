package asn1kit

import "testing"

func buildCredentialSet(user, pass OctetString) Set {
	return Set{Components: []Component{
		{Name: "user", Value: &user},
		{Name: "pass", Value: &pass},
	}}
}

func TestSet_roundtrip(t *testing.T) {
	user := OctetString("admin")
	pass := OctetString("hunter2")
	s := buildCredentialSet(user, pass)

	data, err := Marshal(s)
	if err != nil {
		t.Fatalf("%s failed [encoding]: %v", t.Name(), err)
	}

	var user2, pass2 OctetString
	out := buildCredentialSet(user2, pass2)
	if err = Unmarshal(data, &out); err != nil {
		t.Fatalf("%s failed [decoding]: %v", t.Name(), err)
	}

	gotUser, _ := out.Components[0].Value.(*OctetString)
	gotPass, _ := out.Components[1].Value.(*OctetString)
	if string(*gotUser) != "admin" || string(*gotPass) != "hunter2" {
		t.Errorf("%s: roundtrip mismatch, got user=%s pass=%s", t.Name(), *gotUser, *gotPass)
	}
}

func TestSet_memberOrderIndependent(t *testing.T) {
	// Swap declared component order: decode still binds by identifier.
	user := OctetString("admin")
	pass := OctetString("hunter2")
	encodeOrder := Set{Components: []Component{
		{Name: "pass", Value: &pass},
		{Name: "user", Value: &user},
	}}

	data, err := Marshal(encodeOrder)
	if err != nil {
		t.Fatalf("%s failed [encoding]: %v", t.Name(), err)
	}

	var user2, pass2 OctetString
	decodeOrder := Set{Components: []Component{
		{Name: "user", Value: &user2},
		{Name: "pass", Value: &pass2},
	}}
	if err = Unmarshal(data, &decodeOrder); err != nil {
		t.Fatalf("%s failed [decoding]: %v", t.Name(), err)
	}
	if string(user2) != "admin" || string(pass2) != "hunter2" {
		t.Errorf("%s: expected identifier-based binding regardless of order, got user=%s pass=%s", t.Name(), user2, pass2)
	}
}

func TestSet_sameTagMembersBindDistinctly(t *testing.T) {
	// Two incoming members sharing an identifier (same tag/class): the
	// first binds to slot "a"; the second finds "a" already matched and
	// binds to the next unmatched slot wanting that identifier, "b".
	a := OctetString("first")
	b := OctetString("second")
	encoded := Set{Components: []Component{
		{Name: "a", Value: &a},
		{Name: "b", Value: &b},
	}}
	data, err := Marshal(encoded)
	if err != nil {
		t.Fatalf("%s failed [encoding]: %v", t.Name(), err)
	}

	var a2, b2 OctetString
	out := Set{Components: []Component{
		{Name: "a", Value: &a2},
		{Name: "b", Value: &b2},
	}}
	if err = Unmarshal(data, &out); err != nil {
		t.Fatalf("%s failed [decoding]: %v", t.Name(), err)
	}
	if string(a2) == string(b2) {
		t.Errorf("%s: expected distinct member values, got equal %s", t.Name(), a2)
	}
}

func TestSet_optionalAndDefault(t *testing.T) {
	required := OctetString("present")
	encoded := Set{Components: []Component{{Name: "required", Value: &required}}}
	data, err := Marshal(encoded)
	if err != nil {
		t.Fatalf("%s failed [encoding]: %v", t.Name(), err)
	}

	var required2 OctetString
	var optional OctetString
	out := Set{Components: []Component{
		{Name: "required", Value: &required2},
		{Name: "optional", Value: &optional, Options: Options{Optional: true}},
	}}
	if err = Unmarshal(data, &out); err != nil {
		t.Fatalf("%s failed [decoding]: %v", t.Name(), err)
	}
	if string(required2) != "present" {
		t.Errorf("%s: expected required present, got %s", t.Name(), required2)
	}
}

func TestSet_missingRequired(t *testing.T) {
	present := OctetString("present")
	encoded := Set{Components: []Component{{Name: "present", Value: &present}}}
	data, err := Marshal(encoded)
	if err != nil {
		t.Fatalf("%s failed [encoding]: %v", t.Name(), err)
	}

	var present2, missing OctetString
	out := Set{Components: []Component{
		{Name: "present", Value: &present2},
		{Name: "missing", Value: &missing},
	}}
	if err = Unmarshal(data, &out); err == nil {
		t.Errorf("%s: expected error for missing required member", t.Name())
	}
}
