package asn1kit

import "testing"

func TestOptional_present(t *testing.T) {
	var o Optional[OctetString, *OctetString]
	o.Value = "hi"
	o.Present = true

	data, err := Marshal(o)
	if err != nil {
		t.Fatalf("%s failed [encoding]: %v", t.Name(), err)
	}

	var out Optional[OctetString, *OctetString]
	if err = Unmarshal(data, &out); err != nil {
		t.Fatalf("%s failed [decoding]: %v", t.Name(), err)
	}
	if !out.Present || string(out.Value) != "hi" {
		t.Errorf("%s: expected present value hi, got present=%v value=%s", t.Name(), out.Present, out.Value)
	}
}

func TestOptional_absentEncodesNothing(t *testing.T) {
	var o Optional[OctetString, *OctetString]
	data, err := Marshal(o)
	if err != nil {
		t.Fatalf("%s failed [encoding]: %v", t.Name(), err)
	}
	if len(data) != 0 {
		t.Errorf("%s: expected zero bytes for absent Optional, got %d", t.Name(), len(data))
	}
}

func TestOptional_decodeMismatchedTag(t *testing.T) {
	var o Optional[OctetString, *OctetString]
	// NULL tag, not OCTET STRING: receiver stays absent, no error, no
	// bytes consumed.
	if err := Unmarshal([]byte{0x05, 0x00}, &o); err != nil {
		t.Fatalf("%s failed: %v", t.Name(), err)
	}
	if o.Present {
		t.Errorf("%s: expected Optional to remain absent on identifier mismatch", t.Name())
	}
}

func TestDefault_equalToFallbackOmitted(t *testing.T) {
	var d Default[Integer, *Integer]
	d.Fallback = MustNewInteger(0)
	d.Value = MustNewInteger(0)
	d.Present = true

	data, err := Marshal(d)
	if err != nil {
		t.Fatalf("%s failed [encoding]: %v", t.Name(), err)
	}
	if len(data) != 0 {
		t.Errorf("%s: expected zero bytes when value equals Fallback, got %d", t.Name(), len(data))
	}
}

func TestDefault_differentFromFallback(t *testing.T) {
	var d Default[Integer, *Integer]
	d.Fallback = MustNewInteger(0)
	d.Value = MustNewInteger(9)
	d.Present = true

	data, err := Marshal(d)
	if err != nil {
		t.Fatalf("%s failed [encoding]: %v", t.Name(), err)
	}
	if len(data) == 0 {
		t.Fatalf("%s: expected non-empty encoding for value differing from Fallback", t.Name())
	}

	var out Default[Integer, *Integer]
	out.Fallback = MustNewInteger(0)
	if err = Unmarshal(data, &out); err != nil {
		t.Fatalf("%s failed [decoding]: %v", t.Name(), err)
	}
	if !out.Present || !out.Value.Eq(MustNewInteger(9)) {
		t.Errorf("%s: expected present value 9, got present=%v value=%s", t.Name(), out.Present, out.Value)
	}
}

func TestDefault_absentMaterializesFallback(t *testing.T) {
	var out Default[Integer, *Integer]
	out.Fallback = MustNewInteger(42)
	if err := Unmarshal(nil, &out); err != nil {
		t.Fatalf("%s failed [decoding]: %v", t.Name(), err)
	}
	if out.Present {
		t.Errorf("%s: expected absent on empty input", t.Name())
	}
	if !out.Value.Eq(MustNewInteger(42)) {
		t.Errorf("%s: expected Fallback materialized, got %s", t.Name(), out.Value)
	}
}
