package asn1kit

import (
	"encoding/hex"
	"strings"
	"testing"
)

func TestNull_roundtrip(t *testing.T) {
	var null Null
	data, err := Marshal(null)
	if err != nil {
		t.Fatalf("%s failed [encoding]: %v", t.Name(), err)
	}

	var null2 Null
	if err = Unmarshal(data, &null2); err != nil {
		t.Fatalf("%s failed [decoding]: %v", t.Name(), err)
	}

	want := "0500"
	if got := strings.ToUpper(hex.EncodeToString(data)); !strings.EqualFold(got, want) {
		t.Errorf("%s failed [hex cmp.]:\n\twant: '%s'\n\tgot:  '%s'", t.Name(), want, got)
	}
}

func TestNull_methods(t *testing.T) {
	var null Null
	if null.Tag() != TagNull {
		t.Errorf("%s: unexpected tag %d", t.Name(), null.Tag())
	}
	if null.String() != "NULL" {
		t.Errorf("%s: unexpected string %q", t.Name(), null.String())
	}
	if null.EncodedLen() != 0 {
		t.Errorf("%s: expected zero length", t.Name())
	}
}

func TestNull_Decode_errors(t *testing.T) {
	var null Null
	// wrong tag
	if err := Unmarshal([]byte{0x02, 0x00}, &null); err == nil {
		t.Errorf("%s: expected error for mismatched tag", t.Name())
	}
	// non-zero length
	if err := Unmarshal([]byte{0x05, 0x01, 0x00}, &null); err == nil {
		t.Errorf("%s: expected error for non-zero length", t.Name())
	}
}
