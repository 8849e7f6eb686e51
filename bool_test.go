package asn1kit

import (
	"fmt"
	"testing"
)

func TestNewBoolean(t *testing.T) {
	var b bool
	for idx, boo := range []any{
		!b,
		&b,
		`true`,
		`TRUE`,
		byte(0xff),
		0,
		1,
	} {
		B, err := NewBoolean(boo)
		if err != nil {
			t.Errorf("%s[%d] failed [Boolean parse]: %v", t.Name(), idx, err)
			continue
		}

		_ = B.Tag()
		_ = B.Bool()
		_ = B.Byte()
		_ = B.String()

		data, err := Marshal(B)
		if err != nil {
			t.Errorf("%s[%d] failed [encoding]: %v", t.Name(), idx, err)
			continue
		}

		var B2 Boolean
		if err = Unmarshal(data, &B2); err != nil {
			t.Errorf("%s[%d] failed [decoding]: %v", t.Name(), idx, err)
			continue
		}

		if B != B2 {
			t.Errorf("%s[%d] failed [Boolean cmp]:\n\twant: %t\n\tgot:  %t",
				t.Name(), idx, B, B2)
		}
	}
}

func TestBoolean_badInput(t *testing.T) {
	if _, err := NewBoolean(struct{}{}); err == nil {
		t.Errorf("%s: expected error for unsupported input type", t.Name())
	}
}

func TestBoolean_Decode_errors(t *testing.T) {
	// wrong tag
	data := []byte{0x02, 0x01, 0xFF}
	var b Boolean
	if err := Unmarshal(data, &b); err == nil {
		t.Errorf("%s: expected error for mismatched tag", t.Name())
	}

	// wrong length
	data = []byte{0x01, 0x02, 0xFF, 0x00}
	if err := Unmarshal(data, &b); err == nil {
		t.Errorf("%s: expected error for bad length", t.Name())
	}
}

func ExampleNewBoolean() {
	// accepts bool, *bool, Boolean, byte (0x00 or 0xFF),
	// or any valid strconv.ParseBool string input.
	bewl, err := NewBoolean("false")
	if err != nil {
		fmt.Println(err)
		return
	}
	fmt.Printf("%T was %t, ", bewl, bewl)

	bewl = Boolean(true)
	fmt.Printf("but is now %t.\n", bewl)
	// Output: asn1kit.Boolean was false, but is now true.
}

func ExampleBoolean_withConstraint() {
	constraint := func(a any) error {
		b, _ := a.(Boolean)
		if !b.Bool() {
			return fmt.Errorf("Constraint violation: Boolean must be true")
		}
		return nil
	}

	if _, err := NewBoolean("false", constraint); err != nil {
		fmt.Println(err)
		return
	}
	// Output: Constraint violation: Boolean must be true
}
