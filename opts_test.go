package asn1kit

import "testing"

func TestNewOptions(t *testing.T) {
	o, err := NewOptions(`tag:4,explicit`)
	if err != nil {
		t.Fatalf("%s failed [parse]: %v", t.Name(), err)
	}
	if !o.HasTag() || o.Tag() != 4 {
		t.Errorf("%s: expected tag 4, got %d (has=%v)", t.Name(), o.Tag(), o.HasTag())
	}
	if !o.Explicit {
		t.Errorf("%s: expected Explicit to be true", t.Name())
	}
	if !o.HasClass() || o.Class() != ClassContextSpecific {
		t.Errorf("%s: expected implied context-specific class", t.Name())
	}
}

func TestNewOptions_booleans(t *testing.T) {
	o, err := NewOptions(`optional,omitempty,set,indefinite,automatic`)
	if err != nil {
		t.Fatalf("%s failed [parse]: %v", t.Name(), err)
	}
	if !o.Optional || !o.OmitEmpty || !o.Set || !o.Indefinite || !o.Automatic {
		t.Errorf("%s: expected all boolean flags set: %+v", t.Name(), o)
	}
}

func TestNewOptions_empty(t *testing.T) {
	if _, err := NewOptions(""); err == nil {
		t.Errorf("%s: expected error for empty tag string", t.Name())
	}
}

func TestNewOptions_unidentified(t *testing.T) {
	if _, err := NewOptions(`bogus-token`); err == nil {
		t.Errorf("%s: expected error for unidentified token", t.Name())
	}
}

func TestOptions_SetTagClass(t *testing.T) {
	var o Options
	if o.HasTag() || o.HasClass() {
		t.Errorf("%s: expected zero-value Options to have no tag/class", t.Name())
	}
	o.SetTag(2)
	o.SetClass(ClassApplication)
	if !o.HasTag() || o.Tag() != 2 {
		t.Errorf("%s: expected tag 2", t.Name())
	}
	if !o.HasClass() || o.Class() != ClassApplication {
		t.Errorf("%s: expected application class", t.Name())
	}
}
