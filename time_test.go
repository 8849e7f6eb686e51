package asn1kit

import (
	"testing"
	"time"
)

func TestNewDate_roundtrip(t *testing.T) {
	d, err := NewDate(time.Date(2026, 7, 30, 0, 0, 0, 0, time.UTC))
	if err != nil {
		t.Fatalf("%s failed [parse]: %v", t.Name(), err)
	}

	data, err := Marshal(d)
	if err != nil {
		t.Fatalf("%s failed [encoding]: %v", t.Name(), err)
	}

	var d2 Date
	if err = Unmarshal(data, &d2); err != nil {
		t.Fatalf("%s failed [decoding]: %v", t.Name(), err)
	}

	if d.String() != d2.String() {
		t.Errorf("%s: roundtrip mismatch want %s got %s", t.Name(), d, d2)
	}
}

func TestNewDateTime_roundtrip(t *testing.T) {
	dt, err := NewDateTime(time.Date(2026, 7, 30, 12, 34, 56, 0, time.UTC))
	if err != nil {
		t.Fatalf("%s failed [parse]: %v", t.Name(), err)
	}

	data, err := Marshal(dt)
	if err != nil {
		t.Fatalf("%s failed [encoding]: %v", t.Name(), err)
	}

	var dt2 DateTime
	if err = Unmarshal(data, &dt2); err != nil {
		t.Fatalf("%s failed [decoding]: %v", t.Name(), err)
	}

	if dt.String() != dt2.String() {
		t.Errorf("%s: roundtrip mismatch want %s got %s", t.Name(), dt, dt2)
	}
}

func TestNewTimeOfDay_roundtrip(t *testing.T) {
	tod, err := NewTimeOfDay(time.Date(1, 1, 1, 12, 34, 56, 0, time.UTC))
	if err != nil {
		t.Fatalf("%s failed [parse]: %v", t.Name(), err)
	}

	data, err := Marshal(tod)
	if err != nil {
		t.Fatalf("%s failed [encoding]: %v", t.Name(), err)
	}

	var tod2 TimeOfDay
	if err = Unmarshal(data, &tod2); err != nil {
		t.Fatalf("%s failed [decoding]: %v", t.Name(), err)
	}

	if tod.String() != tod2.String() {
		t.Errorf("%s: roundtrip mismatch want %s got %s", t.Name(), tod, tod2)
	}
}

func TestNewDuration_roundtrip(t *testing.T) {
	dur, err := NewDuration("P1Y2M3DT4H5M6S")
	if err != nil {
		t.Fatalf("%s failed [parse]: %v", t.Name(), err)
	}

	data, err := Marshal(dur)
	if err != nil {
		t.Fatalf("%s failed [encoding]: %v", t.Name(), err)
	}

	var dur2 Duration
	if err = Unmarshal(data, &dur2); err != nil {
		t.Fatalf("%s failed [decoding]: %v", t.Name(), err)
	}

	if dur.Duration() != dur2.Duration() {
		t.Errorf("%s: roundtrip mismatch want %s got %s", t.Name(), dur.Duration(), dur2.Duration())
	}
}

func TestNewGeneralizedTime_roundtrip(t *testing.T) {
	gt, err := NewGeneralizedTime(time.Date(2026, 7, 30, 12, 34, 56, 0, time.UTC))
	if err != nil {
		t.Fatalf("%s failed [parse]: %v", t.Name(), err)
	}

	data, err := Marshal(gt)
	if err != nil {
		t.Fatalf("%s failed [encoding]: %v", t.Name(), err)
	}

	var gt2 GeneralizedTime
	if err = Unmarshal(data, &gt2); err != nil {
		t.Fatalf("%s failed [decoding]: %v", t.Name(), err)
	}

	if !gt.Cast().Equal(gt2.Cast()) {
		t.Errorf("%s: roundtrip mismatch want %s got %s", t.Name(), gt, gt2)
	}
}

func TestNewUTCTime_roundtrip(t *testing.T) {
	utc, err := NewUTCTime(time.Date(2026, 7, 30, 12, 34, 56, 0, time.UTC))
	if err != nil {
		t.Fatalf("%s failed [parse]: %v", t.Name(), err)
	}

	data, err := Marshal(utc)
	if err != nil {
		t.Fatalf("%s failed [encoding]: %v", t.Name(), err)
	}

	var utc2 UTCTime
	if err = Unmarshal(data, &utc2); err != nil {
		t.Fatalf("%s failed [decoding]: %v", t.Name(), err)
	}

	if !utc.Cast().Equal(utc2.Cast()) {
		t.Errorf("%s: roundtrip mismatch want %s got %s", t.Name(), utc, utc2)
	}
}

func TestNewDate_badInput(t *testing.T) {
	if _, err := NewDate(struct{}{}); err == nil {
		t.Errorf("%s: expected error for unsupported input type", t.Name())
	}
}

func TestNewGeneralizedTime_badInput(t *testing.T) {
	if _, err := NewGeneralizedTime(struct{}{}); err == nil {
		t.Errorf("%s: expected error for unsupported input type", t.Name())
	}
	if _, err := NewGeneralizedTime("short"); err == nil {
		t.Errorf("%s: expected error for too-short input string", t.Name())
	}
}
