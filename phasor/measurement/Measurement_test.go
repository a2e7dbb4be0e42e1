package measurement

import (
	"testing"

	"github.com/gpascada/phasoradapter/phasor/guid"
	"github.com/gpascada/phasoradapter/phasor/ticks"
)

func TestNewMappedPreservesValueAndTimestamp(t *testing.T) {
	parsed := Parsed{Value: 120.1, Timestamp: ticks.Ticks(1000), Quality: QualityFlags.Normal}
	descriptor := &Descriptor{
		SignalID:        guid.New(),
		Key:             Key{Source: "PPA", ID: 42},
		SignalReference: "SUB1!IS-PM1",
		Adder:           0.0,
		Multiplier:      1.0,
	}

	mapped := NewMapped(parsed, descriptor)

	if mapped.Value != parsed.Value {
		t.Fatalf("expected value to be preserved, got %v", mapped.Value)
	}

	if mapped.Timestamp != parsed.Timestamp {
		t.Fatalf("expected timestamp to be preserved, got %v", mapped.Timestamp)
	}

	if mapped.SignalID != descriptor.SignalID {
		t.Fatalf("expected signalID to come from descriptor")
	}

	if mapped.SignalReference != descriptor.SignalReference {
		t.Fatalf("expected signalReference to come from descriptor")
	}
}

func TestAdjustedValue(t *testing.T) {
	mapped := Mapped{
		Parsed:     Parsed{Value: 100},
		Adder:      5,
		Multiplier: 2,
	}

	if got := mapped.AdjustedValue(); got != 205 {
		t.Fatalf("expected 100*2+5=205, got %v", got)
	}
}

func TestQualityFlagsClassification(t *testing.T) {
	if QualityFlags.Normal.HasDataQualityError() {
		t.Fatalf("Normal flags should not classify as a data quality error")
	}

	if !QualityFlags.BadData.HasDataQualityError() {
		t.Fatalf("BadData should classify as a data quality error")
	}

	if !QualityFlags.BadTime.HasTimeQualityError() {
		t.Fatalf("BadTime should classify as a time quality error")
	}

	if !QualityFlags.SystemError.HasDeviceError() {
		t.Fatalf("SystemError should classify as a device error")
	}

	combined := QualityFlags.BadData | QualityFlags.BadTime

	if !combined.HasDataQualityError() || !combined.HasTimeQualityError() {
		t.Fatalf("combined flags should classify under both categories")
	}
}

func TestKeyString(t *testing.T) {
	key := Key{Source: "PPA", ID: 7}

	if key.String() != "PPA:7" {
		t.Fatalf("expected \"PPA:7\", got %q", key.String())
	}
}
