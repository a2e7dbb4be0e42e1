package ticks

import (
	"testing"
	"time"
)

func TestTimeRoundTrip(t *testing.T) {
	original := FromTime(timeMustParse("2024-01-01T00:00:00Z"))
	recovered := ToTime(original)

	if !recovered.Equal(timeMustParse("2024-01-01T00:00:00Z")) {
		t.Fatalf("round trip mismatch: got %v", recovered)
	}
}

func TestLeapSecondFlag(t *testing.T) {
	value := FromTime(timeMustParse("2024-01-01T00:00:00Z"))

	if IsLeapSecond(value) {
		t.Fatalf("expected fresh value to not carry leap second flag")
	}

	flagged := SetLeapSecond(value)

	if !IsLeapSecond(flagged) {
		t.Fatalf("expected SetLeapSecond to set the leap second flag")
	}

	if flagged&ValueMask != value&ValueMask {
		t.Fatalf("SetLeapSecond must not alter the underlying value bits")
	}
}

func TestToUTCNoZoneIsNoOp(t *testing.T) {
	value := FromTime(timeMustParse("2024-01-01T00:00:00Z"))

	converted, err := ToUTC(value, "")

	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if converted != value {
		t.Fatalf("expected no-op conversion for empty zone name")
	}
}

func TestToUTCAppliesOffset(t *testing.T) {
	// US/Eastern is UTC-5 in January (standard time, no DST).
	value := FromTime(timeMustParse("2024-01-01T00:00:00Z"))

	converted, err := ToUTC(value, "US/Eastern")

	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	expected := FromTime(timeMustParse("2024-01-01T05:00:00Z"))

	if converted != expected {
		t.Fatalf("expected %d, got %d", expected, converted)
	}
}

func timeMustParse(value string) time.Time {
	parsed, err := time.Parse(time.RFC3339, value)

	if err != nil {
		panic(err)
	}

	return parsed
}
