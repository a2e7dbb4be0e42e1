package frameparser

import "testing"

func TestConfigurationFrameRoundTripsThroughCounts(t *testing.T) {
	frame := NewConfigurationFrame()
	AddDeviceSignalCounts(frame, 7, 2, 1, 0)
	AddDeviceSignalCounts(frame, 8, 4, 0, 3)

	counts := ReadDeviceSignalCounts(frame)

	if len(counts) != 2 {
		t.Fatalf("expected 2 devices, got %d", len(counts))
	}

	d7 := counts[7]

	if d7.PhasorCount != 2 || d7.AnalogCount != 1 || d7.DigitalCount != 0 {
		t.Fatalf("unexpected counts for device 7: %+v", d7)
	}
}

func TestReadDeviceSignalCountsNilFrame(t *testing.T) {
	if counts := ReadDeviceSignalCounts(nil); len(counts) != 0 {
		t.Fatalf("expected empty map for nil frame")
	}
}
