package phasorconfig

import "testing"

func TestParseSettingsDefaults(t *testing.T) {
	settings, err := ParseSettings("")

	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if settings.AccessID != 1 {
		t.Fatalf("expected default accessID of 1, got %d", settings.AccessID)
	}

	if settings.TimeZone != "UTC" {
		t.Fatalf("expected default timeZone of UTC, got %q", settings.TimeZone)
	}

	if !settings.AllowUseOfCachedConfiguration {
		t.Fatalf("expected allowUseOfCachedConfiguration to default true")
	}
}

func TestParseSettingsOverridesAndCaseInsensitiveKeys(t *testing.T) {
	settings, err := ParseSettings("IsConcentrator=true; AccessID=7 ; timeZone=US/Eastern;timeAdjustmentTicks=10000000")

	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if !settings.IsConcentrator {
		t.Fatalf("expected isConcentrator true")
	}

	if settings.AccessID != 7 {
		t.Fatalf("expected accessID 7, got %d", settings.AccessID)
	}

	if settings.TimeZone != "US/Eastern" {
		t.Fatalf("expected timeZone US/Eastern, got %q", settings.TimeZone)
	}

	if settings.TimeAdjustmentTicks != 10_000_000 {
		t.Fatalf("expected timeAdjustmentTicks 10000000, got %d", settings.TimeAdjustmentTicks)
	}
}

func TestParseSettingsPreservesUnrecognizedKeys(t *testing.T) {
	settings, err := ParseSettings("someFutureKey=42")

	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if settings.ExtraParameters["somefuturekey"] != "42" {
		t.Fatalf("expected unrecognized key to be preserved, got %+v", settings.ExtraParameters)
	}
}
