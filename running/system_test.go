package running

import (
	"errors"
	"math"
	"testing"
)

func TestParseSystem(t *testing.T) {
	tests := []struct {
		in   string
		want System
	}{
		{"metric", Metric},
		{"Metric", Metric},
		{" METRIC ", Metric},
		{"imperial", Imperial},
		{"Imperial", Imperial},
	}

	for _, tt := range tests {
		got, err := ParseSystem(tt.in)
		if err != nil {
			t.Fatalf("ParseSystem(%q): expected no error, got %v", tt.in, err)
		}
		if got != tt.want {
			t.Errorf("ParseSystem(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestParseSystemUnknown(t *testing.T) {
	for _, in := range []string{"", "nautical", "si"} {
		if _, err := ParseSystem(in); !errors.Is(err, ErrUnknownSystem) {
			t.Errorf("ParseSystem(%q): expected ErrUnknownSystem, got %v", in, err)
		}
	}
}

func TestSystemUnits(t *testing.T) {
	if Metric.SplitDistance() != 1000 || Imperial.SplitDistance() != 1760 {
		t.Fatalf("unexpected split distances: %d, %d", Metric.SplitDistance(), Imperial.SplitDistance())
	}
	if Metric.BaseUnit() != "m" || Imperial.BaseUnit() != "yd" {
		t.Fatalf("unexpected base units: %q, %q", Metric.BaseUnit(), Imperial.BaseUnit())
	}
	if Metric.SplitUnit() != "km" || Imperial.SplitUnit() != "mile" {
		t.Fatalf("unexpected split units: %q, %q", Metric.SplitUnit(), Imperial.SplitUnit())
	}
	if Metric.SpeedUnit() != "km/h" || Imperial.SpeedUnit() != "mph" {
		t.Fatalf("unexpected speed units: %q, %q", Metric.SpeedUnit(), Imperial.SpeedUnit())
	}
	if Metric.String() != "metric" || Imperial.String() != "imperial" {
		t.Fatalf("unexpected names: %q, %q", Metric.String(), Imperial.String())
	}
}

func TestSystemDisplayConversions(t *testing.T) {
	if got := Metric.DisplayDistance(42195); math.Abs(got-42.195) > 1e-9 {
		t.Fatalf("Metric.DisplayDistance(42195) = %v", got)
	}
	if got := Imperial.DisplayDistance(46112); math.Abs(got-26.2) > 1e-9 {
		t.Fatalf("Imperial.DisplayDistance(46112) = %v", got)
	}
	if got := Metric.DisplaySpeed(1.0); math.Abs(got-3.6) > 1e-9 {
		t.Fatalf("Metric.DisplaySpeed(1.0) = %v", got)
	}
	if got := Imperial.DisplaySpeed(1.0); math.Abs(got-3600.0/1760.0) > 1e-12 {
		t.Fatalf("Imperial.DisplaySpeed(1.0) = %v", got)
	}
}
