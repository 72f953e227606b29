package optimizer

import (
	"math"
	"testing"
)

func TestGeometricDecay_StartsAtInitialAndShrinks(t *testing.T) {
	s := GeometricDecay{Initial: 100, Rate: 0.95}
	if got := s.TemperatureAt(0); got != 100 {
		t.Errorf("expected iteration 0 to return the starting temperature, got %v", got)
	}
	if s.TemperatureAt(10) >= s.TemperatureAt(0) {
		t.Error("expected the temperature to shrink over iterations")
	}
}

func TestLinearDecay_FloorsAtZero(t *testing.T) {
	s := LinearDecay{Initial: 50, Step: 10}
	if got := s.TemperatureAt(100); got != 0 {
		t.Errorf("expected linear decay to floor at zero, got %v", got)
	}
}

func TestReheatDecay_PulsesAboveThePlainCurve(t *testing.T) {
	s := ReheatDecay{Initial: 100, Rate: 0.9, Pulse: 2.0, Every: 5}
	plain := 100 * math.Pow(0.9, 5)
	if got := s.TemperatureAt(5); got <= plain {
		t.Errorf("expected the reheat pulse to lift the temperature above the plain decay value %v, got %v", plain, got)
	}
	if got := s.TemperatureAt(4); got != 100*math.Pow(0.9, 4) {
		t.Errorf("expected off-pulse iterations to follow plain decay, got %v", got)
	}
}

func TestNewTemperatureSchedule_BuildsEachKind(t *testing.T) {
	tests := []struct {
		cfg  TemperatureConfig
		want interface{}
	}{
		{TemperatureConfig{Kind: "geometric", Rate: 0.9}, GeometricDecay{}},
		{TemperatureConfig{Kind: "linear", Rate: 1}, LinearDecay{}},
		{TemperatureConfig{Kind: "reheat", Rate: 0.9, ReheatPulse: 1.5, ReheatEvery: 10}, ReheatDecay{}},
	}
	for _, tt := range tests {
		got := NewTemperatureSchedule(tt.cfg, 100)
		switch tt.want.(type) {
		case GeometricDecay:
			if _, ok := got.(GeometricDecay); !ok {
				t.Errorf("kind %q: got %T", tt.cfg.Kind, got)
			}
		case LinearDecay:
			if _, ok := got.(LinearDecay); !ok {
				t.Errorf("kind %q: got %T", tt.cfg.Kind, got)
			}
		case ReheatDecay:
			if _, ok := got.(ReheatDecay); !ok {
				t.Errorf("kind %q: got %T", tt.cfg.Kind, got)
			}
		}
	}
}

func TestNewTemperatureSchedule_UnknownKindFallsBackToGeometric(t *testing.T) {
	got := NewTemperatureSchedule(TemperatureConfig{Kind: "sideways", Rate: 5}, 80)
	decay, ok := got.(GeometricDecay)
	if !ok {
		t.Fatalf("expected the fallback to be geometric decay, got %T", got)
	}
	if decay.Rate != 0.99 {
		t.Errorf("expected an out-of-range rate to reset to 0.99, got %v", decay.Rate)
	}
	if decay.Initial != 80 {
		t.Errorf("expected the starting temperature to carry through, got %v", decay.Initial)
	}
}
