package core

import "testing"

func TestRuntimeConfigWithDefaults(t *testing.T) {
	got := RuntimeConfig{}.WithDefaults()
	if got.ScreenW != 80 || got.ScreenH != 24 || got.TickRate != DefaultTickRate {
		t.Errorf("defaults = %+v", got)
	}
	if got.Seed == 0 {
		t.Error("seed not filled")
	}

	set := RuntimeConfig{ScreenW: 120, ScreenH: 40, TickRate: 30, Seed: 7}
	if got := set.WithDefaults(); got != set {
		t.Errorf("WithDefaults changed set fields: %+v", got)
	}
}
