package asciivision

import (
	"math"
	"testing"
)

func TestDefaultConfig(t *testing.T) {
	t.Parallel()

	c := DefaultConfig()
	if c.Brightness() != 0 || c.Contrast() != 1 || !c.UseDetailedRamp() || c.Invert() {
		t.Errorf("Unexpected defaults: brightness=%v contrast=%v detailed=%v invert=%v",
			c.Brightness(), c.Contrast(), c.UseDetailedRamp(), c.Invert())
	}
}

func TestSettersClamp(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		set  func(*Config)
		get  func(*Config) float32
		want float32
	}{
		{"contrast high", func(c *Config) { c.SetContrast(10) }, (*Config).Contrast, 3.0},
		{"contrast low", func(c *Config) { c.SetContrast(-5) }, (*Config).Contrast, 0.1},
		{"contrast in range", func(c *Config) { c.SetContrast(1.7) }, (*Config).Contrast, 1.7},
		{"contrast NaN", func(c *Config) { c.SetContrast(float32(math.NaN())) }, (*Config).Contrast, 1.0},
		{"brightness high", func(c *Config) { c.SetBrightness(2) }, (*Config).Brightness, 1.0},
		{"brightness low", func(c *Config) { c.SetBrightness(-3) }, (*Config).Brightness, -1.0},
		{"brightness in range", func(c *Config) { c.SetBrightness(-0.4) }, (*Config).Brightness, -0.4},
		{"brightness inf", func(c *Config) { c.SetBrightness(float32(math.Inf(1))) }, (*Config).Brightness, 1.0},
		{"brightness NaN", func(c *Config) { c.SetBrightness(float32(math.NaN())) }, (*Config).Brightness, 0},
	}
	for _, tc := range tests {
		c := DefaultConfig()
		c.SetBrightness(0.3)
		c.SetContrast(2)
		tc.set(&c)
		if got := tc.get(&c); got != tc.want {
			t.Errorf("%s: got %v, want %v", tc.name, got, tc.want)
		}
	}
}

func TestTogglesAndReset(t *testing.T) {
	t.Parallel()

	c := DefaultConfig()
	c.ToggleRamp()
	c.ToggleInvert()
	if c.UseDetailedRamp() || !c.Invert() {
		t.Fatal("Toggles should flip ramp and invert")
	}
	c.ToggleRamp()
	if !c.UseDetailedRamp() {
		t.Error("Second ToggleRamp should restore the detailed ramp")
	}

	c.SetUseDetailedRamp(false)
	c.SetInvert(false)
	if c.UseDetailedRamp() || c.Invert() {
		t.Error("Setters should store the given values")
	}

	c.SetBrightness(0.8)
	c.SetContrast(0.2)
	c.Reset()
	if c != DefaultConfig() {
		t.Errorf("Reset should restore defaults, got %+v", c)
	}
}
