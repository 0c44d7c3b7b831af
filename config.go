package asciivision

import "math"

// Tone setting limits. Setters clamp into these ranges instead of failing.
const (
	MinBrightness = -1.0
	MaxBrightness = 1.0
	MinContrast   = 0.1
	MaxContrast   = 3.0

	DefaultBrightness = 0.0
	DefaultContrast   = 1.0
)

// Config holds the settings the frame transform reads. The zero value is not
// the default configuration; use DefaultConfig or Reset.
//
// Config is mutated between frames by whatever control surface the host
// has. It is not safe for concurrent use.
type Config struct {
	brightness      float32
	contrast        float32
	useDetailedRamp bool
	invert          bool
}

// DefaultConfig returns brightness 0, contrast 1, detailed ramp, no invert.
func DefaultConfig() Config {
	return Config{
		brightness:      DefaultBrightness,
		contrast:        DefaultContrast,
		useDetailedRamp: true,
		invert:          false,
	}
}

// Reset restores the default configuration.
func (c *Config) Reset() {
	*c = DefaultConfig()
}

// SetBrightness stores value clamped to [-1, 1]. NaN restores the default.
func (c *Config) SetBrightness(value float32) {
	if math.IsNaN(float64(value)) {
		value = DefaultBrightness
	}
	c.brightness = clamp(value, MinBrightness, MaxBrightness)
}

// Brightness returns the additive brightness shift.
func (c *Config) Brightness() float32 {
	return c.brightness
}

// SetContrast stores value clamped to [0.1, 3]. NaN restores the default.
func (c *Config) SetContrast(value float32) {
	if math.IsNaN(float64(value)) {
		value = DefaultContrast
	}
	c.contrast = clamp(value, MinContrast, MaxContrast)
}

// Contrast returns the contrast multiplier.
func (c *Config) Contrast() float32 {
	return c.contrast
}

// SetUseDetailedRamp selects the 70 character ramp (true) or the 10
// character ramp (false).
func (c *Config) SetUseDetailedRamp(v bool) {
	c.useDetailedRamp = v
}

// UseDetailedRamp reports whether the 70 character ramp is selected.
func (c *Config) UseDetailedRamp() bool {
	return c.useDetailedRamp
}

// ToggleRamp switches between the detailed and simple ramps.
func (c *Config) ToggleRamp() {
	c.useDetailedRamp = !c.useDetailedRamp
}

// SetInvert enables or disables brightness inversion.
func (c *Config) SetInvert(v bool) {
	c.invert = v
}

// Invert reports whether brightness inversion is enabled.
func (c *Config) Invert() bool {
	return c.invert
}

// ToggleInvert flips brightness inversion.
func (c *Config) ToggleInvert() {
	c.invert = !c.invert
}

// level runs a color sample through luminance, tone adjustment and the
// optional inversion, producing the value handed to the ramp.
func (c *Config) level(r, g, b uint8) uint8 {
	v := AdjustTone(Luminance(r, g, b), c.brightness, c.contrast)
	if c.invert {
		v = Invert(v)
	}
	return v
}
