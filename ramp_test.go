package asciivision

import (
	"strings"
	"testing"
)

// rampIndex returns the position of c in the selected ramp, or -1.
func rampIndex(c byte, useDetailed bool) int {
	return strings.IndexByte(Ramp(useDetailed), c)
}

func TestRampLengths(t *testing.T) {
	t.Parallel()

	if len(RampDetailed) != 70 {
		t.Errorf("Expected 70 detailed ramp characters, got %d", len(RampDetailed))
	}
	if len(RampSimple) != 10 {
		t.Errorf("Expected 10 simple ramp characters, got %d", len(RampSimple))
	}
}

func TestRampEndpoints(t *testing.T) {
	t.Parallel()

	if c := SelectCharacter(0, false); c != ' ' {
		t.Errorf("Simple ramp level 0: expected ' ', got %q", c)
	}
	if c := SelectCharacter(255, false); c != '@' {
		t.Errorf("Simple ramp level 255: expected '@', got %q", c)
	}
	if c := SelectCharacter(0, true); c != RampDetailed[0] {
		t.Errorf("Detailed ramp level 0: expected %q, got %q", RampDetailed[0], c)
	}
	if c := SelectCharacter(255, true); c != RampDetailed[len(RampDetailed)-1] {
		t.Errorf("Detailed ramp level 255: expected %q, got %q", RampDetailed[len(RampDetailed)-1], c)
	}
}

func TestRampMonotonic(t *testing.T) {
	t.Parallel()

	for _, detailed := range []bool{true, false} {
		prev := -1
		seen := make(map[byte]bool)
		for level := 0; level <= 255; level++ {
			c := SelectCharacter(uint8(level), detailed)
			idx := rampIndex(c, detailed)
			if idx < prev {
				t.Fatalf("detailed=%v: level %d maps to index %d, below previous %d", detailed, level, idx, prev)
			}
			prev = idx
			seen[c] = true
		}
		if want := len(Ramp(detailed)); len(seen) != want {
			t.Errorf("detailed=%v: expected all %d characters to be reachable, got %d", detailed, want, len(seen))
		}
	}
}

func TestSelectCharacterIntegerDivision(t *testing.T) {
	t.Parallel()

	tests := []struct {
		level    uint8
		detailed bool
		want     byte
	}{
		// 25*9/255 = 0, 29*9/255 = 1
		{25, false, ' '},
		{29, false, '.'},
		// 128*9/255 = 4
		{128, false, '='},
		// 128*69/255 = 34
		{128, true, RampDetailed[34]},
		// 254*69/255 = 68
		{254, true, RampDetailed[68]},
	}
	for _, tc := range tests {
		if got := SelectCharacter(tc.level, tc.detailed); got != tc.want {
			t.Errorf("SelectCharacter(%d, %v) = %q, want %q", tc.level, tc.detailed, got, tc.want)
		}
	}
}
