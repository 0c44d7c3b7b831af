package asciivision

import (
	"strings"
	"testing"
)

func TestStatus(t *testing.T) {
	t.Parallel()

	p := NewProcessor()
	got := p.Status(80, 40)
	want := "[80x40] B:0.0 C:1.0 | b/B:bright c/C:contrast r:ramp i:inv +/-:size 0:reset"
	if got != want {
		t.Errorf("Status = %q, want %q", got, want)
	}

	p.SetBrightness(0.5)
	p.SetContrast(2.5)
	if got := p.Status(120, 60); !strings.HasPrefix(got, "[120x60] B:0.5 C:2.5 |") {
		t.Errorf("Unexpected status %q", got)
	}
}

func TestOutputSize(t *testing.T) {
	t.Parallel()

	tests := []struct {
		srcW, srcH, cols int
		scale            float64
		wantW, wantH     int
	}{
		{640, 480, 80, 2.0, 80, 30},
		{100, 10, 80, 2.0, 80, 4},
		{1000, 1, 80, 2.0, 80, 1},
		{100, 100, 50, 0, 50, 50},
		{0, 100, 50, 2.0, 50, 0},
		{100, 100, -5, 2.0, 0, 0},
	}
	for _, tc := range tests {
		w, h := OutputSize(tc.srcW, tc.srcH, tc.cols, tc.scale)
		if w != tc.wantW || h != tc.wantH {
			t.Errorf("OutputSize(%d, %d, %d, %v) = %dx%d, want %dx%d",
				tc.srcW, tc.srcH, tc.cols, tc.scale, w, h, tc.wantW, tc.wantH)
		}
	}
}

func TestControlsTone(t *testing.T) {
	t.Parallel()

	p := NewProcessor()
	c := &Controls{Processor: p, Columns: 80}

	for i := 0; i < 3; i++ {
		if a := c.HandleKey('B'); a != ActionRedraw {
			t.Fatalf("B returned %v, want ActionRedraw", a)
		}
	}
	if p.Brightness() != 0.3 {
		t.Errorf("Three brightness steps should give 0.3, got %v", p.Brightness())
	}

	for i := 0; i < 30; i++ {
		c.HandleKey('b')
	}
	if p.Brightness() != -1 {
		t.Errorf("Brightness should stop at -1, got %v", p.Brightness())
	}

	c.HandleKey('C')
	if p.Contrast() != 1.1 {
		t.Errorf("Contrast step up should give 1.1, got %v", p.Contrast())
	}
	for i := 0; i < 30; i++ {
		c.HandleKey('c')
	}
	if p.Contrast() != 0.1 {
		t.Errorf("Contrast should stop at 0.1, got %v", p.Contrast())
	}
}

func TestControlsToggles(t *testing.T) {
	t.Parallel()

	p := NewProcessor()
	c := &Controls{Processor: p, Columns: 80}

	c.HandleKey('r')
	c.HandleKey('i')
	if p.UseDetailedRamp() || !p.Invert() {
		t.Fatal("r and i should toggle ramp and invert")
	}

	p.SetBrightness(0.7)
	if a := c.HandleKey('0'); a != ActionRedraw {
		t.Errorf("0 returned %v, want ActionRedraw", a)
	}
	if p.Config != DefaultConfig() {
		t.Errorf("0 should reset the configuration, got %+v", p.Config)
	}

	if a := c.HandleKey('x'); a != ActionNone {
		t.Errorf("Unbound key returned %v, want ActionNone", a)
	}
	if a := c.HandleKey('q'); a != ActionQuit {
		t.Errorf("q returned %v, want ActionQuit", a)
	}
}

func TestControlsResize(t *testing.T) {
	t.Parallel()

	c := &Controls{Processor: NewProcessor(), Columns: 80}

	if a := c.HandleKey('+'); a != ActionResize || c.Columns != 90 {
		t.Errorf("+ gave %v with %d columns, want ActionResize with 90", a, c.Columns)
	}
	if a := c.HandleKey('-'); a != ActionResize || c.Columns != 80 {
		t.Errorf("- gave %v with %d columns, want ActionResize with 80", a, c.Columns)
	}

	c.Columns = MaxColumns
	if a := c.HandleKey('+'); a != ActionNone || c.Columns != MaxColumns {
		t.Errorf("+ at the limit gave %v with %d columns", a, c.Columns)
	}

	c.Columns = 15
	if a := c.HandleKey('-'); a != ActionResize || c.Columns != MinColumns {
		t.Errorf("- near the limit gave %v with %d columns, want %d", a, c.Columns, MinColumns)
	}
}
