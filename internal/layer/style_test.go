package layer

import (
	"math"
	"testing"
)

func TestParseColor(t *testing.T) {
	tests := []struct {
		name    string
		in      string
		wantHex string
		wantR   uint8
		wantG   uint8
		wantB   uint8
	}{
		{"long form", "#FF8800", "#ff8800", 255, 136, 0},
		{"lowercase", "#00ff00", "#00ff00", 0, 255, 0},
		{"short form", "#f00", "#ff0000", 255, 0, 0},
		{"missing hash", "0000ff", "#0000ff", 0, 0, 255},
		{"surrounding space", "  #ffffff ", "#ffffff", 255, 255, 255},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseColor(tt.in)
			if err != nil {
				t.Fatalf("ParseColor(%q) failed: %v", tt.in, err)
			}
			if got.Hex != tt.wantHex {
				t.Errorf("Hex: got %q, want %q", got.Hex, tt.wantHex)
			}
			if got.R != tt.wantR || got.G != tt.wantG || got.B != tt.wantB {
				t.Errorf("RGB: got (%d,%d,%d), want (%d,%d,%d)",
					got.R, got.G, got.B, tt.wantR, tt.wantG, tt.wantB)
			}
		})
	}
}

func TestParseColor_HSL(t *testing.T) {
	got, err := ParseColor("#ff0000")
	if err != nil {
		t.Fatalf("ParseColor failed: %v", err)
	}
	if math.Abs(got.H-0) > 0.5 {
		t.Errorf("H: got %.2f, want ~0", got.H)
	}
	if math.Abs(got.S-1) > 0.01 {
		t.Errorf("S: got %.2f, want ~1", got.S)
	}
	if math.Abs(got.L-0.5) > 0.01 {
		t.Errorf("L: got %.2f, want ~0.5", got.L)
	}
}

func TestParseColor_Invalid(t *testing.T) {
	for _, in := range []string{"", "#12345", "notacolor", "#gggggg"} {
		if _, err := ParseColor(in); err == nil {
			t.Errorf("ParseColor(%q): expected error", in)
		}
	}
}
