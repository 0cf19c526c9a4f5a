package layer

import (
	"fmt"
	"strings"

	colorful "github.com/lucasb-eyer/go-colorful"
)

// ColorInfo is a style color in the representations the editor front end
// consumes.
type ColorInfo struct {
	Hex string  `json:"hex"` // normalized "#rrggbb"
	R   uint8   `json:"r"`
	G   uint8   `json:"g"`
	B   uint8   `json:"b"`
	H   float64 `json:"h"` // hue, 0-360 degrees
	S   float64 `json:"s"` // saturation, 0-1
	L   float64 `json:"l"` // lightness, 0-1
}

// ParseColor validates and normalizes a layer style color. Accepted input is
// hex in long ("#rrggbb") or short ("#rgb") form, case-insensitive, with or
// without the leading "#".
func ParseColor(s string) (*ColorInfo, error) {
	trimmed := strings.TrimSpace(s)
	if trimmed == "" {
		return nil, fmt.Errorf("empty color")
	}
	if !strings.HasPrefix(trimmed, "#") {
		trimmed = "#" + trimmed
	}
	if len(trimmed) != 4 && len(trimmed) != 7 {
		return nil, fmt.Errorf("invalid color %q: want #rgb or #rrggbb", s)
	}
	c, err := colorful.Hex(strings.ToLower(trimmed))
	if err != nil {
		return nil, fmt.Errorf("invalid color %q: %w", s, err)
	}
	r, g, b := c.RGB255()
	h, sat, l := c.Hsl()
	return &ColorInfo{
		Hex: c.Hex(),
		R:   r,
		G:   g,
		B:   b,
		H:   h,
		S:   sat,
		L:   l,
	}, nil
}
