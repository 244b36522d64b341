package ufo

import (
	"fmt"
	"strconv"
	"strings"
)

// ParseColor parses a .glif color string "r,g,b,a". Each channel must lie
// in [0, 1].
func ParseColor(s string) (Color, error) {
	parts := strings.Split(s, ",")
	if len(parts) != 4 {
		return Color{}, fmt.Errorf("ufo: color %q: expected 4 channels, got %d", s, len(parts))
	}
	var ch [4]float64
	for i, p := range parts {
		f, err := strconv.ParseFloat(strings.TrimSpace(p), 64)
		if err != nil {
			return Color{}, fmt.Errorf("ufo: color %q: %w", s, err)
		}
		if f < 0 || f > 1 {
			return Color{}, fmt.Errorf("ufo: color %q: channel %d out of range", s, i)
		}
		ch[i] = f
	}
	return Color{Red: ch[0], Green: ch[1], Blue: ch[2], Alpha: ch[3]}, nil
}
