package config

import (
	"fmt"
	"strconv"
	"strings"

	"golang.org/x/image/colornames"

	"github.com/go-drift/colorring/pkg/graphics"
)

// NoneColor is the config spelling of graphics.ColorNone.
const NoneColor = "none"

// ParseColor accepts "#RRGGBB", "#AARRGGBB", "0xAARRGGBB", an SVG color
// name such as "teal", or "none".
func ParseColor(s string) (graphics.Color, error) {
	s = strings.TrimSpace(s)
	lower := strings.ToLower(s)

	switch {
	case lower == NoneColor:
		return graphics.ColorNone, nil
	case strings.HasPrefix(lower, "#"):
		return parseHex(s, lower[1:])
	case strings.HasPrefix(lower, "0x"):
		hex := lower[2:]
		if len(hex) != 8 {
			return 0, fmt.Errorf("color %q: 0x form needs 8 hex digits", s)
		}
		return parseHex(s, hex)
	}

	if c, ok := colornames.Map[lower]; ok {
		return graphics.FromStdColor(c), nil
	}
	return 0, fmt.Errorf("unknown color %q", s)
}

func parseHex(orig, hex string) (graphics.Color, error) {
	v, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return 0, fmt.Errorf("color %q: %w", orig, err)
	}
	switch len(hex) {
	case 6:
		return graphics.Color(0xFF000000 | uint32(v)), nil
	case 8:
		return graphics.Color(uint32(v)), nil
	default:
		return 0, fmt.Errorf("color %q: want 6 or 8 hex digits", orig)
	}
}

// FormatColor returns the "#AARRGGBB" spelling of c, or "none".
func FormatColor(c graphics.Color) string {
	if c.IsNone() {
		return NoneColor
	}
	return fmt.Sprintf("#%08X", uint32(c))
}
