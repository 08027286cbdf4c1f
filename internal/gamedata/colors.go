package gamedata

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/gdamore/tcell/v2"
)

// ParseHexColor converts "#RRGGBB" (or "RRGGBB") to a tcell.Color. Named
// colors understood by tcell, such as "silver", are accepted as well.
func ParseHexColor(s string) (tcell.Color, error) {
	if named, ok := tcell.ColorNames[strings.ToLower(s)]; ok {
		return named, nil
	}

	hex := strings.TrimPrefix(s, "#")
	if len(hex) != 6 {
		return tcell.ColorDefault, fmt.Errorf("invalid color %q", s)
	}

	rgb, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return tcell.ColorDefault, fmt.Errorf("invalid color %q: %w", s, err)
	}

	return tcell.NewHexColor(int32(rgb)), nil
}

// MustParseHexColor converts a color string to tcell.Color, panicking on error.
func MustParseHexColor(s string) tcell.Color {
	color, err := ParseHexColor(s)
	if err != nil {
		panic(err)
	}
	return color
}
