package domain

import (
	"bytes"
	"fmt"
	"strconv"
	"strings"
)

// RGB is a single color table entry.
type RGB struct {
	R, G, B uint8
}

func (c RGB) String() string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}

// ParseRGB parses a hex color in "#rgb" or "#rrggbb" form. The leading
// '#' is optional.
func ParseRGB(s string) (RGB, error) {
	h := strings.TrimPrefix(strings.TrimSpace(s), "#")
	if len(h) == 3 {
		h = string([]byte{h[0], h[0], h[1], h[1], h[2], h[2]})
	}
	if len(h) != 6 {
		return RGB{}, fmt.Errorf("parse color %q: want #rgb or #rrggbb", s)
	}
	v, err := strconv.ParseUint(h, 16, 32)
	if err != nil {
		return RGB{}, fmt.Errorf("parse color %q: %w", s, err)
	}
	return RGB{R: uint8(v >> 16), G: uint8(v >> 8), B: uint8(v)}, nil
}

// ColorTable is a palette laid out as consecutive RGB triplets, exactly as
// it appears after a screen or image descriptor.
type ColorTable []byte

// Len returns the number of entries in the table.
func (t ColorTable) Len() int {
	return len(t) / 3
}

// At returns entry i.
func (t ColorTable) At(i int) RGB {
	return RGB{R: t[3*i], G: t[3*i+1], B: t[3*i+2]}
}

// Equal reports whether t and u are byte-identical tables of equal length.
func (t ColorTable) Equal(u ColorTable) bool {
	return len(t) == len(u) && bytes.Equal(t, u)
}

// IndexOf returns the first index holding c, or -1.
func (t ColorTable) IndexOf(c RGB) int {
	for i := 0; i < t.Len(); i++ {
		if t.At(i) == c {
			return i
		}
	}
	return -1
}
