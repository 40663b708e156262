package domain

// Packed is the packed fields byte found at offset 4 of the logical screen
// descriptor and offset 9 of an image descriptor.
//
// Screen descriptor layout (MSB first):
//
//	7    global color table flag
//	6-4  color resolution
//	3    sort flag
//	2-0  size of global color table
//
// Image descriptor layout (MSB first):
//
//	7    local color table flag
//	6    interlace flag
//	5    sort flag
//	4-3  reserved
//	2-0  size of local color table
//
// The color table flag and size bits share positions in both layouts, so a
// single type serves both descriptors.
type Packed byte

const (
	packedTableFlag      Packed = 0x80
	packedInterlace      Packed = 0x40
	packedResolutionMask Packed = 0x70
	packedScreenSort     Packed = 0x08
	packedImageSort      Packed = 0x20
	packedSizeMask       Packed = 0x07
)

// MaxSizeExponent is the largest color table size exponent (256 entries).
const MaxSizeExponent = 7

// NewScreenPacked builds a logical screen descriptor packed byte.
// resolution and exponent are truncated to three bits.
func NewScreenPacked(present bool, resolution int, sorted bool, exponent int) Packed {
	p := Packed(resolution&0x07) << 4
	if sorted {
		p |= packedScreenSort
	}
	return p.WithColorTable(present).WithSizeExponent(exponent)
}

// HasColorTable reports whether a color table follows the descriptor.
func (p Packed) HasColorTable() bool {
	return p&packedTableFlag != 0
}

// ColorResolution returns the raw color resolution bits of a screen
// descriptor. Bits per primary color is the returned value plus one.
func (p Packed) ColorResolution() int {
	return int(p&packedResolutionMask) >> 4
}

// ScreenSorted reports the sort flag of a screen descriptor.
func (p Packed) ScreenSorted() bool {
	return p&packedScreenSort != 0
}

// ImageSorted reports the sort flag of an image descriptor.
func (p Packed) ImageSorted() bool {
	return p&packedImageSort != 0
}

// Interlaced reports the interlace flag of an image descriptor.
func (p Packed) Interlaced() bool {
	return p&packedInterlace != 0
}

// SizeExponent returns n where the color table holds 2^(n+1) entries.
func (p Packed) SizeExponent() int {
	return int(p & packedSizeMask)
}

// Entries returns the number of color table entries encoded by the size
// bits, regardless of the table flag.
func (p Packed) Entries() int {
	return TableEntries(p.SizeExponent())
}

// TableLen returns the byte length of the color table following the
// descriptor, or zero when the table flag is clear.
func (p Packed) TableLen() int {
	if !p.HasColorTable() {
		return 0
	}
	return 3 * p.Entries()
}

// WithColorTable returns p with the color table flag set or cleared.
// All other bits are kept.
func (p Packed) WithColorTable(present bool) Packed {
	if present {
		return p | packedTableFlag
	}
	return p &^ packedTableFlag
}

// WithSizeExponent returns p with the size bits replaced by n.
// All other bits are kept.
func (p Packed) WithSizeExponent(n int) Packed {
	return p&^packedSizeMask | Packed(n)&packedSizeMask
}

// TableEntries returns 2^(n+1), the entry count for size exponent n.
func TableEntries(n int) int {
	return 2 << (n & int(packedSizeMask))
}

// ExponentFor returns the size exponent of a table with the given number
// of entries, and whether entries is a valid table size.
func ExponentFor(entries int) (int, bool) {
	for n := 0; n <= MaxSizeExponent; n++ {
		if TableEntries(n) == entries {
			return n, true
		}
	}
	return 0, false
}
