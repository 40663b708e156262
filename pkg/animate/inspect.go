package animate

import (
	"errors"

	"github.com/bft-labs/gifloop/internal/domain"
)

// Summary describes a single GIF as seen by the assembler.
type Summary struct {
	Signature     string
	Width, Height int

	// GlobalEntries is the global color table size, zero when absent.
	GlobalEntries int

	// Animated is set when the GIF carries a NETSCAPE looping extension.
	// The remaining image fields are left zero in that case.
	Animated bool

	Palette           PaletteSource
	PaletteEntries    int
	Interlaced        bool
	SkippedExtensions int
	ImageDataBytes    int
}

// Inspect reports how the assembler sees raw. It fails with the same
// errors as ParseFrame except that animated sources are reported through
// Summary.Animated.
func Inspect(raw []byte) (Summary, error) {
	f, offset, err := parseHeader(0, raw)
	if err != nil {
		return Summary{}, err
	}
	s := Summary{
		Signature: f.Signature,
		Width:     f.Width(),
		Height:    f.Height(),
	}
	if p := f.ScreenPacked(); p.HasColorTable() {
		s.GlobalEntries = p.Entries()
	}
	err = CheckNotAnimated(0, raw, offset)
	if errors.Is(err, domain.ErrAlreadyAnimatedSource) {
		s.Animated = true
		return s, nil
	}
	if err != nil {
		return s, err
	}

	f, err = ParseFrame(0, raw)
	if err != nil {
		return s, err
	}
	palette, _, source := f.Palette()
	s.Palette = source
	s.PaletteEntries = palette.Len()
	s.Interlaced = f.DescriptorPacked().Interlaced()
	s.SkippedExtensions = f.SkippedExtensions
	s.ImageDataBytes = len(f.ImageData)
	return s, nil
}
