package animate

import (
	"github.com/bft-labs/gifloop/internal/domain"
	"github.com/bft-labs/gifloop/pkg/log"
)

// transparentFlag is bit 0 of the Graphic Control Extension packed byte.
const transparentFlag = 0x01

// tableDecision records what happened to a frame's palette.
type tableDecision string

const (
	tableVerbatim tableDecision = "verbatim" // first frame, written as parsed
	tableInherit  tableDecision = "inherit"  // frame has no palette of its own
	tableReused   tableDecision = "reused"   // identical to the global table, dropped
	tableKept     tableDecision = "kept"     // written as a local color table
)

// composer turns parsed frames into frame records against the global
// color table of the first frame.
type composer struct {
	global      domain.ColorTable
	disposal    domain.Disposal
	transparent *domain.RGB
	logger      log.Logger
}

// appendFrame appends the frame record for f: a Graphic Control Extension,
// the image descriptor, an optional local color table and the image data.
func (c *composer) appendFrame(dst []byte, f *Frame, delay uint16) []byte {
	dst = c.appendGraphicControl(dst, f, delay)

	packed, table, decision := c.reconcile(f)
	dst = append(dst, f.Descriptor[:domain.ImageDescriptorLen-1]...)
	dst = append(dst, byte(packed))
	dst = append(dst, table...)
	dst = append(dst, f.ImageData...)

	c.logger.Debug("frame composed",
		log.Int("frame", f.Index),
		log.Int("delay", int(delay)),
		log.String("table", string(decision)),
		log.Hex("packed", byte(packed)),
		log.Int("skipped_extensions", f.SkippedExtensions),
		log.Int("dropped_bytes", f.Trailing),
	)
	return dst
}

// reconcile decides whether f keeps a local color table and returns the
// image descriptor packed byte to write with it.
//
// The first frame is taken as parsed. For later frames a palette equal to
// the global table is dropped and only the table flag is cleared. Any
// other palette is written as a local table with the flag set and the
// size bits set to the palette's own exponent.
func (c *composer) reconcile(f *Frame) (domain.Packed, domain.ColorTable, tableDecision) {
	packed := f.DescriptorPacked()
	if f.Index == 0 {
		return packed, f.Local, tableVerbatim
	}
	palette, exponent, source := f.Palette()
	switch {
	case source == PaletteNone:
		return packed, nil, tableInherit
	case palette.Equal(c.global):
		return packed.WithColorTable(false), nil, tableReused
	default:
		return packed.WithColorTable(true).WithSizeExponent(exponent), palette, tableKept
	}
}

// appendGraphicControl appends the 8-byte Graphic Control Extension for f.
func (c *composer) appendGraphicControl(dst []byte, f *Frame, delay uint16) []byte {
	flags := byte(c.disposal&0x07) << 2
	var index byte
	if c.transparent != nil {
		palette, _, _ := f.Palette()
		if i := palette.IndexOf(*c.transparent); i >= 0 {
			flags |= transparentFlag
			index = byte(i)
		}
	}
	return append(dst,
		domain.ExtensionIntroducer, domain.GraphicControlLabel,
		0x04, // block size
		flags,
		byte(delay), byte(delay>>8),
		index,
		0x00, // block terminator
	)
}
