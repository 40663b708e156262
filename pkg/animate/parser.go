package animate

import (
	"encoding/binary"
	"fmt"

	"github.com/bft-labs/gifloop/internal/domain"
)

// PaletteSource names where a frame's effective palette comes from.
type PaletteSource int

const (
	// PaletteNone means the frame carries no color table at all.
	PaletteNone PaletteSource = iota
	// PaletteGlobal means the frame is drawn with its own global table.
	PaletteGlobal
	// PaletteLocal means the image descriptor carries a local table.
	PaletteLocal
)

func (s PaletteSource) String() string {
	switch s {
	case PaletteGlobal:
		return "global"
	case PaletteLocal:
		return "local"
	default:
		return "none"
	}
}

// Frame is a parsed single-image GIF. All byte slices alias the input
// buffer and must not be modified.
type Frame struct {
	// Index is the frame's position in the assembly input.
	Index int

	// Signature is "GIF87a" or "GIF89a".
	Signature string

	// Screen is the 7-byte logical screen descriptor.
	Screen []byte

	// Global is the global color table, empty when absent.
	Global domain.ColorTable

	// Tail holds everything after the global color table with the
	// trailer removed.
	Tail []byte

	// Descriptor is the 10-byte image descriptor including the separator.
	Descriptor []byte

	// Local is the local color table, empty when absent.
	Local domain.ColorTable

	// ImageData is the LZW minimum code size followed by the data
	// sub-blocks and their terminator.
	ImageData []byte

	// SkippedExtensions counts extension blocks found between the global
	// color table and the image descriptor. They are not carried into the
	// animation; the assembler writes its own Graphic Control Extension.
	SkippedExtensions int

	// Trailing is the number of tail bytes after the image data that are
	// not carried into the animation.
	Trailing int
}

// ScreenPacked returns the packed fields of the logical screen descriptor.
func (f *Frame) ScreenPacked() domain.Packed {
	return domain.Packed(f.Screen[4])
}

// DescriptorPacked returns the packed fields of the image descriptor.
func (f *Frame) DescriptorPacked() domain.Packed {
	return domain.Packed(f.Descriptor[9])
}

// Width returns the logical screen width.
func (f *Frame) Width() int {
	return int(binary.LittleEndian.Uint16(f.Screen[0:2]))
}

// Height returns the logical screen height.
func (f *Frame) Height() int {
	return int(binary.LittleEndian.Uint16(f.Screen[2:4]))
}

// Palette returns the palette the frame's image is drawn with, its size
// exponent and where it came from. A local table wins over the frame's
// own global table.
func (f *Frame) Palette() (domain.ColorTable, int, PaletteSource) {
	if p := f.DescriptorPacked(); p.HasColorTable() {
		return f.Local, p.SizeExponent(), PaletteLocal
	}
	if p := f.ScreenPacked(); p.HasColorTable() {
		return f.Global, p.SizeExponent(), PaletteGlobal
	}
	return nil, 0, PaletteNone
}

// ParseFrame validates raw as a single-image GIF and slices it into its
// blocks. index is recorded on the frame and used in error reports.
func ParseFrame(index int, raw []byte) (*Frame, error) {
	f, offset, err := parseHeader(index, raw)
	if err != nil {
		return nil, err
	}
	if err := CheckNotAnimated(index, raw, offset); err != nil {
		return nil, err
	}
	if raw[len(raw)-1] != domain.Trailer {
		return nil, domain.NewFrameError(index, len(raw)-1, domain.ErrInvalidFrameFormat, "last byte is not a trailer")
	}
	f.Tail = raw[offset : len(raw)-1]
	if err := f.splitTail(offset); err != nil {
		return nil, err
	}
	return f, nil
}

// parseHeader reads the signature, the logical screen descriptor and the
// global color table, returning the offset of the first block after them.
func parseHeader(index int, raw []byte) (*Frame, int, error) {
	if len(raw) < domain.HeaderLen {
		return nil, 0, domain.NewFrameError(index, len(raw), domain.ErrInvalidFrameFormat,
			fmt.Sprintf("truncated header: %d bytes", len(raw)))
	}
	sig := string(raw[:domain.SignatureLen])
	if sig != domain.Signature87a && sig != domain.Signature89a {
		return nil, 0, domain.NewFrameError(index, 0, domain.ErrInvalidFrameFormat,
			fmt.Sprintf("unknown signature %q", sig))
	}
	f := &Frame{
		Index:     index,
		Signature: sig,
		Screen:    raw[domain.SignatureLen:domain.HeaderLen],
	}
	offset := domain.HeaderLen + f.ScreenPacked().TableLen()
	if offset > len(raw) {
		return nil, 0, domain.NewFrameError(index, domain.HeaderLen, domain.ErrInvalidFrameFormat,
			fmt.Sprintf("global color table of %d bytes exceeds frame", f.ScreenPacked().TableLen()))
	}
	f.Global = raw[domain.HeaderLen:offset]
	return f, offset, nil
}

// splitTail locates the image descriptor, local color table and image data
// in f.Tail. base is the offset of the tail within the raw frame.
//
// The first tail byte selects the layout: ',' means the descriptor comes
// first; '!' means a stray extension, usually an 8-byte Graphic Control
// Extension, precedes it and is skipped.
func (f *Frame) splitTail(base int) error {
	tail := f.Tail
	pos := 0
	for pos < len(tail) && tail[pos] == domain.ExtensionIntroducer {
		n, err := extensionLen(tail[pos:])
		if err != nil {
			return domain.NewFrameError(f.Index, base+pos, domain.ErrInvalidFrameFormat, err.Error())
		}
		pos += n
		f.SkippedExtensions++
	}
	if pos >= len(tail) {
		return domain.NewFrameError(f.Index, base+pos, domain.ErrInvalidFrameFormat, "no image descriptor")
	}
	if tail[pos] != domain.ImageSeparator {
		return domain.NewFrameError(f.Index, base+pos, domain.ErrInvalidFrameFormat,
			fmt.Sprintf("unexpected block introducer %#02x", tail[pos]))
	}
	if pos+domain.ImageDescriptorLen > len(tail) {
		return domain.NewFrameError(f.Index, base+pos, domain.ErrInvalidFrameFormat, "truncated image descriptor")
	}
	f.Descriptor = tail[pos : pos+domain.ImageDescriptorLen]
	pos += domain.ImageDescriptorLen

	n := f.DescriptorPacked().TableLen()
	if pos+n > len(tail) {
		return domain.NewFrameError(f.Index, base+pos, domain.ErrInvalidFrameFormat,
			fmt.Sprintf("local color table of %d bytes exceeds frame", n))
	}
	f.Local = tail[pos : pos+n]
	pos += n

	n, err := imageDataLen(tail[pos:])
	if err != nil {
		return domain.NewFrameError(f.Index, base+pos, domain.ErrInvalidFrameFormat, err.Error())
	}
	f.ImageData = tail[pos : pos+n]
	f.Trailing = len(tail) - pos - n
	return nil
}

// extensionLen returns the length of the extension block at the start of
// b: introducer, label and data sub-blocks through the block terminator.
func extensionLen(b []byte) (int, error) {
	if len(b) < 2 {
		return 0, fmt.Errorf("truncated extension block")
	}
	n, err := subBlocksLen(b[2:])
	if err != nil {
		return 0, fmt.Errorf("extension %#02x: %w", b[1], err)
	}
	return 2 + n, nil
}

// imageDataLen returns the length of the table based image data at the
// start of b: the LZW minimum code size and the sub-blocks through the
// block terminator.
func imageDataLen(b []byte) (int, error) {
	if len(b) == 0 {
		return 0, fmt.Errorf("missing image data")
	}
	if lzw := b[0]; lzw < 2 || lzw > 8 {
		return 0, fmt.Errorf("LZW minimum code size %d out of range", lzw)
	}
	n, err := subBlocksLen(b[1:])
	if err != nil {
		return 0, fmt.Errorf("image data: %w", err)
	}
	return 1 + n, nil
}

// subBlocksLen walks a sequence of data sub-blocks and returns its length
// including the zero-length terminator.
func subBlocksLen(b []byte) (int, error) {
	i := 0
	for {
		if i >= len(b) {
			return 0, fmt.Errorf("unterminated data sub-blocks")
		}
		size := int(b[i])
		i++
		if size == 0 {
			return i, nil
		}
		if i+size > len(b) {
			return 0, fmt.Errorf("data sub-block of %d bytes exceeds frame", size)
		}
		i += size
	}
}
