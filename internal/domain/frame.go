package domain

// Wire constants of the GIF89a grammar.
const (
	// ExtensionIntroducer starts every extension block ('!').
	ExtensionIntroducer = 0x21

	// ImageSeparator starts an image descriptor (',').
	ImageSeparator = 0x2c

	// Trailer terminates a GIF data stream (';').
	Trailer = 0x3b

	// GraphicControlLabel identifies a Graphic Control Extension.
	GraphicControlLabel = 0xf9

	// ApplicationLabel identifies an Application Extension.
	ApplicationLabel = 0xff
)

// Fixed block sizes.
const (
	// SignatureLen is the length of "GIF87a" / "GIF89a".
	SignatureLen = 6

	// ScreenDescriptorLen is the length of the logical screen descriptor.
	ScreenDescriptorLen = 7

	// HeaderLen is the signature plus the logical screen descriptor.
	HeaderLen = SignatureLen + ScreenDescriptorLen

	// ImageDescriptorLen is the image separator plus the nine descriptor bytes.
	ImageDescriptorLen = 10

	// GraphicControlLen is the full Graphic Control Extension block.
	GraphicControlLen = 8

	// LoopExtensionLen is the full NETSCAPE2.0 looping extension block.
	LoopExtensionLen = 19
)

// Signatures accepted on input, and the one always written on output.
const (
	Signature87a = "GIF87a"
	Signature89a = "GIF89a"
)

// NetscapeID is the application identifier of the looping extension.
// Only the first eight bytes are compared when detecting animated sources.
const NetscapeID = "NETSCAPE2.0"

// MaxUint16 bounds the 16-bit little endian fields (delay, loop count).
const MaxUint16 = 0xffff

// FrameSet is an ordered list of single-frame GIF buffers and their
// display delays, as produced by a frame source.
// It maintains the invariant that Frames and Delays have the same length.
type FrameSet struct {
	// Frames holds one complete single-image GIF per entry.
	Frames [][]byte

	// Delays holds the per-frame delay in centiseconds.
	Delays []int

	// Names identifies each frame for logging, typically a file name.
	Names []string
}

// Add appends a frame and its delay to the set.
func (s *FrameSet) Add(name string, frame []byte, delay int) {
	s.Frames = append(s.Frames, frame)
	s.Delays = append(s.Delays, delay)
	s.Names = append(s.Names, name)
}

// Len returns the number of frames in the set.
func (s *FrameSet) Len() int {
	return len(s.Frames)
}

// TotalBytes returns the summed length of all frame buffers.
func (s *FrameSet) TotalBytes() int {
	var n int
	for _, f := range s.Frames {
		n += len(f)
	}
	return n
}

// ClampLoopCount maps a requested loop count onto the 16-bit field.
// Negative values mean loop forever (0).
func ClampLoopCount(n int) uint16 {
	return clampUint16(n)
}

// ClampDelay maps a delay in centiseconds onto the 16-bit field.
func ClampDelay(cs int) uint16 {
	return clampUint16(cs)
}

func clampUint16(n int) uint16 {
	switch {
	case n < 0:
		return 0
	case n > MaxUint16:
		return MaxUint16
	default:
		return uint16(n)
	}
}

// Disposal is the Graphic Control Extension disposal method.
type Disposal uint8

const (
	DisposalUnspecified Disposal = 0
	DisposalNone        Disposal = 1
	DisposalBackground  Disposal = 2
	DisposalPrevious    Disposal = 3
)

// Valid reports whether d is one of the defined disposal methods.
func (d Disposal) Valid() bool {
	return d <= DisposalPrevious
}

func (d Disposal) String() string {
	switch d {
	case DisposalUnspecified:
		return "unspecified"
	case DisposalNone:
		return "none"
	case DisposalBackground:
		return "background"
	case DisposalPrevious:
		return "previous"
	default:
		return "reserved"
	}
}

// ParseDisposal maps a disposal name or its numeric form to a Disposal.
func ParseDisposal(s string) (Disposal, bool) {
	switch s {
	case "unspecified", "0":
		return DisposalUnspecified, true
	case "none", "1":
		return DisposalNone, true
	case "background", "2":
		return DisposalBackground, true
	case "previous", "3":
		return DisposalPrevious, true
	}
	return 0, false
}
