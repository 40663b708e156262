package animate

import (
	"bytes"
	"testing"

	"github.com/bft-labs/gifloop/internal/domain"
)

var (
	blackWhite = []byte{0x00, 0x00, 0x00, 0xff, 0xff, 0xff}
	redBlue    = []byte{0xff, 0x00, 0x00, 0x00, 0x00, 0xff}
	fourColors = []byte{
		0x00, 0x00, 0x00,
		0xff, 0xff, 0xff,
		0xff, 0x00, 0x00,
		0x00, 0x00, 0xff,
	}

	// onePixel is LZW data for a single pixel of index 0 with a minimum
	// code size of 2: clear, 0, end of information.
	onePixel = []byte{0x02, 0x02, 0x44, 0x01, 0x00}

	// sourceGCE is a Graphic Control Extension as written by encoders
	// that always emit one (delay 7, no transparency).
	sourceGCE = []byte{0x21, 0xf9, 0x04, 0x00, 0x07, 0x00, 0x00, 0x00}

	comment = []byte{0x21, 0xfe, 0x03, 'a', 'b', 'c', 0x00}

	loopExt = append([]byte{0x21, 0xff, 0x0b}, append([]byte("NETSCAPE2.0"), 0x03, 0x01, 0x00, 0x00, 0x00)...)
)

// frameSpec describes a hand built 1x1 single-image GIF.
type frameSpec struct {
	signature string   // defaults to GIF89a
	global    []byte   // global color table, nil for none
	local     []byte   // local color table, nil for none
	prefix    [][]byte // blocks written between the global table and the descriptor
	suffix    []byte   // bytes written after the image data
	noTrailer bool
}

func buildFrame(t testing.TB, spec frameSpec) []byte {
	t.Helper()

	var b bytes.Buffer
	sig := spec.signature
	if sig == "" {
		sig = domain.Signature89a
	}
	b.WriteString(sig)

	b.Write([]byte{0x01, 0x00, 0x01, 0x00})
	b.WriteByte(byte(tablePacked(t, spec.global)))
	b.Write([]byte{0x00, 0x00})
	b.Write(spec.global)

	for _, p := range spec.prefix {
		b.Write(p)
	}

	b.Write([]byte{0x2c, 0x00, 0x00, 0x00, 0x00, 0x01, 0x00, 0x01, 0x00})
	b.WriteByte(byte(tablePacked(t, spec.local)))
	b.Write(spec.local)
	b.Write(onePixel)
	b.Write(spec.suffix)

	if !spec.noTrailer {
		b.WriteByte(0x3b)
	}
	return b.Bytes()
}

// tablePacked returns a packed byte describing table, with a color
// resolution of zero.
func tablePacked(t testing.TB, table []byte) domain.Packed {
	t.Helper()
	if table == nil {
		return 0
	}
	n, ok := domain.ExponentFor(len(table) / 3)
	if !ok || len(table)%3 != 0 {
		t.Fatalf("invalid color table length %d", len(table))
	}
	return domain.Packed(0).WithColorTable(true).WithSizeExponent(n)
}

// countBlocks counts occurrences of a block header in data.
func countBlocks(data, header []byte) int {
	return bytes.Count(data, header)
}
