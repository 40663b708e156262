package animate

import (
	"bytes"

	"github.com/bft-labs/gifloop/internal/domain"
)

// netscapePrefix is compared three bytes past an extension introducer,
// i.e. after the introducer, the label and the block size.
var netscapePrefix = []byte(domain.NetscapeID[:8])

// CheckNotAnimated scans raw byte by byte from offset up to the first
// trailer byte and fails with ErrAlreadyAnimatedSource if an extension
// introducer is followed by a NETSCAPE application identifier. Running off
// the end of raw without meeting a trailer is ErrInvalidFrameFormat.
//
// The scan does not follow block structure, so a stray ';' inside image
// data ends it early. index is used only for error reporting.
func CheckNotAnimated(index int, raw []byte, offset int) error {
	for j := offset; j < len(raw); j++ {
		switch raw[j] {
		case domain.ExtensionIntroducer:
			if j+3+len(netscapePrefix) <= len(raw) && bytes.Equal(raw[j+3:j+3+len(netscapePrefix)], netscapePrefix) {
				return domain.NewFrameError(index, j, domain.ErrAlreadyAnimatedSource, "NETSCAPE looping extension present")
			}
		case domain.Trailer:
			return nil
		}
	}
	return domain.NewFrameError(index, len(raw), domain.ErrInvalidFrameFormat, "no trailer found")
}
