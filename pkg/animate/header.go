package animate

import "github.com/bft-labs/gifloop/internal/domain"

// appendHeader appends the stream preamble built from the first frame:
// the GIF89a signature, its logical screen descriptor and global color
// table verbatim, and the looping extension.
//
// The looping extension is only written when the first frame has a global
// color table.
func appendHeader(dst []byte, first *Frame, loop uint16) []byte {
	dst = append(dst, domain.Signature89a...)
	dst = append(dst, first.Screen...)
	dst = append(dst, first.Global...)
	if first.ScreenPacked().HasColorTable() {
		dst = appendLoopExtension(dst, loop)
	}
	return dst
}

// appendLoopExtension appends the 19-byte NETSCAPE2.0 application
// extension. A loop count of zero loops forever.
func appendLoopExtension(dst []byte, loop uint16) []byte {
	dst = append(dst, domain.ExtensionIntroducer, domain.ApplicationLabel, byte(len(domain.NetscapeID)))
	dst = append(dst, domain.NetscapeID...)
	return append(dst,
		0x03, // sub-block size
		0x01, // loop sub-block id
		byte(loop), byte(loop>>8),
		0x00, // block terminator
	)
}
