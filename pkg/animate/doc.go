// Package animate assembles single-image GIF files into one animated
// GIF89a stream.
//
// Each input buffer must be a complete GIF holding exactly one image, as
// produced by any ordinary GIF encoder. The assembler takes the logical
// screen descriptor and global color table of the first frame as the
// stream header, adds a NETSCAPE2.0 looping extension when that first
// frame has a global color table, and re-emits every frame's image behind a
// fresh Graphic Control Extension carrying its delay. Without a global color
// table no looping extension is written and most viewers play the
// animation once. A frame whose palette is identical to the global color table is
// written without a local table; any other palette is kept as a local
// color table.
//
// # Basic Usage
//
//	out, err := animate.Assemble(frames, []int{100, 100, 100}, 0)
//	if err != nil {
//	    return err
//	}
//	return os.WriteFile("countdown.gif", out, 0o644)
//
// Options adjust the Graphic Control Extension:
//
//	a := animate.New(
//	    animate.WithDisposal(animate.DisposalNone),
//	    animate.WithTransparentColor(animate.RGB{R: 0xff, B: 0xff}),
//	)
//	out, err := a.Assemble(frames, delays, 3)
//
// # Errors
//
// Failures are reported with the sentinels [ErrInvalidFrameFormat],
// [ErrAlreadyAnimatedSource], [ErrArityMismatch] and [ErrEmptyInput].
// Frame-scoped failures are a [*FrameError] carrying the frame index.
// No partial output is ever returned.
//
// # Concurrency
//
// Assembly is a pure, synchronous transformation. An [Assembler] holds
// only its options and may be shared between goroutines. Input buffers
// are never modified or retained.
package animate
