package fs

import (
	"bytes"
	"fmt"
	"image"
	"image/color/palette"
	"image/gif"
	"io"

	// Still image formats accepted for conversion.
	_ "image/jpeg"
	_ "image/png"

	_ "golang.org/x/image/bmp"
	"golang.org/x/image/draw"
	_ "golang.org/x/image/webp"
)

// EncodeStill decodes a still image from r and re-encodes it as a
// single-frame GIF. When bounds is non-empty and differs in size from the
// decoded image, the image is scaled to bounds first. Images that are
// already paletted with at most 256 colors keep their palette; others are
// dithered into the Plan 9 palette.
//
// It returns the GIF and the bounds of the encoded image.
func EncodeStill(r io.Reader, bounds image.Rectangle) ([]byte, image.Rectangle, error) {
	src, format, err := image.Decode(r)
	if err != nil {
		return nil, image.Rectangle{}, fmt.Errorf("decode image: %w", err)
	}

	sb := src.Bounds()
	dst := image.Rect(0, 0, sb.Dx(), sb.Dy())
	if !bounds.Empty() {
		dst = image.Rect(0, 0, bounds.Dx(), bounds.Dy())
	}

	var pm *image.Paletted
	if p, ok := src.(*image.Paletted); ok && dst.Size() == sb.Size() && len(p.Palette) <= 256 {
		pm = p
	} else {
		if dst.Size() != sb.Size() {
			scaled := image.NewRGBA(dst)
			draw.CatmullRom.Scale(scaled, dst, src, sb, draw.Src, nil)
			src = scaled
			sb = dst
		}
		pm = image.NewPaletted(dst, palette.Plan9)
		draw.FloydSteinberg.Draw(pm, dst, src, sb.Min)
	}

	var buf bytes.Buffer
	if err := gif.Encode(&buf, pm, nil); err != nil {
		return nil, image.Rectangle{}, fmt.Errorf("encode %s as gif: %w", format, err)
	}
	return buf.Bytes(), dst, nil
}
