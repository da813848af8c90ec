package imaging

import (
	"image"
	"image/draw"
)

// Apply transforms the given image with the forward matrix m.
//
// The result has the same bounds (and where possible the same pixel type)
// as the source. Every destination pixel is mapped back through the inverse
// of m; the source coordinate is truncated toward zero and its pixel copied
// as is. Destination pixels that map outside the source stay zero.
//
// ErrSingular is returned if m cannot be inverted.
func Apply(src image.Image, m Matrix) (draw.Image, error) {
	inv, err := m.Invert()
	if err != nil {
		return nil, err
	}

	dst := newLike(src)

	sb, srcOK := pixBuffer(src)
	db, dstOK := pixBuffer(dst)
	if srcOK && dstOK && sb.bpp == db.bpp {
		applyBuffer(sb, db, inv)
	} else {
		applyGeneric(src, dst, inv)
	}

	return dst, nil
}

// sample maps the destination pixel x,y to a source pixel.
// ok is false if the (truncated) source coordinate is outside w x h.
func sample(inv Matrix, x, y, w, h int) (int, int, bool) {
	sx, sy := inv.Transform(float64(x), float64(y))

	// int() truncates toward zero, so everything in (-1, w) lands on [0, w).
	// The comparisons also reject NaN.
	if !(sx > -1 && sx < float64(w)) || !(sy > -1 && sy < float64(h)) {
		return 0, 0, false
	}
	return int(sx), int(sy), true
}

func applyBuffer(src, dst buffer, inv Matrix) {
	w := src.rect.Dx()
	h := src.rect.Dy()
	n := src.bpp

	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			sx, sy, ok := sample(inv, x, y, w, h)
			if !ok {
				continue
			}
			d := dst.offset(x, y)
			s := src.offset(sx, sy)
			copy(dst.pix[d:d+n], src.pix[s:s+n])
		}
	}
}

func applyGeneric(src image.Image, dst draw.Image, inv Matrix) {
	b := src.Bounds()
	w := b.Dx()
	h := b.Dy()

	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			sx, sy, ok := sample(inv, x, y, w, h)
			if !ok {
				continue
			}
			dst.Set(b.Min.X+x, b.Min.Y+y, src.At(b.Min.X+sx, b.Min.Y+sy))
		}
	}
}
