package imaging

import (
	"image"

	"golang.org/x/image/draw"
)

// Fit creates a scaled copy of the given image whose longer side is at most
// max pixels, keeping the aspect ratio.
// Images that already fit are returned unchanged.
func Fit(i image.Image, max int) image.Image {
	b := i.Bounds()
	w, h := b.Dx(), b.Dy()
	if max <= 0 || (w <= max && h <= max) {
		return i
	}

	if w >= h {
		h = h * max / w
		w = max
	} else {
		w = w * max / h
		h = max
	}
	if w < 1 {
		w = 1
	}
	if h < 1 {
		h = 1
	}

	dst := image.NewRGBA(image.Rect(0, 0, w, h))
	draw.ApproxBiLinear.Scale(dst, dst.Bounds(), i, b, draw.Src, nil)
	return dst
}
