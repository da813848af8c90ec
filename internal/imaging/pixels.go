package imaging

import (
	"image"
	"image/color"
	"image/draw"
)

// buffer is raw access to an image that keeps its pixels in a Pix slice.
type buffer struct {
	pix    []uint8
	stride int
	bpp    int // bytes per pixel
	rect   image.Rectangle
}

// offset of the pixel at x,y relative to rect.Min.
func (b buffer) offset(x, y int) int {
	return y*b.stride + x*b.bpp
}

// pixBuffer returns the Pix buffer of the standard library image types.
func pixBuffer(i image.Image) (buffer, bool) {
	switch img := i.(type) {
	case *image.RGBA:
		return buffer{img.Pix, img.Stride, 4, img.Rect}, true
	case *image.NRGBA:
		return buffer{img.Pix, img.Stride, 4, img.Rect}, true
	case *image.RGBA64:
		return buffer{img.Pix, img.Stride, 8, img.Rect}, true
	case *image.NRGBA64:
		return buffer{img.Pix, img.Stride, 8, img.Rect}, true
	case *image.Gray:
		return buffer{img.Pix, img.Stride, 1, img.Rect}, true
	case *image.Gray16:
		return buffer{img.Pix, img.Stride, 2, img.Rect}, true
	case *image.Alpha:
		return buffer{img.Pix, img.Stride, 1, img.Rect}, true
	case *image.Alpha16:
		return buffer{img.Pix, img.Stride, 2, img.Rect}, true
	case *image.CMYK:
		return buffer{img.Pix, img.Stride, 4, img.Rect}, true
	case *image.Paletted:
		return buffer{img.Pix, img.Stride, 1, img.Rect}, true
	}
	return buffer{}, false
}

// newLike creates a zeroed image with the same bounds as i.
// The pixel type of i is kept where the standard library has a constructor
// for it; everything else (e.g. YCbCr) becomes an RGBA64.
func newLike(i image.Image) draw.Image {
	r := i.Bounds()
	switch img := i.(type) {
	case *image.RGBA:
		return image.NewRGBA(r)
	case *image.NRGBA:
		return image.NewNRGBA(r)
	case *image.RGBA64:
		return image.NewRGBA64(r)
	case *image.NRGBA64:
		return image.NewNRGBA64(r)
	case *image.Gray:
		return image.NewGray(r)
	case *image.Gray16:
		return image.NewGray16(r)
	case *image.Alpha:
		return image.NewAlpha(r)
	case *image.Alpha16:
		return image.NewAlpha16(r)
	case *image.CMYK:
		return image.NewCMYK(r)
	case *image.Paletted:
		p := make(color.Palette, len(img.Palette))
		copy(p, img.Palette)
		return image.NewPaletted(r, p)
	}
	return image.NewRGBA64(r)
}
