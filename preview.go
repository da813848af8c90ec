package warp

import (
	"image"
	"image/color"
	"image/png"
	"io"
	"path/filepath"

	"golang.org/x/image/draw"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"

	"github.com/akeil/warp/internal/fs"
	"github.com/akeil/warp/internal/logging"
)

const (
	previewGap     = 16 // pixels between and around the two images
	previewCaption = 20 // height of the caption row
)

var previewBackground = color.White
var previewText = color.Black

type sideBySide struct {
	dir string
}

// NewSideBySide creates a Previewer that writes a PNG for every image with
// the original on the left and the transformed image on the right.
// Files are named <dir>/<file name>.preview.png.
func NewSideBySide(dir string) Previewer {
	return &sideBySide{dir}
}

func (s *sideBySide) Preview(path string, original, transformed image.Image) {
	dst := filepath.Join(s.dir, filepath.Base(path)+".preview.png")

	err := fs.MkdirAll(s.dir)
	if err != nil {
		logging.Warning("Failed to create preview directory %q: %v", s.dir, err)
		return
	}

	img := Compose(original, transformed)
	_, err = fs.WriteFile(dst, func(w io.Writer) error {
		return png.Encode(w, img)
	})
	if err != nil {
		logging.Warning("Failed to write preview %q: %v", dst, err)
		return
	}
	logging.Debug("Wrote preview %q", dst)
}

// Compose places the original and the transformed image next to each other
// on one canvas, captioned "Original" and "Transformed".
func Compose(original, transformed image.Image) *image.RGBA {
	a := original.Bounds()
	b := transformed.Bounds()

	w := previewGap + a.Dx() + previewGap + b.Dx() + previewGap
	h := previewCaption + maxInt(a.Dy(), b.Dy()) + previewGap
	dst := image.NewRGBA(image.Rect(0, 0, w, h))

	draw.Draw(dst, dst.Bounds(), image.NewUniform(previewBackground), image.Point{}, draw.Src)

	left := image.Pt(previewGap, previewCaption)
	right := image.Pt(previewGap+a.Dx()+previewGap, previewCaption)
	draw.Copy(dst, left, original, a, draw.Over, nil)
	draw.Copy(dst, right, transformed, b, draw.Over, nil)

	caption(dst, left.X, "Original")
	caption(dst, right.X, "Transformed")

	return dst
}

// caption writes text into the caption row, starting at x.
func caption(dst draw.Image, x int, text string) {
	face := basicfont.Face7x13
	d := font.Drawer{
		Dst:  dst,
		Src:  image.NewUniform(previewText),
		Face: face,
		Dot:  fixed.P(x, previewCaption-face.Descent-2),
	}
	d.DrawString(text)
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}
