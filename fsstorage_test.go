package warp

import (
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writePNG(t *testing.T, path string, img image.Image) {
	t.Helper()
	f, err := os.Create(path)
	require.NoError(t, err)
	defer f.Close()
	require.NoError(t, png.Encode(f, img))
}

func testImage(w, h int) *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.SetNRGBA(x, y, color.NRGBA{uint8(10 * x), uint8(10 * y), 200, 255})
		}
	}
	return img
}

func TestOutputPath(t *testing.T) {
	assert.Equal(t, filepath.Join("processed", "rotate", "cat.png"),
		OutputPath("processed", KindRotate, "/home/me/pictures/cat.png"))
	assert.Equal(t, filepath.Join("out", "reflect", "a.jpg"),
		OutputPath("out", KindReflect, "a.jpg"))
}

func TestFilesystemStore(t *testing.T) {
	dir := t.TempDir()
	src := filepath.Join(dir, "in.png")
	img := testImage(6, 4)
	writePNG(t, src, img)

	root := filepath.Join(dir, "processed")
	s := NewFilesystemStore(root)

	loaded, err := s.Load(src)
	require.NoError(t, err)
	assert.Equal(t, img.Bounds(), loaded.Bounds())

	out, n, err := s.Save(loaded, KindScale, src)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(root, "scale", "in.png"), out)

	info, err := os.Stat(out)
	require.NoError(t, err)
	assert.Equal(t, info.Size(), n)

	again, err := s.Load(out)
	require.NoError(t, err)
	for y := 0; y < 4; y++ {
		for x := 0; x < 6; x++ {
			assert.Equal(t, img.At(x, y), color.NRGBAModel.Convert(again.At(x, y)))
		}
	}
}

func TestFilesystemStoreLoadErrors(t *testing.T) {
	dir := t.TempDir()
	s := NewFilesystemStore(dir)

	_, err := s.Load(filepath.Join(dir, "missing.png"))
	assert.Error(t, err)

	broken := filepath.Join(dir, "broken.png")
	require.NoError(t, os.WriteFile(broken, []byte("not an image"), 0644))
	_, err = s.Load(broken)
	assert.Error(t, err)
}

func TestFilesystemStoreFormats(t *testing.T) {
	dir := t.TempDir()
	s := NewFilesystemStore(dir)
	img := testImage(3, 3)

	for _, name := range []string{"a.png", "b.jpg", "c.JPEG", "d.gif", "e.bmp", "f.tif", "g.tiff"} {
		out, _, err := s.Save(img, KindTranslate, name)
		require.NoError(t, err, name)
		loaded, err := s.Load(out)
		require.NoError(t, err, name)
		assert.Equal(t, img.Bounds(), loaded.Bounds(), name)
	}

	_, _, err := s.Save(img, KindTranslate, "h.webp")
	assert.Error(t, err)
	_, _, err = s.Save(img, KindTranslate, "noext")
	assert.Error(t, err)
}

func TestSupportedFormats(t *testing.T) {
	assert.True(t, SupportedInput("x.WEBP"))
	assert.True(t, SupportedInput("x.jpeg"))
	assert.False(t, SupportedInput("x.txt"))
	assert.True(t, SupportedOutput("x.Png"))
	assert.False(t, SupportedOutput("x.webp"))
}
