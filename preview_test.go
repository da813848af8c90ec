package warp

import (
	"bytes"
	"image"
	"image/color"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCompose(t *testing.T) {
	a := testImage(10, 6)
	b := testImage(4, 12)

	img := Compose(a, b)
	w := previewGap + 10 + previewGap + 4 + previewGap
	h := previewCaption + 12 + previewGap
	assert.Equal(t, image.Rect(0, 0, w, h), img.Bounds())

	// images are placed below the caption row
	assert.Equal(t, color.RGBAModel.Convert(a.At(0, 0)), img.At(previewGap, previewCaption))
	assert.Equal(t, color.RGBAModel.Convert(b.At(3, 11)), img.At(previewGap+10+previewGap+3, previewCaption+11))

	// background
	assert.Equal(t, color.RGBA{255, 255, 255, 255}, img.At(w-1, h-1))
}

func TestSideBySide(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "previews")
	p := NewSideBySide(dir)

	p.Preview("/some/where/cat.png", testImage(5, 5), testImage(5, 5))

	path := filepath.Join(dir, "cat.png.preview.png")
	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()

	img, format, err := image.Decode(f)
	require.NoError(t, err)
	assert.Equal(t, "png", format)
	assert.Equal(t, Compose(testImage(5, 5), testImage(5, 5)).Bounds(), img.Bounds())
}

func TestReport(t *testing.T) {
	r := NewReport("test run")
	assert.Equal(t, 0, r.Len())

	r.Preview("a.png", testImage(8, 4), testImage(8, 4))
	r.Preview("b.png", testImage(3, 9), testImage(3, 9))
	assert.Equal(t, 2, r.Len())

	var buf bytes.Buffer
	n, err := r.WriteTo(&buf)
	require.NoError(t, err)
	assert.Equal(t, int64(buf.Len()), n)
	assert.True(t, bytes.HasPrefix(buf.Bytes(), []byte("%PDF-")))

	path := filepath.Join(t.TempDir(), "out", "report.pdf")
	require.NoError(t, r.Save(path))
	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.True(t, info.Size() > 0)
}

func TestPreviewers(t *testing.T) {
	var calls []string
	a := previewFunc(func(path string, _, _ image.Image) { calls = append(calls, "a:"+path) })
	b := previewFunc(func(path string, _, _ image.Image) { calls = append(calls, "b:"+path) })

	p := Previewers(a, nil, b)
	p.Preview("x.png", testImage(1, 1), testImage(1, 1))
	assert.Equal(t, []string{"a:x.png", "b:x.png"}, calls)
}

type previewFunc func(path string, original, transformed image.Image)

func (f previewFunc) Preview(path string, original, transformed image.Image) {
	f(path, original, transformed)
}
