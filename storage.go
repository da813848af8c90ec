package warp

import (
	"image"
)

// ImageStore reads source images and persists transformed ones.
type ImageStore interface {
	// Load reads and decodes the image at path.
	Load(path string) (image.Image, error)
	// Save writes the transformed version of the image from src.
	// Returns the path of the written file and its size in bytes.
	Save(img image.Image, kind Kind, src string) (string, int64, error)
}

// Previewer receives the original and transformed version of each image
// that was transformed successfully.
//
// Calls are fire-and-forget: a Previewer handles its own errors and must
// not block the batch for long. It may be called from several goroutines.
type Previewer interface {
	Preview(path string, original, transformed image.Image)
}

type multiPreview []Previewer

// Previewers combines several previewers into one.
// Nil entries are skipped.
func Previewers(p ...Previewer) Previewer {
	var m multiPreview
	for _, v := range p {
		if v != nil {
			m = append(m, v)
		}
	}
	return m
}

func (m multiPreview) Preview(path string, original, transformed image.Image) {
	for _, p := range m {
		p.Preview(path, original, transformed)
	}
}
