package imaging

import (
	"image"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFit(t *testing.T) {
	tests := []struct {
		w, h, max int
		want      image.Rectangle
	}{
		{10, 10, 20, image.Rect(0, 0, 10, 10)},
		{40, 20, 20, image.Rect(0, 0, 20, 10)},
		{20, 40, 20, image.Rect(0, 0, 10, 20)},
		{1000, 1, 10, image.Rect(0, 0, 10, 1)},
		{30, 30, 0, image.Rect(0, 0, 30, 30)},
	}

	for _, tt := range tests {
		src := image.NewGray(image.Rect(0, 0, tt.w, tt.h))
		got := Fit(src, tt.max)
		assert.Equal(t, tt.want, got.Bounds(), "%dx%d max %d", tt.w, tt.h, tt.max)
	}

	small := image.NewGray(image.Rect(0, 0, 4, 4))
	assert.Same(t, small, Fit(small, 8))
}
