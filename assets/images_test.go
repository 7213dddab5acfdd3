package assets

import (
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPlaceholderPatternCheckerboard(t *testing.T) {
	img := PlaceholderPattern(16)

	assert.Equal(t, 16, img.Bounds().Dx())
	magenta := color.RGBA{R: 0xff, B: 0xff, A: 0xff}
	black := color.RGBA{A: 0xff}
	assert.Equal(t, magenta, img.RGBAAt(0, 0))
	assert.Equal(t, black, img.RGBAAt(8, 0))
	assert.Equal(t, black, img.RGBAAt(0, 8))
	assert.Equal(t, magenta, img.RGBAAt(15, 15))
}
