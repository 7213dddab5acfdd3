package assets

import (
	"image"
	"image/color"
	"sync"

	"github.com/hajimehoshi/ebiten/v2"
)

const placeholderSize = 16

var (
	whiteImage     *ebiten.Image
	whiteSubImage  *ebiten.Image
	placeholder    *ebiten.Image
	imagesInitOnce sync.Once
)

func initImages() {
	imagesInitOnce.Do(func() {
		whiteImage = ebiten.NewImage(3, 3)
		whiteImage.Fill(color.White)
		// Sampling the middle pixel avoids bleeding from the image edges.
		whiteSubImage = whiteImage.SubImage(image.Rect(1, 1, 2, 2)).(*ebiten.Image)
		placeholder = ebiten.NewImageFromImage(PlaceholderPattern(placeholderSize))
	})
}

// WhitePixel is the source image for solid-color triangles. Vertices sample it
// at (1, 1).
func WhitePixel() *ebiten.Image {
	initImages()
	return whiteSubImage
}

// PlaceholderIcon is drawn for items whose icon is missing.
func PlaceholderIcon() *ebiten.Image {
	initImages()
	return placeholder
}

// PlaceholderPattern is a magenta and black checkerboard of size x size pixels.
func PlaceholderPattern(size int) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, size, size))
	half := max(size/2, 1)
	magenta := color.RGBA{R: 0xff, B: 0xff, A: 0xff}
	black := color.RGBA{A: 0xff}
	for y := 0; y < size; y++ {
		for x := 0; x < size; x++ {
			if (x/half+y/half)%2 == 0 {
				img.SetRGBA(x, y, magenta)
			} else {
				img.SetRGBA(x, y, black)
			}
		}
	}
	return img
}
