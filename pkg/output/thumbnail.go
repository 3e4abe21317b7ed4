package output

import (
	"image"

	"github.com/nfnt/resize"
)

// Thumbnail downscales img to fit within maxWidth x maxHeight, keeping its
// aspect ratio. A zero bound leaves that axis unconstrained; images already
// inside the bounds are returned unchanged.
func Thumbnail(img image.Image, maxWidth, maxHeight uint) image.Image {
	bounds := img.Bounds()
	width, height := uint(bounds.Dx()), uint(bounds.Dy())

	switch {
	case maxWidth == 0 && maxHeight == 0:
		return img
	case maxHeight == 0:
		if maxWidth >= width {
			return img
		}
		return resize.Resize(maxWidth, 0, img, resize.Bilinear)
	case maxWidth == 0:
		if maxHeight >= height {
			return img
		}
		return resize.Resize(0, maxHeight, img, resize.Bilinear)
	default:
		return resize.Thumbnail(maxWidth, maxHeight, img, resize.Bilinear)
	}
}
