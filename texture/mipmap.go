package texture

import (
	"image"
	"math"

	xdraw "golang.org/x/image/draw"
)

// Mipmaps returns a chain of successively halved images, level 0 being img
// itself (not copied). Each level is max(1, previous/2) in both dimensions
// and is filtered bilinearly from the previous one.
//
// levels <= 0 builds the complete chain down to 1x1, that is
// 1 + floor(log2(max(width, height))) levels. Larger requests are capped
// to that count. A nil or empty image yields nil.
func Mipmaps(img *image.NRGBA, levels int) []*image.NRGBA {
	if img == nil || img.Bounds().Empty() {
		return nil
	}

	maxDim := max(img.Bounds().Dx(), img.Bounds().Dy())
	full := 1 + int(math.Floor(math.Log2(float64(maxDim))))
	if levels <= 0 || levels > full {
		levels = full
	}

	chain := make([]*image.NRGBA, levels)
	chain[0] = img
	for i := 1; i < levels; i++ {
		prev := chain[i-1]
		w := max(1, prev.Bounds().Dx()/2)
		h := max(1, prev.Bounds().Dy()/2)

		dst := image.NewNRGBA(image.Rect(0, 0, w, h))
		xdraw.BiLinear.Scale(dst, dst.Bounds(), prev, prev.Bounds(), xdraw.Src, nil)
		chain[i] = dst
	}

	return chain
}
