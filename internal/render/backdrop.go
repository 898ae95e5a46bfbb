package render

import (
	"image"
	"image/color"
	"image/draw"
)

// DrawCheckerboard fills rect of dst with a checkerboard of size pixel
// squares.
func DrawCheckerboard(dst *image.RGBA, rect image.Rectangle, size int, light, dark color.Color) {
	if size <= 0 {
		size = 1
	}
	rect = rect.Intersect(dst.Bounds())
	lu, dk := image.NewUniform(light), image.NewUniform(dark)
	for y := rect.Min.Y - rect.Min.Y%size; y < rect.Max.Y; y += size {
		for x := rect.Min.X - rect.Min.X%size; x < rect.Max.X; x += size {
			src := lu
			if ((x/size)+(y/size))%2 != 0 {
				src = dk
			}
			sq := image.Rect(x, y, x+size, y+size).Intersect(rect)
			draw.Draw(dst, sq, src, image.Point{}, draw.Src)
		}
	}
}
