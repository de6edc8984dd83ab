package render

import (
	"image"

	"github.com/gdamore/tcell/v2"
)

// Blit paints an RGBA frame onto a tcell screen using half-block cells:
// each terminal cell carries two vertically stacked pixels ('▀' foreground
// for the top sample, background for the bottom), doubling the effective
// vertical resolution of the preview.
func Blit(screen tcell.Screen, img *image.RGBA) {
	cols, rows := screen.Size()
	bounds := img.Bounds()
	imgW, imgH := bounds.Dx(), bounds.Dy()
	if cols == 0 || rows == 0 || imgW == 0 || imgH == 0 {
		return
	}

	for cy := 0; cy < rows; cy++ {
		for cx := 0; cx < cols; cx++ {
			top := sampleCell(img, cx, cy*2, cols, rows*2)
			bottom := sampleCell(img, cx, cy*2+1, cols, rows*2)
			style := tcell.StyleDefault.
				Foreground(tcell.NewRGBColor(int32(top.r), int32(top.g), int32(top.b))).
				Background(tcell.NewRGBColor(int32(bottom.r), int32(bottom.g), int32(bottom.b)))
			screen.SetContent(cx, cy, '▀', nil, style)
		}
	}
}

// sampleCell averages the image region covered by one half-cell of a
// gridW×gridH sampling grid.
func sampleCell(img *image.RGBA, gx, gy, gridW, gridH int) rgb8 {
	bounds := img.Bounds()
	imgW, imgH := bounds.Dx(), bounds.Dy()

	x0 := bounds.Min.X + gx*imgW/gridW
	x1 := bounds.Min.X + (gx+1)*imgW/gridW
	y0 := bounds.Min.Y + gy*imgH/gridH
	y1 := bounds.Min.Y + (gy+1)*imgH/gridH
	if x1 <= x0 {
		x1 = x0 + 1
	}
	if y1 <= y0 {
		y1 = y0 + 1
	}

	var sr, sg, sb, n uint64
	for y := y0; y < y1 && y < bounds.Max.Y; y++ {
		for x := x0; x < x1 && x < bounds.Max.X; x++ {
			p := img.RGBAAt(x, y)
			sr += uint64(p.R)
			sg += uint64(p.G)
			sb += uint64(p.B)
			n++
		}
	}
	if n == 0 {
		return rgb8{}
	}
	return rgb8{r: uint8(sr / n), g: uint8(sg / n), b: uint8(sb / n)}
}
