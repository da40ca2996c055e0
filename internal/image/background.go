package imagepkg

import (
	"image"
	"image/color"
)

// WhiteThreshold is the channel value R, G and B must all exceed for a
// pixel to count as near-white.
const WhiteThreshold = 230

// WhiteMask marks every pixel of img whose first three channels exceed
// WhiteThreshold. The mask is row-major over img's bounds.
func WhiteMask(img *image.NRGBA) []bool {
	w, h := img.Rect.Dx(), img.Rect.Dy()
	mask := make([]bool, w*h)
	for y := 0; y < h; y++ {
		row := img.Pix[y*img.Stride : y*img.Stride+w*4]
		for x := 0; x < w; x++ {
			p := row[x*4 : x*4+3]
			mask[y*w+x] = p[0] > WhiteThreshold && p[1] > WhiteThreshold && p[2] > WhiteThreshold
		}
	}
	return mask
}

// LabelRegions partitions the set pixels of mask into 8-connected regions.
// Unset pixels get label 0, regions are numbered 1..n in scan order.
func LabelRegions(mask []bool, w, h int) ([]int32, int) {
	labels := make([]int32, w*h)
	var n int32
	var stack []image.Point

	for sy := 0; sy < h; sy++ {
		for sx := 0; sx < w; sx++ {
			if !mask[sy*w+sx] || labels[sy*w+sx] != 0 {
				continue
			}
			n++
			labels[sy*w+sx] = n
			stack = append(stack[:0], image.Point{X: sx, Y: sy})

			for len(stack) > 0 {
				p := stack[len(stack)-1]
				stack = stack[:len(stack)-1]

				for dy := -1; dy <= 1; dy++ {
					for dx := -1; dx <= 1; dx++ {
						x, y := p.X+dx, p.Y+dy
						if x < 0 || x >= w || y < 0 || y >= h {
							continue
						}
						idx := y*w + x
						if !mask[idx] || labels[idx] != 0 {
							continue
						}
						labels[idx] = n
						stack = append(stack, image.Point{X: x, Y: y})
					}
				}
			}
		}
	}
	return labels, int(n)
}

// BorderLabels returns the distinct non-zero labels found on the four edges.
func BorderLabels(labels []int32, w, h int) map[int32]struct{} {
	out := map[int32]struct{}{}
	if w == 0 || h == 0 {
		return out
	}
	add := func(x, y int) {
		if l := labels[y*w+x]; l != 0 {
			out[l] = struct{}{}
		}
	}
	for x := 0; x < w; x++ {
		add(x, 0)
		add(x, h-1)
	}
	for y := 0; y < h; y++ {
		add(0, y)
		add(w-1, y)
	}
	return out
}

// RemoveBackgroundWhite replaces the RGB of every near-white pixel that is
// connected to the image border with bg. Alpha is left untouched, as are
// white areas enclosed by the subject.
func RemoveBackgroundWhite(img *image.NRGBA, bg color.NRGBA) {
	w, h := img.Rect.Dx(), img.Rect.Dy()
	labels, n := LabelRegions(WhiteMask(img), w, h)
	if n == 0 {
		return
	}
	background := BorderLabels(labels, w, h)
	if len(background) == 0 {
		return
	}

	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			l := labels[y*w+x]
			if l == 0 {
				continue
			}
			if _, ok := background[l]; !ok {
				continue
			}
			i := y*img.Stride + x*4
			img.Pix[i+0] = bg.R
			img.Pix[i+1] = bg.G
			img.Pix[i+2] = bg.B
		}
	}
}
