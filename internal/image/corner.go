package imagepkg

import (
	"errors"
	"fmt"
	"image"
	"io/fs"
	"os"

	"github.com/disintegration/imaging"
)

// Corner decoration placement.
const (
	CornerImageName = "corner_image.png"
	CornerScale     = 2.5
	CornerPadding   = 20
)

// LoadCorner reads the corner decoration at path. A missing file is not an
// error: it returns a nil image so the decoration is skipped.
func LoadCorner(path string) (image.Image, error) {
	b, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("reading corner image: %w", err)
	}
	img, err := DecodeImage(b)
	if err != nil {
		return nil, fmt.Errorf("corner image %s: %w", path, err)
	}
	return img, nil
}

// CornerRect is where a corner image of the given source size lands on the
// template once scaled.
func CornerRect(size image.Point) image.Rectangle {
	w := int(float64(size.X) * CornerScale)
	h := int(float64(size.Y) * CornerScale)
	at := image.Pt(TemplateWidth-w-CornerPadding, TemplateHeight-h-CornerPadding)
	return image.Rectangle{Min: at, Max: at.Add(image.Pt(w, h))}
}

// pasteCorner scales corner and alpha-composites it into the bottom-right
// corner of canvas.
func pasteCorner(canvas *image.NRGBA, corner image.Image) *image.NRGBA {
	r := CornerRect(corner.Bounds().Size())
	if r.Empty() {
		return canvas
	}
	scaled := imaging.Resize(corner, r.Dx(), r.Dy(), imaging.Lanczos)
	return imaging.Overlay(canvas, scaled, r.Min, 1.0)
}
