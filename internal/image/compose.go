package imagepkg

import (
	"bytes"
	"fmt"
	"image"
	"image/color"
	"io"

	"github.com/disintegration/imaging"
)

// Poster template geometry.
const (
	TemplateWidth  = 1600
	TemplateHeight = 1200
	CenterSize     = 1024
)

// BackgroundColor fills the template and replaces background white.
var BackgroundColor = color.NRGBA{R: 200, G: 230, B: 255, A: 255}

// Composite decodes src, lays it out on the poster template and returns the
// result encoded as PNG. A nil corner skips the corner decoration.
func Composite(src []byte, corner image.Image) ([]byte, error) {
	img, err := DecodeImage(src)
	if err != nil {
		return nil, err
	}
	return EncodePNG(ComposePoster(img, corner))
}

// EncodePNG encodes img as PNG.
func EncodePNG(img image.Image) ([]byte, error) {
	var buf bytes.Buffer
	if err := imaging.Encode(&buf, img, imaging.PNG); err != nil {
		return nil, fmt.Errorf("encoding png: %w", err)
	}
	return buf.Bytes(), nil
}

// CompositeReader is Composite over streams. The returned reader is positioned
// at the start of the PNG data.
func CompositeReader(r io.Reader, corner image.Image) (*bytes.Reader, error) {
	src, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("reading source: %w", err)
	}
	out, err := Composite(src, corner)
	if err != nil {
		return nil, err
	}
	return bytes.NewReader(out), nil
}

// ComposePoster builds the TemplateWidth x TemplateHeight poster for an
// already decoded image. Neither src nor corner is modified.
func ComposePoster(src image.Image, corner image.Image) *image.NRGBA {
	canvas := imaging.New(TemplateWidth, TemplateHeight, BackgroundColor)

	// Clone always yields a fresh NRGBA with its origin at (0, 0).
	center := imaging.Clone(src)
	RemoveBackgroundWhite(center, BackgroundColor)
	flatten(center)

	center = imaging.Fill(center, CenterSize, CenterSize, imaging.Center, imaging.CatmullRom)
	x := (TemplateWidth - center.Bounds().Dx()) / 2
	y := (TemplateHeight - center.Bounds().Dy()) / 2
	canvas = imaging.Paste(canvas, center, image.Pt(x, y))

	if corner != nil {
		canvas = pasteCorner(canvas, corner)
	}
	return canvas
}

// flatten drops the alpha channel. Color values are kept as they are,
// without blending against any backdrop.
func flatten(img *image.NRGBA) {
	w, h := img.Rect.Dx(), img.Rect.Dy()
	for y := 0; y < h; y++ {
		row := img.Pix[y*img.Stride : y*img.Stride+w*4]
		for i := 3; i < len(row); i += 4 {
			row[i] = 0xff
		}
	}
}
