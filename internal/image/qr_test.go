package imagepkg

import (
	"bytes"
	"image"
	"image/png"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestQRPNG(t *testing.T) {
	b, err := QRPNG("https://example.com/poster", 200)
	require.NoError(t, err)

	img, err := png.Decode(bytes.NewReader(b))
	require.NoError(t, err)
	assert.Equal(t, image.Pt(200, 200), img.Bounds().Size())
}

func TestCornerFromQR(t *testing.T) {
	img, err := CornerFromQR("poster", DefaultQRSize)
	require.NoError(t, err)
	assert.Equal(t, image.Pt(DefaultQRSize, DefaultQRSize), img.Bounds().Size())

	out := ComposePoster(filled(64, 64, red), img)
	assert.Equal(t, image.Rect(0, 0, TemplateWidth, TemplateHeight), out.Bounds())
}

func TestQRInvalid(t *testing.T) {
	_, err := QRPNG("", 100)
	assert.Error(t, err)

	_, err = CornerFromQR("poster", 0)
	assert.ErrorIs(t, err, ErrQRSize)

	_, err = QRPNG("poster", MaxQRSize+1)
	assert.ErrorIs(t, err, ErrQRSize)
}
