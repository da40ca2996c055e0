package imagepkg

import (
	"errors"
	"fmt"
	"image"

	qrcode "github.com/skip2/go-qrcode"
)

// QR badge sizes, in pixels before corner scaling.
const (
	DefaultQRSize = 100
	MaxQRSize     = 480
)

// ErrQRSize is returned for a badge size outside (0, MaxQRSize].
var ErrQRSize = errors.New("qr size out of range")

func newQR(text string, size int) (*qrcode.QRCode, error) {
	if text == "" {
		return nil, errors.New("qr text is empty")
	}
	if size <= 0 || size > MaxQRSize {
		return nil, fmt.Errorf("%w: %d", ErrQRSize, size)
	}
	q, err := qrcode.New(text, qrcode.Medium)
	if err != nil {
		return nil, fmt.Errorf("encoding qr: %w", err)
	}
	return q, nil
}

// QRPNG returns PNG bytes of a size x size QR code for text.
func QRPNG(text string, size int) ([]byte, error) {
	q, err := newQR(text, size)
	if err != nil {
		return nil, err
	}
	return q.PNG(size)
}

// CornerFromQR renders text as a QR badge for use as the corner decoration.
func CornerFromQR(text string, size int) (image.Image, error) {
	q, err := newQR(text, size)
	if err != nil {
		return nil, err
	}
	return q.Image(size), nil
}
