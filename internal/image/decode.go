package imagepkg

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"image"

	"github.com/disintegration/imaging"
	_ "golang.org/x/image/webp" // Register WebP decoder

	"github.com/youruser/posterapp/internal/util"
)

// DefaultMaxPixels bounds the decoded size of a source image.
const DefaultMaxPixels = 50_000_000

var (
	// ErrInvalidImage is returned when input bytes cannot be decoded as an image.
	ErrInvalidImage = errors.New("invalid image")
	// ErrImageTooLarge is returned when an image declares more pixels than allowed.
	ErrImageTooLarge = errors.New("image too large")
	// ErrDownload is returned when a remote source image cannot be fetched.
	ErrDownload = errors.New("download failed")
)

// DecodeImage decodes PNG, JPEG, GIF, BMP, TIFF or WebP bytes of at most
// DefaultMaxPixels pixels. EXIF orientation is not applied.
func DecodeImage(b []byte) (image.Image, error) {
	return DecodeImageLimit(b, DefaultMaxPixels)
}

// DecodeImageLimit is DecodeImage with an explicit pixel budget. The header is
// checked before any pixel data is decoded.
func DecodeImageLimit(b []byte, maxPixels int64) (image.Image, error) {
	if len(b) == 0 {
		return nil, fmt.Errorf("%w: empty input", ErrInvalidImage)
	}
	cfg, _, err := image.DecodeConfig(bytes.NewReader(b))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidImage, err)
	}
	if n := int64(cfg.Width) * int64(cfg.Height); n > maxPixels {
		return nil, fmt.Errorf("%w: %dx%d exceeds %d pixels", ErrImageTooLarge, cfg.Width, cfg.Height, maxPixels)
	}
	img, err := imaging.Decode(bytes.NewReader(b))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidImage, err)
	}
	return img, nil
}

// DownloadImage fetches url with g and decodes the body within maxPixels.
func DownloadImage(ctx context.Context, g *util.Getter, url string, maxPixels int64) (image.Image, error) {
	body, err := g.Get(ctx, url)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrDownload, url, err)
	}
	return DecodeImageLimit(body, maxPixels)
}
