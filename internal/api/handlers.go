package api

import (
	"errors"
	"fmt"
	"image"
	"io"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/youruser/posterapp/internal/config"
	imagepkg "github.com/youruser/posterapp/internal/image"
	"github.com/youruser/posterapp/internal/util"
	"github.com/youruser/posterapp/internal/util/log"
)

// DownloadName is the filename offered for the generated poster.
const DownloadName = "poster_template.png"

// Handler serves the poster API.
type Handler struct {
	cfg    config.Config
	getter *util.Getter
}

// New returns a Handler using cfg.
func New(cfg config.Config) *Handler {
	return &Handler{
		cfg:    cfg,
		getter: util.NewGetter(cfg.AllowPrivateURLs, util.MaxDownloadBytes),
	}
}

var errBadRequest = errors.New("bad request")

type posterRequest struct {
	ImageURL string `json:"image_url"`
	QRText   string `json:"qr_text"`
}

// Health reports liveness.
func (h *Handler) Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// Poster accepts a multipart upload in field "image", or a JSON body with
// image_url, and responds with the composed poster as a PNG download.
func (h *Handler) Poster(c *gin.Context) {
	c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, h.cfg.MaxUploadBytes())
	id := requestID(c)

	var (
		src image.Image
		req posterRequest
		err error
	)
	if c.ContentType() == gin.MIMEJSON {
		if err := c.ShouldBindJSON(&req); err != nil {
			h.fail(c, fmt.Errorf("%w: %w", errBadRequest, err))
			return
		}
		if strings.TrimSpace(req.ImageURL) == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "image or image_url is required"})
			return
		}
		src, err = imagepkg.DownloadImage(c.Request.Context(), h.getter, req.ImageURL, h.cfg.MaxPixels)
	} else {
		src, err = readUpload(c, h.cfg.MaxPixels)
		req.QRText = c.PostForm("qr_text")
	}
	if err != nil {
		h.fail(c, err)
		return
	}

	corner, err := h.corner(req.QRText)
	if err != nil {
		h.fail(c, err)
		return
	}
	log.Debugf("[%s] composing %v source, corner=%t", id, src.Bounds().Size(), corner != nil)

	out, err := imagepkg.EncodePNG(imagepkg.ComposePoster(src, corner))
	if err != nil {
		h.fail(c, err)
		return
	}
	c.Header("Content-Disposition", `attachment; filename="`+DownloadName+`"`)
	c.Data(http.StatusOK, "image/png", out)
}

// QR returns a PNG of a QR badge for the "text" query param.
func (h *Handler) QR(c *gin.Context) {
	text := c.Query("text")
	if text == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "text is required"})
		return
	}
	size := imagepkg.DefaultQRSize
	if s := c.Query("size"); s != "" {
		v, err := strconv.Atoi(s)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "size must be an integer"})
			return
		}
		size = v
	}
	b, err := imagepkg.QRPNG(text, size)
	if err != nil {
		h.fail(c, fmt.Errorf("%w: %w", errBadRequest, err))
		return
	}
	c.Data(http.StatusOK, "image/png", b)
}

// corner picks the decoration for one request: a QR badge when text is given,
// otherwise the configured file, which may be absent.
func (h *Handler) corner(qrText string) (image.Image, error) {
	if qrText != "" {
		img, err := imagepkg.CornerFromQR(qrText, imagepkg.DefaultQRSize)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", errBadRequest, err)
		}
		return img, nil
	}
	return imagepkg.LoadCorner(h.cfg.CornerImage)
}

func readUpload(c *gin.Context, maxPixels int64) (image.Image, error) {
	fh, err := c.FormFile("image")
	if err != nil {
		return nil, err
	}
	f, err := fh.Open()
	if err != nil {
		return nil, err
	}
	defer f.Close()
	b, err := io.ReadAll(f)
	if err != nil {
		return nil, err
	}
	return imagepkg.DecodeImageLimit(b, maxPixels)
}

func (h *Handler) fail(c *gin.Context, err error) {
	status := http.StatusInternalServerError
	var tooLarge *http.MaxBytesError
	switch {
	case errors.As(err, &tooLarge),
		errors.Is(err, imagepkg.ErrImageTooLarge),
		errors.Is(err, util.ErrBodyTooLarge):
		status = http.StatusRequestEntityTooLarge
	case errors.Is(err, util.ErrForbiddenURL):
		status = http.StatusBadRequest
	case errors.Is(err, imagepkg.ErrDownload):
		status = http.StatusBadGateway
	case errors.Is(err, imagepkg.ErrInvalidImage),
		errors.Is(err, errBadRequest),
		errors.Is(err, http.ErrMissingFile),
		errors.Is(err, http.ErrNotMultipart):
		status = http.StatusBadRequest
	}
	if status == http.StatusInternalServerError {
		log.Printf("[%s] %s %s: %v", requestID(c), c.Request.Method, c.Request.URL.Path, err)
	}
	c.JSON(status, gin.H{"error": err.Error()})
}
