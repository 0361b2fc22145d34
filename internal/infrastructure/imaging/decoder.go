// Package imaging decodes page-supplied image bytes and prepares pixel
// buffers for JPEG encoding.
package imaging

import (
	"bytes"
	"context"
	"fmt"
	"image"
	"image/color"
	"image/draw"
	_ "image/gif" // register GIF decoder
	"image/jpeg"
	_ "image/png" // register PNG decoder
	"io"

	"github.com/gabriel-vasile/mimetype"
	_ "golang.org/x/image/bmp"  // register BMP decoder
	_ "golang.org/x/image/tiff" // register TIFF decoder
	_ "golang.org/x/image/webp" // register WebP decoder

	"github.com/bnema/dumbcam/internal/application/port"
	"github.com/bnema/dumbcam/internal/domain/entity"
	"github.com/bnema/dumbcam/internal/logging"
)

// MaxPixels bounds decoded images to protect against decompression bombs.
const MaxPixels = 64 * 1024 * 1024

// Decoder implements port.ImageDecoder with the standard and x/image codecs.
type Decoder struct {
	maxPixels int
}

// NewDecoder creates a decoder accepting images up to MaxPixels.
func NewDecoder() *Decoder {
	return &Decoder{maxPixels: MaxPixels}
}

var _ port.ImageDecoder = (*Decoder)(nil)

// Decode sniffs data, checks the header dimensions, then decodes fully.
// Truncated or unsupported input returns entity.ErrUndecodableImage.
func (d *Decoder) Decode(ctx context.Context, data []byte) (image.Image, string, error) {
	log := logging.FromContext(ctx)

	detected := mimetype.Detect(data)
	log.Debug().
		Str("component", "imaging").
		Str("mime", detected.String()).
		Int("bytes", len(data)).
		Msg("decoding image payload")

	cfg, format, err := image.DecodeConfig(bytes.NewReader(data))
	if err != nil {
		return nil, "", fmt.Errorf("%w: %s: %v", entity.ErrUndecodableImage, detected.String(), err)
	}
	if cfg.Width <= 0 || cfg.Height <= 0 {
		return nil, "", fmt.Errorf("%w: empty %s image", entity.ErrUndecodableImage, format)
	}
	if cfg.Width*cfg.Height > d.maxPixels {
		return nil, "", fmt.Errorf("%w: %dx%d %s image exceeds pixel limit",
			entity.ErrUndecodableImage, cfg.Width, cfg.Height, format)
	}

	img, format, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, "", fmt.Errorf("%w: %s: %v", entity.ErrUndecodableImage, format, err)
	}
	return img, format, nil
}

// EncodeJPEG writes img as baseline JPEG. Transparent pixels are flattened
// onto white since JPEG has no alpha channel.
func EncodeJPEG(w io.Writer, img image.Image, quality int) error {
	if quality <= 0 || quality > 100 {
		quality = entity.DefaultJPEGQuality
	}
	if err := jpeg.Encode(w, Flatten(img), &jpeg.Options{Quality: quality}); err != nil {
		return fmt.Errorf("encode jpeg: %w", err)
	}
	return nil
}

// Flatten composites img over an opaque white background. Opaque images are
// returned unchanged.
func Flatten(img image.Image) image.Image {
	if isOpaque(img) {
		return img
	}
	b := img.Bounds()
	dst := image.NewRGBA(b)
	draw.Draw(dst, b, image.NewUniform(color.White), image.Point{}, draw.Src)
	draw.Draw(dst, b, img, b.Min, draw.Over)
	return dst
}

func isOpaque(img image.Image) bool {
	if o, ok := img.(interface{ Opaque() bool }); ok {
		return o.Opaque()
	}
	return false
}
