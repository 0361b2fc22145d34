package port

import (
	"context"
	"image"

	"github.com/bnema/dumbcam/internal/domain/entity"
)

// ImageDecoder turns compressed image bytes into a pixel buffer.
type ImageDecoder interface {
	// Decode returns the image and the detected format name ("jpeg", "png", ...).
	// Malformed or unsupported input yields an error wrapping
	// entity.ErrUndecodableImage.
	Decode(ctx context.Context, data []byte) (image.Image, string, error)
}

// GalleryWriter persists a pixel buffer into the shared gallery.
// Implementations encode JPEG at a fixed quality and guarantee that a
// failed write never leaves a visible entry behind (the legacy discipline may
// leave an unindexed file).
type GalleryWriter interface {
	// Name identifies the write discipline ("pending" or "legacy").
	Name() string

	// Write stores img and returns the resulting visible entry.
	Write(ctx context.Context, img image.Image) (*entity.GalleryEntry, error)
}
