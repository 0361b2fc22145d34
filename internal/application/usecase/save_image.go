package usecase

import (
	"context"
	"errors"
	"fmt"

	"github.com/bnema/dumbcam/internal/application/port"
	"github.com/bnema/dumbcam/internal/domain/entity"
	"github.com/bnema/dumbcam/internal/logging"
)

// SaveImageOutput describes a stored capture.
type SaveImageOutput struct {
	Entry *entity.GalleryEntry
	// Format is the decoder's name for the source image ("png", "jpeg", ...).
	Format string
}

// SaveImageUseCase decodes a text-encoded image and hands it to the gallery.
type SaveImageUseCase struct {
	decoder port.ImageDecoder
	writer  port.GalleryWriter
}

// NewSaveImageUseCase creates a save use case with the chosen write discipline.
func NewSaveImageUseCase(decoder port.ImageDecoder, writer port.GalleryWriter) *SaveImageUseCase {
	return &SaveImageUseCase{decoder: decoder, writer: writer}
}

// Writer returns the gallery writer selected at construction.
func (uc *SaveImageUseCase) Writer() port.GalleryWriter {
	return uc.writer
}

// Execute decodes raw ("header,base64" or bare base64) and writes the image.
// Nothing is written when decoding fails.
func (uc *SaveImageUseCase) Execute(ctx context.Context, raw string) (*SaveImageOutput, error) {
	log := logging.FromContext(ctx)

	if uc.decoder == nil || uc.writer == nil {
		return nil, errors.New("save image: decoder or writer not configured")
	}

	payload := entity.ParseImagePayload(raw)
	data, err := payload.Bytes()
	if err != nil {
		return nil, fmt.Errorf("decode payload: %w", err)
	}

	img, format, err := uc.decoder.Decode(ctx, data)
	if err != nil {
		return nil, fmt.Errorf("decode image: %w", err)
	}

	if payload.DeclaredMIME != "" && payload.DeclaredMIME != "image/"+format {
		log.Debug().
			Str("component", "save-image").
			Str("declared", payload.DeclaredMIME).
			Str("detected", format).
			Msg("payload header does not match image content")
	}

	entry, err := uc.writer.Write(ctx, img)
	if err != nil {
		return nil, fmt.Errorf("write gallery entry (%s): %w", uc.writer.Name(), err)
	}

	log.Info().
		Str("component", "save-image").
		Str("writer", uc.writer.Name()).
		Str("name", entry.DisplayName).
		Int64("size", entry.SizeBytes).
		Msg("image saved to gallery")

	return &SaveImageOutput{Entry: entry, Format: format}, nil
}
