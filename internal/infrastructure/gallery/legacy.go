package gallery

import (
	"context"
	"fmt"
	"image"
	"os"

	"github.com/bnema/dumbcam/internal/application/port"
	"github.com/bnema/dumbcam/internal/domain/entity"
	"github.com/bnema/dumbcam/internal/domain/repository"
	"github.com/bnema/dumbcam/internal/logging"
)

// LegacyWriter encodes straight into the final file and registers it in the
// index afterwards. If registration fails the file stays on disk unindexed.
type LegacyWriter struct {
	repo repository.MediaRepository
	cfg  Config
}

// NewLegacyWriter creates a direct-write gallery writer.
func NewLegacyWriter(repo repository.MediaRepository, cfg Config) *LegacyWriter {
	return &LegacyWriter{repo: repo, cfg: cfg.withDefaults()}
}

var _ port.GalleryWriter = (*LegacyWriter)(nil)

// Name implements port.GalleryWriter.
func (w *LegacyWriter) Name() string { return "legacy" }

// Write implements port.GalleryWriter.
func (w *LegacyWriter) Write(ctx context.Context, img image.Image) (*entity.GalleryEntry, error) {
	ctx = context.WithoutCancel(ctx)
	log := logging.FromContext(ctx).With().Str("component", "gallery").Str("writer", w.Name()).Logger()

	if err := os.MkdirAll(w.cfg.Dir(), dirPerm); err != nil {
		return nil, fmt.Errorf("create gallery dir: %w", err)
	}

	entry := newEntry(w.cfg, w.cfg.Now())

	f, err := os.OpenFile(entry.DataPath, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, filePerm)
	if err != nil {
		return nil, fmt.Errorf("create image file: %w", err)
	}
	size, err := writeJPEG(f, img, w.cfg.Quality)
	if err != nil {
		_ = os.Remove(entry.DataPath)
		return nil, err
	}
	entry.SizeBytes = size

	id, err := w.repo.Insert(ctx, entry)
	if err != nil {
		log.Warn().Err(err).Str("path", entry.DataPath).Msg("image written but not indexed")
		return nil, fmt.Errorf("%w: register image: %v", ErrIndexUnavailable, err)
	}
	entry.ID = id

	log.Debug().
		Int64("id", entry.ID).
		Str("path", entry.DataPath).
		Int64("size", size).
		Msg("gallery entry registered")

	return entry, nil
}
