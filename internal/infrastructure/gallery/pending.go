package gallery

import (
	"context"
	"fmt"
	"image"
	"os"
	"path/filepath"

	"github.com/bnema/dumbcam/internal/application/port"
	"github.com/bnema/dumbcam/internal/domain/entity"
	"github.com/bnema/dumbcam/internal/domain/repository"
	"github.com/bnema/dumbcam/internal/logging"
)

// PendingWriter inserts a pending index record, streams the JPEG into a
// hidden file beside the target, renames it into place and only then clears
// the pending flag. Readers never observe a partial image.
type PendingWriter struct {
	repo repository.MediaRepository
	cfg  Config
}

// NewPendingWriter creates a pending-record writer.
func NewPendingWriter(repo repository.MediaRepository, cfg Config) *PendingWriter {
	return &PendingWriter{repo: repo, cfg: cfg.withDefaults()}
}

var _ port.GalleryWriter = (*PendingWriter)(nil)

// Name implements port.GalleryWriter.
func (w *PendingWriter) Name() string { return "pending" }

// Write implements port.GalleryWriter. Gallery I/O is not cancellable: ctx
// only carries the logger.
func (w *PendingWriter) Write(ctx context.Context, img image.Image) (*entity.GalleryEntry, error) {
	ctx = context.WithoutCancel(ctx)
	log := logging.FromContext(ctx).With().Str("component", "gallery").Str("writer", w.Name()).Logger()

	dir := w.cfg.Dir()
	if err := os.MkdirAll(dir, dirPerm); err != nil {
		return nil, fmt.Errorf("create gallery dir: %w", err)
	}

	entry := newEntry(w.cfg, w.cfg.Now())
	entry.IsPending = true

	id, err := w.repo.Insert(ctx, entry)
	if err != nil {
		return nil, fmt.Errorf("%w: insert pending record: %v", ErrIndexUnavailable, err)
	}
	entry.ID = id

	tmpPath := filepath.Join(dir, pendingPrefix+entry.DisplayName)
	size, err := w.writeFile(tmpPath, entry.DataPath, img)
	if err != nil {
		w.discard(ctx, id, tmpPath)
		return nil, err
	}

	if err := w.repo.Publish(ctx, id, size); err != nil {
		// The file is in place but unindexed; drop both so nothing half-published remains.
		w.discard(ctx, id, entry.DataPath)
		return nil, fmt.Errorf("%w: publish record: %v", ErrIndexUnavailable, err)
	}

	entry.IsPending = false
	entry.SizeBytes = size

	log.Debug().
		Int64("id", id).
		Str("path", entry.DataPath).
		Int64("size", size).
		Msg("gallery entry published")

	return entry, nil
}

func (w *PendingWriter) writeFile(tmpPath, finalPath string, img image.Image) (int64, error) {
	f, err := os.OpenFile(tmpPath, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, filePerm)
	if err != nil {
		return 0, fmt.Errorf("open pending file: %w", err)
	}

	size, err := writeJPEG(f, img, w.cfg.Quality)
	if err != nil {
		return 0, err
	}

	if err := os.Rename(tmpPath, finalPath); err != nil {
		return 0, fmt.Errorf("publish image file: %w", err)
	}
	return size, nil
}

// discard removes the pending record and the file at path, logging failures.
func (w *PendingWriter) discard(ctx context.Context, id int64, path string) {
	log := logging.FromContext(ctx)

	if err := os.Remove(path); err != nil && !os.IsNotExist(err) {
		log.Warn().Err(err).Str("path", path).Msg("failed to remove pending image file")
	}
	if err := w.repo.Delete(ctx, id); err != nil {
		log.Warn().Err(err).Int64("id", id).Msg("failed to delete pending record")
	}
}
