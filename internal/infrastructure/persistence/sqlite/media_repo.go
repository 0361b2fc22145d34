package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/bnema/dumbcam/internal/domain/entity"
	"github.com/bnema/dumbcam/internal/domain/repository"
	"github.com/bnema/dumbcam/internal/logging"
)

const (
	insertMediaImage = `INSERT INTO media_images
    (display_name, mime_type, relative_path, data_path, size_bytes, is_pending, date_added, date_modified)
VALUES (?, ?, ?, ?, ?, ?, ?, ?)`

	publishMediaImage = `UPDATE media_images
SET is_pending = 0, size_bytes = ?, date_modified = ?
WHERE id = ?`

	deleteMediaImage = `DELETE FROM media_images WHERE id = ?`

	selectMediaImageColumns = `SELECT id, display_name, mime_type, relative_path, data_path,
    size_bytes, is_pending, date_added, date_modified
FROM media_images`

	getMediaImage = selectMediaImageColumns + ` WHERE id = ?`

	listVisibleMediaImages = selectMediaImageColumns + `
WHERE is_pending = 0
ORDER BY date_added DESC, id DESC
LIMIT ?`

	countVisibleMediaImages = `SELECT COUNT(*) FROM media_images WHERE is_pending = 0`
)

type mediaRepo struct {
	db  *sql.DB
	now func() time.Time
}

// NewMediaRepository creates a new SQLite-backed media index.
func NewMediaRepository(db *sql.DB) repository.MediaRepository {
	return &mediaRepo{db: db, now: time.Now}
}

func (r *mediaRepo) Insert(ctx context.Context, entry *entity.GalleryEntry) (int64, error) {
	if entry == nil {
		return 0, errors.New("media entry cannot be nil")
	}
	log := logging.FromContext(ctx)

	now := r.now()
	if entry.DateAdded.IsZero() {
		entry.DateAdded = now
	}
	if entry.DateModified.IsZero() {
		entry.DateModified = now
	}

	res, err := r.db.ExecContext(ctx, insertMediaImage,
		entry.DisplayName,
		entry.MIMEType,
		entry.RelativePath,
		entry.DataPath,
		entry.SizeBytes,
		boolToInt(entry.IsPending),
		entry.DateAdded.UnixMilli(),
		entry.DateModified.UnixMilli(),
	)
	if err != nil {
		return 0, fmt.Errorf("insert media image: %w", err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("insert media image: %w", err)
	}
	entry.ID = id

	log.Debug().
		Int64("id", id).
		Str("name", entry.DisplayName).
		Bool("pending", entry.IsPending).
		Msg("media image inserted")

	return id, nil
}

func (r *mediaRepo) Publish(ctx context.Context, id, sizeBytes int64) error {
	res, err := r.db.ExecContext(ctx, publishMediaImage, sizeBytes, r.now().UnixMilli(), id)
	if err != nil {
		return fmt.Errorf("publish media image %d: %w", id, err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("publish media image %d: %w", id, err)
	}
	if n == 0 {
		return fmt.Errorf("publish media image %d: %w", id, sql.ErrNoRows)
	}

	logging.FromContext(ctx).Debug().Int64("id", id).Int64("size", sizeBytes).Msg("media image published")
	return nil
}

func (r *mediaRepo) Delete(ctx context.Context, id int64) error {
	if _, err := r.db.ExecContext(ctx, deleteMediaImage, id); err != nil {
		return fmt.Errorf("delete media image %d: %w", id, err)
	}
	return nil
}

func (r *mediaRepo) Get(ctx context.Context, id int64) (*entity.GalleryEntry, error) {
	row := r.db.QueryRowContext(ctx, getMediaImage, id)
	entry, err := scanMediaImage(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get media image %d: %w", id, err)
	}
	return entry, nil
}

func (r *mediaRepo) ListVisible(ctx context.Context, limit int) ([]*entity.GalleryEntry, error) {
	if limit <= 0 {
		limit = -1 // no limit in SQLite
	}

	rows, err := r.db.QueryContext(ctx, listVisibleMediaImages, limit)
	if err != nil {
		return nil, fmt.Errorf("list media images: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var entries []*entity.GalleryEntry
	for rows.Next() {
		entry, err := scanMediaImage(rows)
		if err != nil {
			return nil, fmt.Errorf("scan media image: %w", err)
		}
		entries = append(entries, entry)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list media images: %w", err)
	}
	return entries, nil
}

func (r *mediaRepo) CountVisible(ctx context.Context) (int64, error) {
	var n int64
	if err := r.db.QueryRowContext(ctx, countVisibleMediaImages).Scan(&n); err != nil {
		return 0, fmt.Errorf("count media images: %w", err)
	}
	return n, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanMediaImage(row rowScanner) (*entity.GalleryEntry, error) {
	var (
		e                   entity.GalleryEntry
		pending             int64
		addedMs, modifiedMs int64
	)
	if err := row.Scan(
		&e.ID,
		&e.DisplayName,
		&e.MIMEType,
		&e.RelativePath,
		&e.DataPath,
		&e.SizeBytes,
		&pending,
		&addedMs,
		&modifiedMs,
	); err != nil {
		return nil, err
	}
	e.IsPending = pending != 0
	e.DateAdded = time.UnixMilli(addedMs)
	e.DateModified = time.UnixMilli(modifiedMs)
	return &e, nil
}

func boolToInt(b bool) int64 {
	if b {
		return 1
	}
	return 0
}
