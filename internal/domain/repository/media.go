// Package repository defines persistence interfaces owned by the domain.
package repository

import (
	"context"

	"github.com/bnema/dumbcam/internal/domain/entity"
)

// MediaRepository is the shared media index the gallery writers register
// images in. Readers only ever see entries whose pending flag is cleared.
type MediaRepository interface {
	// Insert adds a record and returns its id. entry.ID is updated.
	Insert(ctx context.Context, entry *entity.GalleryEntry) (int64, error)

	// Publish clears the pending flag and records the final size.
	Publish(ctx context.Context, id int64, sizeBytes int64) error

	// Delete removes a record, typically a pending one whose write failed.
	Delete(ctx context.Context, id int64) error

	// Get returns a record by id regardless of its pending state.
	// Returns nil if no record exists.
	Get(ctx context.Context, id int64) (*entity.GalleryEntry, error)

	// ListVisible returns non-pending records, newest first.
	ListVisible(ctx context.Context, limit int) ([]*entity.GalleryEntry, error)

	// CountVisible returns the number of non-pending records.
	CountVisible(ctx context.Context) (int64, error)
}
