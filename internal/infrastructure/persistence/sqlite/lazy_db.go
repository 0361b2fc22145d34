package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"sync"

	"github.com/bnema/dumbcam/internal/domain/entity"
	"github.com/bnema/dumbcam/internal/domain/repository"
	"github.com/bnema/dumbcam/internal/logging"
)

// LazyDB opens the media index on first access. Commands that never touch
// the gallery (config, about) skip the WASM compilation and migrations.
type LazyDB struct {
	dbPath string

	mu sync.Mutex
	db *sql.DB
}

// NewLazyDB creates a new lazy database provider.
// The actual connection is not established until DB() is called.
func NewLazyDB(dbPath string) *LazyDB {
	return &LazyDB{dbPath: dbPath}
}

// DB returns the database connection, opening it if necessary.
// Only a successful open is kept; after a failure the next call tries again.
func (l *LazyDB) DB(ctx context.Context) (*sql.DB, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	if l.db != nil {
		return l.db, nil
	}

	log := logging.FromContext(ctx)
	log.Debug().Str("path", l.dbPath).Msg("lazy media index initialization starting")

	db, err := NewConnection(ctx, l.dbPath)
	if err != nil {
		log.Error().Err(err).Str("path", l.dbPath).Msg("lazy media index initialization failed")
		return nil, fmt.Errorf("media index initialization failed: %w", err)
	}
	l.db = db
	return db, nil
}

// Close closes the database connection if it was initialized.
func (l *LazyDB) Close() error {
	l.mu.Lock()
	defer l.mu.Unlock()

	if l.db != nil {
		return l.db.Close()
	}
	return nil
}

// IsInitialized returns true if the database has been initialized.
func (l *LazyDB) IsInitialized() bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.db != nil
}

// Path returns the database path.
func (l *LazyDB) Path() string {
	return l.dbPath
}

// LazyMediaRepository defers opening the media index until the first call.
type LazyMediaRepository struct {
	provider *LazyDB

	mu   sync.Mutex
	repo repository.MediaRepository
}

// NewLazyMediaRepository creates a lazy-loading media repository.
func NewLazyMediaRepository(provider *LazyDB) *LazyMediaRepository {
	return &LazyMediaRepository{provider: provider}
}

var _ repository.MediaRepository = (*LazyMediaRepository)(nil)

func (r *LazyMediaRepository) init(ctx context.Context) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.repo != nil {
		return nil
	}
	db, err := r.provider.DB(ctx)
	if err != nil {
		return err
	}
	r.repo = NewMediaRepository(db)
	return nil
}

func (r *LazyMediaRepository) Insert(ctx context.Context, entry *entity.GalleryEntry) (int64, error) {
	if err := r.init(ctx); err != nil {
		return 0, err
	}
	return r.repo.Insert(ctx, entry)
}

func (r *LazyMediaRepository) Publish(ctx context.Context, id, sizeBytes int64) error {
	if err := r.init(ctx); err != nil {
		return err
	}
	return r.repo.Publish(ctx, id, sizeBytes)
}

func (r *LazyMediaRepository) Delete(ctx context.Context, id int64) error {
	if err := r.init(ctx); err != nil {
		return err
	}
	return r.repo.Delete(ctx, id)
}

func (r *LazyMediaRepository) Get(ctx context.Context, id int64) (*entity.GalleryEntry, error) {
	if err := r.init(ctx); err != nil {
		return nil, err
	}
	return r.repo.Get(ctx, id)
}

func (r *LazyMediaRepository) ListVisible(ctx context.Context, limit int) ([]*entity.GalleryEntry, error) {
	if err := r.init(ctx); err != nil {
		return nil, err
	}
	return r.repo.ListVisible(ctx, limit)
}

func (r *LazyMediaRepository) CountVisible(ctx context.Context) (int64, error) {
	if err := r.init(ctx); err != nil {
		return 0, err
	}
	return r.repo.CountVisible(ctx)
}
