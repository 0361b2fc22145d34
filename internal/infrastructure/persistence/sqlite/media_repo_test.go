package sqlite_test

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bnema/dumbcam/internal/domain/entity"
	"github.com/bnema/dumbcam/internal/domain/repository"
	"github.com/bnema/dumbcam/internal/infrastructure/persistence/sqlite"
	"github.com/bnema/dumbcam/internal/logging"
)

func testCtx() context.Context {
	logger := logging.New(logging.Config{Level: logging.ParseLevel("debug"), Format: "console"})
	return logging.WithContext(context.Background(), logger)
}

func newMediaRepo(t *testing.T) repository.MediaRepository {
	t.Helper()
	db, err := sqlite.NewConnection(testCtx(), filepath.Join(t.TempDir(), "media.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = sqlite.Close(db) })
	return sqlite.NewMediaRepository(db)
}

func pendingEntry(name string, added time.Time) *entity.GalleryEntry {
	return &entity.GalleryEntry{
		DisplayName:  name,
		MIMEType:     entity.MIMETypeJPEG,
		RelativePath: "Pictures/DumbCam",
		DataPath:     "/tmp/Pictures/DumbCam/" + name,
		IsPending:    true,
		DateAdded:    added,
	}
}

func TestNewConnection_EmptyPath(t *testing.T) {
	_, err := sqlite.NewConnection(testCtx(), "")
	assert.Error(t, err)
}

func TestNewConnection_MigratesSchema(t *testing.T) {
	ctx := testCtx()
	db, err := sqlite.NewConnection(ctx, filepath.Join(t.TempDir(), "nested", "media.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	version, err := sqlite.SchemaVersion(ctx, db)
	require.NoError(t, err)
	assert.Equal(t, int64(1), version)

	// Running again is a no-op.
	require.NoError(t, sqlite.RunMigrations(ctx, db))
	version, err = sqlite.SchemaVersion(ctx, db)
	require.NoError(t, err)
	assert.Equal(t, int64(1), version)
}

func TestMediaRepository_PendingEntryIsInvisible(t *testing.T) {
	ctx := testCtx()
	repo := newMediaRepo(t)

	entry := pendingEntry("IMG_1700000000000.jpg", time.UnixMilli(1700000000000))
	id, err := repo.Insert(ctx, entry)
	require.NoError(t, err)
	assert.Equal(t, id, entry.ID)
	assert.Positive(t, id)

	visible, err := repo.ListVisible(ctx, 10)
	require.NoError(t, err)
	assert.Empty(t, visible)

	n, err := repo.CountVisible(ctx)
	require.NoError(t, err)
	assert.Zero(t, n)

	got, err := repo.Get(ctx, id)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.True(t, got.IsPending)
	assert.False(t, got.IsVisible())
}

func TestMediaRepository_PublishMakesVisible(t *testing.T) {
	ctx := testCtx()
	repo := newMediaRepo(t)

	added := time.UnixMilli(1700000000123)
	id, err := repo.Insert(ctx, pendingEntry("IMG_1700000000123.jpg", added))
	require.NoError(t, err)

	require.NoError(t, repo.Publish(ctx, id, 4096))

	visible, err := repo.ListVisible(ctx, 10)
	require.NoError(t, err)
	require.Len(t, visible, 1)

	got := visible[0]
	assert.Equal(t, id, got.ID)
	assert.Equal(t, "IMG_1700000000123.jpg", got.DisplayName)
	assert.Equal(t, entity.MIMETypeJPEG, got.MIMEType)
	assert.Equal(t, "Pictures/DumbCam", got.RelativePath)
	assert.Equal(t, int64(4096), got.SizeBytes)
	assert.False(t, got.IsPending)
	assert.Equal(t, added.UnixMilli(), got.DateAdded.UnixMilli())
}

func TestMediaRepository_PublishUnknownID(t *testing.T) {
	repo := newMediaRepo(t)
	assert.Error(t, repo.Publish(testCtx(), 999, 1))
}

func TestMediaRepository_Delete(t *testing.T) {
	ctx := testCtx()
	repo := newMediaRepo(t)

	id, err := repo.Insert(ctx, pendingEntry("IMG_1.jpg", time.Now()))
	require.NoError(t, err)
	require.NoError(t, repo.Delete(ctx, id))

	got, err := repo.Get(ctx, id)
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestMediaRepository_ListVisibleNewestFirstWithLimit(t *testing.T) {
	ctx := testCtx()
	repo := newMediaRepo(t)

	base := time.UnixMilli(1700000000000)
	for i := range 3 {
		e := pendingEntry("IMG_x.jpg", base.Add(time.Duration(i)*time.Second))
		e.IsPending = false
		e.DisplayName = entity.GalleryFileName(e.DateAdded)
		_, err := repo.Insert(ctx, e)
		require.NoError(t, err)
	}

	all, err := repo.ListVisible(ctx, 0)
	require.NoError(t, err)
	require.Len(t, all, 3)
	assert.Equal(t, "IMG_1700000002000.jpg", all[0].DisplayName)
	assert.Equal(t, "IMG_1700000000000.jpg", all[2].DisplayName)

	two, err := repo.ListVisible(ctx, 2)
	require.NoError(t, err)
	assert.Len(t, two, 2)

	n, err := repo.CountVisible(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(3), n)
}

func TestMediaRepository_InsertNil(t *testing.T) {
	repo := newMediaRepo(t)
	_, err := repo.Insert(testCtx(), nil)
	assert.Error(t, err)
}
