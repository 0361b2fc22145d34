package bridge_test

import (
	"bytes"
	"context"
	"encoding/base64"
	"fmt"
	"image"
	"image/color"
	"image/jpeg"
	"os"
	"path/filepath"
	"regexp"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bnema/dumbcam/internal/app/bridge"
	"github.com/bnema/dumbcam/internal/application/port"
	"github.com/bnema/dumbcam/internal/application/usecase"
	"github.com/bnema/dumbcam/internal/domain/entity"
	"github.com/bnema/dumbcam/internal/infrastructure/gallery"
	"github.com/bnema/dumbcam/internal/infrastructure/imaging"
	"github.com/bnema/dumbcam/internal/infrastructure/persistence/sqlite"
)

type recordedToast struct {
	text string
	kind port.NotificationType
}

type toastRecorder struct {
	mu     sync.Mutex
	toasts []recordedToast
}

func (r *toastRecorder) Show(_ context.Context, message string, notifType port.NotificationType, _ int) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.toasts = append(r.toasts, recordedToast{text: message, kind: notifType})
}

type galleryFixture struct {
	bridge *bridge.Bridge
	toasts *toastRecorder
	media  *sqlite.LazyMediaRepository
	dir    string
}

func newGalleryFixture(t *testing.T, level entity.APILevel) *galleryFixture {
	t.Helper()

	root := t.TempDir()
	db := sqlite.NewLazyDB(filepath.Join(t.TempDir(), "index.db"))
	t.Cleanup(func() { _ = db.Close() })
	media := sqlite.NewLazyMediaRepository(db)

	cfg := gallery.Config{Root: root}
	toasts := &toastRecorder{}
	b := bridge.New(bridge.Config{
		Saver:    usecase.NewSaveImageUseCase(imaging.NewDecoder(), gallery.NewWriter(level, media, cfg)),
		Notifier: toasts,
	})
	return &galleryFixture{bridge: b, toasts: toasts, media: media, dir: cfg.Dir()}
}

func jpegPayload(t *testing.T) string {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, 8, 8))
	for x := 0; x < 8; x++ {
		for y := 0; y < 8; y++ {
			img.Set(x, y, color.RGBA{R: uint8(x * 30), G: uint8(y * 30), B: 128, A: 255})
		}
	}
	var buf bytes.Buffer
	require.NoError(t, jpeg.Encode(&buf, img, nil))
	return "data:image/jpeg;base64," + base64.StdEncoding.EncodeToString(buf.Bytes())
}

func dirFiles(t *testing.T, dir string) []string {
	t.Helper()
	entries, err := os.ReadDir(dir)
	if os.IsNotExist(err) {
		return nil
	}
	require.NoError(t, err)
	names := make([]string, 0, len(entries))
	for _, e := range entries {
		names = append(names, e.Name())
	}
	return names
}

func TestBridgeGallery_RoundTrip(t *testing.T) {
	for _, level := range []entity.APILevel{entity.DefaultAPILevel, 28} {
		t.Run(fmt.Sprintf("api_%d", level), func(t *testing.T) {
			f := newGalleryFixture(t, level)
			ctx := context.Background()

			f.bridge.SaveImage(ctx, jpegPayload(t))

			require.Len(t, f.toasts.toasts, 1)
			assert.Equal(t, "Image saved to gallery", f.toasts.toasts[0].text)
			assert.Equal(t, port.NotificationSuccess, f.toasts.toasts[0].kind)

			entries, err := f.media.ListVisible(ctx, 10)
			require.NoError(t, err)
			require.Len(t, entries, 1)

			e := entries[0]
			assert.Equal(t, entity.MIMETypeJPEG, e.MIMEType)
			assert.Greater(t, e.SizeBytes, int64(0))
			assert.Regexp(t, regexp.MustCompile(`^IMG_\d+\.jpg$`), e.DisplayName)
			assert.False(t, e.IsPending)

			info, err := os.Stat(e.DataPath)
			require.NoError(t, err)
			assert.Equal(t, e.SizeBytes, info.Size())
			assert.Equal(t, []string{e.DisplayName}, dirFiles(t, f.dir))
		})
	}
}

func TestBridgeGallery_UndecodableImage(t *testing.T) {
	f := newGalleryFixture(t, entity.DefaultAPILevel)
	ctx := context.Background()

	f.bridge.SaveImage(ctx, "data:image/jpeg;base64,/9j/4AAQSkZJRg==")

	require.Len(t, f.toasts.toasts, 1)
	assert.Equal(t, "Failed to save image", f.toasts.toasts[0].text)
	assert.Equal(t, port.NotificationError, f.toasts.toasts[0].kind)
	assert.Empty(t, dirFiles(t, f.dir))

	count, err := f.media.CountVisible(ctx)
	require.NoError(t, err)
	assert.Zero(t, count)
}

func TestBridgeGallery_MalformedBase64(t *testing.T) {
	f := newGalleryFixture(t, entity.DefaultAPILevel)
	ctx := context.Background()

	f.bridge.SaveImage(ctx, "data:image/jpeg;base64,@@not-base64@@")

	require.Len(t, f.toasts.toasts, 1)
	assert.Equal(t, "Failed to save image", f.toasts.toasts[0].text)
	assert.Empty(t, dirFiles(t, f.dir))

	count, err := f.media.CountVisible(ctx)
	require.NoError(t, err)
	assert.Zero(t, count)
}
