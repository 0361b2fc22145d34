// Package gallery writes captured images into the shared picture collection
// and registers them in the media index.
package gallery

import (
	"bufio"
	"errors"
	"fmt"
	"image"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/bnema/dumbcam/internal/application/port"
	"github.com/bnema/dumbcam/internal/domain/entity"
	"github.com/bnema/dumbcam/internal/domain/repository"
	"github.com/bnema/dumbcam/internal/infrastructure/imaging"
)

const (
	dirPerm  = 0o755
	filePerm = 0o644

	pendingPrefix = ".pending-"
)

// ErrIndexUnavailable wraps media index failures.
var ErrIndexUnavailable = errors.New("media index unavailable")

// Config locates the gallery on disk.
type Config struct {
	// Root is the storage root the collection lives under.
	Root string
	// Collection is the shared folder, "Pictures" by default.
	Collection string
	// Album is the app-specific subfolder.
	Album string
	// Quality is the JPEG encoder quality.
	Quality int
	// Now is the clock used for names and timestamps. Defaults to time.Now.
	Now func() time.Time
}

func (c Config) withDefaults() Config {
	if c.Collection == "" {
		c.Collection = entity.DirectoryPictures
	}
	if c.Album == "" {
		c.Album = entity.DefaultAlbum
	}
	if c.Quality <= 0 || c.Quality > 100 {
		c.Quality = entity.DefaultJPEGQuality
	}
	if c.Now == nil {
		c.Now = time.Now
	}
	return c
}

// RelativePath returns the collection-relative folder, e.g. Pictures/DumbCam.
func (c Config) RelativePath() string {
	c = c.withDefaults()
	return entity.GalleryRelativePath(c.Collection, c.Album)
}

// Dir returns the absolute folder images are written to.
func (c Config) Dir() string {
	return filepath.Join(c.Root, filepath.FromSlash(c.RelativePath()))
}

// NewWriter picks the write discipline for the platform level: pending
// records from APILevelScopedStorage on, direct writes below.
func NewWriter(level entity.APILevel, repo repository.MediaRepository, cfg Config) port.GalleryWriter {
	if level.UsesPendingWrites() {
		return NewPendingWriter(repo, cfg)
	}
	return NewLegacyWriter(repo, cfg)
}

func newEntry(cfg Config, now time.Time) *entity.GalleryEntry {
	name := entity.GalleryFileName(now)
	return &entity.GalleryEntry{
		DisplayName:  name,
		MIMEType:     entity.MIMETypeJPEG,
		RelativePath: cfg.RelativePath(),
		DataPath:     filepath.Join(cfg.Dir(), name),
		DateAdded:    now,
		DateModified: now,
	}
}

// writeJPEG encodes img into f, syncs and closes it, returning the byte count.
// f is closed on every path.
func writeJPEG(f *os.File, img image.Image, quality int) (int64, error) {
	cw := &countingWriter{w: f}
	bw := bufio.NewWriter(cw)

	if err := imaging.EncodeJPEG(bw, img, quality); err != nil {
		_ = f.Close()
		return 0, err
	}
	if err := bw.Flush(); err != nil {
		_ = f.Close()
		return 0, fmt.Errorf("flush image: %w", err)
	}
	if err := f.Sync(); err != nil {
		_ = f.Close()
		return 0, fmt.Errorf("sync image: %w", err)
	}
	if err := f.Close(); err != nil {
		return 0, fmt.Errorf("close image: %w", err)
	}
	return cw.n, nil
}

type countingWriter struct {
	w io.Writer
	n int64
}

func (c *countingWriter) Write(p []byte) (int, error) {
	n, err := c.w.Write(p)
	c.n += int64(n)
	return n, err
}
