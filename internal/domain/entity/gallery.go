package entity

import (
	"fmt"
	"path"
	"regexp"
	"time"
)

const (
	// MIMETypeJPEG is the only format the gallery writers produce.
	MIMETypeJPEG = "image/jpeg"

	// DefaultJPEGQuality is the fixed encoder quality for gallery writes.
	DefaultJPEGQuality = 90

	// DirectoryPictures is the shared collection captured images land in.
	DirectoryPictures = "Pictures"

	// DefaultAlbum is the app-specific subfolder of the collection.
	DefaultAlbum = "DumbCam"
)

var galleryFileNamePattern = regexp.MustCompile(`^IMG_\d+\.jpg$`)

// GalleryEntry is a record in the shared media index.
type GalleryEntry struct {
	ID           int64
	DisplayName  string // IMG_<unix-ms>.jpg
	MIMEType     string
	RelativePath string // e.g. Pictures/DumbCam
	DataPath     string // absolute path of the file on disk
	SizeBytes    int64
	IsPending    bool
	DateAdded    time.Time
	DateModified time.Time
}

// IsVisible reports whether gallery readers may observe the entry.
func (e *GalleryEntry) IsVisible() bool {
	return e != nil && !e.IsPending
}

// GalleryFileName builds the timestamp-based display name for a capture.
// Two captures within the same millisecond share a name.
func GalleryFileName(t time.Time) string {
	return fmt.Sprintf("IMG_%d.jpg", t.UnixMilli())
}

// IsGalleryFileName reports whether name follows the IMG_<digits>.jpg scheme.
func IsGalleryFileName(name string) bool {
	return galleryFileNamePattern.MatchString(name)
}

// GalleryRelativePath joins the shared collection and album folder.
func GalleryRelativePath(collection, album string) string {
	return path.Join(collection, album)
}
