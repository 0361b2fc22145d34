package entity_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/bnema/dumbcam/internal/domain/entity"
)

func TestGalleryFileName(t *testing.T) {
	ts := time.UnixMilli(1700000000123)

	name := entity.GalleryFileName(ts)

	assert.Equal(t, "IMG_1700000000123.jpg", name)
	assert.True(t, entity.IsGalleryFileName(name))
}

func TestIsGalleryFileName(t *testing.T) {
	assert.False(t, entity.IsGalleryFileName("IMG_.jpg"))
	assert.False(t, entity.IsGalleryFileName("IMG_12a.jpg"))
	assert.False(t, entity.IsGalleryFileName(".pending-IMG_1.jpg"))
	assert.False(t, entity.IsGalleryFileName("IMG_1.jpeg"))
}

func TestGalleryRelativePath(t *testing.T) {
	assert.Equal(t, "Pictures/DumbCam", entity.GalleryRelativePath(entity.DirectoryPictures, entity.DefaultAlbum))
}

func TestGalleryEntry_IsVisible(t *testing.T) {
	var nilEntry *entity.GalleryEntry
	assert.False(t, nilEntry.IsVisible())
	assert.False(t, (&entity.GalleryEntry{IsPending: true}).IsVisible())
	assert.True(t, (&entity.GalleryEntry{}).IsVisible())
}

func TestMessageCatalog_Text(t *testing.T) {
	catalog := entity.MessageCatalog{entity.MessageImageSaved: "Saved!"}

	assert.Equal(t, "Saved!", catalog.Text(entity.MessageImageSaved))
	assert.Equal(t, entity.DefaultMessages()[entity.MessageImageSaveFailed], catalog.Text(entity.MessageImageSaveFailed))
	assert.Equal(t, "unknown_key", catalog.Text(entity.MessageKey("unknown_key")))
}
