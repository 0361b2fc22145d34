// Package config loads dumbcam's TOML configuration through Viper.
package config

import (
	"time"

	"github.com/bnema/dumbcam/internal/domain/entity"
)

// Config represents the complete configuration for dumbcam.
type Config struct {
	Logging LoggingConfig `mapstructure:"logging" yaml:"logging" toml:"logging"`
	// Platform selects the emulated platform revision.
	Platform PlatformConfig `mapstructure:"platform" yaml:"platform" toml:"platform"`
	// Gallery locates the shared picture collection and media index.
	Gallery GalleryConfig `mapstructure:"gallery" yaml:"gallery" toml:"gallery"`
	// Permissions controls how OS grants are determined.
	Permissions PermissionsConfig `mapstructure:"permissions" yaml:"permissions" toml:"permissions"`
	Bridge      BridgeConfig      `mapstructure:"bridge" yaml:"bridge" toml:"bridge"`
	// Content defines the bundled page and the only navigable prefix.
	Content ContentConfig `mapstructure:"content" yaml:"content" toml:"content"`
	// Messages overrides user-visible toast texts.
	Messages MessagesConfig `mapstructure:"messages" yaml:"messages" toml:"messages"`
	Script   ScriptConfig   `mapstructure:"script" yaml:"script" toml:"script"`
}

// LoggingConfig holds logging configuration.
type LoggingConfig struct {
	// Level is one of trace, debug, info, warn, error.
	Level string `mapstructure:"level" yaml:"level" toml:"level"`
	// Format is console or json.
	Format string `mapstructure:"format" yaml:"format" toml:"format"`
}

// PlatformConfig holds the emulated platform revision.
type PlatformConfig struct {
	// APILevel selects the gallery write discipline (pending from 29) and
	// the storage permission (read_media_images from 33).
	APILevel int `mapstructure:"api_level" yaml:"api_level" toml:"api_level"`
}

// Level returns the configured level as a domain value.
func (p PlatformConfig) Level() entity.APILevel {
	return entity.APILevel(p.APILevel)
}

// GalleryConfig locates captured images on disk.
type GalleryConfig struct {
	// StorageRoot is the directory the collection lives under (default: $HOME).
	StorageRoot string `mapstructure:"storage_root" yaml:"storage_root" toml:"storage_root"`
	// Collection is the shared folder images are filed in.
	Collection string `mapstructure:"collection" yaml:"collection" toml:"collection"`
	// Album is the app-specific subfolder of the collection.
	Album string `mapstructure:"album" yaml:"album" toml:"album"`
	// JPEGQuality is the encoder quality, 1-100. Defaults to 90.
	JPEGQuality int `mapstructure:"jpeg_quality" yaml:"jpeg_quality" toml:"jpeg_quality"`
	// IndexPath is the media index database (default: $XDG_DATA_HOME/dumbcam/media.sqlite).
	IndexPath string `mapstructure:"index_path" yaml:"index_path" toml:"index_path"`
}

// PermissionMode selects the permission oracle.
type PermissionMode string

const (
	PermissionModeProbe    PermissionMode = "probe"
	PermissionModeGrantAll PermissionMode = "grant_all"
	PermissionModeDenyAll  PermissionMode = "deny_all"
)

// PermissionsConfig controls the permission oracle.
type PermissionsConfig struct {
	// Mode is probe, grant_all or deny_all.
	Mode PermissionMode `mapstructure:"mode" yaml:"mode" toml:"mode"`
	// CameraDevices is a glob of camera device nodes probed for access.
	CameraDevices string `mapstructure:"camera_devices" yaml:"camera_devices" toml:"camera_devices"`
}

// BridgeConfig configures the script-to-native bridge.
type BridgeConfig struct {
	// Name is the global identifier page script reaches the bridge under.
	Name string `mapstructure:"name" yaml:"name" toml:"name"`
}

// ContentConfig defines the bundled content.
type ContentConfig struct {
	// EntryURL is loaded once permissions are in place.
	EntryURL string `mapstructure:"entry_url" yaml:"entry_url" toml:"entry_url"`
	// AllowedPrefix is the only address prefix content may navigate to.
	AllowedPrefix string `mapstructure:"allowed_prefix" yaml:"allowed_prefix" toml:"allowed_prefix"`
}

// MessagesConfig holds toast texts. Empty values fall back to the built-in strings.
type MessagesConfig struct {
	ImageSaved              string `mapstructure:"image_saved" yaml:"image_saved" toml:"image_saved"`
	ImageSaveFailed         string `mapstructure:"image_save_failed" yaml:"image_save_failed" toml:"image_save_failed"`
	PermissionDenied        string `mapstructure:"permission_denied" yaml:"permission_denied" toml:"permission_denied"`
	CameraPermissionMessage string `mapstructure:"camera_permission_message" yaml:"camera_permission_message" toml:"camera_permission_message"`
	PermissionsRequired     string `mapstructure:"permissions_required" yaml:"permissions_required" toml:"permissions_required"`
}

// Catalog converts the texts into a message catalog.
func (m MessagesConfig) Catalog() entity.MessageCatalog {
	catalog := entity.MessageCatalog{}
	set := func(key entity.MessageKey, text string) {
		if text != "" {
			catalog[key] = text
		}
	}
	set(entity.MessageImageSaved, m.ImageSaved)
	set(entity.MessageImageSaveFailed, m.ImageSaveFailed)
	set(entity.MessagePermissionDenied, m.PermissionDenied)
	set(entity.MessageCameraPermissionMessage, m.CameraPermissionMessage)
	set(entity.MessagePermissionsRequired, m.PermissionsRequired)
	return catalog
}

// ScriptConfig configures the page script runtime.
type ScriptConfig struct {
	// Timeout interrupts a page script after this long; 0 disables it.
	Timeout time.Duration `mapstructure:"timeout" yaml:"timeout" toml:"timeout"`
}
