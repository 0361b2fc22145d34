package config

import (
	"time"

	"github.com/bnema/dumbcam/internal/domain/entity"
)

const (
	// DefaultEntryURL is the bundled camera page.
	DefaultEntryURL = "dumbcam://app/camera.html"
	// DefaultAllowedPrefix is the bundled asset scheme and host.
	DefaultAllowedPrefix = "dumbcam://app/"
	// DefaultBridgeName is the identifier page script uses.
	DefaultBridgeName = "DumbCamBridge"
	// DefaultCameraDevices matches V4L2 capture nodes.
	DefaultCameraDevices = "/dev/video*"
	// DefaultScriptTimeout bounds a page script run.
	DefaultScriptTimeout = 30 * time.Second
)

// DefaultConfig returns the default configuration. StorageRoot and IndexPath
// are resolved at load time.
func DefaultConfig() *Config {
	messages := entity.DefaultMessages()
	return &Config{
		Logging: LoggingConfig{
			Level:  "info",
			Format: "console",
		},
		Platform: PlatformConfig{
			APILevel: int(entity.DefaultAPILevel),
		},
		Gallery: GalleryConfig{
			Collection:  entity.DirectoryPictures,
			Album:       entity.DefaultAlbum,
			JPEGQuality: entity.DefaultJPEGQuality,
		},
		Permissions: PermissionsConfig{
			Mode:          PermissionModeProbe,
			CameraDevices: DefaultCameraDevices,
		},
		Bridge: BridgeConfig{
			Name: DefaultBridgeName,
		},
		Content: ContentConfig{
			EntryURL:      DefaultEntryURL,
			AllowedPrefix: DefaultAllowedPrefix,
		},
		Messages: MessagesConfig{
			ImageSaved:              messages[entity.MessageImageSaved],
			ImageSaveFailed:         messages[entity.MessageImageSaveFailed],
			PermissionDenied:        messages[entity.MessagePermissionDenied],
			CameraPermissionMessage: messages[entity.MessageCameraPermissionMessage],
			PermissionsRequired:     messages[entity.MessagePermissionsRequired],
		},
		Script: ScriptConfig{
			Timeout: DefaultScriptTimeout,
		},
	}
}
