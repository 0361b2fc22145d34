package entity

// MessageKey names a user-visible status string.
type MessageKey string

const (
	MessageImageSaved              MessageKey = "image_saved"
	MessageImageSaveFailed         MessageKey = "image_save_failed"
	MessagePermissionDenied        MessageKey = "permission_denied"
	MessageCameraPermissionMessage MessageKey = "camera_permission_message"
	MessagePermissionsRequired     MessageKey = "permissions_required"
)

// MessageCatalog maps message keys to display text.
type MessageCatalog map[MessageKey]string

// DefaultMessages returns the built-in English strings.
func DefaultMessages() MessageCatalog {
	return MessageCatalog{
		MessageImageSaved:              "Image saved to gallery",
		MessageImageSaveFailed:         "Failed to save image",
		MessagePermissionDenied:        "Permission denied. Please grant camera and storage permissions.",
		MessageCameraPermissionMessage: "Camera permission is required to capture photos",
		MessagePermissionsRequired:     "Camera and storage permissions are required.\nPlease grant them in settings.",
	}
}

// Text returns the string for key, falling back to the defaults and then to
// the key itself.
func (c MessageCatalog) Text(key MessageKey) string {
	if s, ok := c[key]; ok && s != "" {
		return s
	}
	if s, ok := DefaultMessages()[key]; ok {
		return s
	}
	return string(key)
}
