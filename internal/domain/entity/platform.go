package entity

// APILevel identifies the platform revision the host emulates. It selects
// the gallery write discipline and the storage permission identifier.
type APILevel int

const (
	// APILevelScopedStorage is the first level with pending gallery records.
	APILevelScopedStorage APILevel = 29

	// APILevelMediaPermissions is the first level using read_media_images.
	APILevelMediaPermissions APILevel = 33

	// DefaultAPILevel is used when the config does not set one.
	DefaultAPILevel APILevel = 34
)

// UsesPendingWrites reports whether gallery writes go through a pending record.
func (l APILevel) UsesPendingWrites() bool {
	return l >= APILevelScopedStorage
}

// StoragePermission returns the storage grant required at this level.
func (l APILevel) StoragePermission() OSPermission {
	if l >= APILevelMediaPermissions {
		return OSPermissionReadMediaImages
	}
	return OSPermissionWriteExternalStorage
}

// RequiredPermissions lists every OS grant the host needs before showing content.
func (l APILevel) RequiredPermissions() []OSPermission {
	return []OSPermission{OSPermissionCamera, l.StoragePermission()}
}
