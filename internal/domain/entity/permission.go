// Package entity holds the domain types shared by the bridge use cases.
package entity

import "strings"

// Capability is a resource class embedded content may ask the engine for.
type Capability string

const (
	// CapabilityVideoCapture is camera access requested through getUserMedia.
	CapabilityVideoCapture Capability = "video_capture"

	// CapabilityAudioCapture is microphone access requested through getUserMedia.
	CapabilityAudioCapture Capability = "audio_capture"
)

// ParseCapability normalizes an engine-provided identifier.
// Accepts "video_capture", "video-capture" and "VIDEO_CAPTURE" spellings.
func ParseCapability(raw string) (Capability, bool) {
	normalized := strings.ReplaceAll(strings.ToLower(strings.TrimSpace(raw)), "-", "_")
	switch Capability(normalized) {
	case CapabilityVideoCapture:
		return CapabilityVideoCapture, true
	case CapabilityAudioCapture:
		return CapabilityAudioCapture, true
	default:
		return Capability(normalized), false
	}
}

// ContainsCapability reports whether caps includes want.
func ContainsCapability(caps []Capability, want Capability) bool {
	for _, c := range caps {
		if c == want {
			return true
		}
	}
	return false
}

// CapabilitiesToStrings converts capabilities to strings for logging.
func CapabilitiesToStrings(caps []Capability) []string {
	result := make([]string, len(caps))
	for i, c := range caps {
		result[i] = string(c)
	}
	return result
}

// OSPermission is an operating-system grant held (or not) by the host process.
type OSPermission string

const (
	// OSPermissionCamera gates video capture.
	OSPermissionCamera OSPermission = "camera"

	// OSPermissionReadMediaImages is the storage grant on API level 33 and newer.
	OSPermissionReadMediaImages OSPermission = "read_media_images"

	// OSPermissionWriteExternalStorage is the storage grant below API level 33.
	OSPermissionWriteExternalStorage OSPermission = "write_external_storage"
)

// PermissionDecision is the outcome of a capability request.
type PermissionDecision string

const (
	// PermissionGranted means the request was granted as asked.
	PermissionGranted PermissionDecision = "granted"

	// PermissionDenied means the whole request was denied.
	PermissionDenied PermissionDecision = "denied"
)

// IsGranted returns true for PermissionGranted.
func (d PermissionDecision) IsGranted() bool {
	return d == PermissionGranted
}
