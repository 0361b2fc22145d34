// Package port defines application-layer interfaces for external capabilities.
// Ports abstract infrastructure concerns, allowing the application layer to
// remain independent of specific implementations (engine process, OS, storage).
package port

import (
	"context"

	"github.com/bnema/dumbcam/internal/domain/entity"
)

// LoadEvent represents page load state transitions.
type LoadEvent int

const (
	// LoadStarted indicates navigation has begun.
	LoadStarted LoadEvent = iota
	// LoadFinished indicates the page has fully loaded.
	LoadFinished
)

// String returns a human-readable representation of the load event.
func (e LoadEvent) String() string {
	switch e {
	case LoadStarted:
		return "started"
	case LoadFinished:
		return "finished"
	default:
		return "unknown"
	}
}

// WebViewState represents a snapshot of the embedded view.
type WebViewState struct {
	URI       string
	Title     string
	IsLoading bool
	Progress  float64 // 0.0 to 1.0
}

// WebView is the embedded view the host drives.
type WebView interface {
	// LoadURI asks the engine to load uri.
	LoadURI(ctx context.Context, uri string) error

	// ShowPermissionsRequired replaces the content with a static notice
	// listing the missing OS grants.
	ShowPermissionsRequired(ctx context.Context, message string, missing []entity.OSPermission) error
}
