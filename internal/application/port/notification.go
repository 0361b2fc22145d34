package port

import "context"

// NotificationType indicates the visual style of a notification.
type NotificationType int

const (
	// NotificationInfo is for informational messages.
	NotificationInfo NotificationType = iota
	// NotificationSuccess is for success confirmations.
	NotificationSuccess
	// NotificationError is for error messages.
	NotificationError
)

// Toast durations in milliseconds.
const (
	ToastShortMs = 2000
	ToastLongMs  = 3500
)

// String returns a human-readable representation of the notification type.
func (t NotificationType) String() string {
	switch t {
	case NotificationInfo:
		return "info"
	case NotificationSuccess:
		return "success"
	case NotificationError:
		return "error"
	default:
		return "info"
	}
}

// Notification represents the port interface for short-lived status toasts.
// Show must not block on user interaction.
type Notification interface {
	// Show displays message. durationMs is ToastShortMs or ToastLongMs;
	// pass 0 for the short default.
	Show(ctx context.Context, message string, notifType NotificationType, durationMs int)
}
