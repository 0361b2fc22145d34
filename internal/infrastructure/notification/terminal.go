// Package notification renders status toasts outside the embedded page.
package notification

import (
	"context"
	"fmt"
	"io"
	"sync"

	"github.com/charmbracelet/lipgloss"

	"github.com/bnema/dumbcam/internal/application/port"
	"github.com/bnema/dumbcam/internal/logging"
)

const (
	iconInfo    = "\uf05a" // info
	iconSuccess = "\uf00c" // check
	iconError   = "\uf00d" // x
)

// Terminal writes one styled line per toast. Writes are serialized and never
// block on the user.
type Terminal struct {
	mu     sync.Mutex
	w      io.Writer
	styles map[port.NotificationType]lipgloss.Style
	icons  map[port.NotificationType]string
}

// NewTerminal creates a toaster writing to w, typically stderr.
func NewTerminal(w io.Writer) *Terminal {
	base := lipgloss.NewStyle().Bold(true)
	return &Terminal{
		w: w,
		styles: map[port.NotificationType]lipgloss.Style{
			port.NotificationInfo:    base.Foreground(lipgloss.Color("#7aa2f7")),
			port.NotificationSuccess: base.Foreground(lipgloss.Color("#9ece6a")),
			port.NotificationError:   base.Foreground(lipgloss.Color("#f7768e")),
		},
		icons: map[port.NotificationType]string{
			port.NotificationInfo:    iconInfo,
			port.NotificationSuccess: iconSuccess,
			port.NotificationError:   iconError,
		},
	}
}

var _ port.Notification = (*Terminal)(nil)

// Show implements port.Notification.
func (t *Terminal) Show(ctx context.Context, message string, notifType port.NotificationType, durationMs int) {
	if durationMs <= 0 {
		durationMs = port.ToastShortMs
	}

	style, ok := t.styles[notifType]
	if !ok {
		style = t.styles[port.NotificationInfo]
	}
	line := fmt.Sprintf("%s %s", style.Render(t.icons[notifType]), message)

	t.mu.Lock()
	_, err := fmt.Fprintln(t.w, line)
	t.mu.Unlock()

	log := logging.FromContext(ctx)
	if err != nil {
		log.Debug().Err(err).Msg("failed to write toast")
	}
	log.Debug().
		Str("component", "notification").
		Str("type", notifType.String()).
		Int("duration_ms", durationMs).
		Str("message", message).
		Msg("toast shown")
}

// Multi fans a toast out to several notifiers.
type Multi []port.Notification

var _ port.Notification = Multi(nil)

// Show implements port.Notification.
func (m Multi) Show(ctx context.Context, message string, notifType port.NotificationType, durationMs int) {
	for _, n := range m {
		if n != nil {
			n.Show(ctx, message, notifType, durationMs)
		}
	}
}

// Discard drops every toast.
type Discard struct{}

// Show implements port.Notification.
func (Discard) Show(context.Context, string, port.NotificationType, int) {}
