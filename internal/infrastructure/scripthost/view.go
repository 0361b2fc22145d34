package scripthost

import (
	"context"
	"sync"

	"github.com/bnema/dumbcam/internal/application/port"
	"github.com/bnema/dumbcam/internal/domain/entity"
	"github.com/bnema/dumbcam/internal/logging"
)

// View is the port.WebView used when scripts run without an engine. It
// remembers what the host asked it to show.
type View struct {
	mu       sync.Mutex
	location string
	notice   string
	missing  []entity.OSPermission
}

var _ port.WebView = (*View)(nil)

// NewView creates an empty view.
func NewView() *View {
	return &View{}
}

// LoadURI implements port.WebView.
func (v *View) LoadURI(ctx context.Context, uri string) error {
	v.mu.Lock()
	v.location = uri
	v.notice = ""
	v.missing = nil
	v.mu.Unlock()

	logging.FromContext(ctx).Debug().Str("component", "script-view").Str("uri", uri).Msg("page loaded")
	return nil
}

// ShowPermissionsRequired implements port.WebView.
func (v *View) ShowPermissionsRequired(ctx context.Context, message string, missing []entity.OSPermission) error {
	v.mu.Lock()
	v.notice = message
	v.missing = append([]entity.OSPermission(nil), missing...)
	v.mu.Unlock()

	logging.FromContext(ctx).Warn().
		Str("component", "script-view").
		Int("missing", len(missing)).
		Msg(message)
	return nil
}

// Location returns the last loaded URI.
func (v *View) Location() string {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.location
}

// Notice returns the permissions notice and the grants it lists, if one is
// showing.
func (v *View) Notice() (string, []entity.OSPermission) {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.notice, append([]entity.OSPermission(nil), v.missing...)
}
