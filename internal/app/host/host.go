// Package host wires the permission gate, navigation guard and capture
// bridge behind the callbacks a browser engine raises. Engine adapters
// (the headless JSON-lines engine, the script host) translate their own
// events into calls on Host.
package host

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/bnema/dumbcam/internal/app/bridge"
	"github.com/bnema/dumbcam/internal/application/port"
	"github.com/bnema/dumbcam/internal/application/usecase"
	"github.com/bnema/dumbcam/internal/domain/entity"
	"github.com/bnema/dumbcam/internal/infrastructure/assets"
	"github.com/bnema/dumbcam/internal/logging"
)

// Config holds the collaborators of a Host.
type Config struct {
	EntryURL   string
	Level      entity.APILevel
	Oracle     port.PermissionOracle
	View       port.WebView
	Notifier   port.Notification
	Navigation *usecase.GuardNavigationUseCase
	Bridge     *bridge.Bridge
	Assets     *assets.Resolver
	Messages   entity.MessageCatalog
}

// Host reacts to engine callbacks.
type Host struct {
	entryURL   string
	view       port.WebView
	notifier   port.Notification
	navigation *usecase.GuardNavigationUseCase
	permission *usecase.HandlePermissionUseCase
	checker    *usecase.CheckPermissionsUseCase
	bridge     *bridge.Bridge
	assets     *assets.Resolver

	mu           sync.RWMutex
	messages     entity.MessageCatalog
	state        port.WebViewState
	contentShown bool
}

// New validates cfg and builds a Host.
func New(cfg Config) (*Host, error) {
	if cfg.Oracle == nil {
		return nil, errors.New("host: permission oracle is required")
	}
	if cfg.View == nil {
		return nil, errors.New("host: web view is required")
	}
	if cfg.Navigation == nil {
		return nil, errors.New("host: navigation guard is required")
	}
	if cfg.Bridge == nil {
		return nil, errors.New("host: bridge is required")
	}
	if cfg.EntryURL == "" {
		return nil, errors.New("host: entry url is required")
	}

	messages := cfg.Messages
	if messages == nil {
		messages = entity.DefaultMessages()
	}
	level := cfg.Level
	if level == 0 {
		level = entity.DefaultAPILevel
	}

	h := &Host{
		entryURL:   cfg.EntryURL,
		view:       cfg.View,
		notifier:   cfg.Notifier,
		navigation: cfg.Navigation,
		checker:    usecase.NewCheckPermissionsUseCase(cfg.Oracle, level),
		bridge:     cfg.Bridge,
		assets:     cfg.Assets,
		messages:   messages,
	}
	h.permission = usecase.NewHandlePermissionUseCase(cfg.Oracle, h.onPermissionDecision)
	return h, nil
}

// Bridge returns the capture bridge exposed to page script.
func (h *Host) Bridge() *bridge.Bridge {
	return h.bridge
}

// ContentShown reports whether the entry page has been loaded.
func (h *Host) ContentShown() bool {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.contentShown
}

// State returns a snapshot of the view state.
func (h *Host) State() port.WebViewState {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.state
}

// Start runs the launch gate: with every OS grant held the entry page is
// loaded, otherwise the permissions notice is shown and the missing grants
// are requested once.
func (h *Host) Start(ctx context.Context) error {
	ctx = logging.WithComponent(ctx, "host")
	log := logging.FromContext(ctx)

	status := h.checker.Check(ctx)
	if status.AllGranted {
		return h.showContent(ctx)
	}

	log.Info().
		Strs("missing", permissionsToStrings(status.Missing())).
		Msg("OS permissions missing at launch")

	if err := h.showPermissionsRequired(ctx, status.Missing()); err != nil {
		return err
	}

	after, err := h.checker.RequestMissing(ctx)
	if err != nil {
		log.Warn().Err(err).Msg("permission request flow failed")
		return nil
	}
	if after.AllGranted {
		return h.showContent(ctx)
	}
	return nil
}

// Retry re-checks the OS grants after the user acted on the notice.
// It returns true when the entry page is now shown.
func (h *Host) Retry(ctx context.Context) (bool, error) {
	ctx = logging.WithComponent(ctx, "host")

	status := h.checker.Check(ctx)
	if !status.AllGranted {
		logging.FromContext(ctx).Info().
			Strs("missing", permissionsToStrings(status.Missing())).
			Msg("permissions still missing on retry")
		h.toast(ctx, entity.MessagePermissionDenied, port.NotificationError, port.ToastLongMs)
		return false, nil
	}
	if h.ContentShown() {
		return true, nil
	}
	if err := h.showContent(ctx); err != nil {
		return false, err
	}
	return true, nil
}

// CheckPermissions reports the current OS grant state.
func (h *Host) CheckPermissions(ctx context.Context) usecase.CheckPermissionsOutput {
	return h.checker.Check(ctx)
}

// DecideNavigation applies the navigation guard. A rejected target leaves the
// view state untouched.
func (h *Host) DecideNavigation(ctx context.Context, target string) entity.NavigationDecision {
	return h.navigation.Decide(ctx, target)
}

// OnPermissionRequest resolves an engine capability request exactly once.
func (h *Host) OnPermissionRequest(ctx context.Context, req port.PermissionRequest) entity.PermissionDecision {
	once, ok := req.(*port.OnceRequest)
	if !ok {
		once = port.NewOnceRequest(ctx, req)
	}
	return h.permission.HandlePermissionRequest(ctx, once)
}

// OnPermissionCanceled records an engine-side withdrawal.
func (h *Host) OnPermissionCanceled(ctx context.Context, requestID string) {
	h.permission.HandlePermissionCanceled(ctx, requestID)
}

// OnScriptMessage forwards an enveloped page message to the bridge.
func (h *Host) OnScriptMessage(ctx context.Context, raw []byte) error {
	return h.bridge.DispatchJSON(ctx, raw)
}

// OnLoadEvent tracks page load transitions.
func (h *Host) OnLoadEvent(ctx context.Context, event port.LoadEvent, uri string) {
	h.mu.Lock()
	switch event {
	case port.LoadStarted:
		h.state.IsLoading = true
		h.state.Progress = 0
		if uri != "" {
			h.state.URI = uri
		}
	case port.LoadFinished:
		h.state.IsLoading = false
		h.state.Progress = 1
		if uri != "" {
			h.state.URI = uri
		}
	}
	h.mu.Unlock()

	logging.FromContext(ctx).Debug().
		Str("component", "webview").
		Str("event", event.String()).
		Str("uri", uri).
		Msg("page load event")
}

// OnTitleChanged tracks the document title.
func (h *Host) OnTitleChanged(ctx context.Context, title string) {
	h.mu.Lock()
	h.state.Title = title
	h.mu.Unlock()

	logging.FromContext(ctx).Debug().
		Str("component", "webview").
		Str("title", title).
		Msg("title changed")
}

// OnProgressChanged tracks load progress, clamped to [0, 1].
func (h *Host) OnProgressChanged(ctx context.Context, progress float64) {
	switch {
	case progress < 0:
		progress = 0
	case progress > 1:
		progress = 1
	}

	h.mu.Lock()
	h.state.Progress = progress
	h.mu.Unlock()

	logging.FromContext(ctx).Trace().
		Str("component", "webview").
		Float64("progress", progress).
		Msg("load progress")
}

// ResolveAsset serves a bundled file. URLs outside the asset prefix yield
// assets.ErrOutsidePrefix.
func (h *Host) ResolveAsset(ctx context.Context, url string) (*assets.Response, error) {
	if h.assets == nil {
		return nil, fmt.Errorf("resolve %s: %w", url, assets.ErrAssetNotFound)
	}
	return h.assets.Resolve(ctx, url)
}

// SetMessages replaces the toast texts of the host and its bridge.
func (h *Host) SetMessages(messages entity.MessageCatalog) {
	if messages == nil {
		messages = entity.DefaultMessages()
	}
	h.mu.Lock()
	h.messages = messages
	h.mu.Unlock()
	h.bridge.SetMessages(messages)
}

func (h *Host) showContent(ctx context.Context) error {
	if err := h.view.LoadURI(ctx, h.entryURL); err != nil {
		return fmt.Errorf("load entry page: %w", err)
	}

	h.mu.Lock()
	h.contentShown = true
	h.state.URI = h.entryURL
	h.state.IsLoading = true
	h.state.Progress = 0
	h.mu.Unlock()

	logging.FromContext(ctx).Info().Str("uri", h.entryURL).Msg("loading bundled page")
	return nil
}

func (h *Host) showPermissionsRequired(ctx context.Context, missing []entity.OSPermission) error {
	if err := h.view.ShowPermissionsRequired(ctx, h.text(entity.MessagePermissionsRequired), missing); err != nil {
		return fmt.Errorf("show permissions notice: %w", err)
	}
	return nil
}

func (h *Host) onPermissionDecision(ctx context.Context, _ port.PermissionRequest, decision entity.PermissionDecision) {
	if !decision.IsGranted() {
		h.toast(ctx, entity.MessageCameraPermissionMessage, port.NotificationInfo, port.ToastShortMs)
	}
}

func (h *Host) toast(ctx context.Context, key entity.MessageKey, notifType port.NotificationType, durationMs int) {
	if h.notifier == nil {
		return
	}
	h.notifier.Show(ctx, h.text(key), notifType, durationMs)
}

func (h *Host) text(key entity.MessageKey) string {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.messages.Text(key)
}

func permissionsToStrings(perms []entity.OSPermission) []string {
	out := make([]string, len(perms))
	for i, p := range perms {
		out[i] = string(p)
	}
	return out
}
