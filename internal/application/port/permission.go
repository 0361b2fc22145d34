package port

import (
	"context"
	"sync/atomic"

	"github.com/bnema/dumbcam/internal/domain/entity"
	"github.com/bnema/dumbcam/internal/logging"
)

// PermissionOracle answers whether the host process holds an OS-level grant.
// The OS owns this state; implementations must not cache it.
type PermissionOracle interface {
	// IsGranted reports the current grant state of perm.
	IsGranted(ctx context.Context, perm entity.OSPermission) bool

	// Request runs the platform's request flow for perms and returns the
	// resulting grant state of each.
	Request(ctx context.Context, perms []entity.OSPermission) (map[entity.OSPermission]bool, error)
}

// PermissionRequest is a capability request raised by the engine on behalf of
// embedded content. It must be resolved exactly once.
type PermissionRequest interface {
	// ID identifies the request for logging and engine replies.
	ID() string

	// Resources lists the requested capabilities.
	Resources() []entity.Capability

	// Grant allows exactly the given capabilities.
	Grant(resources []entity.Capability)

	// Deny rejects the whole request.
	Deny()
}

// OnceRequest guards a PermissionRequest so that only the first resolution
// reaches the engine. Later Grant/Deny calls are dropped and logged.
type OnceRequest struct {
	inner    PermissionRequest
	ctx      context.Context
	resolved atomic.Bool
}

// NewOnceRequest wraps inner. ctx supplies the logger for dropped resolutions.
func NewOnceRequest(ctx context.Context, inner PermissionRequest) *OnceRequest {
	if ctx == nil {
		ctx = context.Background()
	}
	return &OnceRequest{inner: inner, ctx: ctx}
}

// ID returns the wrapped request id.
func (r *OnceRequest) ID() string { return r.inner.ID() }

// Resources returns the wrapped request's capabilities.
func (r *OnceRequest) Resources() []entity.Capability { return r.inner.Resources() }

// Resolved reports whether Grant or Deny already ran.
func (r *OnceRequest) Resolved() bool { return r.resolved.Load() }

// Grant forwards to the wrapped request on first resolution only.
func (r *OnceRequest) Grant(resources []entity.Capability) {
	if !r.resolved.CompareAndSwap(false, true) {
		r.dropped("grant")
		return
	}
	r.inner.Grant(resources)
}

// Deny forwards to the wrapped request on first resolution only.
func (r *OnceRequest) Deny() {
	if !r.resolved.CompareAndSwap(false, true) {
		r.dropped("deny")
		return
	}
	r.inner.Deny()
}

func (r *OnceRequest) dropped(op string) {
	logging.FromContext(r.ctx).Warn().
		Str("request_id", r.inner.ID()).
		Str("op", op).
		Msg("permission request already resolved, ignoring")
}
