// Package usecase contains application use cases that orchestrate domain logic.
package usecase

import (
	"context"

	"github.com/bnema/dumbcam/internal/application/port"
	"github.com/bnema/dumbcam/internal/domain/entity"
	"github.com/bnema/dumbcam/internal/logging"
)

// PermissionDecisionFunc is notified once per resolved request.
type PermissionDecisionFunc func(ctx context.Context, req port.PermissionRequest, decision entity.PermissionDecision)

// HandlePermissionUseCase resolves capability requests raised by embedded
// content. The grant condition is gated solely on video capture plus the
// host's OS camera grant:
// - video_capture requested and camera granted: grant exactly what was asked
// - anything else (including audio-only requests): deny the whole request
type HandlePermissionUseCase struct {
	oracle     port.PermissionOracle
	onDecision PermissionDecisionFunc
}

// NewHandlePermissionUseCase creates a new permission handling use case.
// onDecision may be nil.
func NewHandlePermissionUseCase(
	oracle port.PermissionOracle,
	onDecision PermissionDecisionFunc,
) *HandlePermissionUseCase {
	return &HandlePermissionUseCase{
		oracle:     oracle,
		onDecision: onDecision,
	}
}

// HandlePermissionRequest resolves req synchronously, exactly once, and
// returns the decision.
func (uc *HandlePermissionUseCase) HandlePermissionRequest(
	ctx context.Context,
	req port.PermissionRequest,
) entity.PermissionDecision {
	resources := req.Resources()

	log := logging.FromContext(ctx).With().
		Str("component", "permission").
		Str("request_id", req.ID()).
		Strs("resources", entity.CapabilitiesToStrings(resources)).
		Logger()

	log.Debug().Msg("permission request")

	hasCamera := entity.ContainsCapability(resources, entity.CapabilityVideoCapture)
	hasMicrophone := entity.ContainsCapability(resources, entity.CapabilityAudioCapture)
	cameraGranted := uc.oracle != nil && uc.oracle.IsGranted(ctx, entity.OSPermissionCamera)

	if hasCamera && cameraGranted {
		// Grant a copy of exactly the requested set, never a superset.
		granted := make([]entity.Capability, len(resources))
		copy(granted, resources)

		req.Grant(granted)
		log.Info().Bool("microphone", hasMicrophone).Msg("granting camera permission")
		uc.notify(ctx, req, entity.PermissionGranted)
		return entity.PermissionGranted
	}

	req.Deny()
	log.Info().
		Bool("video_requested", hasCamera).
		Bool("camera_granted", cameraGranted).
		Msg("denying permission request")
	uc.notify(ctx, req, entity.PermissionDenied)
	return entity.PermissionDenied
}

// HandlePermissionCanceled records that the engine withdrew a pending request.
func (uc *HandlePermissionUseCase) HandlePermissionCanceled(ctx context.Context, requestID string) {
	logging.FromContext(ctx).Debug().
		Str("component", "permission").
		Str("request_id", requestID).
		Msg("permission request canceled")
}

func (uc *HandlePermissionUseCase) notify(
	ctx context.Context,
	req port.PermissionRequest,
	decision entity.PermissionDecision,
) {
	if uc.onDecision != nil {
		uc.onDecision(ctx, req, decision)
	}
}
