package usecase

import (
	"context"
	"fmt"
	"strings"

	"github.com/bnema/dumbcam/internal/domain/entity"
	"github.com/bnema/dumbcam/internal/logging"
)

// GuardNavigationUseCase keeps embedded content inside the bundled assets.
// It is a default-deny allow-list of exactly one prefix.
type GuardNavigationUseCase struct {
	allowedPrefix string
}

// NewGuardNavigationUseCase creates a guard for allowedPrefix. The prefix must
// name a scheme and end with "/" so that "dumbcam://app/" cannot be matched by
// "dumbcam://app.evil/".
func NewGuardNavigationUseCase(allowedPrefix string) (*GuardNavigationUseCase, error) {
	if !strings.Contains(allowedPrefix, "://") {
		return nil, fmt.Errorf("navigation prefix %q has no scheme", allowedPrefix)
	}
	if !strings.HasSuffix(allowedPrefix, "/") {
		return nil, fmt.Errorf("navigation prefix %q must end with /", allowedPrefix)
	}
	return &GuardNavigationUseCase{allowedPrefix: allowedPrefix}, nil
}

// AllowedPrefix returns the single address prefix content may navigate to.
func (uc *GuardNavigationUseCase) AllowedPrefix() string {
	return uc.allowedPrefix
}

// Decide returns NavigationAllow only for targets under the allowed prefix.
// Rejection means "handled, do not navigate".
func (uc *GuardNavigationUseCase) Decide(ctx context.Context, target string) entity.NavigationDecision {
	log := logging.FromContext(ctx)

	if target != "" && strings.HasPrefix(target, uc.allowedPrefix) {
		log.Debug().Str("component", "navigation").Str("url", target).Msg("allowing bundled asset navigation")
		return entity.NavigationAllow
	}

	log.Debug().Str("component", "navigation").Str("url", target).Msg("blocking navigation")
	return entity.NavigationReject
}
