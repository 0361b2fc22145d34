package usecase

import (
	"context"
	"fmt"

	"github.com/bnema/dumbcam/internal/application/port"
	"github.com/bnema/dumbcam/internal/domain/entity"
	"github.com/bnema/dumbcam/internal/logging"
)

// PermissionStatus is the grant state of one OS permission.
type PermissionStatus struct {
	Permission entity.OSPermission
	Granted    bool
}

// CheckPermissionsOutput summarizes the host's OS grants.
type CheckPermissionsOutput struct {
	Level      entity.APILevel
	Statuses   []PermissionStatus
	AllGranted bool
}

// Missing returns the permissions that are not granted.
func (o CheckPermissionsOutput) Missing() []entity.OSPermission {
	var missing []entity.OSPermission
	for _, s := range o.Statuses {
		if !s.Granted {
			missing = append(missing, s.Permission)
		}
	}
	return missing
}

// CheckPermissionsUseCase queries the OS grants the host needs at launch.
type CheckPermissionsUseCase struct {
	oracle port.PermissionOracle
	level  entity.APILevel
}

// NewCheckPermissionsUseCase creates a checker for the given platform level.
func NewCheckPermissionsUseCase(oracle port.PermissionOracle, level entity.APILevel) *CheckPermissionsUseCase {
	return &CheckPermissionsUseCase{oracle: oracle, level: level}
}

// StoragePermission returns the storage grant identifier for the platform level.
func (uc *CheckPermissionsUseCase) StoragePermission() entity.OSPermission {
	return uc.level.StoragePermission()
}

// RequiredPermissions lists camera plus the level's storage permission.
func (uc *CheckPermissionsUseCase) RequiredPermissions() []entity.OSPermission {
	return uc.level.RequiredPermissions()
}

// IsCameraGranted reports the camera grant.
func (uc *CheckPermissionsUseCase) IsCameraGranted(ctx context.Context) bool {
	return uc.oracle.IsGranted(ctx, entity.OSPermissionCamera)
}

// IsStorageGranted reports the storage grant for the platform level.
func (uc *CheckPermissionsUseCase) IsStorageGranted(ctx context.Context) bool {
	return uc.oracle.IsGranted(ctx, uc.StoragePermission())
}

// Check queries every required permission.
func (uc *CheckPermissionsUseCase) Check(ctx context.Context) CheckPermissionsOutput {
	out := CheckPermissionsOutput{Level: uc.level, AllGranted: true}
	for _, perm := range uc.RequiredPermissions() {
		granted := uc.oracle.IsGranted(ctx, perm)
		out.Statuses = append(out.Statuses, PermissionStatus{Permission: perm, Granted: granted})
		if !granted {
			out.AllGranted = false
		}
	}

	logging.FromContext(ctx).Debug().
		Str("component", "permission-check").
		Int("api_level", int(uc.level)).
		Bool("all_granted", out.AllGranted).
		Msg("checked OS permissions")

	return out
}

// RequestMissing runs the platform request flow for the missing permissions
// and returns the state afterwards. Nothing is requested when all are held.
func (uc *CheckPermissionsUseCase) RequestMissing(ctx context.Context) (CheckPermissionsOutput, error) {
	current := uc.Check(ctx)
	missing := current.Missing()
	if len(missing) == 0 {
		return current, nil
	}

	if _, err := uc.oracle.Request(ctx, missing); err != nil {
		return current, fmt.Errorf("request permissions: %w", err)
	}
	return uc.Check(ctx), nil
}
