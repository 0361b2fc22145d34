// Package permission answers OS-level grant queries for the host process.
package permission

import (
	"context"
	"fmt"
	"path/filepath"
	"slices"

	"github.com/rs/zerolog"
	"golang.org/x/sys/unix"

	"github.com/bnema/dumbcam/internal/application/port"
	"github.com/bnema/dumbcam/internal/domain/entity"
	"github.com/bnema/dumbcam/internal/logging"
)

// Mode selects how grants are determined.
type Mode string

const (
	// ModeProbe checks device nodes and the storage root with access(2).
	ModeProbe Mode = "probe"
	// ModeGrantAll reports every permission as granted.
	ModeGrantAll Mode = "grant_all"
	// ModeDenyAll reports every permission as denied.
	ModeDenyAll Mode = "deny_all"
)

// Valid reports whether m is a known mode.
func (m Mode) Valid() bool {
	return slices.Contains([]Mode{ModeProbe, ModeGrantAll, ModeDenyAll}, m)
}

// DefaultCameraDevices matches V4L2 capture nodes.
const DefaultCameraDevices = "/dev/video*"

// Config configures the probing oracle.
type Config struct {
	// CameraDevices is a glob of camera device nodes.
	CameraDevices string
	// StorageRoot is the directory gallery images are written under.
	StorageRoot string
}

// New returns the oracle for mode.
func New(mode Mode, cfg Config) (port.PermissionOracle, error) {
	switch mode {
	case ModeProbe, "":
		return NewProbeOracle(cfg), nil
	case ModeGrantAll:
		return NewStaticOracle(true), nil
	case ModeDenyAll:
		return NewStaticOracle(false), nil
	default:
		return nil, fmt.Errorf("unknown permission mode %q", mode)
	}
}

// ProbeOracle maps Android-style permissions onto Unix access checks:
// camera needs a read-write video device, read_media_images a readable
// storage root and write_external_storage a writable one. State is never
// cached.
type ProbeOracle struct {
	cfg    Config
	access func(path string, mode uint32) error
	glob   func(pattern string) ([]string, error)
}

// NewProbeOracle creates a probing oracle.
func NewProbeOracle(cfg Config) *ProbeOracle {
	if cfg.CameraDevices == "" {
		cfg.CameraDevices = DefaultCameraDevices
	}
	return &ProbeOracle{cfg: cfg, access: unix.Access, glob: filepath.Glob}
}

var _ port.PermissionOracle = (*ProbeOracle)(nil)

// IsGranted implements port.PermissionOracle.
func (o *ProbeOracle) IsGranted(ctx context.Context, perm entity.OSPermission) bool {
	log := logging.FromContext(ctx).With().Str("component", "permission-oracle").Str("permission", string(perm)).Logger()

	switch perm {
	case entity.OSPermissionCamera:
		devices, err := o.glob(o.cfg.CameraDevices)
		if err != nil {
			log.Debug().Err(err).Str("pattern", o.cfg.CameraDevices).Msg("bad camera device pattern")
			return false
		}
		for _, dev := range devices {
			if err := o.access(dev, unix.R_OK|unix.W_OK); err == nil {
				log.Debug().Str("device", dev).Msg("camera device accessible")
				return true
			}
		}
		log.Debug().Int("candidates", len(devices)).Msg("no accessible camera device")
		return false

	case entity.OSPermissionReadMediaImages:
		return o.checkStorage(log, unix.R_OK|unix.X_OK)

	case entity.OSPermissionWriteExternalStorage:
		return o.checkStorage(log, unix.W_OK|unix.X_OK)

	default:
		log.Debug().Msg("unknown permission")
		return false
	}
}

func (o *ProbeOracle) checkStorage(log zerolog.Logger, mode uint32) bool {
	if o.cfg.StorageRoot == "" {
		return false
	}
	if err := o.access(o.cfg.StorageRoot, mode); err != nil {
		log.Debug().Err(err).Str("path", o.cfg.StorageRoot).Msg("storage root not accessible")
		return false
	}
	return true
}

// Request re-checks perms. Desktop Linux has no runtime prompt, so the
// result only changes if the user fixed access in the meantime.
func (o *ProbeOracle) Request(ctx context.Context, perms []entity.OSPermission) (map[entity.OSPermission]bool, error) {
	result := make(map[entity.OSPermission]bool, len(perms))
	for _, perm := range perms {
		result[perm] = o.IsGranted(ctx, perm)
	}

	logging.FromContext(ctx).Info().
		Str("component", "permission-oracle").
		Interface("result", result).
		Msg("permission request re-checked")

	return result, nil
}

// StaticOracle reports the same answer for every permission.
type StaticOracle struct {
	granted bool
}

// NewStaticOracle creates an oracle that answers granted for every permission.
func NewStaticOracle(granted bool) *StaticOracle {
	return &StaticOracle{granted: granted}
}

var _ port.PermissionOracle = (*StaticOracle)(nil)

// IsGranted implements port.PermissionOracle.
func (o *StaticOracle) IsGranted(context.Context, entity.OSPermission) bool {
	return o.granted
}

// Request implements port.PermissionOracle.
func (o *StaticOracle) Request(_ context.Context, perms []entity.OSPermission) (map[entity.OSPermission]bool, error) {
	result := make(map[entity.OSPermission]bool, len(perms))
	for _, perm := range perms {
		result[perm] = o.granted
	}
	return result, nil
}
