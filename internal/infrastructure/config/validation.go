package config

import (
	"fmt"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/bnema/dumbcam/internal/logging"
)

var jsIdentifier = regexp.MustCompile(`^[A-Za-z_$][A-Za-z0-9_$]*$`)

// validateConfig performs comprehensive validation of configuration values
func validateConfig(config *Config) error {
	var validationErrors []string

	validationErrors = append(validationErrors, validateLogging(config)...)
	validationErrors = append(validationErrors, validatePlatform(config)...)
	validationErrors = append(validationErrors, validateGallery(config)...)
	validationErrors = append(validationErrors, validatePermissions(config)...)
	validationErrors = append(validationErrors, validateBridge(config)...)
	validationErrors = append(validationErrors, validateContent(config)...)
	validationErrors = append(validationErrors, validateScript(config)...)

	if len(validationErrors) > 0 {
		return fmt.Errorf("config validation failed:\n  - %s", strings.Join(validationErrors, "\n  - "))
	}

	return nil
}

// Validate checks config without loading it.
func Validate(config *Config) error {
	return validateConfig(config)
}

func validateLogging(config *Config) []string {
	var validationErrors []string
	if !logging.IsValidLevel(config.Logging.Level) {
		validationErrors = append(validationErrors,
			"logging.level must be one of: trace, debug, info, warn, error, disabled")
	}
	switch config.Logging.Format {
	case "console", "json":
	default:
		validationErrors = append(validationErrors, "logging.format must be one of: console, json")
	}
	return validationErrors
}

func validatePlatform(config *Config) []string {
	if config.Platform.APILevel < 1 {
		return []string{"platform.api_level must be positive"}
	}
	return nil
}

func validateGallery(config *Config) []string {
	var validationErrors []string
	g := config.Gallery
	if g.JPEGQuality < 1 || g.JPEGQuality > 100 {
		validationErrors = append(validationErrors, "gallery.jpeg_quality must be between 1 and 100")
	}
	validationErrors = append(validationErrors, validateFolderName("gallery.collection", g.Collection)...)
	validationErrors = append(validationErrors, validateFolderName("gallery.album", g.Album)...)
	if g.StorageRoot != "" && !filepath.IsAbs(g.StorageRoot) {
		validationErrors = append(validationErrors, "gallery.storage_root must be an absolute path")
	}
	return validationErrors
}

func validateFolderName(field, name string) []string {
	switch {
	case strings.TrimSpace(name) == "":
		return []string{field + " cannot be empty"}
	case name == "." || name == "..":
		return []string{field + " cannot be . or .."}
	case strings.ContainsAny(name, `/\`):
		return []string{field + " must be a single folder name"}
	}
	return nil
}

func validatePermissions(config *Config) []string {
	var validationErrors []string
	switch config.Permissions.Mode {
	case PermissionModeProbe, PermissionModeGrantAll, PermissionModeDenyAll:
	default:
		validationErrors = append(validationErrors, "permissions.mode must be one of: probe, grant_all, deny_all")
	}
	if config.Permissions.Mode == PermissionModeProbe {
		if config.Permissions.CameraDevices == "" {
			validationErrors = append(validationErrors, "permissions.camera_devices cannot be empty in probe mode")
		} else if _, err := filepath.Match(config.Permissions.CameraDevices, ""); err != nil {
			validationErrors = append(validationErrors, "permissions.camera_devices is not a valid glob pattern")
		}
	}
	return validationErrors
}

func validateBridge(config *Config) []string {
	if !jsIdentifier.MatchString(config.Bridge.Name) {
		return []string{"bridge.name must be a valid JavaScript identifier"}
	}
	return nil
}

func validateContent(config *Config) []string {
	var validationErrors []string
	prefix := config.Content.AllowedPrefix
	if !strings.Contains(prefix, "://") || !strings.HasSuffix(prefix, "/") {
		validationErrors = append(validationErrors,
			"content.allowed_prefix must include a scheme and end with / (e.g. dumbcam://app/)")
	}
	if !strings.HasPrefix(config.Content.EntryURL, prefix) || config.Content.EntryURL == "" {
		validationErrors = append(validationErrors, "content.entry_url must start with content.allowed_prefix")
	}
	return validationErrors
}

func validateScript(config *Config) []string {
	if config.Script.Timeout < 0 {
		return []string{"script.timeout must be non-negative"}
	}
	return nil
}
