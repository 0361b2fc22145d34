package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/spf13/viper"
)

// Manager handles configuration loading, watching, and reloading.
type Manager struct {
	config     *Config
	viper      *viper.Viper
	configFile string
	mu         sync.RWMutex
	callbacks  []func(*Config)
	watching   bool
}

// NewManager creates a new configuration manager. An empty configFile
// searches the XDG config dir and the working directory.
func NewManager(configFile string) (*Manager, error) {
	v := viper.New()

	if configFile != "" {
		v.SetConfigFile(configFile)
	} else {
		v.SetConfigName("config")
		configDir, err := GetConfigDir()
		if err != nil {
			return nil, fmt.Errorf("failed to determine config directory: %w\nCheck XDG_CONFIG_HOME environment variable or HOME directory", err)
		}
		v.AddConfigPath(configDir)
		v.AddConfigPath(".") // Current directory for development
	}
	v.SetConfigType("toml")

	// DUMBCAM_GALLERY_ALBUM, DUMBCAM_PERMISSIONS_MODE, ...
	v.SetEnvPrefix("DUMBCAM")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.BindEnv("logging.level", "DUMBCAM_LOG_LEVEL"); err != nil {
		return nil, fmt.Errorf("failed to bind DUMBCAM_LOG_LEVEL: %w", err)
	}
	if err := v.BindEnv("logging.format", "DUMBCAM_LOG_FORMAT"); err != nil {
		return nil, fmt.Errorf("failed to bind DUMBCAM_LOG_FORMAT: %w", err)
	}
	if err := v.BindEnv("platform.api_level", "DUMBCAM_API_LEVEL"); err != nil {
		return nil, fmt.Errorf("failed to bind DUMBCAM_API_LEVEL: %w", err)
	}

	return &Manager{
		viper:      v,
		configFile: configFile,
		callbacks:  make([]func(*Config), 0),
	}, nil
}

// Load loads the configuration from file and environment variables.
// A missing config file is created with the defaults.
func (m *Manager) Load() error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.configFile == "" {
		if err := EnsureDirectories(); err != nil {
			return fmt.Errorf("failed to ensure directories: %w", err)
		}
	}

	m.setDefaults()

	if err := m.readConfigFile(); err != nil {
		return err
	}

	config, err := m.unmarshalConfig()
	if err != nil {
		return err
	}
	if err := resolvePaths(config); err != nil {
		return err
	}
	normalizeConfig(config)

	if err := validateConfig(config); err != nil {
		return fmt.Errorf("configuration validation failed: %w", err)
	}

	m.config = config
	return nil
}

func (m *Manager) readConfigFile() error {
	err := m.viper.ReadInConfig()
	if err == nil {
		return nil
	}

	var notFound viper.ConfigFileNotFoundError
	if !errors.As(err, &notFound) && !(m.configFile != "" && errors.Is(err, os.ErrNotExist)) {
		configFile := m.viper.ConfigFileUsed()
		if configFile == "" {
			configFile = m.defaultConfigPath()
		}
		return fmt.Errorf("failed to read config file at %s: %w\nCheck the file format (must be valid TOML) and permissions", configFile, err)
	}

	if createErr := m.createDefaultConfig(); createErr != nil {
		return fmt.Errorf(
			"failed to create default config at %s: %w\nTry creating the directory manually or check permissions",
			m.defaultConfigPath(),
			createErr,
		)
	}
	if rereadErr := m.viper.ReadInConfig(); rereadErr != nil {
		return fmt.Errorf("failed to read newly created config file: %w", rereadErr)
	}
	return nil
}

func (m *Manager) unmarshalConfig() (*Config, error) {
	config := &Config{}
	if err := m.viper.Unmarshal(config); err != nil {
		return nil, fmt.Errorf(
			"failed to parse config file at %s: %w\nCheck for syntax errors, invalid values, or type mismatches",
			m.viper.ConfigFileUsed(),
			err,
		)
	}
	return config, nil
}

// resolvePaths fills the location defaults that depend on the environment.
func resolvePaths(config *Config) error {
	if config.Gallery.StorageRoot == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return fmt.Errorf("failed to determine storage root: %w", err)
		}
		config.Gallery.StorageRoot = home
	}
	if config.Gallery.IndexPath == "" {
		indexPath, err := GetIndexFile()
		if err != nil {
			return fmt.Errorf("failed to get media index path: %w", err)
		}
		config.Gallery.IndexPath = indexPath
	}
	config.Gallery.StorageRoot = expandHome(config.Gallery.StorageRoot)
	config.Gallery.IndexPath = expandHome(config.Gallery.IndexPath)
	return nil
}

func expandHome(p string) string {
	if p != "~" && !strings.HasPrefix(p, "~/") {
		return p
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return p
	}
	return filepath.Join(home, strings.TrimPrefix(p, "~"))
}

func normalizeConfig(config *Config) {
	config.Logging.Level = strings.ToLower(strings.TrimSpace(config.Logging.Level))
	config.Logging.Format = strings.ToLower(strings.TrimSpace(config.Logging.Format))
	if config.Logging.Format == "" {
		config.Logging.Format = "console"
	}

	switch PermissionMode(strings.ToLower(string(config.Permissions.Mode))) {
	case "", PermissionModeProbe:
		config.Permissions.Mode = PermissionModeProbe
	case PermissionModeGrantAll:
		config.Permissions.Mode = PermissionModeGrantAll
	case PermissionModeDenyAll:
		config.Permissions.Mode = PermissionModeDenyAll
	}

	config.Bridge.Name = strings.TrimSpace(config.Bridge.Name)
	config.Content.EntryURL = strings.TrimSpace(config.Content.EntryURL)
	config.Content.AllowedPrefix = strings.TrimSpace(config.Content.AllowedPrefix)
}

// Get returns the current configuration (thread-safe).
func (m *Manager) Get() *Config {
	m.mu.RLock()
	defer m.mu.RUnlock()

	if m.config == nil {
		return DefaultConfig()
	}
	// Return a copy to prevent external modification
	configCopy := *m.config
	return &configCopy
}

// GetConfigFile returns the path to the configuration file being used.
func (m *Manager) GetConfigFile() string {
	if used := m.viper.ConfigFileUsed(); used != "" {
		return used
	}
	return m.defaultConfigPath()
}

func (m *Manager) defaultConfigPath() string {
	if m.configFile != "" {
		return m.configFile
	}
	configFile, err := GetConfigFile()
	if err != nil {
		return configName
	}
	return configFile
}

// createDefaultConfig writes the defaults as TOML. Stdout may carry the
// engine protocol, so the notice goes to stderr.
func (m *Manager) createDefaultConfig() error {
	configFile := m.defaultConfigPath()

	if err := os.MkdirAll(filepath.Dir(configFile), dirPerm); err != nil {
		return err
	}

	m.viper.SetConfigType("toml")
	if err := m.viper.SafeWriteConfigAs(configFile); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}
	m.viper.SetConfigFile(configFile)

	fmt.Fprintf(os.Stderr, "Created default configuration file: %s (TOML format)\n", configFile)
	return nil
}

// setDefaults sets default configuration values in Viper.
func (m *Manager) setDefaults() {
	defaults := DefaultConfig()

	m.viper.SetDefault("logging.level", defaults.Logging.Level)
	m.viper.SetDefault("logging.format", defaults.Logging.Format)

	m.viper.SetDefault("platform.api_level", defaults.Platform.APILevel)

	// storage_root and index_path are resolved in Load
	m.viper.SetDefault("gallery.storage_root", "")
	m.viper.SetDefault("gallery.collection", defaults.Gallery.Collection)
	m.viper.SetDefault("gallery.album", defaults.Gallery.Album)
	m.viper.SetDefault("gallery.jpeg_quality", defaults.Gallery.JPEGQuality)
	m.viper.SetDefault("gallery.index_path", "")

	m.viper.SetDefault("permissions.mode", string(defaults.Permissions.Mode))
	m.viper.SetDefault("permissions.camera_devices", defaults.Permissions.CameraDevices)

	m.viper.SetDefault("bridge.name", defaults.Bridge.Name)

	m.viper.SetDefault("content.entry_url", defaults.Content.EntryURL)
	m.viper.SetDefault("content.allowed_prefix", defaults.Content.AllowedPrefix)

	m.viper.SetDefault("messages.image_saved", defaults.Messages.ImageSaved)
	m.viper.SetDefault("messages.image_save_failed", defaults.Messages.ImageSaveFailed)
	m.viper.SetDefault("messages.permission_denied", defaults.Messages.PermissionDenied)
	m.viper.SetDefault("messages.camera_permission_message", defaults.Messages.CameraPermissionMessage)
	m.viper.SetDefault("messages.permissions_required", defaults.Messages.PermissionsRequired)

	m.viper.SetDefault("script.timeout", defaults.Script.Timeout.String())
}

// New returns a new default configuration instance.
func New() *Config {
	return DefaultConfig()
}
