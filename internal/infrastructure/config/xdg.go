package config

import (
	"os"
	"path/filepath"
)

const (
	appName       = "dumbcam"
	indexName     = "media.sqlite"
	configName    = "config.toml"
	schemaName    = "config.schema.json"
	dirPerm       = 0o755
	filePerm      = 0o644
	devEnvValue   = "dev"
	devDirName    = ".dev"
	envVarEnvMode = "ENV"
)

// XDGDirs holds the XDG Base Directory paths for the application.
type XDGDirs struct {
	ConfigHome string
	DataHome   string
	StateHome  string
}

// GetXDGDirs returns the XDG Base Directory paths for dumbcam:
// - $XDG_CONFIG_HOME/dumbcam (default: ~/.config/dumbcam)
// - $XDG_DATA_HOME/dumbcam (default: ~/.local/share/dumbcam)
// - $XDG_STATE_HOME/dumbcam (default: ~/.local/state/dumbcam)
// With ENV=dev everything lives in ./.dev/dumbcam.
func GetXDGDirs() (*XDGDirs, error) {
	if os.Getenv(envVarEnvMode) == devEnvValue {
		cwd, err := os.Getwd()
		if err != nil {
			return nil, err
		}
		devDir := filepath.Join(cwd, devDirName, appName)
		return &XDGDirs{ConfigHome: devDir, DataHome: devDir, StateHome: devDir}, nil
	}

	homeDir, err := os.UserHomeDir()
	if err != nil {
		return nil, err
	}

	return &XDGDirs{
		ConfigHome: filepath.Join(xdgBase("XDG_CONFIG_HOME", homeDir, ".config"), appName),
		DataHome:   filepath.Join(xdgBase("XDG_DATA_HOME", homeDir, ".local", "share"), appName),
		StateHome:  filepath.Join(xdgBase("XDG_STATE_HOME", homeDir, ".local", "state"), appName),
	}, nil
}

func xdgBase(env, home string, fallback ...string) string {
	if v := os.Getenv(env); v != "" {
		return v
	}
	return filepath.Join(append([]string{home}, fallback...)...)
}

// GetConfigDir returns the XDG config directory for dumbcam.
func GetConfigDir() (string, error) {
	dirs, err := GetXDGDirs()
	if err != nil {
		return "", err
	}
	return dirs.ConfigHome, nil
}

// GetDataDir returns the XDG data directory for dumbcam.
func GetDataDir() (string, error) {
	dirs, err := GetXDGDirs()
	if err != nil {
		return "", err
	}
	return dirs.DataHome, nil
}

// GetConfigFile returns the path to the main configuration file.
func GetConfigFile() (string, error) {
	configDir, err := GetConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(configDir, configName), nil
}

// GetIndexFile returns the default media index path in the data directory.
func GetIndexFile() (string, error) {
	dataDir, err := GetDataDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dataDir, indexName), nil
}

// EnsureDirectories creates the XDG directories if they don't exist.
func EnsureDirectories() error {
	dirs, err := GetXDGDirs()
	if err != nil {
		return err
	}
	for _, dir := range []string{dirs.ConfigHome, dirs.DataHome, dirs.StateHome} {
		if err := os.MkdirAll(dir, dirPerm); err != nil {
			return err
		}
	}
	return nil
}
