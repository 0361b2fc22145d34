package config

import (
	"fmt"

	"github.com/fsnotify/fsnotify"

	"github.com/bnema/dumbcam/internal/logging"
)

// Watch starts watching the config file for changes and reloads automatically.
// An invalid edit is logged and the previous configuration stays active.
func (m *Manager) Watch() error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.watching {
		return nil // Already watching
	}

	m.viper.OnConfigChange(func(e fsnotify.Event) {
		log := logging.NewFromEnv()
		log.Debug().Str("op", e.Op.String()).Str("file", e.Name).Msg("fsnotify config change detected")

		m.mu.Lock()
		if err := m.reload(); err != nil {
			log.Warn().Err(err).Msg("failed to reload config, keeping previous values")
			m.mu.Unlock()
			return
		}
		m.notifyCallbacksLocked()
	})
	m.viper.WatchConfig()

	m.watching = true
	return nil
}

// notifyCallbacksLocked copies callbacks and config, releases lock, then notifies.
// Must be called with m.mu held for write. Releases the lock before calling callbacks.
func (m *Manager) notifyCallbacksLocked() {
	config := *m.config
	callbacks := make([]func(*Config), len(m.callbacks))
	copy(callbacks, m.callbacks)
	m.mu.Unlock()

	for _, callback := range callbacks {
		c := config
		callback(&c)
	}
}

// OnConfigChange registers a callback function to be called when config changes.
func (m *Manager) OnConfigChange(callback func(*Config)) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.callbacks = append(m.callbacks, callback)
}

// Reload re-reads the config file and notifies callbacks.
func (m *Manager) Reload() error {
	m.mu.Lock()
	if err := m.reload(); err != nil {
		m.mu.Unlock()
		return err
	}
	m.notifyCallbacksLocked()
	return nil
}

// reload reloads the configuration (internal method, must be called with lock held for write).
func (m *Manager) reload() error {
	if err := m.viper.ReadInConfig(); err != nil {
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
