// Package manager implements the process-wide registry of injectors: it
// owns the device-group cache (with its debounced refresh policy) and
// exposes the start/stop/state/autoload operations a bus-binding layer
// calls into. Nothing here talks to a message bus; this package is the
// bus-agnostic control API spec.md section 1 describes as the core's
// boundary.
package manager

import (
	"fmt"
	"log/slog"
	"path/filepath"
	"sync"
	"time"

	"github.com/evremapper/evremapper"
	"github.com/evremapper/evremapper/internal/groups"
	"github.com/evremapper/evremapper/internal/injector"
	"github.com/evremapper/evremapper/internal/mapping"
)

// refreshInterval is how long a cached device-group enumeration is trusted
// before a lookup forces a re-enumeration, per spec.md section 4.6.
const refreshInterval = 10 * time.Second

// settleDelay is slept before every enumeration, cached or forced, to let
// recently plugged devices finish settling in the kernel.
const settleDelay = 100 * time.Millisecond

// Manager is the single registry of running injectors for this process.
type Manager struct {
	mu        sync.Mutex
	configDir string
	injectors map[string]*injector.Handle
	groupList []evremapper.DeviceGroup
	refreshAt time.Time
}

// New returns an empty Manager. It does not start anything; call
// [Manager.SetConfigDir] before injecting.
func New() *Manager {
	return &Manager{injectors: make(map[string]*injector.Handle)}
}

// Hello is a liveness probe: it echoes its argument unchanged.
func (m *Manager) Hello(s string) string {
	return s
}

// SetConfigDir records the config root. It is idempotent and never
// rejects the path outright, even if the expected global config file is
// not present there. It then refreshes the device-group cache when that
// cache is stale; a fresh cache is kept as it is.
func (m *Manager) SetConfigDir(dir string) {
	m.mu.Lock()
	m.configDir = dir
	m.mu.Unlock()

	if err := m.refresh(""); err != nil {
		slog.Error("manager: refresh after set_config_dir failed", "error", err)
	}
}

// Inject starts (or restarts) remapping for deviceKey using presetName.
// It returns false if no config directory has been set, the device group
// is not currently known, or the preset cannot be loaded.
func (m *Manager) Inject(deviceKey, presetName string) (bool, error) {
	m.mu.Lock()
	configDir := m.configDir
	m.mu.Unlock()

	if configDir == "" {
		return false, fmt.Errorf("manager.Inject: config directory not set")
	}

	if err := m.refresh(deviceKey); err != nil {
		return false, fmt.Errorf("manager.Inject: %w", err)
	}

	group, ok := m.findGroup(deviceKey)
	if !ok {
		return false, nil
	}

	presetPath := filepath.Join(configDir, "mappings", group.Name, presetName+".json")

	table, err := mapping.LoadPreset(presetPath)
	if err != nil {
		return false, fmt.Errorf("manager.Inject: %w", err)
	}

	m.mu.Lock()
	existing, hadExisting := m.injectors[group.Key]
	m.mu.Unlock()

	if hadExisting {
		existing.Stop()
	}

	handle, err := injector.Spawn(group, table)
	if err != nil {
		return false, fmt.Errorf("manager.Inject: %w", err)
	}

	m.mu.Lock()
	m.injectors[group.Key] = handle
	m.mu.Unlock()

	return true, nil
}

// StopInject sends CLOSE to the injector registered for deviceKey, if any.
func (m *Manager) StopInject(deviceKey string) {
	m.mu.Lock()
	handle, ok := m.injectors[deviceKey]
	if ok {
		delete(m.injectors, deviceKey)
	}
	m.mu.Unlock()

	if !ok {
		slog.Info("manager: stop_inject for unknown device key", "device_key", deviceKey)
		return
	}

	handle.Stop()
}

// Autoload reads the global config's autoload table and injects every
// entry, logging and skipping (never aborting the batch on) any device
// key that is not currently present.
func (m *Manager) Autoload() (bool, error) {
	m.mu.Lock()
	configDir := m.configDir
	m.mu.Unlock()

	if configDir == "" {
		return false, fmt.Errorf("manager.Autoload: config directory not set")
	}

	if err := m.forceRefresh(); err != nil {
		return false, fmt.Errorf("manager.Autoload: %w", err)
	}

	table, err := mapping.LoadGlobalConfig(filepath.Join(configDir, "config.json"))
	if err != nil {
		return false, fmt.Errorf("manager.Autoload: %w", err)
	}

	for deviceKey, presetName := range table {
		ok, err := m.Inject(deviceKey, presetName)
		if err != nil {
			slog.Error("manager: autoload entry failed", "device_key", deviceKey, "error", err)
			continue
		}

		if !ok {
			slog.Info("manager: autoload entry skipped, device not present", "device_key", deviceKey)
		}
	}

	return true, nil
}

// AutoloadSingle applies only deviceKey's entry from the global config's
// autoload table.
func (m *Manager) AutoloadSingle(deviceKey string) (bool, error) {
	m.mu.Lock()
	configDir := m.configDir
	m.mu.Unlock()

	if configDir == "" {
		return false, fmt.Errorf("manager.AutoloadSingle: config directory not set")
	}

	table, err := mapping.LoadGlobalConfig(filepath.Join(configDir, "config.json"))
	if err != nil {
		return false, fmt.Errorf("manager.AutoloadSingle: %w", err)
	}

	presetName, ok := table[deviceKey]
	if !ok {
		slog.Info("manager: autoload_single has no entry for device key", "device_key", deviceKey)
		return false, nil
	}

	return m.Inject(deviceKey, presetName)
}

// StopAll sends CLOSE to every registered injector.
func (m *Manager) StopAll() {
	m.mu.Lock()
	handles := make([]*injector.Handle, 0, len(m.injectors))
	for key, handle := range m.injectors {
		handles = append(handles, handle)
		delete(m.injectors, key)
	}
	m.mu.Unlock()

	for _, handle := range handles {
		handle.Stop()
	}
}

// GetState returns the last-observed state of the injector registered for
// deviceKey, or [evremapper.StateUnknown] if none is registered.
func (m *Manager) GetState(deviceKey string) evremapper.State {
	m.mu.Lock()
	handle, ok := m.injectors[deviceKey]
	m.mu.Unlock()

	if !ok {
		return evremapper.StateUnknown
	}

	return handle.State()
}

// findGroup looks up a device group by key in the current cache.
func (m *Manager) findGroup(deviceKey string) (evremapper.DeviceGroup, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()

	for _, group := range m.groupList {
		if group.Key == deviceKey {
			return group, true
		}
	}

	return evremapper.DeviceGroup{}, false
}

// refresh re-enumerates device groups if 10s have elapsed since the last
// refresh or if groupKey (when non-empty) is absent from the current
// cache, per spec.md section 4.6's debounce rule.
func (m *Manager) refresh(groupKey string) error {
	m.mu.Lock()
	stale := time.Since(m.refreshAt) >= refreshInterval

	missing := false
	if groupKey != "" {
		missing = true
		for _, group := range m.groupList {
			if group.Key == groupKey {
				missing = false
				break
			}
		}
	}
	m.mu.Unlock()

	if !stale && !missing {
		return nil
	}

	return m.forceRefresh()
}

// forceRefresh re-enumerates unconditionally.
func (m *Manager) forceRefresh() error {
	time.Sleep(settleDelay)

	list, err := groups.Refresh()
	if err != nil {
		return fmt.Errorf("manager.forceRefresh: %w", err)
	}

	m.mu.Lock()
	m.groupList = list
	m.refreshAt = time.Now()
	m.mu.Unlock()

	return nil
}
