// Package metadata provides the LLM model catalog for the settings flows.
package metadata

import (
	_ "embed"
	"encoding/json"
	"os"
	"sort"
	"sync"

	. "github.com/gohands/gohands/internal/logging"
	"github.com/gohands/gohands/internal/paths"
)

//go:embed models.json
var embeddedModels []byte

// ProviderCatalog is one provider's entry in models.json. Model ids are
// stored fully qualified (e.g. "anthropic/claude-sonnet-4-20250514").
type ProviderCatalog struct {
	Name   string   `json:"name"`
	Models []string `json:"models"`
}

// ModelsData is the root structure of models.json.
type ModelsData struct {
	Generated string                     `json:"generated"`
	Providers map[string]ProviderCatalog `json:"providers"`
}

// Manager provides access to the model catalog.
type Manager struct {
	data ModelsData
	mu   sync.RWMutex
}

var (
	instance *Manager
	once     sync.Once
)

// Get returns the singleton catalog manager.
func Get() *Manager {
	once.Do(func() {
		instance = &Manager{}
		instance.load()
	})
	return instance
}

// load loads the catalog from the local file or the embedded fallback.
func (m *Manager) load() {
	m.mu.Lock()
	defer m.mu.Unlock()

	localPath := m.localPath()

	if data, err := os.ReadFile(localPath); err == nil {
		if err := json.Unmarshal(data, &m.data); err == nil {
			L_debug("metadata: loaded from local file", "path", localPath)
			return
		}
		L_warn("metadata: failed to parse local file, using embedded", "path", localPath, "error", err)
	}

	if err := json.Unmarshal(embeddedModels, &m.data); err != nil {
		L_error("metadata: failed to parse embedded models.json", "error", err)
		m.data = ModelsData{Providers: make(map[string]ProviderCatalog)}
		return
	}
	L_debug("metadata: loaded from embedded")

	m.bootstrap(localPath)
}

// bootstrap writes the embedded catalog to the local path if it doesn't exist.
func (m *Manager) bootstrap(localPath string) {
	if _, err := os.Stat(localPath); err == nil {
		return // Already exists
	}

	if err := paths.EnsureParentDir(localPath); err != nil {
		L_warn("metadata: failed to create directory", "path", localPath, "error", err)
		return
	}

	if err := os.WriteFile(localPath, embeddedModels, 0644); err != nil {
		L_warn("metadata: failed to write local file", "path", localPath, "error", err)
		return
	}

	L_info("metadata: bootstrapped local file", "path", localPath)
}

// localPath returns the path to the local catalog file.
func (m *Manager) localPath() string {
	p, _ := paths.DataPath("metadata/models.json")
	return p
}

// SupportedModels returns every model id in the catalog in a stable
// order: providers sorted by key, models in catalog order.
func (m *Manager) SupportedModels() []string {
	m.mu.RLock()
	defer m.mu.RUnlock()

	keys := make([]string, 0, len(m.data.Providers))
	for key := range m.data.Providers {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	var ids []string
	for _, key := range keys {
		ids = append(ids, m.data.Providers[key].Models...)
	}
	return ids
}

// ProviderName returns the display name for a catalog provider key.
func (m *Manager) ProviderName(key string) (string, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	p, ok := m.data.Providers[key]
	if !ok {
		return "", false
	}
	return p.Name, true
}

// SupportedModels is a convenience wrapper over the singleton manager.
func SupportedModels() []string {
	return Get().SupportedModels()
}
