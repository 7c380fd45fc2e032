// Package agent exposes the registry of available agent implementations.
// The agents themselves live in the runtime; the settings flows only need
// their names for selection and validation.
package agent

import (
	"sort"
	"sync"
)

// Info describes a registered agent.
type Info struct {
	Name        string
	Description string
}

var (
	registry   = make(map[string]Info)
	registryMu sync.RWMutex
)

func init() {
	for _, info := range []Info{
		{Name: "CodeActAgent", Description: "General-purpose coding agent"},
		{Name: "ReadOnlyAgent", Description: "Explores and answers without modifying files"},
		{Name: "LocAgent", Description: "Code localization specialist"},
		{Name: "VisualBrowsingAgent", Description: "Browses the web with screenshots"},
	} {
		Register(info)
	}
}

// Register adds an agent to the registry. Later registrations with the
// same name replace earlier ones.
func Register(info Info) {
	registryMu.Lock()
	defer registryMu.Unlock()
	registry[info.Name] = info
}

// ListAgents returns the registered agent names, sorted.
func ListAgents() []string {
	registryMu.RLock()
	defer registryMu.RUnlock()

	names := make([]string, 0, len(registry))
	for name := range registry {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// IsRegistered reports whether an agent with the given name exists.
func IsRegistered(name string) bool {
	registryMu.RLock()
	defer registryMu.RUnlock()
	_, ok := registry[name]
	return ok
}

// Get returns the Info for a registered agent.
func Get(name string) (Info, bool) {
	registryMu.RLock()
	defer registryMu.RUnlock()
	info, ok := registry[name]
	return info, ok
}
