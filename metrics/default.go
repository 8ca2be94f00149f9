package metrics

import "sync"

var (
	defaultMu       sync.Mutex
	defaultRegistry *Registry
)

// SetDefault installs registry as the process-wide default. The core never
// consults it; installation is an explicit wiring step at the application
// boundary.
func SetDefault(registry *Registry) {
	defaultMu.Lock()
	defer defaultMu.Unlock()

	defaultRegistry = registry
}

// Default returns the installed process-wide registry, nil when none was
// installed.
func Default() *Registry {
	defaultMu.Lock()
	defer defaultMu.Unlock()

	return defaultRegistry
}
