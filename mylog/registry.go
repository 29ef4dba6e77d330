package mylog

import "sync"

// Registry is a process-wide name -> *Logger map with a "default" Logger
// always present. Add never replaces an existing entry.
type Registry struct {
	mu      sync.Mutex
	loggers map[string]*Logger
}

// NewRegistry creates a Registry with a default-named Logger already built
// from cfg and added.
func NewRegistry(cfg Config) *Registry {
	r := &Registry{loggers: make(map[string]*Logger)}
	def, err := NewBuilder(cfg).Name("default").Build()
	if err != nil {
		// AddStdout-only construction cannot fail; if it somehow did, a
		// registry with no default logger violates its own invariant.
		panic("mylog: failed to build default logger: " + err.Error())
	}
	r.loggers["default"] = def
	return r
}

// Add inserts l under l.Name(), returning false without modifying the
// registry if that name is already present.
func (r *Registry) Add(l *Logger) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, exists := r.loggers[l.Name()]; exists {
		return false
	}
	r.loggers[l.Name()] = l
	return true
}

// Get returns the logger registered under name, if any.
func (r *Registry) Get(name string) (*Logger, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	l, ok := r.loggers[name]
	return l, ok
}

// Default returns the always-present "default" logger.
func (r *Registry) Default() *Logger {
	l, _ := r.Get("default")
	return l
}

// Close closes every registered logger, returning the first error
// encountered, if any.
func (r *Registry) Close() error {
	r.mu.Lock()
	loggers := make([]*Logger, 0, len(r.loggers))
	for _, l := range r.loggers {
		loggers = append(loggers, l)
	}
	r.loggers = make(map[string]*Logger)
	r.mu.Unlock()

	var firstErr error
	for _, l := range loggers {
		if err := l.Close(); err != nil && firstErr == nil {
			firstErr = err
		}
	}
	return firstErr
}

var (
	defaultRegistryOnce sync.Once
	defaultRegistry     *Registry
)

// DefaultRegistry returns the process-wide Registry, initializing it from
// DefaultConfig() on first use.
func DefaultRegistry() *Registry {
	defaultRegistryOnce.Do(func() {
		defaultRegistry = NewRegistry(DefaultConfig())
	})
	return defaultRegistry
}
