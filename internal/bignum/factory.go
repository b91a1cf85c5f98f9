package bignum

import (
	"fmt"
	"sort"
	"sync"
)

// DefaultBackend is the key of the backend used when none is configured.
const DefaultBackend = "mulrange"

type namedBackend struct {
	key     string
	backend Backend
}

// optionalBackends holds backends contributed by build-tagged files.
var optionalBackends []namedBackend

// Factory is a registry of factorial backends keyed by short name.
type Factory struct {
	mu       sync.RWMutex
	backends map[string]Backend
}

// NewFactory returns an empty Factory.
func NewFactory() *Factory {
	return &Factory{backends: make(map[string]Backend)}
}

// NewDefaultFactory returns a Factory with every backend compiled into the
// binary registered.
func NewDefaultFactory() *Factory {
	f := NewFactory()
	f.Register(DefaultBackend, MulRangeBackend{})
	f.Register("split", SplitBackend{})
	f.Register("iterative", IterativeBackend{})
	for _, nb := range optionalBackends {
		f.Register(nb.key, nb.backend)
	}
	return f
}

var (
	globalFactory     *Factory
	globalFactoryOnce sync.Once
)

// GlobalFactory returns a lazily built, shared default Factory.
func GlobalFactory() *Factory {
	globalFactoryOnce.Do(func() { globalFactory = NewDefaultFactory() })
	return globalFactory
}

// Register adds or replaces the backend stored under key.
func (f *Factory) Register(key string, b Backend) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.backends[key] = b
}

// Get returns the backend registered under key.
func (f *Factory) Get(key string) (Backend, error) {
	f.mu.RLock()
	defer f.mu.RUnlock()
	b, ok := f.backends[key]
	if !ok {
		return nil, fmt.Errorf("unknown factorial backend %q (available: %v)", key, f.listLocked())
	}
	return b, nil
}

// MustGet is like Get but panics on unknown keys.
func (f *Factory) MustGet(key string) Backend {
	b, err := f.Get(key)
	if err != nil {
		panic(err)
	}
	return b
}

// List returns the registered keys in sorted order.
func (f *Factory) List() []string {
	f.mu.RLock()
	defer f.mu.RUnlock()
	return f.listLocked()
}

func (f *Factory) listLocked() []string {
	keys := make([]string, 0, len(f.backends))
	for k := range f.backends {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// GetAll returns every registered backend, ordered by key.
func (f *Factory) GetAll() []Backend {
	f.mu.RLock()
	defer f.mu.RUnlock()
	all := make([]Backend, 0, len(f.backends))
	for _, k := range f.listLocked() {
		all = append(all, f.backends[k])
	}
	return all
}
