package geojson

import (
	"context"
	"fmt"
	"sync"

	"github.com/bitmark-inc/covid-dashboard/schema"
)

var (
	ErrEmptyName  = fmt.Errorf("empty map name")
	ErrNoFeatures = fmt.Errorf("geometry has no features")
)

// Loader reads a boundary document
type Loader func(ctx context.Context) (*schema.FeatureCollection, error)

// LoadResult is the outcome of LoadAsync. Registered is false when the map
// was already registered by an earlier call.
type LoadResult struct {
	Name       string
	Collection *schema.FeatureCollection
	Registered bool
	Err        error
}

// Registry holds the boundary documents charts are drawn on, by map id.
// A map id is registered once for the lifetime of the registry.
type Registry struct {
	mu   sync.RWMutex
	maps map[string]*schema.FeatureCollection
}

func NewRegistry() *Registry {
	return &Registry{
		maps: make(map[string]*schema.FeatureCollection),
	}
}

// Register stores a document under name. It returns false and keeps the
// existing document when name is already registered.
func (r *Registry) Register(name string, c *schema.FeatureCollection) bool {
	if name == "" || c == nil {
		return false
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.maps[name]; ok {
		return false
	}
	r.maps[name] = c
	return true
}

// Registered reports whether name has a document
func (r *Registry) Registered(name string) bool {
	_, ok := r.Lookup(name)
	return ok
}

// Lookup returns the document registered under name
func (r *Registry) Lookup(name string) (*schema.FeatureCollection, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	c, ok := r.maps[name]
	return c, ok
}

// LoadAsync loads and registers a map in the background. The returned
// channel receives exactly one result and is then closed.
func (r *Registry) LoadAsync(ctx context.Context, name string, load Loader) <-chan LoadResult {
	out := make(chan LoadResult, 1)

	go func() {
		defer close(out)
		out <- r.load(ctx, name, load)
	}()

	return out
}

func (r *Registry) load(ctx context.Context, name string, load Loader) LoadResult {
	if name == "" {
		return LoadResult{Err: ErrEmptyName}
	}

	if c, ok := r.Lookup(name); ok {
		return LoadResult{Name: name, Collection: c}
	}

	c, err := load(ctx)
	if nil != err {
		return LoadResult{Name: name, Err: err}
	}

	if err := ctx.Err(); nil != err {
		return LoadResult{Name: name, Err: err}
	}

	if c == nil || len(c.Features) == 0 {
		return LoadResult{Name: name, Err: ErrNoFeatures}
	}

	registered := r.Register(name, c)
	if !registered {
		c, _ = r.Lookup(name)
	}

	return LoadResult{
		Name:       name,
		Collection: c,
		Registered: registered,
	}
}

type registryKey struct{}

// WithRegistry returns a context carrying r
func WithRegistry(ctx context.Context, r *Registry) context.Context {
	return context.WithValue(ctx, registryKey{}, r)
}

// FromContext returns the registry carried by ctx
func FromContext(ctx context.Context) (*Registry, bool) {
	r, ok := ctx.Value(registryKey{}).(*Registry)
	return r, ok && r != nil
}
