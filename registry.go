package condense

import (
	"fmt"
	"sort"
)

// Factory constructs a [Condenser] from a [Config]. The Config's Type
// has already been matched against the registry by the time the factory
// runs; the factory is responsible for validating and applying the
// variant-specific params.
type Factory func(cfg Config) (Condenser, error)

// Registry maps condenser names to factories, enabling strategy
// selection by discriminant string without compile-time coupling.
//
// A Registry is an explicit, dependency-injected object: the application
// start-up routine creates one, registers the built-ins (see
// condensers.RegisterBuiltins), and passes it to whatever constructs
// condensers from configuration. Tests can register additional variants
// at runtime on their own instances without affecting anyone else.
//
// # Thread Safety
//
// Registry is NOT thread-safe. Register all factories during
// single-threaded initialization before sharing the instance.
type Registry struct {
	factories map[string]Factory
}

// NewRegistry creates an empty Registry.
func NewRegistry() *Registry {
	return &Registry{
		factories: make(map[string]Factory),
	}
}

// Register adds a factory under the given name.
//
// Returns [ErrDuplicateRegistration] if the name is already taken;
// the existing entry is left intact. Names are expected to be unique
// for the lifetime of the registry.
func (r *Registry) Register(name string, factory Factory) error {
	if name == "" {
		return fmt.Errorf(
			"%w: name must not be empty", ErrInvalidConfiguration,
		)
	}
	if factory == nil {
		return fmt.Errorf(
			"%w: factory must not be nil", ErrInvalidConfiguration,
		)
	}
	if _, ok := r.factories[name]; ok {
		return fmt.Errorf(
			"%w: %q", ErrDuplicateRegistration, name,
		)
	}
	r.factories[name] = factory
	return nil
}

// Get returns the factory registered under the given name.
//
// Returns [ErrUnknownStrategy] if no factory is registered.
func (r *Registry) Get(name string) (Factory, error) {
	factory, ok := r.factories[name]
	if !ok {
		return nil, fmt.Errorf(
			"%w: %q", ErrUnknownStrategy, name,
		)
	}
	return factory, nil
}

// Build constructs a Condenser from the given Config by looking up the
// factory for cfg.Type and invoking it.
func (r *Registry) Build(cfg Config) (Condenser, error) {
	factory, err := r.Get(cfg.Type)
	if err != nil {
		return nil, err
	}
	return factory(cfg)
}

// Names returns all registered names in sorted order.
func (r *Registry) Names() []string {
	names := make([]string, 0, len(r.factories))
	for name := range r.factories {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Len returns the number of registered factories.
func (r *Registry) Len() int {
	return len(r.factories)
}
