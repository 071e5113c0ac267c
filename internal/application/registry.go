// Package application wires configured measure suites together: it holds the
// measure registry, the yaml suite configuration, and the concurrent batch
// evaluator.
package application

import (
	"fmt"
	"sort"
	"sync"

	"github.com/ahrav/go-ineq/infrastructure/measures"
	"github.com/ahrav/go-ineq/internal/ports"
)

// Verify interface compliance at compile time.
var _ ports.MeasureRegistry = (*DefaultMeasureRegistry)(nil)

// Measure type identifiers understood by the default registry.
const (
	MeasureTypeKolmPollak = "kolm_pollak"
	MeasureTypeAtkinson   = "atkinson"
	MeasureTypeGini       = "gini"
)

// DefaultMeasureRegistry implements the MeasureRegistry interface, mapping
// measure type identifiers to factory functions. It supports dynamic
// registration of additional measure types and is safe for concurrent use.
type DefaultMeasureRegistry struct {
	// factories maps measure type strings to their factory functions.
	factories map[string]ports.MeasureFactory
	// mu protects concurrent access to the factories map.
	mu sync.RWMutex
}

// NewDefaultMeasureRegistry creates a measure registry with the standard
// measure types pre-registered: kolm_pollak, atkinson, and gini.
func NewDefaultMeasureRegistry() *DefaultMeasureRegistry {
	registry := &DefaultMeasureRegistry{factories: make(map[string]ports.MeasureFactory)}
	registry.registerBuiltinFactories()
	return registry
}

// registerBuiltinFactories registers the measure families provided by this
// module.
func (r *DefaultMeasureRegistry) registerBuiltinFactories() {
	r.factories[MeasureTypeKolmPollak] = measures.CreateKolmPollakMeasure
	r.factories[MeasureTypeAtkinson] = measures.CreateAtkinsonMeasure
	r.factories[MeasureTypeGini] = measures.CreateGiniMeasure
}

// Register associates a factory with a measure type identifier.
// Registering a type that already exists is an error.
func (r *DefaultMeasureRegistry) Register(measureType string, factory ports.MeasureFactory) error {
	if measureType == "" {
		return fmt.Errorf("measure type cannot be empty")
	}
	if factory == nil {
		return fmt.Errorf("factory for measure type %q cannot be nil", measureType)
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	if _, exists := r.factories[measureType]; exists {
		return fmt.Errorf("measure type %q is already registered", measureType)
	}
	r.factories[measureType] = factory
	return nil
}

// Create instantiates a measure of the given type with the given name and
// configuration map.
func (r *DefaultMeasureRegistry) Create(measureType, name string, config map[string]any) (ports.Measure, error) {
	r.mu.RLock()
	factory, exists := r.factories[measureType]
	r.mu.RUnlock()
	if !exists {
		return nil, fmt.Errorf("unknown measure type %q", measureType)
	}

	measure, err := factory(name, config)
	if err != nil {
		return nil, fmt.Errorf("failed to create %s measure %q: %w", measureType, name, err)
	}
	return measure, nil
}

// List returns the registered measure type identifiers in sorted order.
func (r *DefaultMeasureRegistry) List() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	types := make([]string, 0, len(r.factories))
	for t := range r.factories {
		types = append(types, t)
	}
	sort.Strings(types)
	return types
}
