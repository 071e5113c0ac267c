package measures

import (
	"context"
	"fmt"

	"gopkg.in/yaml.v3"

	ineq "github.com/ahrav/go-ineq"
	"github.com/ahrav/go-ineq/gini"
	"github.com/ahrav/go-ineq/internal/ports"
)

var _ ports.Measure = (*GiniMeasure)(nil)

// GiniMeasure computes the Gini coefficient for each distribution it is
// given. The rank algorithm is the production default; the lorenz algorithm
// is retained for callers that want the curve-based formulation. Results are
// never rounded.
//
// The measure is stateless after construction and safe for concurrent use.
type GiniMeasure struct {
	// name is the unique identifier for this measure instance.
	name string
	// config contains the validated configuration parameters.
	config GiniConfig
}

// GiniConfig defines the configuration for a GiniMeasure.
type GiniConfig struct {
	// Algorithm selects the implementation strategy: "rank" (canonical
	// cumulative-weight formula) or "lorenz" (Lorenz-curve area). Empty
	// defaults to "rank".
	Algorithm GiniAlgorithm `yaml:"algorithm" json:"algorithm" validate:"omitempty,oneof=rank lorenz"`
}

// NewGiniMeasure creates a GiniMeasure with the given name and validated
// configuration. An empty algorithm defaults to the canonical rank formula.
func NewGiniMeasure(name string, config GiniConfig) (*GiniMeasure, error) {
	if name == "" {
		return nil, ErrEmptyMeasureName
	}
	if err := validate.Struct(config); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}
	if config.Algorithm == "" {
		config.Algorithm = GiniRank
	}
	return &GiniMeasure{name: name, config: config}, nil
}

// CreateGiniMeasure builds a GiniMeasure from a flexible configuration map.
// It satisfies ports.MeasureFactory.
func CreateGiniMeasure(name string, config map[string]any) (ports.Measure, error) {
	var cfg GiniConfig
	if err := decodeConfig(config, &cfg); err != nil {
		return nil, err
	}
	return NewGiniMeasure(name, cfg)
}

// Name returns the unique identifier for this measure instance.
func (m *GiniMeasure) Name() string { return m.name }

// Compute evaluates the Gini coefficient over the distribution with the
// configured algorithm. Core engine errors are wrapped in a MeasureError
// carrying the measure name.
func (m *GiniMeasure) Compute(ctx context.Context, values, weights []float64) (float64, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}

	var (
		result float64
		err    error
	)
	if m.config.Algorithm == GiniLorenz {
		result, err = gini.LorenzIndex(values, weights)
	} else {
		result, err = gini.Index(values, weights)
	}
	if err != nil {
		return 0, ineq.NewMeasureError(m.name, "compute", err)
	}
	return result, nil
}

// Validate checks that the measure's configuration is still consistent.
func (m *GiniMeasure) Validate() error {
	if m.name == "" {
		return ErrEmptyMeasureName
	}
	if err := validate.Struct(m.config); err != nil {
		return fmt.Errorf("configuration validation failed: %w", err)
	}
	return nil
}

// UnmarshalParameters replaces the measure's configuration from a yaml node
// after validating it. The method mutates the receiver and is not safe for
// concurrent use with Compute.
func (m *GiniMeasure) UnmarshalParameters(params yaml.Node) error {
	var config GiniConfig
	if err := params.Decode(&config); err != nil {
		return fmt.Errorf("failed to decode parameters: %w", err)
	}
	if err := validate.Struct(config); err != nil {
		return fmt.Errorf("parameter validation failed: %w", err)
	}
	if config.Algorithm == "" {
		config.Algorithm = GiniRank
	}
	m.config = config
	return nil
}
