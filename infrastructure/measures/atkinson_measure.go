package measures

import (
	"context"
	"fmt"

	"gopkg.in/yaml.v3"

	ineq "github.com/ahrav/go-ineq"
	"github.com/ahrav/go-ineq/atkinson"
	"github.com/ahrav/go-ineq/internal/ports"
)

var _ ports.Measure = (*AtkinsonMeasure)(nil)

// AtkinsonMeasure computes the Atkinson EDE or inequality index for each
// distribution it is given. The Adjusted flag selects the inverted index
// orientation (EDE/mean − 1) used for undesirable-quantity analyses; the EDE
// itself is identical in both orientations.
//
// The measure is stateless after construction and safe for concurrent use.
type AtkinsonMeasure struct {
	// name is the unique identifier for this measure instance.
	name string
	// config contains the validated configuration parameters.
	config AtkinsonConfig
}

// AtkinsonConfig defines the configuration for an AtkinsonMeasure.
type AtkinsonConfig struct {
	// Statistic selects the reported scalar: "ede" or "index".
	Statistic Statistic `yaml:"statistic" json:"statistic" validate:"required,oneof=ede index"`

	// Epsilon is the inequality aversion parameter. Epsilon of 1 is
	// handled by the geometric-mean branch of the core engine. Under the
	// adjusted orientation this parameter is conventionally called beta
	// and is typically negative.
	Epsilon float64 `yaml:"epsilon" json:"epsilon"`

	// Adjusted selects the inverted index orientation, EDE/mean − 1,
	// instead of the standard 1 − EDE/mean.
	Adjusted bool `yaml:"adjusted" json:"adjusted"`
}

// NewAtkinsonMeasure creates an AtkinsonMeasure with the given name and
// validated configuration. Returns ErrEmptyMeasureName when name is empty,
// or a wrapped validation error when the configuration is invalid.
func NewAtkinsonMeasure(name string, config AtkinsonConfig) (*AtkinsonMeasure, error) {
	if name == "" {
		return nil, ErrEmptyMeasureName
	}
	if err := validate.Struct(config); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}
	return &AtkinsonMeasure{name: name, config: config}, nil
}

// CreateAtkinsonMeasure builds an AtkinsonMeasure from a flexible
// configuration map. It satisfies ports.MeasureFactory.
func CreateAtkinsonMeasure(name string, config map[string]any) (ports.Measure, error) {
	var cfg AtkinsonConfig
	if err := decodeConfig(config, &cfg); err != nil {
		return nil, err
	}
	return NewAtkinsonMeasure(name, cfg)
}

// Name returns the unique identifier for this measure instance.
func (m *AtkinsonMeasure) Name() string { return m.name }

// Compute evaluates the configured Atkinson statistic over the distribution.
// Core engine errors are wrapped in a MeasureError carrying the measure
// name.
func (m *AtkinsonMeasure) Compute(ctx context.Context, values, weights []float64) (float64, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}

	var (
		result float64
		err    error
	)
	switch {
	case m.config.Statistic == StatisticIndex && m.config.Adjusted:
		result, err = atkinson.AdjustedIndex(values, m.config.Epsilon, weights)
	case m.config.Statistic == StatisticIndex:
		result, err = atkinson.Index(values, m.config.Epsilon, weights)
	case m.config.Adjusted:
		result, err = atkinson.AdjustedEDE(values, m.config.Epsilon, weights)
	default:
		result, err = atkinson.EDE(values, m.config.Epsilon, weights)
	}
	if err != nil {
		return 0, ineq.NewMeasureError(m.name, "compute", err)
	}
	return result, nil
}

// Validate checks that the measure's configuration is still consistent.
func (m *AtkinsonMeasure) Validate() error {
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
func (m *AtkinsonMeasure) UnmarshalParameters(params yaml.Node) error {
	var config AtkinsonConfig
	if err := params.Decode(&config); err != nil {
		return fmt.Errorf("failed to decode parameters: %w", err)
	}
	if err := validate.Struct(config); err != nil {
		return fmt.Errorf("parameter validation failed: %w", err)
	}
	m.config = config
	return nil
}
