package application

import (
	"fmt"
	"io"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"

	"github.com/ahrav/go-ineq/internal/ports"
)

// Package-level validator instance for suite configuration validation.
var validate = validator.New()

// SuiteConfig is the yaml specification for a set of measures to evaluate
// together. It is the configuration entry point for the CLI and for callers
// that assemble measure suites from files.
type SuiteConfig struct {
	// Version specifies the configuration schema version.
	Version string `yaml:"version" validate:"required"`
	// Metadata contains descriptive information about the suite.
	Metadata Metadata `yaml:"metadata"`
	// Measures defines the individual statistics to compute, each with its
	// own type-specific parameters.
	Measures []MeasureConfig `yaml:"measures" validate:"required,min=1,dive"`
}

// Metadata provides descriptive information about a measure suite for
// organization and discovery.
type Metadata struct {
	// Name is the human-readable identifier for this suite.
	Name string `yaml:"name" validate:"max=255"`
	// Description explains the suite's purpose.
	Description string `yaml:"description" validate:"max=1000"`
	// Labels are arbitrary key-value pairs for external integration.
	Labels map[string]string `yaml:"labels" validate:"max=50"`
}

// MeasureConfig defines one measure within a suite.
type MeasureConfig struct {
	// ID is the unique identifier for this measure within the suite.
	ID string `yaml:"id" validate:"required,min=1,max=100"`
	// Type selects the measure family implementation.
	Type string `yaml:"type" validate:"required,oneof=kolm_pollak atkinson gini"`
	// Parameters contains family-specific configuration as flexible yaml,
	// validated by the measure factory.
	Parameters yaml.Node `yaml:"parameters"`
}

// LoadSuite decodes and validates a suite configuration from yaml.
func LoadSuite(r io.Reader) (*SuiteConfig, error) {
	var config SuiteConfig
	decoder := yaml.NewDecoder(r)
	decoder.KnownFields(true)
	if err := decoder.Decode(&config); err != nil {
		return nil, fmt.Errorf("failed to decode suite configuration: %w", err)
	}
	if err := validate.Struct(&config); err != nil {
		return nil, fmt.Errorf("suite configuration validation failed: %w", err)
	}

	seen := make(map[string]struct{}, len(config.Measures))
	for _, m := range config.Measures {
		if _, dup := seen[m.ID]; dup {
			return nil, fmt.Errorf("duplicate measure id %q", m.ID)
		}
		seen[m.ID] = struct{}{}
	}
	return &config, nil
}

// BuildMeasures instantiates every measure in the suite through the given
// registry, in declaration order.
func (c *SuiteConfig) BuildMeasures(registry ports.MeasureRegistry) ([]ports.Measure, error) {
	built := make([]ports.Measure, 0, len(c.Measures))
	for _, mc := range c.Measures {
		params := map[string]any{}
		if mc.Parameters.Kind != 0 {
			if err := mc.Parameters.Decode(&params); err != nil {
				return nil, fmt.Errorf("invalid parameters for measure %q: %w", mc.ID, err)
			}
		}
		measure, err := registry.Create(mc.Type, mc.ID, params)
		if err != nil {
			return nil, err
		}
		built = append(built, measure)
	}
	return built, nil
}
