// Package measures provides configuration-driven wrappers around the core
// inequality statistic families, implementing the ports.Measure interface so
// suites can be assembled from yaml configuration and instrumented by the
// middleware layer.
package measures

import (
	"errors"
	"fmt"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"
)

// Statistic selects which scalar a measure family reports.
type Statistic string

// Supported statistics for the Kolm-Pollak and Atkinson measure families.
const (
	// StatisticEDE reports the equally-distributed equivalent, in the same
	// units as the input values.
	StatisticEDE Statistic = "ede"

	// StatisticIndex reports the family's inequality index.
	StatisticIndex Statistic = "index"
)

// GiniAlgorithm selects the Gini implementation strategy.
type GiniAlgorithm string

const (
	// GiniRank is the canonical cumulative-weight rank formula.
	GiniRank GiniAlgorithm = "rank"

	// GiniLorenz is the alternate Lorenz-curve area formulation.
	GiniLorenz GiniAlgorithm = "lorenz"
)

// ErrEmptyMeasureName is returned when attempting to create a measure with
// an empty name.
var ErrEmptyMeasureName = errors.New("measure name cannot be empty")

// Package-level validator instance for configuration validation.
// Uses go-playground/validator v10 for struct tag-based validation.
var validate = validator.New()

// decodeConfig converts a flexible configuration map into a typed config
// struct by round-tripping through yaml, so map factories and yaml.Node
// parameters share one decoding path.
func decodeConfig(config map[string]any, out any) error {
	raw, err := yaml.Marshal(config)
	if err != nil {
		return fmt.Errorf("failed to encode configuration: %w", err)
	}
	if err := yaml.Unmarshal(raw, out); err != nil {
		return fmt.Errorf("failed to decode configuration: %w", err)
	}
	return nil
}
