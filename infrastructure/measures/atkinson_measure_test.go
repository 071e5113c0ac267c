package measures

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	ineq "github.com/ahrav/go-ineq"
	"github.com/ahrav/go-ineq/atkinson"
)

// TestNewAtkinsonMeasure tests configuration validation at construction.
func TestNewAtkinsonMeasure(t *testing.T) {
	tests := []struct {
		name          string
		measureName   string
		config        AtkinsonConfig
		expectedError string
	}{
		{
			name:        "valid index configuration",
			measureName: "atk",
			config:      AtkinsonConfig{Statistic: StatisticIndex, Epsilon: 0.5},
		},
		{
			name:        "valid adjusted configuration with negative beta",
			measureName: "atk",
			config:      AtkinsonConfig{Statistic: StatisticIndex, Epsilon: -0.5, Adjusted: true},
		},
		{
			name:          "empty name",
			measureName:   "",
			config:        AtkinsonConfig{Statistic: StatisticEDE, Epsilon: 0.5},
			expectedError: "name cannot be empty",
		},
		{
			name:          "missing statistic",
			measureName:   "atk",
			config:        AtkinsonConfig{Epsilon: 0.5},
			expectedError: "validation failed",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m, err := NewAtkinsonMeasure(tt.measureName, tt.config)

			if tt.expectedError != "" {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.expectedError)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.measureName, m.Name())
		})
	}
}

// TestAtkinsonMeasure_Compute verifies delegation to each core operation
// based on the statistic and orientation configuration.
func TestAtkinsonMeasure_Compute(t *testing.T) {
	ctx := context.Background()
	values := []float64{1, 4, 9}
	weights := []float64{1, 2, 1}

	tests := []struct {
		name   string
		config AtkinsonConfig
		want   func() (float64, error)
	}{
		{
			name:   "standard ede",
			config: AtkinsonConfig{Statistic: StatisticEDE, Epsilon: 0.5},
			want:   func() (float64, error) { return atkinson.EDE(values, 0.5, weights) },
		},
		{
			name:   "standard index",
			config: AtkinsonConfig{Statistic: StatisticIndex, Epsilon: 0.5},
			want:   func() (float64, error) { return atkinson.Index(values, 0.5, weights) },
		},
		{
			name:   "adjusted ede",
			config: AtkinsonConfig{Statistic: StatisticEDE, Epsilon: -0.5, Adjusted: true},
			want:   func() (float64, error) { return atkinson.AdjustedEDE(values, -0.5, weights) },
		},
		{
			name:   "adjusted index",
			config: AtkinsonConfig{Statistic: StatisticIndex, Epsilon: -0.5, Adjusted: true},
			want:   func() (float64, error) { return atkinson.AdjustedIndex(values, -0.5, weights) },
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m, err := NewAtkinsonMeasure("atk", tt.config)
			require.NoError(t, err)

			got, err := m.Compute(ctx, values, weights)
			require.NoError(t, err)

			want, err := tt.want()
			require.NoError(t, err)
			assert.Equal(t, want, got)
		})
	}

	t.Run("domain errors are wrapped with the measure name", func(t *testing.T) {
		m, err := NewAtkinsonMeasure("atk", AtkinsonConfig{Statistic: StatisticEDE, Epsilon: 0.5})
		require.NoError(t, err)

		_, err = m.Compute(ctx, []float64{-1, 2}, nil)
		require.Error(t, err)
		assert.ErrorIs(t, err, ineq.ErrDomain)

		var measureErr *ineq.MeasureError
		require.ErrorAs(t, err, &measureErr)
		assert.Equal(t, "atk", measureErr.Measure)
	})
}

// TestAtkinsonMeasure_CreateFromMap tests the map factory path.
func TestAtkinsonMeasure_CreateFromMap(t *testing.T) {
	m, err := CreateAtkinsonMeasure("atk", map[string]any{
		"statistic": "index",
		"epsilon":   1,
		"adjusted":  false,
	})
	require.NoError(t, err)

	got, err := m.Compute(context.Background(), []float64{1, 4}, nil)
	require.NoError(t, err)

	// Geometric mean 2 against arithmetic mean 2.5.
	assert.InDelta(t, 0.2, got, 1e-12)
}
