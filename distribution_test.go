package ineq

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestNewDistribution_Validation verifies that the input normalizer accepts
// well-formed value/weight pairs and rejects each malformed shape with an
// error in the ErrInvalidInput category.
func TestNewDistribution_Validation(t *testing.T) {
	tests := []struct {
		name          string
		values        []float64
		weights       []float64
		expectedError string
	}{
		{
			name:   "accepts unweighted values",
			values: []float64{1, 2, 3},
		},
		{
			name:    "accepts weighted values",
			values:  []float64{1, 2, 3},
			weights: []float64{1, 0, 2},
		},
		{
			name:   "accepts a single value",
			values: []float64{42},
		},
		{
			name:          "rejects empty values",
			values:        nil,
			expectedError: "at least one value",
		},
		{
			name:          "rejects NaN values",
			values:        []float64{1, math.NaN(), 3},
			expectedError: "not finite",
		},
		{
			name:          "rejects infinite values",
			values:        []float64{1, math.Inf(1)},
			expectedError: "not finite",
		},
		{
			name:          "rejects mismatched weight length",
			values:        []float64{1, 2, 3},
			weights:       []float64{1, 2},
			expectedError: "differ in length",
		},
		{
			name:          "rejects negative weights",
			values:        []float64{1, 2},
			weights:       []float64{1, -1},
			expectedError: "negative",
		},
		{
			name:          "rejects non-finite weights",
			values:        []float64{1, 2},
			weights:       []float64{1, math.NaN()},
			expectedError: "not finite",
		},
		{
			name:          "rejects all-zero weights",
			values:        []float64{1, 2},
			weights:       []float64{0, 0},
			expectedError: "at least one weight",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d, err := NewDistribution(tt.values, tt.weights)

			if tt.expectedError != "" {
				require.Error(t, err)
				assert.ErrorIs(t, err, ErrInvalidInput)
				assert.Contains(t, err.Error(), tt.expectedError)
				assert.Nil(t, d)
				return
			}

			require.NoError(t, err)
			require.NotNil(t, d)
			assert.Equal(t, len(tt.values), d.Len())
		})
	}
}

// TestDistribution_CopiesInputs verifies that a Distribution is insulated
// from later mutation of the caller's slices.
func TestDistribution_CopiesInputs(t *testing.T) {
	values := []float64{1, 2, 3}
	weights := []float64{1, 1, 2}

	d, err := NewDistribution(values, weights)
	require.NoError(t, err)

	values[0] = 99
	weights[2] = 99

	assert.Equal(t, 1.0, d.Value(0))
	assert.Equal(t, 2.0, d.Weight(2))
}

// TestDistribution_Reductions verifies the weighted reductions the measure
// engines are built on.
func TestDistribution_Reductions(t *testing.T) {
	t.Run("unweighted totals and mean", func(t *testing.T) {
		d, err := NewDistribution([]float64{1, 2, 3}, nil)
		require.NoError(t, err)

		assert.False(t, d.Weighted())
		assert.Equal(t, 3.0, d.TotalWeight())
		assert.Equal(t, 6.0, d.Sum())
		assert.Equal(t, 2.0, d.Mean())
		assert.Equal(t, 1.0, d.Weight(1))
		assert.Equal(t, 3.0, d.Max())
	})

	t.Run("weighted totals and mean", func(t *testing.T) {
		d, err := NewDistribution([]float64{2, 4}, []float64{3, 1})
		require.NoError(t, err)

		assert.True(t, d.Weighted())
		assert.Equal(t, 4.0, d.TotalWeight())
		assert.Equal(t, 10.0, d.Sum())
		assert.Equal(t, 2.5, d.Mean())
	})

	t.Run("weighted sum applies the transform per value", func(t *testing.T) {
		d, err := NewDistribution([]float64{1, 2, 3}, []float64{2, 1, 1})
		require.NoError(t, err)

		sq := d.WeightedSum(func(x float64) float64 { return x * x })
		assert.Equal(t, 2.0*1+1*4+1*9, sq)
	})
}

// TestDistribution_Centered verifies mean-centering with preserved weights.
func TestDistribution_Centered(t *testing.T) {
	d, err := NewDistribution([]float64{1, 2, 6}, []float64{1, 1, 2})
	require.NoError(t, err)

	c := d.Centered()

	// mean = (1 + 2 + 12) / 4 = 3.75
	assert.InDelta(t, -2.75, c.Value(0), 1e-12)
	assert.InDelta(t, -1.75, c.Value(1), 1e-12)
	assert.InDelta(t, 2.25, c.Value(2), 1e-12)
	assert.Equal(t, 2.0, c.Weight(2))
	assert.InDelta(t, 0, c.Sum(), 1e-12)
}

// TestDistribution_SortedByValue verifies that sorting keeps each weight
// paired with its value.
func TestDistribution_SortedByValue(t *testing.T) {
	d, err := NewDistribution([]float64{3, 1, 2}, []float64{30, 10, 20})
	require.NoError(t, err)

	s := d.SortedByValue()

	assert.Equal(t, []float64{1, 2, 3}, []float64{s.Value(0), s.Value(1), s.Value(2)})
	assert.Equal(t, []float64{10, 20, 30}, []float64{s.Weight(0), s.Weight(1), s.Weight(2)})

	// The receiver is untouched.
	assert.Equal(t, 3.0, d.Value(0))
}

// TestMeasureError verifies the measure error wrapper preserves the
// underlying category for errors.Is.
func TestMeasureError(t *testing.T) {
	err := NewMeasureError("gini", "compute", ErrDomain)

	assert.ErrorIs(t, err, ErrDomain)
	assert.Contains(t, err.Error(), "measure=gini")
	assert.Contains(t, err.Error(), "op=compute")
}
