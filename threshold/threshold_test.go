package threshold_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/bcsd/threshold"
)

func TestClassify_NotReady(t *testing.T) {
	var th threshold.Threshold
	assert.False(t, th.Ready())

	_, err := th.Classify(0.5)
	assert.ErrorIs(t, err, threshold.ErrNotReady)

	_, err = th.IsOn(0.5)
	assert.ErrorIs(t, err, threshold.ErrNotReady)

	_, err = th.Midpoint()
	assert.ErrorIs(t, err, threshold.ErrNotReady)
	assert.Equal(t, "threshold(unset)", th.String())
}

// TestClassify_MidpointTiesOn pins the tie-break: values equal to the
// midpoint are "on".
func TestClassify_MidpointTiesOn(t *testing.T) {
	th, err := threshold.FromValues([]float64{0.0, 1.0})
	require.NoError(t, err)

	cases := []struct {
		v    float64
		want int
	}{
		{0.4, threshold.Off},
		{0.5, threshold.On},
		{0.6, threshold.On},
		{-3, threshold.Off},
		{7, threshold.On},
	}
	for _, tc := range cases {
		got, err := th.Classify(tc.v)
		require.NoError(t, err)
		assert.Equal(t, tc.want, got, "classify(%v)", tc.v)
	}
}

func TestFromValues(t *testing.T) {
	_, err := threshold.FromValues(nil)
	assert.ErrorIs(t, err, threshold.ErrNoValues)

	th, err := threshold.FromValues([]float64{0.3, 1.2, -0.4, 0.9})
	require.NoError(t, err)
	assert.Equal(t, -0.4, th.Min())
	assert.Equal(t, 1.2, th.Max())
	mid, err := th.Midpoint()
	require.NoError(t, err)
	assert.InDelta(t, 0.4, mid, 1e-12)
}

// TestObserve_IsImmutable checks that Observe widens a copy only.
func TestObserve_IsImmutable(t *testing.T) {
	var zero threshold.Threshold
	a := zero.Observe(0.2, 0.8)
	assert.False(t, zero.Ready())
	require.True(t, a.Ready())

	b := a.Observe(1.0)
	assert.Equal(t, 0.8, a.Max(), "receiver must not change")
	assert.Equal(t, 1.0, b.Max())
	assert.Equal(t, 0.2, b.Min())

	assert.Equal(t, b, b.Observe())
	assert.Equal(t, b, b.Observe(0.5), "inner values keep the range")
}

func TestIsOn_SingleValue(t *testing.T) {
	th, err := threshold.FromValues([]float64{0.7})
	require.NoError(t, err)

	on, err := th.IsOn(0.7)
	require.NoError(t, err)
	assert.True(t, on, "a degenerate range classifies its only value as on")

	on, err = th.IsOn(0.69)
	require.NoError(t, err)
	assert.False(t, on)
}
