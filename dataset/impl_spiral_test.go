package dataset_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/scatter/dataset"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestSpiral_EvenCount verifies shape and arm labeling for an even request:
// ten points, first arm all negative, second arm all positive.
func TestSpiral_EvenCount(t *testing.T) {
	ds, err := dataset.Spiral(10)
	require.NoError(t, err, "Spiral(10) should not error")

	assert.Equal(t, 10, ds.Count, "Count echoes the request")
	assert.Len(t, ds.Points, 10, "even request yields exactly n points")
	assert.Len(t, ds.Labels, 10, "labels stay index-aligned")

	for i := 0; i < 5; i++ {
		assert.Equal(t, dataset.ClassNegative, ds.Labels[i], "arm A label %d", i)
	}
	for i := 5; i < 10; i++ {
		assert.Equal(t, dataset.ClassPositive, ds.Labels[i], "arm B label %d", i)
	}
}

// TestSpiral_OddCountTruncates pins the documented boundary quirk: an odd
// request emits one point fewer than asked while Count records the request.
func TestSpiral_OddCountTruncates(t *testing.T) {
	ds, err := dataset.Spiral(11)
	require.NoError(t, err, "Spiral(11) should not error")

	assert.Equal(t, 11, ds.Count, "Count records the requested n")
	assert.Len(t, ds.Points, 10, "odd request truncates to 2·(n/2) points")
	assert.Len(t, ds.Labels, 10, "labels truncate alongside points")
}

// TestSpiral_ArmGeometry checks the first point of each arm against the
// parametric definition: t = 10·(i/half) starting at i = 5, with arm B
// using a negated angle and swapped axes.
func TestSpiral_ArmGeometry(t *testing.T) {
	ds, err := dataset.Spiral(10)
	require.NoError(t, err)

	// Arm A first point: i = 5, half = 5 ⇒ t = 10.
	tA := 10.0
	assert.InDelta(t, tA*math.Cos(tA)/20+0.5, ds.Points[0].X1, 1e-12, "arm A X1")
	assert.InDelta(t, tA*math.Sin(tA)/20+0.5, ds.Points[0].X2, 1e-12, "arm A X2")

	// Arm B first point: t = -10, axes swapped.
	tB := -10.0
	assert.InDelta(t, tB*math.Sin(tB)/20+0.5, ds.Points[5].X1, 1e-12, "arm B X1")
	assert.InDelta(t, tB*math.Cos(tB)/20+0.5, ds.Points[5].X2, 1e-12, "arm B X2")
}

// TestSpiral_TinyCounts verifies that requests below one full pair yield an
// empty dataset without error (half = 0 ⇒ no arm points at all).
func TestSpiral_TinyCounts(t *testing.T) {
	for _, n := range []int{0, 1} {
		ds, err := dataset.Spiral(n)
		require.NoError(t, err, "Spiral(%d) should not error", n)
		assert.Equal(t, n, ds.Count, "Count echoes the request for n=%d", n)
		assert.Empty(t, ds.Points, "n=%d yields no points", n)
		assert.Empty(t, ds.Labels, "n=%d yields no labels", n)
	}
}

// TestSpiral_NegativeCount ensures the shared validation path applies to
// the parametric generator as well.
func TestSpiral_NegativeCount(t *testing.T) {
	_, err := dataset.Spiral(-3)
	assert.ErrorIs(t, err, dataset.ErrNegativeCount, "Spiral(-3) must error ErrNegativeCount")
}

// TestSpiral_Deterministic confirms the spiral ignores seeding entirely:
// every call with the same n is byte-identical, whatever the options.
func TestSpiral_Deterministic(t *testing.T) {
	first, err := dataset.Spiral(40)
	require.NoError(t, err)
	second, err := dataset.Spiral(40, dataset.WithSeed(12345))
	require.NoError(t, err)

	assert.Equal(t, first, second, "Spiral output must not depend on RNG options")
}
