package kmeans

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDistance(t *testing.T) {
	t.Run("same sample", func(t *testing.T) {
		s := Sample{R: 100, G: 100, B: 100}
		assert.Equal(t, 0.0, Distance(s, s))
	})

	t.Run("symmetric", func(t *testing.T) {
		a := Sample{R: 10, G: 200, B: 30}
		b := Sample{R: 240, G: 5, B: 99}
		assert.Equal(t, Distance(a, b), Distance(b, a))
	})

	t.Run("black to white", func(t *testing.T) {
		black := Sample{}
		white := Sample{R: 255, G: 255, B: 255}
		// sqrt(3 * 255^2) ≈ 441.67
		assert.InDelta(t, 441.67, Distance(black, white), 0.01)
	})

	t.Run("red to blue", func(t *testing.T) {
		red := Sample{R: 255}
		blue := Sample{B: 255}
		// sqrt(2 * 255^2) ≈ 360.62
		assert.InDelta(t, 360.62, Distance(red, blue), 0.01)
	})
}

func TestRandomSample(t *testing.T) {
	t.Run("deterministic for a seed", func(t *testing.T) {
		a := RandomSample(rand.New(rand.NewSource(42)))
		b := RandomSample(rand.New(rand.NewSource(42)))
		assert.Equal(t, a, b)
	})

	t.Run("consumes the source", func(t *testing.T) {
		rng := rand.New(rand.NewSource(42))
		a := RandomSample(rng)
		b := RandomSample(rng)
		assert.NotEqual(t, a, b)
	})
}

func TestCluster(t *testing.T) {
	red := Sample{R: 255}
	blue := Sample{B: 255}
	green := Sample{G: 255}

	t.Run("rejects k below 1", func(t *testing.T) {
		_, err := Cluster([]Sample{red}, 0, DefaultMaxIterations, DefaultConvergence, DefaultSeed)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "at least 1")
	})

	t.Run("rejects empty input", func(t *testing.T) {
		_, err := Cluster(nil, 2, DefaultMaxIterations, DefaultConvergence, DefaultSeed)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "no samples")
	})

	t.Run("deterministic for identical input", func(t *testing.T) {
		samples := []Sample{red, blue, green, red, blue, green}
		a, err := Cluster(samples, 3, DefaultMaxIterations, DefaultConvergence, DefaultSeed)
		require.NoError(t, err)
		b, err := Cluster(samples, 3, DefaultMaxIterations, DefaultConvergence, DefaultSeed)
		require.NoError(t, err)
		assert.Equal(t, a, b)
	})

	t.Run("separates two distinct colors", func(t *testing.T) {
		samples := []Sample{red, blue, red, blue}
		result, err := Cluster(samples, 2, DefaultMaxIterations, DefaultConvergence, 1)
		require.NoError(t, err)

		require.Len(t, result.Centroids, 2)
		require.Len(t, result.Assignments, 4)
		assert.Contains(t, result.Centroids, red)
		assert.Contains(t, result.Centroids, blue)

		counts := make([]int, 2)
		for _, a := range result.Assignments {
			require.GreaterOrEqual(t, a, 0)
			require.Less(t, a, 2)
			counts[a]++
		}
		assert.Equal(t, []int{2, 2}, counts)
	})

	t.Run("single cluster averages all samples", func(t *testing.T) {
		samples := make([]Sample, 0, 8)
		for i := 0; i < 6; i++ {
			samples = append(samples, red)
		}
		for i := 0; i < 2; i++ {
			samples = append(samples, green)
		}

		result, err := Cluster(samples, 1, DefaultMaxIterations, DefaultConvergence, DefaultSeed)
		require.NoError(t, err)
		require.Len(t, result.Centroids, 1)

		// 6*255/8 truncates to 191, 2*255/8 truncates to 63.
		assert.Equal(t, Sample{R: 191, G: 63, B: 0}, result.Centroids[0])
	})

	t.Run("averages truncate toward zero", func(t *testing.T) {
		samples := []Sample{{R: 1, G: 1, B: 1}, {R: 2, G: 2, B: 2}}
		result, err := Cluster(samples, 1, DefaultMaxIterations, DefaultConvergence, DefaultSeed)
		require.NoError(t, err)
		assert.Equal(t, Sample{R: 1, G: 1, B: 1}, result.Centroids[0])
	})

	t.Run("k larger than sample count", func(t *testing.T) {
		samples := []Sample{red, blue, red, blue}
		result, err := Cluster(samples, 5, DefaultMaxIterations, DefaultConvergence, DefaultSeed)
		require.NoError(t, err)

		// Centroid count never changes, even when clusters stay empty.
		require.Len(t, result.Centroids, 5)
		require.Len(t, result.Assignments, 4)
		for _, a := range result.Assignments {
			assert.GreaterOrEqual(t, a, 0)
			assert.Less(t, a, 5)
		}
	})

	t.Run("assignments match returned centroids", func(t *testing.T) {
		samples := []Sample{red, blue, green, {R: 12, G: 200, B: 100}, {R: 240, G: 9, B: 30}}
		result, err := Cluster(samples, 3, DefaultMaxIterations, DefaultConvergence, DefaultSeed)
		require.NoError(t, err)

		for i, s := range samples {
			got := result.Assignments[i]
			for j, c := range result.Centroids {
				assert.GreaterOrEqual(t, Distance(s, c), Distance(s, result.Centroids[got]),
					"sample %d assigned to %d but centroid %d is closer", i, got, j)
			}
		}
	})

	t.Run("iteration cap bounds the run", func(t *testing.T) {
		samples := []Sample{red, blue, green, red, blue, green}
		result, err := Cluster(samples, 2, 1, 0, DefaultSeed)
		require.NoError(t, err)
		require.Len(t, result.Centroids, 2)
		require.Len(t, result.Assignments, 6)
	})
}
