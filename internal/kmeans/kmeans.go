// Package kmeans clusters pixel samples in RGB space using k-means.
package kmeans

import (
	"fmt"
	"math"
	"math/rand"
)

// Default tuning parameters, used when the caller does not override them.
const (
	DefaultMaxIterations = 20
	DefaultConvergence   = 5.0
	DefaultSeed          = 0
)

// Sample is one pixel's color reduced to its three channel values.
type Sample struct {
	R, G, B uint8
}

// Distance returns the Euclidean distance between two samples in RGB space.
func Distance(a, b Sample) float64 {
	dr := float64(a.R) - float64(b.R)
	dg := float64(a.G) - float64(b.G)
	db := float64(a.B) - float64(b.B)
	return math.Sqrt(dr*dr + dg*dg + db*db)
}

// RandomSample returns a sample with each channel drawn independently and
// uniformly from the full 0-255 range.
func RandomSample(rng *rand.Rand) Sample {
	return Sample{
		R: uint8(rng.Intn(256)),
		G: uint8(rng.Intn(256)),
		B: uint8(rng.Intn(256)),
	}
}

// Result holds the final centroids and the per-sample cluster assignments.
// Assignments[i] is the index in Centroids of the cluster sample i belongs to.
type Result struct {
	Centroids   []Sample
	Assignments []int
}

// Cluster partitions samples into k clusters using Lloyd's algorithm.
//
// Centroids are initialized from a seeded random source rather than drawn
// from the input, so identical input and parameters always produce identical
// output. The loop stops when the summed centroid movement of an iteration
// falls below convergence, or after maxIterations iterations. A cluster that
// ends up with no samples keeps its previous centroid.
//
// k may exceed the sample count; the surplus centroids simply never attract
// any samples and survive with their initial values.
func Cluster(samples []Sample, k, maxIterations int, convergence float64, seed int64) (Result, error) {
	if k < 1 {
		return Result{}, fmt.Errorf("cluster count must be at least 1, got %d", k)
	}
	if len(samples) == 0 {
		return Result{}, fmt.Errorf("no samples to cluster")
	}

	rng := rand.New(rand.NewSource(seed))
	centroids := make([]Sample, k)
	for i := range centroids {
		centroids[i] = RandomSample(rng)
	}

	assignments := make([]int, len(samples))
	old := make([]Sample, k)

	for iter := 0; iter < maxIterations; iter++ {
		assign(samples, centroids, assignments)

		copy(old, centroids)
		recalculate(samples, assignments, centroids)

		delta := 0.0
		for i := range centroids {
			delta += Distance(centroids[i], old[i])
		}
		if delta < convergence {
			break
		}
	}

	// The last recompute moved centroids after the assignment pass, so
	// re-assign once to keep assignments consistent with the returned
	// centroids.
	assign(samples, centroids, assignments)

	return Result{Centroids: centroids, Assignments: assignments}, nil
}

// assign maps every sample to the index of its nearest centroid.
// Ties go to the lower index.
func assign(samples, centroids []Sample, assignments []int) {
	for i, s := range samples {
		minDist := math.MaxFloat64
		minIdx := 0
		for j, c := range centroids {
			if d := Distance(s, c); d < minDist {
				minDist = d
				minIdx = j
			}
		}
		assignments[i] = minIdx
	}
}

// recalculate moves each centroid to the channel-wise average of its assigned
// samples. Averages truncate toward zero. Empty clusters are left in place.
func recalculate(samples []Sample, assignments []int, centroids []Sample) {
	sums := make([][3]int64, len(centroids))
	counts := make([]int64, len(centroids))

	for i, s := range samples {
		c := assignments[i]
		sums[c][0] += int64(s.R)
		sums[c][1] += int64(s.G)
		sums[c][2] += int64(s.B)
		counts[c]++
	}

	for i := range centroids {
		if counts[i] == 0 {
			continue
		}
		centroids[i] = Sample{
			R: uint8(sums[i][0] / counts[i]),
			G: uint8(sums[i][1] / counts[i]),
			B: uint8(sums[i][2] / counts[i]),
		}
	}
}
