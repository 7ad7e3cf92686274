// Package isoforest implements ports.AnomalyScorer with an isolation-forest
// ensemble: observations are isolated by random recursive partitioning, and
// the fewer partitions a point needs, the more anomalous it is. The forest
// is rebuilt from a fixed seed on every call so results are reproducible.
package isoforest

import (
	"math"
	"math/rand"
	"sort"
)

const (
	defaultTrees     = 100
	defaultSubsample = 256
)

// Forest is a seeded isolation-forest anomaly scorer
type Forest struct {
	trees         int
	subsample     int
	contamination float64
	seed          int64
}

// NewForest creates a forest with the given contamination fraction and seed
func NewForest(contamination float64, seed int64) *Forest {
	return &Forest{
		trees:         defaultTrees,
		subsample:     defaultSubsample,
		contamination: contamination,
		seed:          seed,
	}
}

// ScoreAnomalies scores every value and flags the top contamination fraction.
// Scores are in (0, 1], higher meaning more anomalous.
func (f *Forest) ScoreAnomalies(values []float64) (labels []bool, scores []float64) {
	n := len(values)
	labels = make([]bool, n)
	scores = make([]float64, n)
	if n == 0 {
		return labels, scores
	}

	rng := rand.New(rand.NewSource(f.seed))

	psi := f.subsample
	if psi > n {
		psi = n
	}
	maxDepth := int(math.Ceil(math.Log2(float64(psi)))) + 1

	trees := make([]*node, f.trees)
	for i := range trees {
		sample := subsample(values, psi, rng)
		trees[i] = buildTree(sample, 0, maxDepth, rng)
	}

	norm := avgPathLength(psi)
	for i, v := range values {
		total := 0.0
		for _, t := range trees {
			total += pathLength(t, v, 0)
		}
		mean := total / float64(len(trees))
		scores[i] = math.Pow(2, -mean/norm)
	}

	flagged := int(f.contamination * float64(n))
	if flagged > 0 {
		order := make([]int, n)
		for i := range order {
			order[i] = i
		}
		sort.SliceStable(order, func(a, b int) bool { return scores[order[a]] > scores[order[b]] })
		for _, idx := range order[:flagged] {
			labels[idx] = true
		}
	}

	return labels, scores
}

// node is one tree node; leaves carry the size of the data they absorbed
type node struct {
	split       float64
	left, right *node
	size        int
}

func buildTree(data []float64, depth, maxDepth int, rng *rand.Rand) *node {
	if len(data) <= 1 || depth >= maxDepth {
		return &node{size: len(data)}
	}

	lo, hi := data[0], data[0]
	for _, v := range data[1:] {
		if v < lo {
			lo = v
		}
		if v > hi {
			hi = v
		}
	}
	if lo == hi {
		return &node{size: len(data)}
	}

	split := lo + rng.Float64()*(hi-lo)
	var left, right []float64
	for _, v := range data {
		if v < split {
			left = append(left, v)
		} else {
			right = append(right, v)
		}
	}

	return &node{
		split: split,
		left:  buildTree(left, depth+1, maxDepth, rng),
		right: buildTree(right, depth+1, maxDepth, rng),
	}
}

func pathLength(n *node, v float64, depth int) float64 {
	if n.left == nil {
		return float64(depth) + avgPathLength(n.size)
	}
	if v < n.split {
		return pathLength(n.left, v, depth+1)
	}
	return pathLength(n.right, v, depth+1)
}

// avgPathLength is c(n), the expected path length of an unsuccessful BST
// search, used to normalize tree depths
func avgPathLength(n int) float64 {
	if n <= 1 {
		return 0
	}
	h := math.Log(float64(n-1)) + 0.5772156649 // Euler-Mascheroni
	return 2*h - 2*float64(n-1)/float64(n)
}

func subsample(values []float64, psi int, rng *rand.Rand) []float64 {
	if psi >= len(values) {
		out := make([]float64, len(values))
		copy(out, values)
		return out
	}
	idx := rng.Perm(len(values))[:psi]
	out := make([]float64, psi)
	for i, j := range idx {
		out[i] = values[j]
	}
	return out
}
