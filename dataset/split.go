package dataset

import (
	"fmt"
	"math/rand"

	"github.com/ahmedtd/mlp/toolbox"
)

// Split shuffles the indices 0..n-1 and partitions them into disjoint training
// and testing sets, the latter holding round(n*testFraction) indices.
func Split(n int, testFraction float64, r *rand.Rand) (train, test []int, err error) {
	if n < 0 {
		return nil, nil, fmt.Errorf("invalid number of examples %d", n)
	}
	if testFraction < 0 || testFraction > 1 {
		return nil, nil, fmt.Errorf("test fraction %v is outside [0, 1]", testFraction)
	}

	perm := r.Perm(n)
	numTest := int(float64(n)*testFraction + 0.5)
	return perm[numTest:], perm[:numTest], nil
}

// Normalize min-max scales every feature column into [0, 1] in place.
// Constant columns become 0.
func Normalize(features [][]float64) {
	if len(features) == 0 {
		return
	}
	width := len(features[0])
	for j := 0; j < width; j++ {
		lo, hi := features[0][j], features[0][j]
		for _, x := range features {
			lo = min(lo, x[j])
			hi = max(hi, x[j])
		}
		for _, x := range features {
			if hi == lo {
				x[j] = 0
			} else {
				x[j] = (x[j] - lo) / (hi - lo)
			}
		}
	}
}

// Accuracy is the fraction of the indexed examples for which the network's
// first output, thresholded, matches the binary target.
func Accuracy(net *toolbox.Network, features [][]float64, targets []float64, indices []int, threshold float64) float64 {
	if len(indices) == 0 {
		return 0
	}
	correct := 0
	for _, k := range indices {
		predicted := net.Predict(features[k])[0] >= threshold
		if predicted == (targets[k] >= 0.5) {
			correct++
		}
	}
	return float64(correct) / float64(len(indices))
}
