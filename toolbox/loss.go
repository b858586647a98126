package toolbox

import (
	"fmt"
	"math"
)

type LossFunctionType int

const (
	BinaryCrossEntropy LossFunctionType = iota
	MeanSquaredError
)

// Loss of a single example.
//
// y is the ground truth output.
// a is the network's output.
func Loss(lossFn LossFunctionType, y, a []float64) float64 {
	if len(y) != len(a) {
		panic("y and a must have same length")
	}

	loss := float64(0)
	switch lossFn {
	case BinaryCrossEntropy:
		for i := range a {
			// Clamp to make sure the loss is finite.
			p := math.Min(math.Max(a[i], 1e-7), 1-1e-7)
			loss += -(y[i]*math.Log(p) + (1-y[i])*math.Log(1-p))
		}
	case MeanSquaredError:
		for i := range a {
			diff := a[i] - y[i]
			loss += diff * diff / 2
		}
	default:
		panic("unimplemented loss function type")
	}
	return loss / float64(len(a))
}

// Loss is the mean per-example loss of the network over a set of examples.
func (net *Network) Loss(lossFn LossFunctionType, xs, ys [][]float64) float64 {
	if len(xs) != len(ys) {
		panic(fmt.Sprintf("got %d inputs but %d targets", len(xs), len(ys)))
	}
	if len(xs) == 0 {
		return 0
	}

	loss := float64(0)
	for k := range xs {
		loss += Loss(lossFn, ys[k], net.Predict(xs[k]))
	}
	return loss / float64(len(xs))
}
