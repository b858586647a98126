package toolbox

import (
	"math/rand"
	"testing"
)

func TestMakeNeuronInitRange(t *testing.T) {
	r := rand.New(rand.NewSource(12345))
	for i := 0; i < 100; i++ {
		n := MakeNeuron(7, Tanh, r)
		if len(n.Weights) != 7 {
			t.Fatalf("len(Weights) = %d; want 7", len(n.Weights))
		}
		if n.Activation != Tanh {
			t.Errorf("Activation = %v; want %v", n.Activation, Tanh)
		}
		for k, w := range n.Weights {
			if w < -1 || w >= 1 {
				t.Errorf("Weights[%d] = %v; want in [-1, 1)", k, w)
			}
		}
		if n.Bias < -1 || n.Bias >= 1 {
			t.Errorf("Bias = %v; want in [-1, 1)", n.Bias)
		}
	}
}

func TestNeuronActivate(t *testing.T) {
	n := &Neuron{
		Activation: ReLU,
		Weights:    []float64{0.5, -1, 2},
		Bias:       0.25,
	}

	// 0.5*2 - 1*1 + 2*0.5 + 0.25
	if got := n.Activate([]float64{2, 1, 0.5}); got != 1.25 {
		t.Errorf("Activate = %v; want 1.25", got)
	}
	// Negative linear output is clipped by ReLU.
	if got := n.Activate([]float64{0, 1, 0}); got != 0 {
		t.Errorf("Activate = %v; want 0", got)
	}
	if got := n.ActivationDerivative(1.25); got != 1 {
		t.Errorf("ActivationDerivative(1.25) = %v; want 1", got)
	}
}

func TestNeuronActivateLengthMismatch(t *testing.T) {
	n := MakeNeuron(3, Sigmoid, rand.New(rand.NewSource(1)))
	mustPanic(t, "Activate with too few inputs", func() { n.Activate([]float64{1, 2}) })
	mustPanic(t, "Activate with too many inputs", func() { n.Activate([]float64{1, 2, 3, 4}) })
}
