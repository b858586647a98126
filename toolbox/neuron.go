package toolbox

import (
	"fmt"
	"math/rand"

	"gonum.org/v1/gonum/floats"
)

type Neuron struct {
	Activation ActivationType

	Weights []float64 // One per input
	Bias    float64
}

// MakeNeuron draws numInputs weights and the bias independently from the
// uniform distribution over [-1, 1).
func MakeNeuron(numInputs int, activation ActivationType, r *rand.Rand) *Neuron {
	n := &Neuron{
		Activation: activation,
		Weights:    make([]float64, numInputs),
	}
	for k := range n.Weights {
		n.Weights[k] = uniformInit(r)
	}
	n.Bias = uniformInit(r)
	return n
}

func uniformInit(r *rand.Rand) float64 {
	return 2*r.Float64() - 1
}

// Activate computes the activated output of the neuron for the given inputs.
func (n *Neuron) Activate(inputs []float64) float64 {
	if len(inputs) != len(n.Weights) {
		panic(fmt.Sprintf("dimension mismatch: neuron has %d weights, got %d inputs", len(n.Weights), len(inputs)))
	}
	z := floats.Dot(n.Weights, inputs) + n.Bias
	return n.Activation.Activate(z)
}

// ActivationDerivative is the derivative of the neuron's activation function,
// evaluated at an output previously returned by Activate.
func (n *Neuron) ActivationDerivative(output float64) float64 {
	return n.Activation.Derivative(output)
}
