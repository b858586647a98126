package toolbox

import (
	"fmt"
	"math/rand"
	"strings"
)

type Layer struct {
	Neurons []*Neuron
}

func MakeDense(activation ActivationType, inputSize, outputSize int, r *rand.Rand) *Layer {
	l := &Layer{
		Neurons: make([]*Neuron, outputSize),
	}
	for i := range l.Neurons {
		l.Neurons[i] = MakeNeuron(inputSize, activation, r)
	}
	return l
}

func (lay *Layer) InputSize() int {
	return len(lay.Neurons[0].Weights)
}

func (lay *Layer) OutputSize() int {
	return len(lay.Neurons)
}

// Apply the layer in the forward direction.
//
// x (input) is the layer input.  Length lay.InputSize()
// a (output) is the layer's activated output.  Length lay.OutputSize()
func (lay *Layer) Apply(x, a []float64) {
	if len(a) != len(lay.Neurons) {
		panic("dimension mismatch")
	}
	for i, n := range lay.Neurons {
		a[i] = n.Activate(x)
	}
}

type Network struct {
	Layers []*Layer
}

// MakeNetwork builds one dense layer for each consecutive pair of layerSizes,
// all sharing the same activation function.  layerSizes[0] is the input width.
func MakeNetwork(layerSizes []int, activation ActivationType, r *rand.Rand) *Network {
	if len(layerSizes) < 2 {
		panic(fmt.Sprintf("a network needs at least 2 layer sizes, got %v", layerSizes))
	}
	for _, s := range layerSizes {
		if s <= 0 {
			panic(fmt.Sprintf("invalid layer sizes: %v", layerSizes))
		}
	}

	net := &Network{
		Layers: make([]*Layer, 0, len(layerSizes)-1),
	}
	for l := 1; l < len(layerSizes); l++ {
		net.Layers = append(net.Layers, MakeDense(activation, layerSizes[l-1], layerSizes[l], r))
	}
	return net
}

func (net *Network) InputSize() int {
	return net.Layers[0].InputSize()
}

func (net *Network) OutputSize() int {
	return net.Layers[len(net.Layers)-1].OutputSize()
}

// LayerSizes returns the sizes the network would be built from with
// MakeNetwork.
func (net *Network) LayerSizes() []int {
	sizes := []int{net.InputSize()}
	for _, lay := range net.Layers {
		sizes = append(sizes, lay.OutputSize())
	}
	return sizes
}

// Forward returns the output of every layer boundary, starting with (a copy
// of) the raw input and ending with the network output.  outputs[l] is the
// input that fed net.Layers[l].
func (net *Network) Forward(inputs []float64) [][]float64 {
	if len(inputs) != net.InputSize() {
		panic(fmt.Sprintf("dimension mismatch: network takes %d inputs, got %d", net.InputSize(), len(inputs)))
	}

	outputs := make([][]float64, 0, len(net.Layers)+1)
	outputs = append(outputs, append([]float64(nil), inputs...))

	for l, lay := range net.Layers {
		a := make([]float64, lay.OutputSize())
		lay.Apply(outputs[l], a)
		outputs = append(outputs, a)
	}

	return outputs
}

func (net *Network) Predict(inputs []float64) []float64 {
	outputs := net.Forward(inputs)
	return outputs[len(outputs)-1]
}

// Backward computes the error signal of every neuron, indexed in parallel with
// net.Layers.  outputs must come from Forward.
//
// The output layer error is the raw residual output - target, without the
// output activation's derivative.  That is the exact gradient of binary
// cross-entropy through a sigmoid output; with other pairings it is only a
// scaled approximation.
func (net *Network) Backward(targets []float64, outputs [][]float64) [][]float64 {
	if len(outputs) != len(net.Layers)+1 {
		panic(fmt.Sprintf("expected %d layer outputs, got %d", len(net.Layers)+1, len(outputs)))
	}
	last := len(net.Layers) - 1
	if len(targets) != len(outputs[last+1]) {
		panic(fmt.Sprintf("dimension mismatch: network has %d outputs, got %d targets", len(outputs[last+1]), len(targets)))
	}

	errors := make([][]float64, len(net.Layers))

	errors[last] = make([]float64, len(targets))
	for j := range targets {
		errors[last][j] = outputs[last+1][j] - targets[j]
	}

	for l := last - 1; l >= 0; l-- {
		lay := net.Layers[l]
		next := net.Layers[l+1]
		errors[l] = make([]float64, lay.OutputSize())
		for j, n := range lay.Neurons {
			var sum float64
			for k, downstream := range next.Neurons {
				sum += errors[l+1][k] * downstream.Weights[j]
			}
			errors[l][j] = sum * n.ActivationDerivative(outputs[l+1][j])
		}
	}

	return errors
}

// UpdateWeights takes one gradient descent step.  Each layer's weight gradient
// is its error times the input that fed it during the forward pass that
// produced outputs.
func (net *Network) UpdateWeights(outputs, errors [][]float64, learningRate float64) {
	if len(errors) != len(net.Layers) {
		panic(fmt.Sprintf("expected %d error vectors, got %d", len(net.Layers), len(errors)))
	}
	for l, lay := range net.Layers {
		x := outputs[l]
		for j, n := range lay.Neurons {
			if len(x) != len(n.Weights) {
				panic("dimension mismatch")
			}
			delta := learningRate * errors[l][j]
			n.Bias -= delta
			for k := range n.Weights {
				n.Weights[k] -= delta * x[k]
			}
		}
	}
}

// Train runs one step of gradient descent on a single example.
func (net *Network) Train(inputs, targets []float64, learningRate float64) {
	outputs := net.Forward(inputs)
	errors := net.Backward(targets, outputs)
	net.UpdateWeights(outputs, errors, learningRate)
}

func (net *Network) String() string {
	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Input layer: %d inputs\n", net.InputSize()))
	for l, lay := range net.Layers {
		kind := "Hidden"
		if l == len(net.Layers)-1 {
			kind = "Output"
		}
		sb.WriteString(fmt.Sprintf("%s layer %d: %d neurons (%v)\n", kind, l+1, lay.OutputSize(), lay.Neurons[0].Activation))
	}
	return sb.String()
}
