package main

import (
	"flag"
	"log"
	"math"
	"math/rand"

	"github.com/ahmedtd/mlp/toolbox"
)

func main() {
	numExamples := flag.Int("examples", 1000, "Number of generated points")
	alpha := flag.Float64("learning-rate", 0.05, "Gradient descent step size")
	epochs := flag.Int("epochs", 200, "Number of passes over the data set")
	flag.Parse()

	x, y := generateDataset(*numExamples)

	num0s := 0
	num1s := 0
	for k := range y {
		if y[k] == 1 {
			num1s++
		} else {
			num0s++
		}
	}
	log.Printf("original data set has %d 1s and %d 0s", num1s, num0s)

	r := rand.New(rand.NewSource(12345))
	net := toolbox.MakeNetwork([]int{2, 1}, toolbox.Sigmoid, r)
	n := net.Layers[0].Neurons[0]

	// Start the hand-coded model from the same point so the two can be
	// compared parameter by parameter.
	m := &Model{W1: n.Weights[0], W2: n.Weights[1], B: n.Bias}

	for e := 0; e < *epochs; e++ {
		for k := range x {
			net.Train(x[k], []float64{y[k]}, *alpha)
		}
		m.LearnEpoch(x, y, *alpha)

		if e%50 == 0 {
			log.Printf("epoch=%v toolbox-loss=%v hand-loss=%v", e, netLoss(net, x, y), m.loss(x, y))
		}
	}

	log.Printf("toolbox learned model W=%v B=%v loss=%v", n.Weights, n.Bias, netLoss(net, x, y))
	log.Printf("toolbox learned decision boundary x1=%v*x0+%v", -n.Weights[0]/n.Weights[1], -n.Bias/n.Weights[1])

	toolboxNumMispredictions := 0
	for k := range x {
		prediction := 0.0
		if net.Predict(x[k])[0] > 0.5 {
			prediction = 1.0
		}
		if prediction != y[k] {
			toolboxNumMispredictions++
		}
	}
	log.Printf("toolbox had %d mispredictions (%v%%)", toolboxNumMispredictions, float64(toolboxNumMispredictions)/float64(len(x))*100)

	log.Printf("Learned model W1=%v W2=%v B=%v", m.W1, m.W2, m.B)
	log.Printf("Learned decision boundary x2=%v*x1+%v", -m.W1/m.W2, -m.B/m.W2)

	handNumMispredictions := 0
	for k := range x {
		if m.predict(x[k]) != y[k] {
			handNumMispredictions++
		}
	}
	log.Printf("hand had %d mispredictions (%v%%)", handNumMispredictions, float64(handNumMispredictions)/float64(len(x))*100)

	log.Printf("parameter disagreement dW1=%v dW2=%v dB=%v", n.Weights[0]-m.W1, n.Weights[1]-m.W2, n.Bias-m.B)
}

func netLoss(net *toolbox.Network, x [][]float64, y []float64) float64 {
	ys := make([][]float64, len(y))
	for k := range y {
		ys[k] = []float64{y[k]}
	}
	return net.Loss(toolbox.BinaryCrossEntropy, x, ys)
}

func generateDataset(m int) (x [][]float64, y []float64) {
	r := rand.New(rand.NewSource(12345))

	for i := 0; i < m; i++ {
		// Generate a point and classify it according to the "true"
		// distribution.
		x1 := r.Float64()
		x2 := r.Float64()
		y1 := 0.0
		if x2 > 1.0*x1+0.0 {
			y1 = 1.0
		}

		x = append(x, []float64{x1, x2})
		y = append(y, y1)
	}

	return x, y
}

type Model struct {
	W1, W2 float64
	B      float64
}

func sigmoid(z float64) float64 {
	return 1 / (1 + math.Exp(-z))
}

func (m *Model) predict(x []float64) float64 {
	if sigmoid(m.W1*x[0]+m.W2*x[1]+m.B) > 0.5 {
		return 1
	}
	return 0
}

func (m *Model) loss(x [][]float64, y []float64) float64 {
	cost := float64(0)
	for i := range x {
		pred := sigmoid(m.W1*x[i][0] + m.W2*x[i][1] + m.B)
		if y[i] == 1.0 {
			cost += -math.Log(pred)
		} else {
			cost += -math.Log(1 - pred)
		}
	}
	return cost / float64(len(x))
}

// LearnEpoch takes one stochastic gradient descent step per example.
func (m *Model) LearnEpoch(x [][]float64, y []float64, learningRate float64) {
	for i := range x {
		pred := sigmoid(m.W1*x[i][0] + m.W2*x[i][1] + m.B)
		m.W1 -= learningRate * (pred - y[i]) * x[i][0]
		m.W2 -= learningRate * (pred - y[i]) * x[i][1]
		m.B -= learningRate * (pred - y[i])
	}
}
