package main

import (
	"flag"
	"fmt"
	"log"
	"math/rand"
	"os"

	"github.com/ahmedtd/mlp/toolbox"
)

var truthTables = map[string][]float64{
	"and": {0, 0, 0, 1},
	"or":  {0, 1, 1, 1},
	"xor": {0, 1, 1, 0},
}

func main() {
	gate := flag.String("gate", "and", "Gate to learn (and, or, xor)")
	hidden := flag.Int("hidden", 0, "Hidden layer size; 0 for no hidden layer")
	activation := flag.String("activation", "sigmoid", "Activation function (sigmoid, relu, tanh)")
	alpha := flag.Float64("learning-rate", 0.5, "Gradient descent step size")
	epochs := flag.Int("epochs", 5000, "Number of passes over the truth table")
	seed := flag.Int64("seed", 12345, "Seed for weight initialization")
	flag.Parse()

	if err := run(*gate, *hidden, *activation, *alpha, *epochs, *seed); err != nil {
		log.Printf("Error: %v", err)
		os.Exit(1)
	}
}

func run(gate string, hidden int, activationName string, alpha float64, epochs int, seed int64) error {
	table, ok := truthTables[gate]
	if !ok {
		return fmt.Errorf("unknown gate %q", gate)
	}
	activation, err := toolbox.ParseActivationType(activationName)
	if err != nil {
		return fmt.Errorf("while parsing --activation: %w", err)
	}

	xs := [][]float64{{0, 0}, {0, 1}, {1, 0}, {1, 1}}
	ys := make([][]float64, len(table))
	for k, v := range table {
		ys[k] = []float64{v}
	}

	sizes := []int{2, 1}
	if hidden > 0 {
		sizes = []int{2, hidden, 1}
	}
	net := toolbox.MakeNetwork(sizes, activation, rand.New(rand.NewSource(seed)))

	for e := 0; e < epochs; e++ {
		for k := range xs {
			net.Train(xs[k], ys[k], alpha)
		}
		if e%1000 == 0 {
			log.Printf("epoch=%v loss=%v", e, net.Loss(toolbox.BinaryCrossEntropy, xs, ys))
		}
	}

	log.Printf("final loss=%v", net.Loss(toolbox.BinaryCrossEntropy, xs, ys))
	for k := range xs {
		log.Printf("%s(%v, %v) = %.4f (want %v)", gate, xs[k][0], xs[k][1], net.Predict(xs[k])[0], ys[k][0])
	}
	return nil
}
