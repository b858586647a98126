// Command nn-inference runs a forward pass through a small randomly
// initialized network and prints what every layer computed.
package main

import (
	"flag"
	"fmt"
	"log"
	"math/rand"
	"time"

	"github.com/ahmedtd/mlp/toolbox"
)

func main() {
	numInputs := flag.Int("num-inputs", 2, "Number of input features")
	numHidden := flag.Int("num-hidden", 3, "Number of hidden neurons")
	seed := flag.Int64("seed", time.Now().UnixNano(), "Seed for weight initialization")
	flag.Parse()

	inputs := []float64{0.5, 0.8}
	for len(inputs) < *numInputs {
		inputs = append(inputs, 0)
	}
	inputs = inputs[:*numInputs]

	r := rand.New(rand.NewSource(*seed))
	net := toolbox.MakeNetwork([]int{*numInputs, *numHidden, 1}, toolbox.Sigmoid, r)

	outputs := net.Forward(inputs)

	fmt.Println("Neural Network Structure:")
	fmt.Print(net)

	fmt.Printf("\nInput values: %v\n", inputs)

	fmt.Println("\nHidden Layer Activations:")
	for j, a := range outputs[1] {
		fmt.Printf("Neuron %d: %.4f\n", j+1, a)
	}

	fmt.Println("\nOutput Layer Activation:")
	fmt.Printf("Output Neuron: %.4f\n", outputs[2][0])

	log.Printf("seed=%d", *seed)
}
