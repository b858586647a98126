package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log"
	"math/rand"
	"os"

	"github.com/ahmedtd/mlp/toolbox"
	"github.com/google/subcommands"
)

type InspectCommand struct {
	layerSizes string
	activation string
	seed       int64
	inputs     string
}

var _ subcommands.Command = (*InspectCommand)(nil)

func (*InspectCommand) Name() string {
	return "inspect"
}

func (*InspectCommand) Synopsis() string {
	return "Print the structure and per-layer activations of a freshly initialized network"
}

func (*InspectCommand) Usage() string {
	return ``
}

func (c *InspectCommand) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.layerSizes, "layer-sizes", "2,3,1", "Comma-separated layer sizes, starting with the input width")
	f.StringVar(&c.activation, "activation", "sigmoid", "Activation function for every layer (sigmoid, relu, tanh)")
	f.Int64Var(&c.seed, "seed", 12345, "Seed for weight initialization")
	f.StringVar(&c.inputs, "inputs", "0.5,0.8", "Comma-separated input vector")
}

func (c *InspectCommand) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if err := c.executeErr(ctx, os.Stdout); err != nil {
		log.Printf("Error: %v", err)
		return subcommands.ExitFailure
	}
	return subcommands.ExitSuccess
}

func (c *InspectCommand) executeErr(ctx context.Context, w io.Writer) error {
	sizes, err := parseSizes(c.layerSizes)
	if err != nil {
		return fmt.Errorf("while parsing --layer-sizes: %w", err)
	}
	if len(sizes) < 2 {
		return fmt.Errorf("--layer-sizes needs an input width and at least one layer, got %v", sizes)
	}
	activation, err := toolbox.ParseActivationType(c.activation)
	if err != nil {
		return fmt.Errorf("while parsing --activation: %w", err)
	}
	x, err := parseFloats(c.inputs)
	if err != nil {
		return fmt.Errorf("while parsing --inputs: %w", err)
	}
	if len(x) != sizes[0] {
		return fmt.Errorf("got %d inputs for a network of input width %d", len(x), sizes[0])
	}

	net := toolbox.MakeNetwork(sizes, activation, rand.New(rand.NewSource(c.seed)))
	writeReport(w, net, x)
	return nil
}

func writeReport(w io.Writer, net *toolbox.Network, x []float64) {
	outputs := net.Forward(x)

	fmt.Fprintf(w, "Neural Network Structure:\n%v\n", net)
	fmt.Fprintf(w, "Input values: %v\n", outputs[0])
	for l := 1; l < len(outputs); l++ {
		fmt.Fprintf(w, "\nLayer %d Activations:\n", l)
		for j, a := range outputs[l] {
			fmt.Fprintf(w, "Neuron %d: %.4f\n", j+1, a)
		}
	}
}
