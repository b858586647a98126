// Command titanic trains a multilayer perceptron to predict survival on the
// Titanic passenger list.
//
// To train: `go run ./cmd/titanic train --data-file=cmd/titanic/data/train.csv`
//
// To inspect: `go run ./cmd/titanic inspect --layer-sizes=2,3,1 --inputs=0.5,0.8`
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"math/rand"
	"os"
	"runtime/pprof"
	"strconv"
	"strings"
	"time"

	"github.com/ahmedtd/mlp/dataset"
	"github.com/ahmedtd/mlp/toolbox"
	"github.com/google/subcommands"
)

func main() {
	subcommands.Register(subcommands.HelpCommand(), "")
	subcommands.Register(subcommands.FlagsCommand(), "")
	subcommands.Register(subcommands.CommandsCommand(), "")

	subcommands.Register(&TrainCommand{}, "")
	subcommands.Register(&InspectCommand{}, "")

	flag.Parse()
	ctx := context.Background()
	os.Exit(int(subcommands.Execute(ctx)))
}

type TrainCommand struct {
	dataFile string

	hiddenSizes  string
	activation   string
	epochs       int
	learningRate float64
	seed         int64
	testFraction float64
	normalize    bool

	cpuProfileFile string
}

var _ subcommands.Command = (*TrainCommand)(nil)

func (*TrainCommand) Name() string {
	return "train"
}

func (*TrainCommand) Synopsis() string {
	return "Train the model"
}

func (*TrainCommand) Usage() string {
	return ``
}

func (c *TrainCommand) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.dataFile, "data-file", "train.csv", "Path to the Titanic CSV or an npz file holding x and y arrays")

	f.StringVar(&c.hiddenSizes, "hidden", "8", "Comma-separated hidden layer sizes")
	f.StringVar(&c.activation, "activation", "sigmoid", "Activation function for every layer (sigmoid, relu, tanh)")
	f.IntVar(&c.epochs, "epochs", 100, "Number of passes over the training set")
	f.Float64Var(&c.learningRate, "learning-rate", 0.01, "Gradient descent step size")
	f.Int64Var(&c.seed, "seed", 12345, "Seed for weight initialization and shuffling")
	f.Float64Var(&c.testFraction, "test-fraction", 0.2, "Fraction of examples held out for testing")
	f.BoolVar(&c.normalize, "normalize", true, "Min-max scale every feature into [0, 1]")

	f.StringVar(&c.cpuProfileFile, "cpu-profile", "", "Write a CPU profile")
}

func (c *TrainCommand) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if err := c.executeErr(ctx); err != nil {
		log.Printf("Error: %v", err)
		return subcommands.ExitFailure
	}
	return subcommands.ExitSuccess
}

func (c *TrainCommand) executeErr(ctx context.Context) error {
	if c.cpuProfileFile != "" {
		f, err := os.Create(c.cpuProfileFile)
		if err != nil {
			return fmt.Errorf("while creating CPU profile file: %w", err)
		}
		defer f.Close()
		if err := pprof.StartCPUProfile(f); err != nil {
			return fmt.Errorf("while starting CPU profile: %w", err)
		}
		defer pprof.StopCPUProfile()
	}

	activation, err := toolbox.ParseActivationType(c.activation)
	if err != nil {
		return fmt.Errorf("while parsing --activation: %w", err)
	}
	hidden, err := parseSizes(c.hiddenSizes)
	if err != nil {
		return fmt.Errorf("while parsing --hidden: %w", err)
	}

	xs, ys, err := dataset.Load(c.dataFile)
	if err != nil {
		return fmt.Errorf("while loading data set: %w", err)
	}
	if len(xs) == 0 {
		return fmt.Errorf("data set %s is empty", c.dataFile)
	}
	if c.normalize {
		dataset.Normalize(xs)
	}

	r := rand.New(rand.NewSource(c.seed))

	trainIdx, testIdx, err := dataset.Split(len(xs), c.testFraction, r)
	if err != nil {
		return fmt.Errorf("while splitting data set: %w", err)
	}

	log.Printf("Data loaded: %d examples of width %d, %d for training and %d for testing", len(xs), len(xs[0]), len(trainIdx), len(testIdx))

	layerSizes := append([]int{len(xs[0])}, hidden...)
	layerSizes = append(layerSizes, 1)
	net := toolbox.MakeNetwork(layerSizes, activation, r)

	log.Printf("Network:\n%v", net)

	for epoch := 0; epoch < c.epochs; epoch++ {
		if err := ctx.Err(); err != nil {
			return err
		}

		start := time.Now()

		// Present the training examples in a different order every epoch.
		r.Shuffle(len(trainIdx), func(i, j int) {
			trainIdx[i], trainIdx[j] = trainIdx[j], trainIdx[i]
		})
		for _, k := range trainIdx {
			net.Train(xs[k], []float64{ys[k]}, c.learningRate)
		}

		elapsed := time.Since(start)

		log.Printf("epoch %d training-loss=%f training-pct=%.1f testing-loss=%f testing-pct=%.1f elapsed=%v",
			epoch,
			loss(net, xs, ys, trainIdx),
			dataset.Accuracy(net, xs, ys, trainIdx, 0.5)*100,
			loss(net, xs, ys, testIdx),
			dataset.Accuracy(net, xs, ys, testIdx, 0.5)*100,
			elapsed,
		)
	}

	return nil
}

func loss(net *toolbox.Network, xs [][]float64, ys []float64, indices []int) float64 {
	subX := make([][]float64, len(indices))
	subY := make([][]float64, len(indices))
	for i, k := range indices {
		subX[i] = xs[k]
		subY[i] = []float64{ys[k]}
	}
	return net.Loss(toolbox.BinaryCrossEntropy, subX, subY)
}

func parseSizes(s string) ([]int, error) {
	if strings.TrimSpace(s) == "" {
		return nil, nil
	}
	var sizes []int
	for _, field := range strings.Split(s, ",") {
		n, err := strconv.Atoi(strings.TrimSpace(field))
		if err != nil {
			return nil, fmt.Errorf("while parsing layer size %q: %w", field, err)
		}
		if n <= 0 {
			return nil, fmt.Errorf("layer size %d is not positive", n)
		}
		sizes = append(sizes, n)
	}
	return sizes, nil
}

func parseFloats(s string) ([]float64, error) {
	var vs []float64
	for _, field := range strings.Split(s, ",") {
		v, err := strconv.ParseFloat(strings.TrimSpace(field), 64)
		if err != nil {
			return nil, fmt.Errorf("while parsing %q: %w", field, err)
		}
		vs = append(vs, v)
	}
	return vs, nil
}
