package toolbox

import (
	"fmt"
	"math"
)

type ActivationType int

const (
	Sigmoid ActivationType = iota
	ReLU
	Tanh
)

func (a ActivationType) String() string {
	switch a {
	case Sigmoid:
		return "sigmoid"
	case ReLU:
		return "relu"
	case Tanh:
		return "tanh"
	default:
		return fmt.Sprintf("ActivationType(%d)", int(a))
	}
}

// ParseActivationType maps a flag value like "sigmoid" back to its
// ActivationType.
func ParseActivationType(s string) (ActivationType, error) {
	for _, a := range []ActivationType{Sigmoid, ReLU, Tanh} {
		if a.String() == s {
			return a, nil
		}
	}
	return 0, fmt.Errorf("unknown activation function %q", s)
}

// Activate applies the activation function to the linear output z.
func (a ActivationType) Activate(z float64) float64 {
	switch a {
	case Sigmoid:
		return 1 / (1 + math.Exp(-z))
	case ReLU:
		return math.Max(z, 0)
	case Tanh:
		return math.Tanh(z)
	default:
		panic("unhandled activation function")
	}
}

// Derivative evaluates the derivative of the activation function in terms of
// its already-activated output y, not the linear output that produced it.
// Backward depends on this.
func (a ActivationType) Derivative(y float64) float64 {
	switch a {
	case Sigmoid:
		return y * (1 - y)
	case ReLU:
		if y > 0 {
			return 1
		}
		return 0
	case Tanh:
		return 1 - y*y
	default:
		panic("unhandled activation function")
	}
}
