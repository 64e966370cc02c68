package network

import (
	"math"
	"math/rand"

	"gonum.org/v1/gonum/mat"
)

// MLP configuration. Matches the shape surface of the fused GPU networks:
// a stack of bias-free fully connected layers with ReLU hidden activations
// and a declared output activation.
type MLPConfig struct {
	InputDims  int
	OutputDims int

	// Hidden layer width and count.
	HiddenNeurons int
	HiddenLayers  int

	OutputActivation Activation

	// Seed for weight initialization.
	Seed int64
}

// A CPU reference network backed by gonum dense matrices. Weights are stored
// per layer as (fanIn x fanOut) so a batch application is a chain of matrix
// products.
type MLP struct {
	inDims  int
	outDims int
	outAct  Activation

	weights []*mat.Dense
}

// Create an MLP with Glorot-uniform initialized weights.
func NewMLP(cfg MLPConfig) (*MLP, error) {
	if cfg.InputDims < 1 || cfg.OutputDims < 1 || cfg.HiddenNeurons < 1 || cfg.HiddenLayers < 0 {
		return nil, ErrInvalidConfig
	}
	if cfg.OutputActivation != None && cfg.OutputActivation != Sigmoid {
		return nil, ErrUnknownOutAct
	}

	// Layer fan-in/fan-out chain: input -> hidden^n -> output.
	widths := make([]int, 0, cfg.HiddenLayers+2)
	widths = append(widths, cfg.InputDims)
	for i := 0; i < cfg.HiddenLayers; i++ {
		widths = append(widths, cfg.HiddenNeurons)
	}
	widths = append(widths, cfg.OutputDims)

	rng := rand.New(rand.NewSource(cfg.Seed))
	nn := &MLP{
		inDims:  cfg.InputDims,
		outDims: cfg.OutputDims,
		outAct:  cfg.OutputActivation,
		weights: make([]*mat.Dense, len(widths)-1),
	}

	for layer := 0; layer < len(widths)-1; layer++ {
		fanIn, fanOut := widths[layer], widths[layer+1]
		limit := math.Sqrt(6.0 / float64(fanIn+fanOut))

		data := make([]float64, fanIn*fanOut)
		for i := range data {
			data[i] = (rng.Float64()*2.0 - 1.0) * limit
		}
		nn.weights[layer] = mat.NewDense(fanIn, fanOut, data)
	}

	return nn, nil
}

// Apply the network to a flat row-major batch of n rows.
func (nn *MLP) Apply(in []float32, n int) ([]float32, error) {
	if len(in) != n*nn.inDims {
		return nil, ErrInputSize
	}

	data := make([]float64, len(in))
	for i, v := range in {
		data[i] = float64(v)
	}
	x := mat.NewDense(n, nn.inDims, data)

	for layer, w := range nn.weights {
		_, fanOut := w.Dims()
		y := mat.NewDense(n, fanOut, nil)
		y.Mul(x, w)

		if layer < len(nn.weights)-1 {
			y.Apply(relu, y)
		}
		x = y
	}

	switch nn.outAct {
	case Sigmoid:
		x.Apply(sigmoid, x)
	case None:
	}

	raw := x.RawMatrix()
	out := make([]float32, n*nn.outDims)
	for i, v := range raw.Data {
		out[i] = float32(v)
	}
	return out, nil
}

func relu(_, _ int, v float64) float64 {
	if v < 0 {
		return 0
	}
	return v
}

func sigmoid(_, _ int, v float64) float64 {
	return 1.0 / (1.0 + math.Exp(-v))
}

func (nn *MLP) InputDims() int {
	return nn.inDims
}

func (nn *MLP) OutputDims() int {
	return nn.outDims
}

func (nn *MLP) ParameterCount() int {
	var total int
	for _, w := range nn.weights {
		r, c := w.Dims()
		total += r * c
	}
	return total
}
