package network

import "errors"

var (
	ErrInvalidConfig = errors.New("network: invalid layer configuration")
	ErrInputSize     = errors.New("network: input length is not a multiple of the declared input width")
	ErrUnknownOutAct = errors.New("network: unknown output activation")
)

// Output activation applied after the final layer.
type Activation uint8

const (
	// Raw pre-activation output.
	None Activation = iota

	// Logistic squash into (0,1).
	Sigmoid
)

// The Network interface is implemented by the small fused MLP heads of the
// radiance field. Inputs and outputs are flat row-major batch buffers; n is
// the number of rows. Implementations never mutate their own weights during
// Apply, so concurrent evaluation is safe as long as no external training
// step is updating parameters at the same time.
type Network interface {
	Apply(in []float32, n int) ([]float32, error)

	InputDims() int
	OutputDims() int

	// Number of learned parameters owned by the network.
	ParameterCount() int
}
