package encoder

import (
	"errors"

	"github.com/AhmedAbdelaal2001/dreamfusionacc/types"
)

var (
	ErrInvalidDegree = errors.New("encoder: spherical harmonics degree must be between 1 and 4")
	ErrInvalidConfig = errors.New("encoder: invalid hash grid configuration")
)

// The Encoder interface is implemented by all positional/directional feature
// encoders. Implementations are differentiable black boxes as far as the
// field is concerned; the CPU reference backends in this package can be
// swapped for GPU-accelerated ones without touching the field logic.
type Encoder interface {
	// Encode a batch of points into a flat feature buffer of
	// len(points)*OutputDims() values, laid out row-major per point.
	Encode(points []types.Vec3) ([]float32, error)

	// Width of the feature vector produced for each input point.
	OutputDims() int

	// Number of learned parameters owned by the encoder.
	ParameterCount() int
}
