package field

import "math"

// Gradient clamp threshold for the truncated exponential.
const truncExpGradClamp = 15.0

// Density activation applied to the biased pre-activation. Must map any
// finite input to a non-negative value.
type DensityActivation func(float32) float32

// The default density activation: softplus shifted one unit right,
// log(1 + exp(x-1)), evaluated in its numerically stable form.
func SoftplusShifted(x float32) float32 {
	return softplus(x - 1.0)
}

func softplus(x float32) float32 {
	// For large x the direct form overflows; x + log1p(exp(-x)) does not.
	if x > 20 {
		return x + float32(math.Log1p(math.Exp(float64(-x))))
	}
	return float32(math.Log1p(math.Exp(float64(x))))
}

// Truncated exponential forward rule. Alternative density activation whose
// gradient is clamped for numerical stability; the forward pass is the plain
// exponential.
func TruncExp(x float32) float32 {
	return float32(math.Exp(float64(x)))
}

// Truncated exponential backward rule: the gradient is exp(min(x, 15)) so
// large pre-activations cannot overflow the parameter update. Register this
// with whatever gradient machinery consumes the field's density.
func TruncExpGrad(x float32) float32 {
	if x > truncExpGradClamp {
		x = truncExpGradClamp
	}
	return float32(math.Exp(float64(x)))
}
