package field

import (
	"math"
	"testing"
)

func TestSoftplusShifted(t *testing.T) {
	// Non-negative for arbitrary finite input, including values where the
	// naive exp form overflows.
	for _, x := range []float32{-1e6, -100, -1, 0, 1, 2, 100, 1e6} {
		if got := SoftplusShifted(x); got < 0 {
			t.Fatalf("expected non-negative softplus at %g; got %g", x, got)
		}
	}

	// softplus(1-1) = log(2).
	exp := float32(math.Log(2))
	if got := SoftplusShifted(1); float32(math.Abs(float64(got-exp))) > 1e-6 {
		t.Fatalf("expected %g at x=1; got %g", exp, got)
	}

	// Asymptotically linear for large input.
	if got := SoftplusShifted(101); float32(math.Abs(float64(got-100))) > 1e-4 {
		t.Fatalf("expected ~100 at x=101; got %g", got)
	}
}

func TestTruncExp(t *testing.T) {
	// Forward is the plain exponential.
	if got := TruncExp(0); got != 1 {
		t.Fatalf("expected exp(0)=1; got %g", got)
	}

	// The backward rule clamps the exponent at 15 so gradients at large
	// pre-activations stay finite and equal.
	g15 := TruncExpGrad(15)
	g50 := TruncExpGrad(50)
	if g15 != g50 {
		t.Fatalf("expected clamped gradient above 15: %g vs %g", g15, g50)
	}
	if math.IsInf(float64(g50), 0) {
		t.Fatal("expected finite clamped gradient")
	}

	// Below the clamp the backward rule matches the forward derivative.
	if TruncExpGrad(2) != TruncExp(2) {
		t.Fatalf("expected grad=exp below the clamp; got %g vs %g", TruncExpGrad(2), TruncExp(2))
	}
}
