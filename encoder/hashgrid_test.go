package encoder

import (
	"math"
	"testing"

	"github.com/AhmedAbdelaal2001/dreamfusionacc/types"
)

func TestHashGridDims(t *testing.T) {
	grid, err := NewHashGrid(HashGridConfig{})
	if err != nil {
		t.Fatal(err)
	}

	// Default configuration: 16 levels x 2 features.
	if grid.OutputDims() != 32 {
		t.Fatalf("expected 32 output dims; got %d", grid.OutputDims())
	}
	if exp := 16 * (1 << 19) * 2; grid.ParameterCount() != exp {
		t.Fatalf("expected %d parameters; got %d", exp, grid.ParameterCount())
	}
}

func TestHashGridInvalidConfig(t *testing.T) {
	_, err := NewHashGrid(HashGridConfig{PerLevelScale: 0.5})
	if err != ErrInvalidConfig {
		t.Fatalf("expected ErrInvalidConfig; got %v", err)
	}
}

func TestHashGridDeterminism(t *testing.T) {
	points := []types.Vec3{
		{0.1, 0.2, 0.3},
		{0.9, 0.5, 0.05},
	}

	a, err := NewHashGrid(HashGridConfig{Seed: 7})
	if err != nil {
		t.Fatal(err)
	}
	b, err := NewHashGrid(HashGridConfig{Seed: 7})
	if err != nil {
		t.Fatal(err)
	}

	outA, err := a.Encode(points)
	if err != nil {
		t.Fatal(err)
	}
	outB, err := b.Encode(points)
	if err != nil {
		t.Fatal(err)
	}

	for i := range outA {
		if outA[i] != outB[i] {
			t.Fatalf("same seed produced different features at %d: %g vs %g", i, outA[i], outB[i])
		}
	}

	c, err := NewHashGrid(HashGridConfig{Seed: 8})
	if err != nil {
		t.Fatal(err)
	}
	outC, err := c.Encode(points)
	if err != nil {
		t.Fatal(err)
	}

	var same = true
	for i := range outA {
		if outA[i] != outC[i] {
			same = false
			break
		}
	}
	if same {
		t.Fatal("different seeds produced identical features")
	}
}

func TestHashGridInitScale(t *testing.T) {
	grid, err := NewHashGrid(HashGridConfig{Seed: 3})
	if err != nil {
		t.Fatal(err)
	}

	out, err := grid.Encode([]types.Vec3{{0.25, 0.75, 0.5}})
	if err != nil {
		t.Fatal(err)
	}

	// Interpolation weights are convex, so features stay within the table
	// initialization magnitude.
	for i, v := range out {
		if float32(math.Abs(float64(v))) > tableInitScale {
			t.Fatalf("feature %d exceeds init magnitude: %g", i, v)
		}
	}
}

func TestHashGridContinuity(t *testing.T) {
	grid, err := NewHashGrid(HashGridConfig{Seed: 11})
	if err != nil {
		t.Fatal(err)
	}

	p := types.XYZ(0.31, 0.62, 0.47)
	q := p.Add(types.XYZ(1e-6, 0, 0))

	outP, err := grid.Encode([]types.Vec3{p})
	if err != nil {
		t.Fatal(err)
	}
	outQ, err := grid.Encode([]types.Vec3{q})
	if err != nil {
		t.Fatal(err)
	}

	for i := range outP {
		if diff := math.Abs(float64(outP[i] - outQ[i])); diff > 1e-4 {
			t.Fatalf("feature %d jumps by %g for an infinitesimal move", i, diff)
		}
	}
}
