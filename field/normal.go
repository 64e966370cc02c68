package field

import (
	"math"

	"github.com/AhmedAbdelaal2001/dreamfusionacc/types"
)

// Approximate density-field gradients by central differences, used as a
// normal proxy when no learned normal head is configured. Each axis is
// perturbed by +/- epsilon with the perturbed points clamped into the
// [-bound, bound] cube; this costs six density-only evaluations per point.
func (f *RadianceField) finiteDifferenceNormals(positions []types.Vec3) ([]types.Vec3, error) {
	n := len(positions)
	eps := f.opts.FiniteDiffEpsilon
	bound := f.opts.FiniteDiffBound

	normals := make([]types.Vec3, n)
	perturbed := make([]types.Vec3, n)

	for axis := 0; axis < 3; axis++ {
		var offset types.Vec3
		offset[axis] = eps

		for i, p := range positions {
			perturbed[i] = p.Add(offset).Clamp(-bound, bound)
		}
		pos, _, err := f.QueryDensity(perturbed)
		if err != nil {
			return nil, err
		}

		for i, p := range positions {
			perturbed[i] = p.Sub(offset).Clamp(-bound, bound)
		}
		neg, _, err := f.QueryDensity(perturbed)
		if err != nil {
			return nil, err
		}

		for i := 0; i < n; i++ {
			normals[i][axis] = 0.5 * (pos[i] - neg[i]) / eps
		}
	}

	return normals, nil
}

// Normalize v without risking division by zero: the squared length is
// clamped below at 1e-20 and any non-finite result collapses to the zero
// vector instead of propagating NaN.
func safeNormalize(v types.Vec3) types.Vec3 {
	sq := v.Dot(v)
	if sq < 1e-20 {
		sq = 1e-20
	}
	inv := 1.0 / float32(math.Sqrt(float64(sq)))

	out := v.Mul(inv)
	for axis := 0; axis < 3; axis++ {
		if math.IsNaN(float64(out[axis])) || math.IsInf(float64(out[axis]), 0) {
			out[axis] = 0
		}
	}
	return out
}
