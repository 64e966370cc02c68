package field

import "github.com/AhmedAbdelaal2001/dreamfusionacc/types"

// Lower clamp for the contraction derivative, keeping the local scale factor
// strictly positive for volumetric integrators.
const contractionDevEpsilon = 1e-6

// An axis-aligned bounding box describing the scene bounds of a field.
type AABB struct {
	Min types.Vec3
	Max types.Vec3
}

// Validate the bounds. Every axis must have positive extent; a degenerate
// axis would divide by zero in the domain mapping.
func (b AABB) Validate() error {
	for axis := 0; axis < 3; axis++ {
		if !(b.Max[axis] > b.Min[axis]) {
			return ErrInvalidBounds
		}
	}
	return nil
}

// Per-axis extent of the box.
func (b AABB) Extent() types.Vec3 {
	return b.Max.Sub(b.Min)
}

// Linearly map p into the unit cube defined by the bounds.
func (b AABB) Normalize(p types.Vec3) types.Vec3 {
	return p.Sub(b.Min).DivVec(b.Extent())
}

// Map an unbounded-scene position into the unit cube. The position is first
// rescaled so the bounds sit at [-1,1]; points inside the unit sphere pass
// through, points outside are radially contracted with a mapping that is
// norm-preserving at the boundary. The final /4+0.5 rescale places the whole
// (-inf, inf) range inside [0,1].
func ContractToUnisphere(p types.Vec3, aabb AABB) types.Vec3 {
	x := aabb.Normalize(p).Mul(2.0).Sub(types.XYZ(1, 1, 1))
	mag := x.Len()

	if mag > 1 {
		x = x.Mul((2.0 - 1.0/mag) / mag)
	}

	return x.Mul(0.25).Add(types.XYZ(0.5, 0.5, 0.5))
}

// Per-axis local scale factor of the unisphere contraction at p, used by
// volumetric integrators to correct step sizes. Inside the unit sphere the
// mapping is the identity and the derivative is one.
func ContractToUnisphereDerivative(p types.Vec3, aabb AABB) types.Vec3 {
	x := aabb.Normalize(p).Mul(2.0).Sub(types.XYZ(1, 1, 1))
	mag := x.Len()

	if mag <= 1 {
		return types.XYZ(1, 1, 1)
	}

	mag2 := mag * mag
	mag3 := mag2 * mag
	mag4 := mag3 * mag

	radial := (2.0*mag - 1.0) / mag2
	tangent := 1.0/mag3 - (2.0*mag-1.0)/mag4

	dev := types.Vec3{
		radial + 2.0*x[0]*x[0]*tangent,
		radial + 2.0*x[1]*x[1]*tangent,
		radial + 2.0*x[2]*x[2]*tangent,
	}
	return types.MaxVec3(dev, types.XYZ(contractionDevEpsilon, contractionDevEpsilon, contractionDevEpsilon))
}

// Map a raw position into the encoder domain and report whether the mapped
// point lies strictly inside the unit cube. Density is masked to zero for
// points that do not.
func (f *RadianceField) mapToDomain(p types.Vec3) (types.Vec3, bool) {
	var mapped types.Vec3
	if f.opts.Unbounded {
		mapped = ContractToUnisphere(p, f.opts.Bounds)
	} else {
		mapped = f.opts.Bounds.Normalize(p)
	}

	inside := mapped[0] > 0 && mapped[0] < 1 &&
		mapped[1] > 0 && mapped[1] < 1 &&
		mapped[2] > 0 && mapped[2] < 1
	return mapped, inside
}
