package encoder

import "github.com/AhmedAbdelaal2001/dreamfusionacc/types"

// A real spherical harmonics directional encoder. Input directions are
// expected in [0,1]^3 (the convention of the fused GPU encoders this backend
// substitutes for) and are remapped to [-1,1] before basis evaluation. The
// output width is degree^2.
type Spherical struct {
	degree int
}

// Create a spherical harmonics encoder for degrees 1 through 4.
func NewSpherical(degree int) (*Spherical, error) {
	if degree < 1 || degree > 4 {
		return nil, ErrInvalidDegree
	}
	return &Spherical{degree: degree}, nil
}

func (s *Spherical) Encode(dirs []types.Vec3) ([]float32, error) {
	dims := s.OutputDims()
	out := make([]float32, len(dirs)*dims)

	for di, d := range dirs {
		x := d[0]*2.0 - 1.0
		y := d[1]*2.0 - 1.0
		z := d[2]*2.0 - 1.0
		s.basis(x, y, z, out[di*dims:(di+1)*dims])
	}

	return out, nil
}

// Evaluate the SH basis up to the configured degree. Coefficients match the
// hard-coded polynomial expansion used by the fused GPU encoders.
func (s *Spherical) basis(x, y, z float32, dst []float32) {
	xy, yz, xz := x*y, y*z, x*z
	x2, y2, z2 := x*x, y*y, z*z

	dst[0] = 0.28209479177387814
	if s.degree < 2 {
		return
	}

	dst[1] = -0.48860251190291987 * y
	dst[2] = 0.48860251190291987 * z
	dst[3] = -0.48860251190291987 * x
	if s.degree < 3 {
		return
	}

	dst[4] = 1.0925484305920792 * xy
	dst[5] = -1.0925484305920792 * yz
	dst[6] = 0.94617469575755997*z2 - 0.31539156525251999
	dst[7] = -1.0925484305920792 * xz
	dst[8] = 0.54627421529603959 * (x2 - y2)
	if s.degree < 4 {
		return
	}

	dst[9] = 0.59004358992664352 * y * (-3.0*x2 + y2)
	dst[10] = 2.8906114426405538 * xy * z
	dst[11] = 0.45704579946446572 * y * (1.0 - 5.0*z2)
	dst[12] = 0.3731763325901154 * z * (5.0*z2 - 3.0)
	dst[13] = 0.45704579946446572 * x * (1.0 - 5.0*z2)
	dst[14] = 1.4453057213202769 * z * (x2 - y2)
	dst[15] = 0.59004358992664352 * x * (-x2 + 3.0*y2)
}

func (s *Spherical) OutputDims() int {
	return s.degree * s.degree
}

func (s *Spherical) ParameterCount() int {
	return 0
}
