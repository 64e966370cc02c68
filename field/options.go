package field

// Field construction options. The defaults mirror the configuration used for
// text-to-3D generation: a 16-level hash grid feeding a 32-wide sigma head,
// degree-4 spherical harmonics for view directions and sigmoid color heads.
type Options struct {
	// Scene bounds. Also anchors the unisphere contraction for unbounded
	// scenes.
	Bounds AABB

	// Map positions with the unisphere contraction instead of the linear
	// bounds normalization.
	Unbounded bool

	// Condition color/normal heads on the encoded view direction.
	UseViewDirs bool

	// Predict normals with a learned head instead of the finite-difference
	// estimator.
	UsePredictNormal bool

	// Enable the background head. Requires UseViewDirs.
	UsePredictBkgd bool

	// Geometry feature channels carried alongside the density channel. The
	// spatial encoder must produce 1+GeoFeatDim values per point.
	GeoFeatDim int

	// Hash grid shape.
	NumLevels        int
	FeaturesPerLevel int
	Log2HashmapSize  int
	BaseResolution   int
	PerLevelScale    float64

	// Spherical harmonics degree for the directional encoder.
	SHDegree int

	// Density bias shape: Scale * (1 - |p|/Offset) on raw positions.
	DensityBiasScale  float32
	DensityBiasOffset float32

	// Density activation; SoftplusShifted when nil.
	DensityActivation DensityActivation

	// Finite-difference normal estimation: perturbation step and the cube
	// half-extent perturbed points are clamped into.
	FiniteDiffEpsilon float32
	FiniteDiffBound   float32

	// Seed for backend weight initialization.
	Seed int64
}

// Options for a field over the given bounds with the standard generation
// configuration.
func DefaultOptions(bounds AABB) Options {
	return Options{
		Bounds:            bounds,
		UseViewDirs:       true,
		UsePredictNormal:  true,
		UsePredictBkgd:    true,
		GeoFeatDim:        31,
		NumLevels:         16,
		FeaturesPerLevel:  2,
		Log2HashmapSize:   19,
		BaseResolution:    16,
		PerLevelScale:     1.4472692012786865,
		SHDegree:          4,
		DensityBiasScale:  10.0,
		DensityBiasOffset: 0.5,
		FiniteDiffEpsilon: 1e-2,
		FiniteDiffBound:   2.0,
	}
}

func (o *Options) applyDefaults() {
	if o.GeoFeatDim == 0 {
		o.GeoFeatDim = 31
	}
	if o.NumLevels == 0 {
		o.NumLevels = 16
	}
	if o.FeaturesPerLevel == 0 {
		o.FeaturesPerLevel = 2
	}
	if o.Log2HashmapSize == 0 {
		o.Log2HashmapSize = 19
	}
	if o.BaseResolution == 0 {
		o.BaseResolution = 16
	}
	if o.PerLevelScale == 0 {
		o.PerLevelScale = 1.4472692012786865
	}
	if o.SHDegree == 0 {
		o.SHDegree = 4
	}
	if o.DensityBiasOffset == 0 {
		o.DensityBiasOffset = 0.5
	}
	if o.DensityActivation == nil {
		o.DensityActivation = SoftplusShifted
	}
	if o.FiniteDiffEpsilon == 0 {
		o.FiniteDiffEpsilon = 1e-2
	}
	if o.FiniteDiffBound == 0 {
		o.FiniteDiffBound = 2.0
	}
}

// Validate cross-option invariants.
func (o Options) validate() error {
	if err := o.Bounds.Validate(); err != nil {
		return err
	}
	if o.UsePredictBkgd && !o.UseViewDirs {
		return ErrBackgroundRequiresViewDirs
	}
	return nil
}
