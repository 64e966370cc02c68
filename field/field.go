package field

import (
	"github.com/AhmedAbdelaal2001/dreamfusionacc/encoder"
	"github.com/AhmedAbdelaal2001/dreamfusionacc/network"
	"github.com/AhmedAbdelaal2001/dreamfusionacc/types"
)

// The differentiable backends a field evaluates through. Optional entries
// must be nil exactly when the matching feature toggle is off.
type Backends struct {
	// Hash-grid positional encoder; output width 1+GeoFeatDim.
	Spatial encoder.Encoder

	// Spherical harmonics view-direction encoder. Required when
	// UseViewDirs is set.
	Directional encoder.Encoder

	// Density head: feature width in, one pre-activation channel out.
	Sigma network.Network

	// Color head: embedding width in, three sigmoid channels out.
	Color network.Network

	// Learned normal head. Required when UsePredictNormal is set.
	Normal network.Network

	// Background head over the direction encoding alone. Required when
	// UsePredictBkgd is set.
	Background network.Network
}

// An instant-ngp style radiance field: hash-grid positional encoding, a
// density head with an analytic sphere bias, and color/normal/background
// heads sharing the encoded feature. Forward evaluation is stateless; the
// only mutable state is the backend weights, owned by an external optimizer.
// Callers must serialize evaluation against parameter updates.
type RadianceField struct {
	opts Options

	spatial     encoder.Encoder
	directional encoder.Encoder
	sigma       network.Network
	color       network.Network
	normal      network.Network
	background  network.Network

	// Feature width 1+GeoFeatDim and the embedding width consumed by the
	// color and normal heads.
	featDim  int
	embedDim int
}

// Create a field with CPU reference backends.
func New(opts Options) (*RadianceField, error) {
	opts.applyDefaults()
	if err := opts.validate(); err != nil {
		return nil, err
	}

	var b Backends
	var err error

	b.Spatial, err = encoder.NewHashGrid(encoder.HashGridConfig{
		NumLevels:        opts.NumLevels,
		FeaturesPerLevel: opts.FeaturesPerLevel,
		Log2HashmapSize:  opts.Log2HashmapSize,
		BaseResolution:   opts.BaseResolution,
		PerLevelScale:    opts.PerLevelScale,
		Seed:             opts.Seed,
	})
	if err != nil {
		return nil, err
	}

	dirDims := 0
	if opts.UseViewDirs {
		b.Directional, err = encoder.NewSpherical(opts.SHDegree)
		if err != nil {
			return nil, err
		}
		dirDims = b.Directional.OutputDims()
	}

	featDim := 1 + opts.GeoFeatDim
	embedDim := dirDims + featDim

	b.Sigma, err = network.NewMLP(network.MLPConfig{
		InputDims:        featDim,
		OutputDims:       1,
		HiddenNeurons:    32,
		HiddenLayers:     1,
		OutputActivation: network.None,
		Seed:             opts.Seed + 1,
	})
	if err != nil {
		return nil, err
	}

	b.Color, err = network.NewMLP(network.MLPConfig{
		InputDims:        embedDim,
		OutputDims:       3,
		HiddenNeurons:    32,
		HiddenLayers:     1,
		OutputActivation: network.Sigmoid,
		Seed:             opts.Seed + 2,
	})
	if err != nil {
		return nil, err
	}

	if opts.UsePredictNormal {
		b.Normal, err = network.NewMLP(network.MLPConfig{
			InputDims:        embedDim,
			OutputDims:       3,
			HiddenNeurons:    32,
			HiddenLayers:     1,
			OutputActivation: network.Sigmoid,
			Seed:             opts.Seed + 3,
		})
		if err != nil {
			return nil, err
		}
	}

	if opts.UsePredictBkgd {
		b.Background, err = network.NewMLP(network.MLPConfig{
			InputDims:        dirDims,
			OutputDims:       3,
			HiddenNeurons:    16,
			HiddenLayers:     1,
			OutputActivation: network.Sigmoid,
			Seed:             opts.Seed + 4,
		})
		if err != nil {
			return nil, err
		}
	}

	return NewWithBackends(opts, b)
}

// Create a field around externally supplied backends, validating every
// declared width against the field configuration.
func NewWithBackends(opts Options, b Backends) (*RadianceField, error) {
	opts.applyDefaults()
	if err := opts.validate(); err != nil {
		return nil, err
	}

	featDim := 1 + opts.GeoFeatDim

	dirDims := 0
	if opts.UseViewDirs {
		if b.Directional == nil {
			return nil, ErrBackendWidthMismatch
		}
		dirDims = b.Directional.OutputDims()
	}
	embedDim := dirDims + featDim

	if b.Spatial == nil || b.Spatial.OutputDims() != featDim {
		return nil, ErrBackendWidthMismatch
	}
	if b.Sigma == nil || b.Sigma.InputDims() != featDim || b.Sigma.OutputDims() != 1 {
		return nil, ErrBackendWidthMismatch
	}
	if b.Color == nil || b.Color.InputDims() != embedDim || b.Color.OutputDims() != 3 {
		return nil, ErrBackendWidthMismatch
	}
	if opts.UsePredictNormal {
		if b.Normal == nil || b.Normal.InputDims() != embedDim || b.Normal.OutputDims() != 3 {
			return nil, ErrBackendWidthMismatch
		}
	}
	if opts.UsePredictBkgd {
		if b.Background == nil || b.Background.InputDims() != dirDims || b.Background.OutputDims() != 3 {
			return nil, ErrBackendWidthMismatch
		}
	}

	return &RadianceField{
		opts:        opts,
		spatial:     b.Spatial,
		directional: b.Directional,
		sigma:       b.Sigma,
		color:       b.Color,
		normal:      b.Normal,
		background:  b.Background,
		featDim:     featDim,
		embedDim:    embedDim,
	}, nil
}

// The field configuration.
func (f *RadianceField) Options() Options {
	return f.opts
}

// Width of the embedding consumed by the color and normal heads.
func (f *RadianceField) EmbeddingDims() int {
	return f.embedDim
}

// Analytic density prior: a sphere-like falloff around the origin, computed
// on raw positions before any domain mapping. Added to the pre-activation so
// the untrained field already resembles a round object.
func (f *RadianceField) densityBias(p types.Vec3) float32 {
	return f.opts.DensityBiasScale * (1.0 - p.Len()/f.opts.DensityBiasOffset)
}

// Evaluate density for a batch of raw positions. Returns one density per
// point plus the flat encoded feature buffer (1+GeoFeatDim per point) for
// reuse by the color/normal heads.
func (f *RadianceField) QueryDensity(positions []types.Vec3) ([]float32, []float32, error) {
	n := len(positions)

	mapped := make([]types.Vec3, n)
	inside := make([]bool, n)
	bias := make([]float32, n)
	for i, p := range positions {
		bias[i] = f.densityBias(p)
		mapped[i], inside[i] = f.mapToDomain(p)
	}

	feat, err := f.spatial.Encode(mapped)
	if err != nil {
		return nil, nil, err
	}

	h, err := f.sigma.Apply(feat, n)
	if err != nil {
		return nil, nil, err
	}

	density := make([]float32, n)
	for i := 0; i < n; i++ {
		if !inside[i] {
			continue
		}
		density[i] = f.opts.DensityActivation(h[i] + bias[i])
	}

	return density, feat, nil
}

// Build the embedding consumed by the color and normal heads: the encoded
// view direction concatenated with the density feature, or the feature alone
// when view-direction conditioning is off.
func (f *RadianceField) composeEmbedding(directions []types.Vec3, feat []float32, n int) ([]float32, error) {
	if !f.opts.UseViewDirs {
		return feat, nil
	}
	if len(directions) != n {
		return nil, ErrBatchMismatch
	}

	d, err := f.directional.Encode(remapDirections(directions))
	if err != nil {
		return nil, err
	}
	dirDims := f.directional.OutputDims()

	emb := make([]float32, n*f.embedDim)
	for i := 0; i < n; i++ {
		copy(emb[i*f.embedDim:], d[i*dirDims:(i+1)*dirDims])
		copy(emb[i*f.embedDim+dirDims:], feat[i*f.featDim:(i+1)*f.featDim])
	}
	return emb, nil
}

// Predict background radiance along view directions with no scene occlusion.
func (f *RadianceField) QueryBackground(directions []types.Vec3) ([]types.Vec3, error) {
	if f.background == nil {
		return nil, ErrBackgroundDisabled
	}

	d, err := f.directional.Encode(remapDirections(directions))
	if err != nil {
		return nil, err
	}

	out, err := f.background.Apply(d, len(directions))
	if err != nil {
		return nil, err
	}
	return unflattenVec3(out), nil
}

// The directional encoder consumes directions in [0,1]; inputs arrive as
// unit vectors in [-1,1].
func remapDirections(directions []types.Vec3) []types.Vec3 {
	out := make([]types.Vec3, len(directions))
	for i, d := range directions {
		out[i] = d.Add(types.XYZ(1, 1, 1)).Mul(0.5)
	}
	return out
}

func unflattenVec3(flat []float32) []types.Vec3 {
	out := make([]types.Vec3, len(flat)/3)
	for i := range out {
		out[i] = types.Vec3{flat[i*3], flat[i*3+1], flat[i*3+2]}
	}
	return out
}
