package encoder

import (
	"math"
	"math/rand"

	"github.com/AhmedAbdelaal2001/dreamfusionacc/types"
)

// Spatial hash primes from the instant-ngp reference implementation. The
// first coordinate is multiplied by 1 so linear table walks stay coherent.
const (
	hashPrimeY uint32 = 2654435761
	hashPrimeZ uint32 = 805459861
)

// Magnitude of the uniform distribution used to seed the feature tables.
const tableInitScale = 1e-4

// HashGrid configuration. Zero values are replaced by the instant-ngp
// defaults used throughout this project.
type HashGridConfig struct {
	// Number of resolution levels.
	NumLevels int

	// Features stored per table entry at each level.
	FeaturesPerLevel int

	// Log2 of the per-level feature table size.
	Log2HashmapSize int

	// Grid resolution at the coarsest level.
	BaseResolution int

	// Geometric growth factor between consecutive levels.
	PerLevelScale float64

	// Seed for table initialization.
	Seed int64
}

func (cfg *HashGridConfig) applyDefaults() {
	if cfg.NumLevels == 0 {
		cfg.NumLevels = 16
	}
	if cfg.FeaturesPerLevel == 0 {
		cfg.FeaturesPerLevel = 2
	}
	if cfg.Log2HashmapSize == 0 {
		cfg.Log2HashmapSize = 19
	}
	if cfg.BaseResolution == 0 {
		cfg.BaseResolution = 16
	}
	if cfg.PerLevelScale == 0 {
		cfg.PerLevelScale = 1.4472692012786865
	}
}

// A multi-resolution hash grid encoder. Each level maintains a hash table of
// learned feature vectors; a query point is scaled to the level's grid, its
// eight surrounding corners are hashed into the table and their features are
// blended with smoothstep weights. The concatenation over all levels forms
// the output feature.
type HashGrid struct {
	numLevels        int
	featuresPerLevel int
	tableSize        uint32
	resolutions      []int

	// One table of tableSize*featuresPerLevel values per level.
	tables [][]float32
}

// Create a hash grid encoder with tables initialized to small uniform noise.
func NewHashGrid(cfg HashGridConfig) (*HashGrid, error) {
	cfg.applyDefaults()
	if cfg.NumLevels < 1 || cfg.FeaturesPerLevel < 1 || cfg.Log2HashmapSize < 1 ||
		cfg.BaseResolution < 1 || cfg.PerLevelScale < 1.0 {
		return nil, ErrInvalidConfig
	}

	grid := &HashGrid{
		numLevels:        cfg.NumLevels,
		featuresPerLevel: cfg.FeaturesPerLevel,
		tableSize:        uint32(1) << uint(cfg.Log2HashmapSize),
		resolutions:      make([]int, cfg.NumLevels),
		tables:           make([][]float32, cfg.NumLevels),
	}

	rng := rand.New(rand.NewSource(cfg.Seed))
	for level := 0; level < cfg.NumLevels; level++ {
		grid.resolutions[level] = int(math.Floor(
			float64(cfg.BaseResolution) * math.Pow(cfg.PerLevelScale, float64(level)),
		))

		table := make([]float32, int(grid.tableSize)*cfg.FeaturesPerLevel)
		for i := range table {
			table[i] = float32(rng.Float64()*2.0-1.0) * tableInitScale
		}
		grid.tables[level] = table
	}

	return grid, nil
}

// Encode a batch of points. Points are expected in the unit cube; values
// outside it still hash to valid table entries and produce finite output.
func (g *HashGrid) Encode(points []types.Vec3) ([]float32, error) {
	dims := g.OutputDims()
	out := make([]float32, len(points)*dims)

	for pi, p := range points {
		base := pi * dims
		for level := 0; level < g.numLevels; level++ {
			g.encodeLevel(p, level, out[base+level*g.featuresPerLevel:])
		}
	}

	return out, nil
}

// Blend the eight corner features surrounding p at the given level into dst.
func (g *HashGrid) encodeLevel(p types.Vec3, level int, dst []float32) {
	res := float32(g.resolutions[level])
	table := g.tables[level]

	var cell [3]int32
	var w [3]float32
	for axis := 0; axis < 3; axis++ {
		scaled := p[axis] * res
		floor := float32(math.Floor(float64(scaled)))
		cell[axis] = int32(floor)

		// Smoothstep interpolation weight, matching the encoder
		// configuration of the reference field.
		t := scaled - floor
		w[axis] = t * t * (3.0 - 2.0*t)
	}

	for i := 0; i < g.featuresPerLevel; i++ {
		dst[i] = 0
	}

	for corner := 0; corner < 8; corner++ {
		weight := float32(1.0)
		var coord [3]uint32
		for axis := 0; axis < 3; axis++ {
			if corner&(1<<uint(axis)) != 0 {
				coord[axis] = uint32(cell[axis] + 1)
				weight *= w[axis]
			} else {
				coord[axis] = uint32(cell[axis])
				weight *= 1.0 - w[axis]
			}
		}

		slot := int(g.hash(coord)) * g.featuresPerLevel
		for i := 0; i < g.featuresPerLevel; i++ {
			dst[i] += weight * table[slot+i]
		}
	}
}

// Spatial hash of a grid coordinate into the level table.
func (g *HashGrid) hash(coord [3]uint32) uint32 {
	return (coord[0] ^ coord[1]*hashPrimeY ^ coord[2]*hashPrimeZ) & (g.tableSize - 1)
}

func (g *HashGrid) OutputDims() int {
	return g.numLevels * g.featuresPerLevel
}

func (g *HashGrid) ParameterCount() int {
	return g.numLevels * int(g.tableSize) * g.featuresPerLevel
}
