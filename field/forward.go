package field

import "github.com/AhmedAbdelaal2001/dreamfusionacc/types"

// Evaluate the field for a batch of positions under a shading mode.
//
// Albedo returns the raw predicted color and no normals. The lit modes
// derive a per-point normal (learned head or finite differences), safe
// normalize it and blend with a Lambertian term:
//
//	ambient + (1-ambient) * max(0, normal . light / |light|)
//
// Textureless replaces the color with the lit term broadcast to three
// channels; Lambertian scales the predicted color by it. Any other mode is
// an error.
func (f *RadianceField) Forward(
	positions []types.Vec3,
	directions []types.Vec3,
	shading ShadingMode,
	lightDir types.Vec3,
	ambientRatio float32,
) (rgb []types.Vec3, density []float32, normals []types.Vec3, err error) {
	n := len(positions)
	if f.opts.UseViewDirs {
		if directions == nil {
			return nil, nil, nil, ErrDirectionsRequired
		}
		if len(directions) != n {
			return nil, nil, nil, ErrBatchMismatch
		}
	}

	density, feat, err := f.QueryDensity(positions)
	if err != nil {
		return nil, nil, nil, err
	}

	emb, err := f.composeEmbedding(directions, feat, n)
	if err != nil {
		return nil, nil, nil, err
	}

	rgbFlat, err := f.color.Apply(emb, n)
	if err != nil {
		return nil, nil, nil, err
	}
	rgb = unflattenVec3(rgbFlat)

	if shading == Albedo {
		return rgb, density, nil, nil
	}
	if shading != Textureless && shading != Lambertian {
		return nil, nil, nil, ErrUnsupportedShadingMode
	}

	lightLen := lightDir.Len()
	if lightLen == 0 {
		return nil, nil, nil, ErrLightDirectionRequired
	}

	if f.opts.UsePredictNormal {
		normalFlat, nerr := f.normal.Apply(emb, n)
		if nerr != nil {
			return nil, nil, nil, nerr
		}
		normals = unflattenVec3(normalFlat)
	} else {
		normals, err = f.finiteDifferenceNormals(positions)
		if err != nil {
			return nil, nil, nil, err
		}
	}

	for i := range normals {
		normals[i] = safeNormalize(normals[i])

		cos := normals[i].Dot(lightDir) / lightLen
		if cos < 0 {
			cos = 0
		}
		lambertian := ambientRatio + (1.0-ambientRatio)*cos

		switch shading {
		case Textureless:
			rgb[i] = types.XYZ(lambertian, lambertian, lambertian)
		case Lambertian:
			rgb[i] = rgb[i].Mul(lambertian)
		}
	}

	return rgb, density, normals, nil
}
