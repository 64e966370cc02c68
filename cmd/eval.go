package cmd

import (
	"github.com/AhmedAbdelaal2001/dreamfusionacc/field"
	"github.com/AhmedAbdelaal2001/dreamfusionacc/types"
	"github.com/urfave/cli"
)

// Evaluate the field at a single point and log rgb/density/normal.
func Eval(ctx *cli.Context) error {
	setupLogging(ctx)

	opts, err := fieldOptions(ctx)
	if err != nil {
		return err
	}

	position, err := parseVec3(ctx.String("position"))
	if err != nil {
		return err
	}
	direction, err := parseVec3(ctx.String("direction"))
	if err != nil {
		return err
	}
	lightDir, err := parseVec3(ctx.String("light"))
	if err != nil {
		return err
	}
	shading, err := field.ParseShadingMode(ctx.String("shading"))
	if err != nil {
		return err
	}

	f, err := field.New(opts)
	if err != nil {
		return err
	}

	var directions []types.Vec3
	if opts.UseViewDirs {
		directions = []types.Vec3{direction.Normalize()}
	}

	rgb, density, normals, err := f.Forward(
		[]types.Vec3{position},
		directions,
		shading,
		lightDir,
		float32(ctx.Float64("ambient")),
	)
	if err != nil {
		return err
	}

	logger.Noticef("position %v, shading %s", position, shading)
	logger.Noticef("rgb     %v", rgb[0])
	logger.Noticef("density %g", density[0])
	if normals != nil {
		logger.Noticef("normal  %v", normals[0])
	}

	if opts.UsePredictBkgd {
		bkgd, err := f.QueryBackground(directions)
		if err != nil {
			return err
		}
		logger.Noticef("bkgd    %v", bkgd[0])
	}

	return nil
}
