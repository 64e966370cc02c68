package cmd

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/AhmedAbdelaal2001/dreamfusionacc/field"
	"github.com/AhmedAbdelaal2001/dreamfusionacc/types"
	"github.com/urfave/cli"
)

// Build field options from the shared command flags.
func fieldOptions(ctx *cli.Context) (field.Options, error) {
	bounds, err := parseBounds(ctx.String("aabb"))
	if err != nil {
		return field.Options{}, err
	}

	opts := field.DefaultOptions(bounds)
	opts.Unbounded = ctx.Bool("unbounded")
	opts.UseViewDirs = !ctx.Bool("no-viewdirs")
	opts.UsePredictNormal = !ctx.Bool("fd-normals")
	opts.UsePredictBkgd = ctx.Bool("bkgd")
	opts.GeoFeatDim = ctx.Int("geo-feat-dim")
	opts.NumLevels = ctx.Int("levels")
	opts.Log2HashmapSize = ctx.Int("log2-hashmap-size")
	opts.Seed = int64(ctx.Int("seed"))
	return opts, nil
}

// The shared field configuration flags.
func FieldFlags() []cli.Flag {
	return []cli.Flag{
		cli.StringFlag{
			Name:  "aabb",
			Value: "-1,-1,-1,1,1,1",
			Usage: "scene bounds as minX,minY,minZ,maxX,maxY,maxZ",
		},
		cli.BoolFlag{
			Name:  "unbounded",
			Usage: "contract positions to the unisphere instead of normalizing by the bounds",
		},
		cli.BoolFlag{
			Name:  "no-viewdirs",
			Usage: "disable view-direction conditioning",
		},
		cli.BoolFlag{
			Name:  "fd-normals",
			Usage: "estimate normals with finite differences instead of the learned head",
		},
		cli.BoolFlag{
			Name:  "bkgd",
			Usage: "enable the background radiance head",
		},
		cli.IntFlag{
			Name:  "geo-feat-dim",
			Value: 31,
			Usage: "geometry feature channels alongside the density channel",
		},
		cli.IntFlag{
			Name:  "levels",
			Value: 16,
			Usage: "hash grid resolution levels",
		},
		cli.IntFlag{
			Name:  "log2-hashmap-size",
			Value: 19,
			Usage: "log2 of the per-level hash table size",
		},
		cli.IntFlag{
			Name:  "seed",
			Usage: "seed for backend weight initialization",
		},
	}
}

func parseBounds(spec string) (field.AABB, error) {
	vals, err := parseFloats(spec, 6)
	if err != nil {
		return field.AABB{}, fmt.Errorf("invalid aabb %q: %v", spec, err)
	}
	return field.AABB{
		Min: types.XYZ(vals[0], vals[1], vals[2]),
		Max: types.XYZ(vals[3], vals[4], vals[5]),
	}, nil
}

func parseVec3(spec string) (types.Vec3, error) {
	vals, err := parseFloats(spec, 3)
	if err != nil {
		return types.Vec3{}, fmt.Errorf("invalid vector %q: %v", spec, err)
	}
	return types.XYZ(vals[0], vals[1], vals[2]), nil
}

func parseFloats(spec string, count int) ([]float32, error) {
	fields := strings.Split(spec, ",")
	if len(fields) != count {
		return nil, fmt.Errorf("expected %d comma-separated values", count)
	}

	out := make([]float32, count)
	for i, fieldVal := range fields {
		v, err := strconv.ParseFloat(strings.TrimSpace(fieldVal), 32)
		if err != nil {
			return nil, err
		}
		out[i] = float32(v)
	}
	return out, nil
}
