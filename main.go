package main

import (
	"os"

	"github.com/AhmedAbdelaal2001/dreamfusionacc/cmd"
	"github.com/urfave/cli"
)

func main() {
	cli.VersionFlag = cli.BoolFlag{
		Name:  "version",
		Usage: "print only the version",
	}

	app := cli.NewApp()
	app.Name = "dreamfusionacc"
	app.Usage = "inspect and evaluate instant-ngp radiance fields"
	app.Version = "0.0.1"
	app.Flags = []cli.Flag{
		cli.BoolFlag{
			Name:  "v",
			Usage: "enable verbose logging",
		},
		cli.BoolFlag{
			Name:  "vv",
			Usage: "enable even more verbose logging",
		},
	}
	app.Commands = []cli.Command{
		{
			Name:  "info",
			Usage: "print field configuration and optimizer parameter groups",
			Flags: append(cmd.FieldFlags(),
				cli.Float64Flag{
					Name:  "lr",
					Value: 1e-2,
					Usage: "base learning rate for the parameter group table",
				},
			),
			Action: cmd.Info,
		},
		{
			Name:  "eval",
			Usage: "evaluate the field at a point",
			Description: `
Evaluate a freshly initialized field at a single position/direction under the
selected shading mode and print the resulting rgb, density and normal.`,
			Flags: append(cmd.FieldFlags(),
				cli.StringFlag{
					Name:  "position, p",
					Value: "0,0,0",
					Usage: "query position as x,y,z",
				},
				cli.StringFlag{
					Name:  "direction, d",
					Value: "0,0,1",
					Usage: "view direction as x,y,z",
				},
				cli.StringFlag{
					Name:  "light",
					Value: "0,1,0",
					Usage: "light direction as x,y,z",
				},
				cli.StringFlag{
					Name:  "shading",
					Value: "albedo",
					Usage: "shading mode: albedo, textureless or lambertian",
				},
				cli.Float64Flag{
					Name:  "ambient",
					Value: 0.1,
					Usage: "ambient ratio for lit shading modes",
				},
			),
			Action: cmd.Eval,
		},
	}

	app.Run(os.Args)
}
