package main

import (
	"os"

	"github.com/ikskuh/weekend-raytracer/cmd"
	"github.com/urfave/cli"
)

func main() {
	cli.VersionFlag = cli.BoolFlag{
		Name:  "version",
		Usage: "print only the version",
	}

	app := cli.NewApp()
	app.Name = "weekend-raytracer"
	app.Usage = "render a mirror-sphere cornell box with recursive ray tracing"
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
			Name:  "render",
			Usage: "render the built-in scene to an image file",
			Description: `
Render a single frame of the built-in scene and save it to disk. The output
format is picked from the file extension: .png selects PNG, anything else gets
a binary PPM.`,
			Flags: []cli.Flag{
				cli.IntFlag{
					Name:  "width",
					Value: 512,
					Usage: "frame width",
				},
				cli.IntFlag{
					Name:  "height",
					Value: 512,
					Usage: "frame height",
				},
				cli.IntFlag{
					Name:  "depth",
					Value: 10,
					Usage: "number of reflection bounces per primary ray",
				},
				cli.Float64Flag{
					Name:  "gamma",
					Value: 2.2,
					Usage: "gamma value for the display encoding pass",
				},
				cli.StringFlag{
					Name:  "out, o",
					Value: "output.pgm",
					Usage: "image filename for the rendered frame",
				},
			},
			Action: cmd.RenderFrame,
		},
		{
			Name:   "info",
			Usage:  "print the contents of the built-in scene",
			Action: cmd.ShowSceneInfo,
		},
	}

	if err := app.Run(os.Args); err != nil {
		os.Exit(1)
	}
}
