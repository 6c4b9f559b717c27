package cmd

import (
	"bytes"
	"fmt"

	"github.com/olekukonko/tablewriter"
	"github.com/urfave/cli"

	"github.com/ikskuh/weekend-raytracer/scene"
)

// Display the contents of the built-in scene.
func ShowSceneInfo(ctx *cli.Context) error {
	setupLogging(ctx)

	sc := scene.NewCornellScene()

	var buf bytes.Buffer
	table := tablewriter.NewWriter(&buf)
	table.SetAutoFormatHeaders(false)
	table.SetAutoWrapText(false)
	table.SetHeader([]string{"Object", "Location", "Albedo", "Reflectivity"})
	for _, obj := range sc.Objects {
		switch o := obj.(type) {
		case *scene.Plane:
			table.Append([]string{
				"plane",
				fmt.Sprintf("origin %v normal %v", o.Origin, o.Normal),
				fmt.Sprintf("%v", o.Material.Albedo),
				fmt.Sprintf("%g", o.Material.Reflectivity),
			})
		case *scene.Sphere:
			table.Append([]string{
				"sphere",
				fmt.Sprintf("center %v radius %g", o.Center, o.Radius),
				fmt.Sprintf("%v", o.Material.Albedo),
				fmt.Sprintf("%g", o.Material.Reflectivity),
			})
		}
	}
	table.Render()
	logger.Noticef("scene objects\n%s", buf.String())

	buf.Reset()
	table = tablewriter.NewWriter(&buf)
	table.SetAutoFormatHeaders(false)
	table.SetAutoWrapText(false)
	table.SetHeader([]string{"Light", "Position", "Power", "Color"})
	for index, light := range sc.Lights {
		table.Append([]string{
			fmt.Sprintf("%d", index),
			fmt.Sprintf("%v", light.Position),
			fmt.Sprintf("%g", light.Power),
			fmt.Sprintf("%v", light.Color),
		})
	}
	table.Render()
	logger.Noticef("scene lights\n%s", buf.String())

	camera := sc.Camera
	logger.Noticef("camera at %v facing %v, focal length %g", camera.Position, camera.Forward, camera.FocalLength)

	return nil
}
