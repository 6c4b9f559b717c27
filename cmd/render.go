package cmd

import (
	"bytes"
	"errors"
	"fmt"
	"time"

	"github.com/olekukonko/tablewriter"
	"github.com/urfave/cli"

	"github.com/ikskuh/weekend-raytracer/renderer"
	"github.com/ikskuh/weekend-raytracer/scene"
)

// Render a still frame of the built-in scene.
func RenderFrame(ctx *cli.Context) error {
	setupLogging(ctx)

	width, height := ctx.Int("width"), ctx.Int("height")
	depth := ctx.Int("depth")
	if width < 0 || height < 0 || depth < 0 {
		err := errors.New("width, height and depth must not be negative")
		logger.Error(err)
		return err
	}

	opts := renderer.Options{
		FrameW:   uint32(width),
		FrameH:   uint32(height),
		MaxDepth: uint32(depth),
		Gamma:    float32(ctx.Float64("gamma")),
	}

	r, err := renderer.New(scene.NewCornellScene(), opts)
	if err != nil {
		logger.Error(err)
		return err
	}

	logger.Notice("rendering frame")
	frame := r.Render()
	logger.Noticef("rendered frame in %d ms", r.Stats().RenderTime.Nanoseconds()/1000000)

	imgFile := ctx.String("out")
	start := time.Now()
	if err = frame.Save(imgFile); err != nil {
		logger.Error(err)
		return err
	}
	logger.Noticef("wrote frame to %s in %d ms", imgFile, time.Since(start).Nanoseconds()/1000000)

	// Display stats
	displayFrameStats(r.Stats())

	return nil
}

func displayFrameStats(stats renderer.FrameStats) {
	var buf bytes.Buffer
	table := tablewriter.NewWriter(&buf)
	table.SetAutoFormatHeaders(false)
	table.SetAutoWrapText(false)
	table.SetHeader([]string{"Rays", "Count"})
	table.Append([]string{"primary", fmt.Sprintf("%d", stats.PrimaryRays)})
	table.Append([]string{"shadow", fmt.Sprintf("%d", stats.ShadowRays)})
	table.Append([]string{"reflection", fmt.Sprintf("%d", stats.ReflectionRays)})
	table.SetFooter([]string{"render time", fmt.Sprintf("%s", stats.RenderTime)})

	table.Render()
	logger.Noticef("frame statistics\n%s", buf.String())
}
