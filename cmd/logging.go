package cmd

import (
	"github.com/urfave/cli"

	"github.com/ikskuh/weekend-raytracer/log"
)

var logger = log.New("weekend-raytracer")

func setupLogging(ctx *cli.Context) {
	if ctx.GlobalBool("v") {
		log.SetLevel(log.Info)
	}

	if ctx.GlobalBool("vv") {
		log.SetLevel(log.Debug)
	}
}
