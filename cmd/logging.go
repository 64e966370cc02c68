package cmd

import (
	"github.com/AhmedAbdelaal2001/dreamfusionacc/log"
	"github.com/urfave/cli"
)

var logger = log.New("dreamfusionacc")

func setupLogging(ctx *cli.Context) {
	if ctx.GlobalBool("v") {
		log.SetLevel(log.Info)
	}

	if ctx.GlobalBool("vv") {
		log.SetLevel(log.Debug)
	}
}
