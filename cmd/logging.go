package cmd

import (
	"github.com/AbundantSalmon/learnopengl-learning1/log"
	"github.com/urfave/cli"
)

var logger = log.New("learnopengl")

func setupLogging(ctx *cli.Context) {
	if ctx.GlobalBool("v") {
		log.SetLevel(log.Info)
	}

	if ctx.GlobalBool("vv") {
		log.SetLevel(log.Debug)
	}
}
