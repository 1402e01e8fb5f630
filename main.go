package main

import (
	"os"
	"runtime"

	"github.com/AbundantSalmon/learnopengl-learning1/cmd"
	"github.com/urfave/cli"
)

func init() {
	// The opengl context is bound to the thread that created it.
	runtime.LockOSThread()
}

func main() {
	cli.VersionFlag = cli.BoolFlag{
		Name:  "version",
		Usage: "print only the version",
	}

	app := cli.NewApp()
	app.Name = "learnopengl"
	app.Usage = "render a hard-coded triangle with opengl"
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
			Usage: "open a window and render the triangle",
			Description: `
Open a window with an attached opengl 3.3 core context, compile and link the
builtin vertex/fragment shader pair, upload the triangle geometry and render
it every frame until the window is closed or escape is pressed.`,
			Flags: []cli.Flag{
				cli.IntFlag{
					Name:  "width",
					Value: 800,
					Usage: "window width in pixels",
				},
				cli.IntFlag{
					Name:  "height",
					Value: 600,
					Usage: "window height in pixels",
				},
				cli.StringFlag{
					Name:  "title",
					Value: "LearnOpenGL",
					Usage: "window title",
				},
				cli.IntFlag{
					Name:  "frames",
					Value: 0,
					Usage: "render this many frames and exit; 0 renders until the window is closed",
				},
			},
			Action: cmd.Render,
		},
	}
	app.Run(os.Args)
}
