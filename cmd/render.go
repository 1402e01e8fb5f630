package cmd

import (
	"bytes"
	"fmt"

	"github.com/olekukonko/tablewriter"
	"github.com/urfave/cli"

	"github.com/AbundantSalmon/learnopengl-learning1/gfx/opengl"
	"github.com/AbundantSalmon/learnopengl-learning1/renderer"
	"github.com/AbundantSalmon/learnopengl-learning1/window"
)

// Exit codes for the fatal setup failure classes.
const (
	exitShaderFailure   = 1
	exitWindowFailure   = 2
	exitGraphicsFailure = 3
)

// Open a window and render the triangle until the window is closed or escape
// is pressed.
func Render(ctx *cli.Context) error {
	setupLogging(ctx)

	if err := window.Init(); err != nil {
		return cli.NewExitError(err.Error(), exitWindowFailure)
	}
	defer window.Terminate()

	win, err := window.New(window.Config{
		Width:  ctx.Int("width"),
		Height: ctx.Int("height"),
		Title:  ctx.String("title"),
	})
	if err != nil {
		return cli.NewExitError(err.Error(), exitWindowFailure)
	}
	defer win.Destroy()

	drv := opengl.NewDriver()
	if err = drv.Init(); err != nil {
		return cli.NewExitError(err.Error(), exitGraphicsFailure)
	}

	logger.Noticef("opened %dx%d window; press escape to exit", ctx.Int("width"), ctx.Int("height"))

	r, err := renderer.New(win, drv, renderer.Options{
		MaxFrames: uint64(ctx.Int("frames")),
	})
	if err != nil {
		return cli.NewExitError(err.Error(), exitShaderFailure)
	}
	defer r.Close()

	if err = r.Render(); err != nil {
		return cli.NewExitError(err.Error(), 1)
	}

	displayFrameStats(r.Stats())
	return nil
}

func displayFrameStats(stats renderer.FrameStats) {
	var buf bytes.Buffer
	table := tablewriter.NewWriter(&buf)
	table.SetAutoFormatHeaders(false)
	table.SetAutoWrapText(false)
	table.SetHeader([]string{"Frames", "Render time", "Avg FPS"})
	table.Append([]string{
		fmt.Sprintf("%d", stats.Frames),
		fmt.Sprintf("%s", stats.RenderTime),
		fmt.Sprintf("%.1f", stats.FPS()),
	})

	table.Render()
	logger.Noticef("render statistics\n%s", buf.String())
}
