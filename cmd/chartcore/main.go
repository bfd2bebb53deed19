package main

import (
	"os"

	"github.com/alecthomas/kong"

	"git.sr.ht/~whereswaldon/chartcore/coords"
	"git.sr.ht/~whereswaldon/chartcore/internal/commands"
)

func main() {
	ctx := kong.Parse(&commands.Cli,
		kong.Name("chartcore"),
		kong.Description("Inspect how the chart engine fits, decimates and hit-tests CSV data."),
	)
	orientation := coords.Horizontal
	if commands.Cli.Vertical {
		orientation = coords.Vertical
	}
	// Call the Run() method of the selected parsed command.
	err := ctx.Run(&commands.Context{
		Width:       commands.Cli.Width,
		Height:      commands.Cli.Height,
		Orientation: orientation,
		Stdout:      os.Stdout,
	})
	ctx.FatalIfErrorf(err)
}
