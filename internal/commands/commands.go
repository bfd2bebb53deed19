package commands

import (
	"fmt"
	"io"
	"os"

	"git.sr.ht/~whereswaldon/chartcore/axis"
	"git.sr.ht/~whereswaldon/chartcore/backend"
	"git.sr.ht/~whereswaldon/chartcore/chart"
	"git.sr.ht/~whereswaldon/chartcore/coords"
	"git.sr.ht/~whereswaldon/chartcore/series"
)

type Context struct {
	Width       int
	Height      int
	Orientation coords.Orientation
	Stdout      io.Writer
}

var Cli struct {
	Width    int  `help:"Width of the plot area in pixels." default:"800"`
	Height   int  `help:"Height of the plot area in pixels." default:"600"`
	Vertical bool `help:"Draw the X axis vertically."`

	Summary  SummaryCmd  `cmd:"" help:"Show the axes and series built from a CSV file."`
	Compress CompressCmd `cmd:"" help:"Print the points that would be drawn for each series."`
	Nearest  NearestCmd  `cmd:"" help:"Find the data point drawn closest to a pixel."`
}

// ChartFlags describe a chart built from a CSV file and the view operations
// applied to it. They are applied in flag order: fit, log, select, zoom,
// scroll.
type ChartFlags struct {
	File    string    `arg:"" name:"file" help:"CSV file to chart." type:"existingfile"`
	Type    string    `name:"type" short:"t" help:"Series type." default:"line" enum:"line,bar"`
	Stack   bool      `name:"stack" short:"s" help:"Stack the series on top of each other."`
	LogY    bool      `name:"log-y" help:"Use a logarithmic Y axis."`
	Select  []float64 `name:"select" help:"Zoom to the pixel rectangle x0,y0,x1,y1." sep:","`
	ZoomIn  int       `name:"zoom-in" help:"Zoom every axis in this many steps." default:"0"`
	ZoomOut int       `name:"zoom-out" help:"Zoom every axis out this many steps." default:"0"`
	ScrollX int       `name:"scroll-x" help:"Scroll the horizontal axes this many steps. Negative values scroll back." default:"0"`
	ScrollY int       `name:"scroll-y" help:"Scroll the vertical axes this many steps. Negative values scroll back." default:"0"`
}

// Build reads the CSV file and returns the chart it describes.
func (f *ChartFlags) Build(ctx *Context) (*chart.Chart, error) {
	file, err := os.Open(f.File)
	if err != nil {
		return nil, err
	}
	defer file.Close()
	table, err := backend.ReadTable(file)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", f.File, err)
	}
	return f.build(ctx, table)
}

func (f *ChartFlags) build(ctx *Context, table backend.Table) (*chart.Chart, error) {
	typ, err := series.ParseType(f.Type)
	if err != nil {
		return nil, err
	}
	c := chart.New()
	c.SetOrientation(ctx.Orientation)
	c.OnPlotAreaResized(ctx.Width, ctx.Height)
	if err := backend.LoadInto(c, table, backend.LoadOptions{Type: typ, Stack: f.Stack}); err != nil {
		return nil, err
	}
	if err := c.AutoScaleAll(); err != nil {
		return nil, err
	}
	if f.LogY {
		if err := c.SetScaleAndFit(axis.Y, 0, axis.Log); err != nil {
			return nil, err
		}
	}
	if len(f.Select) > 0 {
		if len(f.Select) != 4 {
			return nil, fmt.Errorf("--select needs x0,y0,x1,y1, got %v", f.Select)
		}
		start := coords.Point{X: f.Select[0], Y: f.Select[1]}
		end := coords.Point{X: f.Select[2], Y: f.Select[3]}
		if err := c.Select(start, end); err != nil {
			return nil, err
		}
	}
	for i := 0; i < f.ZoomIn; i++ {
		if err := c.ZoomInAll(axis.DefaultZoomFactor); err != nil {
			return nil, err
		}
	}
	for i := 0; i < f.ZoomOut; i++ {
		if err := c.ZoomOutAll(axis.DefaultZoomFactor); err != nil {
			return nil, err
		}
	}
	if err := scroll(c, true, f.ScrollX); err != nil {
		return nil, err
	}
	if err := scroll(c, false, f.ScrollY); err != nil {
		return nil, err
	}
	return c, nil
}

func scroll(c *chart.Chart, horizontal bool, steps int) error {
	up := steps > 0
	for i := 0; i < max(steps, -steps); i++ {
		if err := c.ScrollScreen(horizontal, up); err != nil {
			return err
		}
	}
	return nil
}
