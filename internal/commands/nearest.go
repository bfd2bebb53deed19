package commands

import (
	"fmt"

	"git.sr.ht/~whereswaldon/chartcore/chart"
	"git.sr.ht/~whereswaldon/chartcore/coords"
)

type NearestCmd struct {
	ChartFlags `embed:""`
	X          float64 `arg:"" name:"x" help:"Pixel column, from the left of the plot area."`
	Y          float64 `arg:"" name:"y" help:"Pixel row, from the top of the plot area."`
	Radius     float64 `name:"radius" short:"r" help:"Search radius in pixels." default:"10"`
	Output     string  `name:"output" short:"o" help:"Output format." default:"text" enum:"text,json,yaml"`
}

type NearestResult struct {
	Found    bool    `json:"found" yaml:"found"`
	Series   string  `json:"series,omitempty" yaml:"series,omitempty"`
	Index    int     `json:"index" yaml:"index"`
	X        float64 `json:"x" yaml:"x"`
	Y        float64 `json:"y" yaml:"y"`
	Distance float64 `json:"distance" yaml:"distance"`
	// DataX and DataY are the data coordinates under the pixel on the first
	// pair of axes.
	DataX float64 `json:"data_x" yaml:"data_x"`
	DataY float64 `json:"data_y" yaml:"data_y"`
}

func Nearest(c *chart.Chart, p coords.Point, radius float64) (NearestResult, error) {
	var res NearestResult
	var err error
	res.DataX, res.DataY, err = c.PixelToData(0, 0, p)
	if err != nil {
		return res, err
	}
	hit, ok := c.FindNearestPoint(p, radius)
	if !ok {
		return res, nil
	}
	s := c.Series(hit.SeriesID)
	res.Found = true
	res.Series = hit.SeriesID
	res.Index = hit.Index
	res.X = s.X(hit.Index)
	res.Y = s.Y(hit.Index)
	res.Distance = hit.Distance
	return res, nil
}

func (r NearestResult) Render() string {
	under := DimStyle.Render(fmt.Sprintf("data under pixel: x=%s y=%s", formatValue(r.DataX), formatValue(r.DataY)))
	if !r.Found {
		return WarningStyle.Render("No point within radius") + "\n" + under
	}
	return TitleStyle.Render(fmt.Sprintf("%s[%d]", r.Series, r.Index)) +
		fmt.Sprintf(" x=%s y=%s ", formatValue(r.X), formatValue(r.Y)) +
		DimStyle.Render(fmt.Sprintf("(%.1f px away)", r.Distance)) + "\n" + under
}

func (n *NearestCmd) Run(ctx *Context) error {
	c, err := n.Build(ctx)
	if err != nil {
		return err
	}
	res, err := Nearest(c, coords.Point{X: n.X, Y: n.Y}, n.Radius)
	if err != nil {
		return err
	}
	return write(ctx.Stdout, n.Output, res, res.Render)
}
