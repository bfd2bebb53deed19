package commands

import (
	"fmt"
	"strconv"

	"github.com/charmbracelet/lipgloss"

	"git.sr.ht/~whereswaldon/chartcore/chart"
)

type CompressCmd struct {
	ChartFlags `embed:""`
	Output     string `name:"output" short:"o" help:"Output format." default:"text" enum:"text,json,yaml"`
	Pixels     bool   `name:"pixels" short:"p" help:"Also print where each point lands in the plot area."`
}

type DrawnPoint struct {
	Index  int      `json:"index" yaml:"index"`
	X      float64  `json:"x" yaml:"x"`
	Y      float64  `json:"y" yaml:"y"`
	PixelX *float64 `json:"pixel_x,omitempty" yaml:"pixel_x,omitempty"`
	PixelY *float64 `json:"pixel_y,omitempty" yaml:"pixel_y,omitempty"`
}

type DrawnSeries struct {
	ID     string       `json:"id" yaml:"id"`
	Total  int          `json:"total" yaml:"total"`
	Points []DrawnPoint `json:"points" yaml:"points"`
}

// DrawnPoints lists the decimated points of every visible series.
func DrawnPoints(c *chart.Chart, pixels bool) []DrawnSeries {
	var out []DrawnSeries
	for _, s := range c.AllSeries() {
		if !s.Visible() {
			continue
		}
		points, indexes := s.RenderPoints()
		m, err := c.Mapper(s.XAxisID(), s.YAxisID())
		if err != nil {
			continue
		}
		drawn := DrawnSeries{ID: s.ID(), Total: s.Len(), Points: make([]DrawnPoint, 0, len(points))}
		for i, p := range points {
			d := DrawnPoint{Index: indexes[i], X: p.X, Y: p.Y}
			if pixels {
				px := m.DataToPixel(p.X, p.Y)
				d.PixelX, d.PixelY = &px.X, &px.Y
			}
			drawn.Points = append(drawn.Points, d)
		}
		out = append(out, drawn)
	}
	return out
}

func renderDrawn(all []DrawnSeries) string {
	if len(all) == 0 {
		return WarningStyle.Render("No plottable columns")
	}
	widths := []int{8, 14, 14, 10, 10}
	blocks := make([]string, 0, len(all))
	for _, s := range all {
		lines := []string{
			HeadingStyle.Render(s.ID) + DimStyle.Render(fmt.Sprintf("  %d of %d points", len(s.Points), s.Total)),
			DimStyle.Render(row(widths, "index", "x", "y", "px", "py")),
		}
		for _, p := range s.Points {
			px, py := "", ""
			if p.PixelX != nil {
				px = strconv.FormatFloat(*p.PixelX, 'f', 1, 64)
				py = strconv.FormatFloat(*p.PixelY, 'f', 1, 64)
			}
			lines = append(lines, row(widths, strconv.Itoa(p.Index), formatValue(p.X), formatValue(p.Y), px, py))
		}
		blocks = append(blocks, BoxStyle.Render(lipgloss.JoinVertical(lipgloss.Left, lines...)))
	}
	return lipgloss.JoinVertical(lipgloss.Left, blocks...)
}

func (cmd *CompressCmd) Run(ctx *Context) error {
	c, err := cmd.Build(ctx)
	if err != nil {
		return err
	}
	drawn := DrawnPoints(c, cmd.Pixels)
	return write(ctx.Stdout, cmd.Output, drawn, func() string { return renderDrawn(drawn) })
}
