package commands

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"git.sr.ht/~whereswaldon/chartcore/chart"
)

type SummaryCmd struct {
	ChartFlags `embed:""`
	Output     string `name:"output" short:"o" help:"Output format." default:"text" enum:"text,json,yaml"`
}

type AxisSummary struct {
	Direction  string    `json:"direction" yaml:"direction"`
	ID         int       `json:"id" yaml:"id"`
	Scale      string    `json:"scale" yaml:"scale"`
	Lower      float64   `json:"lower" yaml:"lower"`
	Upper      float64   `json:"upper" yaml:"upper"`
	Risers     int       `json:"risers" yaml:"risers"`
	Categories []string  `json:"categories,omitempty" yaml:"categories,omitempty"`
	Ticks      []float64 `json:"ticks" yaml:"ticks"`
}

type SeriesSummary struct {
	ID      string `json:"id" yaml:"id"`
	Type    string `json:"type" yaml:"type"`
	Stacked bool   `json:"stacked" yaml:"stacked"`
	XAxis   int    `json:"x_axis" yaml:"x_axis"`
	YAxis   int    `json:"y_axis" yaml:"y_axis"`
	Points  int    `json:"points" yaml:"points"`
	Drawn   int    `json:"drawn" yaml:"drawn"`
	// Riser is the bar slot, or -1 for lines.
	Riser int `json:"riser" yaml:"riser"`
}

type Summary struct {
	File        string          `json:"file" yaml:"file"`
	Width       int             `json:"width" yaml:"width"`
	Height      int             `json:"height" yaml:"height"`
	Orientation string          `json:"orientation" yaml:"orientation"`
	Axes        []AxisSummary   `json:"axes" yaml:"axes"`
	Series      []SeriesSummary `json:"series" yaml:"series"`
}

// summaryTicks is the most tick values reported per axis.
const summaryTicks = 6

func Summarize(file string, c *chart.Chart) Summary {
	size := c.Size()
	s := Summary{
		File:        file,
		Width:       size.Width,
		Height:      size.Height,
		Orientation: c.Orientation().String(),
	}
	for _, a := range c.Axes().Axes() {
		r := a.Range()
		s.Axes = append(s.Axes, AxisSummary{
			Direction:  a.Direction().String(),
			ID:         a.ID(),
			Scale:      r.Scale.String(),
			Lower:      r.Lower,
			Upper:      r.Upper,
			Risers:     a.NumRisers(),
			Categories: a.Categories(),
			Ticks:      r.Ticks(summaryTicks),
		})
	}
	for _, ser := range c.AllSeries() {
		points, _ := ser.RenderPoints()
		riser, ok := ser.RiserIndex()
		if !ok {
			riser = -1
		}
		s.Series = append(s.Series, SeriesSummary{
			ID:      ser.ID(),
			Type:    ser.Type().String(),
			Stacked: ser.StackEnabled(),
			XAxis:   ser.XAxisID(),
			YAxis:   ser.YAxisID(),
			Points:  ser.Len(),
			Drawn:   len(points),
			Riser:   riser,
		})
	}
	return s
}

func (s Summary) Render() string {
	axisWidths := []int{8, 10, 14, 14, 7}
	axes := []string{
		HeadingStyle.Render("Axes"),
		DimStyle.Render(row(axisWidths, "axis", "scale", "lower", "upper", "risers")),
	}
	for _, a := range s.Axes {
		axes = append(axes, row(axisWidths,
			fmt.Sprintf("%s%d", a.Direction, a.ID),
			a.Scale,
			formatValue(a.Lower),
			formatValue(a.Upper),
			strconv.Itoa(a.Risers),
		))
		if len(a.Categories) > 0 {
			axes = append(axes, DimStyle.Render("  categories: "+strings.Join(a.Categories, ", ")))
		}
		if len(a.Ticks) > 0 {
			ticks := make([]string, len(a.Ticks))
			for i, v := range a.Ticks {
				ticks[i] = formatValue(v)
			}
			axes = append(axes, DimStyle.Render("  ticks: "+strings.Join(ticks, " ")))
		}
	}

	seriesWidths := []int{20, 14, 8, 8, 8, 6}
	series := []string{
		HeadingStyle.Render("Series"),
		DimStyle.Render(row(seriesWidths, "id", "type", "axes", "points", "drawn", "riser")),
	}
	for _, ser := range s.Series {
		typ := ser.Type
		if ser.Stacked {
			typ += " stacked"
		}
		riser := "-"
		if ser.Riser >= 0 {
			riser = strconv.Itoa(ser.Riser)
		}
		series = append(series, row(seriesWidths,
			ser.ID,
			typ,
			fmt.Sprintf("x%d y%d", ser.XAxis, ser.YAxis),
			strconv.Itoa(ser.Points),
			strconv.Itoa(ser.Drawn),
			riser,
		))
	}
	if len(s.Series) == 0 {
		series = append(series, WarningStyle.Render("No plottable columns"))
	}

	title := TitleStyle.Render(s.File) + DimStyle.Render(fmt.Sprintf("  %dx%d %s", s.Width, s.Height, s.Orientation))
	return lipgloss.JoinVertical(lipgloss.Left,
		title,
		BoxStyle.Render(lipgloss.JoinVertical(lipgloss.Left, axes...)),
		BoxStyle.Render(lipgloss.JoinVertical(lipgloss.Left, series...)),
	)
}

func (s *SummaryCmd) Run(ctx *Context) error {
	c, err := s.Build(ctx)
	if err != nil {
		return err
	}
	summary := Summarize(s.File, c)
	return write(ctx.Stdout, s.Output, summary, summary.Render)
}
